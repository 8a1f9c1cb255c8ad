package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ravyz/matcher/internal/assessment"
	"github.com/ravyz/matcher/internal/utils"
)

var likertLabels = []string{
	"1 - Discordo totalmente",
	"2 - Discordo",
	"3 - Neutro",
	"4 - Concordo",
	"5 - Concordo totalmente",
}

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Score a questionnaire and classify the candidate archetype",
	Run: func(cmd *cobra.Command, _ []string) {
		assess(cmd)
	},
}

func init() {
	rootCmd.AddCommand(assessCmd)

	assessCmd.Flags().StringP("answers", "a", "", "JSON file mapping question ids (q1..q30) to answers 1-5")
	assessCmd.Flags().BoolP("interactive", "i", false, "answer the questionnaire in the terminal")
	assessCmd.Flags().StringP("save-answers", "o", "", "write the collected answers to this file")
	assessCmd.MarkFlagsMutuallyExclusive("answers", "interactive")
}

func assess(cmd *cobra.Command) {
	logger, _ := setup()

	path, _ := cmd.Flags().GetString("answers")
	interactive, _ := cmd.Flags().GetBool("interactive")

	var (
		responses assessment.Responses
		err       error
	)
	switch {
	case interactive:
		responses, err = askQuestions()
	case path != "":
		responses, err = utils.ReadJSONFile[assessment.Responses](path)
	default:
		err = errors.New("either --answers or --interactive is required")
	}
	if err != nil {
		logger.Fatal("collecting answers", zap.Error(err))
	}

	if out, _ := cmd.Flags().GetString("save-answers"); out != "" {
		f, err := os.Create(out)
		if err != nil {
			logger.Fatal("saving answers", zap.Error(err))
		}
		defer f.Close()
		if err := utils.WriteJSON(f, responses); err != nil {
			logger.Fatal("saving answers", zap.Error(err))
		}
	}

	result, err := assessment.Evaluate(responses)
	if err != nil {
		var invalid *assessment.ValidationError
		if errors.As(err, &invalid) {
			logger.Fatal("invalid answers",
				zap.Strings("missing", invalid.Missing),
				zap.Strings("out_of_range", invalid.OutOfRange),
			)
		}
		logger.Fatal("evaluating answers", zap.Error(err))
	}

	for _, w := range result.Warnings {
		logger.Warn(w)
	}
	logger.Info("assessment evaluated",
		zap.String("archetype", result.Archetype.Archetype),
		zap.String("confidence", string(result.Archetype.Confidence)),
	)

	if err := utils.WriteJSON(cmd.OutOrStdout(), result); err != nil {
		logger.Fatal("writing result", zap.Error(err))
	}
}

func askQuestions() (assessment.Responses, error) {
	responses := make(assessment.Responses, len(assessment.Questions))
	for i, q := range assessment.Questions {
		prompt := promptui.Select{
			Label:     fmt.Sprintf("[%d/%d] %s", i+1, len(assessment.Questions), q.Text),
			Items:     likertLabels,
			CursorPos: 2,
			Size:      len(likertLabels),
		}

		idx, _, err := prompt.Run()
		if err != nil {
			return nil, fmt.Errorf("question %s: %w", q.ID, err)
		}
		responses[q.ID] = idx + assessment.MinAnswer
	}
	return responses, nil
}
