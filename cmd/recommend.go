package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ravyz/matcher/internal/filtering"
	"github.com/ravyz/matcher/internal/logger"
	"github.com/ravyz/matcher/internal/matching"
	"github.com/ravyz/matcher/internal/utils"
)

const lowScoreReason = "below minimum score"

type recommendation struct {
	CandidateID string             `json:"candidate_id"`
	Strategy    string             `json:"strategy"`
	Filters     []filtering.Status `json:"filters"`
	Results     []*matching.Result `json:"results"`
}

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Rank many jobs for one candidate and filter the list",
	Run: func(cmd *cobra.Command, _ []string) {
		recommend(cmd)
	},
}

func init() {
	rootCmd.AddCommand(recommendCmd)

	recommendCmd.Flags().StringP("candidate", "c", "", "candidate profile JSON file")
	recommendCmd.Flags().String("jobs", "", "JSON file with an array of job profiles")
	recommendCmd.Flags().StringP("strategy", "s", "", "scoring strategy: hybrid, pillar or legacy")
	recommendCmd.Flags().IntP("top", "n", 0, "show only the n best jobs (0 shows all)")
	recommendCmd.Flags().Float64("minimum-score", 0, "drop jobs scoring below this value")
	recommendCmd.Flags().StringP("exclude-file", "e", "", "file with jobs to exclude. Default is unset.")
	recommendCmd.Flags().StringSlice("work-model", nil, "accepted job work models")
	recommendCmd.Flags().Bool("exclude-low", false, "append jobs below the minimum score to the exclude file")
	recommendCmd.Flags().IntP("workers", "w", 0, "parallel scoring workers")
	recommendCmd.MarkFlagRequired("candidate")
	recommendCmd.MarkFlagRequired("jobs")

	viper.BindPFlag("filters.minimum-score", recommendCmd.Flags().Lookup("minimum-score"))
	viper.BindPFlag("filters.exclude-file", recommendCmd.Flags().Lookup("exclude-file"))
	viper.BindPFlag("filters.work-models", recommendCmd.Flags().Lookup("work-model"))
	viper.BindPFlag("workers", recommendCmd.Flags().Lookup("workers"))
}

func recommend(cmd *cobra.Command) {
	ctx := context.Background()
	l, config := setup()

	candidatePath, _ := cmd.Flags().GetString("candidate")
	jobsPath, _ := cmd.Flags().GetString("jobs")

	candidate, err := loadCandidate(candidatePath)
	if err != nil {
		l.Fatal("loading candidate", zap.Error(err))
	}
	jobs, err := loadJobs(jobsPath)
	if err != nil {
		l.Fatal("loading jobs", zap.Error(err))
	}

	strategy, err := selectStrategy(cmd, config)
	if err != nil {
		l.Fatal("selecting strategy", zap.Error(err), zap.Strings("available", matching.Strategies()))
	}
	l = logger.WithMatchFields(l, candidate.ID, "", strategy.Name())
	l.Info("scoring jobs", zap.Int("count", len(jobs)), zap.Int("workers", config.Workers))

	results, err := matching.MatchJobs(ctx, strategy, candidate, jobs, config.Workers)
	if err != nil {
		l.Fatal("scoring jobs", zap.Error(err))
	}
	matching.Rank(results)

	if excludeLow, _ := cmd.Flags().GetBool("exclude-low"); excludeLow {
		if err := excludeLowScores(config.Filters, results, l); err != nil {
			l.Fatal("updating exclude file", zap.Error(err))
		}
	}

	steps := filtering.Default()
	filtered, err := filtering.Run(ctx, config.Filters, filtering.Deps{Logger: l}, steps, filtering.NewRecommendations(results, jobs))
	if err != nil {
		l.Fatal("filtering failed", zap.Error(err))
	}

	items := filtered.Items
	if top, _ := cmd.Flags().GetInt("top"); top > 0 && len(items) > top {
		items = items[:top]
	}

	if len(items) == 0 {
		l.Info("no jobs left after filters")
	}

	out := recommendation{
		CandidateID: candidate.ID,
		Strategy:    strategy.Name(),
		Filters:     filtering.Describe(steps),
		Results:     items,
	}
	if err := utils.WriteJSON(cmd.OutOrStdout(), out); err != nil {
		l.Fatal("writing result", zap.Error(err))
	}
}

// excludeLowScores appends results under the minimum score to the exclude file so
// later runs skip them.
func excludeLowScores(cfg *filtering.Config, results []*matching.Result, l *zap.Logger) error {
	if cfg.ExcludeFile == "" || cfg.MinimumScore <= 0 {
		l.Warn("--exclude-low needs both an exclude file and a minimum score; skipping")
		return nil
	}

	low := make([]*matching.Result, 0)
	for _, r := range results {
		if float64(r.FinalScore) < cfg.MinimumScore {
			low = append(low, r)
		}
	}
	if len(low) == 0 {
		return nil
	}

	excluded, err := filtering.LoadExcludedJobs(cfg.ExcludeFile)
	if err != nil {
		return err
	}
	excluded.Append(filtering.ToExcluded(low, lowScoreReason, time.Now()))
	if err := excluded.ToFile(cfg.ExcludeFile); err != nil {
		return err
	}

	l.Info("appended to exclude file",
		zap.String("filename", cfg.ExcludeFile),
		zap.Strings("jobs", filtering.JobIDs(low)),
	)
	return nil
}
