package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ravyz/matcher/internal/logger"
	"github.com/ravyz/matcher/internal/matching"
	"github.com/ravyz/matcher/internal/profile"
	"github.com/ravyz/matcher/internal/store"
	"github.com/ravyz/matcher/internal/utils"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score one candidate against one job",
	Run: func(cmd *cobra.Command, _ []string) {
		match(cmd)
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().StringP("candidate", "c", "", "candidate profile JSON file")
	matchCmd.Flags().StringP("job", "J", "", "job profile JSON file")
	matchCmd.Flags().StringP("strategy", "s", "", "scoring strategy: hybrid, pillar or legacy")
	matchCmd.Flags().BoolP("persist", "p", false, "serve and store results through the database")
	matchCmd.Flags().Bool("recompute", false, "ignore a stored result (requires --persist)")
	matchCmd.MarkFlagRequired("candidate")
	matchCmd.MarkFlagRequired("job")
}

func match(cmd *cobra.Command) {
	ctx := context.Background()
	l, config := setup()

	candidatePath, _ := cmd.Flags().GetString("candidate")
	jobPath, _ := cmd.Flags().GetString("job")

	candidate, err := loadCandidate(candidatePath)
	if err != nil {
		l.Fatal("loading candidate", zap.Error(err))
	}
	job, err := loadJob(jobPath)
	if err != nil {
		l.Fatal("loading job", zap.Error(err))
	}

	strategy, err := selectStrategy(cmd, config)
	if err != nil {
		l.Fatal("selecting strategy", zap.Error(err), zap.Strings("available", matching.Strategies()))
	}
	l = logger.WithMatchFields(l, candidate.ID, job.ID, strategy.Name())

	if persist, _ := cmd.Flags().GetBool("persist"); !persist {
		result, err := strategy.Score(candidate, job)
		if err != nil {
			l.Fatal("scoring", zap.Error(err))
		}
		l.Info("match computed", logger.Score(result.FinalScore))
		if err := utils.WriteJSON(cmd.OutOrStdout(), result); err != nil {
			l.Fatal("writing result", zap.Error(err))
		}
		return
	}

	db, err := openDatabase(ctx, config, l)
	if err != nil {
		l.Fatal("opening database", zap.Error(err))
	}
	defer db.Close()

	svc := matching.NewService(strategy, &store.PGRepo{DB: db}, config.ResultTTL, l)
	compute := svc.Match
	if recompute, _ := cmd.Flags().GetBool("recompute"); recompute {
		compute = svc.Recompute
	}

	record, err := compute(ctx, candidate, job)
	if err != nil {
		l.Fatal("matching", zap.Error(err))
	}
	if err := utils.WriteJSON(cmd.OutOrStdout(), record); err != nil {
		l.Fatal("writing result", zap.Error(err))
	}
}

// selectStrategy prefers the --strategy flag over the configured strategy.
func selectStrategy(cmd *cobra.Command, config *Config) (matching.Strategy, error) {
	name := config.Strategy
	if flag := cmd.Flags().Lookup("strategy"); flag != nil && flag.Changed {
		name = flag.Value.String()
	}
	return matching.Lookup(name)
}

func loadCandidate(path string) (*profile.Candidate, error) {
	raw, err := utils.ReadJSONFile[map[string]any](path)
	if err != nil {
		return nil, err
	}
	c, err := profile.DecodeCandidate(raw)
	if err != nil {
		return nil, fmt.Errorf("candidate %s: %w", path, err)
	}
	return c, nil
}

func loadJob(path string) (*profile.Job, error) {
	raw, err := utils.ReadJSONFile[map[string]any](path)
	if err != nil {
		return nil, err
	}
	j, err := profile.DecodeJob(raw)
	if err != nil {
		return nil, fmt.Errorf("job %s: %w", path, err)
	}
	return j, nil
}

func loadJobs(path string) ([]*profile.Job, error) {
	raw, err := utils.ReadJSONFile[[]map[string]any](path)
	if err != nil {
		return nil, err
	}
	jobs := make([]*profile.Job, 0, len(raw))
	for i, item := range raw {
		j, err := profile.DecodeJob(item)
		if err != nil {
			return nil, fmt.Errorf("job #%d in %s: %w", i, path, err)
		}
		jobs = append(jobs, j)
	}
	return jobs, nil
}
