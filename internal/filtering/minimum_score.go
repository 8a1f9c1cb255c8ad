package filtering

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/ravyz/matcher/internal/matching"
	"github.com/ravyz/matcher/internal/utils"
)

const explanationPreview = 80

type minimumScoreFilter struct {
	toggle
	minimum float64
}

// NewMinimumScore creates a filter that drops results scoring below filters.minimum-score.
func NewMinimumScore() Filter {
	return &minimumScoreFilter{}
}

func (f *minimumScoreFilter) Name() string { return "minimum_score" }

func (f *minimumScoreFilter) Validate(cfg *Config) error {
	f.minimum = 0
	if cfg == nil {
		return nil
	}
	if cfg.MinimumScore < 0 || cfg.MinimumScore > 100 {
		return fmt.Errorf("minimum score %.1f is outside [0,100]", cfg.MinimumScore)
	}
	f.minimum = cfg.MinimumScore
	return nil
}

func (f *minimumScoreFilter) Apply(_ context.Context, deps Deps, r *Recommendations) (*Recommendations, Step, error) {
	initial := r.Len()
	if f.minimum <= 0 {
		return r, Step{Initial: initial, Left: initial}, nil
	}

	removed := r.Keep(func(res *matching.Result) bool {
		return float64(res.FinalScore) >= f.minimum
	})
	for _, res := range removed {
		deps.Logger.Debug("job below minimum score",
			zap.String("job_id", res.JobID),
			zap.Int("final_score", res.FinalScore),
			zap.String("explanation", utils.TruncateForLog(res.Explanation, explanationPreview)),
		)
	}

	return r, Step{Initial: initial, Dropped: len(removed), Left: r.Len()}, nil
}

func (f *minimumScoreFilter) Status() Status {
	return Status{
		Name:    f.Name(),
		Enabled: f.IsEnabled(),
		Reason:  f.reason,
		Details: map[string]string{"minimum_score": strconv.FormatFloat(f.minimum, 'f', 1, 64)},
	}
}
