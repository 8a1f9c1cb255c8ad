// Package filtering narrows ranked match results down before they are shown.
package filtering

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Filter represents a single filtering step applied to recommendations.
type Filter interface {
	Name() string
	Disable(reason string)
	IsEnabled() bool

	Validate(cfg *Config) error
	Apply(ctx context.Context, deps Deps, r *Recommendations) (*Recommendations, Step, error)
}

// Deps aggregates dependencies shared across all filtering steps.
type Deps struct {
	Logger *zap.Logger
}

// Step describes the result of executing a filtering step.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

// Config contains configuration settings consumed by the filters.
type Config struct {
	MinimumScore float64  `mapstructure:"minimum-score"`
	ExcludeFile  string   `mapstructure:"exclude-file"`
	WorkModels   []string `mapstructure:"work-models"`
}

// Status represents runtime information about a filter.
type Status struct {
	Name    string            `json:"name"`
	Enabled bool              `json:"enabled"`
	Reason  string            `json:"reason,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

type statusProvider interface {
	Status() Status
}

// Default returns the standard pipeline in execution order.
func Default() []Filter {
	return []Filter{
		NewExcludeFile(),
		NewWorkModel(),
		NewMinimumScore(),
	}
}

// DisableByName marks a filter with the provided name as disabled while keeping it in the list.
func DisableByName(steps []Filter, name, reason string) {
	for _, step := range steps {
		if step.Name() == name {
			step.Disable(reason)
		}
	}
}

// Run validates every enabled filter, then applies them in order.
func Run(ctx context.Context, cfg *Config, deps Deps, steps []Filter, r *Recommendations) (*Recommendations, error) {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	for _, step := range steps {
		if !step.IsEnabled() {
			continue
		}
		if err := step.Validate(cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}
	}

	for _, step := range steps {
		if !step.IsEnabled() {
			deps.Logger.Info("filter disabled", zap.String("name", step.Name()))
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		next, info, err := step.Apply(ctx, deps, r)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}

		deps.Logger.Info("filter step",
			zap.String("name", step.Name()),
			zap.Int("initial", info.Initial),
			zap.Int("dropped", info.Dropped),
			zap.Int("left", info.Left),
		)

		r = next
	}

	return r, nil
}

// Describe returns status entries for the provided filters.
func Describe(steps []Filter) []Status {
	statuses := make([]Status, 0, len(steps))
	for _, step := range steps {
		if reporter, ok := step.(statusProvider); ok {
			statuses = append(statuses, reporter.Status())
			continue
		}

		statuses = append(statuses, Status{
			Name:    step.Name(),
			Enabled: step.IsEnabled(),
		})
	}
	return statuses
}

// toggle carries the enabled state shared by every filter.
type toggle struct {
	disabled bool
	reason   string
}

func (t *toggle) Disable(reason string) {
	t.disabled = true
	t.reason = reason
}

func (t *toggle) IsEnabled() bool { return !t.disabled }
