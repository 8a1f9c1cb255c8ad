package filtering

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/ravyz/matcher/internal/matching"
)

type workModelFilter struct {
	toggle
	accepted map[string]bool
	names    []string
}

// NewWorkModel creates a filter that keeps jobs whose work model is listed in
// filters.work-models. Jobs without a work model are kept.
func NewWorkModel() Filter {
	return &workModelFilter{}
}

func (f *workModelFilter) Name() string { return "work_model" }

func (f *workModelFilter) Validate(cfg *Config) error {
	f.accepted = map[string]bool{}
	f.names = nil
	if cfg == nil {
		return nil
	}
	for _, wm := range cfg.WorkModels {
		key := matching.Normalize(wm)
		if key == "" || f.accepted[key] {
			continue
		}
		f.accepted[key] = true
		f.names = append(f.names, strings.TrimSpace(wm))
	}
	return nil
}

func (f *workModelFilter) Apply(_ context.Context, deps Deps, r *Recommendations) (*Recommendations, Step, error) {
	initial := r.Len()
	if len(f.accepted) == 0 {
		return r, Step{Initial: initial, Left: initial}, nil
	}

	removed := r.Keep(func(res *matching.Result) bool {
		job := r.Job(res)
		if job == nil {
			return true
		}
		wm := matching.Normalize(job.WorkModel)
		return wm == "" || f.accepted[wm]
	})
	if len(removed) > 0 {
		deps.Logger.Info("excluding jobs by work model",
			zap.Strings("accepted_work_models", f.names),
			zap.Strings("excluded_jobs", JobIDs(removed)),
			zap.Int("jobs_left", r.Len()),
		)
	}

	return r, Step{Initial: initial, Dropped: len(removed), Left: r.Len()}, nil
}

func (f *workModelFilter) Status() Status {
	details := map[string]string{}
	if len(f.names) > 0 {
		details["work_models"] = strings.Join(f.names, ",")
	}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}
