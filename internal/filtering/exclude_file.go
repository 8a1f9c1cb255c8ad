package filtering

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ravyz/matcher/internal/matching"
)

// ExcludedJobs is the content of an exclude file.
type ExcludedJobs struct {
	Items []*ExcludedJob `json:"items"`
}

// ExcludedJob records why a job should no longer be recommended.
type ExcludedJob struct {
	JobID       string    `json:"job_id"`
	CandidateID string    `json:"candidate_id,omitempty"`
	FinalScore  int       `json:"final_score,omitempty"`
	Reason      string    `json:"reason,omitempty"`
	ExcludedAt  time.Time `json:"excluded_at"`
}

// LoadExcludedJobs reads an exclude file. A missing or empty file yields an empty list.
func LoadExcludedJobs(path string) (*ExcludedJobs, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &ExcludedJobs{}, nil
	}
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return &ExcludedJobs{}, nil
	}

	var excluded ExcludedJobs
	if err := json.Unmarshal(data, &excluded); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return &excluded, nil
}

// ToExcluded converts results into exclude entries with a shared reason.
func ToExcluded(results []*matching.Result, reason string, now time.Time) *ExcludedJobs {
	excluded := &ExcludedJobs{}
	for _, r := range results {
		excluded.Items = append(excluded.Items, &ExcludedJob{
			JobID:       r.JobID,
			CandidateID: r.CandidateID,
			FinalScore:  r.FinalScore,
			Reason:      reason,
			ExcludedAt:  now.UTC(),
		})
	}
	return excluded
}

// Append adds entries whose job id is not excluded yet.
func (e *ExcludedJobs) Append(other *ExcludedJobs) {
	seen := make(map[string]bool, len(e.Items))
	for _, item := range e.Items {
		seen[item.JobID] = true
	}
	for _, item := range other.Items {
		if seen[item.JobID] {
			continue
		}
		seen[item.JobID] = true
		e.Items = append(e.Items, item)
	}
}

// JobIDs returns the set of excluded job ids.
func (e *ExcludedJobs) JobIDs() map[string]bool {
	ids := make(map[string]bool, len(e.Items))
	for _, item := range e.Items {
		ids[item.JobID] = true
	}
	return ids
}

// ToFile writes the list as indented JSON, replacing the file.
func (e *ExcludedJobs) ToFile(path string) error {
	data, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

type excludeFileFilter struct {
	toggle
	path string
}

// NewExcludeFile creates a filter that removes jobs listed in the exclude file.
func NewExcludeFile() Filter {
	return &excludeFileFilter{}
}

func (f *excludeFileFilter) Name() string { return "exclude_file" }

func (f *excludeFileFilter) Validate(cfg *Config) error {
	f.path = ""
	if cfg != nil {
		f.path = strings.TrimSpace(cfg.ExcludeFile)
	}
	return nil
}

func (f *excludeFileFilter) Apply(_ context.Context, deps Deps, r *Recommendations) (*Recommendations, Step, error) {
	initial := r.Len()
	if f.path == "" {
		return r, Step{Initial: initial, Left: initial}, nil
	}

	excluded, err := LoadExcludedJobs(f.path)
	if err != nil {
		return r, Step{}, fmt.Errorf("getting excluded jobs from file: %w", err)
	}

	ids := excluded.JobIDs()
	removed := r.Keep(func(res *matching.Result) bool { return !ids[res.JobID] })
	if len(removed) > 0 {
		deps.Logger.Info("excluding jobs based on exclude file",
			zap.String("path", f.path),
			zap.Strings("excluded_jobs", JobIDs(removed)),
			zap.Int("jobs_left", r.Len()),
		)
	}

	return r, Step{Initial: initial, Dropped: len(removed), Left: r.Len()}, nil
}

func (f *excludeFileFilter) Status() Status {
	details := map[string]string{}
	if f.path != "" {
		details["path"] = f.path
	}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}
