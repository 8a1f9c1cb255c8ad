package matching

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ravyz/matcher/internal/logger"
	"github.com/ravyz/matcher/internal/profile"
)

// DefaultTTL is how long a stored result stays valid.
const DefaultTTL = 7 * 24 * time.Hour

// ErrRecordNotFound is returned by a Repository when no result is stored for a pair.
var ErrRecordNotFound = errors.New("match record not found")

// Record is a persisted Result keyed by (CandidateID, JobID).
type Record struct {
	ID           uuid.UUID `json:"id"`
	CandidateID  string    `json:"candidate_id"`
	JobID        string    `json:"job_id"`
	Strategy     string    `json:"strategy"`
	Result       *Result   `json:"result"`
	CalculatedAt time.Time `json:"calculated_at"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// Expired reports whether the record must be recomputed at now.
func (r *Record) Expired(now time.Time) bool {
	return !now.Before(r.ExpiresAt)
}

// Repository stores match records. Save replaces any record with the same pair.
type Repository interface {
	Get(ctx context.Context, candidateID, jobID string) (*Record, error)
	Save(ctx context.Context, record *Record) error
}

// Service scores pairs and keeps the results in a Repository. Stored results are
// served until they expire.
type Service struct {
	Strategy Strategy
	Repo     Repository
	TTL      time.Duration
	Logger   *zap.Logger

	now func() time.Time
}

func NewService(strategy Strategy, repo Repository, ttl time.Duration, log *zap.Logger) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{
		Strategy: strategy,
		Repo:     repo,
		TTL:      ttl,
		Logger:   logger.WithFields(log),
		now:      time.Now,
	}
}

func (s *Service) ttl() time.Duration {
	if s.TTL <= 0 {
		return DefaultTTL
	}
	return s.TTL
}

func (s *Service) clock() time.Time {
	if s.now == nil {
		return time.Now().UTC()
	}
	return s.now().UTC()
}

// Match returns the stored result for the pair when it is still valid and was
// produced by the same strategy, and computes and stores a new one otherwise.
func (s *Service) Match(ctx context.Context, candidate *profile.Candidate, job *profile.Job) (*Record, error) {
	if candidate == nil || job == nil {
		return nil, profile.ErrInvalidProfile
	}
	log := logger.WithMatchFields(s.Logger, candidate.ID, job.ID, s.Strategy.Name())

	stored, err := s.Repo.Get(ctx, candidate.ID, job.ID)
	switch {
	case errors.Is(err, ErrRecordNotFound):
		log.Debug("no stored result")
	case err != nil:
		return nil, err
	case stored.Strategy != s.Strategy.Name():
		log.Debug("stored result uses another strategy", zap.String("stored_strategy", stored.Strategy))
	case stored.Expired(s.clock()):
		log.Debug("stored result expired", zap.Time("expires_at", stored.ExpiresAt))
	default:
		log.Debug("serving stored result", logger.Score(stored.Result.FinalScore))
		return stored, nil
	}

	return s.compute(ctx, log, candidate, job)
}

// Recompute scores the pair and overwrites whatever is stored.
func (s *Service) Recompute(ctx context.Context, candidate *profile.Candidate, job *profile.Job) (*Record, error) {
	if candidate == nil || job == nil {
		return nil, profile.ErrInvalidProfile
	}
	log := logger.WithMatchFields(s.Logger, candidate.ID, job.ID, s.Strategy.Name())
	return s.compute(ctx, log, candidate, job)
}

func (s *Service) compute(ctx context.Context, log *zap.Logger, candidate *profile.Candidate, job *profile.Job) (*Record, error) {
	result, err := s.Strategy.Score(candidate, job)
	if err != nil {
		return nil, err
	}

	now := s.clock()
	record := &Record{
		ID:           uuid.New(),
		CandidateID:  candidate.ID,
		JobID:        job.ID,
		Strategy:     result.Strategy,
		Result:       result,
		CalculatedAt: now,
		ExpiresAt:    now.Add(s.ttl()),
	}

	if err := s.Repo.Save(ctx, record); err != nil {
		return nil, err
	}

	log.Info("match computed", logger.Score(result.FinalScore))
	return record, nil
}
