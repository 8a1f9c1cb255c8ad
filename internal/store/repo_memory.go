package store

import (
	"context"
	"sync"
	"time"

	"github.com/ravyz/matcher/internal/matching"
)

type pairKey struct {
	candidateID string
	jobID       string
}

// MemoryRepo keeps match records in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu      sync.RWMutex
	records map[pairKey]matching.Record
}

// NewMemoryRepo constructs an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{records: make(map[pairKey]matching.Record)}
}

// Save stores a copy of the record, replacing any previous one for the pair.
func (r *MemoryRepo) Save(ctx context.Context, record *matching.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[pairKey{record.CandidateID, record.JobID}] = *record
	return nil
}

// Get returns a copy of the stored record.
func (r *MemoryRepo) Get(ctx context.Context, candidateID, jobID string) (*matching.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.records[pairKey{candidateID, jobID}]
	if !ok {
		return nil, ErrNotFound
	}
	return &rec, nil
}

// DeleteExpired drops records that expired at or before now.
func (r *MemoryRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for k, rec := range r.records {
		if rec.Expired(now) {
			delete(r.records, k)
			n++
		}
	}
	return n, nil
}

// Len reports how many records are stored.
func (r *MemoryRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}
