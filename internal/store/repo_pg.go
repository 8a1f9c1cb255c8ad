package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ravyz/matcher/internal/matching"
)

// ErrNotFound is returned when no record exists for a candidate/job pair.
var ErrNotFound = matching.ErrRecordNotFound

// PGRepo stores match records in the match_results table.
type PGRepo struct {
	DB *sql.DB
}

var (
	_ matching.Repository = (*PGRepo)(nil)
	_ matching.Repository = (*MemoryRepo)(nil)
)

// Save inserts the record, replacing any previous record for the same pair.
func (r *PGRepo) Save(ctx context.Context, record *matching.Record) error {
	const query = `
INSERT INTO match_results (id, candidate_id, job_id, strategy, final_score, result, calculated_at, expires_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (candidate_id, job_id) DO UPDATE SET
	id = EXCLUDED.id,
	strategy = EXCLUDED.strategy,
	final_score = EXCLUDED.final_score,
	result = EXCLUDED.result,
	calculated_at = EXCLUDED.calculated_at,
	expires_at = EXCLUDED.expires_at`

	if record == nil || record.Result == nil {
		return errors.New("match record without result")
	}
	payload, err := json.Marshal(record.Result)
	if err != nil {
		return fmt.Errorf("encode match result: %w", err)
	}

	_, err = r.DB.ExecContext(ctx, query,
		record.ID,
		record.CandidateID,
		record.JobID,
		record.Strategy,
		record.Result.FinalScore,
		payload,
		record.CalculatedAt,
		record.ExpiresAt,
	)
	return err
}

// Get returns the record stored for the pair, expired or not.
func (r *PGRepo) Get(ctx context.Context, candidateID, jobID string) (*matching.Record, error) {
	const query = `
SELECT id, candidate_id, job_id, strategy, result, calculated_at, expires_at
FROM match_results
WHERE candidate_id = $1 AND job_id = $2
LIMIT 1`

	var (
		rec     matching.Record
		payload []byte
	)
	err := r.DB.QueryRowContext(ctx, query, candidateID, jobID).Scan(
		&rec.ID,
		&rec.CandidateID,
		&rec.JobID,
		&rec.Strategy,
		&payload,
		&rec.CalculatedAt,
		&rec.ExpiresAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	rec.Result = &matching.Result{}
	if err := json.Unmarshal(payload, rec.Result); err != nil {
		return nil, fmt.Errorf("decode match result %s: %w", rec.ID, err)
	}
	return &rec, nil
}

// DeleteExpired removes every record that expired at or before now and reports how many.
func (r *PGRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM match_results WHERE expires_at <= $1`, now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
