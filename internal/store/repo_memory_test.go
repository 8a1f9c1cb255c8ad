package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ravyz/matcher/internal/matching"
	"github.com/ravyz/matcher/internal/profile"
)

func samplePair() (*profile.Candidate, *profile.Job) {
	c := &profile.Candidate{
		ID:           "cand-9",
		PillarScores: profile.PillarScores{Compensation: 3, Ambiente: 4, Proposito: 2, Crescimento: 5},
	}
	j := &profile.Job{
		ID:           "job-9",
		PillarScores: profile.JobPillarScores{Ambition: 3, Teamwork: 4, Leadership: 2, Autonomy: 5},
	}
	return c, j
}

func TestMemoryRepoSaveAndGet(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	ctx := context.Background()

	if _, err := repo.Get(ctx, "cand-1", "job-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	rec := sampleRecord()
	if err := repo.Save(ctx, rec); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.Get(ctx, "cand-1", "job-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ID != rec.ID {
		t.Fatalf("expected id %s, got %s", rec.ID, got.ID)
	}

	replacement := sampleRecord()
	replacement.Strategy = matching.StrategyLegacy
	if err := repo.Save(ctx, replacement); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if repo.Len() != 1 {
		t.Fatalf("expected one record per pair, got %d", repo.Len())
	}
	got, _ = repo.Get(ctx, "cand-1", "job-1")
	if got.Strategy != matching.StrategyLegacy {
		t.Fatalf("expected replaced record, got strategy %q", got.Strategy)
	}
}

func TestMemoryRepoDeleteExpired(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	ctx := context.Background()

	old := sampleRecord()
	fresh := sampleRecord()
	fresh.JobID = "job-2"
	fresh.ExpiresAt = old.ExpiresAt.Add(24 * time.Hour)

	for _, r := range []*matching.Record{old, fresh} {
		if err := repo.Save(ctx, r); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	n, err := repo.DeleteExpired(ctx, old.ExpiresAt)
	if err != nil {
		t.Fatalf("DeleteExpired: %v", err)
	}
	if n != 1 || repo.Len() != 1 {
		t.Fatalf("expected 1 deleted and 1 left, got %d deleted and %d left", n, repo.Len())
	}
}

func TestMemoryRepoHonoursContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repo := NewMemoryRepo()
	if err := repo.Save(ctx, sampleRecord()); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestMemoryRepoConcurrentService(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	svc := matching.NewService(matching.Hybrid{}, repo, time.Hour, nil)
	c, j := samplePair()

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.Match(context.Background(), c, j); err != nil {
				t.Errorf("Match: %v", err)
			}
		}()
	}
	wg.Wait()

	if repo.Len() != 1 {
		t.Fatalf("expected a single stored pair, got %d", repo.Len())
	}
}
