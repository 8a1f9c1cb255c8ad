package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ravyz/matcher/internal/matching"
)

func TestVersionListsStrategies(t *testing.T) {
	var out bytes.Buffer
	versionCmd.SetOut(&out)
	versionCmd.Run(versionCmd, nil)

	if !strings.Contains(out.String(), app+" version: ") {
		t.Fatalf("unexpected output: %q", out.String())
	}
	for _, name := range matching.Strategies() {
		if !strings.Contains(out.String(), name) {
			t.Fatalf("expected strategy %q in %q", name, out.String())
		}
	}
}

func TestGetConfigDefaults(t *testing.T) {
	config, err := getConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.Strategy != matching.StrategyHybrid {
		t.Fatalf("expected default strategy, got %q", config.Strategy)
	}
	if config.ResultTTL != matching.DefaultTTL {
		t.Fatalf("expected default ttl, got %s", config.ResultTTL)
	}
	if config.Workers <= 0 {
		t.Fatalf("expected positive worker count, got %d", config.Workers)
	}
	if config.Filters == nil || config.Database == nil {
		t.Fatalf("expected nested sections to be initialised: %+v", config)
	}
	if config.Database.PingTimeout <= 0 || config.Database.MaxOpenConns <= 0 {
		t.Fatalf("expected database defaults, got %+v", config.Database.Options)
	}
}

func TestLoadProfiles(t *testing.T) {
	dir := t.TempDir()
	candidate := filepath.Join(dir, "candidate.json")
	jobs := filepath.Join(dir, "jobs.json")

	write := func(path, content string) {
		t.Helper()
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
	write(candidate, `{"id": "cand-1", "years_experience": "4", "skills": ["Go"], "pillar_scores": {"compensation": 4}}`)
	write(jobs, `[{"id": "job-1", "work_model": "Remoto"}, {"id": "job-2", "min_experience": 3}]`)

	c, err := loadCandidate(candidate)
	if err != nil {
		t.Fatalf("loadCandidate: %v", err)
	}
	if c.ID != "cand-1" || c.YearsExperience == nil || *c.YearsExperience != 4 {
		t.Fatalf("unexpected candidate: %+v", c)
	}

	list, err := loadJobs(jobs)
	if err != nil {
		t.Fatalf("loadJobs: %v", err)
	}
	if len(list) != 2 || list[0].WorkModel != "Remoto" || *list[1].MinExperience != 3 {
		t.Fatalf("unexpected jobs: %+v", list)
	}
}

func TestSelectStrategy(t *testing.T) {
	s, err := selectStrategy(matchCmd, &Config{Strategy: matching.StrategyLegacy})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Name() != matching.StrategyLegacy {
		t.Fatalf("expected configured strategy, got %q", s.Name())
	}

	if err := matchCmd.Flags().Set("strategy", matching.StrategyPillar); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	t.Cleanup(func() {
		flag := matchCmd.Flags().Lookup("strategy")
		_ = flag.Value.Set(flag.DefValue)
		flag.Changed = false
	})

	s, err = selectStrategy(matchCmd, &Config{Strategy: matching.StrategyLegacy})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Name() != matching.StrategyPillar {
		t.Fatalf("expected flag to win, got %q", s.Name())
	}
}
