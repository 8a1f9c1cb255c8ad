package utils

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestReadJSONFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "answers.json")
	if err := os.WriteFile(path, []byte(`{"q1": 4, "q2": 5}`), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := ReadJSONFile[map[string]int](path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got["q1"] != 4 || got["q2"] != 5 {
		t.Fatalf("unexpected content: %v", got)
	}

	if _, err := ReadJSONFile[map[string]int](filepath.Join(dir, "missing.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{`), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := ReadJSONFile[map[string]int](bad); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WriteJSON(&buf, map[string]int{"final_score": 86}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := buf.String(), "{\n  \"final_score\": 86\n}\n"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
