package diag

import (
	"testing"
)

func TestStats_SnapshotReflectsIncrements(t *testing.T) {
	s := &Stats{RunID: "test-run"}
	s.IncFilesWalked()
	s.IncFilesWalked()
	s.IncFilesSkipped()
	s.IncParseFailures()
	s.AddMatchesEmitted(3)
	s.IncFallbackEmbedding()
	s.IncIOErrors()

	snap := s.Snapshot()
	if snap.RunID != "test-run" {
		t.Errorf("RunID = %q, want %q", snap.RunID, "test-run")
	}
	if snap.FilesWalked != 2 {
		t.Errorf("FilesWalked = %d, want 2", snap.FilesWalked)
	}
	if snap.FilesSkipped != 1 {
		t.Errorf("FilesSkipped = %d, want 1", snap.FilesSkipped)
	}
	if snap.MatchesEmitted != 3 {
		t.Errorf("MatchesEmitted = %d, want 3", snap.MatchesEmitted)
	}
	if snap.IOErrors != 1 {
		t.Errorf("IOErrors = %d, want 1", snap.IOErrors)
	}
}

func TestNewRunID_ProducesDistinctIDs(t *testing.T) {
	a := NewRunID()
	b := NewRunID()
	if a == b {
		t.Error("expected two calls to NewRunID to differ")
	}
	if a == "" {
		t.Error("expected a non-empty run id")
	}
}

func TestSnapshot_StringIncludesRunID(t *testing.T) {
	s := &Stats{RunID: "abc123"}
	out := s.Snapshot().String()
	if out == "" {
		t.Fatal("expected non-empty stats string")
	}
	if want := "run=abc123"; !contains(out, want) {
		t.Errorf("String() = %q, want it to contain %q", out, want)
	}
}

func contains(s, substr string) bool {
	return len(s) >= len(substr) && (func() bool {
		for i := 0; i+len(substr) <= len(s); i++ {
			if s[i:i+len(substr)] == substr {
				return true
			}
		}
		return false
	})()
}
