// Package diag provides process-wide diagnostics: a gated debug trace
// writer and a set of run counters, printed by the CLI with --stats.
// There is no global mutable core state (spec.md §5) — this package is
// purely observational plumbing around it, mirroring the teacher's
// internal/debug package but trimmed to what outgrep's walker and
// core actually need to report.
package diag

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

var (
	traceMu     sync.Mutex
	traceOutput io.Writer
	enabled     atomic.Bool
)

// Enable turns on trace output, defaulting to stderr when w is nil.
func Enable(w io.Writer) {
	traceMu.Lock()
	defer traceMu.Unlock()
	if w == nil {
		w = os.Stderr
	}
	traceOutput = w
	enabled.Store(true)
}

// Disable silences trace output.
func Disable() {
	enabled.Store(false)
}

// Tracef writes a formatted trace line if diagnostics are enabled.
// Safe to call concurrently from per-file workers.
func Tracef(format string, args ...any) {
	if !enabled.Load() {
		return
	}
	traceMu.Lock()
	defer traceMu.Unlock()
	if traceOutput == nil {
		return
	}
	fmt.Fprintf(traceOutput, format+"\n", args...)
}

// NewRunID returns a fresh run identifier for tagging --stats output,
// so separate invocations' counters are distinguishable in logs piped
// to a shared file.
func NewRunID() string {
	return uuid.New().String()
}

// Stats accumulates per-run counters. The zero value is ready to use;
// all methods are safe for concurrent use from bounded worker pools.
type Stats struct {
	RunID             string
	filesWalked       atomic.Int64
	filesSkipped      atomic.Int64
	filesParsed       atomic.Int64
	parseFailures     atomic.Int64
	matchesEmitted    atomic.Int64
	symbolsEmitted    atomic.Int64
	fallbackEmbedding atomic.Int64
	ioErrors          atomic.Int64
}

func (s *Stats) IncFilesWalked()       { s.filesWalked.Add(1) }
func (s *Stats) IncFilesSkipped()      { s.filesSkipped.Add(1) }
func (s *Stats) IncFilesParsed()       { s.filesParsed.Add(1) }
func (s *Stats) IncParseFailures()     { s.parseFailures.Add(1) }
func (s *Stats) AddMatchesEmitted(n int) { s.matchesEmitted.Add(int64(n)) }
func (s *Stats) IncSymbolsEmitted()    { s.symbolsEmitted.Add(1) }
func (s *Stats) IncFallbackEmbedding() { s.fallbackEmbedding.Add(1) }
func (s *Stats) IncIOErrors()          { s.ioErrors.Add(1) }

// Snapshot is a point-in-time, non-atomic copy suitable for printing.
type Snapshot struct {
	RunID             string
	FilesWalked       int64
	FilesSkipped      int64
	FilesParsed       int64
	ParseFailures     int64
	MatchesEmitted    int64
	SymbolsEmitted    int64
	FallbackEmbedding int64
	IOErrors          int64
}

func (s *Stats) Snapshot() Snapshot {
	return Snapshot{
		RunID:             s.RunID,
		FilesWalked:       s.filesWalked.Load(),
		FilesSkipped:      s.filesSkipped.Load(),
		FilesParsed:       s.filesParsed.Load(),
		ParseFailures:     s.parseFailures.Load(),
		MatchesEmitted:    s.matchesEmitted.Load(),
		SymbolsEmitted:    s.symbolsEmitted.Load(),
		FallbackEmbedding: s.fallbackEmbedding.Load(),
		IOErrors:          s.ioErrors.Load(),
	}
}

func (s Snapshot) String() string {
	return fmt.Sprintf(
		"run=%s files: walked=%d skipped=%d parsed=%d parse_failures=%d | matches=%d symbols=%d fallback_embeddings=%d io_errors=%d",
		s.RunID, s.FilesWalked, s.FilesSkipped, s.FilesParsed, s.ParseFailures,
		s.MatchesEmitted, s.SymbolsEmitted, s.FallbackEmbedding, s.IOErrors,
	)
}
