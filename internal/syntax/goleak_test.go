package syntax

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain ensures the cgo-backed tree-sitter parsers this package
// constructs don't leak goroutines across tests, mirroring the
// teacher's internal/core/goleak_test.go pattern.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("internal/poll.runtime_pollWait"),
	)
}
