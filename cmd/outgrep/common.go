package main

import (
	"errors"
	"io"
	"os"
	"syscall"

	"github.com/fatih/color"

	"github.com/tomwhiting/outgrep/internal/config"
	"github.com/tomwhiting/outgrep/internal/diag"
)

// loadConfig resolves .outgrep.kdl under --root and layers CLI
// overrides on top, mirroring the teacher's loadConfigWithOverrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagRoot)
	if err != nil {
		return config.Config{}, err
	}
	cfg.Project.Root = flagRoot
	if len(flagInclude) > 0 {
		cfg.Walk.Include = flagInclude
	}
	if len(flagExclude) > 0 {
		cfg.Walk.Exclude = append(cfg.Walk.Exclude, flagExclude...)
	}
	if flagNoColor {
		color.NoColor = true
	}
	return cfg, nil
}

// brokenPipe reports whether err is the result of writing to a closed
// pipe (e.g. `outgrep grep ... | head`). spec.md §5/§7: this must
// terminate the run with success, not an error.
func brokenPipe(err error) bool {
	return errors.Is(err, syscall.EPIPE) || errors.Is(err, os.ErrClosed)
}

// pipeGuardWriter wraps stdout, remembering whether a write failed
// with a broken pipe so the caller can exit 0 instead of propagating
// the write error up as a CLI failure.
type pipeGuardWriter struct {
	w      io.Writer
	broken bool
}

func newPipeGuardWriter(w io.Writer) *pipeGuardWriter {
	return &pipeGuardWriter{w: w}
}

func (p *pipeGuardWriter) Write(b []byte) (int, error) {
	n, err := p.w.Write(b)
	if err != nil && brokenPipe(err) {
		p.broken = true
		diag.Tracef("outgrep: output pipe closed, ending run")
		return n, nil
	}
	return n, err
}
