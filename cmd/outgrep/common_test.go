package main

import (
	"errors"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type erroringWriter struct{ err error }

func (e erroringWriter) Write(b []byte) (int, error) { return 0, e.err }

func TestPipeGuardWriter_SwallowsBrokenPipe(t *testing.T) {
	pg := newPipeGuardWriter(erroringWriter{err: syscall.EPIPE})

	n, err := pg.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.True(t, pg.broken)
}

func TestPipeGuardWriter_PropagatesOtherErrors(t *testing.T) {
	sentinel := errors.New("disk full")
	pg := newPipeGuardWriter(erroringWriter{err: sentinel})

	_, err := pg.Write([]byte("hello"))
	require.ErrorIs(t, err, sentinel)
	assert.False(t, pg.broken)
}

func TestBrokenPipe_DetectsEPIPE(t *testing.T) {
	assert.True(t, brokenPipe(syscall.EPIPE))
	assert.False(t, brokenPipe(errors.New("other")))
}
