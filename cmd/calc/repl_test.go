package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHistory struct {
	lines string
	err   error
}

func (h fakeHistory) WriteHistory(w io.Writer) (int, error) {
	if h.err != nil {
		return 0, h.err
	}
	n, err := io.WriteString(w, h.lines)
	return n, err
}

func TestSaveHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")
	saveHistory(fakeHistory{lines: "1+1\n2*3\n"}, path, zerolog.Nop())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1+1\n2*3\n", string(data))
}

func TestSaveHistoryEmptyPath(t *testing.T) {
	// Must be a no-op rather than creating a file named "".
	saveHistory(fakeHistory{lines: "1+1\n"}, "", zerolog.Nop())
}

func TestSaveHistoryWriteError(t *testing.T) {
	// Failures are logged, not fatal.
	path := filepath.Join(t.TempDir(), "history")
	assert.NotPanics(t, func() {
		saveHistory(fakeHistory{err: errors.New("tty gone")}, path, zerolog.Nop())
	})
}
