package util

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsTerminal(t *testing.T) {
	t.Parallel()

	require.False(t, IsTerminal(strings.NewReader("")), "values without a file descriptor are never terminals")

	f, err := os.Create(filepath.Join(t.TempDir(), "items.yaml"))
	require.NoError(t, err)
	defer f.Close()
	require.False(t, IsTerminal(f), "regular files are not terminals")

	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()
	require.False(t, IsTerminal(r), "piped stdin is not a terminal")
}

func TestAcquireTerminal(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("needs a console")
	}
	t.Parallel()

	stdin := os.Stdin
	release, err := AcquireTerminal()
	require.NoError(t, err)
	release()
	require.Same(t, stdin, os.Stdin, "stdin is left alone")
}
