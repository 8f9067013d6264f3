package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithoutPathIsNop(t *testing.T) {
	l, err := New("dev", "")
	require.NoError(t, err)
	require.NotNil(t, l)

	// Must not panic or write anywhere.
	l.Info("ignored", "k", "v")
	l.With("run_id", "abc").Warn("ignored")
	l.Sync()
}

func TestNewWritesToFile(t *testing.T) {
	for _, mode := range []string{"dev", "prod"} {
		t.Run(mode, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "pathwise.log")
			l, err := New(mode, path)
			require.NoError(t, err)

			l.With("component", "test").Info("analysis finished", "skills", 4)
			l.Sync()

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			out := string(data)
			assert.True(t, strings.Contains(out, "analysis finished"), "log output: %s", out)
			assert.True(t, strings.Contains(out, "component"), "log output: %s", out)
		})
	}
}
