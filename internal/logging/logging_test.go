package logging

import (
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWritesToDataDir(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(prev)
		log.SetOutput(os.Stderr)
	})

	dir := t.TempDir()
	closer, err := Init(dir, slog.LevelInfo)
	require.NoError(t, err)

	Logger.Info("timer mounted", "seconds", 60)
	Logger.Debug("filtered out")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(filepath.Join(dir, "logs", "countdown.log"))
	require.NoError(t, err)

	out := string(data)
	assert.True(t, strings.Contains(out, "timer mounted"))
	assert.True(t, strings.Contains(out, "seconds=60"))
	assert.False(t, strings.Contains(out, "filtered out"))
}
