package logger_test

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"topdown/internal/logger"
)

func TestLogger(t *testing.T) {
	t.Run("should write records to the file and the buffer", func(t *testing.T) {
		// given
		path := filepath.Join(t.TempDir(), "logs", "test.log")
		l := logger.New(logger.Options{Path: path, Level: slog.LevelInfo, ToFile: true})
		// when
		l.Info("order issued", "units", 2)
		l.Debug("hidden")
		require.NoError(t, l.Close())
		// then
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), `msg="order issued" units=2`)
		assert.NotContains(t, string(data), "hidden")
		lines := l.Lines()
		require.Len(t, lines, 1)
		assert.Contains(t, lines[0], "level=INFO")
	})
	t.Run("should keep only the most recent lines", func(t *testing.T) {
		l := logger.New(logger.Options{Path: filepath.Join(t.TempDir(), "x.log"), ToFile: true})
		defer l.Close()
		for i := range logger.MaxLines + 5 {
			l.Print(fmt.Sprintf("line %d", i))
		}
		lines := l.Lines()
		assert.Len(t, lines, logger.MaxLines)
		assert.Equal(t, "line 5", lines[0])
		assert.Equal(t, fmt.Sprintf("line %d", logger.MaxLines+4), lines[len(lines)-1])
	})
	t.Run("should return a copy of the lines", func(t *testing.T) {
		l := logger.New(logger.Options{})
		l.Print("a")
		lines := l.Lines()
		lines[0] = "b"
		assert.Equal(t, []string{"a"}, l.Lines())
		assert.NoError(t, l.Close())
	})
}
