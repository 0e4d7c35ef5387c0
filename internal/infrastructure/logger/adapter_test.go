package logger

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSanitize(t *testing.T) {
	assert.Equal(t, "applying", sanitize("applying"))
	assert.Equal(t, "a_b_c", sanitize("a b/c"))
	assert.Equal(t, "task", sanitize(""))
	assert.Len(t, sanitize(strings.Repeat("x", 100)), 60)
}

func TestLoggerAdapter_FieldsAreAttached(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := NewFromZap(zap.New(core))

	l.WithField("mode", "applying").Info("run started", "provider", "openai")
	l.WithFields(map[string]any{"step": 3}).Warn("slow step")

	entries := logs.All()
	require.Len(t, entries, 2)

	first := entries[0].ContextMap()
	assert.Equal(t, "run started", entries[0].Message)
	assert.Equal(t, "applying", first["mode"])
	assert.Equal(t, "openai", first["provider"])

	second := entries[1].ContextMap()
	assert.EqualValues(t, 3, second["step"])
	assert.NoError(t, l.Close())
}

func TestNewLoggerAdapter_CreatesFile(t *testing.T) {
	chdir(t, t.TempDir())

	l, err := NewLoggerAdapter("applying run")
	require.NoError(t, err)
	l.Info("hello")
	require.NoError(t, l.Close())

	assert.DirExists(t, "log")
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
