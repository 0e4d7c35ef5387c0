package main

import (
	"testing"

	"job-agent/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateMode(t *testing.T) {
	assert.NoError(t, validateMode("applying"))
	assert.ErrorIs(t, validateMode("tokens"), entity.ErrUnsupportedMode)
	assert.ErrorIs(t, validateMode(""), entity.ErrUnsupportedMode)
}

func TestRootCmd_Flags(t *testing.T) {
	cmd := newRootCmd()

	mode := cmd.Flags().Lookup("mode")
	require.NotNil(t, mode)
	assert.Equal(t, "applying", mode.DefValue)

	baseDir := cmd.Flags().Lookup("base-dir")
	require.NotNil(t, baseDir)
	assert.Equal(t, ".", baseDir.DefValue)
}

func TestRootCmd_RejectsUnknownMode(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--mode", "tokens"})

	err := cmd.Execute()
	assert.ErrorIs(t, err, entity.ErrUnsupportedMode)
}
