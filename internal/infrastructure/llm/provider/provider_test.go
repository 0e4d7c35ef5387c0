package provider

import (
	"testing"

	"job-agent/internal/domain/entity"
	"job-agent/internal/infrastructure/env"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseName(t *testing.T) {
	tests := []struct {
		raw  string
		want Name
	}{
		{"", OpenAI},
		{"openai", OpenAI},
		{"something-else", OpenAI},
		{"DeepSeek", DeepSeek},
		{"browser_use", BrowserUse},
		{"browser-use", BrowserUse},
		{" BrowserUse ", BrowserUse},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseName(tt.raw))
		})
	}
}

func TestSelect_OpenAIDefaults(t *testing.T) {
	s, err := Select(env.NewMapEnv(map[string]string{"OPENAI_API_KEY": "sk-1"}))
	require.NoError(t, err)

	assert.Equal(t, OpenAI, s.Provider)
	assert.Equal(t, "sk-1", s.APIKey)
	assert.Equal(t, defaultOpenAIModel, s.Model)
	assert.Equal(t, defaultOpenAIBaseURL, s.BaseURL)
}

func TestSelect_OpenAIKeyAlias(t *testing.T) {
	s, err := Select(env.NewMapEnv(map[string]string{
		"OPEN_AI_API_KEY": "sk-alias",
		"OPENAI_MODEL":    "gpt-4o-mini",
	}))
	require.NoError(t, err)

	assert.Equal(t, "sk-alias", s.APIKey)
	assert.Equal(t, "gpt-4o-mini", s.Model)
}

func TestSelect_OpenAIPrimaryKeyWins(t *testing.T) {
	s, err := Select(env.NewMapEnv(map[string]string{
		"OPENAI_API_KEY":  "sk-primary",
		"OPEN_AI_API_KEY": "sk-alias",
	}))
	require.NoError(t, err)
	assert.Equal(t, "sk-primary", s.APIKey)
}

func TestSelect_OpenAIMissingKeyIsDeferred(t *testing.T) {
	s, err := Select(env.NewMapEnv(nil))
	require.NoError(t, err)
	assert.Empty(t, s.APIKey)
}

func TestSelect_DeepSeek(t *testing.T) {
	s, err := Select(env.NewMapEnv(map[string]string{
		"LLM_PROVIDER":     "deepseek",
		"DEEPSEEK_API_KEY": "ds-key",
	}))
	require.NoError(t, err)

	assert.Equal(t, DeepSeek, s.Provider)
	assert.Equal(t, "ds-key", s.APIKey)
	assert.Equal(t, defaultDeepSeekModel, s.Model)
	assert.Equal(t, defaultDeepSeekBaseURL, s.BaseURL)
}

func TestSelect_BrowserUse(t *testing.T) {
	s, err := Select(env.NewMapEnv(map[string]string{
		"LLM_PROVIDER":        "browser-use",
		"BROWSER_USE_API_KEY": "bu-key",
	}))
	require.NoError(t, err)

	assert.Equal(t, BrowserUse, s.Provider)
	assert.Equal(t, "bu-key", s.APIKey)
	assert.Equal(t, defaultBrowserUseBaseURL, s.BaseURL)
}

func TestSelect_BrowserUseWithoutKeyFails(t *testing.T) {
	_, err := Select(env.NewMapEnv(map[string]string{
		"LLM_PROVIDER":        "browseruse",
		"BROWSER_USE_API_KEY": "   ",
	}))
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrMissingCredentials)
}
