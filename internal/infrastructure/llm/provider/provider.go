// Package provider picks the LLM backend from configuration and resolves the
// credential, model and endpoint for it.
package provider

import (
	"fmt"
	"strings"

	"job-agent/internal/application/port/output"
	"job-agent/internal/domain/entity"
)

type Name string

const (
	OpenAI     Name = "openai"
	DeepSeek   Name = "deepseek"
	BrowserUse Name = "browser-use"
)

const (
	defaultOpenAIModel     = "gpt-5-nano"
	defaultOpenAIBaseURL   = "https://api.openai.com/v1"
	defaultDeepSeekModel   = "deepseek-chat"
	defaultDeepSeekBaseURL = "https://api.deepseek.com/v1"
	defaultBrowserUseModel = "bu-latest"
	// The browser-use endpoint is overridable because it is not a fixed public contract.
	defaultBrowserUseBaseURL = "https://llm.api.browser-use.com/v1"
)

// Settings is everything needed to construct a chat client. The API key is
// carried here and never written back into the process environment.
type Settings struct {
	Provider Name
	APIKey   string
	Model    string
	BaseURL  string
}

// ParseName normalises LLM_PROVIDER. Empty and unknown values mean OpenAI.
func ParseName(raw string) Name {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "deepseek":
		return DeepSeek
	case "browser_use", "browser-use", "browseruse":
		return BrowserUse
	default:
		return OpenAI
	}
}

// Select reads LLM_PROVIDER and the matching credential variables.
//
// A missing OpenAI or DeepSeek key is left for the API to reject. The
// browser-use provider fails here, before any browser is launched.
func Select(cfg output.ConfigPort) (Settings, error) {
	name := ParseName(cfg.Get("LLM_PROVIDER"))

	switch name {
	case DeepSeek:
		return Settings{
			Provider: DeepSeek,
			APIKey:   cfg.Get("DEEPSEEK_API_KEY"),
			Model:    cfg.GetWithDefault("DEEPSEEK_MODEL", defaultDeepSeekModel),
			BaseURL:  cfg.GetWithDefault("DEEPSEEK_BASE_URL", defaultDeepSeekBaseURL),
		}, nil
	case BrowserUse:
		key := strings.TrimSpace(cfg.Get("BROWSER_USE_API_KEY"))
		if key == "" {
			return Settings{}, fmt.Errorf("%w: BROWSER_USE_API_KEY is not set", entity.ErrMissingCredentials)
		}
		return Settings{
			Provider: BrowserUse,
			APIKey:   key,
			Model:    cfg.GetWithDefault("BROWSER_USE_MODEL", defaultBrowserUseModel),
			BaseURL:  cfg.GetWithDefault("BROWSER_USE_BASE_URL", defaultBrowserUseBaseURL),
		}, nil
	default:
		key := cfg.Get("OPENAI_API_KEY")
		if key == "" {
			key = cfg.Get("OPEN_AI_API_KEY")
		}
		return Settings{
			Provider: OpenAI,
			APIKey:   key,
			Model:    cfg.GetWithDefault("OPENAI_MODEL", defaultOpenAIModel),
			BaseURL:  cfg.GetWithDefault("OPENAI_BASE_URL", defaultOpenAIBaseURL),
		}, nil
	}
}
