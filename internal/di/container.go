package di

import (
	"context"
	"fmt"

	"job-agent/internal/adapter/tool"
	"job-agent/internal/application/port/input"
	"job-agent/internal/application/port/output"
	"job-agent/internal/application/service"
	"job-agent/internal/infrastructure/browser/rod"
	"job-agent/internal/infrastructure/llm/openai"
	"job-agent/internal/infrastructure/llm/provider"
	"job-agent/internal/infrastructure/prompts"
	"job-agent/internal/infrastructure/skiplist"
	"job-agent/internal/usecase/executor"
)

type Config struct {
	Browser        rod.BrowserConfig
	SkipListPath   string
	AvailableFiles []string
	MaxSteps       int
	SystemPrompt   string
}

// NewAgentFactory returns a constructor that launches a fresh browser and
// chat client for every run. The release func closes the browser.
func NewAgentFactory(cfg Config, log output.LoggerPort) func(ctx context.Context, s provider.Settings) (input.TaskExecutor, func(), error) {
	return func(ctx context.Context, s provider.Settings) (input.TaskExecutor, func(), error) {
		browser, err := rod.NewBrowserAdapter(ctx, cfg.Browser)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create browser: %w", err)
		}

		llm := openai.NewChatAdapter(s, log.WithField("component", "llm"))

		tools := service.NewToolRegistry()
		registerBrowserTools(tools, browser, log.WithField("component", "tool"), cfg)

		systemPrompt := cfg.SystemPrompt
		if systemPrompt == "" {
			systemPrompt = prompts.DefaultSystemPrompt
		}

		uc := executor.New(llm, tools, log.WithField("component", "agent"), systemPrompt, cfg.MaxSteps)
		return uc, browser.Close, nil
	}
}

func registerBrowserTools(registry *service.ToolRegistryImpl, browser output.BrowserPort, log output.LoggerPort, cfg Config) {
	list := skiplist.NewFile(cfg.SkipListPath)

	registry.Register(tool.NewNavigateTool(browser, log))
	registry.Register(tool.NewClickTool(browser, log))
	registry.Register(tool.NewFillTool(browser, log))
	registry.Register(tool.NewScrollTool(browser, log))
	registry.Register(tool.NewScreenshotTool(browser, log))
	registry.Register(tool.NewExtractTool(browser, log))
	registry.Register(tool.NewUISummaryTool(browser, log))
	registry.Register(tool.NewPressEnterTool(browser, log))
	registry.Register(tool.NewUploadTool(browser, log, cfg.AvailableFiles))
	registry.Register(tool.NewRecordSkippedTool(list, log))
	registry.Register(tool.NewListSkippedTool(list, log))
}
