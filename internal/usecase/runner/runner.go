// Package runner drives one agent run and classifies how it ended.
package runner

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"job-agent/internal/application/port/input"
	"job-agent/internal/application/port/output"
	"job-agent/internal/domain/entity"
	"job-agent/internal/infrastructure/llm/provider"
)

// AgentFactory builds the executor for a run. The returned release func is
// called once the run finishes.
type AgentFactory func(ctx context.Context, s provider.Settings) (input.TaskExecutor, func(), error)

type Runner struct {
	settings provider.Settings
	factory  AgentFactory
	logger   output.LoggerPort
}

func New(settings provider.Settings, factory AgentFactory, logger output.LoggerPort) *Runner {
	return &Runner{settings: settings, factory: factory, logger: logger}
}

// Run executes task exactly once.
//
// A run that ends on exhausted credits, either as an error or as a final
// answer reporting it, returns entity.ErrInsufficientCredits. It is not
// retried with another credential.
func (r *Runner) Run(ctx context.Context, task string) (*entity.RunResult, error) {
	if r.settings.Provider == provider.BrowserUse && strings.TrimSpace(r.settings.APIKey) == "" {
		return nil, fmt.Errorf("%w: BROWSER_USE_API_KEY is not set", entity.ErrMissingCredentials)
	}

	log := r.logger.WithFields(map[string]any{
		"provider": string(r.settings.Provider),
		"model":    r.settings.Model,
	})

	exec, release, err := r.factory(ctx, r.settings)
	if err != nil {
		return nil, fmt.Errorf("build agent: %w", err)
	}
	if release != nil {
		defer release()
	}

	log.Info("Agent run started")

	res, err := exec.Execute(ctx, task)
	if err != nil {
		if errors.Is(err, entity.ErrInsufficientCredits) || entity.MentionsInsufficientCredits(err.Error()) {
			log.Error("Agent stopped: credits exhausted", "error", err)
			return &entity.RunResult{Status: entity.RunStatusCreditExhausted}, creditsError(err)
		}
		log.Error("Agent run failed", "error", err)
		return &entity.RunResult{Status: entity.RunStatusFailed}, err
	}

	result := &entity.RunResult{
		Status:      entity.RunStatusDone,
		FinalAnswer: res.FinalAnswer,
		Iterations:  res.Iterations,
	}

	if entity.MentionsInsufficientCredits(res.FinalAnswer) {
		result.Status = entity.RunStatusCreditExhausted
		log.Error("Agent reported exhausted credits", "iterations", res.Iterations)
		return result, fmt.Errorf("agent finished with: %w", entity.ErrInsufficientCredits)
	}

	log.Info("Agent run completed", "iterations", res.Iterations)
	return result, nil
}

func creditsError(err error) error {
	if errors.Is(err, entity.ErrInsufficientCredits) {
		return err
	}
	return fmt.Errorf("%w: %w", entity.ErrInsufficientCredits, err)
}
