package executor

import (
	"context"
	"errors"
	"fmt"

	"job-agent/internal/application/port/input"
	"job-agent/internal/application/port/output"
	"job-agent/internal/domain/entity"
)

var _ input.TaskExecutor = (*UseCase)(nil)

var ErrMaxSteps = errors.New("max steps exceeded")

const (
	DefaultMaxSteps   = 300
	maxObservationLen = 20000
)

type UseCase struct {
	llm          output.LLMPort
	tools        output.ToolRegistry
	logger       output.LoggerPort
	systemPrompt string
	maxSteps     int
}

func New(
	llm output.LLMPort,
	tools output.ToolRegistry,
	logger output.LoggerPort,
	systemPrompt string,
	maxSteps int,
) *UseCase {
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}
	return &UseCase{
		llm:          llm,
		tools:        tools,
		logger:       logger,
		systemPrompt: systemPrompt,
		maxSteps:     maxSteps,
	}
}

func (uc *UseCase) Execute(ctx context.Context, task string) (*input.ExecuteResult, error) {
	messages := []entity.Message{
		{Role: entity.RoleSystem, Content: uc.systemPrompt},
		{Role: entity.RoleUser, Content: task},
	}

	toolDefs := uc.tools.Definitions()

	for step := 1; step <= uc.maxSteps; step++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		uc.logger.Debug("Starting step", "step", step)

		resp, err := uc.llm.Chat(ctx, output.ChatRequest{
			Messages:    messages,
			Tools:       toolDefs,
			Temperature: 0.0,
		})
		if err != nil {
			return nil, fmt.Errorf("llm request failed: %w", err)
		}

		messages = append(messages, resp.Message)

		if len(resp.Message.ToolCalls) == 0 {
			return &input.ExecuteResult{
				FinalAnswer: resp.Message.Content,
				Iterations:  step,
			}, nil
		}

		for _, tc := range resp.Message.ToolCalls {
			messages = append(messages, entity.Message{
				Role:       entity.RoleTool,
				ToolCallID: tc.ID,
				Name:       tc.Name,
				Content:    uc.executeTool(ctx, tc),
			})
		}
	}

	return nil, fmt.Errorf("%w (%d)", ErrMaxSteps, uc.maxSteps)
}

func (uc *UseCase) executeTool(ctx context.Context, tc entity.ToolCall) string {
	tool, ok := uc.tools.Get(entity.ToolName(tc.Name))
	if !ok {
		uc.logger.Warn("Unknown tool called", "name", tc.Name)
		return fmt.Sprintf("Error: unknown tool '%s'", tc.Name)
	}

	uc.logger.Info("Executing tool", "name", tc.Name, "args", tc.Arguments)

	result, err := tool.Execute(ctx, tc.Arguments)
	if err != nil {
		uc.logger.Error("Tool execution failed", "name", tc.Name, "error", err)
		return "Error: " + err.Error()
	}

	if len(result) > maxObservationLen {
		result = result[:maxObservationLen] + "\n... (truncated)"
	}

	uc.logger.Debug("Tool completed", "name", tc.Name, "resultLen", len(result))
	return result
}
