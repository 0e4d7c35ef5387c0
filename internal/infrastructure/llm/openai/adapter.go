package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"job-agent/internal/application/port/output"
	"job-agent/internal/domain/entity"
	"job-agent/internal/infrastructure/llm/provider"

	goopenai "github.com/sashabaranov/go-openai"
)

var _ output.LLMPort = (*ChatAdapter)(nil)

// ChatAdapter talks to any OpenAI-compatible chat completions endpoint.
type ChatAdapter struct {
	client   *goopenai.Client
	model    string
	provider provider.Name
	logger   output.LoggerPort
}

type loggingTransport struct {
	base   http.RoundTripper
	logger output.LoggerPort
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.logger.Debug("HTTP Request", "method", req.Method, "url", req.URL.String())

	resp, err := t.base.RoundTrip(req)
	if resp != nil {
		t.logger.Debug("HTTP Response", "status", resp.Status, "statusCode", resp.StatusCode)
	}
	return resp, err
}

func NewChatAdapter(s provider.Settings, logger output.LoggerPort) *ChatAdapter {
	config := goopenai.DefaultConfig(s.APIKey)
	config.BaseURL = s.BaseURL

	if logger != nil {
		config.HTTPClient = &http.Client{
			Transport: &loggingTransport{base: http.DefaultTransport, logger: logger},
		}
	}

	return &ChatAdapter{
		client:   goopenai.NewClientWithConfig(config),
		model:    s.Model,
		provider: s.Provider,
		logger:   logger,
	}
}

func (a *ChatAdapter) Chat(ctx context.Context, req output.ChatRequest) (*output.ChatResponse, error) {
	resp, err := a.client.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model:       a.model,
		Messages:    convertMessages(req.Messages),
		Tools:       convertTools(req.Tools),
		Temperature: req.Temperature,
	})
	if err != nil {
		return nil, classifyError(err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no choices in response")
	}

	return &output.ChatResponse{
		Message: convertResponseMessage(resp.Choices[0].Message),
	}, nil
}

// classifyError marks quota and credit failures with entity.ErrInsufficientCredits.
// HTTP 402 and the insufficient_quota code are the structured signals; the
// message text is only consulted when neither is present.
func classifyError(err error) error {
	var apiErr *goopenai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.HTTPStatusCode == http.StatusPaymentRequired || apiErr.Code == "insufficient_quota" {
			return fmt.Errorf("chat completion failed: %w: %w", entity.ErrInsufficientCredits, err)
		}
	}

	var reqErr *goopenai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode == http.StatusPaymentRequired {
		return fmt.Errorf("chat completion failed: %w: %w", entity.ErrInsufficientCredits, err)
	}

	if entity.MentionsInsufficientCredits(err.Error()) {
		return fmt.Errorf("chat completion failed: %w: %w", entity.ErrInsufficientCredits, err)
	}

	return fmt.Errorf("chat completion failed: %w", err)
}

func convertMessages(messages []entity.Message) []goopenai.ChatCompletionMessage {
	result := make([]goopenai.ChatCompletionMessage, 0, len(messages))
	for _, msg := range messages {
		oaiMsg := goopenai.ChatCompletionMessage{
			Role:       string(msg.Role),
			Content:    msg.Content,
			ToolCallID: msg.ToolCallID,
			Name:       msg.Name,
		}

		for _, tc := range msg.ToolCalls {
			oaiMsg.ToolCalls = append(oaiMsg.ToolCalls, goopenai.ToolCall{
				ID:   tc.ID,
				Type: goopenai.ToolTypeFunction,
				Function: goopenai.FunctionCall{
					Name:      tc.Name,
					Arguments: tc.Arguments,
				},
			})
		}

		result = append(result, oaiMsg)
	}
	return result
}

func convertTools(tools []entity.ToolDefinition) []goopenai.Tool {
	result := make([]goopenai.Tool, 0, len(tools))
	for _, t := range tools {
		result = append(result, goopenai.Tool{
			Type: goopenai.ToolTypeFunction,
			Function: &goopenai.FunctionDefinition{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.Parameters,
			},
		})
	}
	return result
}

func convertResponseMessage(msg goopenai.ChatCompletionMessage) entity.Message {
	result := entity.Message{
		Role:    entity.MessageRole(msg.Role),
		Content: msg.Content,
	}

	for _, tc := range msg.ToolCalls {
		result.ToolCalls = append(result.ToolCalls, entity.ToolCall{
			ID:        tc.ID,
			Name:      tc.Function.Name,
			Arguments: tc.Function.Arguments,
		})
	}

	return result
}
