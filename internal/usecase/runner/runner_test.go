package runner

import (
	"context"
	"errors"
	"testing"

	"job-agent/internal/application/port/input"
	"job-agent/internal/domain/entity"
	"job-agent/internal/infrastructure/llm/provider"
	"job-agent/internal/infrastructure/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExecutor struct {
	calls  int
	answer string
	err    error
}

func (f *fakeExecutor) Execute(ctx context.Context, task string) (*input.ExecuteResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &input.ExecuteResult{FinalAnswer: f.answer, Iterations: 4}, nil
}

type factoryRecorder struct {
	exec     *fakeExecutor
	builds   int
	releases int
	gotKey   string
}

func (f *factoryRecorder) factory(ctx context.Context, s provider.Settings) (input.TaskExecutor, func(), error) {
	f.builds++
	f.gotKey = s.APIKey
	return f.exec, func() { f.releases++ }, nil
}

func newRunner(s provider.Settings, rec *factoryRecorder) *Runner {
	return New(s, rec.factory, logger.NewNop())
}

var allProviders = []provider.Settings{
	{Provider: provider.OpenAI, APIKey: "sk"},
	{Provider: provider.DeepSeek, APIKey: "ds"},
	{Provider: provider.BrowserUse, APIKey: "bu"},
}

func TestRun_SingleInvocationOnSuccess(t *testing.T) {
	for _, s := range allProviders {
		t.Run(string(s.Provider), func(t *testing.T) {
			rec := &factoryRecorder{exec: &fakeExecutor{answer: "Submitted 3 applications"}}

			res, err := newRunner(s, rec).Run(context.Background(), "apply")
			require.NoError(t, err)

			assert.Equal(t, entity.RunStatusDone, res.Status)
			assert.Equal(t, "Submitted 3 applications", res.FinalAnswer)
			assert.Equal(t, 4, res.Iterations)
			assert.Equal(t, 1, rec.exec.calls)
			assert.Equal(t, 1, rec.builds)
			assert.Equal(t, 1, rec.releases)
			assert.Equal(t, s.APIKey, rec.gotKey)
		})
	}
}

func TestRun_SingleInvocationOnFailure(t *testing.T) {
	boom := errors.New("browser crashed")
	for _, s := range allProviders {
		t.Run(string(s.Provider), func(t *testing.T) {
			rec := &factoryRecorder{exec: &fakeExecutor{err: boom}}

			res, err := newRunner(s, rec).Run(context.Background(), "apply")
			assert.ErrorIs(t, err, boom)
			assert.NotErrorIs(t, err, entity.ErrInsufficientCredits)
			assert.Equal(t, entity.RunStatusFailed, res.Status)
			assert.Equal(t, 1, rec.exec.calls)
		})
	}
}

func TestRun_CreditsExhaustedIsTerminal(t *testing.T) {
	tests := []struct {
		name string
		exec *fakeExecutor
	}{
		{"structured error", &fakeExecutor{err: entity.ErrInsufficientCredits}},
		{"error text", &fakeExecutor{err: errors.New("402: Insufficient Credits")}},
		{"final answer", &fakeExecutor{answer: "Stopped: INSUFFICIENT CREDITS on account"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &factoryRecorder{exec: tt.exec}

			res, err := newRunner(provider.Settings{Provider: provider.BrowserUse, APIKey: "bu"}, rec).
				Run(context.Background(), "apply")
			assert.ErrorIs(t, err, entity.ErrInsufficientCredits)
			require.NotNil(t, res)
			assert.Equal(t, entity.RunStatusCreditExhausted, res.Status)
			assert.Equal(t, 1, tt.exec.calls)
			assert.Equal(t, 1, rec.builds)
		})
	}
}

func TestRun_NoMarkerNoRetry(t *testing.T) {
	rec := &factoryRecorder{exec: &fakeExecutor{answer: "credits are fine, 2 applications sent"}}

	res, err := newRunner(provider.Settings{Provider: provider.BrowserUse, APIKey: "bu"}, rec).
		Run(context.Background(), "apply")
	require.NoError(t, err)
	assert.Equal(t, entity.RunStatusDone, res.Status)
	assert.Equal(t, 1, rec.exec.calls)
}

func TestRun_BrowserUseWithoutKeyFailsBeforeAgent(t *testing.T) {
	rec := &factoryRecorder{exec: &fakeExecutor{}}

	_, err := newRunner(provider.Settings{Provider: provider.BrowserUse}, rec).Run(context.Background(), "apply")
	assert.ErrorIs(t, err, entity.ErrMissingCredentials)
	assert.Zero(t, rec.builds)
	assert.Zero(t, rec.exec.calls)
}

func TestRun_FactoryError(t *testing.T) {
	failing := func(ctx context.Context, s provider.Settings) (input.TaskExecutor, func(), error) {
		return nil, nil, errors.New("no chrome")
	}

	_, err := New(provider.Settings{Provider: provider.OpenAI}, failing, logger.NewNop()).Run(context.Background(), "apply")
	assert.ErrorContains(t, err, "no chrome")
}
