package service

import (
	"context"
	"testing"

	"job-agent/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTool struct {
	name entity.ToolName
}

func (s *stubTool) Name() entity.ToolName              { return s.name }
func (s *stubTool) Description() string                { return "stub " + s.name.String() }
func (s *stubTool) Parameters() map[string]interface{} { return map[string]interface{}{"type": "object"} }
func (s *stubTool) Execute(ctx context.Context, arguments string) (string, error) {
	return "ok", nil
}

func TestToolRegistry_GetRegistered(t *testing.T) {
	r := NewToolRegistry()
	r.Register(&stubTool{name: entity.ToolBrowserClick})

	tool, ok := r.Get(entity.ToolBrowserClick)
	require.True(t, ok)
	assert.Equal(t, entity.ToolBrowserClick, tool.Name())

	_, ok = r.Get(entity.ToolBrowserFill)
	assert.False(t, ok)
}

func TestToolRegistry_DefinitionsSortedByName(t *testing.T) {
	r := NewToolRegistry()
	r.Register(&stubTool{name: entity.ToolSkipListRecord})
	r.Register(&stubTool{name: entity.ToolBrowserNavigate})
	r.Register(&stubTool{name: entity.ToolBrowserClick})

	defs := r.Definitions()
	require.Len(t, defs, 3)
	assert.Equal(t, "browser_click", defs[0].Name)
	assert.Equal(t, "browser_navigate", defs[1].Name)
	assert.Equal(t, "record_skipped_company", defs[2].Name)
	assert.Equal(t, "stub browser_click", defs[0].Description)
}

func TestToolRegistry_RegisterReplacesSameName(t *testing.T) {
	r := NewToolRegistry()
	r.Register(&stubTool{name: entity.ToolBrowserClick})
	r.Register(&stubTool{name: entity.ToolBrowserClick})

	assert.Len(t, r.All(), 1)
}
