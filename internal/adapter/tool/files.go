package tool

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"job-agent/internal/application/port/output"
	"job-agent/internal/domain/entity"
)

// UploadTool attaches a file to an <input type=file>. Only paths from the
// allow list can be uploaded.
type UploadTool struct {
	browser output.BrowserPort
	logger  output.LoggerPort
	allowed map[string]bool
}

func NewUploadTool(browser output.BrowserPort, logger output.LoggerPort, allowedPaths []string) *UploadTool {
	allowed := make(map[string]bool, len(allowedPaths))
	for _, p := range allowedPaths {
		allowed[filepath.Clean(p)] = true
	}
	return &UploadTool{browser: browser, logger: logger, allowed: allowed}
}

func (t *UploadTool) Name() entity.ToolName { return entity.ToolBrowserUpload }
func (t *UploadTool) Description() string {
	return "Uploads one of the available local files into a file input."
}
func (t *UploadTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"selector": selectorParam("CSS selector of the file input"),
			"path": map[string]interface{}{
				"type":        "string",
				"description": "Absolute path of the file to upload",
			},
		},
		"required": []string{"selector", "path"},
	}
}

func (t *UploadTool) Execute(ctx context.Context, args string) (string, error) {
	var input struct {
		Selector string `json:"selector"`
		Path     string `json:"path"`
	}
	if err := decode(args, &input); err != nil {
		return "", err
	}
	path := filepath.Clean(input.Path)
	if !t.allowed[path] {
		return "", fmt.Errorf("file %q is not in the list of available files", input.Path)
	}
	if err := t.browser.UploadFile(ctx, input.Selector, path); err != nil {
		return "", err
	}
	t.logger.Info("File uploaded", "path", path, "url", t.browser.CurrentURL())
	return fmt.Sprintf("Uploaded %s", filepath.Base(path)), nil
}

type RecordSkippedTool struct {
	list   output.SkipListPort
	logger output.LoggerPort
}

func NewRecordSkippedTool(list output.SkipListPort, logger output.LoggerPort) *RecordSkippedTool {
	return &RecordSkippedTool{list: list, logger: logger}
}

func (t *RecordSkippedTool) Name() entity.ToolName { return entity.ToolSkipListRecord }
func (t *RecordSkippedTool) Description() string {
	return "Appends a company name to the list of companies to avoid."
}
func (t *RecordSkippedTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"company": map[string]interface{}{
				"type":        "string",
				"description": "Company name as shown in the listing",
			},
			"reason": map[string]interface{}{
				"type":        "string",
				"description": "Short reason, e.g. captcha or unanswerable question",
			},
		},
		"required": []string{"company"},
	}
}

func (t *RecordSkippedTool) Execute(ctx context.Context, args string) (string, error) {
	var input struct {
		Company string `json:"company"`
		Reason  string `json:"reason"`
	}
	if err := decode(args, &input); err != nil {
		return "", err
	}
	if err := t.list.Append(input.Company); err != nil {
		return "", err
	}
	t.logger.Info("Company skipped", "company", input.Company, "reason", input.Reason)
	return fmt.Sprintf("Recorded %s in %s", strings.TrimSpace(input.Company), t.list.Path()), nil
}

type ListSkippedTool struct {
	list   output.SkipListPort
	logger output.LoggerPort
}

func NewListSkippedTool(list output.SkipListPort, logger output.LoggerPort) *ListSkippedTool {
	return &ListSkippedTool{list: list, logger: logger}
}

func (t *ListSkippedTool) Name() entity.ToolName { return entity.ToolSkipListRead }
func (t *ListSkippedTool) Description() string {
	return "Returns the companies recorded as skipped, one per line."
}
func (t *ListSkippedTool) Parameters() map[string]interface{} { return emptyParams() }

func (t *ListSkippedTool) Execute(ctx context.Context, args string) (string, error) {
	names, err := t.list.List()
	if err != nil {
		return "", err
	}
	if len(names) == 0 {
		return "No companies recorded yet", nil
	}
	return strings.Join(names, "\n"), nil
}
