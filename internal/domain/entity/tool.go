package entity

type ToolName string

const (
	ToolBrowserNavigate   ToolName = "browser_navigate"
	ToolBrowserClick      ToolName = "browser_click"
	ToolBrowserFill       ToolName = "browser_fill"
	ToolBrowserScroll     ToolName = "browser_scroll"
	ToolBrowserScreenshot ToolName = "browser_screenshot"
	ToolBrowserPressEnter ToolName = "browser_press_enter"
	ToolBrowserExtract    ToolName = "browser_extract"
	ToolBrowserUISummary  ToolName = "browser_ui_summary"
	ToolBrowserUpload     ToolName = "browser_upload_file"

	ToolSkipListRecord ToolName = "record_skipped_company"
	ToolSkipListRead   ToolName = "list_skipped_companies"
)

func (t ToolName) String() string {
	return string(t)
}
