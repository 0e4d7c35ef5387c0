package prompts

import (
	"bytes"
	_ "embed"
	"text/template"
)

//go:embed system.txt
var DefaultSystemPrompt string

//go:embed applying.txt
var applyingTemplate string

var applying = template.Must(template.New("applying").Option("missingkey=error").Parse(applyingTemplate))

type ApplyingData struct {
	JobSearchURL string
	ResumePath   string
	SkipListPath string
}

// RenderApplying fills the fixed applying-mode prefix.
func RenderApplying(data ApplyingData) (string, error) {
	var buf bytes.Buffer
	if err := applying.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
