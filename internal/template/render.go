// Package template renders the interactive prompt with text/template.
package template

import (
	"bytes"
	"fmt"
	"text/template"
)

// Prompt holds the fields available to a prompt template.
type Prompt struct {
	Cwd  string
	Home string
}

// Compile parses a prompt template. Unknown fields fail at render time.
func Compile(tmpl string) (*template.Template, error) {
	t, err := template.New("prompt").Option("missingkey=error").Parse(tmpl)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}
	return t, nil
}

// Execute runs a compiled template against data.
func Execute(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}
