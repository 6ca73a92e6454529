// Package ai provides AI provider interfaces and implementations for projforge.
package ai

import (
	"bytes"
	"text/template"
)

// DefaultUserPromptTemplate is the instruction sent as the single user turn.
// The create/modify framing depends only on whether prior content exists;
// for modifications the existing content is appended verbatim as context.
const DefaultUserPromptTemplate = `Your task is to {{if .IsModify}}modify{{else}}create{{end}} a file for a {{.ProjectType}} project.

Project description: {{.Description}}
File path: {{.FilePath}}

{{if .IsModify}}Here is the existing file content, modify it where needed:{{else}}Generate content appropriate for this file path:{{end}}

{{.ExistingContent}}`

// PromptTemplate renders file-generation prompts.
type PromptTemplate struct {
	UserPrompt string
	tmpl       *template.Template
}

// promptData is the template input for a single file request.
type promptData struct {
	ProjectType     string
	Description     string
	FilePath        string
	ExistingContent string
	IsModify        bool
}

// NewPromptTemplate creates a PromptTemplate with the default prompt.
func NewPromptTemplate() *PromptTemplate {
	return &PromptTemplate{
		UserPrompt: DefaultUserPromptTemplate,
	}
}

// NewPromptTemplateWithCustom creates a PromptTemplate with a custom user
// prompt. An empty string falls back to the default.
func NewPromptTemplateWithCustom(userPrompt string) *PromptTemplate {
	pt := &PromptTemplate{
		UserPrompt: DefaultUserPromptTemplate,
	}
	if userPrompt != "" {
		pt.UserPrompt = userPrompt
	}
	return pt
}

// RenderUserPrompt renders the prompt for the given file request.
func (pt *PromptTemplate) RenderUserPrompt(req *FileRequest) (string, error) {
	if pt.tmpl == nil {
		tmpl, err := template.New("userPrompt").Parse(pt.UserPrompt)
		if err != nil {
			return "", err
		}
		pt.tmpl = tmpl
	}

	data := &promptData{
		ProjectType:     req.ProjectType,
		Description:     req.Description,
		FilePath:        req.FilePath,
		ExistingContent: req.ExistingContent,
		IsModify:        req.IsModify(),
	}

	var buf bytes.Buffer
	if err := pt.tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}
