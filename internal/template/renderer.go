package template

import (
	"bytes"
	"fmt"
	"io/fs"
	"regexp"
	"strings"
	"text/template"

	"github.com/vslice-dev/vslice/internal/naming"
)

// templateFuncMap provides custom functions available in all templates.
var templateFuncMap = template.FuncMap{
	// camel converts snake_case to the generated class name form.
	"camel": naming.CamelCase,
}

// unexpandedTokenPattern detects leftover template markers in rendered output.
var unexpandedTokenPattern = regexp.MustCompile(`\{\{-?\s*\.?[A-Za-z_][A-Za-z0-9_.]*\s*-?\}\}`)

// Renderer renders Go text/template files with strict mode enabled.
type Renderer interface {
	// Render parses the named template from the backing FS and executes
	// it with the given data. Returns ErrTemplateParse for malformed
	// templates, ErrMissingTemplateKey if a variable is undefined,
	// ErrTemplateExecute for other execution failures and ErrUnexpandedToken
	// if markers remain after rendering.
	Render(templateName string, data any) ([]byte, error)
}

type renderer struct {
	fsys fs.FS
}

// NewRenderer creates a Renderer backed by the given filesystem.
func NewRenderer(fsys fs.FS) Renderer {
	return &renderer{fsys: fsys}
}

// Render parses and executes a template with strict mode (missingkey=error).
func (r *renderer) Render(templateName string, data any) ([]byte, error) {
	content, err := fs.ReadFile(r.fsys, templateName)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateNotFound, templateName, err)
	}

	tmpl, err := template.New(templateName).
		Funcs(templateFuncMap).
		Option("missingkey=error").
		Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateParse, templateName, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", executeSentinel(err), templateName, err)
	}

	result := buf.Bytes()
	if loc := unexpandedTokenPattern.Find(result); loc != nil {
		return nil, fmt.Errorf("%w: %s: found %q", ErrUnexpandedToken, templateName, string(loc))
	}

	return result, nil
}

// executeSentinel classifies a text/template execution error.
func executeSentinel(err error) error {
	msg := err.Error()
	if strings.Contains(msg, "map has no entry for key") || strings.Contains(msg, "can't evaluate field") {
		return ErrMissingTemplateKey
	}
	return ErrTemplateExecute
}
