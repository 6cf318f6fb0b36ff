package project

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/vslice-dev/vslice/internal/defs"
	"github.com/vslice-dev/vslice/internal/naming"
	"github.com/vslice-dev/vslice/internal/template"
	"github.com/vslice-dev/vslice/pkg/models"
)

// IngredientOptions describes one ingredient to add to a slice.
type IngredientOptions struct {
	ProjectRoot string
	Slice       string
	Name        string
	Columns     []string // "name:type" specs, in model order
	Force       bool     // overwrite existing ingredient files
}

// IngredientResult lists what Generate wrote.
type IngredientResult struct {
	Files   []string // relative to the slice directory
	Columns []models.Column
}

// ParseColumn parses a "name:type" column spec.
func ParseColumn(spec string) (models.Column, error) {
	name, typ, ok := strings.Cut(spec, ":")
	if !ok || name == "" || typ == "" || strings.Contains(typ, ":") {
		return models.Column{}, fmt.Errorf("%w %q: expected name:type", ErrInvalidColumn, spec)
	}
	if err := naming.Validate(name, naming.ColumnRule); err != nil {
		return models.Column{}, fmt.Errorf("%w %q: %w", ErrInvalidColumn, spec, err)
	}

	ct := models.ColumnType(typ)
	if !ct.IsValid() {
		valid := models.ValidColumnTypes()
		names := make([]string, len(valid))
		for i, v := range valid {
			names[i] = string(v)
		}
		return models.Column{}, fmt.Errorf("%w %q in %q: must be one of %s",
			ErrUnknownColumnType, typ, spec, strings.Join(names, ", "))
	}

	return models.Column{Name: name, Type: ct}, nil
}

// ParseColumns parses every spec, preserving order. The first bad spec fails
// the whole batch.
func ParseColumns(specs []string) ([]models.Column, error) {
	cols := make([]models.Column, 0, len(specs))
	for _, spec := range specs {
		col, err := ParseColumn(spec)
		if err != nil {
			return nil, err
		}
		cols = append(cols, col)
	}
	return cols, nil
}

// Generator renders ingredient modules into an existing slice.
type Generator struct {
	renderer template.Renderer
	progress Progress
	logger   *slog.Logger
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithGeneratorProgress sets the progress sink.
func WithGeneratorProgress(p Progress) GeneratorOption {
	return func(g *Generator) { g.progress = p }
}

// WithGeneratorLogger sets the logger.
func WithGeneratorLogger(l *slog.Logger) GeneratorOption {
	return func(g *Generator) { g.logger = l }
}

// NewGenerator creates a Generator reading templates from fsys, which must
// contain the ingredient template set.
func NewGenerator(fsys fs.FS, opts ...GeneratorOption) *Generator {
	g := &Generator{
		renderer: template.NewRenderer(fsys),
		progress: nopProgress{},
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ingredientFile pairs a template with its output path inside the slice.
type ingredientFile struct {
	template string
	rel      string
	data     map[string]any
}

// Generate writes models/<name>.py, routes/<name>.py and
// domain/<name>_service.py. Every input is checked and every file rendered
// before the first write.
func (g *Generator) Generate(ctx context.Context, opts IngredientOptions) (*IngredientResult, error) {
	if err := naming.Validate(opts.Slice, naming.SliceRule); err != nil {
		return nil, err
	}
	if err := naming.Validate(opts.Name, naming.IngredientRule); err != nil {
		return nil, err
	}

	sliceDir := SlicePath(opts.ProjectRoot, opts.Slice)
	if !isDir(sliceDir) {
		return nil, &SliceNotFoundError{Slice: opts.Slice}
	}

	cols, err := ParseColumns(opts.Columns)
	if err != nil {
		return nil, err
	}

	camel := naming.CamelCase(opts.Name)
	files := []ingredientFile{
		{
			template: defs.ModelTemplate,
			rel:      path.Join(defs.ModelsDir, opts.Name+defs.PythonExt),
			data:     map[string]any{"Name": opts.Name, "NameCamel": camel, "Columns": cols},
		},
		{
			template: defs.RouteTemplate,
			rel:      path.Join(defs.RoutesDir, opts.Name+defs.PythonExt),
			data:     map[string]any{"Feature": opts.Slice, "Name": opts.Name},
		},
		{
			template: defs.ServiceTemplate,
			rel:      path.Join(defs.DomainDir, opts.Name+defs.ServiceSuffix+defs.PythonExt),
			data:     map[string]any{"Feature": opts.Slice, "Name": opts.Name, "NameCamel": camel},
		},
	}

	if !opts.Force {
		for _, f := range files {
			target := filepath.Join(sliceDir, filepath.FromSlash(f.rel))
			found, err := exists(target)
			if err != nil {
				return nil, err
			}
			if found {
				return nil, fmt.Errorf("%w: %s (use --force to overwrite)", ErrIngredientExists, f.rel)
			}
		}
	}

	rendered := make([][]byte, len(files))
	for i, f := range files {
		out, err := g.renderer.Render(path.Join(defs.IngredientTemplates, f.template), f.data)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", f.rel, err)
		}
		rendered[i] = out
	}

	g.progress.Step(fmt.Sprintf("⏳ Adding %q", opts.Name))
	g.logger.Info("adding ingredient", "slice", opts.Slice, "name", opts.Name, "columns", len(cols))

	result := &IngredientResult{Columns: cols}
	for i, f := range files {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		target := filepath.Join(sliceDir, filepath.FromSlash(f.rel))
		if err := os.MkdirAll(filepath.Dir(target), defs.DirPerm); err != nil {
			return result, fmt.Errorf("mkdir %s: %w", filepath.Dir(target), err)
		}
		if err := template.WriteFileAtomic(target, rendered[i], defs.FilePerm); err != nil {
			return result, fmt.Errorf("write %s: %w", f.rel, err)
		}

		result.Files = append(result.Files, f.rel)
		g.progress.FileWritten(f.rel)
	}

	return result, nil
}
