package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/vslice-dev/vslice/internal/naming"
	"github.com/vslice-dev/vslice/pkg/models"
)

// ColumnForm collects ingredient columns interactively.
type ColumnForm struct {
	theme    *Theme
	headless *HeadlessManager
}

// NewColumnForm creates a ColumnForm.
func NewColumnForm(theme *Theme, hm *HeadlessManager) *ColumnForm {
	return &ColumnForm{theme: theme, headless: hm}
}

// Run asks for columns until the user declines to add another and returns
// them as "name:type" specs. Columns already given on the command line are
// kept first.
func (f *ColumnForm) Run(ctx context.Context, ingredient string, existing []string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.headless.IsHeadless() {
		return nil, ErrHeadless
	}

	specs := append([]string(nil), existing...)
	taken := make(map[string]bool, len(existing))
	for _, s := range existing {
		name, _, _ := strings.Cut(s, ":")
		taken[name] = true
	}

	theme := f.theme.HuhTheme()
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var (
			name  string
			typ   = string(models.ColumnStr)
			again bool
		)
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("Column name for %q", ingredient)).
				Value(&name).
				Validate(func(v string) error { return validateColumnName(v, taken) }),
			huh.NewSelect[string]().
				Title("Column type").
				Options(columnTypeOptions()...).
				Value(&typ),
			huh.NewConfirm().
				Title("Add another column?").
				Value(&again),
		)).WithTheme(theme)

		if err := form.RunWithContext(ctx); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil, ErrCancelled
			}
			return nil, fmt.Errorf("column form: %w", err)
		}

		taken[name] = true
		specs = append(specs, name+":"+typ)
		if !again {
			return specs, nil
		}
	}
}

func validateColumnName(v string, taken map[string]bool) error {
	if err := naming.Validate(v, naming.ColumnRule); err != nil {
		return err
	}
	if taken[v] {
		return fmt.Errorf("column %q is already defined", v)
	}
	return nil
}

func columnTypeOptions() []huh.Option[string] {
	types := models.ValidColumnTypes()
	opts := make([]huh.Option[string], len(types))
	for i, t := range types {
		opts[i] = huh.NewOption(fmt.Sprintf("%s (%s)", t, t.SQLType()), string(t))
	}
	return opts
}
