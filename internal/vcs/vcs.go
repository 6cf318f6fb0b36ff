// Package vcs initializes version control for newly scaffolded projects.
package vcs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/go-git/go-git/v5"
)

// Initializer creates a repository in a directory.
type Initializer interface {
	Init(ctx context.Context, dir string) error
}

// Compile-time interface compliance check.
var _ Initializer = (*gitInitializer)(nil)

type gitInitializer struct {
	logger *slog.Logger
}

// NewInitializer returns an Initializer backed by go-git.
// A nil logger discards output.
func NewInitializer(logger *slog.Logger) Initializer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &gitInitializer{logger: logger.With("module", "vcs")}
}

// Init runs the equivalent of "git init" in dir. A directory that already
// holds a repository is left untouched.
func (g *gitInitializer) Init(ctx context.Context, dir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := git.PlainInit(dir, false)
	switch {
	case errors.Is(err, git.ErrRepositoryAlreadyExists):
		g.logger.Debug("repository already exists", "dir", dir)
		return nil
	case err != nil:
		return fmt.Errorf("git init %s: %w", dir, err)
	}

	g.logger.Debug("repository initialized", "dir", dir)
	return nil
}

// Noop is an Initializer that does nothing, used with --no-git.
type Noop struct{}

// Init implements Initializer.
func (Noop) Init(context.Context, string) error { return nil }
