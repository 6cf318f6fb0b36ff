package depmgr

import (
	"context"
	"errors"
	"fmt"
)

// Bootstrapper creates an empty dependency manifest in a project directory.
type Bootstrapper interface {
	Bootstrap(ctx context.Context, dir, projectName string) error
}

// InitMode selects how the manifest is bootstrapped.
type InitMode string

const (
	// InitModeScripted answers the interactive init prompts over stdin.
	InitModeScripted InitMode = "scripted"
	// InitModeFlags runs init non-interactively with command-line flags.
	InitModeFlags InitMode = "flags"
)

// IsValid reports whether m is a known mode.
func (m InitMode) IsValid() bool {
	return m == InitModeScripted || m == InitModeFlags
}

// ScriptedBootstrapper runs "<tool> init" and feeds it a Script.
type ScriptedBootstrapper struct {
	Tool   string
	Script Script
	start  StartFunc
}

// NewScriptedBootstrapper creates a ScriptedBootstrapper. A nil start uses
// os/exec.
func NewScriptedBootstrapper(tool string, script Script, start StartFunc) *ScriptedBootstrapper {
	if start == nil {
		start = defaultStart
	}
	if script == nil {
		script = PoetryInitScript{}
	}
	return &ScriptedBootstrapper{Tool: tool, Script: script, start: start}
}

// Bootstrap starts the init session, writes every scripted response, closes
// stdin and waits for the process to exit. Stdin is closed on every path.
func (b *ScriptedBootstrapper) Bootstrap(ctx context.Context, dir, _ string) error {
	args := []string{"init"}

	proc, err := b.start(ctx, dir, b.Tool, args...)
	if err != nil {
		if errors.Is(err, ErrToolNotFound) || errors.Is(err, ErrNoStdin) {
			return err
		}
		return &CommandError{Tool: b.Tool, Args: args, Err: err}
	}

	stdin := proc.Stdin()
	if stdin == nil {
		_, _ = proc.Wait()
		return ErrNoStdin
	}

	writeErr := writeScript(stdin, b.Script)
	closeErr := stdin.Close()
	stderr, waitErr := proc.Wait()

	// The exit status explains a broken pipe better than the write error does.
	if waitErr != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			waitErr = ctxErr
		}
		return &CommandError{Tool: b.Tool, Args: args, Stderr: stderr, Err: waitErr}
	}
	if writeErr != nil {
		return fmt.Errorf("%s init: %w", b.Tool, writeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("%s init: close stdin: %w", b.Tool, closeErr)
	}
	return nil
}

// FlagBootstrapper runs "<tool> init --no-interaction --name <project>".
type FlagBootstrapper struct {
	Tool string
	run  RunFunc
}

// NewFlagBootstrapper creates a FlagBootstrapper. A nil run uses os/exec.
func NewFlagBootstrapper(tool string, run RunFunc) *FlagBootstrapper {
	if run == nil {
		run = defaultRun
	}
	return &FlagBootstrapper{Tool: tool, run: run}
}

// Bootstrap runs init without prompts.
func (b *FlagBootstrapper) Bootstrap(ctx context.Context, dir, projectName string) error {
	args := []string{"init", "--no-interaction", "--name", projectName}
	stderr, err := b.run(ctx, dir, b.Tool, args...)
	if err != nil {
		if errors.Is(err, ErrToolNotFound) {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = ctxErr
		}
		return &CommandError{Tool: b.Tool, Args: args, Stderr: stderr, Err: err}
	}
	return nil
}
