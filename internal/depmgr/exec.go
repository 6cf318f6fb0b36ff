package depmgr

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"
)

// waitDelay bounds how long Wait blocks on output pipes after the process
// is killed. Grandchildren that inherited stderr would otherwise keep Wait
// blocked until they exit.
const waitDelay = time.Second

// RunFunc runs name with args in dir and blocks until it exits.
// It returns the trimmed stderr output alongside any error.
type RunFunc func(ctx context.Context, dir, name string, args ...string) (string, error)

// Process is a started subprocess whose stdin is scripted.
type Process interface {
	// Stdin returns the writable end of the process's standard input.
	Stdin() io.WriteCloser
	// Wait blocks until the process exits. It returns the trimmed stderr
	// output alongside any error.
	Wait() (string, error)
}

// StartFunc starts name with args in dir with a piped stdin.
type StartFunc func(ctx context.Context, dir, name string, args ...string) (Process, error)

// defaultRun executes a command with output discarded except for stderr.
func defaultRun(ctx context.Context, dir, name string, args ...string) (string, error) {
	path, err := lookPath(name)
	if err != nil {
		return "", err
	}

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Dir = dir
	cmd.Env = commandEnv()
	cmd.Stdout = io.Discard
	cmd.WaitDelay = waitDelay

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err = cmd.Run()
	return strings.TrimSpace(stderr.String()), err
}

// execProcess adapts exec.Cmd to Process.
type execProcess struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stderr *bytes.Buffer
}

func (p *execProcess) Stdin() io.WriteCloser {
	return p.stdin
}

func (p *execProcess) Wait() (string, error) {
	err := p.cmd.Wait()
	return strings.TrimSpace(p.stderr.String()), err
}

// defaultStart starts a command with stdin piped and stdout discarded.
func defaultStart(ctx context.Context, dir, name string, args ...string) (Process, error) {
	path, err := lookPath(name)
	if err != nil {
		return nil, err
	}

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Dir = dir
	cmd.Env = commandEnv()
	cmd.Stdout = io.Discard
	cmd.WaitDelay = waitDelay

	stderr := &bytes.Buffer{}
	cmd.Stderr = stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoStdin, err)
	}

	if err := cmd.Start(); err != nil {
		_ = stdin.Close()
		return nil, fmt.Errorf("start %s: %w", name, err)
	}

	return &execProcess{cmd: cmd, stdin: stdin, stderr: stderr}, nil
}

// lookPath resolves the tool binary, mapping a miss to ErrToolNotFound.
func lookPath(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", fmt.Errorf("%w: %s", ErrToolNotFound, name)
		}
		return "", fmt.Errorf("lookup %s: %w", name, err)
	}
	return path, nil
}

// commandEnv keeps poetry from reusing an unrelated active virtualenv.
func commandEnv() []string {
	env := make([]string, 0, len(os.Environ())+1)
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, "VIRTUAL_ENV=") {
			continue
		}
		env = append(env, kv)
	}
	return append(env, "PYTHONUNBUFFERED=1")
}
