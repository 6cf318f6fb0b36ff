package depmgr

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
)

// call records one invocation of a fake runner.
type call struct {
	dir  string
	name string
	args []string
}

func (c call) String() string {
	return c.name + " " + strings.Join(c.args, " ")
}

// fakeRunner records calls and fails the invocation matching failOn.
type fakeRunner struct {
	mu     sync.Mutex
	calls  []call
	failOn string
	stderr string
	err    error
	hook   func(ctx context.Context)
}

func (f *fakeRunner) run(ctx context.Context, dir, name string, args ...string) (string, error) {
	f.mu.Lock()
	c := call{dir: dir, name: name, args: append([]string(nil), args...)}
	f.calls = append(f.calls, c)
	f.mu.Unlock()

	if f.hook != nil {
		f.hook(ctx)
	}
	if f.failOn != "" && c.String() == f.failOn {
		return f.stderr, f.err
	}
	return "", nil
}

func (f *fakeRunner) commands() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.calls))
	for i, c := range f.calls {
		out[i] = c.String()
	}
	return out
}

// fakeStdin captures scripted input and records whether it was closed.
type fakeStdin struct {
	buf    bytes.Buffer
	closed bool
	werr   error
}

func (s *fakeStdin) Write(p []byte) (int, error) {
	if s.werr != nil {
		return 0, s.werr
	}
	return s.buf.Write(p)
}

func (s *fakeStdin) Close() error {
	s.closed = true
	return nil
}

type fakeProcess struct {
	stdin   *fakeStdin
	stderr  string
	waitErr error
	waitFn  func() (string, error) // overrides stderr/waitErr when set
}

func (p *fakeProcess) Stdin() io.WriteCloser {
	if p.stdin == nil {
		return nil
	}
	return p.stdin
}

func (p *fakeProcess) Wait() (string, error) {
	if p.waitFn != nil {
		return p.waitFn()
	}
	return p.stderr, p.waitErr
}

// fakeStarter hands out a single fakeProcess and records the start call.
type fakeStarter struct {
	proc     *fakeProcess
	started  []call
	startErr error
}

func (f *fakeStarter) start(_ context.Context, dir, name string, args ...string) (Process, error) {
	f.started = append(f.started, call{dir: dir, name: name, args: args})
	if f.startErr != nil {
		return nil, f.startErr
	}
	return f.proc, nil
}
