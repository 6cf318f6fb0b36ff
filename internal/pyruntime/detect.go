// Package pyruntime detects the Python interpreter version recorded in
// generated project metadata.
package pyruntime

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Defaults used when configuration leaves a field empty.
const (
	DefaultBinary     = "python3"
	DefaultVersion    = "3.12"
	DefaultConstraint = ">= 3.8"
)

// ErrUnparsableVersion indicates the interpreter printed something other than
// a version.
var ErrUnparsableVersion = errors.New("unparsable python version")

// RunFunc runs name with args and returns its combined output.
type RunFunc func(ctx context.Context, name string, args ...string) (string, error)

// Detection is the outcome of a version probe. Detection never fails: when
// the interpreter cannot be queried the configured default is used and a
// warning is recorded.
type Detection struct {
	Version  string
	Detected bool
	Warnings []string
}

// Detector probes the local Python interpreter.
type Detector struct {
	binary         string
	defaultVersion string
	constraint     *semver.Constraints
	run            RunFunc
	logger         *slog.Logger
}

// Option configures a Detector.
type Option func(*Detector)

// WithBinary sets the interpreter binary.
func WithBinary(name string) Option {
	return func(d *Detector) {
		if name != "" {
			d.binary = name
		}
	}
}

// WithDefaultVersion sets the fallback version.
func WithDefaultVersion(v string) Option {
	return func(d *Detector) {
		if v != "" {
			d.defaultVersion = v
		}
	}
}

// WithRunFunc sets a custom command runner (used for testing).
func WithRunFunc(fn RunFunc) Option {
	return func(d *Detector) { d.run = fn }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(d *Detector) { d.logger = l }
}

// NewDetector creates a Detector that warns when the interpreter does not
// satisfy minConstraint. An empty constraint uses DefaultConstraint.
func NewDetector(minConstraint string, opts ...Option) (*Detector, error) {
	if minConstraint == "" {
		minConstraint = DefaultConstraint
	}
	c, err := semver.NewConstraint(minConstraint)
	if err != nil {
		return nil, fmt.Errorf("parse python constraint %q: %w", minConstraint, err)
	}

	d := &Detector{
		binary:         DefaultBinary,
		defaultVersion: DefaultVersion,
		constraint:     c,
		run:            defaultRun,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Detect runs "<binary> --version" and parses the result.
func (d *Detector) Detect(ctx context.Context) *Detection {
	out, err := d.run(ctx, d.binary, "--version")
	if err != nil {
		d.logger.Debug("python version probe failed", "binary", d.binary, "error", err)
		return d.fallback(fmt.Sprintf("could not run %s: %v", d.binary, err))
	}

	v, raw, err := ParseVersion(out)
	if err != nil {
		d.logger.Debug("python version unparsable", "output", out)
		return d.fallback(err.Error())
	}

	det := &Detection{Version: raw, Detected: true}
	if !d.constraint.Check(v) {
		det.Warnings = append(det.Warnings,
			fmt.Sprintf("python %s does not satisfy %s", raw, d.constraint))
	}
	d.logger.Debug("python version detected", "version", raw)
	return det
}

func (d *Detector) fallback(reason string) *Detection {
	return &Detection{
		Version: d.defaultVersion,
		Warnings: []string{
			fmt.Sprintf("%s; using python %s", reason, d.defaultVersion),
		},
	}
}

// ParseVersion extracts the version from "Python 3.12.1" style output.
// Pre-release suffixes such as "rc1" are dropped for comparison; the returned
// string keeps the numeric part only.
func ParseVersion(output string) (*semver.Version, string, error) {
	fields := strings.Fields(output)
	if len(fields) == 0 {
		return nil, "", fmt.Errorf("%w: empty output", ErrUnparsableVersion)
	}

	raw := fields[len(fields)-1]
	if len(fields) > 1 && !strings.EqualFold(fields[0], "python") {
		return nil, "", fmt.Errorf("%w: %q", ErrUnparsableVersion, output)
	}

	end := strings.IndexFunc(raw, func(r rune) bool {
		return (r < '0' || r > '9') && r != '.'
	})
	if end >= 0 {
		raw = raw[:end]
	}
	raw = strings.TrimSuffix(raw, ".")

	v, err := semver.NewVersion(raw)
	if err != nil || raw == "" {
		return nil, "", fmt.Errorf("%w: %q", ErrUnparsableVersion, output)
	}
	return v, raw, nil
}

func defaultRun(ctx context.Context, name string, args ...string) (string, error) {
	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	return strings.TrimSpace(out.String()), err
}
