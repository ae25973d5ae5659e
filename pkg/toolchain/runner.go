// Copyright 2026 Devenv Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package toolchain

import (
	"context"
	"os"
	"os/exec"
	"strings"
)

// RunOpts holds optional parameters for command execution.
type RunOpts struct {
	Dir string // working directory (optional)
}

// CommandRunner abstracts external command execution so the bootstrap
// sequence can be stubbed in tests.
type CommandRunner interface {
	// LookPath resolves an executable by name on the current search path.
	LookPath(name string) (string, error)

	// Run executes a command with inherited stdio and returns its exit code.
	// The exit code is returned even when non-zero; error is reserved for
	// execution failures (binary not found, ctx canceled).
	Run(ctx context.Context, name string, args []string, opts RunOpts) (int, error)

	// Output executes a command, captures its stdout, and returns it with
	// trailing whitespace trimmed. Stderr passes through to the caller's
	// stderr. The exit code is returned even when non-zero.
	Output(ctx context.Context, name string, args []string, opts RunOpts) (string, int, error)
}

// ExecRunner is the production CommandRunner backed by os/exec.
type ExecRunner struct{}

// NewExecRunner creates a new ExecRunner.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// LookPath resolves an executable on PATH.
func (r *ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Run executes the command with inherited stdio.
func (r *ExecRunner) Run(ctx context.Context, name string, args []string, opts RunOpts) (int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if opts.Dir != "" {
		cmd.Dir = opts.Dir
	}

	return exitCode(cmd.Run())
}

// Output executes the command and captures stdout.
func (r *ExecRunner) Output(ctx context.Context, name string, args []string, opts RunOpts) (string, int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = os.Stderr
	if opts.Dir != "" {
		cmd.Dir = opts.Dir
	}

	out, err := cmd.Output()
	code, runErr := exitCode(err)
	return strings.TrimSpace(string(out)), code, runErr
}

// exitCode splits an os/exec run error into an exit code and a hard
// execution failure.
func exitCode(err error) (int, error) {
	if err == nil {
		return 0, nil
	}
	if exitErr, ok := err.(*exec.ExitError); ok {
		return exitErr.ExitCode(), nil
	}
	return 0, err
}
