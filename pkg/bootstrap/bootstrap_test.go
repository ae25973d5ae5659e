// Copyright 2026 Devenv Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package bootstrap_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/devenv-toolkit/devsetup/pkg/bootstrap"
	"github.com/devenv-toolkit/devsetup/pkg/config"
	"github.com/devenv-toolkit/devsetup/pkg/errors"
	"github.com/devenv-toolkit/devsetup/pkg/observability"
	"github.com/devenv-toolkit/devsetup/pkg/toolchain"
)

// stubRunner is an in-memory CommandRunner recording every invocation.
type stubRunner struct {
	tools      map[string]string // resolvable tools: name -> path
	exitCodes  map[string]int    // command line -> exit code (default 0)
	queryOut   string            // stdout of the interpreter query
	calls      []string
}

func newStubRunner(tools ...string) *stubRunner {
	s := &stubRunner{
		tools:     make(map[string]string),
		exitCodes: make(map[string]int),
		queryOut:  "/home/user/.venv/bin/python",
	}
	for _, name := range tools {
		s.tools[name] = "/usr/local/bin/" + name
	}
	return s
}

func (s *stubRunner) LookPath(name string) (string, error) {
	if path, ok := s.tools[name]; ok {
		return path, nil
	}
	return "", fmt.Errorf("exec: %q: executable file not found in $PATH", name)
}

func (s *stubRunner) Run(ctx context.Context, name string, args []string, opts toolchain.RunOpts) (int, error) {
	line := name + " " + strings.Join(args, " ")
	s.calls = append(s.calls, line)
	return s.exitCodes[line], nil
}

func (s *stubRunner) Output(ctx context.Context, name string, args []string, opts toolchain.RunOpts) (string, int, error) {
	line := name + " " + strings.Join(args, " ")
	s.calls = append(s.calls, line)
	if code := s.exitCodes[line]; code != 0 {
		return "", code, nil
	}
	return s.queryOut, 0, nil
}

func newBootstrapper(t *testing.T, runner *stubRunner, dir string, extra ...bootstrap.Option) *bootstrap.Bootstrapper {
	t.Helper()
	var buf bytes.Buffer
	opts := append([]bootstrap.Option{
		bootstrap.WithRunner(runner),
		bootstrap.WithProjectDir(dir),
		bootstrap.WithOutput(&buf),
		bootstrap.WithLogger(observability.NewLoggerWithOutput("error", &buf)),
	}, extra...)
	return bootstrap.New(config.DefaultConfig(), opts...)
}

func settingsPath(dir string) string {
	return filepath.Join(dir, ".vscode", "settings.json")
}

// TestRunFullSequence tests the happy path: all tools present, all
// commands succeed, settings written with the queried interpreter path.
func TestRunFullSequence(t *testing.T) {
	dir := t.TempDir()
	runner := newStubRunner("pipenv", "code")
	b := newBootstrapper(t, runner, dir)

	if err := b.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	wantCalls := []string{
		"pipenv install",
		"code --install-extension ms-python.python",
		"pipenv run which python",
	}
	if len(runner.calls) != len(wantCalls) {
		t.Fatalf("Expected calls %v, got %v", wantCalls, runner.calls)
	}
	for i, want := range wantCalls {
		if runner.calls[i] != want {
			t.Errorf("Call %d = %q, want %q", i, runner.calls[i], want)
		}
	}

	data, err := os.ReadFile(settingsPath(dir))
	if err != nil {
		t.Fatalf("Settings file not written: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("Settings file is not valid JSON: %v", err)
	}
	if doc["python.pythonPath"] != "/home/user/.venv/bin/python" {
		t.Errorf("pythonPath = %v, want queried interpreter path", doc["python.pythonPath"])
	}
}

// TestRunManagerMissing tests that a missing package manager aborts before
// any command runs or any file is created.
func TestRunManagerMissing(t *testing.T) {
	dir := t.TempDir()
	runner := newStubRunner("code") // editor present, manager absent
	b := newBootstrapper(t, runner, dir)

	err := b.Run(context.Background())
	if err == nil {
		t.Fatal("Expected error for missing manager, got nil")
	}
	if !errors.IsType(err, errors.ErrMissingTool) {
		t.Errorf("Expected ErrMissingTool, got %v", err)
	}
	if errors.ExitStatus(err) == 0 {
		t.Error("Expected non-zero exit status")
	}

	if len(runner.calls) != 0 {
		t.Errorf("Expected no commands to run, got %v", runner.calls)
	}
	if _, err := os.Stat(filepath.Join(dir, ".vscode")); !os.IsNotExist(err) {
		t.Error("Expected no settings directory to be created")
	}
}

// TestRunEditorMissing tests that a missing editor skips the extension
// step but the settings file is still written.
func TestRunEditorMissing(t *testing.T) {
	dir := t.TempDir()
	runner := newStubRunner("pipenv")
	b := newBootstrapper(t, runner, dir)

	if err := b.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	for _, call := range runner.calls {
		if strings.Contains(call, "--install-extension") {
			t.Errorf("Expected no extension install, got %q", call)
		}
	}
	if _, err := os.Stat(settingsPath(dir)); err != nil {
		t.Errorf("Expected settings file to be written: %v", err)
	}
}

// TestRunInstallFailure tests fail-fast on a failing install with the
// command's exit code propagated.
func TestRunInstallFailure(t *testing.T) {
	dir := t.TempDir()
	runner := newStubRunner("pipenv", "code")
	runner.exitCodes["pipenv install"] = 3
	b := newBootstrapper(t, runner, dir)

	err := b.Run(context.Background())
	if err == nil {
		t.Fatal("Expected error for failing install, got nil")
	}
	if !errors.IsType(err, errors.ErrCommand) {
		t.Errorf("Expected ErrCommand, got %v", err)
	}
	if got := errors.ExitStatus(err); got != 3 {
		t.Errorf("ExitStatus = %d, want 3", got)
	}

	if len(runner.calls) != 1 {
		t.Errorf("Expected no commands after the failing install, got %v", runner.calls)
	}
	if _, err := os.Stat(settingsPath(dir)); !os.IsNotExist(err) {
		t.Error("Expected no settings file after a failed install")
	}
}

// TestRunExtensionFailure tests fail-fast on a failing extension install.
func TestRunExtensionFailure(t *testing.T) {
	dir := t.TempDir()
	runner := newStubRunner("pipenv", "code")
	runner.exitCodes["code --install-extension ms-python.python"] = 1
	b := newBootstrapper(t, runner, dir)

	err := b.Run(context.Background())
	if err == nil {
		t.Fatal("Expected error for failing extension install, got nil")
	}
	if !errors.IsType(err, errors.ErrCommand) {
		t.Errorf("Expected ErrCommand, got %v", err)
	}
	if _, err := os.Stat(settingsPath(dir)); !os.IsNotExist(err) {
		t.Error("Expected no settings file after a failed extension install")
	}
}

// TestRunQueryFailure tests that a failing interpreter query aborts
// without leaving a settings file behind.
func TestRunQueryFailure(t *testing.T) {
	dir := t.TempDir()
	runner := newStubRunner("pipenv")
	runner.exitCodes["pipenv run which python"] = 1
	b := newBootstrapper(t, runner, dir)

	err := b.Run(context.Background())
	if err == nil {
		t.Fatal("Expected error for failing interpreter query, got nil")
	}
	if got := errors.ExitStatus(err); got != 1 {
		t.Errorf("ExitStatus = %d, want 1", got)
	}
	if _, err := os.Stat(settingsPath(dir)); !os.IsNotExist(err) {
		t.Error("Expected no settings file after a failed query")
	}
}

// TestRunQueryFailurePreservesPriorFile tests that an existing settings
// file survives a failed run untouched.
func TestRunQueryFailurePreservesPriorFile(t *testing.T) {
	dir := t.TempDir()
	prior := []byte(`{"python.pythonPath": "/old"}`)
	if err := os.MkdirAll(filepath.Join(dir, ".vscode"), 0o755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}
	if err := os.WriteFile(settingsPath(dir), prior, 0o644); err != nil {
		t.Fatalf("Failed to seed settings: %v", err)
	}

	runner := newStubRunner("pipenv")
	runner.exitCodes["pipenv run which python"] = 1
	b := newBootstrapper(t, runner, dir)

	if err := b.Run(context.Background()); err == nil {
		t.Fatal("Expected error for failing interpreter query, got nil")
	}

	data, err := os.ReadFile(settingsPath(dir))
	if err != nil {
		t.Fatalf("Failed to read settings: %v", err)
	}
	if !bytes.Equal(data, prior) {
		t.Errorf("Expected prior settings to be untouched, got %q", data)
	}
}

// TestRunIdempotent tests that two runs in an unchanged environment
// produce a byte-identical settings file.
func TestRunIdempotent(t *testing.T) {
	dir := t.TempDir()
	runner := newStubRunner("pipenv", "code")
	b := newBootstrapper(t, runner, dir)

	if err := b.Run(context.Background()); err != nil {
		t.Fatalf("First run failed: %v", err)
	}
	first, err := os.ReadFile(settingsPath(dir))
	if err != nil {
		t.Fatalf("Failed to read settings: %v", err)
	}

	if err := b.Run(context.Background()); err != nil {
		t.Fatalf("Second run failed: %v", err)
	}
	second, err := os.ReadFile(settingsPath(dir))
	if err != nil {
		t.Fatalf("Failed to read settings: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Error("Expected byte-identical settings across runs")
	}
}

// TestRunDryRun tests that dry-run executes no commands and writes nothing.
func TestRunDryRun(t *testing.T) {
	dir := t.TempDir()
	runner := newStubRunner("pipenv", "code")
	var buf bytes.Buffer
	b := bootstrap.New(config.DefaultConfig(),
		bootstrap.WithRunner(runner),
		bootstrap.WithProjectDir(dir),
		bootstrap.WithOutput(&buf),
		bootstrap.WithLogger(observability.NewLoggerWithOutput("error", &buf)),
		bootstrap.WithDryRun(true),
	)

	if err := b.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(runner.calls) != 0 {
		t.Errorf("Expected no commands in dry-run, got %v", runner.calls)
	}
	if _, err := os.Stat(settingsPath(dir)); !os.IsNotExist(err) {
		t.Error("Expected no settings file in dry-run")
	}
	if !strings.Contains(buf.String(), "would run: pipenv install") {
		t.Errorf("Expected dry-run output to list commands, got %q", buf.String())
	}
}

// TestRunExtraInstallArgs tests that configured install args are appended.
func TestRunExtraInstallArgs(t *testing.T) {
	dir := t.TempDir()
	runner := newStubRunner("pipenv")

	cfg := config.DefaultConfig()
	cfg.Manager.InstallArgs = []string{"--dev"}

	var buf bytes.Buffer
	b := bootstrap.New(cfg,
		bootstrap.WithRunner(runner),
		bootstrap.WithProjectDir(dir),
		bootstrap.WithOutput(&buf),
		bootstrap.WithLogger(observability.NewLoggerWithOutput("error", &buf)),
	)

	if err := b.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if runner.calls[0] != "pipenv install --dev" {
		t.Errorf("First call = %q, want 'pipenv install --dev'", runner.calls[0])
	}
}
