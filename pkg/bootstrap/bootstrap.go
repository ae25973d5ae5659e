// Copyright 2026 Devenv Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package bootstrap implements the devsetup sequence: verify the package
// manager, install dependencies, install editor extensions when the
// editor is available, and write the workspace settings file.
package bootstrap

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/devenv-toolkit/devsetup/pkg/config"
	"github.com/devenv-toolkit/devsetup/pkg/editor"
	"github.com/devenv-toolkit/devsetup/pkg/errors"
	"github.com/devenv-toolkit/devsetup/pkg/observability"
	"github.com/devenv-toolkit/devsetup/pkg/toolchain"
	"github.com/fatih/color"
)

// Bootstrapper runs the bootstrap sequence. The sequence is strictly
// linear and fail-fast: the first failing external command aborts the
// run with no rollback of prior steps.
type Bootstrapper struct {
	cfg    *config.Config
	runner toolchain.CommandRunner
	log    observability.Logger
	out    io.Writer
	dir    string
	dryRun bool
}

// Option configures a Bootstrapper.
type Option func(*Bootstrapper)

// WithRunner sets the command runner.
func WithRunner(r toolchain.CommandRunner) Option {
	return func(b *Bootstrapper) {
		b.runner = r
	}
}

// WithLogger sets the structured logger.
func WithLogger(log observability.Logger) Option {
	return func(b *Bootstrapper) {
		b.log = log
	}
}

// WithOutput sets the writer for user-facing progress output.
func WithOutput(out io.Writer) Option {
	return func(b *Bootstrapper) {
		b.out = out
	}
}

// WithProjectDir sets the project directory the sequence operates in.
func WithProjectDir(dir string) Option {
	return func(b *Bootstrapper) {
		b.dir = dir
	}
}

// WithDryRun prints the external commands instead of running them and
// performs no writes.
func WithDryRun(dryRun bool) Option {
	return func(b *Bootstrapper) {
		b.dryRun = dryRun
	}
}

// New creates a Bootstrapper with the given options.
func New(cfg *config.Config, opts ...Option) *Bootstrapper {
	b := &Bootstrapper{
		cfg:    cfg,
		runner: toolchain.NewExecRunner(),
		log:    observability.NewLogger(cfg.LogLevel),
		out:    os.Stdout,
		dir:    ".",
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Run executes the bootstrap sequence.
func (b *Bootstrapper) Run(ctx context.Context) error {
	// 1. The package manager is required; nothing happens without it.
	manager := toolchain.Check(b.runner, b.cfg.Manager.Binary)
	if !manager.Present {
		b.printf("%s required tool %q not found in PATH\n", color.RedString("✗"), b.cfg.Manager.Binary)
		return errors.MissingToolError(b.cfg.Manager.Binary)
	}
	b.log.Debug("package manager resolved",
		observability.String("tool", manager.Name),
		observability.String("path", manager.Path),
	)

	// 2. Dependency installation is delegated entirely to the manager.
	if err := b.installDependencies(ctx); err != nil {
		return err
	}

	// 3. The editor is optional; absence only skips the extension step.
	ed := toolchain.Check(b.runner, b.cfg.Editor.Binary)
	if ed.Present {
		if err := b.installExtensions(ctx); err != nil {
			return err
		}
	} else {
		b.printf("%s editor %q not found, skipping extension install\n", color.YellowString("⚠"), b.cfg.Editor.Binary)
		b.log.Info("editor not found, skipping extensions",
			observability.String("tool", b.cfg.Editor.Binary),
		)
	}

	// 4. The settings file is written whether or not the editor exists.
	return b.writeEditorConfig(ctx)
}

func (b *Bootstrapper) installDependencies(ctx context.Context) error {
	args := append([]string{"install"}, b.cfg.Manager.InstallArgs...)
	display := commandString(b.cfg.Manager.Binary, args)

	if b.dryRun {
		b.printf("%s would run: %s\n", color.CyanString("►"), display)
		return nil
	}

	b.printf("%s installing dependencies: %s\n", color.CyanString("►"), display)
	code, err := b.runner.Run(ctx, b.cfg.Manager.Binary, args, toolchain.RunOpts{Dir: b.dir})
	if err != nil {
		return errors.New(errors.ErrInternal, fmt.Sprintf("failed to run %s", display), err)
	}
	if code != 0 {
		return errors.CommandError(display, code)
	}

	b.printf("%s dependencies installed\n", color.GreenString("✔"))
	return nil
}

func (b *Bootstrapper) installExtensions(ctx context.Context) error {
	if b.dryRun {
		for _, id := range b.cfg.Editor.Extensions {
			b.printf("%s would run: %s --install-extension %s\n", color.CyanString("►"), b.cfg.Editor.Binary, id)
		}
		return nil
	}

	if err := editor.InstallExtensions(ctx, b.runner, b.cfg.Editor.Binary, b.cfg.Editor.Extensions, b.dir); err != nil {
		return err
	}

	if len(b.cfg.Editor.Extensions) > 0 {
		b.printf("%s editor extensions installed\n", color.GreenString("✔"))
	}
	return nil
}

func (b *Bootstrapper) writeEditorConfig(ctx context.Context) error {
	query := commandString(b.cfg.Manager.Binary, b.cfg.Manager.InterpreterQuery)
	settingsPath := filepath.Join(b.dir, b.cfg.Editor.SettingsPath)

	if b.dryRun {
		b.printf("%s would run: %s\n", color.CyanString("►"), query)
		b.printf("%s would write: %s\n", color.CyanString("►"), settingsPath)
		return nil
	}

	// Resolve the interpreter before touching the settings file so a
	// failed query leaves any existing file untouched.
	pythonPath, code, err := b.runner.Output(ctx, b.cfg.Manager.Binary, b.cfg.Manager.InterpreterQuery, toolchain.RunOpts{Dir: b.dir})
	if err != nil {
		return errors.New(errors.ErrInternal, fmt.Sprintf("failed to run %s", query), err)
	}
	if code != 0 {
		return errors.CommandError(query, code)
	}
	if pythonPath == "" {
		return errors.New(errors.ErrInternal, fmt.Sprintf("%s produced no interpreter path", query), nil)
	}

	if err := editor.WriteSettings(settingsPath, editor.NewSettings(pythonPath)); err != nil {
		return err
	}

	b.printf("%s wrote %s\n", color.GreenString("✔"), settingsPath)
	b.log.Debug("editor settings written",
		observability.String("path", settingsPath),
		observability.String("pythonPath", pythonPath),
	)
	return nil
}

func (b *Bootstrapper) printf(format string, args ...any) {
	fmt.Fprintf(b.out, format, args...)
}

func commandString(name string, args []string) string {
	return name + " " + strings.Join(args, " ")
}
