// Copyright 2026 Devenv Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

// Package config provides configuration management for devsetup.
//
// Configuration Loading Order (later overrides earlier):
// 1. Defaults (hardcoded, reproducing the stock bootstrap)
// 2. Project Config: <project dir>/.devsetup.yaml or .devsetup.yml
// 3. Explicit path via --config
package config

// Config represents the complete application configuration.
type Config struct {
	Manager  ManagerConfig `yaml:"manager"`
	Editor   EditorConfig  `yaml:"editor"`
	LogLevel string        `yaml:"log_level"` // debug, info, warn, error
}

// ManagerConfig selects the Python package manager devsetup drives.
type ManagerConfig struct {
	// Binary is the package manager executable name, resolved on PATH.
	Binary string `yaml:"binary"`
	// InstallArgs are extra arguments appended to the install command.
	InstallArgs []string `yaml:"install_args,omitempty"`
	// InterpreterQuery is the argument vector passed to the manager to
	// print the managed interpreter's path, e.g. [run, which, python].
	InterpreterQuery []string `yaml:"interpreter_query,omitempty"`
}

// EditorConfig selects the editor CLI and the settings file to write.
type EditorConfig struct {
	// Binary is the editor executable name, resolved on PATH.
	// The editor is optional; absence skips extension installation.
	Binary string `yaml:"binary"`
	// Extensions are the extension identifiers to install.
	Extensions []string `yaml:"extensions,omitempty"`
	// SettingsPath is the settings file path relative to the project dir.
	SettingsPath string `yaml:"settings_path"`
}
