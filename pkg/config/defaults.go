// Copyright 2026 Devenv Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package config

import "path/filepath"

// DefaultConfig returns the stock bootstrap configuration: pipenv as the
// package manager, VS Code as the editor, the Python extension, and the
// conventional .vscode/settings.json target.
func DefaultConfig() *Config {
	return &Config{
		Manager: ManagerConfig{
			Binary:           "pipenv",
			InterpreterQuery: []string{"run", "which", "python"},
		},
		Editor: EditorConfig{
			Binary:       "code",
			Extensions:   []string{"ms-python.python"},
			SettingsPath: filepath.Join(".vscode", "settings.json"),
		},
		LogLevel: "info",
	}
}

// applyDefaults sets default values for optional fields.
func applyDefaults(cfg *Config) {
	def := DefaultConfig()

	if cfg.Manager.Binary == "" {
		cfg.Manager.Binary = def.Manager.Binary
	}
	if len(cfg.Manager.InterpreterQuery) == 0 {
		cfg.Manager.InterpreterQuery = def.Manager.InterpreterQuery
	}
	if cfg.Editor.Binary == "" {
		cfg.Editor.Binary = def.Editor.Binary
	}
	if cfg.Editor.Extensions == nil {
		cfg.Editor.Extensions = def.Editor.Extensions
	}
	if cfg.Editor.SettingsPath == "" {
		cfg.Editor.SettingsPath = def.Editor.SettingsPath
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = def.LogLevel
	}
}
