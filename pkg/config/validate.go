// Copyright 2026 Devenv Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if err := validateBinary("manager.binary", c.Manager.Binary); err != nil {
		return err
	}
	if err := validateBinary("editor.binary", c.Editor.Binary); err != nil {
		return err
	}

	if len(c.Manager.InterpreterQuery) == 0 {
		return fmt.Errorf("manager.interpreter_query must not be empty")
	}

	for _, ext := range c.Editor.Extensions {
		if strings.TrimSpace(ext) == "" {
			return fmt.Errorf("editor.extensions must not contain empty identifiers")
		}
	}

	if c.Editor.SettingsPath == "" {
		return fmt.Errorf("editor.settings_path must not be empty")
	}
	if filepath.IsAbs(c.Editor.SettingsPath) {
		return fmt.Errorf("editor.settings_path must be relative to the project directory: %s", c.Editor.SettingsPath)
	}
	if filepath.Ext(c.Editor.SettingsPath) != ".json" {
		return fmt.Errorf("editor.settings_path must end in .json: %s", c.Editor.SettingsPath)
	}

	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

// validateBinary rejects empty names and names containing path separators.
// Tools are resolved on PATH, never invoked by explicit path.
func validateBinary(field, name string) error {
	if name == "" {
		return fmt.Errorf("%s must not be empty", field)
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%s must be a bare executable name, not a path: %s", field, name)
	}
	return nil
}
