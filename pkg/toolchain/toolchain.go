// Copyright 2026 Devenv Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package toolchain locates and drives the external tools devsetup
// depends on: the Python package manager and the editor CLI.
package toolchain

// Status reports whether a tool is resolvable on PATH.
type Status struct {
	Name    string
	Path    string
	Present bool
}

// Check resolves a tool by name on the current search path.
// It never returns an error; absence is reported via Present.
func Check(r CommandRunner, name string) Status {
	path, err := r.LookPath(name)
	if err != nil {
		return Status{Name: name}
	}
	return Status{Name: name, Path: path, Present: true}
}
