// Package editor writes the project's editor configuration and drives
// the editor CLI.
package editor

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/devenv-toolkit/devsetup/pkg/errors"
	"github.com/devenv-toolkit/devsetup/pkg/fsx"
)

// Settings is the settings.json document devsetup emits. The schema is
// fixed: only PythonPath varies between environments. Field order is the
// serialization order, so repeated runs produce byte-identical output.
type Settings struct {
	FormatOnSave       bool   `json:"editor.formatOnSave"`
	FormattingProvider string `json:"python.formatting.provider"`
	LintingEnabled     bool   `json:"python.linting.enabled"`
	LintOnSave         bool   `json:"python.linting.lintOnSave"`
	Flake8Enabled      bool   `json:"python.linting.flake8Enabled"`
	PylintEnabled      bool   `json:"python.linting.pylintEnabled"`
	PythonPath         string `json:"python.pythonPath"`
}

// NewSettings returns the standard Python workspace settings with the
// given interpreter path: format on save with black, lint on save with
// flake8, pylint off.
func NewSettings(pythonPath string) Settings {
	return Settings{
		FormatOnSave:       true,
		FormattingProvider: "black",
		LintingEnabled:     true,
		LintOnSave:         true,
		Flake8Enabled:      true,
		PylintEnabled:      false,
		PythonPath:         pythonPath,
	}
}

// Marshal serializes the settings document with stable formatting.
func (s Settings) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal settings: %w", err)
	}
	return append(data, '\n'), nil
}

// WriteSettings writes the settings document to path, creating the parent
// directory if absent and fully replacing any prior file. The write is
// atomic so a failure never leaves a truncated file behind.
func WriteSettings(path string, s Settings) error {
	data, err := s.Marshal()
	if err != nil {
		return errors.New(errors.ErrInternal, "failed to serialize editor settings", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.New(errors.ErrInternal, "failed to create settings directory", err)
	}

	if err := fsx.WriteFileAtomic(path, data, 0o644); err != nil {
		return errors.New(errors.ErrInternal, "failed to write editor settings", err)
	}
	return nil
}
