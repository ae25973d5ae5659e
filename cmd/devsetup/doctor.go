// Package main provides the devsetup CLI application.
package main

import (
	"fmt"

	"github.com/devenv-toolkit/devsetup/pkg/errors"
	"github.com/devenv-toolkit/devsetup/pkg/toolchain"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// doctorCmd reports the state of the external tools without side effects.
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the external tools devsetup depends on",
	Long: `Check whether the package manager and editor CLI are resolvable on
PATH and whether the managed interpreter can be located. Performs no
installation and writes no files.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		runner := toolchain.NewExecRunner()
		out := cmd.OutOrStdout()

		manager := toolchain.Check(runner, cfg.Manager.Binary)
		if manager.Present {
			fmt.Fprintf(out, "%s package manager %s: %s\n", color.GreenString("✔"), manager.Name, manager.Path)
		} else {
			fmt.Fprintf(out, "%s package manager %s: not found in PATH\n", color.RedString("✗"), cfg.Manager.Binary)
		}

		ed := toolchain.Check(runner, cfg.Editor.Binary)
		if ed.Present {
			fmt.Fprintf(out, "%s editor %s: %s\n", color.GreenString("✔"), ed.Name, ed.Path)
		} else {
			fmt.Fprintf(out, "%s editor %s: not found in PATH (extension install will be skipped)\n", color.YellowString("⚠"), cfg.Editor.Binary)
		}

		if !manager.Present {
			return errors.MissingToolError(cfg.Manager.Binary)
		}

		pythonPath, code, err := runner.Output(cmd.Context(), cfg.Manager.Binary, cfg.Manager.InterpreterQuery, toolchain.RunOpts{Dir: rootOpts.dir})
		if err != nil || code != 0 || pythonPath == "" {
			fmt.Fprintf(out, "%s interpreter: not resolvable (run %s install first?)\n", color.YellowString("⚠"), cfg.Manager.Binary)
			return nil
		}
		fmt.Fprintf(out, "%s interpreter: %s\n", color.GreenString("✔"), pythonPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
