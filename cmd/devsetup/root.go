// Package main provides the devsetup CLI application.
package main

import (
	"github.com/devenv-toolkit/devsetup/pkg/bootstrap"
	"github.com/devenv-toolkit/devsetup/pkg/config"
	"github.com/devenv-toolkit/devsetup/pkg/observability"
	"github.com/devenv-toolkit/devsetup/pkg/version"
	"github.com/spf13/cobra"
)

// rootFlags holds the flags shared by devsetup commands
type rootFlags struct {
	config  string
	dir     string
	verbose bool
	dryRun  bool
}

var rootOpts rootFlags

// rootCmd represents the base command when called without any subcommands.
// Running devsetup with no arguments performs the full bootstrap.
var rootCmd = &cobra.Command{
	Use:   "devsetup",
	Short: "Bootstrap a Python project workspace",
	Long: `devsetup bootstraps a Python project workspace.

It installs project dependencies through the Python package manager,
installs the editor's Python extension when the editor CLI is available,
and writes the workspace settings file with the managed interpreter path.`,
	Version:       version.FullString(),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		b := bootstrap.New(cfg,
			bootstrap.WithProjectDir(rootOpts.dir),
			bootstrap.WithDryRun(rootOpts.dryRun),
			bootstrap.WithLogger(observability.NewLogger(logLevel(cfg))),
		)
		return b.Run(cmd.Context())
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig resolves configuration from the --config flag or the
// project directory.
func loadConfig() (*config.Config, error) {
	if rootOpts.config != "" {
		return config.Load(rootOpts.config)
	}
	return config.LoadDefault(rootOpts.dir)
}

// logLevel lets --verbose override the configured level.
func logLevel(cfg *config.Config) string {
	if rootOpts.verbose {
		return "debug"
	}
	return cfg.LogLevel
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootOpts.config, "config", "c", "", "Path to configuration file")
	rootCmd.PersistentFlags().StringVarP(&rootOpts.dir, "dir", "d", ".", "Project directory to bootstrap")
	rootCmd.PersistentFlags().BoolVarP(&rootOpts.verbose, "verbose", "v", false, "Verbose output")
	rootCmd.Flags().BoolVar(&rootOpts.dryRun, "dry-run", false, "Show what would be done without doing it")
}
