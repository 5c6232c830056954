// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"podforge/internal/config"
	"podforge/internal/issue"
	"podforge/internal/podman"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables debug logging
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string
	// dryRun logs podman invocations instead of executing them
	dryRun bool
	// podmanBinary overrides the configured podman binary
	podmanBinary string

	// cfg is the loaded application configuration, populated by initRootConfig.
	cfg = config.DefaultConfig()
	// logger is the shared structured logger, populated by initRootConfig.
	logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "podforge"})

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "podforge",
		Short: "Declarative container image builds with podman",
		Long: TitleStyle.Render("podforge") + SubtitleStyle.Render(" - Declarative container image builds with podman") + `

podforge reads a forgefile (TOML) describing how a container image is
built, named and tagged, and drives podman for you: build, tag, save,
push, login and cleanup, with registry passwords kept out of logs.

` + SubtitleStyle.Render("Quick Start:") + `
  1. Create a forgefile.toml next to your Containerfile
  2. Describe the image: name, tags, build args
  3. Run: podforge build

` + SubtitleStyle.Render("Examples:") + `
  podforge build                 Build and tag the image
  podforge build --push          Build, tag and push every tag
  podforge login registry.io     Log in using PODFORGE_REGISTRY_PASSWORD
  podforge version               Show podforge and podman versions`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/podforge/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "log podman invocations without executing them")
	rootCmd.PersistentFlags().StringVar(&podmanBinary, "podman-binary", "", "podman binary to invoke (default from config, then PATH)")

	// Add subcommands
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(tagCmd)
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(pushCmd)
	rootCmd.AddCommand(rmiCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(docsCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Use fang.Execute for enhanced Cobra styling
	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initRootConfig reads in config file and ENV variables if set.
func initRootConfig() {
	// Set custom config file path if provided via --config flag
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}

	loaded, err := config.Load()
	if err != nil {
		// Config problems never abort the run; defaults still work.
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
	}
	if loaded != nil {
		cfg = loaded
	}

	// Apply verbose from config if not set via flag
	if !verbose {
		verbose = cfg.Verbose
	}
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
}

// newExecutor builds the podman executor for the current invocation,
// honoring --dry-run.
func newExecutor() *podman.Executor {
	var delegate podman.Delegate
	if dryRun {
		delegate = &podman.DryRunDelegate{Logger: logger}
	}
	return podman.NewExecutor(logger, currentGlobalOptions(), delegate)
}

// currentGlobalOptions merges the loaded configuration with flag overrides.
func currentGlobalOptions() podman.GlobalOptions {
	global := cfg.GlobalOptions()
	if podmanBinary != "" {
		global.Binary = podmanBinary
	}
	return global
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
