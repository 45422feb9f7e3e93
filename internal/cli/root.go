// Package cli implements the command-line interface for gocube-sim.
package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_sim/internal/config"
)

const version = "0.1.0"

var (
	// Global flags
	configPath string
	verbose    bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "gocube-sim",
	Short: "Rubik's cube simulator",
	Long: `gocube-sim - A terminal simulator for a 3x3x3 Rubik's cube.

Turn the outer layers from the keyboard and watch each move animate, or
run a move sequence headless and inspect the resulting state.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// setup attaches the logger and the loaded configuration to the command
// context.
func setup(cmd *cobra.Command, args []string) error {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	logger := newLogger(cmd.ErrOrStderr(), level)

	cfg := config.Default()
	if configPath != "" {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		logger.Debug("config loaded", "path", configPath)
	}

	ctx := withLogger(cmd.Context(), logger)
	cmd.SetContext(withConfig(ctx, cfg))
	return nil
}
