// Package cli provides the command-line interface for swatches.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatches/internal/colour"
	"github.com/jmylchreest/swatches/internal/config"
	"github.com/jmylchreest/swatches/internal/version"
	"github.com/jmylchreest/swatches/pkg/swatches"
)

// app carries state shared by every subcommand for one invocation.
type app struct {
	configPath string
	verbose    bool
	quiet      bool

	cfg       config.Config
	logger    hclog.Logger
	converter *colour.Converter
	codec     *swatches.Codec
}

// NewRootCmd builds the full command tree. Each call returns an independent
// tree, so tests can execute commands without sharing flag state.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "swatches",
		Short: "Read, write and convert Procreate .swatches palettes",
		Long: `swatches reads and writes Procreate .swatches palette files.

Palettes are stored as normalized HSV inside a zip container. swatches
converts them to and from rgb, hsl, hwb, xyz, lab and lch, builds new
palettes from colour specifications or JSON, and extracts palettes
from images.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd.ErrOrStderr())
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", config.DefaultPath(), "path to config file")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(
		newShowCmd(a),
		newEncodeCmd(a),
		newConvertCmd(a),
		newExtractCmd(a),
		newSpacesCmd(a),
		newVersionCmd(),
	)

	return rootCmd
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// init loads config and builds the logger and codec.
func (a *app) init(stderr io.Writer) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	a.cfg = cfg

	level := hclog.LevelFromString(cfg.LogLevel)
	switch {
	case a.verbose:
		level = hclog.Debug
	case a.quiet:
		level = hclog.Error
	}

	a.logger = hclog.New(&hclog.LoggerOptions{
		Name:   "swatches",
		Output: stderr,
		Level:  level,
	})
	a.converter = colour.NewConverter()
	a.codec = swatches.New(
		swatches.WithConverter(a.converter),
		swatches.WithLogger(a.logger.Named("codec")),
	)

	a.logger.Debug("configuration loaded", "path", a.configPath, "space", cfg.DefaultSpace, "format", cfg.DefaultFormat)
	return nil
}

// spaceOrDefault returns flagValue, or the configured default when it is empty.
func (a *app) spaceOrDefault(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return a.cfg.DefaultSpace
}
