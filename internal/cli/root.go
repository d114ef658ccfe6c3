package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/synsim/internal/config"
	"github.com/roach88/synsim/internal/network"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	ConfigPath string

	// Config is populated from ConfigPath (or defaults) before any
	// subcommand runs.
	Config config.Config

	// RunIDs allows overriding the run ID generator (for testing).
	// If nil, defaults to network.UUIDv7Generator.
	RunIDs network.RunIDGenerator

	// LogWriter receives slog output. If nil, defaults to os.Stderr.
	LogWriter io.Writer
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the synsim CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "synsim",
		Short: "synsim - developing synapse simulator",
		Long: `Load developing-synapse records and evaluate their weights over time.

A record is six whitespace-separated tokens:

  <source> <target> <startWeight> <endWeight> <startTime> <endTime>

Each synapse's weight moves linearly from startWeight to endWeight
between startTime and endTime.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Validate format flag
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			if err := loadConfig(opts, newFormatter(opts, cmd)); err != nil {
				return err
			}
			configureLogging(opts)
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to YAML run config")

	// Add subcommands
	cmd.AddCommand(NewTraceCommand(opts))
	cmd.AddCommand(NewPrintCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))
	cmd.AddCommand(NewTestCommand(opts))

	return cmd
}

// ConfigErrorDetails is attached to E002/E004 errors from --config.
type ConfigErrorDetails struct {
	Path     string   `json:"path"`
	Problems []string `json:"problems,omitempty"`
}

// loadConfig fills opts.Config from the config file, or defaults when
// no file was given. Failures are reported through formatter.
func loadConfig(opts *RootOptions, formatter *OutputFormatter) error {
	if opts.ConfigPath == "" {
		opts.Config = config.Default()
		return nil
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		details := ConfigErrorDetails{Path: opts.ConfigPath}
		if errors.Is(err, os.ErrNotExist) {
			return formatter.Fail(ExitCommandError, ErrCodeNotFound,
				fmt.Sprintf("config file not found: %s", opts.ConfigPath), nil, details)
		}

		var ve *config.ValidationError
		if errors.As(err, &ve) {
			details.Problems = ve.Problems
		}
		return formatter.Fail(ExitCommandError, ErrCodeConfigInvalid, "failed to load config", err, details)
	}
	opts.Config = cfg
	return nil
}

// configureLogging installs the default slog handler. --verbose forces
// debug; otherwise the configured level applies.
func configureLogging(opts *RootOptions) {
	level := opts.Config.Log.SlogLevel()
	if opts.Verbose {
		level = slog.LevelDebug
	}

	w := opts.LogWriter
	if w == nil {
		w = os.Stderr
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// newFormatter builds the formatter every command writes through.
func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}
