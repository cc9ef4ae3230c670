package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/avatarhash/internal/config"
	"github.com/roach88/avatarhash/internal/fingerprint"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	Schema  int    // fingerprint schema version

	// DB and Names default from the environment and are shared by the
	// commands that read the registry or the name asset.
	DB    string
	Names string

	// Logger is configured in PersistentPreRunE. Commands built directly in
	// tests run without it and fall back to a discarding logger.
	Logger *slog.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the avatarhash CLI.
// Flag defaults come from AVATARHASH_* environment variables.
func NewRootCommand() *cobra.Command {
	cfg, cfgErr := config.Load()
	if cfgErr != nil {
		cfg = config.Config{Schema: fingerprint.DefaultVersion, Format: "text"}
	}
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "avatarhash",
		Short: "avatarhash - skeleton proportion fingerprints",
		Long: `Derive short, scale-independent fingerprints from humanoid avatar
skeletons by measuring relative limb proportions.

Fingerprints are not unique identifiers and offer no privacy guarantee:
bodies with similar proportions produce the same value.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfgErr != nil {
				return WrapExitError(ExitCommandError, "invalid environment", cfgErr)
			}
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			if _, err := fingerprint.LookupSchema(opts.Schema); err != nil {
				return WrapExitError(ExitCommandError, "invalid --schema", err)
			}
			opts.Logger = newLogger(cmd.ErrOrStderr(), opts.Verbose)
			slog.SetDefault(opts.Logger)
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", cfg.Format, "output format (json|text)")
	cmd.PersistentFlags().IntVar(&opts.Schema, "schema", cfg.Schema, "fingerprint schema version")
	cmd.PersistentFlags().StringVar(&opts.DB, "db", cfg.DB, "path to the SQLite registry")
	cmd.PersistentFlags().StringVar(&opts.Names, "names", cfg.Names, "path to a JSON name asset")

	cmd.AddCommand(NewHashCommand(opts))
	cmd.AddCommand(NewDebugCommand(opts))
	cmd.AddCommand(NewDecodeCommand(opts))
	cmd.AddCommand(NewLookupCommand(opts))
	cmd.AddCommand(NewIdentifyCommand(opts))
	cmd.AddCommand(NewRegisterCommand(opts))
	cmd.AddCommand(NewHistoryCommand(opts))
	cmd.AddCommand(NewSchemasCommand(opts))
	cmd.AddCommand(NewTestCommand(opts))

	return cmd
}

// newLogger builds the CLI logger: text on w, Debug level when verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

// logger returns the configured logger or one that discards everything.
func (o *RootOptions) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// schema resolves the selected schema. Zero selects the default.
func (o *RootOptions) schema() (fingerprint.Schema, error) {
	if o.Schema == 0 {
		return fingerprint.Default(), nil
	}
	return fingerprint.LookupSchema(o.Schema)
}

// formatter builds the output formatter for cmd.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   o.Verbose,
	}
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
