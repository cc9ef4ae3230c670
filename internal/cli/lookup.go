package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// LookupResult is the JSON payload of the lookup command.
type LookupResult struct {
	Fingerprint string `json:"fingerprint"`
	Schema      int    `json:"schema"`
	Name        string `json:"name"`
	Source      string `json:"source"` // "names" or "db"
}

// NewLookupCommand creates the lookup command.
func NewLookupCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup <fingerprint>",
		Short: "Find the name registered for a fingerprint",
		Long: `Look a fingerprint up in the name asset (--names) and then in the
registry (--db). At least one of the two is required.

Exit codes:
  0 - Name found
  1 - No name registered for the fingerprint
  2 - Command error (bad fingerprint, unreadable asset or registry)`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runLookup(opts *RootOptions, input string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	if opts.Names == "" && opts.DB == "" {
		return formatter.Fail(ExitCommandError, ErrCodeInvalidArg, "--names or --db is required", nil)
	}

	fp, err := parseFingerprint(opts, input)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeBadFingerprint, err.Error(), nil)
	}

	name, source, err := resolveName(cmd.Context(), opts, formatter, fp)
	if err != nil {
		return err
	}
	if name == "" {
		return formatter.Fail(ExitFailure, ErrCodeNoName, fmt.Sprintf("no name registered for %s", fp.Tagged()), nil)
	}

	if opts.Format == "json" {
		return formatter.Success(LookupResult{
			Fingerprint: fp.Value,
			Schema:      fp.Schema,
			Name:        name,
			Source:      source,
		})
	}
	fmt.Fprintln(formatter.Writer, name)
	return nil
}
