package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/avatarhash/internal/fingerprint"
)

// NewDecodeCommand creates the decode command.
func NewDecodeCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <fingerprint>",
		Short: "Decode a fingerprint back to its slot values",
		Long: `Decode a fingerprint and print its slots like the debug command.

The fingerprint may be tagged (v2:...) or bare; bare values are read
under --schema.

Examples:
  avatarhash decode mgKuAmwK9wp+AyIDxQaCBiIB
  avatarhash decode v1:rgJsCvcKfgMiA8UGggYiAWYCmgJmAhkC`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runDecode(opts *RootOptions, input string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	fp, err := parseFingerprint(opts, input)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeBadFingerprint, err.Error(), nil)
	}

	v, err := fp.Vector()
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeBadFingerprint, err.Error(), nil)
	}
	debug := fingerprint.DebugRender(v)

	if opts.Format == "json" {
		return formatter.Success(DebugResult{
			Schema: fp.Schema,
			Vector: nonNilVector(v),
			Debug:  debug,
		})
	}

	fmt.Fprint(formatter.Writer, debug)
	return nil
}

// parseFingerprint reads a tagged or bare fingerprint; bare values use the
// selected schema.
func parseFingerprint(opts *RootOptions, input string) (fingerprint.Fingerprint, error) {
	schema, err := opts.schema()
	if err != nil {
		return fingerprint.Fingerprint{}, err
	}
	return fingerprint.Parse(input, schema.Version)
}
