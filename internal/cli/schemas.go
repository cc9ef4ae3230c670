package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/avatarhash/internal/fingerprint"
)

// NewSchemasCommand creates the schemas command.
func NewSchemasCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "schemas",
		Short:         "List fingerprint schema versions and their slots",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSchemas(rootOpts, cmd)
		},
	}
	return cmd
}

func runSchemas(opts *RootOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	schemas := make([]fingerprint.Schema, 0, len(fingerprint.Versions()))
	for _, v := range fingerprint.Versions() {
		schemas = append(schemas, fingerprint.MustSchema(v))
	}

	if opts.Format == "json" {
		return formatter.Success(schemas)
	}

	for i, s := range schemas {
		if i > 0 {
			fmt.Fprintln(formatter.Writer)
		}
		writeSchema(formatter.Writer, s)
	}
	return nil
}

func writeSchema(w io.Writer, s fingerprint.Schema) {
	label := s.Name
	if s.Version == fingerprint.DefaultVersion {
		label += " (default)"
	}
	fmt.Fprintf(w, "v%d %s: %d slots, %s basis, multiplier %g\n",
		s.Version, label, s.Len(), s.Basis, s.Multiplier)
	for i, pair := range s.Limbs {
		line := fmt.Sprintf("  %2d  %s", i, pair)
		if !pair.Symmetrical {
			line += " (midline)"
		}
		fmt.Fprintln(w, line)
	}
}
