package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/avatarhash/internal/names"
)

// RegisterOptions holds flags for the register command.
type RegisterOptions struct {
	*RootOptions
	Import string // path to a JSON name asset
}

// RegisterResult is the JSON payload of the register command.
type RegisterResult struct {
	Schema      int    `json:"schema"`
	Fingerprint string `json:"fingerprint,omitempty"`
	Name        string `json:"name,omitempty"`
	Imported    int    `json:"imported,omitempty"`
}

// NewRegisterCommand creates the register command.
func NewRegisterCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RegisterOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "register [<fingerprint> <name>]",
		Short: "Register names for fingerprints in the registry",
		Long: `Register a name for a fingerprint in the SQLite registry, replacing
any earlier name. With --import, every entry of a JSON name asset is
registered under --schema instead.

Examples:
  avatarhash register --db registry.db mgKuAmwK9wp+AyIDxQaCBiIB "Alice"
  avatarhash register --db registry.db --import names.json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if opts.Import != "" {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRegister(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Import, "import", "", "import every entry of a JSON name asset")

	return cmd
}

func runRegister(opts *RegisterOptions, args []string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)
	ctx := cmd.Context()

	schema, err := opts.schema()
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeUnknownSchema, err.Error(), nil)
	}

	if opts.Import != "" {
		dir, err := names.Load(opts.Import)
		if err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeNotFound, "failed to load name asset", err)
		}

		st, err := openRegistry(opts.RootOptions, formatter)
		if err != nil {
			return err
		}
		defer st.Close()

		n, err := st.ImportNames(ctx, schema.Version, dir)
		if err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeRegistry, "import failed", err)
		}

		if opts.Format == "json" {
			return formatter.Success(RegisterResult{Schema: schema.Version, Imported: n})
		}
		fmt.Fprintf(formatter.Writer, "Imported %d of %d name(s) under v%d\n", n, dir.Len(), schema.Version)
		return nil
	}

	fp, err := parseFingerprint(opts.RootOptions, args[0])
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeBadFingerprint, err.Error(), nil)
	}
	name := args[1]
	if name == "" {
		return formatter.Fail(ExitCommandError, ErrCodeInvalidArg, "name must not be empty", nil)
	}

	st, err := openRegistry(opts.RootOptions, formatter)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.RegisterName(ctx, fp, name); err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeRegistry, "register failed", err)
	}

	if opts.Format == "json" {
		return formatter.Success(RegisterResult{Schema: fp.Schema, Fingerprint: fp.Value, Name: name})
	}
	fmt.Fprintf(formatter.Writer, "Registered %s as %q\n", fp.Tagged(), name)
	return nil
}
