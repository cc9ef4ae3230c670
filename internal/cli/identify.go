package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/avatarhash/internal/fingerprint"
	"github.com/roach88/avatarhash/internal/store"
)

// IdentifyOptions holds flags for the identify command.
type IdentifyOptions struct {
	*RootOptions
	Record bool // write an observation to the registry
}

// IdentifyResult is the JSON payload of the identify command.
type IdentifyResult struct {
	Source        string `json:"source"`
	Fingerprint   string `json:"fingerprint"`
	Tagged        string `json:"tagged"`
	Name          string `json:"name,omitempty"`
	NameSource    string `json:"name_source,omitempty"`
	ObservationID string `json:"observation_id,omitempty"`
}

// NewIdentifyCommand creates the identify command.
func NewIdentifyCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &IdentifyOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "identify <pose-file>",
		Short: "Fingerprint a pose and resolve its name",
		Long: `Fingerprint a pose, then look the result up in the name asset and the
registry. With --record the fingerprint is also stored as an observation
so it shows up in 'avatarhash history'.

An unnamed fingerprint is not an error.

Examples:
  avatarhash identify pose.yaml --names names.json
  avatarhash identify pose.yaml --db registry.db --record`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIdentify(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Record, "record", false, "record the fingerprint as an observation (requires --db)")

	return cmd
}

func runIdentify(opts *IdentifyOptions, path string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)
	ctx := cmd.Context()

	if opts.Record && opts.DB == "" {
		return formatter.Fail(ExitCommandError, ErrCodeInvalidArg, "--record requires --db", nil)
	}

	snap, schema, err := loadPoseAndSchema(opts.RootOptions, formatter, path)
	if err != nil {
		return err
	}

	v := fingerprint.BuildVector(snap, schema)
	fp := fingerprint.Compute(snap, schema)
	result := IdentifyResult{
		Source:      path,
		Fingerprint: fp.Value,
		Tagged:      fp.Tagged(),
	}

	if !fp.IsZero() {
		name, source, err := resolveName(ctx, opts.RootOptions, formatter, fp)
		if err != nil {
			return err
		}
		result.Name = name
		result.NameSource = source
	}

	if opts.Record && !fp.IsZero() {
		st, err := openRegistry(opts.RootOptions, formatter)
		if err != nil {
			return err
		}
		defer st.Close()

		id, err := st.WriteObservation(ctx, store.Observation{
			Fingerprint: fp,
			Vector:      v,
			Source:      path,
		})
		if err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeRegistry, "failed to record observation", err)
		}
		result.ObservationID = id
	}

	opts.logger().Info("pose identified",
		"path", path,
		"fingerprint", fp.Tagged(),
		"name", result.Name,
		"recorded", result.ObservationID != "",
	)

	if opts.Format == "json" {
		return formatter.Success(result)
	}

	if fp.IsZero() {
		fmt.Fprintln(formatter.Writer, "(no fingerprint: body is not valid)")
		return nil
	}
	fmt.Fprintf(formatter.Writer, "Fingerprint: %s\n", fp.Tagged())
	if result.Name != "" {
		fmt.Fprintf(formatter.Writer, "Name:        %s (%s)\n", result.Name, result.NameSource)
	} else {
		fmt.Fprintln(formatter.Writer, "Name:        (unknown)")
	}
	if result.ObservationID != "" {
		fmt.Fprintf(formatter.Writer, "Recorded:    %s\n", result.ObservationID)
	}
	return nil
}
