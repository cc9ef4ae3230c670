package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/avatarhash/internal/fingerprint"
	"github.com/roach88/avatarhash/internal/pose"
)

// HashOptions holds flags for the hash command.
type HashOptions struct {
	*RootOptions
	Tagged bool // print v<schema>:<value>
}

// HashResult is the JSON payload of the hash command.
type HashResult struct {
	Source      string `json:"source"`
	Schema      int    `json:"schema"`
	Fingerprint string `json:"fingerprint"`
	Tagged      string `json:"tagged"`
}

// NewHashCommand creates the hash command.
func NewHashCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HashOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "hash <pose-file>",
		Short: "Print the fingerprint of a pose",
		Long: `Compute the skeleton fingerprint of a pose snapshot.

The pose may be YAML, JSON or CUE. A pose whose body is not valid prints
an empty fingerprint.

Examples:
  avatarhash hash pose.yaml
  avatarhash hash pose.cue --schema 1
  avatarhash hash pose.json --tagged`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHash(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Tagged, "tagged", false, "print the schema-tagged form v<schema>:<value>")

	return cmd
}

func runHash(opts *HashOptions, path string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	snap, schema, err := loadPoseAndSchema(opts.RootOptions, formatter, path)
	if err != nil {
		return err
	}

	fp := fingerprint.Compute(snap, schema)
	opts.logger().Debug("pose hashed",
		"path", path,
		"schema", schema.Version,
		"tracked", snap.Tracked(),
		"fingerprint", fp.Value,
	)

	if opts.Format == "json" {
		return formatter.Success(HashResult{
			Source:      path,
			Schema:      fp.Schema,
			Fingerprint: fp.Value,
			Tagged:      fp.Tagged(),
		})
	}

	if opts.Tagged {
		fmt.Fprintln(formatter.Writer, fp.Tagged())
		return nil
	}
	fmt.Fprintln(formatter.Writer, fp.Value)
	return nil
}

// DebugResult is the JSON payload of the debug and decode commands.
type DebugResult struct {
	Schema int     `json:"schema"`
	Vector []int16 `json:"vector"`
	Debug  string  `json:"debug"`
}

// NewDebugCommand creates the debug command.
func NewDebugCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "debug <pose-file>",
		Short: "Print the measured slot values of a pose",
		Long: `Print each slot of a pose's vector in decimal, one per line.

Negative values mark limbs whose left and right lengths differ; zero marks
limbs with an untracked bone.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDebug(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runDebug(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	snap, schema, err := loadPoseAndSchema(opts, formatter, path)
	if err != nil {
		return err
	}

	v := fingerprint.BuildVector(snap, schema)
	debug := fingerprint.DebugRender(v)

	if opts.Format == "json" {
		return formatter.Success(DebugResult{
			Schema: schema.Version,
			Vector: nonNilVector(v),
			Debug:  debug,
		})
	}

	fmt.Fprint(formatter.Writer, debug)
	return nil
}

// loadPoseAndSchema resolves the selected schema and loads the pose at
// path, reporting failures through formatter.
func loadPoseAndSchema(opts *RootOptions, formatter *OutputFormatter, path string) (*pose.Snapshot, fingerprint.Schema, error) {
	schema, err := opts.schema()
	if err != nil {
		return nil, fingerprint.Schema{}, formatter.Fail(ExitCommandError, ErrCodeUnknownSchema, err.Error(), nil)
	}

	snap, err := pose.Load(path)
	if err != nil {
		return nil, fingerprint.Schema{}, formatter.Fail(ExitCommandError, poseErrorCode(err), err.Error(), nil)
	}

	formatter.VerboseLog("Loaded %s: %d tracked bone(s)", path, snap.Tracked())
	return snap, schema, nil
}

func nonNilVector(v fingerprint.Vector) []int16 {
	if v == nil {
		return []int16{}
	}
	return []int16(v)
}
