package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/avatarhash/internal/fingerprint"
)

// HistoryEntry is one observation in the history command's JSON payload.
type HistoryEntry struct {
	ID     string  `json:"id"`
	Seq    int64   `json:"seq"`
	Tagged string  `json:"tagged"`
	Vector []int16 `json:"vector"`
	Source string  `json:"source"`
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history [<fingerprint>]",
		Short: "List recorded observations",
		Long: `List observations recorded with 'avatarhash identify --record', oldest
first. With a fingerprint argument only matching observations are listed.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(rootOpts, args, cmd)
		},
	}
	return cmd
}

func runHistory(opts *RootOptions, args []string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	var fp fingerprint.Fingerprint
	if len(args) == 1 {
		parsed, err := parseFingerprint(opts, args[0])
		if err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeBadFingerprint, err.Error(), nil)
		}
		fp = parsed
	}

	st, err := openRegistry(opts, formatter)
	if err != nil {
		return err
	}
	defer st.Close()

	observations, err := st.ListObservations(cmd.Context(), fp)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeRegistry, "failed to list observations", err)
	}

	if opts.Format == "json" {
		entries := make([]HistoryEntry, 0, len(observations))
		for _, obs := range observations {
			entries = append(entries, HistoryEntry{
				ID:     obs.ID,
				Seq:    obs.Seq,
				Tagged: obs.Fingerprint.Tagged(),
				Vector: nonNilVector(obs.Vector),
				Source: obs.Source,
			})
		}
		return formatter.Success(entries)
	}

	if len(observations) == 0 {
		fmt.Fprintln(formatter.Writer, "No observations")
		return nil
	}
	for _, obs := range observations {
		fmt.Fprintf(formatter.Writer, "%4d  %s  %s\n", obs.Seq, obs.Fingerprint.Tagged(), obs.Source)
	}
	return nil
}
