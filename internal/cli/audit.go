package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errInconsistent = errors.New("locked periods without snapshot found")

func newAuditCmd(s *state) *cobra.Command {
	return &cobra.Command{
		Use:   "audit",
		Short: "List locked periods without snapshot and snapshots of unlocked periods",
		Long: `audit compares the period locks with the stored snapshots.

Locked periods without a snapshot make the command fail, their snapshots
need to be regenerated. Snapshots of unlocked periods are listed for
information, they are kept when a period is unlocked.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := s.open()
			if err != nil {
				return err
			}
			defer a.Close()

			report := a.Periods.Audit()
			out := cmd.OutOrStdout()

			for _, month := range report.MissingSnapshots {
				fmt.Fprintf(out, "%s: locked, snapshot missing\n", month)
			}
			for _, month := range report.UnlockedSnapshots {
				fmt.Fprintf(out, "%s: unlocked, snapshot kept\n", month)
			}

			if !report.Consistent() {
				return fmt.Errorf("%w: %d", errInconsistent, len(report.MissingSnapshots))
			}

			fmt.Fprintln(out, "every locked period has a snapshot")
			return nil
		},
	}
}
