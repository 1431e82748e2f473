package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/allotment/backend/internal/app"
	"github.com/allotment/backend/internal/periods"
	"github.com/spf13/cobra"
)

func newPeriodCmd(s *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "period",
		Short: "Lock, unlock and inspect periods",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:     "lock YYYY-MM",
			Short:   "Snapshot the active plan for the period and lock it",
			Args:    cobra.ExactArgs(1),
			Example: "allotment period lock 2025-03",
			RunE: s.withApp(func(a *app.App, out io.Writer, period string) error {
				if err := a.Periods.LockPeriod(period); err != nil {
					return err
				}
				return printStatus(a, out, period)
			}),
		},
		&cobra.Command{
			Use:   "unlock YYYY-MM",
			Short: "Unlock the period, its snapshot is kept",
			Args:  cobra.ExactArgs(1),
			RunE: s.withApp(func(a *app.App, out io.Writer, period string) error {
				if err := a.Periods.UnlockPeriod(period); err != nil {
					return err
				}
				return printStatus(a, out, period)
			}),
		},
		&cobra.Command{
			Use:   "regenerate YYYY-MM",
			Short: "Recreate the missing snapshot of a locked period from the active plan",
			Args:  cobra.ExactArgs(1),
			RunE: s.withApp(func(a *app.App, out io.Writer, period string) error {
				if err := a.Periods.RegenerateSnapshot(period); err != nil {
					return err
				}
				return printStatus(a, out, period)
			}),
		},
		&cobra.Command{
			Use:   "status YYYY-MM",
			Short: "Show the lock state and snapshot of the period",
			Args:  cobra.ExactArgs(1),
			RunE:  s.withApp(printStatus),
		},
	)

	return cmd
}

// withApp opens the database for commands that take a period argument.
func (s *state) withApp(fn func(a *app.App, out io.Writer, period string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := s.open()
		if err != nil {
			return err
		}
		defer a.Close()

		if err := fn(a, cmd.OutOrStdout(), args[0]); err != nil {
			if reason := periods.Reason(err); reason != "" {
				return fmt.Errorf("%s: %w", reason, err)
			}
			return err
		}
		return nil
	}
}

func printStatus(a *app.App, out io.Writer, period string) error {
	status, err := a.Periods.Status(period)
	if err != nil {
		return err
	}

	lock := "unlocked"
	if status.Locked {
		lock = "locked"
	}

	switch {
	case status.Snapshot != nil:
		_, err = fmt.Fprintf(out, "%s: %s, snapshot of %q (%s) taken %s\n", status.Period, lock, status.Snapshot.PlanName, status.Snapshot.Currency, status.Snapshot.LockedAt.Format(time.RFC3339))
	case status.NeedsRegeneration():
		_, err = fmt.Fprintf(out, "%s: %s, snapshot missing, run 'allotment period regenerate %s'\n", status.Period, lock, status.Period)
	default:
		_, err = fmt.Fprintf(out, "%s: %s, no snapshot\n", status.Period, lock)
	}

	return err
}
