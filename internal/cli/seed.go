package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSeedCmd(s *state) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create the default plan if there is no plan yet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := s.open()
			if err != nil {
				return err
			}
			defer a.Close()

			plan, err := a.Plans.Seed()
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "active plan: %q (%s)\n", plan.Name, plan.ID)
			return err
		},
	}
}
