package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/reflow/internal/wire"
)

func newHistoryCommand(container wire.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history <scenario>",
		Short: "Show the audit trail of past reflow runs for a scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := container.Scenario.History(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no recorded runs")
				return nil
			}
			for _, r := range records {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %d change(s)  fixpoint=%v\n", r.RanAt, r.ChangeCount, r.Fixpoint)
			}
			return nil
		},
	}
	return cmd
}
