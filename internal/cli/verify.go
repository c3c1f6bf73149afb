package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/reflow/internal/wire"
)

func newVerifyCommand(container wire.Container) *cobra.Command {
	var scenarioName string
	var workCenterName string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Report every constraint violation in a scenario without repairing it",
		RunE: func(cmd *cobra.Command, args []string) error {
			scenario, err := container.Scenario.Load(cmd.Context(), scenarioName)
			if err != nil {
				return fmt.Errorf("load scenario %s: %w", scenarioName, err)
			}

			if workCenterName != "" {
				centers, err := container.Scenario.LoadWorkCenters(cmd.Context(), workCenterName)
				if err != nil {
					return fmt.Errorf("load work centers %s: %w", workCenterName, err)
				}
				scenario.Centers = centers
			}

			violations, err := container.Reflow.Verify(cmd.Context(), scenario.Orders, scenario.Centers)
			if err != nil {
				return err
			}

			if len(violations) == 0 {
				color.New(color.FgGreen).Fprintln(cmd.OutOrStdout(), "no violations found")
				return nil
			}

			for _, v := range violations {
				style := color.New(color.FgYellow)
				if v.IsFatal {
					style = color.New(color.FgRed)
				}
				style.Fprintf(cmd.OutOrStdout(), "[%s] %s: %s\n", v.Type, v.OrderID, v.Message)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&scenarioName, "scenario", "", "scenario name to verify")
	cmd.Flags().StringVar(&workCenterName, "work-centers", "", "name of a shared Work Center calendar library to use instead of the scenario's own Centers")
	cmd.MarkFlagRequired("scenario")

	return cmd
}
