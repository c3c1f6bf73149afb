package cli

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/reflow/internal/core/reflow"
	"github.com/example/reflow/internal/models"
	"github.com/example/reflow/internal/wire"
)

func newReflowCommand(container wire.Container) *cobra.Command {
	var scenarioName string
	var workCenterName string
	var fixpoint bool
	var save bool

	cmd := &cobra.Command{
		Use:   "reflow",
		Short: "Repair a scenario's schedule and report every change made",
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

			result, err := container.Reflow.Reflow(cmd.Context(), scenarioName, scenario.Orders, scenario.Centers, reflow.Options{IterateToFixpoint: fixpoint})
			var notFixable *models.NotFixableError
			if errors.As(err, &notFixable) {
				color.New(color.FgRed).Fprintln(cmd.OutOrStdout(), err.Error())
				return nil
			}
			if err != nil {
				return err
			}

			for i, change := range result.Changes {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s -> %s (%s)\n", change.OrderID, change.OldStart.Format("2006-01-02T15:04:05Z"), change.NewStart.Format("2006-01-02T15:04:05Z"), result.Explanation[i])
			}
			if len(result.Changes) == 0 {
				color.New(color.FgGreen).Fprintln(cmd.OutOrStdout(), "schedule already valid, nothing to repair")
			}

			if save {
				scenario.Orders = result.UpdatedWorkOrders
				if err := container.Scenario.Save(cmd.Context(), scenarioName, scenario); err != nil {
					return fmt.Errorf("save repaired scenario %s: %w", scenarioName, err)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&scenarioName, "scenario", "", "scenario name to repair")
	cmd.Flags().StringVar(&workCenterName, "work-centers", "", "name of a shared Work Center calendar library to use instead of the scenario's own Centers")
	cmd.Flags().BoolVar(&fixpoint, "fixpoint", false, "iterate per-Work-Center sweeps until stable, to resolve cross-Work-Center dependencies")
	cmd.Flags().BoolVar(&save, "save", false, "write the repaired schedule back to the scenario store")
	cmd.MarkFlagRequired("scenario")

	return cmd
}
