package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/reflow/internal/models"
	"github.com/example/reflow/internal/wire"
)

func newScenarioCommand(container wire.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scenario",
		Short: "Generate and manage scenario files",
	}

	cmd.AddCommand(newScenarioGenerateCommand(container))
	return cmd
}

func newScenarioGenerateCommand(container wire.Container) *cobra.Command {
	var name string
	var workCenters, ordersPerCenter int
	var violationDensity float64
	var splitWorkCenters bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a synthetic scenario and save it",
		RunE: func(cmd *cobra.Command, args []string) error {
			scenario, err := container.Scenario.Generate(cmd.Context(), models.GenerateOptions{
				WorkCenterCount:  workCenters,
				OrdersPerCenter:  ordersPerCenter,
				ViolationDensity: violationDensity,
				Seed:             name,
			})
			if err != nil {
				return err
			}
			if name == "" {
				name = scenario.Name
			}

			if splitWorkCenters {
				centers := scenario.Centers
				scenario.Centers = nil
				if err := container.Scenario.Save(cmd.Context(), name, scenario); err != nil {
					return fmt.Errorf("save generated scenario %s: %w", name, err)
				}
				if err := container.Scenario.SaveWorkCenters(cmd.Context(), name, centers); err != nil {
					return fmt.Errorf("save generated work centers %s: %w", name, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "generated scenario %q with %d work centers (saved separately) and %d orders\n", name, len(centers), len(scenario.Orders))
				return nil
			}

			if err := container.Scenario.Save(cmd.Context(), name, scenario); err != nil {
				return fmt.Errorf("save generated scenario %s: %w", name, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "generated scenario %q with %d work centers and %d orders\n", name, len(scenario.Centers), len(scenario.Orders))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "name for the generated scenario (defaults to a generated id)")
	cmd.Flags().IntVar(&workCenters, "work-centers", 3, "number of Work Centers to generate")
	cmd.Flags().IntVar(&ordersPerCenter, "orders-per-center", 10, "number of WorkOrders per Work Center")
	cmd.Flags().Float64Var(&violationDensity, "violation-density", 0.2, "approximate fraction of WorkOrders seeded with a violation")
	cmd.Flags().BoolVar(&splitWorkCenters, "split-work-centers", false, "save the generated Work Center calendars as a separate named library instead of embedding them in the scenario file")

	return cmd
}
