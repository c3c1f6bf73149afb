// Package cli assembles reflow's cobra command tree around a wired
// Container, keeping each command thin and testable.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/reflow/internal/version"
	"github.com/example/reflow/internal/wire"
)

// NewRootCommand builds the full command tree against container.
func NewRootCommand(container wire.Container) *cobra.Command {
	root := &cobra.Command{
		Use:     "reflow",
		Short:   "Verify and repair production schedules against Work Center calendars",
		Version: version.String(),
	}

	root.AddCommand(
		newVerifyCommand(container),
		newReflowCommand(container),
		newScenarioCommand(container),
		newHistoryCommand(container),
	)

	return root
}
