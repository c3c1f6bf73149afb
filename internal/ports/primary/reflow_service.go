// Package primary defines the driving interfaces reflow's CLI depends on -
// what the application can be asked to do, independent of how it does it.
package primary

import (
	"context"

	"github.com/example/reflow/internal/core/reflow"
	"github.com/example/reflow/internal/models"
)

// ReflowService is the primary port for verifying and repairing a
// production schedule.
type ReflowService interface {
	// Verify reports every constraint violation in orders without
	// modifying anything.
	Verify(ctx context.Context, orders []models.WorkOrder, centers []models.WorkCenter) ([]models.Violation, error)

	// Reflow repairs orders, persists an audit record of the run, and
	// returns the repaired schedule.
	Reflow(ctx context.Context, scenarioID string, orders []models.WorkOrder, centers []models.WorkCenter, opts reflow.Options) (models.ReflowResult, error)
}
