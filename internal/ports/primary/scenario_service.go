package primary

import (
	"context"

	"github.com/example/reflow/internal/models"
)

// ScenarioService is the primary port for loading, saving, and generating
// production-schedule scenarios.
type ScenarioService interface {
	Load(ctx context.Context, name string) (models.Scenario, error)
	Save(ctx context.Context, name string, scenario models.Scenario) error
	Generate(ctx context.Context, opts models.GenerateOptions) (models.Scenario, error)
	History(ctx context.Context, scenarioID string) ([]models.RunRecord, error)

	// LoadWorkCenters loads a shared Work Center calendar library by name,
	// independent of any particular scenario's order list.
	LoadWorkCenters(ctx context.Context, name string) ([]models.WorkCenter, error)
	// SaveWorkCenters persists a Work Center calendar library by name.
	SaveWorkCenters(ctx context.Context, name string, centers []models.WorkCenter) error
}
