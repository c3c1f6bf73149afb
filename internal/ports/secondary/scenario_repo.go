// Package secondary defines the driven interfaces the application core
// depends on for persistence and I/O, implemented by internal/adapters.
package secondary

import (
	"context"

	"github.com/example/reflow/internal/models"
)

// ScenarioRepository loads and saves Scenarios from durable storage.
type ScenarioRepository interface {
	Load(ctx context.Context, name string) (models.Scenario, error)
	Save(ctx context.Context, name string, scenario models.Scenario) error
}

// WorkCenterRepository loads and saves Work Center calendar definitions,
// kept separate from scenario order lists so a calendar library can be
// shared across scenarios.
type WorkCenterRepository interface {
	Load(ctx context.Context, name string) ([]models.WorkCenter, error)
	Save(ctx context.Context, name string, centers []models.WorkCenter) error
}
