package app

import (
	"context"
	"time"

	"github.com/example/reflow/internal/adapters/generator"
	"github.com/example/reflow/internal/models"
	"github.com/example/reflow/internal/ports/primary"
	"github.com/example/reflow/internal/ports/secondary"
)

var _ primary.ScenarioService = (*ScenarioService)(nil)

// ScenarioService implements primary.ScenarioService over a
// ScenarioRepository, a WorkCenterRepository, and an AuditRepository.
type ScenarioService struct {
	scenarios   secondary.ScenarioRepository
	workCenters secondary.WorkCenterRepository
	audit       secondary.AuditRepository
	now         func() time.Time
}

// NewScenarioService constructs a ScenarioService.
func NewScenarioService(scenarios secondary.ScenarioRepository, workCenters secondary.WorkCenterRepository, audit secondary.AuditRepository, now func() time.Time) *ScenarioService {
	if now == nil {
		now = time.Now
	}
	return &ScenarioService{scenarios: scenarios, workCenters: workCenters, audit: audit, now: now}
}

func (s *ScenarioService) Load(ctx context.Context, name string) (models.Scenario, error) {
	return s.scenarios.Load(ctx, name)
}

func (s *ScenarioService) Save(ctx context.Context, name string, scenario models.Scenario) error {
	return s.scenarios.Save(ctx, name, scenario)
}

func (s *ScenarioService) Generate(ctx context.Context, opts models.GenerateOptions) (models.Scenario, error) {
	return generator.Generate(s.now(), opts), nil
}

func (s *ScenarioService) History(ctx context.Context, scenarioID string) ([]models.RunRecord, error) {
	return s.audit.History(ctx, scenarioID)
}

// LoadWorkCenters loads a Work Center calendar library by name, for callers
// that keep shift/maintenance definitions separate from scenario files.
func (s *ScenarioService) LoadWorkCenters(ctx context.Context, name string) ([]models.WorkCenter, error) {
	return s.workCenters.Load(ctx, name)
}

// SaveWorkCenters persists a Work Center calendar library by name.
func (s *ScenarioService) SaveWorkCenters(ctx context.Context, name string, centers []models.WorkCenter) error {
	return s.workCenters.Save(ctx, name, centers)
}
