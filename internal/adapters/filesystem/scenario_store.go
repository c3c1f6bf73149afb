// Package filesystem adapts reflow's secondary ports onto the local
// filesystem: scenarios as JSON, Work Center calendars as YAML, reading
// and writing plain files rather than reaching for an embedded database.
package filesystem

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/example/reflow/internal/models"
	"github.com/example/reflow/internal/ports/secondary"
)

var _ secondary.ScenarioRepository = (*ScenarioStore)(nil)

// ScenarioStore implements secondary.ScenarioRepository over a directory of
// "<name>.json" files.
type ScenarioStore struct {
	dir string
}

// NewScenarioStore returns a ScenarioStore rooted at dir.
func NewScenarioStore(dir string) *ScenarioStore {
	return &ScenarioStore{dir: dir}
}

// scenarioFile is the on-disk JSON shape for a scenario. Timestamps are
// RFC3339 strings with an explicit UTC offset.
type scenarioFile struct {
	Name    string              `json:"name"`
	Orders  []workOrderFile     `json:"orders"`
	Centers []models.WorkCenter `json:"centers"`
}

type workOrderFile struct {
	ID                   string   `json:"id"`
	Number               string   `json:"number"`
	WorkCenterID         string   `json:"work_center_id"`
	ManufacturingOrderID string   `json:"manufacturing_order_id"`
	Start                string   `json:"start"`
	End                  string   `json:"end"`
	DurationMinutes      int      `json:"duration_minutes"`
	IsMaintenance        bool     `json:"is_maintenance"`
	DependsOn            []string `json:"depends_on,omitempty"`
}

func (s *ScenarioStore) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// Load reads and parses the scenario named name.
func (s *ScenarioStore) Load(ctx context.Context, name string) (models.Scenario, error) {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		return models.Scenario{}, fmt.Errorf("filesystem: read scenario %s: %w", name, err)
	}

	var file scenarioFile
	if err := json.Unmarshal(data, &file); err != nil {
		return models.Scenario{}, fmt.Errorf("filesystem: parse scenario %s: %w", name, err)
	}

	orders := make([]models.WorkOrder, len(file.Orders))
	for i, o := range file.Orders {
		start, err := time.Parse(time.RFC3339, o.Start)
		if err != nil {
			return models.Scenario{}, fmt.Errorf("filesystem: scenario %s order %s: parse start: %w", name, o.ID, err)
		}
		end, err := time.Parse(time.RFC3339, o.End)
		if err != nil {
			return models.Scenario{}, fmt.Errorf("filesystem: scenario %s order %s: parse end: %w", name, o.ID, err)
		}
		orders[i] = models.WorkOrder{
			ID:                   o.ID,
			Number:               o.Number,
			WorkCenterID:         o.WorkCenterID,
			ManufacturingOrderID: o.ManufacturingOrderID,
			Start:                start.UTC(),
			End:                  end.UTC(),
			DurationMinutes:      o.DurationMinutes,
			IsMaintenance:        o.IsMaintenance,
			DependsOn:            o.DependsOn,
		}
	}

	return models.Scenario{Name: file.Name, Orders: orders, Centers: file.Centers}, nil
}

// Save writes scenario to disk as "<name>.json", creating the store
// directory if needed.
func (s *ScenarioStore) Save(ctx context.Context, name string, scenario models.Scenario) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("filesystem: mkdir %s: %w", s.dir, err)
	}

	file := scenarioFile{Name: name, Centers: scenario.Centers}
	file.Orders = make([]workOrderFile, len(scenario.Orders))
	for i, o := range scenario.Orders {
		file.Orders[i] = workOrderFile{
			ID:                   o.ID,
			Number:               o.Number,
			WorkCenterID:         o.WorkCenterID,
			ManufacturingOrderID: o.ManufacturingOrderID,
			Start:                o.Start.UTC().Format(time.RFC3339),
			End:                  o.End.UTC().Format(time.RFC3339),
			DurationMinutes:      o.DurationMinutes,
			IsMaintenance:        o.IsMaintenance,
			DependsOn:            o.DependsOn,
		}
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("filesystem: marshal scenario %s: %w", name, err)
	}
	if err := os.WriteFile(s.path(name), data, 0o644); err != nil {
		return fmt.Errorf("filesystem: write scenario %s: %w", name, err)
	}
	return nil
}
