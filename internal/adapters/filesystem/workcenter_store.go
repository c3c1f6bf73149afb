package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/example/reflow/internal/models"
	"github.com/example/reflow/internal/ports/secondary"
)

var _ secondary.WorkCenterRepository = (*WorkCenterStore)(nil)

// WorkCenterStore implements secondary.WorkCenterRepository over a
// directory of "<name>.yaml" files, one Work Center list per file.
type WorkCenterStore struct {
	dir string
}

// NewWorkCenterStore returns a WorkCenterStore rooted at dir.
func NewWorkCenterStore(dir string) *WorkCenterStore {
	return &WorkCenterStore{dir: dir}
}

type workCenterFile struct {
	WorkCenters []workCenterEntry `yaml:"work_centers"`
}

type workCenterEntry struct {
	ID                 string                   `yaml:"id"`
	Name               string                   `yaml:"name"`
	Shifts             []shiftEntry             `yaml:"shifts"`
	MaintenanceWindows []maintenanceWindowEntry `yaml:"maintenance_windows"`
}

type shiftEntry struct {
	DayOfWeek int `yaml:"day_of_week"`
	StartHour int `yaml:"start_hour"`
	EndHour   int `yaml:"end_hour"`
}

type maintenanceWindowEntry struct {
	Start  string `yaml:"start"`
	End    string `yaml:"end"`
	Reason string `yaml:"reason"`
}

// Load reads and parses the Work Center list in "<name>.yaml".
func (s *WorkCenterStore) Load(ctx context.Context, name string) ([]models.WorkCenter, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("filesystem: read work centers %s: %w", name, err)
	}

	var file workCenterFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("filesystem: parse work centers %s: %w", name, err)
	}

	centers := make([]models.WorkCenter, len(file.WorkCenters))
	for i, entry := range file.WorkCenters {
		wc := models.WorkCenter{ID: entry.ID, Name: entry.Name}
		for _, s := range entry.Shifts {
			wc.Shifts = append(wc.Shifts, models.Shift{
				DayOfWeek: parseWeekday(s.DayOfWeek),
				StartHour: s.StartHour,
				EndHour:   s.EndHour,
			})
		}
		for _, mw := range entry.MaintenanceWindows {
			start, err := parseTimestamp(mw.Start)
			if err != nil {
				return nil, fmt.Errorf("filesystem: work center %s: parse maintenance start: %w", entry.ID, err)
			}
			end, err := parseTimestamp(mw.End)
			if err != nil {
				return nil, fmt.Errorf("filesystem: work center %s: parse maintenance end: %w", entry.ID, err)
			}
			wc.MaintenanceWindows = append(wc.MaintenanceWindows, models.MaintenanceWindow{
				Start:  start,
				End:    end,
				Reason: mw.Reason,
			})
		}
		centers[i] = wc
	}
	return centers, nil
}

// Save writes centers to "<name>.yaml", creating the store directory if
// needed.
func (s *WorkCenterStore) Save(ctx context.Context, name string, centers []models.WorkCenter) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("filesystem: mkdir %s: %w", s.dir, err)
	}

	file := workCenterFile{WorkCenters: make([]workCenterEntry, len(centers))}
	for i, wc := range centers {
		entry := workCenterEntry{ID: wc.ID, Name: wc.Name}
		for _, sh := range wc.Shifts {
			entry.Shifts = append(entry.Shifts, shiftEntry{
				DayOfWeek: int(sh.DayOfWeek),
				StartHour: sh.StartHour,
				EndHour:   sh.EndHour,
			})
		}
		for _, mw := range wc.MaintenanceWindows {
			entry.MaintenanceWindows = append(entry.MaintenanceWindows, maintenanceWindowEntry{
				Start:  formatTimestamp(mw.Start),
				End:    formatTimestamp(mw.End),
				Reason: mw.Reason,
			})
		}
		file.WorkCenters[i] = entry
	}

	data, err := yaml.Marshal(file)
	if err != nil {
		return fmt.Errorf("filesystem: marshal work centers %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name+".yaml"), data, 0o644); err != nil {
		return fmt.Errorf("filesystem: write work centers %s: %w", name, err)
	}
	return nil
}
