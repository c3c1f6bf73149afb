// Package wire assembles concrete adapters into the ports the application
// layer depends on, using a sync.Once-guarded singleton wiring style so
// Build can be called repeatedly within a process without reopening the
// database connection.
package wire

import (
	"database/sql"
	"sync"

	"github.com/example/reflow/internal/adapters/filesystem"
	"github.com/example/reflow/internal/adapters/sqlite"
	"github.com/example/reflow/internal/app"
	"github.com/example/reflow/internal/config"
	"github.com/example/reflow/internal/db"
	"github.com/example/reflow/internal/ports/primary"
)

var (
	once        sync.Once
	initErr     error
	conn        *sql.DB
	reflowSvc   *app.ReflowService
	scenarioSvc *app.ScenarioService
)

// Container holds every wired service the CLI needs, exposed through the
// primary ports rather than the concrete application types.
type Container struct {
	Reflow   primary.ReflowService
	Scenario primary.ScenarioService
	Close    func() error
}

// Build wires the full application graph from cfg, opening the sqlite
// audit database exactly once regardless of how many times Build is
// called within a process.
func Build(cfg config.Config) (Container, error) {
	once.Do(func() {
		conn, initErr = db.Open(cfg.DatabasePath)
		if initErr != nil {
			return
		}

		audit := sqlite.NewAuditRepo(conn)
		scenarios := filesystem.NewScenarioStore(cfg.ScenarioDir)
		workCenters := filesystem.NewWorkCenterStore(cfg.WorkCenterDir)
		executor := app.NewEffectExecutor()

		reflowSvc = app.NewReflowService(audit, executor, nil)
		scenarioSvc = app.NewScenarioService(scenarios, workCenters, audit, nil)
	})

	if initErr != nil {
		return Container{}, initErr
	}

	return Container{
		Reflow:   reflowSvc,
		Scenario: scenarioSvc,
		Close:    conn.Close,
	}, nil
}
