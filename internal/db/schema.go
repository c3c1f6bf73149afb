package db

import "database/sql"

// schema is applied idempotently every time Open runs.
const schema = `
CREATE TABLE IF NOT EXISTS reflow_runs (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	scenario_id   TEXT NOT NULL,
	ran_at        TEXT NOT NULL,
	change_count  INTEGER NOT NULL,
	explanation   TEXT NOT NULL,
	fixpoint      INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_reflow_runs_scenario_id ON reflow_runs (scenario_id);
`

// Migrate applies schema to conn. It is safe to call on every startup.
func Migrate(conn *sql.DB) error {
	_, err := conn.Exec(schema)
	return err
}
