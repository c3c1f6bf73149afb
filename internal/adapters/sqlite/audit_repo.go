// Package sqlite adapts the reflow audit trail's secondary port onto
// database/sql: plain SQL, no ORM, errors wrapped with the operation
// that produced them.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/example/reflow/internal/models"
	"github.com/example/reflow/internal/ports/secondary"
)

var _ secondary.AuditRepository = (*AuditRepo)(nil)

// AuditRepo implements secondary.AuditRepository against a *sql.DB opened
// by internal/db.
type AuditRepo struct {
	db *sql.DB
}

// NewAuditRepo constructs an AuditRepo over an already-migrated database.
func NewAuditRepo(db *sql.DB) *AuditRepo {
	return &AuditRepo{db: db}
}

// Record inserts one reflow run into the audit trail.
func (r *AuditRepo) Record(ctx context.Context, record models.RunRecord) error {
	fixpoint := 0
	if record.Fixpoint {
		fixpoint = 1
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO reflow_runs (scenario_id, ran_at, change_count, explanation, fixpoint) VALUES (?, ?, ?, ?, ?)`,
		record.ScenarioID, record.RanAt, record.ChangeCount, strings.Join(record.Explanation, "\n"), fixpoint,
	)
	if err != nil {
		return fmt.Errorf("sqlite: record run for scenario %s: %w", record.ScenarioID, err)
	}
	return nil
}

// History returns every recorded run for scenarioID, oldest first.
func (r *AuditRepo) History(ctx context.Context, scenarioID string) ([]models.RunRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, scenario_id, ran_at, change_count, explanation, fixpoint FROM reflow_runs WHERE scenario_id = ? ORDER BY id ASC`,
		scenarioID,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: query history for scenario %s: %w", scenarioID, err)
	}
	defer rows.Close()

	var out []models.RunRecord
	for rows.Next() {
		var (
			record      models.RunRecord
			explanation string
			fixpoint    int
		)
		if err := rows.Scan(&record.ID, &record.ScenarioID, &record.RanAt, &record.ChangeCount, &explanation, &fixpoint); err != nil {
			return nil, fmt.Errorf("sqlite: scan history row: %w", err)
		}
		record.Fixpoint = fixpoint != 0
		if explanation != "" {
			record.Explanation = strings.Split(explanation, "\n")
		}
		out = append(out, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterate history rows: %w", err)
	}
	return out, nil
}
