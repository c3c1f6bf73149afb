package secondary

import (
	"context"

	"github.com/example/reflow/internal/models"
)

// AuditRepository persists a record of every reflow run.
type AuditRepository interface {
	Record(ctx context.Context, record models.RunRecord) error
	History(ctx context.Context, scenarioID string) ([]models.RunRecord, error)
}
