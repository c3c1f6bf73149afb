// Package app is the imperative shell: it wires the pure core to the
// secondary ports and turns Effects into actual side effects.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/example/reflow/internal/core/checker"
	"github.com/example/reflow/internal/core/reflow"
	"github.com/example/reflow/internal/effects"
	"github.com/example/reflow/internal/models"
	"github.com/example/reflow/internal/ports/primary"
	"github.com/example/reflow/internal/ports/secondary"
)

var _ primary.ReflowService = (*ReflowService)(nil)

// ReflowService implements primary.ReflowService, delegating the pure
// decision to internal/core/reflow and recording every run through an
// EffectExecutor.
type ReflowService struct {
	audit    secondary.AuditRepository
	executor *EffectExecutor
	now      func() time.Time
}

// NewReflowService constructs a ReflowService. now defaults to time.Now
// when nil; tests supply a fixed clock.
func NewReflowService(audit secondary.AuditRepository, executor *EffectExecutor, now func() time.Time) *ReflowService {
	if now == nil {
		now = time.Now
	}
	return &ReflowService{audit: audit, executor: executor, now: now}
}

// Verify reports every constraint violation without mutating anything or
// recording a run.
func (s *ReflowService) Verify(ctx context.Context, orders []models.WorkOrder, centers []models.WorkCenter) ([]models.Violation, error) {
	return checker.Verify(orders, centers, nil), nil
}

// Reflow repairs orders and persists an audit record of the run. A run
// refused as NotFixable is logged as a warning and not recorded.
func (s *ReflowService) Reflow(ctx context.Context, scenarioID string, orders []models.WorkOrder, centers []models.WorkCenter, opts reflow.Options) (models.ReflowResult, error) {
	result, err := reflow.Reflow(orders, centers, opts)
	if err != nil {
		s.executor.Execute(ctx, effects.LogEffect{
			Level:   "warn",
			Message: fmt.Sprintf("reflow refused scenario %s: %v", scenarioID, err),
		})
		return models.ReflowResult{}, err
	}

	record := models.RunRecord{
		ScenarioID:  scenarioID,
		RanAt:       s.now().UTC().Format(time.RFC3339),
		ChangeCount: len(result.Changes),
		Explanation: result.Explanation,
		Fixpoint:    opts.IterateToFixpoint,
	}
	s.executor.Execute(ctx, effects.PersistEffect{
		ScenarioID:  scenarioID,
		ChangeCount: record.ChangeCount,
		Explanation: record.Explanation,
	})
	if err := s.audit.Record(ctx, record); err != nil {
		return models.ReflowResult{}, fmt.Errorf("app: record run for scenario %s: %w", scenarioID, err)
	}

	return result, nil
}
