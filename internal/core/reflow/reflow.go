// Package reflow contains the pure Reflow Engine: given a schedule with
// violations, it produces a repaired schedule plus a human-readable
// explanation of every change, without performing any I/O. It composes
// checker.Verify and sequence.Prepare into a single repair pass.
package reflow

import (
	"github.com/example/reflow/internal/core/checker"
	"github.com/example/reflow/internal/core/sequence"
	"github.com/example/reflow/internal/models"
)

// maxFixpointRounds bounds Options.IterateToFixpoint sweeps. A round that
// makes no changes ends the loop early; this cap only guards against a
// pathological chain of cross-WC dependencies that never quite settles.
const maxFixpointRounds = 10

// Options configures Reflow beyond its single-sweep baseline behavior.
type Options struct {
	// IterateToFixpoint resolves the cross-Work-Center open question left
	// implicit by a single sweep: a child WorkOrder on WC2 that depends on
	// a parent still being repaired on WC1 can only be correctly placed
	// once WC1's sweep has settled. When true, reschedule repeats whole
	// per-WC sweeps until a round changes nothing (or maxFixpointRounds is
	// reached); when false, exactly one sweep runs, matching the
	// unqualified description of the algorithm.
	IterateToFixpoint bool
}

// Reflow verifies orders against centers and, if any non-fatal violation is
// found, produces a repaired schedule. A fatal violation (a fixed-vs-fixed
// maintenance overlap or a dependency cycle) is returned as a
// NotFixableError rather than repaired - the engine never guesses its way
// past a contradiction it did not create.
//
// Reflow never mutates orders. On input with no violations
// UpdatedWorkOrders is orders itself; after a repair it is a fresh copy.
func Reflow(orders []models.WorkOrder, centers []models.WorkCenter, opts Options) (models.ReflowResult, error) {
	violations := checker.Verify(orders, centers, nil)
	if len(violations) == 0 {
		return models.ReflowResult{UpdatedWorkOrders: orders}, nil
	}
	if models.AnyFatal(violations) {
		return models.ReflowResult{}, &models.NotFixableError{Fatal: fatalOnly(violations)}
	}

	working := models.CloneWorkOrders(orders)
	result := reschedule(working, centers, violations, opts)
	result.Diagnostics = checker.Verify(result.UpdatedWorkOrders, centers, orders)

	return result, nil
}

func fatalOnly(violations []models.Violation) []models.Violation {
	var out []models.Violation
	for _, v := range violations {
		if v.IsFatal {
			out = append(out, v)
		}
	}
	return out
}

// reschedule runs one or more per-Work-Center sweeps over working (a fresh
// copy the caller owns) and accumulates every change and explanation across
// all of them, in the order they occurred.
func reschedule(working []models.WorkOrder, centers []models.WorkCenter, originalViolations []models.Violation, opts Options) models.ReflowResult {
	index := make(map[string]int, len(working))
	for i, o := range working {
		index[o.ID] = i
	}

	var changes []models.Change
	var explanation []string

	rounds := 1
	if opts.IterateToFixpoint {
		rounds = maxFixpointRounds
	}

	for round := 0; round < rounds; round++ {
		roundShifted := 0

		for _, wc := range centers {
			var centerOrders, maintenanceOrders, nonMaintenance []models.WorkOrder
			for _, o := range working {
				if o.WorkCenterID != wc.ID {
					continue
				}
				centerOrders = append(centerOrders, o)
				if o.IsMaintenance {
					maintenanceOrders = append(maintenanceOrders, o)
				} else {
					nonMaintenance = append(nonMaintenance, o)
				}
			}
			if len(nonMaintenance) == 0 {
				continue
			}

			order := sequence.Prepare(nonMaintenance)
			roundShifted += rescheduleByCenter(order, wc, maintenanceOrders, originalViolations, &changes, &explanation)

			for _, updated := range order {
				working[index[updated.ID]] = updated
			}
		}

		if roundShifted == 0 {
			break
		}
	}

	return models.ReflowResult{
		UpdatedWorkOrders: working,
		Changes:           changes,
		Explanation:       explanation,
	}
}
