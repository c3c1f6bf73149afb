package reflow

import (
	"fmt"
	"time"

	"github.com/example/reflow/internal/models"
)

// rescheduleByCenter walks order (already sequence-prepared for one Work
// Center) left to right, repairing each WorkOrder whose placement collides
// with the previous one or that carried an original violation. It mutates
// order in place and returns how many WorkOrders it actually shifted.
//
// cascade tracks whether a shift earlier in this walk is still propagating:
// once something moves, everything after it is re-checked against its new
// neighbor until one WorkOrder is found to already fit.
func rescheduleByCenter(
	order []models.WorkOrder,
	wc models.WorkCenter,
	maintenanceOrders []models.WorkOrder,
	originalViolations []models.Violation,
	changes *[]models.Change,
	explanation *[]string,
) int {
	cascade := false
	var prev *models.WorkOrder
	shiftedCount := 0

	for i := range order {
		curr := order[i]
		orig := models.Find(originalViolations, curr.ID)
		ok := prev == nil || !curr.Start.Before(prev.End)

		shifted := false
		var newStart time.Time
		var reason string
		keepCascade := cascade

		switch {
		case cascade && ok && orig != nil:
			newStart = FindNextAvailableStart(curr.Start, wc, maintenanceOrders)
			reason = fmt.Sprintf("Original violation: %s", orig.Type)
			shifted = true
			keepCascade = true

		case cascade && ok && orig == nil:
			// Candidate to clear the cascade. Before clearing, re-check
			// this WorkOrder against maintenance obstacles directly - a
			// cascading shift upstream can land a WorkOrder that was
			// never itself in violation onto a maintenance window or
			// fixed maintenance WorkOrder.
			recheck := FindNextAvailableStart(curr.Start, wc, maintenanceOrders)
			if recheck.After(curr.Start) {
				newStart = recheck
				reason = "Cascading shift changes due to earlier violations"
				shifted = true
				keepCascade = true
			} else {
				keepCascade = false
			}

		case cascade && !ok:
			newStart = FindNextAvailableStart(prev.End, wc, maintenanceOrders)
			reason = "Cascading shift changes due to earlier violations"
			shifted = true
			keepCascade = true

		case !cascade && ok && orig != nil:
			newStart = FindNextAvailableStart(curr.Start, wc, maintenanceOrders)
			reason = fmt.Sprintf("Original violation: %s", orig.Type)
			shifted = true
			keepCascade = true

		case !cascade && ok && orig == nil:
			// Already valid and never in violation: nothing to do.

		case !cascade && !ok:
			from := curr.Start
			if prev != nil {
				from = prev.End
			}
			newStart = FindNextAvailableStart(from, wc, maintenanceOrders)
			if orig != nil {
				reason = fmt.Sprintf("Original violation: %s", orig.Type)
			} else if prev != nil {
				reason = fmt.Sprintf("Collision with previous order %s", prev.Number)
			}
			shifted = true
			keepCascade = true
		}

		cascade = keepCascade

		if shifted {
			oldStart, oldEnd := curr.Start, curr.End
			curr.Start = newStart
			curr.End = FindEndDate(curr.Start, curr.DurationMinutes, wc, maintenanceOrders)
			order[i] = curr
			*changes = append(*changes, models.Change{
				OrderID:  curr.ID,
				OldStart: oldStart,
				OldEnd:   oldEnd,
				NewStart: curr.Start,
				NewEnd:   curr.End,
			})
			*explanation = append(*explanation, reason)
			if !curr.Start.Equal(oldStart) || !curr.End.Equal(oldEnd) {
				shiftedCount++
			}
		}

		p := order[i]
		prev = &p
	}

	return shiftedCount
}
