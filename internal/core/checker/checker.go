// Package checker contains the pure business logic of the Constraint
// Checker: no I/O, only pure functions over the plain data model.
package checker

import (
	"fmt"
	"sort"
	"strings"

	"github.com/example/reflow/internal/core/calendar"
	"github.com/example/reflow/internal/models"
)

// Verify classifies orders into zero or more typed violations. originals,
// when non-nil, is the pre-reflow snapshot used to detect fixed-order
// displacement (pass 2). Verify never fails; it only reports.
func Verify(orders []models.WorkOrder, centers []models.WorkCenter, originals []models.WorkOrder) []models.Violation {
	centerByID := indexCenters(centers)
	byID := indexOrders(orders)
	var violations []models.Violation

	violations = append(violations, checkMaintenanceCollisions(orders, centerByID)...)
	violations = append(violations, checkFixedOrderMoved(orders, originals)...)
	violations = append(violations, checkOverlaps(orders)...)
	violations = append(violations, checkShiftAdherence(orders, centerByID)...)
	violations = append(violations, checkDependencies(orders, byID)...)
	violations = append(violations, checkFixedVsFixedOverlap(orders)...)
	violations = append(violations, checkDependencyCycles(orders)...)

	return violations
}

func indexCenters(centers []models.WorkCenter) map[string]models.WorkCenter {
	m := make(map[string]models.WorkCenter, len(centers))
	for _, c := range centers {
		m[c.ID] = c
	}
	return m
}

func indexOrders(orders []models.WorkOrder) map[string]models.WorkOrder {
	m := make(map[string]models.WorkOrder, len(orders))
	for _, o := range orders {
		m[o.ID] = o
	}
	return m
}

// checkMaintenanceCollisions is pass 1: a non-maintenance WO whose
// [start,end) intersects a maintenance window on its WC.
func checkMaintenanceCollisions(orders []models.WorkOrder, centers map[string]models.WorkCenter) []models.Violation {
	var out []models.Violation
	for _, o := range orders {
		if o.IsMaintenance {
			continue
		}
		wc, ok := centers[o.WorkCenterID]
		if !ok || len(wc.MaintenanceWindows) == 0 {
			continue
		}
		for _, mw := range wc.MaintenanceWindows {
			if o.Start.Before(mw.End) && mw.Start.Before(o.End) {
				out = append(out, models.Violation{
					OrderID: o.ID,
					Type:    models.MaintenanceCollision,
					Message: "Work order overlaps a maintenance window",
				})
				break
			}
		}
	}
	return out
}

// checkFixedOrderMoved is pass 2: a maintenance WO whose start differs from
// its recorded original.
func checkFixedOrderMoved(orders, originals []models.WorkOrder) []models.Violation {
	if originals == nil {
		return nil
	}
	origByID := indexOrders(originals)
	var out []models.Violation
	for _, o := range orders {
		if !o.IsMaintenance {
			continue
		}
		orig, ok := origByID[o.ID]
		if !ok {
			continue
		}
		if !o.Start.Equal(orig.Start) {
			out = append(out, models.Violation{
				OrderID: o.ID,
				Type:    models.FixedOrderMoved,
				Message: "Fixed maintenance order was moved from its original start",
			})
		}
	}
	return out
}

// checkOverlaps is pass 3: per WC, adjacent WOs (sorted by start) that
// overlap.
func checkOverlaps(orders []models.WorkOrder) []models.Violation {
	var out []models.Violation
	groups := groupByCenter(orders)
	for _, id := range orderedCenterIDs(orders) {
		sorted := stableSortByStart(groups[id])
		for i := 1; i < len(sorted); i++ {
			prev, cur := sorted[i-1], sorted[i]
			if cur.Start.Before(prev.End) {
				out = append(out, models.Violation{
					OrderID: cur.ID,
					Type:    models.Overlap,
					Message: fmt.Sprintf("Overlaps previous order %s on the same work center", prev.ID),
				})
			}
		}
	}
	return out
}

// checkShiftAdherence is pass 4: up to three OUTSIDE_SHIFT violations per
// non-maintenance WO on a resolvable WC.
func checkShiftAdherence(orders []models.WorkOrder, centers map[string]models.WorkCenter) []models.Violation {
	var out []models.Violation
	for _, o := range orders {
		if o.IsMaintenance {
			continue
		}
		wc, ok := centers[o.WorkCenterID]
		if !ok {
			continue
		}

		actual := calendar.WorkingMinutes(o.Start, o.End, wc)
		if abs(actual-o.DurationMinutes) > 1 {
			out = append(out, models.Violation{
				OrderID: o.ID,
				Type:    models.OutsideShift,
				Message: "Total work time mismatch",
			})
		}
		if !calendar.IsTimeInShift(o.Start, wc.Shifts, calendar.AsStart) {
			out = append(out, models.Violation{
				OrderID: o.ID,
				Type:    models.OutsideShift,
				Message: "Invalid Start",
			})
		}
		if !calendar.IsTimeInShift(o.End, wc.Shifts, calendar.AsEnd) {
			out = append(out, models.Violation{
				OrderID: o.ID,
				Type:    models.OutsideShift,
				Message: "Invalid End",
			})
		}
	}
	return out
}

// checkDependencies is pass 5: a child starting before a resolvable parent
// ends.
func checkDependencies(orders []models.WorkOrder, byID map[string]models.WorkOrder) []models.Violation {
	var out []models.Violation
	for _, child := range orders {
		for _, parentID := range child.DependsOn {
			parent, ok := byID[parentID]
			if !ok {
				continue
			}
			if child.Start.Before(parent.End) {
				out = append(out, models.Violation{
					OrderID: child.ID,
					Type:    models.DependencyError,
					Message: fmt.Sprintf("Starts before dependency %s ends", parentID),
				})
			}
		}
	}
	return out
}

// checkFixedVsFixedOverlap is pass 6: fatal - two maintenance WOs
// overlapping on the same WC.
func checkFixedVsFixedOverlap(orders []models.WorkOrder) []models.Violation {
	var out []models.Violation
	groups := groupByCenter(orders)
	for _, id := range orderedCenterIDs(orders) {
		var fixed []models.WorkOrder
		for _, o := range groups[id] {
			if o.IsMaintenance {
				fixed = append(fixed, o)
			}
		}
		sorted := stableSortByStart(fixed)
		for i := 1; i < len(sorted); i++ {
			prev, cur := sorted[i-1], sorted[i]
			if cur.Start.Before(prev.End) {
				out = append(out, models.Violation{
					OrderID: cur.ID,
					Type:    models.MaintenanceCollision,
					Message: fmt.Sprintf("Fixed order overlaps fixed order %s", prev.ID),
					IsFatal: true,
				})
			}
		}
	}
	return out
}

// checkDependencyCycles is pass 7: fatal - DFS with a recursion stack; every
// back edge closes a cycle and emits one violation whose message contains
// the cycle path. Unknown parent ids are not traversed; each WO is a DFS
// root at most once.
func checkDependencyCycles(orders []models.WorkOrder) []models.Violation {
	byID := indexOrders(orders)
	visited := make(map[string]bool, len(orders))
	onStack := make(map[string]bool, len(orders))
	var out []models.Violation

	var dfs func(id string, path []string)
	dfs = func(id string, path []string) {
		visited[id] = true
		onStack[id] = true
		path = append(path, id)

		for _, parentID := range byID[id].DependsOn {
			if _, ok := byID[parentID]; !ok {
				continue
			}
			if onStack[parentID] {
				cycle := append(append([]string(nil), path...), parentID)
				out = append(out, models.Violation{
					OrderID: id,
					Type:    models.DependencyError,
					Message: fmt.Sprintf("Circular dependency: %s", strings.Join(cycle, " -> ")),
					IsFatal: true,
				})
				continue
			}
			if !visited[parentID] {
				dfs(parentID, path)
			}
		}

		onStack[id] = false
	}

	for _, o := range orders {
		if !visited[o.ID] {
			dfs(o.ID, nil)
		}
	}

	return out
}

func groupByCenter(orders []models.WorkOrder) map[string][]models.WorkOrder {
	groups := make(map[string][]models.WorkOrder)
	for _, o := range orders {
		groups[o.WorkCenterID] = append(groups[o.WorkCenterID], o)
	}
	return groups
}

// orderedCenterIDs returns each distinct WorkCenterID in orders once, in the
// order it first appears. Iterating groupByCenter's result by these ids
// instead of by map range keeps violation output deterministic.
func orderedCenterIDs(orders []models.WorkOrder) []string {
	seen := make(map[string]bool, len(orders))
	var ids []string
	for _, o := range orders {
		if seen[o.WorkCenterID] {
			continue
		}
		seen[o.WorkCenterID] = true
		ids = append(ids, o.WorkCenterID)
	}
	return ids
}

func stableSortByStart(orders []models.WorkOrder) []models.WorkOrder {
	out := append([]models.WorkOrder(nil), orders...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
