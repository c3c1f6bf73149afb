// Package sequence contains the pure Sequence Preserver: it linearizes one
// Work Center's WorkOrders into a processing order that respects
// dependencies while minimizing disturbance to the original chronology.
// No I/O; it builds its plan entirely from pre-fetched input.
package sequence

import (
	"sort"

	"github.com/example/reflow/internal/models"
)

// Prepare returns a total processing order for orders (expected to be the
// non-maintenance WorkOrders of a single Work Center - maintenance WOs are
// fixed blackouts the reflow engine routes around, not sequenced items).
func Prepare(orders []models.WorkOrder) []models.WorkOrder {
	byID := make(map[string]models.WorkOrder, len(orders))
	present := make(map[string]bool, len(orders))
	for _, o := range orders {
		byID[o.ID] = o
		present[o.ID] = true
	}

	groups := connectedComponents(orders, present)
	groupOf := make(map[string]int, len(orders))
	for gi, group := range groups {
		for _, id := range group {
			groupOf[id] = gi
		}
	}

	topoGroups := make([][]models.WorkOrder, len(groups))
	for gi, group := range groups {
		topoGroups[gi] = topoSort(group, byID, present)
	}

	chronological := stableSortByStartWithIndex(orders)

	visited := make(map[string]bool, len(orders))
	result := make([]models.WorkOrder, 0, len(orders))
	for _, o := range chronological {
		if visited[o.ID] {
			continue
		}
		gi, inGroup := groupOf[o.ID]
		if !inGroup {
			result = append(result, o)
			visited[o.ID] = true
			continue
		}
		for _, wo := range topoGroups[gi] {
			if visited[wo.ID] {
				continue
			}
			result = append(result, wo)
			visited[wo.ID] = true
		}
	}

	return result
}

// connectedComponents groups ids connected via DependsOn, treated as an
// undirected graph restricted to ids present in the same WC's order set.
// Singletons with no edges are not returned as groups.
func connectedComponents(orders []models.WorkOrder, present map[string]bool) [][]string {
	adjacency := make(map[string][]string, len(orders))
	hasEdge := make(map[string]bool, len(orders))
	for _, o := range orders {
		for _, parentID := range o.DependsOn {
			if !present[parentID] {
				continue
			}
			adjacency[o.ID] = append(adjacency[o.ID], parentID)
			adjacency[parentID] = append(adjacency[parentID], o.ID)
			hasEdge[o.ID] = true
			hasEdge[parentID] = true
		}
	}

	visited := make(map[string]bool, len(orders))
	var groups [][]string
	for _, o := range orders {
		if visited[o.ID] || !hasEdge[o.ID] {
			continue
		}
		var component []string
		queue := []string{o.ID}
		visited[o.ID] = true
		for len(queue) > 0 {
			id := queue[0]
			queue = queue[1:]
			component = append(component, id)
			for _, next := range adjacency[id] {
				if !visited[next] {
					visited[next] = true
					queue = append(queue, next)
				}
			}
		}
		groups = append(groups, component)
	}
	return groups
}

// topoSort performs a Kahn-style topological sort of group's ids, restricted
// to dependency edges whose parent is also in group. Ties (multiple ready
// ids) are broken by the group's original chronological order to keep the
// result deterministic.
func topoSort(group []string, byID map[string]models.WorkOrder, present map[string]bool) []models.WorkOrder {
	inGroup := make(map[string]bool, len(group))
	for _, id := range group {
		inGroup[id] = true
	}

	remaining := make(map[string]bool, len(group))
	for _, id := range group {
		remaining[id] = true
	}
	parentCount := make(map[string]int, len(group))
	for _, id := range group {
		for _, parentID := range byID[id].DependsOn {
			if inGroup[parentID] {
				parentCount[id]++
			}
		}
	}

	ordered := orderByChronology(group, byID)

	var result []models.WorkOrder
	for len(remaining) > 0 {
		progressed := false
		for _, id := range ordered {
			if !remaining[id] || parentCount[id] > 0 {
				continue
			}
			result = append(result, byID[id])
			delete(remaining, id)
			progressed = true
			for _, otherID := range group {
				if !remaining[otherID] {
					continue
				}
				for _, parentID := range byID[otherID].DependsOn {
					if parentID == id {
						parentCount[otherID]--
					}
				}
			}
			break
		}
		if !progressed {
			// Defensive: a cycle inside this group was already reported as
			// fatal by the checker. Break rather than loop forever.
			for _, id := range ordered {
				if remaining[id] {
					result = append(result, byID[id])
					delete(remaining, id)
				}
			}
			break
		}
	}
	return result
}

func orderByChronology(ids []string, byID map[string]models.WorkOrder) []string {
	orders := make([]models.WorkOrder, len(ids))
	for i, id := range ids {
		orders[i] = byID[id]
	}
	sorted := stableSortByStartWithIndex(orders)
	out := make([]string, len(sorted))
	for i, o := range sorted {
		out[i] = o.ID
	}
	return out
}

// stableSortByStartWithIndex sorts by Start, ties broken by original index
// (sort.SliceStable already preserves input order for ties, so this is a
// plain stable sort by Start).
func stableSortByStartWithIndex(orders []models.WorkOrder) []models.WorkOrder {
	out := append([]models.WorkOrder(nil), orders...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out
}
