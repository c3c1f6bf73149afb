// Package models defines the plain data shapes shared between the reflow
// core and every external collaborator (file I/O, CLI, generators). Nothing
// in this package performs I/O.
package models

import "time"

// WorkOrder is a scheduled unit of production work.
//
// Invariant: Start.Before(End). Invariant: for a non-maintenance WorkOrder,
// DurationMinutes equals the net working minutes between Start and End on
// its owning Work Center (see calendar.WorkingMinutes); violating this
// yields an OUTSIDE_SHIFT violation rather than a panic - the checker, not
// this struct, enforces it.
type WorkOrder struct {
	ID                   string
	Number               string
	WorkCenterID         string
	ManufacturingOrderID string
	Start                time.Time
	End                  time.Time
	DurationMinutes      int
	IsMaintenance        bool
	DependsOn            []string
}

// Clone returns a deep copy of the WorkOrder. DependsOn is copied so the
// clone shares no backing array with the original.
func (w WorkOrder) Clone() WorkOrder {
	clone := w
	if w.DependsOn != nil {
		clone.DependsOn = append([]string(nil), w.DependsOn...)
	}
	return clone
}

// CloneWorkOrders deep-copies a slice of WorkOrders, preserving order.
func CloneWorkOrders(orders []WorkOrder) []WorkOrder {
	out := make([]WorkOrder, len(orders))
	for i, o := range orders {
		out[i] = o.Clone()
	}
	return out
}
