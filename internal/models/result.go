package models

import (
	"fmt"
	"time"
)

// Change records that a WorkOrder's start/end were moved during a reflow
// pass.
type Change struct {
	OrderID  string
	OldStart time.Time
	OldEnd   time.Time
	NewStart time.Time
	NewEnd   time.Time
}

// ReflowResult is the output of a successful Reflow call.
//
// Invariant: len(Changes) == len(Explanation), always, at every point during
// construction as well as in the final value.
type ReflowResult struct {
	UpdatedWorkOrders []WorkOrder
	Changes           []Change
	Explanation       []string
	// Diagnostics holds any violations found by the re-verify pass Reflow
	// runs after every repair. Empty on a healthy repair (and on input that
	// needed none); non-empty indicates the engine could not fully close
	// the loop.
	Diagnostics []Violation
}

// NotFixableError is the sole external failure Reflow can return.
type NotFixableError struct {
	Fatal []Violation
}

func (e *NotFixableError) Error() string {
	if len(e.Fatal) == 0 {
		return "schedule is not fixable"
	}
	return fmt.Sprintf("schedule is not fixable: %s (%s) on order %s", e.Fatal[0].Type, e.Fatal[0].Message, e.Fatal[0].OrderID)
}
