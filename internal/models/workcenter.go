package models

import "time"

// Shift is a recurring weekly production window. DayOfWeek follows Go's
// time.Weekday numbering (0 = Sunday .. 6 = Saturday). StartHour < EndHour,
// both in 0..24, EndHour may be 24 to mean midnight.
type Shift struct {
	DayOfWeek time.Weekday
	StartHour int
	EndHour   int
}

// MaintenanceWindow is a one-off UTC interval during which only maintenance
// WorkOrders may run on the owning Work Center.
type MaintenanceWindow struct {
	Start  time.Time
	End    time.Time
	Reason string
}

// WorkCenter is a resource that runs at most one WorkOrder at a time.
//
// Invariant (assumed, not enforced): shifts on the same DayOfWeek do not
// overlap each other, and MaintenanceWindows are pairwise non-overlapping.
type WorkCenter struct {
	ID                 string
	Name               string
	Shifts             []Shift
	MaintenanceWindows []MaintenanceWindow
}

// ShiftsOn returns the shifts configured for the given weekday.
func (wc WorkCenter) ShiftsOn(day time.Weekday) []Shift {
	var out []Shift
	for _, s := range wc.Shifts {
		if s.DayOfWeek == day {
			out = append(out, s)
		}
	}
	return out
}
