// Package calendar contains the pure, no-I/O shift-and-maintenance interval
// math shared by the constraint checker and the reflow engine. All
// timestamps are treated as already-UTC; nothing here consults a location.
package calendar

import (
	"math"
	"time"

	"github.com/example/reflow/internal/models"
)

// Mode selects which half-open membership rule IsTimeInShift applies. The
// asymmetry between the two modes is load-bearing: it lets one WorkOrder end
// exactly when the next begins without either double-counting the boundary
// minute or rejecting a legal back-to-back hand-off.
type Mode int

const (
	// AsStart treats t as a candidate start: legal in [shiftStart, shiftEnd).
	AsStart Mode = iota
	// AsEnd treats t as a candidate end: legal in (shiftStart, shiftEnd].
	AsEnd
)

// IsTimeInShift reports whether t falls inside one of shifts on t's own
// weekday, under mode's half-open rule.
func IsTimeInShift(t time.Time, shifts []models.Shift, mode Mode) bool {
	weekday := t.UTC().Weekday()
	for _, s := range shifts {
		if s.DayOfWeek != weekday {
			continue
		}
		start, end := shiftBounds(t, s)
		switch mode {
		case AsStart:
			if !t.Before(start) && t.Before(end) {
				return true
			}
		case AsEnd:
			if t.After(start) && !t.After(end) {
				return true
			}
		}
	}
	return false
}

// shiftBounds constructs the [start, end) instants of shift s on the same
// calendar date as t (in UTC).
func shiftBounds(t time.Time, s models.Shift) (time.Time, time.Time) {
	u := t.UTC()
	day := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	start := day.Add(time.Duration(s.StartHour) * time.Hour)
	end := day.Add(time.Duration(s.EndHour) * time.Hour)
	return start, end
}

// WorkingMinutes returns the net on-shift, outside-maintenance minutes
// between start and end on wc. Degenerate inputs (start >= end) yield 0.
func WorkingMinutes(start, end time.Time, wc models.WorkCenter) int {
	if !start.Before(end) {
		return 0
	}
	start, end = start.UTC(), end.UTC()

	total := 0.0
	dayCursor := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	lastDay := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)

	for !dayCursor.After(lastDay) {
		weekday := dayCursor.Weekday()
		for _, s := range wc.ShiftsOn(weekday) {
			shiftStart := dayCursor.Add(time.Duration(s.StartHour) * time.Hour)
			shiftEnd := dayCursor.Add(time.Duration(s.EndHour) * time.Hour)

			sliceStart, sliceEnd := intersect(start, end, shiftStart, shiftEnd)
			if !sliceStart.Before(sliceEnd) {
				continue
			}

			minutes := sliceEnd.Sub(sliceStart).Minutes()
			for _, mw := range wc.MaintenanceWindows {
				mStart, mEnd := intersect(sliceStart, sliceEnd, mw.Start, mw.End)
				if mStart.Before(mEnd) {
					minutes -= mEnd.Sub(mStart).Minutes()
				}
			}
			if minutes > 0 {
				total += minutes
			}
		}
		dayCursor = dayCursor.AddDate(0, 0, 1)
	}

	return int(math.Round(total))
}

// intersect returns the overlap of [aStart,aEnd) and [bStart,bEnd). If the
// intervals do not overlap, the returned start is not before the returned
// end - callers must check that before using the result.
func intersect(aStart, aEnd, bStart, bEnd time.Time) (time.Time, time.Time) {
	start := aStart
	if bStart.After(start) {
		start = bStart
	}
	end := aEnd
	if bEnd.Before(end) {
		end = bEnd
	}
	return start, end
}
