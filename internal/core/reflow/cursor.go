package reflow

import (
	"time"

	"github.com/example/reflow/internal/models"
)

// cursorIterationCap bounds the monotone-cursor loops in FindNextAvailableStart
// and FindEndDate. Every branch of those loops strictly advances the cursor or
// narrows the case, so termination is guaranteed well before this cap; it is
// a defensive watchdog only.
const cursorIterationCap = 10000

// FindNextAvailableStart returns the earliest t' >= t that lies inside some
// shift on wc and is not covered by any of wc's maintenance windows or any
// fixed maintenance WorkOrder in maintenanceOrders (expected to already be
// filtered to wc's own maintenance WOs).
func FindNextAvailableStart(t time.Time, wc models.WorkCenter, maintenanceOrders []models.WorkOrder) time.Time {
	current := t.UTC()
	for i := 0; i < cursorIterationCap; i++ {
		shiftStart, shiftEnd, ok := shiftFor(wc, current)
		if !ok {
			current = nextMidnight(current)
			continue
		}
		if current.Before(shiftStart) {
			current = shiftStart
			continue
		}
		if !current.Before(shiftEnd) {
			current = nextMidnight(current)
			continue
		}
		if wo, found := containingMaintenanceOrder(maintenanceOrders, current); found {
			current = wo.End
			continue
		}
		if mw, found := containingMaintenanceWindow(wc, current); found {
			current = mw.End
			continue
		}
		return current
	}
	return current
}

// FindEndDate consumes durationMinutes net working minutes starting at
// start, on wc, routing around shift boundaries and maintenance obstacles.
func FindEndDate(start time.Time, durationMinutes int, wc models.WorkCenter, maintenanceOrders []models.WorkOrder) time.Time {
	current := start.UTC()
	remaining := float64(durationMinutes)
	if remaining <= 0 {
		return current
	}

	for i := 0; i < cursorIterationCap; i++ {
		shiftStart, shiftEnd, ok := shiftFor(wc, current)
		if !ok {
			current = nextMidnight(current)
			continue
		}
		if current.Before(shiftStart) {
			current = shiftStart
			continue
		}
		if !current.Before(shiftEnd) {
			current = nextMidnight(current)
			continue
		}

		obstacleStart, obstacleEnd, hasObstacle := earliestObstacle(wc, maintenanceOrders, current, shiftEnd)

		deadline := shiftEnd
		if hasObstacle {
			deadline = obstacleStart
		}
		available := deadline.Sub(current).Minutes()

		if available >= remaining {
			return current.Add(time.Duration(remaining * float64(time.Minute)))
		}

		remaining -= available
		current = deadline

		if hasObstacle && current.Equal(obstacleStart) {
			current = obstacleEnd
			continue
		}
		current = nextMidnight(current)
	}
	return current
}

// shiftFor finds, among wc's shifts on current's weekday that have not
// already fully elapsed, the one with the earliest start - the shift
// containing current if any, otherwise the next one later today.
func shiftFor(wc models.WorkCenter, current time.Time) (time.Time, time.Time, bool) {
	dayBase := dayFloor(current)
	var candStart, candEnd time.Time
	found := false
	for _, s := range wc.ShiftsOn(current.Weekday()) {
		start := dayBase.Add(time.Duration(s.StartHour) * time.Hour)
		end := dayBase.Add(time.Duration(s.EndHour) * time.Hour)
		if !end.After(current) {
			continue
		}
		if !found || start.Before(candStart) {
			candStart, candEnd, found = start, end, true
		}
	}
	return candStart, candEnd, found
}

func containingMaintenanceWindow(wc models.WorkCenter, t time.Time) (models.MaintenanceWindow, bool) {
	for _, mw := range wc.MaintenanceWindows {
		if !t.Before(mw.Start) && t.Before(mw.End) {
			return mw, true
		}
	}
	return models.MaintenanceWindow{}, false
}

func containingMaintenanceOrder(orders []models.WorkOrder, t time.Time) (models.WorkOrder, bool) {
	for _, wo := range orders {
		if !t.Before(wo.Start) && t.Before(wo.End) {
			return wo, true
		}
	}
	return models.WorkOrder{}, false
}

// earliestObstacle returns the earliest maintenance window or fixed
// maintenance WorkOrder on wc starting within [from, before), if any.
func earliestObstacle(wc models.WorkCenter, maintenanceOrders []models.WorkOrder, from, before time.Time) (time.Time, time.Time, bool) {
	var bestStart, bestEnd time.Time
	found := false
	consider := func(s, e time.Time) {
		if s.Before(from) || !s.Before(before) {
			return
		}
		if !found || s.Before(bestStart) {
			bestStart, bestEnd, found = s, e, true
		}
	}
	for _, mw := range wc.MaintenanceWindows {
		consider(mw.Start, mw.End)
	}
	for _, wo := range maintenanceOrders {
		consider(wo.Start, wo.End)
	}
	return bestStart, bestEnd, found
}

func dayFloor(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func nextMidnight(t time.Time) time.Time {
	d := dayFloor(t)
	return d.AddDate(0, 0, 1)
}
