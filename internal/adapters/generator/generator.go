// Package generator produces synthetic scenarios for exercising the
// reflow engine: deterministic given a seed and a reference time, using uuid for stable
// identifiers rather than reusing timestamps or counters as ids.
package generator

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/example/reflow/internal/models"
)

// Generate builds a Scenario with opts.WorkCenterCount Work Centers, each
// carrying opts.OrdersPerCenter one-hour WorkOrders requested back to back
// from 08:00 on the Monday of now's week. Roughly opts.ViolationDensity of
// those WorkOrders have their request moved two hours earlier so the
// generated scenario needs repair rather than trivially verifying clean.
func Generate(now time.Time, opts models.GenerateOptions) models.Scenario {
	namespace := uuid.NewSHA1(uuid.NameSpaceOID, []byte(opts.Seed))
	scenario := models.Scenario{Name: "generated-" + namespace.String()[:8]}

	for c := 0; c < opts.WorkCenterCount; c++ {
		wcUUID := uuid.NewSHA1(namespace, []byte("wc-"+strconv.Itoa(c)))
		wc := models.WorkCenter{
			ID:   wcUUID.String(),
			Name: "Generated Work Center " + strconv.Itoa(c),
			Shifts: []models.Shift{
				{DayOfWeek: time.Monday, StartHour: 8, EndHour: 17},
				{DayOfWeek: time.Tuesday, StartHour: 8, EndHour: 17},
				{DayOfWeek: time.Wednesday, StartHour: 8, EndHour: 17},
				{DayOfWeek: time.Thursday, StartHour: 8, EndHour: 17},
				{DayOfWeek: time.Friday, StartHour: 8, EndHour: 17},
			},
		}
		scenario.Centers = append(scenario.Centers, wc)

		base := floorToMonday(now)
		for i := 0; i < opts.OrdersPerCenter; i++ {
			start := base.Add(time.Duration(i) * time.Hour)
			seeded := opts.ViolationDensity > 0 && float64(i%10)/10 < opts.ViolationDensity
			if seeded {
				// Move the request two hours earlier; for the first two
				// orders (08:00 and 09:00) this lands before the shift
				// opens and trips an OUTSIDE_SHIFT violation on generation.
				start = start.Add(-2 * time.Hour)
			}

			orderUUID := uuid.NewSHA1(wcUUID, []byte("wo-"+strconv.Itoa(i)))
			order := models.WorkOrder{
				ID:              orderUUID.String(),
				Number:          "WO-" + strconv.Itoa(c) + "-" + strconv.Itoa(i),
				WorkCenterID:    wc.ID,
				Start:           start,
				End:             start.Add(time.Hour),
				DurationMinutes: 60,
			}
			scenario.Orders = append(scenario.Orders, order)
		}
	}

	return scenario
}

func floorToMonday(t time.Time) time.Time {
	t = t.UTC()
	day := time.Date(t.Year(), t.Month(), t.Day(), 8, 0, 0, 0, time.UTC)
	offset := (int(day.Weekday()) + 6) % 7 // days since Monday
	return day.AddDate(0, 0, -offset)
}
