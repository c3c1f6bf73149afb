package checker

import (
	"strings"
	"testing"
	"time"

	"github.com/example/reflow/internal/models"
)

func t9(hhmm string) time.Time {
	parsed, err := time.Parse(time.RFC3339, "2026-02-09T"+hhmm+":00Z")
	if err != nil {
		panic(err)
	}
	return parsed
}

func mondayShiftWC(id string) models.WorkCenter {
	return models.WorkCenter{
		ID: id,
		Shifts: []models.Shift{
			{DayOfWeek: time.Monday, StartHour: 8, EndHour: 17},
		},
	}
}

func TestVerifyNoViolationsOnCleanSchedule(t *testing.T) {
	wc := mondayShiftWC("wc-1")
	orders := []models.WorkOrder{
		{ID: "a", WorkCenterID: "wc-1", Start: t9("08:00"), End: t9("09:00"), DurationMinutes: 60},
		{ID: "b", WorkCenterID: "wc-1", Start: t9("09:00"), End: t9("10:00"), DurationMinutes: 60},
	}
	if got := Verify(orders, []models.WorkCenter{wc}, nil); len(got) != 0 {
		t.Fatalf("Verify = %v, want no violations", got)
	}
}

func TestVerifyDetectsOverlap(t *testing.T) {
	wc := mondayShiftWC("wc-1")
	orders := []models.WorkOrder{
		{ID: "a", WorkCenterID: "wc-1", Start: t9("08:00"), End: t9("10:00"), DurationMinutes: 120},
		{ID: "b", WorkCenterID: "wc-1", Start: t9("09:00"), End: t9("11:00"), DurationMinutes: 120},
	}
	violations := Verify(orders, []models.WorkCenter{wc}, nil)
	found := false
	for _, v := range violations {
		if v.Type == models.Overlap && v.OrderID == "b" {
			found = true
		}
	}
	if !found {
		t.Fatalf("Verify = %v, want OVERLAP on b", violations)
	}
}

func TestVerifyMaintenanceCollision(t *testing.T) {
	wc := mondayShiftWC("wc-1")
	wc.MaintenanceWindows = []models.MaintenanceWindow{
		{Start: t9("08:00"), End: t9("09:00")},
	}
	orders := []models.WorkOrder{
		{ID: "a", WorkCenterID: "wc-1", Start: t9("08:30"), End: t9("09:30"), DurationMinutes: 60},
	}
	violations := Verify(orders, []models.WorkCenter{wc}, nil)
	if len(violations) == 0 || violations[0].Type != models.MaintenanceCollision {
		t.Fatalf("Verify = %v, want MAINTENANCE_COLLISION", violations)
	}
	if violations[0].IsFatal {
		t.Errorf("non-fixed maintenance collision should not be fatal")
	}
}

func TestVerifyFixedVsFixedOverlapIsFatal(t *testing.T) {
	wc := mondayShiftWC("wc-1")
	orders := []models.WorkOrder{
		{ID: "m1", WorkCenterID: "wc-1", IsMaintenance: true, Start: t9("08:00"), End: t9("10:00")},
		{ID: "m2", WorkCenterID: "wc-1", IsMaintenance: true, Start: t9("09:00"), End: t9("11:00")},
	}
	violations := Verify(orders, []models.WorkCenter{wc}, nil)
	if !models.AnyFatal(violations) {
		t.Fatalf("Verify = %v, want a fatal violation", violations)
	}
}

func TestVerifyFixedOrderMoved(t *testing.T) {
	wc := mondayShiftWC("wc-1")
	originals := []models.WorkOrder{
		{ID: "m1", WorkCenterID: "wc-1", IsMaintenance: true, Start: t9("08:00"), End: t9("10:00")},
	}
	moved := []models.WorkOrder{
		{ID: "m1", WorkCenterID: "wc-1", IsMaintenance: true, Start: t9("09:00"), End: t9("11:00")},
	}
	violations := Verify(moved, []models.WorkCenter{wc}, originals)
	if len(violations) != 1 || violations[0].Type != models.FixedOrderMoved {
		t.Fatalf("Verify = %v, want a single FIXED_ORDER_MOVED", violations)
	}
}

func TestVerifyShiftAdherenceMessages(t *testing.T) {
	wc := mondayShiftWC("wc-1")
	orders := []models.WorkOrder{
		{ID: "a", WorkCenterID: "wc-1", Start: t9("06:00"), End: t9("07:00"), DurationMinutes: 60},
	}
	violations := Verify(orders, []models.WorkCenter{wc}, nil)

	var messages []string
	for _, v := range violations {
		if v.Type == models.OutsideShift {
			messages = append(messages, v.Message)
		}
	}
	wantSubstrings := []string{"Invalid Start", "Total work time mismatch"}
	for _, want := range wantSubstrings {
		found := false
		for _, m := range messages {
			if m == want {
				found = true
			}
		}
		if !found {
			t.Errorf("Verify OUTSIDE_SHIFT messages = %v, want to contain %q", messages, want)
		}
	}
}

func TestVerifyDependencyViolation(t *testing.T) {
	wc := mondayShiftWC("wc-1")
	orders := []models.WorkOrder{
		{ID: "parent", WorkCenterID: "wc-1", Start: t9("08:00"), End: t9("10:00"), DurationMinutes: 120},
		{ID: "child", WorkCenterID: "wc-1", Start: t9("09:00"), End: t9("10:00"), DurationMinutes: 60, DependsOn: []string{"parent"}},
	}
	violations := Verify(orders, []models.WorkCenter{wc}, nil)
	found := false
	for _, v := range violations {
		if v.Type == models.DependencyError && v.OrderID == "child" {
			found = true
		}
	}
	if !found {
		t.Fatalf("Verify = %v, want DEPENDENCY_ERROR on child", violations)
	}
}

func TestVerifyCircularDependencyIsFatalAndNamesBothIDs(t *testing.T) {
	orders := []models.WorkOrder{
		{ID: "a", WorkCenterID: "wc-1", Start: t9("08:00"), End: t9("09:00"), DependsOn: []string{"b"}},
		{ID: "b", WorkCenterID: "wc-1", Start: t9("09:00"), End: t9("10:00"), DependsOn: []string{"a"}},
	}
	violations := Verify(orders, nil, nil)

	var cycle *models.Violation
	for i := range violations {
		if violations[i].Type == models.DependencyError && violations[i].IsFatal {
			cycle = &violations[i]
		}
	}
	if cycle == nil {
		t.Fatalf("Verify = %v, want a fatal circular DEPENDENCY_ERROR", violations)
	}
	if !strings.Contains(cycle.Message, "a") || !strings.Contains(cycle.Message, "b") {
		t.Errorf("cycle message %q should name both order ids", cycle.Message)
	}
}

func TestVerifyIsDeterministic(t *testing.T) {
	wc := mondayShiftWC("wc-1")
	orders := []models.WorkOrder{
		{ID: "a", WorkCenterID: "wc-1", Start: t9("08:00"), End: t9("10:00"), DurationMinutes: 120},
		{ID: "b", WorkCenterID: "wc-1", Start: t9("09:00"), End: t9("11:00"), DurationMinutes: 120},
	}
	first := Verify(orders, []models.WorkCenter{wc}, nil)
	second := Verify(orders, []models.WorkCenter{wc}, nil)
	if len(first) != len(second) {
		t.Fatalf("Verify is not deterministic: %v vs %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Verify call %d differs: %v vs %v", i, first[i], second[i])
		}
	}
}
