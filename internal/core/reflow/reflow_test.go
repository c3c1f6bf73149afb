package reflow

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/example/reflow/internal/core/checker"
	"github.com/example/reflow/internal/models"
)

func ts(hhmm string) time.Time {
	parsed, err := time.Parse(time.RFC3339, "2026-02-09T"+hhmm+":00Z")
	if err != nil {
		panic(err)
	}
	return parsed
}

func mondayTuesdayWC(id string) models.WorkCenter {
	return models.WorkCenter{
		ID: id,
		Shifts: []models.Shift{
			{DayOfWeek: time.Monday, StartHour: 8, EndHour: 17},
			{DayOfWeek: time.Tuesday, StartHour: 8, EndHour: 17},
		},
	}
}

func TestReflowIdempotentOnValidInput(t *testing.T) {
	wc := mondayTuesdayWC("wc-1")
	orders := []models.WorkOrder{
		{ID: "a", WorkCenterID: "wc-1", Start: ts("08:00"), End: ts("09:00"), DurationMinutes: 60},
	}
	result, err := Reflow(orders, []models.WorkCenter{wc}, Options{})
	if err != nil {
		t.Fatalf("Reflow returned error on valid input: %v", err)
	}
	if len(result.Changes) != 0 || len(result.Explanation) != 0 {
		t.Errorf("expected no changes on valid input, got %+v", result)
	}
}

func TestReflowCircularDependencyIsNotFixable(t *testing.T) {
	orders := []models.WorkOrder{
		{ID: "a", WorkCenterID: "wc-1", Start: ts("08:00"), End: ts("09:00"), DependsOn: []string{"b"}},
		{ID: "b", WorkCenterID: "wc-1", Start: ts("09:00"), End: ts("10:00"), DependsOn: []string{"a"}},
	}
	_, err := Reflow(orders, []models.WorkCenter{mondayTuesdayWC("wc-1")}, Options{})
	var notFixable *models.NotFixableError
	if !errors.As(err, &notFixable) {
		t.Fatalf("Reflow err = %v, want *NotFixableError", err)
	}
}

func TestReflowFixedVsFixedOverlapIsNotFixable(t *testing.T) {
	orders := []models.WorkOrder{
		{ID: "m1", WorkCenterID: "wc-1", IsMaintenance: true, Start: ts("08:00"), End: ts("10:00")},
		{ID: "m2", WorkCenterID: "wc-1", IsMaintenance: true, Start: ts("09:00"), End: ts("11:00")},
	}
	_, err := Reflow(orders, []models.WorkCenter{mondayTuesdayWC("wc-1")}, Options{})
	var notFixable *models.NotFixableError
	if !errors.As(err, &notFixable) {
		t.Fatalf("Reflow err = %v, want *NotFixableError", err)
	}
}

func TestReflowMaintenanceSandwich(t *testing.T) {
	wc := mondayTuesdayWC("wc-1")
	wc.MaintenanceWindows = []models.MaintenanceWindow{
		{Start: ts("08:00"), End: ts("09:00")},
	}
	orders := []models.WorkOrder{
		{ID: "fixed", WorkCenterID: "wc-1", IsMaintenance: true, Start: ts("09:00"), End: ts("10:00")},
		{ID: "prod", WorkCenterID: "wc-1", Start: ts("08:00"), End: ts("09:00"), DurationMinutes: 60},
	}
	result, err := Reflow(orders, []models.WorkCenter{wc}, Options{})
	if err != nil {
		t.Fatalf("Reflow error: %v", err)
	}
	prod := findByID(t, result.UpdatedWorkOrders, "prod")
	if !prod.Start.Equal(ts("10:00")) || !prod.End.Equal(ts("11:00")) {
		t.Errorf("prod = [%s,%s], want [10:00,11:00]", prod.Start, prod.End)
	}
	if len(result.Changes) != 1 {
		t.Errorf("Changes = %v, want exactly one", result.Changes)
	}
	if len(result.Changes) != len(result.Explanation) {
		t.Errorf("len(Changes)=%d != len(Explanation)=%d", len(result.Changes), len(result.Explanation))
	}
}

func TestReflowInsufficientWindowExtendsEnd(t *testing.T) {
	wc := mondayTuesdayWC("wc-1")
	orders := []models.WorkOrder{
		{ID: "prod", WorkCenterID: "wc-1", Start: ts("08:00"), End: ts("09:00"), DurationMinutes: 120},
	}
	result, err := Reflow(orders, []models.WorkCenter{wc}, Options{})
	if err != nil {
		t.Fatalf("Reflow error: %v", err)
	}
	prod := findByID(t, result.UpdatedWorkOrders, "prod")
	if !prod.Start.Equal(ts("08:00")) || !prod.End.Equal(ts("10:00")) {
		t.Errorf("prod = [%s,%s], want [08:00,10:00]", prod.Start, prod.End)
	}
}

func TestReflowCascadeThreeIdenticalRequests(t *testing.T) {
	wc := mondayTuesdayWC("wc-1")
	orders := []models.WorkOrder{
		{ID: "a", WorkCenterID: "wc-1", Start: ts("08:00"), End: ts("09:00"), DurationMinutes: 60},
		{ID: "b", WorkCenterID: "wc-1", Start: ts("08:00"), End: ts("09:00"), DurationMinutes: 60},
		{ID: "c", WorkCenterID: "wc-1", Start: ts("08:00"), End: ts("09:00"), DurationMinutes: 60},
	}
	result, err := Reflow(orders, []models.WorkCenter{wc}, Options{})
	if err != nil {
		t.Fatalf("Reflow error: %v", err)
	}

	a := findByID(t, result.UpdatedWorkOrders, "a")
	b := findByID(t, result.UpdatedWorkOrders, "b")
	c := findByID(t, result.UpdatedWorkOrders, "c")

	if !a.Start.Equal(ts("08:00")) || !a.End.Equal(ts("09:00")) {
		t.Errorf("a = [%s,%s], want [08:00,09:00]", a.Start, a.End)
	}
	if !b.Start.Equal(ts("09:00")) || !b.End.Equal(ts("10:00")) {
		t.Errorf("b = [%s,%s], want [09:00,10:00]", b.Start, b.End)
	}
	if !c.Start.Equal(ts("10:00")) || !c.End.Equal(ts("11:00")) {
		t.Errorf("c = [%s,%s], want [10:00,11:00]", c.Start, c.End)
	}
	if len(result.Changes) != 2 {
		t.Fatalf("Changes = %v, want exactly two", result.Changes)
	}
	if len(result.Changes) != len(result.Explanation) {
		t.Errorf("len(Changes)=%d != len(Explanation)=%d", len(result.Changes), len(result.Explanation))
	}
	for _, exp := range result.Explanation {
		if !strings.Contains(exp, "OVERLAP") && !strings.Contains(exp, "Cascading") && !strings.Contains(exp, "Collision") {
			t.Errorf("explanation %q does not describe the collision or its cascade", exp)
		}
	}
}

func TestReflowMultiParentConvergence(t *testing.T) {
	wc := mondayTuesdayWC("wc-1")
	orders := []models.WorkOrder{
		{ID: "a", WorkCenterID: "wc-1", Start: ts("08:00"), End: ts("10:00"), DurationMinutes: 120},
		{ID: "b", WorkCenterID: "wc-1", Start: ts("10:00"), End: ts("12:00"), DurationMinutes: 120},
		{ID: "c", WorkCenterID: "wc-1", Start: ts("08:00"), End: ts("09:00"), DurationMinutes: 60, DependsOn: []string{"a", "b"}},
	}
	result, err := Reflow(orders, []models.WorkCenter{wc}, Options{})
	if err != nil {
		t.Fatalf("Reflow error: %v", err)
	}
	c := findByID(t, result.UpdatedWorkOrders, "c")
	if c.Start.Before(ts("12:00")) {
		t.Errorf("c.Start = %s, want >= 12:00", c.Start)
	}
}

func TestReflowNeverMutatesInputSlice(t *testing.T) {
	wc := mondayTuesdayWC("wc-1")
	orders := []models.WorkOrder{
		{ID: "a", WorkCenterID: "wc-1", Start: ts("08:00"), End: ts("09:00"), DurationMinutes: 60},
		{ID: "b", WorkCenterID: "wc-1", Start: ts("08:00"), End: ts("09:00"), DurationMinutes: 60},
	}
	snapshot := models.CloneWorkOrders(orders)

	if _, err := Reflow(orders, []models.WorkCenter{wc}, Options{}); err != nil {
		t.Fatalf("Reflow error: %v", err)
	}

	for i := range orders {
		if !orders[i].Start.Equal(snapshot[i].Start) || !orders[i].End.Equal(snapshot[i].End) {
			t.Errorf("input order %d mutated: got [%s,%s], want [%s,%s]", i, orders[i].Start, orders[i].End, snapshot[i].Start, snapshot[i].End)
		}
	}
}

func TestReflowClosesTheLoop(t *testing.T) {
	wc := mondayTuesdayWC("wc-1")
	orders := []models.WorkOrder{
		{ID: "a", WorkCenterID: "wc-1", Start: ts("08:00"), End: ts("09:00"), DurationMinutes: 60},
		{ID: "b", WorkCenterID: "wc-1", Start: ts("08:00"), End: ts("09:00"), DurationMinutes: 60},
		{ID: "c", WorkCenterID: "wc-1", Start: ts("08:00"), End: ts("09:00"), DurationMinutes: 60},
	}
	result, err := Reflow(orders, []models.WorkCenter{wc}, Options{})
	if err != nil {
		t.Fatalf("Reflow error: %v", err)
	}
	if residual := checker.Verify(result.UpdatedWorkOrders, []models.WorkCenter{wc}, nil); len(residual) != 0 {
		t.Errorf("Verify(reflow output) = %v, want no residual violations", residual)
	}
	if len(result.Diagnostics) != 0 {
		t.Errorf("Diagnostics = %v, want empty", result.Diagnostics)
	}
}

func findByID(t *testing.T, orders []models.WorkOrder, id string) models.WorkOrder {
	t.Helper()
	for _, o := range orders {
		if o.ID == id {
			return o
		}
	}
	t.Fatalf("order %q not found in %v", id, orders)
	return models.WorkOrder{}
}
