package model

import (
	"testing"
	"time"
)

func TestScheduleTaskInputValidate(t *testing.T) {
	tests := []struct {
		name    string
		in      ScheduleTaskInput
		wantErr bool
	}{
		{
			name: "valid",
			in:   ScheduleTaskInput{TaskName: "Foundation", StartDate: "2026-03-01", EndDate: "2026-03-14"},
		},
		{
			name:    "missing name",
			in:      ScheduleTaskInput{StartDate: "2026-03-01", EndDate: "2026-03-14"},
			wantErr: true,
		},
		{
			name:    "missing end date",
			in:      ScheduleTaskInput{TaskName: "Foundation", StartDate: "2026-03-01"},
			wantErr: true,
		},
		{
			name:    "malformed date",
			in:      ScheduleTaskInput{TaskName: "Foundation", StartDate: "03/01/2026", EndDate: "2026-03-14"},
			wantErr: true,
		},
		{
			name: "end before start is allowed",
			in:   ScheduleTaskInput{TaskName: "Foundation", StartDate: "2026-03-14", EndDate: "2026-03-01"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Validate()
			if tt.wantErr && err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestScheduleTaskBuilder(t *testing.T) {
	in := ScheduleTaskInput{
		TaskName:            "Framing",
		StartDate:           "2026-04-01",
		EndDate:             "2026-04-21",
		AssignedMaterialIDs: []string{"m-1", "m-2"},
	}

	task := in.ScheduleTask()
	want := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	if !task.Start.Equal(want) {
		t.Errorf("start = %v, want %v", task.Start, want)
	}
	if len(task.AssignedMaterialIDs) != 2 {
		t.Errorf("assigned materials = %v", task.AssignedMaterialIDs)
	}
}

func TestForecastCostInputValidate(t *testing.T) {
	tests := []struct {
		name    string
		in      ForecastCostInput
		wantErr bool
	}{
		{"valid", ForecastCostInput{CostName: "Permits", Category: CategoryOther, Amount: "1200"}, false},
		{"missing name", ForecastCostInput{Amount: "1200"}, true},
		{"missing amount", ForecastCostInput{CostName: "Permits"}, true},
		{"non-numeric amount", ForecastCostInput{CostName: "Permits", Amount: "lots"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Validate()
			if tt.wantErr && err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestIsAutomatedForecastID(t *testing.T) {
	for _, id := range []string{AutoMaterialCostID, AutoLaborCostID, AutoEquipmentCostID} {
		if !IsAutomatedForecastID(id) {
			t.Errorf("%s should be automated", id)
		}
	}
	if IsAutomatedForecastID("fc-1") {
		t.Error("fc-1 should not be automated")
	}
}
