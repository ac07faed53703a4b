package model

import (
	"errors"
	"testing"

	"github.com/costwise/costwise/internal/common"
)

func validAreaInput() MaterialInput {
	in := NewMaterialInput()
	in.Name = "Drywall"
	in.LengthFt = "10"
	in.WidthFt = "12"
	in.CostPerUnit = "2.5"
	return in
}

func TestMaterialInputValidate(t *testing.T) {
	tests := []struct {
		name    string
		system  UnitSystem
		mutate  func(*MaterialInput)
		wantErr bool
	}{
		{
			name:   "valid area imperial",
			system: UnitImperial,
			mutate: func(*MaterialInput) {},
		},
		{
			name:    "missing name",
			system:  UnitImperial,
			mutate:  func(in *MaterialInput) { in.Name = "" },
			wantErr: true,
		},
		{
			name:    "missing cost per unit",
			system:  UnitImperial,
			mutate:  func(in *MaterialInput) { in.CostPerUnit = "" },
			wantErr: true,
		},
		{
			name:    "area missing width",
			system:  UnitImperial,
			mutate:  func(in *MaterialInput) { in.WidthFt = "" },
			wantErr: true,
		},
		{
			name:   "metric consults metric fields only",
			system: UnitMetric,
			mutate: func(in *MaterialInput) {
				in.LengthFt, in.WidthFt = "", ""
				in.LengthM, in.WidthM = "3", "4"
			},
		},
		{
			name:   "metric ignores stale imperial fields",
			system: UnitMetric,
			mutate: func(in *MaterialInput) {
				in.LengthM, in.WidthM = "", ""
			},
			wantErr: true,
		},
		{
			name:   "linear needs only length",
			system: UnitImperial,
			mutate: func(in *MaterialInput) {
				in.Type = CalcLinear
				in.WidthFt = ""
			},
		},
		{
			name:   "units needs quantity",
			system: UnitImperial,
			mutate: func(in *MaterialInput) {
				in.Type = CalcUnits
				in.Quantity = ""
			},
			wantErr: true,
		},
		{
			name:   "beams needs span and spacing",
			system: UnitImperial,
			mutate: func(in *MaterialInput) {
				in.Type = CalcBeams
				in.BeamLengthFt = "8"
				in.TotalSpanFt = "100"
			},
			wantErr: true,
		},
		{
			name:   "beams complete",
			system: UnitImperial,
			mutate: func(in *MaterialInput) {
				in.Type = CalcBeams
				in.BeamLengthFt = "8"
				in.TotalSpanFt = "100"
				in.SpacingFt = "16"
			},
		},
		{
			name:   "concrete needs no cost per unit",
			system: UnitImperial,
			mutate: func(in *MaterialInput) {
				in.Type = CalcConcrete
				in.CostPerUnit = ""
				in.CementBags = "10"
			},
		},
		{
			name:   "concrete with every component blank",
			system: UnitImperial,
			mutate: func(in *MaterialInput) {
				in.Type = CalcConcrete
				in.CostPerUnit = ""
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validAreaInput()
			tt.mutate(&in)

			err := in.Validate(tt.system)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected validation error, got nil")
				}
				if !errors.Is(err, common.ErrMissingField) {
					t.Errorf("expected ErrMissingField, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestMaterialBuilderSpecVariants(t *testing.T) {
	in := validAreaInput()
	in.HeightFt = "0.5"
	m := in.Material(UnitImperial)

	spec, ok := m.Spec.(AreaSpec)
	if !ok {
		t.Fatalf("expected AreaSpec, got %T", m.Spec)
	}
	if spec.System != UnitImperial || spec.Length != 10 || spec.Width != 12 || spec.Height != 0.5 {
		t.Errorf("unexpected spec: %+v", spec)
	}
	if m.WastePercentage != 10 {
		t.Errorf("default waste = %v, want 10", m.WastePercentage)
	}
	if m.Labor != nil {
		t.Error("labor should be nil when no labor fields entered")
	}
}

func TestMaterialBuilderUsesActiveSystemFields(t *testing.T) {
	in := validAreaInput()
	in.LengthM, in.WidthM = "3", "4"
	m := in.Material(UnitMetric)

	spec := m.Spec.(AreaSpec)
	if spec.System != UnitMetric || spec.Length != 3 || spec.Width != 4 {
		t.Errorf("metric build read imperial fields: %+v", spec)
	}
}

func TestMaterialBuilderLabor(t *testing.T) {
	in := validAreaInput()
	in.LaborTrade = "Installer"
	in.LaborRate = "40"
	in.LaborHours = "8"
	in.LaborWorkers = "2"

	m := in.Material(UnitImperial)
	if m.Labor == nil {
		t.Fatal("expected labor sub-record")
	}
	if got := m.Labor.Cost(); got != 640 {
		t.Errorf("labor cost = %v, want 640", got)
	}
}

func TestLaborDetailCostDefaultsToOneWorker(t *testing.T) {
	l := LaborDetail{Rate: 50, Hours: 10}
	if got := l.Cost(); got != 500 {
		t.Errorf("cost = %v, want 500", got)
	}
}
