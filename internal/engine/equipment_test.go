package engine

import (
	"testing"

	"github.com/costwise/costwise/internal/model"
)

func TestEquipmentCost(t *testing.T) {
	tests := []struct {
		name string
		e    model.Equipment
		want float64
	}{
		{
			name: "daily rental",
			e:    model.Equipment{Type: model.EquipmentRental, RentalUnit: model.RentalDay, RentalRate: 300, NumberOfDays: 5},
			want: 1500,
		},
		{
			name: "weekly rental prorated from days",
			e:    model.Equipment{Type: model.EquipmentRental, RentalUnit: model.RentalWeek, RentalRate: 300, NumberOfDays: 14},
			want: 600,
		},
		{
			name: "partial week",
			e:    model.Equipment{Type: model.EquipmentRental, RentalUnit: model.RentalWeek, RentalRate: 700, NumberOfDays: 10},
			want: 1000,
		},
		{
			name: "monthly rental prorated from days",
			e:    model.Equipment{Type: model.EquipmentRental, RentalUnit: model.RentalMonth, RentalRate: 3000, NumberOfDays: 45},
			want: 4500,
		},
		{
			name: "hourly rental",
			e:    model.Equipment{Type: model.EquipmentRental, RentalUnit: model.RentalHour, RentalRate: 75, NumberOfHours: 6},
			want: 450,
		},
		{
			name: "purchase",
			e:    model.Equipment{Type: model.EquipmentPurchase, PurchaseCost: 25000, UsefulLifeYears: 10},
			want: 25000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bd := EquipmentCost(tt.e)
			if !almostEqual(bd.TotalCost, tt.want) {
				t.Errorf("total cost = %v, want %v", bd.TotalCost, tt.want)
			}
		})
	}
}

func TestEquipmentLaborExcludedFromTotalCost(t *testing.T) {
	e := model.Equipment{
		Type:         model.EquipmentRental,
		RentalUnit:   model.RentalDay,
		RentalRate:   300,
		NumberOfDays: 5,
		Labor:        &model.LaborDetail{Trade: "Operator", Rate: 40, Hours: 8},
	}

	bd := EquipmentCost(e)
	if !almostEqual(bd.TotalCost, 1500) {
		t.Errorf("total cost = %v, want 1500", bd.TotalCost)
	}
	if !almostEqual(bd.LaborCost, 320) {
		t.Errorf("labor cost = %v, want 320", bd.LaborCost)
	}
}
