package engine

import (
	"testing"

	"github.com/costwise/costwise/internal/model"
)

func TestTotalsForSubcontractor(t *testing.T) {
	materials := []model.Material{
		{
			Name:            "Foundation mix",
			SubcontractorID: "sc-1",
			WastePercentage: 10,
			Spec: model.ConcreteSpec{
				CementBags: 10, CementCostPerBag: 5.50,
				SandQty: 0.5, SandCostPerUnit: 30,
				GravelQty: 1, GravelCostPerUnit: 40,
				WaterQty: 20, WaterCostPerUnit: 0.10,
				MixerRentalCost: 150, AncillaryCostValue: 50,
			},
		},
		{
			// Assigned to someone else; must not leak into sc-1.
			Name:            "Drywall",
			SubcontractorID: "sc-2",
			CostPerUnit:     2,
			Spec:            model.AreaSpec{System: model.UnitImperial, Length: 10, Width: 10},
		},
	}
	equipment := []model.Equipment{
		{
			Name: "Excavator", SubcontractorID: "sc-1",
			Type: model.EquipmentRental, RentalUnit: model.RentalDay,
			RentalRate: 300, NumberOfDays: 5,
			Labor: &model.LaborDetail{Trade: "Operator", Rate: 40, Hours: 8},
		},
	}

	got := TotalsForSubcontractor("sc-1", materials, nil, equipment, model.UnitImperial)
	if !almostEqual(got.Material, 343.20) {
		t.Errorf("material = %v, want 343.20", got.Material)
	}
	if !almostEqual(got.Labor, 320) {
		t.Errorf("labor = %v, want 320", got.Labor)
	}
	if !almostEqual(got.Equipment, 1500) {
		t.Errorf("equipment = %v, want 1500", got.Equipment)
	}
	if !almostEqual(got.GrandTotal, 2163.20) {
		t.Errorf("grand total = %v, want 2163.20", got.GrandTotal)
	}
}

func TestTotalsForSubcontractorIncludesAssignedTrades(t *testing.T) {
	trades := []model.LaborTrade{
		{TradeName: "Plumber", SubcontractorID: "sc-1", Rate: 90, Hours: 10, Workers: 1},
		{TradeName: "Roofer", Rate: 70, Hours: 10, Workers: 1},
	}

	got := TotalsForSubcontractor("sc-1", nil, trades, nil, model.UnitImperial)
	if !almostEqual(got.Labor, 900) {
		t.Errorf("labor = %v, want 900", got.Labor)
	}
	if !almostEqual(got.GrandTotal, 900) {
		t.Errorf("grand total = %v, want 900", got.GrandTotal)
	}
}

func TestTotalsForEmptyIdentityIsZero(t *testing.T) {
	// Unassigned entities carry an empty SubcontractorID; the empty
	// identity must never aggregate them.
	materials := []model.Material{
		{Name: "Unassigned", CostPerUnit: 5, Spec: model.UnitsSpec{Quantity: 10}},
	}

	got := TotalsForSubcontractor("", materials, nil, nil, model.UnitImperial)
	if got != (SubcontractorTotals{}) {
		t.Errorf("empty identity rollup = %+v, want zero", got)
	}
}
