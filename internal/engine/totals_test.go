package engine

import (
	"testing"

	"github.com/costwise/costwise/internal/model"
)

func fixtureCollections() ([]model.Material, []model.LaborTrade, []model.Equipment) {
	materials := []model.Material{
		{
			Name:        "Flooring",
			CostPerUnit: 10,
			Spec:        model.AreaSpec{System: model.UnitImperial, Length: 10, Width: 10},
			Labor:       &model.LaborDetail{Trade: "Installer", Rate: 40, Hours: 10},
		},
		{
			Name:            "Trim",
			CostPerUnit:     2,
			WastePercentage: 10,
			Spec:            model.LinearSpec{System: model.UnitImperial, Length: 100},
		},
	}
	trades := []model.LaborTrade{
		{TradeName: "Electrician", Rate: 80, Hours: 20, Workers: 2},
	}
	equipment := []model.Equipment{
		{
			Name: "Lift", Type: model.EquipmentRental, RentalUnit: model.RentalDay,
			RentalRate: 200, NumberOfDays: 3,
			Labor: &model.LaborDetail{Trade: "Operator", Rate: 50, Hours: 6},
		},
	}
	return materials, trades, equipment
}

func TestTotals(t *testing.T) {
	materials, trades, equipment := fixtureCollections()

	matTotal := TotalMaterialCost(materials, model.UnitImperial)
	if !almostEqual(matTotal, 1000+220) {
		t.Errorf("material total = %v, want 1220", matTotal)
	}

	equipTotal := TotalEquipmentCost(equipment)
	if !almostEqual(equipTotal, 600) {
		t.Errorf("equipment total = %v, want 600", equipTotal)
	}

	// Project labor: the trade (80*20*2) plus the material installer
	// (40*10) plus the lift operator (50*6).
	laborTotal := TotalProjectLaborCost(trades, materials, equipment, model.UnitImperial)
	if !almostEqual(laborTotal, 3200+400+300) {
		t.Errorf("labor total = %v, want 3900", laborTotal)
	}
}

func TestGrandTotalIdentity(t *testing.T) {
	materials, trades, equipment := fixtureCollections()

	grand := GrandTotal(materials, trades, equipment, model.UnitImperial)
	sum := TotalMaterialCost(materials, model.UnitImperial) +
		TotalProjectLaborCost(trades, materials, equipment, model.UnitImperial) +
		TotalEquipmentCost(equipment)
	if !almostEqual(grand, sum) {
		t.Errorf("grand total %v != component sum %v", grand, sum)
	}
}

func TestTotalsEmptyCollections(t *testing.T) {
	if got := GrandTotal(nil, nil, nil, model.UnitImperial); got != 0 {
		t.Errorf("empty grand total = %v, want 0", got)
	}
}
