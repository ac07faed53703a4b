package engine

import "github.com/costwise/costwise/internal/model"

// TotalMaterialCost sums material costs (waste included, labor excluded)
// over all materials.
func TotalMaterialCost(materials []model.Material, system model.UnitSystem) float64 {
	var total float64
	for _, m := range materials {
		total += MaterialCost(m, system).TotalCost
	}
	return total
}

// TotalMaterialLaborCost sums the material-specific labor sub-records.
func TotalMaterialLaborCost(materials []model.Material, system model.UnitSystem) float64 {
	var total float64
	for _, m := range materials {
		total += MaterialCost(m, system).LaborCost
	}
	return total
}

// TotalEquipmentCost sums equipment costs (labor excluded).
func TotalEquipmentCost(equipment []model.Equipment) float64 {
	var total float64
	for _, e := range equipment {
		total += EquipmentCost(e).TotalCost
	}
	return total
}

// TotalEquipmentLaborCost sums the equipment-specific labor sub-records.
func TotalEquipmentLaborCost(equipment []model.Equipment) float64 {
	var total float64
	for _, e := range equipment {
		total += EquipmentCost(e).LaborCost
	}
	return total
}

// TotalProjectLaborCost sums the project-level labor trades plus the
// material- and equipment-specific labor routed out of those totals.
func TotalProjectLaborCost(trades []model.LaborTrade, materials []model.Material, equipment []model.Equipment, system model.UnitSystem) float64 {
	var total float64
	for _, t := range trades {
		total += t.Cost()
	}
	total += TotalMaterialLaborCost(materials, system)
	total += TotalEquipmentLaborCost(equipment)
	return total
}

// GrandTotal is materials + project labor + equipment.
func GrandTotal(materials []model.Material, trades []model.LaborTrade, equipment []model.Equipment, system model.UnitSystem) float64 {
	return TotalMaterialCost(materials, system) +
		TotalProjectLaborCost(trades, materials, equipment, system) +
		TotalEquipmentCost(equipment)
}
