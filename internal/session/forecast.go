package session

import (
	"github.com/costwise/costwise/internal/engine"
	"github.com/costwise/costwise/internal/model"
	"github.com/costwise/costwise/internal/units"
)

// Display names of the automated forecast entries. The suffix tells the
// user which view the number came from.
const (
	autoMaterialName  = "Total Material Cost (Cost Calculator)"
	autoLaborName     = "Total Project Labor Cost (Cost Calculator)"
	autoEquipmentName = "Total Equipment Cost (Cost Calculator)"
)

// syncForecast rebuilds the three automated forecast entries from the
// current calculator totals, preserving every manual item. It runs after
// each mutation of materials, equipment, labor trades or display
// settings, so the reserved identities always reflect settled state.
func (s *Session) syncForecast() {
	manual := manualForecasts(s.forecastCosts)

	auto := []model.ForecastCost{
		{
			ID:       model.AutoMaterialCostID,
			CostName: autoMaterialName,
			Category: model.CategoryMaterial,
			Amount:   units.Round2(s.TotalMaterialCost()),
		},
		{
			ID:       model.AutoLaborCostID,
			CostName: autoLaborName,
			Category: model.CategoryLabor,
			Amount:   units.Round2(s.TotalProjectLaborCost()),
		},
		{
			ID:       model.AutoEquipmentCostID,
			CostName: autoEquipmentName,
			Category: model.CategoryEquipment,
			Amount:   units.Round2(s.TotalEquipmentCost()),
		},
	}

	s.forecastCosts = append(manual, auto...)
}

// manualForecasts filters out the automated entries, keeping manual
// items in entry order.
func manualForecasts(items []model.ForecastCost) []model.ForecastCost {
	var manual []model.ForecastCost
	for _, f := range items {
		if !f.Automated() {
			manual = append(manual, f)
		}
	}
	return manual
}

// ForecastTotalByCategory sums forecast amounts in one category across
// manual and automated items alike; the forecast view is additive, not a
// duplicate-guarded merge with the calculator.
func (s *Session) ForecastTotalByCategory(category model.CostCategory) float64 {
	var total float64
	for _, f := range s.forecastCosts {
		if f.Category == category {
			total += f.Amount
		}
	}
	return total
}

// ForecastGrandTotal sums every forecast amount.
func (s *Session) ForecastGrandTotal() float64 {
	var total float64
	for _, f := range s.forecastCosts {
		total += f.Amount
	}
	return total
}

// TotalMaterialCost is the calculator's material total (waste included,
// material-specific labor excluded).
func (s *Session) TotalMaterialCost() float64 {
	return engine.TotalMaterialCost(s.materials, s.units)
}

// TotalProjectLaborCost is the calculator's labor total: project trades
// plus material- and equipment-specific labor.
func (s *Session) TotalProjectLaborCost() float64 {
	return engine.TotalProjectLaborCost(s.laborTrades, s.materials, s.equipment, s.units)
}

// TotalEquipmentCost is the calculator's equipment total (equipment-
// specific labor excluded).
func (s *Session) TotalEquipmentCost() float64 {
	return engine.TotalEquipmentCost(s.equipment)
}

// GrandTotal is materials + project labor + equipment.
func (s *Session) GrandTotal() float64 {
	return engine.GrandTotal(s.materials, s.laborTrades, s.equipment, s.units)
}

// MaterialCost computes the cost breakdown of one material under the
// session's unit system.
func (s *Session) MaterialCost(m model.Material) engine.CostBreakdown {
	return engine.MaterialCost(m, s.units)
}

// EquipmentCost computes the cost breakdown of one equipment entry.
func (s *Session) EquipmentCost(e model.Equipment) engine.EquipmentBreakdown {
	return engine.EquipmentCost(e)
}

// SubcontractorTotals rolls up every cost assigned to one subcontractor.
func (s *Session) SubcontractorTotals(id string) engine.SubcontractorTotals {
	return engine.TotalsForSubcontractor(id, s.materials, s.laborTrades, s.equipment, s.units)
}
