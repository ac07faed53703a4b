package engine

import "github.com/costwise/costwise/internal/model"

// SubcontractorTotals is the per-subcontractor cost breakdown. Material-
// and equipment-specific labor lands in Labor, alongside the assigned
// project-level trades.
type SubcontractorTotals struct {
	Material   float64
	Labor      float64
	Equipment  float64
	GrandTotal float64
}

// TotalsForSubcontractor rolls up every entry assigned to the given
// subcontractor. Unassigned entries belong to no rollup, so the empty
// identity always yields zero.
func TotalsForSubcontractor(id string, materials []model.Material, trades []model.LaborTrade, equipment []model.Equipment, system model.UnitSystem) SubcontractorTotals {
	var out SubcontractorTotals
	if id == "" {
		return out
	}

	for _, m := range materials {
		if m.SubcontractorID != id {
			continue
		}
		cost := MaterialCost(m, system)
		out.Material += cost.TotalCost
		out.Labor += cost.LaborCost
	}

	for _, t := range trades {
		if t.SubcontractorID != id {
			continue
		}
		out.Labor += t.Cost()
	}

	for _, e := range equipment {
		if e.SubcontractorID != id {
			continue
		}
		cost := EquipmentCost(e)
		out.Equipment += cost.TotalCost
		out.Labor += cost.LaborCost
	}

	out.GrandTotal = out.Material + out.Labor + out.Equipment
	return out
}
