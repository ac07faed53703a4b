package engine

import "github.com/costwise/costwise/internal/model"

// EquipmentBreakdown is the computed view of one equipment entry.
// LaborCost is excluded from TotalCost for the same reason as materials:
// it belongs to the project labor total.
type EquipmentBreakdown struct {
	TotalCost float64
	LaborCost float64
}

// EquipmentCost computes the cost breakdown for one equipment entry.
func EquipmentCost(e model.Equipment) EquipmentBreakdown {
	var cost float64

	switch e.Type {
	case model.EquipmentPurchase:
		cost = e.PurchaseCost
	case model.EquipmentRental:
		switch e.RentalUnit {
		case model.RentalDay:
			cost = e.RentalRate * e.NumberOfDays
		case model.RentalWeek:
			cost = e.RentalRate * (e.NumberOfDays / 7)
		case model.RentalMonth:
			cost = e.RentalRate * (e.NumberOfDays / 30)
		case model.RentalHour:
			cost = e.RentalRate * e.NumberOfHours
		default:
			// Unreachable with the closed enum; zero beats a wrong number.
			cost = 0
		}
	}

	out := EquipmentBreakdown{TotalCost: cost}
	if e.Labor != nil {
		out.LaborCost = e.Labor.Cost()
	}
	return out
}
