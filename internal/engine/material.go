// Package engine implements the cost-calculation core: per-entry material
// and equipment cost breakdowns, project-wide aggregation, and
// per-subcontractor rollups. Everything here is a pure function over the
// session's collections, recomputed on every call — the data sets are
// interactive-scale, so correctness wins over caching.
package engine

import (
	"math"

	"github.com/costwise/costwise/internal/model"
	"github.com/costwise/costwise/internal/units"
)

// CubicFeetPerCubicYard converts imperial volumes for area-with-height
// materials.
const CubicFeetPerCubicYard = 27

// ConcreteComponentCosts itemizes one concrete batch for reporting.
type ConcreteComponentCosts struct {
	Cement    float64
	Sand      float64
	Gravel    float64
	Water     float64
	Mixer     float64
	Ancillary float64
}

// Total sums the component costs of the batch before waste.
func (c ConcreteComponentCosts) Total() float64 {
	return c.Cement + c.Sand + c.Gravel + c.Water + c.Mixer + c.Ancillary
}

// CostBreakdown is the computed view of one material entry.
//
// LaborCost is deliberately excluded from TotalCost: the aggregation
// layer routes material-specific labor into the project labor total, not
// the material total.
type CostBreakdown struct {
	UnitLabel      string
	Concrete       *ConcreteComponentCosts
	BaseUnits      float64
	WasteAmount    float64
	TotalUnits     float64
	TotalCost      float64
	LaborCost      float64
	CalculatedArea float64
}

// MaterialCost computes the cost breakdown for one material under the
// given unit system. Dimensions stored in the other system are converted
// unrounded, so aggregation never compounds display rounding.
func MaterialCost(m model.Material, system model.UnitSystem) CostBreakdown {
	var out CostBreakdown

	var rawCost float64
	switch spec := m.Spec.(type) {
	case model.AreaSpec:
		length := convertLength(spec.Length, spec.System, system)
		width := convertLength(spec.Width, spec.System, system)
		height := convertLength(spec.Height, spec.System, system)
		if length != 0 && width != 0 {
			out.BaseUnits = length * width
			out.CalculatedArea = out.BaseUnits
			out.UnitLabel = areaLabel(system)
			if height != 0 {
				volume := out.BaseUnits * height
				if system == model.UnitImperial {
					volume /= CubicFeetPerCubicYard
				}
				out.BaseUnits = volume
				out.UnitLabel = volumeLabel(system)
			}
		}
		rawCost = out.BaseUnits * m.CostPerUnit

	case model.LinearSpec:
		out.BaseUnits = convertLength(spec.Length, spec.System, system)
		out.UnitLabel = linearLabel(system)
		rawCost = out.BaseUnits * m.CostPerUnit

	case model.UnitsSpec:
		out.BaseUnits = spec.Quantity
		out.UnitLabel = "units"
		rawCost = out.BaseUnits * m.CostPerUnit

	case model.BeamsSpec:
		beamLength := convertLength(spec.BeamLength, spec.System, system)
		totalSpan := convertLength(spec.TotalSpan, spec.System, system)
		spacing := convertLength(spec.Spacing, spec.System, system)
		// All three inputs must be present; spacing of zero would
		// otherwise divide by zero.
		if beamLength != 0 && totalSpan != 0 && spacing != 0 {
			out.BaseUnits = math.Ceil(totalSpan / spacing)
			out.UnitLabel = "beams"
		}
		rawCost = out.BaseUnits * m.CostPerUnit

	case model.ConcreteSpec:
		out.BaseUnits = 1
		out.UnitLabel = "batch"
		components := ConcreteComponentCosts{
			Cement:    spec.CementBags * spec.CementCostPerBag,
			Sand:      spec.SandQty * spec.SandCostPerUnit,
			Gravel:    spec.GravelQty * spec.GravelCostPerUnit,
			Water:     spec.WaterQty * spec.WaterCostPerUnit,
			Mixer:     spec.MixerRentalCost,
			Ancillary: spec.AncillaryCostValue,
		}
		out.Concrete = &components
		rawCost = components.Total()
	}

	// Waste applies uniformly, concrete batches included: the factor
	// covers the full batch cost, mixer rental and ancillary lines too.
	wasteFactor := 1 + m.WastePercentage/100
	out.WasteAmount = out.BaseUnits * m.WastePercentage / 100
	out.TotalUnits = out.BaseUnits * wasteFactor
	out.TotalCost = rawCost * wasteFactor

	if m.Labor != nil {
		out.LaborCost = m.Labor.Cost()
	}

	return out
}

// LiveArea returns the area preview shown while a length and width are
// being typed into the entry form, rounded for display. ok is false
// until both dimensions are present.
func LiveArea(length, width float64, system model.UnitSystem) (area float64, label string, ok bool) {
	if length == 0 || width == 0 {
		return 0, "", false
	}
	return units.Round2(length * width), areaLabel(system), true
}

func convertLength(v float64, from, to model.UnitSystem) float64 {
	if v == 0 || from == to {
		return v
	}
	if from == model.UnitImperial {
		return units.FeetToMeters(v)
	}
	return units.MetersToFeet(v)
}

func areaLabel(system model.UnitSystem) string {
	if system == model.UnitImperial {
		return "sq ft"
	}
	return "m²"
}

func volumeLabel(system model.UnitSystem) string {
	if system == model.UnitImperial {
		return "cu yd"
	}
	return "m³"
}

func linearLabel(system model.UnitSystem) string {
	if system == model.UnitImperial {
		return "linear ft"
	}
	return "linear m"
}
