package tui

import (
	"fmt"
	"strings"

	"github.com/costwise/costwise/internal/engine"
	"github.com/costwise/costwise/internal/model"
	"github.com/costwise/costwise/internal/units"
)

// The entity form builders. Field keys are stable identifiers the submit
// handlers read back; labels carry the active unit so the operator never
// has to guess which system a dimension is in.

func lengthUnit(sys model.UnitSystem) string {
	if sys == model.UnitImperial {
		return "ft"
	}
	return "m"
}

// dimensionKeys lists the form keys that hold a length for each
// calculation type. These are the fields ctrl+u converts in place.
func dimensionKeys(t model.CalculationType) []string {
	switch t {
	case model.CalcArea:
		return []string{"length", "width", "height"}
	case model.CalcLinear:
		return []string{"length"}
	case model.CalcBeams:
		return []string{"beam_length", "beam_width", "beam_height", "total_span", "spacing"}
	default:
		return nil
	}
}

func materialForm(t model.CalculationType, sys model.UnitSystem) formModel {
	u := lengthUnit(sys)
	defaults := model.NewMaterialInput()

	fields := []formField{
		newFormField("name", "Name", "e.g. Drywall", ""),
		newFormField("description", "Description", "", ""),
	}

	switch t {
	case model.CalcArea:
		fields = append(fields,
			newFormField("length", "Length ("+u+")", "", ""),
			newFormField("width", "Width ("+u+")", "", ""),
			newFormField("height", "Height ("+u+", optional)", "volume if set", ""),
		)
	case model.CalcLinear:
		fields = append(fields,
			newFormField("length", "Length ("+u+")", "", ""),
		)
	case model.CalcUnits:
		fields = append(fields,
			newFormField("quantity", "Quantity", "", ""),
		)
	case model.CalcBeams:
		fields = append(fields,
			newFormField("beam_length", "Beam length ("+u+")", "", ""),
			newFormField("beam_width", "Beam width ("+u+")", "", ""),
			newFormField("beam_height", "Beam height ("+u+")", "", ""),
			newFormField("total_span", "Total span ("+u+")", "", ""),
			newFormField("spacing", "Spacing ("+u+", on center)", "", ""),
		)
	case model.CalcConcrete:
		fields = append(fields,
			newFormField("cement_bags", "Cement bags", "", ""),
			newFormField("cement_cost", "Cost per bag", "", ""),
			newFormField("sand_qty", "Sand quantity", "", ""),
			newFormField("sand_unit", "Sand unit", "", defaults.SandUnit),
			newFormField("sand_cost", "Sand cost per unit", "", ""),
			newFormField("gravel_qty", "Gravel quantity", "", ""),
			newFormField("gravel_unit", "Gravel unit", "", defaults.GravelUnit),
			newFormField("gravel_cost", "Gravel cost per unit", "", ""),
			newFormField("water_qty", "Water quantity", "", ""),
			newFormField("water_unit", "Water unit", "", defaults.WaterUnit),
			newFormField("water_cost", "Water cost per unit", "", ""),
			newFormField("mixer_cost", "Mixer rental cost", "", ""),
			newFormField("ancillary_name", "Other cost name", "", ""),
			newFormField("ancillary_value", "Other cost amount", "", ""),
		)
	}

	if t != model.CalcConcrete {
		fields = append(fields,
			newFormField("cost_per_unit", "Cost per unit", "", ""),
		)
	}

	fields = append(fields,
		newFormField("waste", "Waste %", "", defaults.WastePercentage),
		newFormField("labor_trade", "Labor trade (optional)", "", ""),
		newFormField("labor_rate", "Labor hourly rate", "", ""),
		newFormField("labor_hours", "Labor hours", "", ""),
		newFormField("labor_workers", "Laborers", "", defaults.LaborWorkers),
		newFormField("submittal", "Submittal link", "", ""),
		newFormField("invoice", "Invoice link", "", ""),
		newFormField("subcontractor", "Subcontractor ID", "e.g. sc-1", ""),
	)

	f := newForm("New material — "+string(t), fields...)
	if t == model.CalcArea {
		// Area preview updates as length and width are typed.
		f.preview = func(v formResult) string {
			area, label, ok := engine.LiveArea(
				model.ParseNumber(v["length"]), model.ParseNumber(v["width"]), sys)
			if !ok {
				return ""
			}
			return fmt.Sprintf("Calculated area: %s %s", model.FormatNumber(area), label)
		}
	}
	return f
}

func materialInputFromForm(v formResult, t model.CalculationType, sys model.UnitSystem) model.MaterialInput {
	in := model.MaterialInput{
		Name:            v["name"],
		Description:     v["description"],
		Type:            t,
		Quantity:        v["quantity"],
		CostPerUnit:     v["cost_per_unit"],
		WastePercentage: v["waste"],
		LaborTrade:      v["labor_trade"],
		LaborRate:       v["labor_rate"],
		LaborHours:      v["labor_hours"],
		LaborWorkers:    v["labor_workers"],

		CementBags:         v["cement_bags"],
		CementCostPerBag:   v["cement_cost"],
		SandQty:            v["sand_qty"],
		SandUnit:           v["sand_unit"],
		SandCostPerUnit:    v["sand_cost"],
		GravelQty:          v["gravel_qty"],
		GravelUnit:         v["gravel_unit"],
		GravelCostPerUnit:  v["gravel_cost"],
		WaterQty:           v["water_qty"],
		WaterUnit:          v["water_unit"],
		WaterCostPerUnit:   v["water_cost"],
		MixerRentalCost:    v["mixer_cost"],
		AncillaryCostName:  v["ancillary_name"],
		AncillaryCostValue: v["ancillary_value"],

		SubmittalLink:   v["submittal"],
		InvoiceLink:     v["invoice"],
		SubcontractorID: v["subcontractor"],
	}

	if sys == model.UnitImperial {
		in.LengthFt = v["length"]
		in.WidthFt = v["width"]
		in.HeightFt = v["height"]
		in.BeamLengthFt = v["beam_length"]
		in.BeamWidthFt = v["beam_width"]
		in.BeamHeightFt = v["beam_height"]
		in.TotalSpanFt = v["total_span"]
		in.SpacingFt = v["spacing"]
	} else {
		in.LengthM = v["length"]
		in.WidthM = v["width"]
		in.HeightM = v["height"]
		in.BeamLengthM = v["beam_length"]
		in.BeamWidthM = v["beam_width"]
		in.BeamHeightM = v["beam_height"]
		in.TotalSpanM = v["total_span"]
		in.SpacingM = v["spacing"]
	}

	return in
}

// convertMaterialForm rewrites a material form's dimension fields into
// the new unit system: values are converted and rounded to two decimals,
// labels relabeled, everything else kept as typed. Blank stays blank.
func convertMaterialForm(f formModel, t model.CalculationType, to model.UnitSystem) formModel {
	for _, k := range dimensionKeys(t) {
		raw := f.value(k)
		if raw == "" || !model.IsNumber(raw) {
			continue
		}
		v := model.ParseNumber(raw)
		if to == model.UnitMetric {
			v = units.FeetToMeters(v)
		} else {
			v = units.MetersToFeet(v)
		}
		f.setValue(k, model.FormatNumber(units.Round2(v)))
	}

	fresh := materialForm(t, to)
	for i := range f.fields {
		for _, nf := range fresh.fields {
			if nf.Key == f.fields[i].Key {
				f.fields[i].Label = nf.Label
				break
			}
		}
	}
	// The area preview closes over the unit system, so take the rebuilt one.
	f.preview = fresh.preview
	return f
}

func equipmentForm(t model.EquipmentType) formModel {
	defaults := model.NewEquipmentInput()

	fields := []formField{
		newFormField("name", "Name", "e.g. Excavator", ""),
		newFormField("description", "Description", "", ""),
	}

	if t == model.EquipmentPurchase {
		fields = append(fields,
			newFormField("purchase_cost", "Purchase cost", "", ""),
			newFormField("useful_life", "Useful life (years)", "", ""),
		)
	} else {
		fields = append(fields,
			newFormField("rental_rate", "Rental rate", "", ""),
			newFormField("rental_unit", "Rental unit", "day, week, month or hour", string(defaults.RentalUnit)),
			newFormField("days", "Number of days", "", ""),
			newFormField("hours", "Number of hours", "hourly rentals only", ""),
		)
	}

	fields = append(fields,
		newFormField("labor_trade", "Operator trade (optional)", "", ""),
		newFormField("labor_rate", "Operator hourly rate", "", ""),
		newFormField("labor_hours", "Operator hours", "", ""),
		newFormField("labor_workers", "Operators", "", defaults.LaborWorkers),
		newFormField("submittal", "Submittal link", "", ""),
		newFormField("invoice", "Invoice link", "", ""),
		newFormField("subcontractor", "Subcontractor ID", "e.g. sc-1", ""),
	)

	return newForm("New equipment — "+string(t), fields...)
}

func equipmentInputFromForm(v formResult, t model.EquipmentType) model.EquipmentInput {
	in := model.EquipmentInput{
		Name:            v["name"],
		Description:     v["description"],
		Type:            t,
		PurchaseCost:    v["purchase_cost"],
		UsefulLifeYears: v["useful_life"],
		RentalRate:      v["rental_rate"],
		RentalUnit:      parseRentalUnit(v["rental_unit"]),
		NumberOfDays:    v["days"],
		NumberOfHours:   v["hours"],
		LaborTrade:      v["labor_trade"],
		LaborRate:       v["labor_rate"],
		LaborHours:      v["labor_hours"],
		LaborWorkers:    v["labor_workers"],
		SubmittalLink:   v["submittal"],
		InvoiceLink:     v["invoice"],
		SubcontractorID: v["subcontractor"],
	}
	return in
}

func parseRentalUnit(s string) model.RentalUnit {
	switch model.RentalUnit(s) {
	case model.RentalWeek:
		return model.RentalWeek
	case model.RentalMonth:
		return model.RentalMonth
	case model.RentalHour:
		return model.RentalHour
	default:
		return model.RentalDay
	}
}

func laborForm() formModel {
	defaults := model.NewLaborTradeInput()
	return newForm("New labor trade",
		newFormField("trade", "Trade name", "e.g. Electrician", ""),
		newFormField("rate", "Hourly rate", "", ""),
		newFormField("hours", "Total hours", "", ""),
		newFormField("workers", "Number of laborers", "", defaults.Workers),
		newFormField("subcontractor", "Subcontractor ID", "e.g. sc-1", ""),
	)
}

func taskForm() formModel {
	return newForm("New schedule task",
		newFormField("name", "Task name", "e.g. Foundation pour", ""),
		newFormField("start", "Start date", model.DateLayout, ""),
		newFormField("end", "End date", model.DateLayout, ""),
		newFormField("materials", "Material IDs", "comma separated, e.g. m-1,m-2", ""),
		newFormField("equipment", "Equipment IDs", "comma separated", ""),
		newFormField("subcontractor", "Subcontractor ID", "e.g. sc-1", ""),
	)
}

func forecastForm() formModel {
	defaults := model.NewForecastCostInput()
	return newForm("New forecast cost",
		newFormField("name", "Cost name", "e.g. Permits", ""),
		newFormField("category", "Category", "Land, Material, Labor, Equipment, Other", string(defaults.Category)),
		newFormField("amount", "Amount", "", ""),
		newFormField("tasks", "Task IDs", "comma separated, e.g. st-1", ""),
	)
}

// converterForm is the standalone unit-converter panel: type a value in
// any field and its equivalent appears below, rounded to two decimals.
// Nothing is saved; esc or ctrl+s closes the panel.
func converterForm() formModel {
	f := newForm("Unit converters",
		newFormField("feet", "Feet", "", ""),
		newFormField("inches", "Inches", "", ""),
		newFormField("meters", "Meters", "", ""),
		newFormField("centimeters", "Centimeters", "", ""),
	)
	f.preview = func(v formResult) string {
		var lines []string
		add := func(raw string, convert func(float64) float64, from, to string) {
			if raw == "" || !model.IsNumber(raw) {
				return
			}
			n := model.ParseNumber(raw)
			lines = append(lines, fmt.Sprintf("%s %s = %s %s",
				model.FormatNumber(n), from,
				model.FormatNumber(units.Round2(convert(n))), to))
		}
		add(v["feet"], units.FeetToInches, "ft", "in")
		add(v["inches"], units.InchesToFeet, "in", "ft")
		add(v["meters"], units.MetersToCentimeters, "m", "cm")
		add(v["centimeters"], units.CentimetersToMeters, "cm", "m")
		return strings.Join(lines, "\n")
	}
	return f
}

func subcontractorForm() formModel {
	return newForm("New subcontractor",
		newFormField("name", "Name", "", ""),
		newFormField("company", "Company", "", ""),
		newFormField("contact", "Contact info", "phone or email", ""),
	)
}
