package model

import "github.com/costwise/costwise/internal/common"

// CalculationType selects how a material's quantity and cost are derived.
type CalculationType string

const (
	// CalcArea covers flooring, paint, drywall, insulation and similar
	// coverage materials; with a height it becomes a volume.
	CalcArea CalculationType = "area"
	// CalcLinear covers trim, pipe, cable and other by-the-length materials.
	CalcLinear CalculationType = "linear"
	// CalcUnits covers per-piece materials such as doors or fixtures.
	CalcUnits CalculationType = "units"
	// CalcBeams derives a beam count from span and spacing.
	CalcBeams CalculationType = "beams"
	// CalcConcrete itemizes the components of one concrete batch.
	CalcConcrete CalculationType = "concrete"
)

// MaterialSpec is the variant payload of a material. Each variant carries
// only the fields its calculation type uses; dimensional variants also
// record which unit system their values are expressed in, so a material
// can never hold imperial and metric dimensions at once.
type MaterialSpec interface {
	CalculationType() CalculationType
}

// AreaSpec holds length and width, and optionally a height that turns the
// area into a volume.
type AreaSpec struct {
	System UnitSystem
	Length float64
	Width  float64
	Height float64
}

// CalculationType implements MaterialSpec.
func (AreaSpec) CalculationType() CalculationType { return CalcArea }

// LinearSpec holds a single run length.
type LinearSpec struct {
	System UnitSystem
	Length float64
}

// CalculationType implements MaterialSpec.
func (LinearSpec) CalculationType() CalculationType { return CalcLinear }

// UnitsSpec holds a plain piece count.
type UnitsSpec struct {
	Quantity float64
}

// CalculationType implements MaterialSpec.
func (UnitsSpec) CalculationType() CalculationType { return CalcUnits }

// BeamsSpec holds individual beam dimensions plus the span being covered
// and the on-center spacing the beam count is derived from.
type BeamsSpec struct {
	System     UnitSystem
	BeamLength float64
	BeamWidth  float64
	BeamHeight float64
	TotalSpan  float64
	Spacing    float64
}

// CalculationType implements MaterialSpec.
func (BeamsSpec) CalculationType() CalculationType { return CalcBeams }

// ConcreteSpec itemizes the components of one concrete batch. Quantities
// are in whatever unit the named unit fields describe; costs are per that
// unit. The mixer rental and the named ancillary line are flat costs.
type ConcreteSpec struct {
	CementBags         float64
	CementCostPerBag   float64
	SandQty            float64
	SandUnit           string
	SandCostPerUnit    float64
	GravelQty          float64
	GravelUnit         string
	GravelCostPerUnit  float64
	WaterQty           float64
	WaterUnit          string
	WaterCostPerUnit   float64
	MixerRentalCost    float64
	AncillaryCostName  string
	AncillaryCostValue float64
}

// CalculationType implements MaterialSpec.
func (ConcreteSpec) CalculationType() CalculationType { return CalcConcrete }

// LaborDetail is an optional labor sub-record attached to a material or
// piece of equipment. Its cost is always routed to the labor total, never
// folded into the owning entity's cost.
type LaborDetail struct {
	Trade   string
	Rate    float64
	Hours   float64
	Workers float64
}

// Cost returns rate * hours * workers, with a worker count of zero
// treated as a single laborer.
func (l LaborDetail) Cost() float64 {
	workers := l.Workers
	if workers == 0 {
		workers = 1
	}
	return l.Rate * l.Hours * workers
}

// Material is one purchasable line item.
type Material struct {
	Spec            MaterialSpec
	ID              string
	Name            string
	Description     string
	SubmittalLink   string
	InvoiceLink     string
	SubcontractorID string
	Labor           *LaborDetail
	CostPerUnit     float64
	WastePercentage float64
}

// MaterialInput carries raw form values for a new material. Numeric
// fields stay strings until validation so that "required" means the user
// typed something, while blank fields still parse to zero everywhere
// arithmetic happens. Dimensional fields exist for both unit systems
// because the entry form converts in place when the session switches
// systems; only the active system's set is consulted.
type MaterialInput struct {
	Name            string
	Description     string
	Type            CalculationType
	LengthFt        string
	WidthFt         string
	HeightFt        string
	LengthM         string
	WidthM          string
	HeightM         string
	Quantity        string
	CostPerUnit     string
	WastePercentage string
	BeamLengthFt    string
	BeamWidthFt     string
	BeamHeightFt    string
	TotalSpanFt     string
	SpacingFt       string
	BeamLengthM     string
	BeamWidthM      string
	BeamHeightM     string
	TotalSpanM      string
	SpacingM        string
	LaborTrade      string
	LaborRate       string
	LaborHours      string
	LaborWorkers    string

	CementBags         string
	CementCostPerBag   string
	SandQty            string
	SandUnit           string
	SandCostPerUnit    string
	GravelQty          string
	GravelUnit         string
	GravelCostPerUnit  string
	WaterQty           string
	WaterUnit          string
	WaterCostPerUnit   string
	MixerRentalCost    string
	AncillaryCostName  string
	AncillaryCostValue string

	SubmittalLink   string
	InvoiceLink     string
	SubcontractorID string
}

// NewMaterialInput returns a material input with the entry form's
// defaults: area calculation, 10% waste, one laborer, customary
// concrete units.
func NewMaterialInput() MaterialInput {
	return MaterialInput{
		Type:            CalcArea,
		WastePercentage: "10",
		LaborWorkers:    "1",
		SandUnit:        "cu yd",
		GravelUnit:      "cu yd",
		WaterUnit:       "gal",
	}
}

// Validate checks the required fields for the input's calculation type
// under the given unit system. A violation aborts the add; the entity is
// not created.
func (in MaterialInput) Validate(system UnitSystem) error {
	if in.Name == "" {
		return common.MissingFieldError("material name")
	}
	if in.Type != CalcConcrete && in.CostPerUnit == "" {
		return common.MissingFieldError("cost per unit")
	}

	switch in.Type {
	case CalcArea:
		if system == UnitImperial && (in.LengthFt == "" || in.WidthFt == "") {
			return common.MissingFieldError("length and width")
		}
		if system == UnitMetric && (in.LengthM == "" || in.WidthM == "") {
			return common.MissingFieldError("length and width")
		}
	case CalcLinear:
		if system == UnitImperial && in.LengthFt == "" {
			return common.MissingFieldError("length")
		}
		if system == UnitMetric && in.LengthM == "" {
			return common.MissingFieldError("length")
		}
	case CalcUnits:
		if in.Quantity == "" {
			return common.MissingFieldError("quantity")
		}
	case CalcBeams:
		if system == UnitImperial && (in.BeamLengthFt == "" || in.TotalSpanFt == "" || in.SpacingFt == "") {
			return common.MissingFieldError("beam length, total span and spacing")
		}
		if system == UnitMetric && (in.BeamLengthM == "" || in.TotalSpanM == "" || in.SpacingM == "") {
			return common.MissingFieldError("beam length, total span and spacing")
		}
	case CalcConcrete:
		if in.CementBags == "" && in.SandQty == "" && in.GravelQty == "" &&
			in.WaterQty == "" && in.MixerRentalCost == "" && in.AncillaryCostValue == "" {
			return common.MissingFieldError("at least one concrete component or cost")
		}
	}

	return nil
}

// Material builds the entity for the given unit system. The caller is
// expected to have validated the input first; the returned material has
// no identity until the session assigns one.
func (in MaterialInput) Material(system UnitSystem) Material {
	m := Material{
		Name:            in.Name,
		Description:     in.Description,
		CostPerUnit:     ParseNumber(in.CostPerUnit),
		WastePercentage: ParseNumber(in.WastePercentage),
		SubmittalLink:   in.SubmittalLink,
		InvoiceLink:     in.InvoiceLink,
		SubcontractorID: in.SubcontractorID,
	}

	switch in.Type {
	case CalcArea:
		if system == UnitImperial {
			m.Spec = AreaSpec{System: system, Length: ParseNumber(in.LengthFt), Width: ParseNumber(in.WidthFt), Height: ParseNumber(in.HeightFt)}
		} else {
			m.Spec = AreaSpec{System: system, Length: ParseNumber(in.LengthM), Width: ParseNumber(in.WidthM), Height: ParseNumber(in.HeightM)}
		}
	case CalcLinear:
		if system == UnitImperial {
			m.Spec = LinearSpec{System: system, Length: ParseNumber(in.LengthFt)}
		} else {
			m.Spec = LinearSpec{System: system, Length: ParseNumber(in.LengthM)}
		}
	case CalcUnits:
		m.Spec = UnitsSpec{Quantity: ParseNumber(in.Quantity)}
	case CalcBeams:
		if system == UnitImperial {
			m.Spec = BeamsSpec{
				System:     system,
				BeamLength: ParseNumber(in.BeamLengthFt),
				BeamWidth:  ParseNumber(in.BeamWidthFt),
				BeamHeight: ParseNumber(in.BeamHeightFt),
				TotalSpan:  ParseNumber(in.TotalSpanFt),
				Spacing:    ParseNumber(in.SpacingFt),
			}
		} else {
			m.Spec = BeamsSpec{
				System:     system,
				BeamLength: ParseNumber(in.BeamLengthM),
				BeamWidth:  ParseNumber(in.BeamWidthM),
				BeamHeight: ParseNumber(in.BeamHeightM),
				TotalSpan:  ParseNumber(in.TotalSpanM),
				Spacing:    ParseNumber(in.SpacingM),
			}
		}
	case CalcConcrete:
		m.Spec = ConcreteSpec{
			CementBags:         ParseNumber(in.CementBags),
			CementCostPerBag:   ParseNumber(in.CementCostPerBag),
			SandQty:            ParseNumber(in.SandQty),
			SandUnit:           in.SandUnit,
			SandCostPerUnit:    ParseNumber(in.SandCostPerUnit),
			GravelQty:          ParseNumber(in.GravelQty),
			GravelUnit:         in.GravelUnit,
			GravelCostPerUnit:  ParseNumber(in.GravelCostPerUnit),
			WaterQty:           ParseNumber(in.WaterQty),
			WaterUnit:          in.WaterUnit,
			WaterCostPerUnit:   ParseNumber(in.WaterCostPerUnit),
			MixerRentalCost:    ParseNumber(in.MixerRentalCost),
			AncillaryCostName:  in.AncillaryCostName,
			AncillaryCostValue: ParseNumber(in.AncillaryCostValue),
		}
	}

	if in.LaborTrade != "" || in.LaborRate != "" || in.LaborHours != "" {
		m.Labor = &LaborDetail{
			Trade:   in.LaborTrade,
			Rate:    ParseNumber(in.LaborRate),
			Hours:   ParseNumber(in.LaborHours),
			Workers: ParseNumber(in.LaborWorkers),
		}
	}

	return m
}
