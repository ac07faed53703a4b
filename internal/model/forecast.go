package model

import "github.com/costwise/costwise/internal/common"

// CostCategory groups forecast line items.
type CostCategory string

// The forecast categories, in display order.
const (
	CategoryLand      CostCategory = "Land"
	CategoryMaterial  CostCategory = "Material"
	CategoryLabor     CostCategory = "Labor"
	CategoryEquipment CostCategory = "Equipment"
	CategoryOther     CostCategory = "Other"
)

// CostCategories lists every forecast category in display order.
var CostCategories = []CostCategory{
	CategoryLand,
	CategoryMaterial,
	CategoryLabor,
	CategoryEquipment,
	CategoryOther,
}

// Reserved identities for the forecast entries the session keeps in sync
// with the calculator totals. They cannot be removed by the user.
const (
	AutoMaterialCostID  = "auto-material-cost"
	AutoLaborCostID     = "auto-labor-cost"
	AutoEquipmentCostID = "auto-equipment-cost"
)

// IsAutomatedForecastID reports whether id names one of the
// system-maintained forecast entries.
func IsAutomatedForecastID(id string) bool {
	return id == AutoMaterialCostID || id == AutoLaborCostID || id == AutoEquipmentCostID
}

// ForecastCost is one forecast line item, either entered by the user or
// maintained automatically from the calculator totals.
type ForecastCost struct {
	ID              string
	CostName        string
	Category        CostCategory
	AssignedTaskIDs []string
	Amount          float64
}

// Automated reports whether this entry is system-maintained.
func (f ForecastCost) Automated() bool {
	return IsAutomatedForecastID(f.ID)
}

// ForecastCostInput carries raw form values for a new manual forecast
// item.
type ForecastCostInput struct {
	CostName        string
	Category        CostCategory
	Amount          string
	AssignedTaskIDs []string
}

// NewForecastCostInput returns a forecast input with the form's default
// category.
func NewForecastCostInput() ForecastCostInput {
	return ForecastCostInput{Category: CategoryMaterial}
}

// Validate checks that the item has a name and a numeric amount.
func (in ForecastCostInput) Validate() error {
	if in.CostName == "" {
		return common.MissingFieldError("cost name")
	}
	if in.Amount == "" {
		return common.MissingFieldError("amount")
	}
	if !IsNumber(in.Amount) {
		return common.NewUserError("amount must be a number", common.ErrInvalidNumber)
	}
	return nil
}

// ForecastCost builds the entity. The caller is expected to have
// validated the input first.
func (in ForecastCostInput) ForecastCost() ForecastCost {
	return ForecastCost{
		CostName:        in.CostName,
		Category:        in.Category,
		Amount:          ParseNumber(in.Amount),
		AssignedTaskIDs: append([]string(nil), in.AssignedTaskIDs...),
	}
}
