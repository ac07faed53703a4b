package model

import "github.com/costwise/costwise/internal/common"

// EquipmentType distinguishes purchased from rented equipment.
type EquipmentType string

const (
	// EquipmentPurchase is equipment bought outright.
	EquipmentPurchase EquipmentType = "purchase"
	// EquipmentRental is equipment rented by the day, week, month or hour.
	EquipmentRental EquipmentType = "rental"
)

// RentalUnit is the billing period a rental rate applies to.
type RentalUnit string

const (
	// RentalDay bills per day.
	RentalDay RentalUnit = "day"
	// RentalWeek bills per week; the duration still comes from the days
	// input (days / 7).
	RentalWeek RentalUnit = "week"
	// RentalMonth bills per month; the duration still comes from the days
	// input (days / 30).
	RentalMonth RentalUnit = "month"
	// RentalHour bills per hour.
	RentalHour RentalUnit = "hour"
)

// Equipment is one equipment line item. Immutable once created; the
// unit-system conversion pass does not touch equipment.
type Equipment struct {
	ID              string
	Name            string
	Description     string
	Type            EquipmentType
	RentalUnit      RentalUnit
	SubmittalLink   string
	InvoiceLink     string
	SubcontractorID string
	Labor           *LaborDetail
	PurchaseCost    float64
	UsefulLifeYears float64
	RentalRate      float64
	NumberOfDays    float64
	NumberOfHours   float64
}

// EquipmentInput carries raw form values for a new equipment item.
type EquipmentInput struct {
	Name            string
	Description     string
	Type            EquipmentType
	PurchaseCost    string
	UsefulLifeYears string
	RentalRate      string
	RentalUnit      RentalUnit
	NumberOfDays    string
	NumberOfHours   string
	LaborTrade      string
	LaborRate       string
	LaborHours      string
	LaborWorkers    string
	SubmittalLink   string
	InvoiceLink     string
	SubcontractorID string
}

// NewEquipmentInput returns an equipment input with the entry form's
// defaults: a daily rental with a single laborer.
func NewEquipmentInput() EquipmentInput {
	return EquipmentInput{
		Type:         EquipmentRental,
		RentalUnit:   RentalDay,
		LaborWorkers: "1",
	}
}

// Validate checks the required fields for the input's equipment type.
func (in EquipmentInput) Validate() error {
	if in.Name == "" {
		return common.MissingFieldError("equipment name")
	}
	switch in.Type {
	case EquipmentPurchase:
		if in.PurchaseCost == "" {
			return common.MissingFieldError("purchase cost")
		}
	case EquipmentRental:
		if in.RentalRate == "" {
			return common.MissingFieldError("rental rate")
		}
		switch in.RentalUnit {
		case RentalHour:
			if in.NumberOfHours == "" {
				return common.MissingFieldError("number of hours")
			}
		case RentalDay, RentalWeek, RentalMonth:
			// Week and month durations are derived from days.
			if in.NumberOfDays == "" {
				return common.MissingFieldError("number of days")
			}
		}
	}
	return nil
}

// Equipment builds the entity. The caller is expected to have validated
// the input first.
func (in EquipmentInput) Equipment() Equipment {
	e := Equipment{
		Name:            in.Name,
		Description:     in.Description,
		Type:            in.Type,
		PurchaseCost:    ParseNumber(in.PurchaseCost),
		UsefulLifeYears: ParseNumber(in.UsefulLifeYears),
		RentalRate:      ParseNumber(in.RentalRate),
		RentalUnit:      in.RentalUnit,
		NumberOfDays:    ParseNumber(in.NumberOfDays),
		NumberOfHours:   ParseNumber(in.NumberOfHours),
		SubmittalLink:   in.SubmittalLink,
		InvoiceLink:     in.InvoiceLink,
		SubcontractorID: in.SubcontractorID,
	}

	if in.LaborTrade != "" || in.LaborRate != "" || in.LaborHours != "" {
		e.Labor = &LaborDetail{
			Trade:   in.LaborTrade,
			Rate:    ParseNumber(in.LaborRate),
			Hours:   ParseNumber(in.LaborHours),
			Workers: ParseNumber(in.LaborWorkers),
		}
	}

	return e
}
