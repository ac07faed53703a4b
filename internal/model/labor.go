package model

import "github.com/costwise/costwise/internal/common"

// LaborTrade is a project-level labor line not tied to any material or
// equipment item.
type LaborTrade struct {
	ID              string
	TradeName       string
	SubcontractorID string
	Rate            float64
	Hours           float64
	Workers         float64
}

// Cost returns rate * hours * workers, with a worker count of zero
// treated as a single laborer.
func (t LaborTrade) Cost() float64 {
	workers := t.Workers
	if workers == 0 {
		workers = 1
	}
	return t.Rate * t.Hours * workers
}

// LaborTradeInput carries raw form values for a new labor trade.
type LaborTradeInput struct {
	TradeName       string
	Rate            string
	Hours           string
	Workers         string
	SubcontractorID string
}

// NewLaborTradeInput returns a labor trade input with a single laborer
// pre-filled.
func NewLaborTradeInput() LaborTradeInput {
	return LaborTradeInput{Workers: "1"}
}

// Validate checks that every labor trade field was entered.
func (in LaborTradeInput) Validate() error {
	if in.TradeName == "" {
		return common.MissingFieldError("trade name")
	}
	if in.Rate == "" {
		return common.MissingFieldError("hourly rate")
	}
	if in.Hours == "" {
		return common.MissingFieldError("total hours")
	}
	if in.Workers == "" {
		return common.MissingFieldError("number of laborers")
	}
	return nil
}

// LaborTrade builds the entity. The caller is expected to have validated
// the input first.
func (in LaborTradeInput) LaborTrade() LaborTrade {
	return LaborTrade{
		TradeName:       in.TradeName,
		Rate:            ParseNumber(in.Rate),
		Hours:           ParseNumber(in.Hours),
		Workers:         ParseNumber(in.Workers),
		SubcontractorID: in.SubcontractorID,
	}
}
