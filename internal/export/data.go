// Package export builds the transient artifacts handed to the platform's
// print and file facilities: a printable HTML document, delimited CSV
// text, and an XLSX workbook. Every cost figure comes from the session's
// computed-value surface — nothing in this package recalculates, so the
// exported numbers can never drift from the on-screen ones.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/costwise/costwise/internal/locale"
	"github.com/costwise/costwise/internal/model"
	"github.com/costwise/costwise/internal/session"
)

// MaterialRow is one material line of the cost summary, formatted for
// display.
type MaterialRow struct {
	Name          string
	Description   string
	Type          string
	BaseUnits     string
	Waste         string
	TotalUnits    string
	CostPerUnit   string
	TotalCost     string
	SubmittalLink string
	InvoiceLink   string
	Subcontractor string
	Details       []DetailRow
}

// DetailRow is one concrete-component line nested under its material.
type DetailRow struct {
	Label string
	Cost  string
}

// LaborRow is one line of the labor breakdown: a project-level trade or
// a material/equipment labor sub-record.
type LaborRow struct {
	Name          string
	Rate          string
	Hours         string
	Workers       string
	TotalCost     string
	Subcontractor string
}

// EquipmentRow is one equipment line of the cost summary.
type EquipmentRow struct {
	Name          string
	Description   string
	Type          string
	TotalCost     string
	SubmittalLink string
	InvoiceLink   string
	Subcontractor string
}

// ForecastRow is one forecast line item.
type ForecastRow struct {
	Name     string
	Category string
	Amount   string
	Tasks    string
}

// TotalRow is a labeled total.
type TotalRow struct {
	Label string
	Value string
}

// RollupRow is one subcontractor's cost rollup.
type RollupRow struct {
	Name      string
	Company   string
	Material  string
	Labor     string
	Equipment string
	Total     string
}

// ScheduleRow is one schedule task with its references resolved to
// display names.
type ScheduleRow struct {
	TaskName      string
	Start         string
	End           string
	Materials     string
	Equipment     string
	Subcontractor string
}

// SummaryData is everything the cost-summary renderers need, assembled
// once and shared by the HTML, CSV and XLSX outputs.
type SummaryData struct {
	Title          string
	Date           string
	Units          string
	Currency       string
	Materials      []MaterialRow
	Labor          []LaborRow
	Equipment      []EquipmentRow
	Forecast       []ForecastRow
	ForecastTotals []TotalRow
	Rollups        []RollupRow
	Totals         []TotalRow
}

// ScheduleData is everything the schedule renderers need.
type ScheduleData struct {
	Title string
	Date  string
	Tasks []ScheduleRow
}

// BuildSummaryData assembles the cost summary from the session's
// computed surface.
func BuildSummaryData(s *session.Session, now time.Time) SummaryData {
	f := s.Formatter()

	data := SummaryData{
		Title:    "Construction Cost Estimate",
		Date:     now.Format(model.DateLayout),
		Units:    unitsLabel(s.UnitSystem()),
		Currency: fmt.Sprintf("%s (%s)", f.Currency().Name, f.Currency().Symbol),
	}

	for _, m := range s.Materials() {
		data.Materials = append(data.Materials, materialRow(s, f, m))
	}

	data.Labor = laborRows(s, f)

	for _, e := range s.Equipment() {
		cost := s.EquipmentCost(e)
		data.Equipment = append(data.Equipment, EquipmentRow{
			Name:          e.Name,
			Description:   e.Description,
			Type:          equipmentTypeLabel(e),
			TotalCost:     f.Money(cost.TotalCost),
			SubmittalLink: e.SubmittalLink,
			InvoiceLink:   e.InvoiceLink,
			Subcontractor: subcontractorLabel(s, e.SubcontractorID),
		})
	}

	for _, fc := range s.ForecastCosts() {
		data.Forecast = append(data.Forecast, ForecastRow{
			Name:     fc.CostName,
			Category: string(fc.Category),
			Amount:   f.Money(fc.Amount),
			Tasks:    taskNames(s, fc.AssignedTaskIDs),
		})
	}

	for _, cat := range model.CostCategories {
		data.ForecastTotals = append(data.ForecastTotals, TotalRow{
			Label: fmt.Sprintf("Total %s Forecast Cost", cat),
			Value: f.Money(s.ForecastTotalByCategory(cat)),
		})
	}
	data.ForecastTotals = append(data.ForecastTotals, TotalRow{
		Label: "Forecast Grand Total",
		Value: f.Money(s.ForecastGrandTotal()),
	})

	for _, sc := range s.Subcontractors() {
		t := s.SubcontractorTotals(sc.ID)
		data.Rollups = append(data.Rollups, RollupRow{
			Name:      sc.Name,
			Company:   sc.Company,
			Material:  f.Money(t.Material),
			Labor:     f.Money(t.Labor),
			Equipment: f.Money(t.Equipment),
			Total:     f.Money(t.GrandTotal),
		})
	}

	data.Totals = []TotalRow{
		{Label: "Total Material Cost", Value: f.Money(s.TotalMaterialCost())},
		{Label: "Total Equipment Cost", Value: f.Money(s.TotalEquipmentCost())},
		{Label: "Total Project Labor Cost", Value: f.Money(s.TotalProjectLaborCost())},
		{Label: "Grand Total", Value: f.Money(s.GrandTotal())},
	}

	return data
}

// BuildScheduleData assembles the schedule export from the session.
func BuildScheduleData(s *session.Session, now time.Time) ScheduleData {
	data := ScheduleData{
		Title: "Construction Schedule",
		Date:  now.Format(model.DateLayout),
	}

	for _, t := range s.ScheduleTasks() {
		var materials, equipment []string
		for _, id := range t.AssignedMaterialIDs {
			if name, ok := s.MaterialName(id); ok {
				materials = append(materials, name)
			}
		}
		for _, id := range t.AssignedEquipmentIDs {
			if name, ok := s.EquipmentName(id); ok {
				equipment = append(equipment, name)
			}
		}
		data.Tasks = append(data.Tasks, ScheduleRow{
			TaskName:      t.TaskName,
			Start:         t.Start.Format(model.DateLayout),
			End:           t.End.Format(model.DateLayout),
			Materials:     joinOrNA(materials),
			Equipment:     joinOrNA(equipment),
			Subcontractor: subcontractorLabel(s, t.SubcontractorID),
		})
	}

	return data
}

func materialRow(s *session.Session, f locale.Formatter, m model.Material) MaterialRow {
	cost := s.MaterialCost(m)

	row := MaterialRow{
		Name:          m.Name,
		Description:   m.Description,
		Type:          string(m.Spec.CalculationType()),
		BaseUnits:     fmt.Sprintf("%.2f %s", cost.BaseUnits, cost.UnitLabel),
		Waste:         fmt.Sprintf("%.2f %s (%s%%)", cost.WasteAmount, cost.UnitLabel, model.FormatNumber(m.WastePercentage)),
		TotalUnits:    fmt.Sprintf("%.2f %s", cost.TotalUnits, cost.UnitLabel),
		CostPerUnit:   f.Money(m.CostPerUnit),
		TotalCost:     f.Money(cost.TotalCost),
		SubmittalLink: m.SubmittalLink,
		InvoiceLink:   m.InvoiceLink,
		Subcontractor: subcontractorLabel(s, m.SubcontractorID),
	}

	spec, ok := m.Spec.(model.ConcreteSpec)
	if !ok || cost.Concrete == nil {
		return row
	}

	row.CostPerUnit = "N/A"
	if spec.CementBags != 0 {
		row.Details = append(row.Details, DetailRow{
			Label: fmt.Sprintf("Cement: %s bags @ %s", model.FormatNumber(spec.CementBags), f.Money(spec.CementCostPerBag)),
			Cost:  f.Money(cost.Concrete.Cement),
		})
	}
	if spec.SandQty != 0 {
		row.Details = append(row.Details, DetailRow{
			Label: fmt.Sprintf("Sand: %s %s @ %s", model.FormatNumber(spec.SandQty), spec.SandUnit, f.Money(spec.SandCostPerUnit)),
			Cost:  f.Money(cost.Concrete.Sand),
		})
	}
	if spec.GravelQty != 0 {
		row.Details = append(row.Details, DetailRow{
			Label: fmt.Sprintf("Gravel: %s %s @ %s", model.FormatNumber(spec.GravelQty), spec.GravelUnit, f.Money(spec.GravelCostPerUnit)),
			Cost:  f.Money(cost.Concrete.Gravel),
		})
	}
	if spec.WaterQty != 0 {
		row.Details = append(row.Details, DetailRow{
			Label: fmt.Sprintf("Water: %s %s @ %s", model.FormatNumber(spec.WaterQty), spec.WaterUnit, f.Money(spec.WaterCostPerUnit)),
			Cost:  f.Money(cost.Concrete.Water),
		})
	}
	if spec.MixerRentalCost != 0 {
		row.Details = append(row.Details, DetailRow{
			Label: "Mixer Rental",
			Cost:  f.Money(cost.Concrete.Mixer),
		})
	}
	if spec.AncillaryCostName != "" && spec.AncillaryCostValue != 0 {
		row.Details = append(row.Details, DetailRow{
			Label: spec.AncillaryCostName,
			Cost:  f.Money(cost.Concrete.Ancillary),
		})
	}

	return row
}

// laborRows lists project-level trades first, then the labor sub-records
// attached to materials and equipment; those carry their parent entity's
// name so the reader can trace them back.
func laborRows(s *session.Session, f locale.Formatter) []LaborRow {
	var rows []LaborRow

	for _, t := range s.LaborTrades() {
		rows = append(rows, LaborRow{
			Name:          fmt.Sprintf("%s (Project-level)", t.TradeName),
			Rate:          f.Money(t.Rate),
			Hours:         model.FormatNumber(t.Hours),
			Workers:       model.FormatNumber(t.Workers),
			TotalCost:     f.Money(t.Cost()),
			Subcontractor: subcontractorLabel(s, t.SubcontractorID),
		})
	}

	for _, m := range s.Materials() {
		cost := s.MaterialCost(m)
		if m.Labor == nil || cost.LaborCost <= 0 {
			continue
		}
		rows = append(rows, LaborRow{
			Name:          fmt.Sprintf("%s (Material: %s)", m.Labor.Trade, m.Name),
			Rate:          f.Money(m.Labor.Rate),
			Hours:         model.FormatNumber(m.Labor.Hours),
			Workers:       model.FormatNumber(m.Labor.Workers),
			TotalCost:     f.Money(cost.LaborCost),
			Subcontractor: subcontractorLabel(s, m.SubcontractorID),
		})
	}

	for _, e := range s.Equipment() {
		cost := s.EquipmentCost(e)
		if e.Labor == nil || cost.LaborCost <= 0 {
			continue
		}
		rows = append(rows, LaborRow{
			Name:          fmt.Sprintf("%s (Equipment: %s)", e.Labor.Trade, e.Name),
			Rate:          f.Money(e.Labor.Rate),
			Hours:         model.FormatNumber(e.Labor.Hours),
			Workers:       model.FormatNumber(e.Labor.Workers),
			TotalCost:     f.Money(cost.LaborCost),
			Subcontractor: subcontractorLabel(s, e.SubcontractorID),
		})
	}

	return rows
}

func equipmentTypeLabel(e model.Equipment) string {
	if e.Type == model.EquipmentPurchase {
		return "Purchase"
	}

	var detail string
	switch e.RentalUnit {
	case model.RentalDay:
		detail = pluralize(e.NumberOfDays, "day")
	case model.RentalWeek:
		detail = pluralize1(e.NumberOfDays/7, "week")
	case model.RentalMonth:
		detail = pluralize1(e.NumberOfDays/30, "month")
	case model.RentalHour:
		detail = pluralize(e.NumberOfHours, "hour")
	}
	return fmt.Sprintf("Rental (%s)", detail)
}

func pluralize(n float64, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%s %s", model.FormatNumber(n), unit)
	}
	return fmt.Sprintf("%s %ss", model.FormatNumber(n), unit)
}

// pluralize1 renders derived week/month counts with one decimal, the way
// the summary has always shown them.
func pluralize1(n float64, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%.1f %s", n, unit)
	}
	return fmt.Sprintf("%.1f %ss", n, unit)
}

func subcontractorLabel(s *session.Session, id string) string {
	if id == "" {
		return "N/A"
	}
	if name, ok := s.SubcontractorName(id); ok {
		return name
	}
	return "N/A"
}

func taskNames(s *session.Session, ids []string) string {
	tasks := s.ScheduleTasks()
	var names []string
	for _, id := range ids {
		for _, t := range tasks {
			if t.ID == id {
				names = append(names, t.TaskName)
				break
			}
		}
	}
	return strings.Join(names, ", ")
}

func unitsLabel(u model.UnitSystem) string {
	if u == model.UnitImperial {
		return "Imperial (ft)"
	}
	return "Metric (m)"
}

func joinOrNA(parts []string) string {
	if len(parts) == 0 {
		return "N/A"
	}
	return strings.Join(parts, ", ")
}
