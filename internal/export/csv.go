package export

import (
	"encoding/csv"
	"strings"
	"time"

	"github.com/costwise/costwise/internal/session"
)

// CostSummaryCSV renders the cost summary as delimited spreadsheet text:
// a header block, then one section per tab, then the calculator totals.
func CostSummaryCSV(s *session.Session, now time.Time) string {
	data := BuildSummaryData(s, now)

	var buf strings.Builder
	w := csv.NewWriter(&buf)

	write := func(fields ...string) { _ = w.Write(fields) }

	write(data.Title)
	write("Date", data.Date)
	write("Units", data.Units)
	write("Currency", data.Currency)
	write()

	write("Materials")
	write("Material", "Description", "Type", "Base Units", "Waste", "Total Units", "Cost per Unit", "Total Cost", "Submittal", "Invoice", "Subcontractor")
	for _, m := range data.Materials {
		write(m.Name, m.Description, m.Type, m.BaseUnits, m.Waste, m.TotalUnits, m.CostPerUnit, m.TotalCost, m.SubmittalLink, m.InvoiceLink, m.Subcontractor)
		for _, d := range m.Details {
			write("", d.Label, "", "", "", "", "", d.Cost, "", "", "")
		}
	}
	write()

	write("Labor Cost Breakdown")
	write("Trade", "Hourly Rate", "Hours", "Laborers", "Total Cost", "Subcontractor")
	for _, l := range data.Labor {
		write(l.Name, l.Rate, l.Hours, l.Workers, l.TotalCost, l.Subcontractor)
	}
	write()

	write("Equipment")
	write("Equipment", "Type", "Total Cost", "Submittal", "Invoice", "Subcontractor")
	for _, e := range data.Equipment {
		write(e.Name, e.Type, e.TotalCost, e.SubmittalLink, e.InvoiceLink, e.Subcontractor)
	}
	write()

	write("Cost Forecast")
	write("Cost", "Category", "Amount", "Assigned Tasks")
	for _, f := range data.Forecast {
		write(f.Name, f.Category, f.Amount, f.Tasks)
	}
	for _, t := range data.ForecastTotals {
		write(t.Label, t.Value)
	}
	write()

	write("Subcontractor Rollup")
	write("Subcontractor", "Company", "Material", "Labor", "Equipment", "Total")
	for _, r := range data.Rollups {
		write(r.Name, r.Company, r.Material, r.Labor, r.Equipment, r.Total)
	}
	write()

	for _, t := range data.Totals {
		write(t.Label, t.Value)
	}

	w.Flush()
	return buf.String()
}

// ScheduleCSV renders the schedule as delimited spreadsheet text.
func ScheduleCSV(s *session.Session, now time.Time) string {
	data := BuildScheduleData(s, now)

	var buf strings.Builder
	w := csv.NewWriter(&buf)

	write := func(fields ...string) { _ = w.Write(fields) }

	write(data.Title)
	write("Date", data.Date)
	write()

	write("Task", "Start Date", "End Date", "Assigned Materials", "Assigned Equipment", "Subcontractor")
	for _, t := range data.Tasks {
		write(t.TaskName, t.Start, t.End, t.Materials, t.Equipment, t.Subcontractor)
	}

	w.Flush()
	return buf.String()
}

// ForecastCSV renders the forecast view alone: every line item, the
// per-category subtotals and the forecast grand total.
func ForecastCSV(s *session.Session, now time.Time) string {
	data := BuildSummaryData(s, now)

	var buf strings.Builder
	w := csv.NewWriter(&buf)

	write := func(fields ...string) { _ = w.Write(fields) }

	write("Cost Forecast")
	write("Date", data.Date)
	write()

	write("Cost", "Category", "Amount", "Assigned Tasks")
	for _, f := range data.Forecast {
		write(f.Name, f.Category, f.Amount, f.Tasks)
	}
	write()
	for _, t := range data.ForecastTotals {
		write(t.Label, t.Value)
	}

	w.Flush()
	return buf.String()
}

// Filename builds the conventional dated export filename, e.g.
// construction_estimate_2025-06-01.csv.
func Filename(prefix, ext string, now time.Time) string {
	return prefix + "_" + now.Format("2006-01-02") + "." + ext
}
