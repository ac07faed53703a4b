package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/costwise/costwise/internal/session"
)

// Workbook builds an XLSX workbook with one sheet per view: materials,
// labor, equipment, forecast, the subcontractor rollup, the schedule,
// and the calculator totals. Cell
// values are the same formatted strings the other exports use, so every
// artifact shows identical numbers.
func Workbook(s *session.Session, now time.Time) ([]byte, error) {
	summary := BuildSummaryData(s, now)
	schedule := BuildScheduleData(s, now)

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}
	totalStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create total style: %w", err)
	}

	sheet := func(name string, width float64, header []string, rows [][]string, totals []TotalRow) error {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("create sheet %s: %w", name, err)
		}
		if err := f.SetColWidth(name, "A", "L", width); err != nil {
			return fmt.Errorf("set col width on %s: %w", name, err)
		}

		row := 1
		if err := writeRow(f, name, row, header); err != nil {
			return err
		}
		headerEnd, _ := excelize.CoordinatesToCellName(len(header), row)
		if err := f.SetCellStyle(name, "A1", headerEnd, headerStyle); err != nil {
			return fmt.Errorf("style header on %s: %w", name, err)
		}

		for _, r := range rows {
			row++
			if err := writeRow(f, name, row, r); err != nil {
				return err
			}
		}

		for _, t := range totals {
			row++
			if err := writeRow(f, name, row, []string{t.Label, t.Value}); err != nil {
				return err
			}
			start, _ := excelize.CoordinatesToCellName(1, row)
			end, _ := excelize.CoordinatesToCellName(2, row)
			if err := f.SetCellStyle(name, start, end, totalStyle); err != nil {
				return fmt.Errorf("style totals on %s: %w", name, err)
			}
		}
		return nil
	}

	var materialRows [][]string
	for _, m := range summary.Materials {
		materialRows = append(materialRows, []string{
			m.Name, m.Description, m.Type, m.BaseUnits, m.Waste, m.TotalUnits,
			m.CostPerUnit, m.TotalCost, m.Subcontractor,
		})
		for _, d := range m.Details {
			materialRows = append(materialRows, []string{"", d.Label, "", "", "", "", "", d.Cost, ""})
		}
	}
	if err := sheet("Materials", 18,
		[]string{"Material", "Description", "Type", "Base Units", "Waste", "Total Units", "Cost per Unit", "Total Cost", "Subcontractor"},
		materialRows, nil); err != nil {
		return nil, err
	}

	var laborRows [][]string
	for _, l := range summary.Labor {
		laborRows = append(laborRows, []string{l.Name, l.Rate, l.Hours, l.Workers, l.TotalCost, l.Subcontractor})
	}
	if err := sheet("Labor", 20,
		[]string{"Trade", "Hourly Rate", "Hours", "Laborers", "Total Cost", "Subcontractor"},
		laborRows, nil); err != nil {
		return nil, err
	}

	var equipmentRows [][]string
	for _, e := range summary.Equipment {
		equipmentRows = append(equipmentRows, []string{e.Name, e.Description, e.Type, e.TotalCost, e.Subcontractor})
	}
	if err := sheet("Equipment", 20,
		[]string{"Equipment", "Description", "Type", "Total Cost", "Subcontractor"},
		equipmentRows, nil); err != nil {
		return nil, err
	}

	var forecastRows [][]string
	for _, fc := range summary.Forecast {
		forecastRows = append(forecastRows, []string{fc.Name, fc.Category, fc.Amount, fc.Tasks})
	}
	if err := sheet("Forecast", 24,
		[]string{"Cost", "Category", "Amount", "Assigned Tasks"},
		forecastRows, summary.ForecastTotals); err != nil {
		return nil, err
	}

	var rollupRows [][]string
	for _, r := range summary.Rollups {
		rollupRows = append(rollupRows, []string{r.Name, r.Company, r.Material, r.Labor, r.Equipment, r.Total})
	}
	if err := sheet("Subcontractors", 20,
		[]string{"Subcontractor", "Company", "Material", "Labor", "Equipment", "Total"},
		rollupRows, nil); err != nil {
		return nil, err
	}

	var scheduleRows [][]string
	for _, t := range schedule.Tasks {
		scheduleRows = append(scheduleRows, []string{t.TaskName, t.Start, t.End, t.Materials, t.Equipment, t.Subcontractor})
	}
	if err := sheet("Schedule", 20,
		[]string{"Task", "Start Date", "End Date", "Assigned Materials", "Assigned Equipment", "Subcontractor"},
		scheduleRows, nil); err != nil {
		return nil, err
	}

	if err := sheet("Summary", 28, []string{summary.Title, summary.Date}, [][]string{
		{"Units", summary.Units},
		{"Currency", summary.Currency},
	}, summary.Totals); err != nil {
		return nil, err
	}

	// Drop excelize's default sheet and lead with the summary.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("delete default sheet: %w", err)
	}
	idx, err := f.GetSheetIndex("Summary")
	if err != nil {
		return nil, fmt.Errorf("find summary sheet: %w", err)
	}
	f.SetActiveSheet(idx)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, sheet string, row int, values []string) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("set cell %s on %s: %w", cell, sheet, err)
		}
	}
	return nil
}
