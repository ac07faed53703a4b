package tui

import (
	"fmt"
	"strings"

	"github.com/costwise/costwise/internal/model"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("CostWise — Construction Estimator"))
	b.WriteString("\n")
	b.WriteString(m.tabBar())
	b.WriteString("\n\n")

	switch m.mode {
	case modeForm, modeConverter:
		b.WriteString(m.form.view())
	case modeTypeSelect:
		b.WriteString(m.typeSelectView())
	default:
		b.WriteString(m.listView())
	}

	b.WriteString("\n")
	b.WriteString(m.totalsBar())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.helpLine())
	return b.String()
}

func (m Model) tabBar() string {
	parts := make([]string, 0, tabCount)
	for i := Tab(0); i < tabCount; i++ {
		style := tabStyle
		if i == m.tab {
			style = activeTabStyle
		}
		parts = append(parts, style.Render(tabNames[i]))
	}
	return strings.Join(parts, "")
}

func (m Model) typeSelectView() string {
	if m.tab == TabMaterials {
		return formTitleStyle.Render("Material type") + "\n" +
			"  1  area (flooring, paint, drywall)\n" +
			"  2  linear (trim, pipe, cable)\n" +
			"  3  units (doors, fixtures)\n" +
			"  4  beams (span / spacing)\n" +
			"  5  concrete (batch components)\n" +
			subtleStyle.Render("\npress a number · esc cancel")
	}
	return formTitleStyle.Render("Equipment type") + "\n" +
		"  1  rental\n" +
		"  2  purchase\n" +
		subtleStyle.Render("\npress a number · esc cancel")
}

func (m Model) listView() string {
	switch m.tab {
	case TabMaterials:
		return m.materialsView()
	case TabLabor:
		return m.laborView()
	case TabEquipment:
		return m.equipmentView()
	case TabSchedule:
		return m.scheduleView()
	case TabForecast:
		return m.forecastView()
	default:
		return m.subcontractorsView()
	}
}

// renderRows lays out a header and rows, highlighting the cursor row.
func (m Model) renderRows(header string, rows []string) string {
	if len(rows) == 0 {
		return headerRowStyle.Render(header) + "\n" +
			subtleStyle.Render("  nothing here yet — press a to add")
	}

	var b strings.Builder
	b.WriteString(headerRowStyle.Render(header))
	b.WriteString("\n")
	for i, r := range rows {
		if i == m.cursor[m.tab] {
			b.WriteString(selectedRowStyle.Render("> " + r))
		} else {
			b.WriteString("  " + r)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) materialsView() string {
	fm := m.sess.Formatter()
	header := fmt.Sprintf("%-8s %-20s %-10s %12s %12s %12s",
		"ID", "Name", "Type", "Units", "Cost", "Labor")

	var rows []string
	for _, mat := range m.sess.Materials() {
		bd := m.sess.MaterialCost(mat)
		units := fmt.Sprintf("%s %s", model.FormatNumber(bd.TotalUnits), bd.UnitLabel)
		if mat.Spec.CalculationType() == model.CalcConcrete {
			units = "batch"
		}
		rows = append(rows, fmt.Sprintf("%-8s %-20s %-10s %12s %12s %12s",
			mat.ID, clip(mat.Name, 20), mat.Spec.CalculationType(),
			units, fm.Money(bd.TotalCost), fm.Money(bd.LaborCost)))
	}
	return m.renderRows(header, rows)
}

func (m Model) laborView() string {
	fm := m.sess.Formatter()
	header := fmt.Sprintf("%-8s %-24s %10s %8s %8s %12s",
		"ID", "Trade", "Rate", "Hours", "Crew", "Cost")

	var rows []string
	for _, t := range m.sess.LaborTrades() {
		rows = append(rows, fmt.Sprintf("%-8s %-24s %10s %8s %8s %12s",
			t.ID, clip(t.TradeName, 24), fm.Money(t.Rate),
			model.FormatNumber(t.Hours), model.FormatNumber(t.Workers), fm.Money(t.Cost())))
	}
	return m.renderRows(header, rows)
}

func (m Model) equipmentView() string {
	fm := m.sess.Formatter()
	header := fmt.Sprintf("%-8s %-24s %-10s %12s %12s",
		"ID", "Name", "Type", "Cost", "Labor")

	var rows []string
	for _, e := range m.sess.Equipment() {
		bd := m.sess.EquipmentCost(e)
		rows = append(rows, fmt.Sprintf("%-8s %-24s %-10s %12s %12s",
			e.ID, clip(e.Name, 24), e.Type, fm.Money(bd.TotalCost), fm.Money(bd.LaborCost)))
	}
	return m.renderRows(header, rows)
}

func (m Model) scheduleView() string {
	header := fmt.Sprintf("%-8s %-24s %-12s %-12s %-8s %-8s",
		"ID", "Task", "Start", "End", "Mats", "Equip")

	var rows []string
	for _, t := range m.sess.ScheduleTasks() {
		rows = append(rows, fmt.Sprintf("%-8s %-24s %-12s %-12s %-8d %-8d",
			t.ID, clip(t.TaskName, 24),
			t.Start.Format(model.DateLayout), t.End.Format(model.DateLayout),
			len(t.AssignedMaterialIDs), len(t.AssignedEquipmentIDs)))
	}
	return m.renderRows(header, rows)
}

func (m Model) forecastView() string {
	fm := m.sess.Formatter()
	header := fmt.Sprintf("%-22s %-36s %-10s %14s",
		"ID", "Cost", "Category", "Amount")

	var rows []string
	for _, f := range m.sess.ForecastCosts() {
		name := f.CostName
		if f.Automated() {
			name = name + " *"
		}
		rows = append(rows, fmt.Sprintf("%-22s %-36s %-10s %14s",
			f.ID, clip(name, 36), f.Category, fm.Money(f.Amount)))
	}

	body := m.renderRows(header, rows)

	var totals []string
	for _, c := range model.CostCategories {
		if v := m.sess.ForecastTotalByCategory(c); v != 0 {
			totals = append(totals, fmt.Sprintf("%s %s", c, fm.Money(v)))
		}
	}
	totals = append(totals, fmt.Sprintf("Total %s", fm.Money(m.sess.ForecastGrandTotal())))

	return body + "\n" + subtleStyle.Render(strings.Join(totals, "  ·  "))
}

func (m Model) subcontractorsView() string {
	fm := m.sess.Formatter()
	header := fmt.Sprintf("%-8s %-20s %-20s %12s %12s %12s %12s",
		"ID", "Name", "Company", "Material", "Labor", "Equipment", "Total")

	var rows []string
	for _, sc := range m.sess.Subcontractors() {
		t := m.sess.SubcontractorTotals(sc.ID)
		rows = append(rows, fmt.Sprintf("%-8s %-20s %-20s %12s %12s %12s %12s",
			sc.ID, clip(sc.Name, 20), clip(sc.Company, 20),
			fm.Money(t.Material), fm.Money(t.Labor), fm.Money(t.Equipment), fm.Money(t.GrandTotal)))
	}
	return m.renderRows(header, rows)
}

func (m Model) totalsBar() string {
	fm := m.sess.Formatter()
	return totalsBarStyle.Render(fmt.Sprintf(
		"Materials %s  ·  Labor %s  ·  Equipment %s  ·  Grand Total %s  [%s, %s]",
		fm.Money(m.sess.TotalMaterialCost()),
		fm.Money(m.sess.TotalProjectLaborCost()),
		fm.Money(m.sess.TotalEquipmentCost()),
		fm.Money(m.sess.GrandTotal()),
		m.sess.UnitSystem(),
		m.sess.Currency().Code,
	))
}

func (m Model) statusLine() string {
	if m.status == "" {
		return ""
	}
	if m.statusErr {
		return statusErrStyle.Render(m.status)
	}
	return statusOKStyle.Render(m.status)
}

func (m Model) helpLine() string {
	return subtleStyle.Render(
		"tab switch · a add · d delete · u units · C convert · c currency · L language · p print · x csv · w workbook · q quit")
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
