package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/costwise/costwise/internal/common"
	"github.com/costwise/costwise/internal/export"
	"github.com/costwise/costwise/internal/locale"
	"github.com/costwise/costwise/internal/model"
	"github.com/costwise/costwise/internal/session"
)

// Tab identifies one view over the session.
type Tab int

// The tabs, in display order.
const (
	TabMaterials Tab = iota
	TabLabor
	TabEquipment
	TabSchedule
	TabForecast
	TabSubcontractors
	tabCount
)

var tabNames = [tabCount]string{
	"Materials",
	"Labor",
	"Equipment",
	"Schedule",
	"Forecast",
	"Subcontractors",
}

// mode is the interaction state of the interface.
type mode int

const (
	modeList mode = iota
	modeTypeSelect
	modeForm
	modeConverter
)

// Config holds what the TUI needs to run.
type Config struct {
	Session   *session.Session
	ExportDir string
	Clock     func() time.Time
}

// Model is the root bubbletea model.
type Model struct {
	sess        *session.Session
	clock       func() time.Time
	exportDir   string
	status      string
	pendingType string
	form        formModel
	keymap      KeyMap
	cursor      [tabCount]int
	width       int
	height      int
	tab         Tab
	mode        mode
	statusErr   bool
	quitting    bool
}

func newModel(cfg Config) Model {
	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}
	return Model{
		sess:      cfg.Session,
		clock:     clock,
		exportDir: cfg.ExportDir,
		keymap:    DefaultKeyMap(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeForm:
			return m.updateForm(msg)
		case modeTypeSelect:
			return m.updateTypeSelect(msg)
		case modeConverter:
			return m.updateConverter(msg)
		default:
			return m.updateList(msg)
		}
	}

	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.NextTab):
		m.tab = (m.tab + 1) % tabCount
		m.status = ""

	case key.Matches(msg, m.keymap.PrevTab):
		m.tab = (m.tab + tabCount - 1) % tabCount
		m.status = ""

	case key.Matches(msg, m.keymap.Up):
		if m.cursor[m.tab] > 0 {
			m.cursor[m.tab]--
		}

	case key.Matches(msg, m.keymap.Down):
		if m.cursor[m.tab] < len(m.rowIDs())-1 {
			m.cursor[m.tab]++
		}

	case key.Matches(msg, m.keymap.Add):
		return m.startAdd()

	case key.Matches(msg, m.keymap.Delete):
		m.deleteSelected()

	case key.Matches(msg, m.keymap.ToggleUnits):
		m.sess.SetUnitSystem(m.sess.UnitSystem().Other())
		m.setStatus(fmt.Sprintf("units: %s", m.sess.UnitSystem()), false)

	case key.Matches(msg, m.keymap.Converters):
		m.form = converterForm()
		m.mode = modeConverter
		m.status = ""

	case key.Matches(msg, m.keymap.Currency):
		m.sess.SetCurrency(nextCurrency(m.sess.Currency()))
		m.setStatus(fmt.Sprintf("currency: %s", m.sess.Currency().Code), false)

	case key.Matches(msg, m.keymap.Language):
		m.sess.SetLanguage(nextLanguage(m.sess.Language()))
		m.setStatus(fmt.Sprintf("language: %s", m.sess.Language()), false)

	case key.Matches(msg, m.keymap.ExportPrint):
		m.runExport("html")

	case key.Matches(msg, m.keymap.ExportCSV):
		m.runExport("csv")

	case key.Matches(msg, m.keymap.ExportXLSX):
		m.runExport("xlsx")
	}

	return m, nil
}

// startAdd opens the entry flow for the active tab. Materials and
// equipment pick their variant first; everything else goes straight to
// its form.
func (m Model) startAdd() (tea.Model, tea.Cmd) {
	switch m.tab {
	case TabMaterials, TabEquipment:
		m.mode = modeTypeSelect
	case TabLabor:
		m.form = laborForm()
		m.mode = modeForm
	case TabSchedule:
		m.form = taskForm()
		m.mode = modeForm
	case TabForecast:
		m.form = forecastForm()
		m.mode = modeForm
	case TabSubcontractors:
		m.form = subcontractorForm()
		m.mode = modeForm
	}
	m.status = ""
	return m, nil
}

func (m Model) updateTypeSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		m.mode = modeList
		return m, nil
	}

	if m.tab == TabMaterials {
		types := map[string]model.CalculationType{
			"1": model.CalcArea,
			"2": model.CalcLinear,
			"3": model.CalcUnits,
			"4": model.CalcBeams,
			"5": model.CalcConcrete,
		}
		if t, ok := types[msg.String()]; ok {
			m.pendingType = string(t)
			m.form = materialForm(t, m.sess.UnitSystem())
			m.mode = modeForm
		}
		return m, nil
	}

	types := map[string]model.EquipmentType{
		"1": model.EquipmentRental,
		"2": model.EquipmentPurchase,
	}
	if t, ok := types[msg.String()]; ok {
		m.pendingType = string(t)
		m.form = equipmentForm(t)
		m.mode = modeForm
	}
	return m, nil
}

// updateConverter drives the converter panel. It never touches the
// session; any close key returns to the list.
func (m Model) updateConverter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	form, submitted, canceled := m.form.update(msg)
	m.form = form
	if submitted || canceled {
		m.mode = modeList
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+u switches the unit system mid-entry and converts the pending
	// dimension values, so half-typed input survives the switch. Plain
	// "u" stays a literal character here.
	if m.tab == TabMaterials && msg.String() == "ctrl+u" {
		from := m.sess.UnitSystem()
		m.sess.SetUnitSystem(from.Other())
		m.form = convertMaterialForm(m.form, model.CalculationType(m.pendingType), m.sess.UnitSystem())
		return m, nil
	}

	form, submitted, canceled := m.form.update(msg)
	m.form = form

	if canceled {
		m.mode = modeList
		m.status = ""
		return m, nil
	}
	if !submitted {
		return m, nil
	}

	if err := m.submitForm(); err != nil {
		// Validation failure: the form stays open with its input intact.
		m.setStatus(err.Error(), true)
		return m, nil
	}

	m.mode = modeList
	return m, nil
}

func (m *Model) submitForm() error {
	v := m.form.values()

	switch m.tab {
	case TabMaterials:
		in := materialInputFromForm(v, model.CalculationType(m.pendingType), m.sess.UnitSystem())
		mat, err := m.sess.AddMaterial(in)
		if err != nil {
			return err
		}
		m.setStatus(fmt.Sprintf("added material %s", mat.Name), false)

	case TabLabor:
		in := model.LaborTradeInput{
			TradeName:       v["trade"],
			Rate:            v["rate"],
			Hours:           v["hours"],
			Workers:         v["workers"],
			SubcontractorID: v["subcontractor"],
		}
		t, err := m.sess.AddLaborTrade(in)
		if err != nil {
			return err
		}
		m.setStatus(fmt.Sprintf("added labor trade %s", t.TradeName), false)

	case TabEquipment:
		in := equipmentInputFromForm(v, model.EquipmentType(m.pendingType))
		e, err := m.sess.AddEquipment(in)
		if err != nil {
			return err
		}
		m.setStatus(fmt.Sprintf("added equipment %s", e.Name), false)

	case TabSchedule:
		in := model.ScheduleTaskInput{
			TaskName:             v["name"],
			StartDate:            v["start"],
			EndDate:              v["end"],
			AssignedMaterialIDs:  splitIDs(v["materials"]),
			AssignedEquipmentIDs: splitIDs(v["equipment"]),
			SubcontractorID:      v["subcontractor"],
		}
		t, err := m.sess.AddScheduleTask(in)
		if err != nil {
			return err
		}
		m.setStatus(fmt.Sprintf("added task %s", t.TaskName), false)

	case TabForecast:
		in := model.ForecastCostInput{
			CostName:        v["name"],
			Category:        parseCategory(v["category"]),
			Amount:          v["amount"],
			AssignedTaskIDs: splitIDs(v["tasks"]),
		}
		fc, err := m.sess.AddForecastCost(in)
		if err != nil {
			return err
		}
		m.setStatus(fmt.Sprintf("added forecast cost %s", fc.CostName), false)

	case TabSubcontractors:
		in := model.SubcontractorInput{
			Name:        v["name"],
			Company:     v["company"],
			ContactInfo: v["contact"],
		}
		sc, err := m.sess.AddSubcontractor(in)
		if err != nil {
			return err
		}
		m.setStatus(fmt.Sprintf("added subcontractor %s", sc.Name), false)
	}

	return nil
}

func (m *Model) deleteSelected() {
	ids := m.rowIDs()
	i := m.cursor[m.tab]
	if i < 0 || i >= len(ids) {
		return
	}
	id := ids[i]

	switch m.tab {
	case TabMaterials:
		m.sess.RemoveMaterial(id)
	case TabLabor:
		m.sess.RemoveLaborTrade(id)
	case TabEquipment:
		m.sess.RemoveEquipment(id)
	case TabSchedule:
		m.sess.RemoveScheduleTask(id)
	case TabForecast:
		if model.IsAutomatedForecastID(id) {
			err := common.NewUserError("automated forecast entries cannot be removed", common.ErrProtectedEntity)
			m.setStatus(err.Error(), true)
			return
		}
		m.sess.RemoveForecastCost(id)
	case TabSubcontractors:
		m.sess.RemoveSubcontractor(id)
	}

	if m.cursor[m.tab] >= len(m.rowIDs()) && m.cursor[m.tab] > 0 {
		m.cursor[m.tab]--
	}
}

// rowIDs returns the entity identities behind the active tab's rows, in
// render order.
func (m Model) rowIDs() []string {
	var ids []string
	switch m.tab {
	case TabMaterials:
		for _, x := range m.sess.Materials() {
			ids = append(ids, x.ID)
		}
	case TabLabor:
		for _, x := range m.sess.LaborTrades() {
			ids = append(ids, x.ID)
		}
	case TabEquipment:
		for _, x := range m.sess.Equipment() {
			ids = append(ids, x.ID)
		}
	case TabSchedule:
		for _, x := range m.sess.ScheduleTasks() {
			ids = append(ids, x.ID)
		}
	case TabForecast:
		for _, x := range m.sess.ForecastCosts() {
			ids = append(ids, x.ID)
		}
	case TabSubcontractors:
		for _, x := range m.sess.Subcontractors() {
			ids = append(ids, x.ID)
		}
	}
	return ids
}

func (m *Model) runExport(kind string) {
	now := m.clock()

	var (
		name    string
		content []byte
		err     error
	)

	switch kind {
	case "html":
		var doc string
		if m.tab == TabSchedule {
			name = export.Filename("construction_schedule", "html", now)
			doc, err = export.ScheduleHTML(m.sess, now)
		} else {
			name = export.Filename("construction_estimate", "html", now)
			doc, err = export.CostSummaryHTML(m.sess, now)
		}
		content = []byte(doc)
	case "csv":
		switch m.tab {
		case TabSchedule:
			name = export.Filename("construction_schedule", "csv", now)
			content = []byte(export.ScheduleCSV(m.sess, now))
		case TabForecast:
			name = export.Filename("cost_forecast", "csv", now)
			content = []byte(export.ForecastCSV(m.sess, now))
		default:
			name = export.Filename("construction_estimate", "csv", now)
			content = []byte(export.CostSummaryCSV(m.sess, now))
		}
	case "xlsx":
		name = export.Filename("construction_estimate", "xlsx", now)
		content, err = export.Workbook(m.sess, now)
	}

	if err != nil {
		common.LogError(err, "export failed", common.Fields{"kind": kind})
		m.setStatus(fmt.Sprintf("export failed: %v", err), true)
		return
	}

	path := filepath.Join(m.exportDir, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		common.LogError(err, "export failed", common.Fields{"kind": kind, "path": path})
		m.setStatus(fmt.Sprintf("export failed: %v", err), true)
		return
	}
	m.setStatus(fmt.Sprintf("exported %s", path), false)
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.status = msg
	m.statusErr = isErr
}

func splitIDs(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseCategory(s string) model.CostCategory {
	for _, c := range model.CostCategories {
		if strings.EqualFold(string(c), s) {
			return c
		}
	}
	return model.CategoryOther
}

func nextCurrency(cur locale.Currency) locale.Currency {
	for i, c := range locale.Currencies {
		if c.Code == cur.Code {
			return locale.Currencies[(i+1)%len(locale.Currencies)]
		}
	}
	return locale.USD
}

var languages = []locale.Language{
	locale.English, locale.Spanish, locale.Italian,
	locale.French, locale.German, locale.Chinese,
}

func nextLanguage(l locale.Language) locale.Language {
	for i, v := range languages {
		if v == l {
			return languages[(i+1)%len(languages)]
		}
	}
	return locale.English
}
