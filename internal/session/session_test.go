package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/costwise/costwise/internal/common"
	"github.com/costwise/costwise/internal/model"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	return New(DefaultConfig())
}

func addFlooring(t *testing.T, s *Session) model.Material {
	t.Helper()
	in := model.NewMaterialInput()
	in.Name = "Flooring"
	in.LengthFt = "10"
	in.WidthFt = "10"
	in.CostPerUnit = "10"
	in.WastePercentage = "0"

	m, err := s.AddMaterial(in)
	require.NoError(t, err)
	return m
}

func addExcavator(t *testing.T, s *Session) model.Equipment {
	t.Helper()
	in := model.NewEquipmentInput()
	in.Name = "Excavator"
	in.RentalRate = "300"
	in.NumberOfDays = "5"

	e, err := s.AddEquipment(in)
	require.NoError(t, err)
	return e
}

func TestNewSessionStartsWithAutomatedForecast(t *testing.T) {
	s := newTestSession(t)

	costs := s.ForecastCosts()
	require.Len(t, costs, 3)
	for _, f := range costs {
		assert.True(t, f.Automated(), "%s should be automated", f.ID)
		assert.Zero(t, f.Amount)
	}
}

func TestAddMaterialRefreshesForecast(t *testing.T) {
	s := newTestSession(t)
	addFlooring(t, s)

	var auto model.ForecastCost
	for _, f := range s.ForecastCosts() {
		if f.ID == model.AutoMaterialCostID {
			auto = f
		}
	}
	assert.InDelta(t, 1000, auto.Amount, 0.001)
	assert.InDelta(t, s.TotalMaterialCost(), auto.Amount, 0.001)
}

func TestAddMaterialValidationFailureAddsNothing(t *testing.T) {
	s := newTestSession(t)

	in := model.NewMaterialInput()
	in.Name = "Flooring" // no dimensions, no cost
	_, err := s.AddMaterial(in)

	require.Error(t, err)
	assert.True(t, common.IsValidation(err))
	assert.Empty(t, s.Materials())
}

func TestRemoveAutomatedForecastIsNoOp(t *testing.T) {
	s := newTestSession(t)

	s.RemoveForecastCost(model.AutoLaborCostID)

	assert.Len(t, s.ForecastCosts(), 3)
}

func TestManualForecastPrecedesAutomatedBlock(t *testing.T) {
	s := newTestSession(t)

	in := model.NewForecastCostInput()
	in.CostName = "Permits"
	in.Category = model.CategoryOther
	in.Amount = "1200"
	fc, err := s.AddForecastCost(in)
	require.NoError(t, err)

	costs := s.ForecastCosts()
	require.Len(t, costs, 4)
	assert.Equal(t, fc.ID, costs[0].ID)
	for _, f := range costs[1:] {
		assert.True(t, f.Automated())
	}
}

func TestForecastTotalsAreAdditive(t *testing.T) {
	s := newTestSession(t)
	addFlooring(t, s)

	// A manual material line stacks on top of the automated one; the
	// forecast never deduplicates against the calculator.
	in := model.NewForecastCostInput()
	in.CostName = "Contingency materials"
	in.Amount = "500"
	_, err := s.AddForecastCost(in)
	require.NoError(t, err)

	assert.InDelta(t, 1500, s.ForecastTotalByCategory(model.CategoryMaterial), 0.001)
	assert.InDelta(t, 1500, s.ForecastGrandTotal(), 0.001)
}

func TestRemoveMaterialStripsTaskAssignments(t *testing.T) {
	s := newTestSession(t)
	m := addFlooring(t, s)
	keep := addFlooring(t, s)

	task, err := s.AddScheduleTask(model.ScheduleTaskInput{
		TaskName:            "Install",
		StartDate:           "2026-03-01",
		EndDate:             "2026-03-10",
		AssignedMaterialIDs: []string{m.ID, keep.ID},
	})
	require.NoError(t, err)

	s.RemoveMaterial(m.ID)

	tasks := s.ScheduleTasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, task.ID, tasks[0].ID)
	assert.Equal(t, []string{keep.ID}, tasks[0].AssignedMaterialIDs)
}

func TestRemoveTaskStripsForecastAssignments(t *testing.T) {
	s := newTestSession(t)

	task, err := s.AddScheduleTask(model.ScheduleTaskInput{
		TaskName: "Pour", StartDate: "2026-03-01", EndDate: "2026-03-05",
	})
	require.NoError(t, err)

	in := model.NewForecastCostInput()
	in.CostName = "Pump truck"
	in.Amount = "800"
	in.AssignedTaskIDs = []string{task.ID}
	fc, err := s.AddForecastCost(in)
	require.NoError(t, err)
	require.Equal(t, []string{task.ID}, fc.AssignedTaskIDs)

	s.RemoveScheduleTask(task.ID)

	for _, f := range s.ForecastCosts() {
		if f.ID == fc.ID {
			assert.Empty(t, f.AssignedTaskIDs)
		}
	}
}

func TestAddTaskDropsUnknownAssignments(t *testing.T) {
	s := newTestSession(t)
	m := addFlooring(t, s)

	task, err := s.AddScheduleTask(model.ScheduleTaskInput{
		TaskName:             "Install",
		StartDate:            "2026-03-01",
		EndDate:              "2026-03-10",
		AssignedMaterialIDs:  []string{m.ID, "m-404"},
		AssignedEquipmentIDs: []string{"e-404"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{m.ID}, task.AssignedMaterialIDs)
	assert.Empty(t, task.AssignedEquipmentIDs)
}

func TestRemoveSubcontractorClearsReferences(t *testing.T) {
	s := newTestSession(t)

	sc, err := s.AddSubcontractor(model.SubcontractorInput{
		Name: "Alex", Company: "Groundworks LLC", ContactInfo: "alex@example.com",
	})
	require.NoError(t, err)

	min := model.NewMaterialInput()
	min.Name = "Flooring"
	min.LengthFt, min.WidthFt = "10", "10"
	min.CostPerUnit = "10"
	min.SubcontractorID = sc.ID
	m, err := s.AddMaterial(min)
	require.NoError(t, err)
	require.Equal(t, sc.ID, m.SubcontractorID)

	lin := model.NewLaborTradeInput()
	lin.TradeName = "Electrician"
	lin.Rate, lin.Hours = "80", "20"
	lin.SubcontractorID = sc.ID
	_, err = s.AddLaborTrade(lin)
	require.NoError(t, err)

	s.RemoveSubcontractor(sc.ID)

	assert.Empty(t, s.Subcontractors())
	// The referencing entities survive, back at unassigned.
	require.Len(t, s.Materials(), 1)
	assert.Empty(t, s.Materials()[0].SubcontractorID)
	require.Len(t, s.LaborTrades(), 1)
	assert.Empty(t, s.LaborTrades()[0].SubcontractorID)
}

func TestSubcontractorTotalsRollup(t *testing.T) {
	s := newTestSession(t)

	sc, err := s.AddSubcontractor(model.SubcontractorInput{
		Name: "Alex", Company: "Groundworks LLC", ContactInfo: "alex@example.com",
	})
	require.NoError(t, err)

	min := model.NewMaterialInput()
	min.Type = model.CalcConcrete
	min.Name = "Foundation mix"
	min.CementBags, min.CementCostPerBag = "10", "5.50"
	min.SandQty, min.SandCostPerUnit = "0.5", "30"
	min.GravelQty, min.GravelCostPerUnit = "1", "40"
	min.WaterQty, min.WaterCostPerUnit = "20", "0.10"
	min.MixerRentalCost = "150"
	min.AncillaryCostValue = "50"
	min.SubcontractorID = sc.ID
	_, err = s.AddMaterial(min)
	require.NoError(t, err)

	ein := model.NewEquipmentInput()
	ein.Name = "Excavator"
	ein.RentalRate, ein.NumberOfDays = "300", "5"
	ein.LaborTrade, ein.LaborRate, ein.LaborHours = "Operator", "40", "8"
	ein.SubcontractorID = sc.ID
	_, err = s.AddEquipment(ein)
	require.NoError(t, err)

	got := s.SubcontractorTotals(sc.ID)
	assert.InDelta(t, 343.20, got.Material, 0.001)
	assert.InDelta(t, 320, got.Labor, 0.001)
	assert.InDelta(t, 1500, got.Equipment, 0.001)
	assert.InDelta(t, 2163.20, got.GrandTotal, 0.001)
}

func TestGrandTotalIdentityAfterMutations(t *testing.T) {
	s := newTestSession(t)
	m := addFlooring(t, s)
	addExcavator(t, s)

	lin := model.NewLaborTradeInput()
	lin.TradeName = "Electrician"
	lin.Rate, lin.Hours, lin.Workers = "80", "20", "2"
	trade, err := s.AddLaborTrade(lin)
	require.NoError(t, err)

	check := func() {
		sum := s.TotalMaterialCost() + s.TotalProjectLaborCost() + s.TotalEquipmentCost()
		assert.InDelta(t, sum, s.GrandTotal(), 0.001)
	}

	check()
	s.RemoveMaterial(m.ID)
	check()
	s.RemoveLaborTrade(trade.ID)
	check()
}

func TestUnitSystemRoundTrip(t *testing.T) {
	s := newTestSession(t)
	m := addFlooring(t, s)

	s.SetUnitSystem(model.UnitMetric)

	spec := s.Materials()[0].Spec.(model.AreaSpec)
	assert.Equal(t, model.UnitMetric, spec.System)
	assert.InDelta(t, 3.05, spec.Length, 0.001) // 10 ft, display-rounded

	s.SetUnitSystem(model.UnitImperial)

	spec = s.Materials()[0].Spec.(model.AreaSpec)
	assert.Equal(t, model.UnitImperial, spec.System)
	// Back within the two-decimal display tolerance.
	assert.InDelta(t, 10, spec.Length, 0.01)
	assert.InDelta(t, 10, spec.Width, 0.01)
	assert.Equal(t, m.ID, s.Materials()[0].ID)
}

func TestUnitSwitchLeavesNonDimensionalSpecs(t *testing.T) {
	s := newTestSession(t)

	in := model.NewMaterialInput()
	in.Type = model.CalcUnits
	in.Name = "Doors"
	in.Quantity = "8"
	in.CostPerUnit = "250"
	_, err := s.AddMaterial(in)
	require.NoError(t, err)

	before := s.TotalMaterialCost()
	s.SetUnitSystem(model.UnitMetric)

	spec := s.Materials()[0].Spec.(model.UnitsSpec)
	assert.Equal(t, 8.0, spec.Quantity)
	assert.InDelta(t, before, s.TotalMaterialCost(), 0.001)
}

func TestSetUnitSystemSameSystemIsNoOp(t *testing.T) {
	s := newTestSession(t)
	addFlooring(t, s)

	s.SetUnitSystem(model.UnitImperial)

	spec := s.Materials()[0].Spec.(model.AreaSpec)
	assert.Equal(t, 10.0, spec.Length)
}

func TestIDsAreUniqueAcrossCollections(t *testing.T) {
	s := newTestSession(t)
	m := addFlooring(t, s)
	e := addExcavator(t, s)

	assert.Equal(t, "m-1", m.ID)
	assert.Equal(t, "e-2", e.ID)
	assert.NotEqual(t, m.ID, e.ID)
}

func TestAccessorsReturnCopies(t *testing.T) {
	s := newTestSession(t)
	addFlooring(t, s)

	mats := s.Materials()
	mats[0].Name = "tampered"

	assert.Equal(t, "Flooring", s.Materials()[0].Name)
}
