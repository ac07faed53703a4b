package session

import (
	"github.com/costwise/costwise/internal/common"
	"github.com/costwise/costwise/internal/model"
)

// AddMaterial validates the input under the active unit system and, on
// success, stores the new material and refreshes the automated forecast
// entries. On a validation failure nothing is created and the caller
// keeps the unsaved input for correction.
func (s *Session) AddMaterial(in model.MaterialInput) (model.Material, error) {
	if err := in.Validate(s.units); err != nil {
		return model.Material{}, err
	}

	m := in.Material(s.units)
	m.ID = s.newID("m")
	s.materials = append(s.materials, m)
	s.syncForecast()

	common.LogDebug("material added", common.Fields{"id": m.ID, "name": m.Name, "type": m.Spec.CalculationType()})
	return m, nil
}

// RemoveMaterial deletes a material and strips its identity from every
// schedule task that had it assigned. Unknown identities are ignored.
func (s *Session) RemoveMaterial(id string) {
	s.materials = removeByID(s.materials, id, func(m model.Material) string { return m.ID })

	for i := range s.scheduleTasks {
		s.scheduleTasks[i].AssignedMaterialIDs = dropID(s.scheduleTasks[i].AssignedMaterialIDs, id)
	}
	s.syncForecast()

	common.LogDebug("material removed", common.Fields{"id": id})
}

// AddEquipment validates and stores a new equipment item, then refreshes
// the automated forecast entries.
func (s *Session) AddEquipment(in model.EquipmentInput) (model.Equipment, error) {
	if err := in.Validate(); err != nil {
		return model.Equipment{}, err
	}

	e := in.Equipment()
	e.ID = s.newID("e")
	s.equipment = append(s.equipment, e)
	s.syncForecast()

	common.LogDebug("equipment added", common.Fields{"id": e.ID, "name": e.Name, "type": e.Type})
	return e, nil
}

// RemoveEquipment deletes an equipment item and strips its identity from
// every schedule task that had it assigned.
func (s *Session) RemoveEquipment(id string) {
	s.equipment = removeByID(s.equipment, id, func(e model.Equipment) string { return e.ID })

	for i := range s.scheduleTasks {
		s.scheduleTasks[i].AssignedEquipmentIDs = dropID(s.scheduleTasks[i].AssignedEquipmentIDs, id)
	}
	s.syncForecast()

	common.LogDebug("equipment removed", common.Fields{"id": id})
}

// AddLaborTrade validates and stores a new project-level labor trade,
// then refreshes the automated forecast entries.
func (s *Session) AddLaborTrade(in model.LaborTradeInput) (model.LaborTrade, error) {
	if err := in.Validate(); err != nil {
		return model.LaborTrade{}, err
	}

	t := in.LaborTrade()
	t.ID = s.newID("lt")
	s.laborTrades = append(s.laborTrades, t)
	s.syncForecast()

	common.LogDebug("labor trade added", common.Fields{"id": t.ID, "trade": t.TradeName})
	return t, nil
}

// RemoveLaborTrade deletes a labor trade.
func (s *Session) RemoveLaborTrade(id string) {
	s.laborTrades = removeByID(s.laborTrades, id, func(t model.LaborTrade) string { return t.ID })
	s.syncForecast()

	common.LogDebug("labor trade removed", common.Fields{"id": id})
}

// AddScheduleTask validates and stores a new schedule task. Assigned
// material and equipment identities that no longer exist are dropped
// rather than stored dangling.
func (s *Session) AddScheduleTask(in model.ScheduleTaskInput) (model.ScheduleTask, error) {
	if err := in.Validate(); err != nil {
		return model.ScheduleTask{}, err
	}

	t := in.ScheduleTask()
	t.ID = s.newID("st")
	t.AssignedMaterialIDs = s.existingMaterialIDs(t.AssignedMaterialIDs)
	t.AssignedEquipmentIDs = s.existingEquipmentIDs(t.AssignedEquipmentIDs)
	s.scheduleTasks = append(s.scheduleTasks, t)

	common.LogDebug("schedule task added", common.Fields{"id": t.ID, "task": t.TaskName})
	return t, nil
}

// RemoveScheduleTask deletes a task and strips its identity from every
// forecast item that had it assigned.
func (s *Session) RemoveScheduleTask(id string) {
	s.scheduleTasks = removeByID(s.scheduleTasks, id, func(t model.ScheduleTask) string { return t.ID })

	for i := range s.forecastCosts {
		s.forecastCosts[i].AssignedTaskIDs = dropID(s.forecastCosts[i].AssignedTaskIDs, id)
	}

	common.LogDebug("schedule task removed", common.Fields{"id": id})
}

// AddForecastCost validates and stores a manual forecast line item.
func (s *Session) AddForecastCost(in model.ForecastCostInput) (model.ForecastCost, error) {
	if err := in.Validate(); err != nil {
		return model.ForecastCost{}, err
	}

	f := in.ForecastCost()
	f.ID = s.newID("fc")
	f.AssignedTaskIDs = s.existingTaskIDs(f.AssignedTaskIDs)
	// Manual items precede the automated block.
	s.forecastCosts = append(manualForecasts(s.forecastCosts), f)
	s.syncForecast()

	common.LogDebug("forecast cost added", common.Fields{"id": f.ID, "name": f.CostName, "category": f.Category})
	return f, nil
}

// RemoveForecastCost deletes a manual forecast item. The automated
// entries are protected: removing one is silently a no-op.
func (s *Session) RemoveForecastCost(id string) {
	if model.IsAutomatedForecastID(id) {
		common.LogDebug("ignoring removal of automated forecast entry", common.Fields{"id": id, "error": common.ErrProtectedEntity.Error()})
		return
	}
	s.forecastCosts = removeByID(s.forecastCosts, id, func(f model.ForecastCost) string { return f.ID })

	common.LogDebug("forecast cost removed", common.Fields{"id": id})
}

// AddSubcontractor validates and stores a new subcontractor.
func (s *Session) AddSubcontractor(in model.SubcontractorInput) (model.Subcontractor, error) {
	if err := in.Validate(); err != nil {
		return model.Subcontractor{}, err
	}

	sc := in.Subcontractor()
	sc.ID = s.newID("sc")
	s.subcontractors = append(s.subcontractors, sc)

	common.LogDebug("subcontractor added", common.Fields{"id": sc.ID, "name": sc.Name})
	return sc, nil
}

// RemoveSubcontractor deletes a subcontractor and resets every material,
// labor trade, equipment item and schedule task that referenced it back
// to unassigned. The referencing entities themselves survive.
func (s *Session) RemoveSubcontractor(id string) {
	s.subcontractors = removeByID(s.subcontractors, id, func(sc model.Subcontractor) string { return sc.ID })

	for i := range s.materials {
		if s.materials[i].SubcontractorID == id {
			s.materials[i].SubcontractorID = ""
		}
	}
	for i := range s.laborTrades {
		if s.laborTrades[i].SubcontractorID == id {
			s.laborTrades[i].SubcontractorID = ""
		}
	}
	for i := range s.equipment {
		if s.equipment[i].SubcontractorID == id {
			s.equipment[i].SubcontractorID = ""
		}
	}
	for i := range s.scheduleTasks {
		if s.scheduleTasks[i].SubcontractorID == id {
			s.scheduleTasks[i].SubcontractorID = ""
		}
	}

	common.LogDebug("subcontractor removed", common.Fields{"id": id})
}

func (s *Session) existingMaterialIDs(ids []string) []string {
	var out []string
	for _, id := range ids {
		if _, ok := s.MaterialName(id); ok {
			out = append(out, id)
		}
	}
	return out
}

func (s *Session) existingEquipmentIDs(ids []string) []string {
	var out []string
	for _, id := range ids {
		if _, ok := s.EquipmentName(id); ok {
			out = append(out, id)
		}
	}
	return out
}

func (s *Session) existingTaskIDs(ids []string) []string {
	var out []string
	for _, id := range ids {
		for _, t := range s.scheduleTasks {
			if t.ID == id {
				out = append(out, id)
				break
			}
		}
	}
	return out
}

func removeByID[T any](items []T, id string, key func(T) string) []T {
	out := items[:0]
	for _, item := range items {
		if key(item) != id {
			out = append(out, item)
		}
	}
	return out
}

func dropID(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
