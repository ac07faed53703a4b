// Package session owns the in-memory state of one estimating session:
// every entity collection, the active unit system, and the display
// settings. There is no persistence; the session's lifetime is the
// lifetime of the running program.
//
// All mutation goes through explicit add/remove methods. Each mutating
// method runs its reactive follow-ups itself — forecast synchronization
// and dangling-reference cleanup happen synchronously before the method
// returns, so callers always observe fully-settled state.
package session

import (
	"fmt"

	"github.com/costwise/costwise/internal/common"
	"github.com/costwise/costwise/internal/locale"
	"github.com/costwise/costwise/internal/model"
	"github.com/costwise/costwise/internal/units"
)

// Session is the single owning store for an estimating session.
type Session struct {
	currency locale.Currency
	language locale.Language
	units    model.UnitSystem

	materials      []model.Material
	equipment      []model.Equipment
	laborTrades    []model.LaborTrade
	scheduleTasks  []model.ScheduleTask
	forecastCosts  []model.ForecastCost
	subcontractors []model.Subcontractor

	nextID int
}

// Config holds the display defaults a session starts with.
type Config struct {
	Units    model.UnitSystem
	Currency locale.Currency
	Language locale.Language
}

// DefaultConfig returns the defaults used when nothing is configured:
// imperial units, US dollars, English display.
func DefaultConfig() Config {
	return Config{
		Units:    model.UnitImperial,
		Currency: locale.USD,
		Language: locale.English,
	}
}

// New creates an empty session. The three automated forecast entries
// exist from the start, at zero.
func New(cfg Config) *Session {
	if cfg.Units == "" {
		cfg.Units = model.UnitImperial
	}
	if cfg.Currency.Code == "" {
		cfg.Currency = locale.USD
	}
	if cfg.Language == "" {
		cfg.Language = locale.English
	}
	s := &Session{
		units:    cfg.Units,
		currency: cfg.Currency,
		language: cfg.Language,
	}
	s.syncForecast()
	return s
}

// UnitSystem returns the active unit system.
func (s *Session) UnitSystem() model.UnitSystem { return s.units }

// Currency returns the display currency.
func (s *Session) Currency() locale.Currency { return s.currency }

// Language returns the display language.
func (s *Session) Language() locale.Language { return s.language }

// Formatter returns a money formatter for the current display settings.
func (s *Session) Formatter() locale.Formatter {
	return locale.NewFormatter(s.language, s.currency)
}

// SetCurrency changes the display currency and refreshes the automated
// forecast entries, whose names track the display settings.
func (s *Session) SetCurrency(c locale.Currency) {
	s.currency = c
	s.syncForecast()
}

// SetLanguage changes the display language and refreshes the automated
// forecast entries.
func (s *Session) SetLanguage(l locale.Language) {
	s.language = l
	s.syncForecast()
}

// SetUnitSystem switches between imperial and metric. Every material's
// populated dimension set is converted to the new system (rounded to two
// decimals, the display convention); units and concrete materials carry
// no length dimensions and stay untouched. Equipment is unaffected.
func (s *Session) SetUnitSystem(newUnits model.UnitSystem) {
	if newUnits == s.units {
		return
	}

	for i, m := range s.materials {
		s.materials[i].Spec = convertSpec(m.Spec, newUnits)
	}
	s.units = newUnits
	s.syncForecast()

	common.LogDebug("unit system switched", common.Fields{"units": newUnits})
}

func convertSpec(spec model.MaterialSpec, to model.UnitSystem) model.MaterialSpec {
	switch v := spec.(type) {
	case model.AreaSpec:
		if v.System == to {
			return v
		}
		return model.AreaSpec{
			System: to,
			Length: convertDim(v.Length, v.System),
			Width:  convertDim(v.Width, v.System),
			Height: convertDim(v.Height, v.System),
		}
	case model.LinearSpec:
		if v.System == to {
			return v
		}
		return model.LinearSpec{
			System: to,
			Length: convertDim(v.Length, v.System),
		}
	case model.BeamsSpec:
		if v.System == to {
			return v
		}
		return model.BeamsSpec{
			System:     to,
			BeamLength: convertDim(v.BeamLength, v.System),
			BeamWidth:  convertDim(v.BeamWidth, v.System),
			BeamHeight: convertDim(v.BeamHeight, v.System),
			TotalSpan:  convertDim(v.TotalSpan, v.System),
			Spacing:    convertDim(v.Spacing, v.System),
		}
	default:
		return spec
	}
}

// convertDim converts one stored dimension out of its current system,
// keeping the stored two-decimal display convention. Zero means the
// field was never populated and stays zero.
func convertDim(v float64, from model.UnitSystem) float64 {
	if v == 0 {
		return 0
	}
	if from == model.UnitImperial {
		return units.Round2(units.FeetToMeters(v))
	}
	return units.Round2(units.MetersToFeet(v))
}

// newID returns a creation-ordered opaque identity.
func (s *Session) newID(prefix string) string {
	s.nextID++
	return fmt.Sprintf("%s-%d", prefix, s.nextID)
}

// Materials returns a copy of the material collection in creation order.
func (s *Session) Materials() []model.Material {
	return append([]model.Material(nil), s.materials...)
}

// Equipment returns a copy of the equipment collection in creation order.
func (s *Session) Equipment() []model.Equipment {
	return append([]model.Equipment(nil), s.equipment...)
}

// LaborTrades returns a copy of the labor trade collection.
func (s *Session) LaborTrades() []model.LaborTrade {
	return append([]model.LaborTrade(nil), s.laborTrades...)
}

// ScheduleTasks returns a copy of the schedule task collection.
func (s *Session) ScheduleTasks() []model.ScheduleTask {
	return append([]model.ScheduleTask(nil), s.scheduleTasks...)
}

// ForecastCosts returns a copy of the forecast collection, manual items
// first in entry order, then the three automated entries.
func (s *Session) ForecastCosts() []model.ForecastCost {
	return append([]model.ForecastCost(nil), s.forecastCosts...)
}

// Subcontractors returns a copy of the subcontractor collection.
func (s *Session) Subcontractors() []model.Subcontractor {
	return append([]model.Subcontractor(nil), s.subcontractors...)
}

// MaterialName resolves a material identity to its display name.
func (s *Session) MaterialName(id string) (string, bool) {
	for _, m := range s.materials {
		if m.ID == id {
			return m.Name, true
		}
	}
	return "", false
}

// EquipmentName resolves an equipment identity to its display name.
func (s *Session) EquipmentName(id string) (string, bool) {
	for _, e := range s.equipment {
		if e.ID == id {
			return e.Name, true
		}
	}
	return "", false
}

// SubcontractorName resolves a subcontractor identity to its display
// name.
func (s *Session) SubcontractorName(id string) (string, bool) {
	for _, sc := range s.subcontractors {
		if sc.ID == id {
			return sc.Name, true
		}
	}
	return "", false
}
