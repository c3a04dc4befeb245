// Package types - Machine profiles
package types

import "github.com/shopspring/decimal"

// MachineProfile is the physical profile of a press. When a profile with a
// positive rated speed is available, printing cost is modeled from machine
// physics; otherwise the legacy impression-rate chart is used.
type MachineProfile struct {
	// ID uniquely identifies the machine
	ID string `json:"id"`

	// Name is the display/class name (e.g. "Heidelberg SM102")
	Name string `json:"name"`

	// Class is the resolved machine class for legacy rate lookups
	Class MachineClass `json:"class"`

	// MaxSheetWidthMM and MaxSheetHeightMM bound the press sheet
	MaxSheetWidthMM  float64 `json:"max_sheet_width_mm"`
	MaxSheetHeightMM float64 `json:"max_sheet_height_mm"`

	// GripMarginMM is lost to the gripper edge; SideMarginMM to each side
	GripMarginMM float64 `json:"grip_margin_mm"`
	SideMarginMM float64 `json:"side_margin_mm"`

	// SpeedSheetsPerHour is the rated running speed
	SpeedSheetsPerHour float64 `json:"speed_sheets_per_hour"`

	// HourlyRate is the base machine-hour rate
	HourlyRate decimal.Decimal `json:"hourly_rate"`

	// InkCostPerHour is the consumable ink cost per running hour
	InkCostPerHour decimal.Decimal `json:"ink_cost_per_hour"`

	// PowerKW is the power draw while running
	PowerKW float64 `json:"power_kw"`

	// ElectricityRate is the cost per kWh
	ElectricityRate decimal.Decimal `json:"electricity_rate"`

	// MakeReadyCost is the flat per-form setup cost
	MakeReadyCost decimal.Decimal `json:"make_ready_cost"`

	// MakeReadyHours is the setup time per form
	MakeReadyHours float64 `json:"make_ready_hours"`
}

// HasPhysics reports whether the physics-based costing path applies
func (m *MachineProfile) HasPhysics() bool {
	return m != nil && m.SpeedSheetsPerHour > 0 && !m.HourlyRate.IsNegative()
}

// HourlyCost is the all-in running cost per hour:
// base rate + ink + power draw * electricity rate.
func (m *MachineProfile) HourlyCost() decimal.Decimal {
	power := decimal.NewFromFloat(m.PowerKW).Mul(m.ElectricityRate)
	return m.HourlyRate.Add(m.InkCostPerHour).Add(power)
}

// MachineSet is a read-only collection of machine profiles keyed by ID.
// It is supplied by the rate-management store; the engine never mutates it.
type MachineSet map[string]*MachineProfile

// Lookup finds a profile by ID or name, returning nil when absent.
// A nil result routes costing to the legacy table path.
func (s MachineSet) Lookup(idOrName string) *MachineProfile {
	if m, ok := s[idOrName]; ok {
		return m
	}
	for _, m := range s {
		if m.Name == idOrName {
			return m
		}
	}
	return nil
}
