// Package sizing - Voltage drop calculation
package sizing

import (
	"math"

	"github.com/shopspring/decimal"

	"cablesize/core/tables"
	"cablesize/core/types"
)

var (
	two      = decimal.NewFromInt(2)
	sqrt3    = decimal.NewFromFloat(math.Sqrt(3))
	thousand = decimal.NewFromInt(1000)
	hundred  = decimal.NewFromInt(100)
)

// Drop is a computed voltage drop
type Drop struct {
	// Volts is the absolute drop
	Volts decimal.Decimal

	// Percent is the drop relative to system voltage; nil when no
	// system voltage was supplied
	Percent *decimal.Decimal
}

// Calculator computes voltage drop for a candidate size.
//
// volts = multiplier * I * L * R / 1000, with multiplier 2 for
// single-phase round trips and sqrt(3) for three-phase. The length
// must already be in the standard's native unit (meters for IEC,
// feet for NEC); the calculator performs no unit conversion.
type Calculator struct {
	tables *tables.Tables
}

// NewCalculator creates a calculator over a table set
func NewCalculator(t *tables.Tables) *Calculator {
	return &Calculator{tables: t}
}

// CircuitMultiplier returns the topology multiplier
func CircuitMultiplier(circuit types.CircuitType) decimal.Decimal {
	if circuit == types.CircuitThreePhase {
		return sqrt3
	}
	return two
}

// Drop computes the voltage drop for one size. systemVoltage of zero
// means "not supplied" and leaves Percent nil rather than zero.
func (c *Calculator) Drop(currentAmps float64, length types.Length, size types.Size, mat types.Material, circuit types.CircuitType, std types.Standard, systemVoltage float64) (Drop, error) {
	resistance, err := c.tables.Resistance(std, mat, size)
	if err != nil {
		return Drop{}, err
	}

	volts := CircuitMultiplier(circuit).
		Mul(decimal.NewFromFloat(currentAmps)).
		Mul(decimal.NewFromFloat(length.Value)).
		Mul(decimal.NewFromFloat(resistance)).
		Div(thousand)

	d := Drop{Volts: volts}
	if systemVoltage > 0 {
		percent := volts.Mul(hundred).Div(decimal.NewFromFloat(systemVoltage))
		d.Percent = &percent
	}
	return d, nil
}
