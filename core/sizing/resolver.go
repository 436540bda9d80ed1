// Package sizing implements the cable sizing decision engine.
// Everything in this package is a pure, deterministic function of its
// input plus the immutable standard tables: no I/O, no hidden state,
// safe for unbounded concurrent use.
package sizing

import (
	"github.com/shopspring/decimal"

	"cablesize/core/tables"
	"cablesize/core/types"
)

// Resolution is a resolved ampacity/resistance pair for one size
type Resolution struct {
	// BaseAmpacity is the raw table ampacity in amps
	BaseAmpacity decimal.Decimal

	// Resistance is the per-unit-length resistance in ohms per 1000
	// native length units (ohm/km for IEC, ohm/kft for NEC)
	Resistance decimal.Decimal
}

// Resolver resolves base ampacity and per-unit resistance for an exact
// (standard, material, insulation rating, size) tuple. No interpolation
// between ratings or sizes is performed; callers must pick tabulated
// ratings and sizes only.
type Resolver struct {
	tables *tables.Tables
}

// NewResolver creates a resolver over a table set
func NewResolver(t *tables.Tables) *Resolver {
	return &Resolver{tables: t}
}

// Resolve looks up the tuple, returning a lookup error when any part of
// it is absent from the standard's tables
func (r *Resolver) Resolve(std types.Standard, mat types.Material, rating int, size types.Size) (Resolution, error) {
	amps, err := r.tables.Ampacity(std, mat, rating, size)
	if err != nil {
		return Resolution{}, err
	}
	res, err := r.tables.Resistance(std, mat, size)
	if err != nil {
		return Resolution{}, err
	}
	return Resolution{
		BaseAmpacity: decimal.NewFromFloat(amps),
		Resistance:   decimal.NewFromFloat(res),
	}, nil
}
