// Package sizing - Conductor selection
package sizing

import (
	"github.com/shopspring/decimal"

	"cablesize/core/tables"
	"cablesize/core/types"
	"cablesize/internal/errors"
)

// Selector drives the sizing decision: the smallest tabulated size
// satisfying both the derated-ampacity and the voltage-drop constraint,
// searched in table order. Selection is deterministic and bounded by
// the standard's fixed table length.
type Selector struct {
	tables   *tables.Tables
	resolver *Resolver
	composer *Composer
	voltage  *Calculator
	reporter *Reporter
}

// NewSelector wires a selector and its sub-components over one table set
func NewSelector(t *tables.Tables) *Selector {
	return &Selector{
		tables:   t,
		resolver: NewResolver(t),
		composer: NewComposer(t),
		voltage:  NewCalculator(t),
		reporter: NewReporter(),
	}
}

// NewDefaultSelector wires a selector over the process-wide tables
func NewDefaultSelector() *Selector {
	return NewSelector(tables.Default())
}

// candidate is one evaluated size
type candidate struct {
	size       types.Size
	resolution Resolution
	derated    decimal.Decimal
	drop       Drop
	ampacityOk bool
	voltageOk  bool
}

// Select picks the recommended size for a pre-validated input.
//
// A lookup miss on an individual size skips that size and continues the
// search: a missing table row (aluminum below its smallest tabulated
// size, say) must not block finding a larger compliant one. Exhausting
// the table is NOT an error; it returns the largest evaluable size
// flagged non-compliant, since "no compliant standard size exists" is
// actionable engineering information.
func (s *Selector) Select(in *types.CableSizingInput) (*types.CableSizingResult, error) {
	derating, err := s.composer.Compose(in.Standard, in.AmbientTempC, in.InsulationRating, in.ConductorCount, in.InstallationMethod)
	if err != nil {
		return nil, err
	}

	// An explicit size is evaluated alone: report its compliance
	// rather than searching.
	if in.ExplicitSize != "" {
		cand, err := s.evaluate(in, derating, in.ExplicitSize)
		if err != nil {
			return nil, err
		}
		return s.reporter.Build(in, cand, derating, nil), nil
	}

	sizes, err := s.tables.Sizes(in.Standard)
	if err != nil {
		return nil, err
	}

	var last *candidate
	for _, size := range sizes {
		cand, err := s.evaluate(in, derating, size)
		if err != nil {
			if errors.IsLookup(err) {
				continue
			}
			return nil, err
		}
		last = &cand
		if cand.ampacityOk && cand.voltageOk {
			return s.reporter.Build(in, cand, derating, nil), nil
		}
	}

	if last == nil {
		return nil, errors.Lookup("size",
			string(in.Standard)+"/"+string(in.Material)+": no tabulated size for input")
	}

	// Exhausted: the largest evaluable size, flagged non-compliant,
	// with a warning naming the constraint(s) still failing there.
	return s.reporter.Build(in, *last, derating, s.reporter.ExhaustionWarnings(*last)), nil
}

// evaluate runs both constraint checks for one size
func (s *Selector) evaluate(in *types.CableSizingInput, derating types.DeratingFactor, size types.Size) (candidate, error) {
	res, err := s.resolver.Resolve(in.Standard, in.Material, in.InsulationRating, size)
	if err != nil {
		return candidate{}, err
	}

	drop, err := s.voltage.Drop(in.CurrentAmps, in.Length, size, in.Material, in.CircuitType, in.Standard, in.SystemVoltage)
	if err != nil {
		return candidate{}, err
	}

	derated := res.BaseAmpacity.Mul(derating.TotalFactor)

	cand := candidate{
		size:       size,
		resolution: res,
		derated:    derated,
		drop:       drop,
		ampacityOk: derated.GreaterThanOrEqual(decimal.NewFromFloat(in.CurrentAmps)),
		// Without a system voltage there is no percent to hold against
		// the limit; the drop is reported in volts only.
		voltageOk: true,
	}
	if drop.Percent != nil {
		cand.voltageOk = drop.Percent.LessThanOrEqual(decimal.NewFromFloat(in.MaxDropPercent()))
	}
	return cand, nil
}
