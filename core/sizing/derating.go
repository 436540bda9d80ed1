// Package sizing - Derating composition
package sizing

import (
	"github.com/shopspring/decimal"

	"cablesize/core/tables"
	"cablesize/core/types"
)

// Composer combines ambient-temperature and grouping corrections into a
// single multiplier, per each standard's bucketing rules. Out-of-range
// ambients and conductor counts are lookup errors, never silently
// clamped: a clamped factor would misrepresent compliance.
type Composer struct {
	tables *tables.Tables
}

// NewComposer creates a composer over a table set
func NewComposer(t *tables.Tables) *Composer {
	return &Composer{tables: t}
}

// Compose produces the derating factor set for one request
func (c *Composer) Compose(std types.Standard, ambientC float64, rating, conductorCount int, method types.InstallationMethod) (types.DeratingFactor, error) {
	tempFactor, err := c.tables.TemperatureFactor(std, rating, ambientC)
	if err != nil {
		return types.DeratingFactor{}, err
	}

	var groupFactor float64
	switch std {
	case types.StandardNEC:
		// The NEC buckets strictly by raw conductor count
		groupFactor, err = c.tables.NECGroupingFactor(conductorCount)
	default:
		// The IEC groups by circuits, three conductors to a circuit,
		// per installation-method row. Counts not divisible by three
		// round up: a partial circuit heats like a whole one.
		circuits := (conductorCount + 2) / 3
		groupFactor, err = c.tables.IECGroupingFactor(method, circuits)
	}
	if err != nil {
		return types.DeratingFactor{}, err
	}

	temp := decimal.NewFromFloat(tempFactor)
	group := decimal.NewFromFloat(groupFactor)
	total := temp.Mul(group)
	if total.GreaterThan(decimal.NewFromInt(1)) {
		total = decimal.NewFromInt(1)
	}

	return types.DeratingFactor{
		TemperatureFactor: temp,
		GroupingFactor:    group,
		TotalFactor:       total,
		StandardReference: deratingReference(std),
	}, nil
}

// deratingReference cites the tables the factors come from
func deratingReference(std types.Standard) string {
	if std == types.StandardNEC {
		return "NEC Table 310.15(B)(2)(a); NEC Table 310.15(C)(1)"
	}
	return "IEC 60364-5-52 Table B.52.14; IEC 60364-5-52 Table B.52.17"
}
