package sizing

import (
	"testing"

	"github.com/shopspring/decimal"

	"cablesize/core/tables"
	"cablesize/core/types"
	"cablesize/internal/errors"
)

func approx(t *testing.T, name string, got decimal.Decimal, want, tol float64) {
	t.Helper()
	if got.Sub(decimal.NewFromFloat(want)).Abs().GreaterThan(decimal.NewFromFloat(tol)) {
		t.Errorf("%s = %s, want %v (tolerance %v)", name, got, want, tol)
	}
}

func TestDropIECSinglePhase(t *testing.T) {
	// 30 A over 50 m of 6 mm2 copper (3.08 mV/A/m), round trip:
	// 2 * 30 * 50 * 3.08 / 1000 = 9.24 V
	calc := NewCalculator(tables.Default())

	drop, err := calc.Drop(30, types.Meters(50), "6", types.MaterialCopper,
		types.CircuitSinglePhase, types.StandardIEC, 230)
	if err != nil {
		t.Fatalf("Drop: %v", err)
	}

	approx(t, "volts", drop.Volts, 9.24, 0.001)
	if drop.Percent == nil {
		t.Fatal("percent missing despite system voltage")
	}
	approx(t, "percent", *drop.Percent, 4.017, 0.01)
}

func TestDropIECThreePhase(t *testing.T) {
	// 50 A over 100 m of 16 mm2 copper (1.15 mV/A/m), three phase:
	// sqrt(3) * 50 * 100 * 1.15 / 1000 = 9.96 V
	calc := NewCalculator(tables.Default())

	drop, err := calc.Drop(50, types.Meters(100), "16", types.MaterialCopper,
		types.CircuitThreePhase, types.StandardIEC, 400)
	if err != nil {
		t.Fatalf("Drop: %v", err)
	}

	approx(t, "volts", drop.Volts, 9.96, 0.01)
}

func TestDropNECUsesFeetColumn(t *testing.T) {
	// 100 A over 150 ft of 2 AWG copper (0.194 ohm/kft):
	// 2 * 100 * 150 * 0.194 / 1000 = 5.82 V
	calc := NewCalculator(tables.Default())

	drop, err := calc.Drop(100, types.Feet(150), "2", types.MaterialCopper,
		types.CircuitSinglePhase, types.StandardNEC, 240)
	if err != nil {
		t.Fatalf("Drop: %v", err)
	}

	approx(t, "volts", drop.Volts, 5.82, 0.001)
	approx(t, "percent", *drop.Percent, 2.425, 0.001)
}

func TestDropPercentOmittedWithoutSystemVoltage(t *testing.T) {
	calc := NewCalculator(tables.Default())

	drop, err := calc.Drop(30, types.Meters(50), "6", types.MaterialCopper,
		types.CircuitSinglePhase, types.StandardIEC, 0)
	if err != nil {
		t.Fatalf("Drop: %v", err)
	}
	if drop.Percent != nil {
		t.Errorf("percent = %s, want omitted", drop.Percent)
	}
}

func TestDropIsLinearInCurrentAndLength(t *testing.T) {
	calc := NewCalculator(tables.Default())

	base, err := calc.Drop(20, types.Meters(40), "10", types.MaterialCopper,
		types.CircuitSinglePhase, types.StandardIEC, 230)
	if err != nil {
		t.Fatalf("Drop: %v", err)
	}
	doubled, err := calc.Drop(40, types.Meters(40), "10", types.MaterialCopper,
		types.CircuitSinglePhase, types.StandardIEC, 230)
	if err != nil {
		t.Fatalf("Drop: %v", err)
	}

	if !doubled.Volts.Equal(base.Volts.Mul(decimal.NewFromInt(2))) {
		t.Errorf("doubling current: %s != 2 * %s", doubled.Volts, base.Volts)
	}

	// Percent is invariant to doubling voltage and volts together
	halfLoad, err := calc.Drop(20, types.Meters(80), "10", types.MaterialCopper,
		types.CircuitSinglePhase, types.StandardIEC, 460)
	if err != nil {
		t.Fatalf("Drop: %v", err)
	}
	if !halfLoad.Percent.Equal(*base.Percent) {
		t.Errorf("percent not invariant: %s != %s", halfLoad.Percent, base.Percent)
	}
}

func TestDropUnknownSizeIsLookupError(t *testing.T) {
	calc := NewCalculator(tables.Default())

	_, err := calc.Drop(30, types.Meters(50), "9000", types.MaterialCopper,
		types.CircuitSinglePhase, types.StandardIEC, 230)
	if !errors.IsLookup(err) {
		t.Errorf("want lookup error, got %v", err)
	}
}
