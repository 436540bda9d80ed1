package tables

import (
	"testing"

	"cablesize/core/types"
	"cablesize/internal/errors"
)

func TestNECCopperAmpacity(t *testing.T) {
	tbl := Default()

	cases := []struct {
		size   types.Size
		rating int
		want   float64
	}{
		{"14", 60, 15},
		{"14", 75, 20},
		{"12", 60, 20},
		{"6", 75, 65},
		{"1/0", 75, 150},
		{"500", 90, 430},
	}
	for _, tc := range cases {
		got, err := tbl.Ampacity(types.StandardNEC, types.MaterialCopper, tc.rating, tc.size)
		if err != nil {
			t.Fatalf("Ampacity(%s, %dC): %v", tc.size, tc.rating, err)
		}
		if got != tc.want {
			t.Errorf("Ampacity(%s, %dC) = %v, want %v", tc.size, tc.rating, got, tc.want)
		}
	}
}

func TestIECResistanceMatchesIEC60228(t *testing.T) {
	tbl := Default()

	cases := []struct {
		size types.Size
		want float64
	}{
		{"1.5", 12.1},
		{"6", 3.08},
		{"16", 1.15},
		{"300", 0.0601},
	}
	for _, tc := range cases {
		got, err := tbl.Resistance(types.StandardIEC, types.MaterialCopper, tc.size)
		if err != nil {
			t.Fatalf("Resistance(%s): %v", tc.size, err)
		}
		if got != tc.want {
			t.Errorf("Resistance(%s) = %v, want %v", tc.size, got, tc.want)
		}
	}
}

func TestAluminumBelowSmallestTabulatedSizeIsLookupError(t *testing.T) {
	tbl := Default()

	if _, err := tbl.Ampacity(types.StandardNEC, types.MaterialAluminum, 60, "14"); !errors.IsLookup(err) {
		t.Errorf("NEC aluminum 14 AWG: want lookup error, got %v", err)
	}
	if _, err := tbl.Ampacity(types.StandardIEC, types.MaterialAluminum, 70, "6"); !errors.IsLookup(err) {
		t.Errorf("IEC aluminum 6 mm2: want lookup error, got %v", err)
	}
	if _, err := tbl.Resistance(types.StandardIEC, types.MaterialAluminum, "1.5"); !errors.IsLookup(err) {
		t.Errorf("IEC aluminum 1.5 mm2 resistance: want lookup error, got %v", err)
	}
}

func TestUnknownSizeIsLookupError(t *testing.T) {
	tbl := Default()

	// AWG designations do not exist in the IEC table and vice versa
	if _, err := tbl.Ampacity(types.StandardIEC, types.MaterialCopper, 70, "1/0"); !errors.IsLookup(err) {
		t.Errorf("IEC 1/0: want lookup error, got %v", err)
	}
	if _, err := tbl.Ampacity(types.StandardNEC, types.MaterialCopper, 60, "2.5"); !errors.IsLookup(err) {
		t.Errorf("NEC 2.5: want lookup error, got %v", err)
	}
}

func TestUnknownInsulationRatingIsLookupError(t *testing.T) {
	tbl := Default()

	// 75 C is a NEC rating, not an IEC one; no interpolation
	if _, err := tbl.Ampacity(types.StandardIEC, types.MaterialCopper, 75, "6"); !errors.IsLookup(err) {
		t.Errorf("IEC 75C: want lookup error, got %v", err)
	}
}

func TestTemperatureFactorReferenceAmbientIsUnity(t *testing.T) {
	tbl := Default()

	for _, std := range []types.Standard{types.StandardIEC, types.StandardNEC} {
		for _, rating := range tbl.InsulationRatings(std) {
			got, err := tbl.TemperatureFactor(std, rating, 30)
			if err != nil {
				t.Fatalf("TemperatureFactor(%s, %dC, 30): %v", std, rating, err)
			}
			if got != 1.0 {
				t.Errorf("TemperatureFactor(%s, %dC, 30) = %v, want 1.0", std, rating, got)
			}
		}
	}
}

func TestTemperatureFactorBuckets(t *testing.T) {
	tbl := Default()

	cases := []struct {
		std     types.Standard
		rating  int
		ambient float64
		want    float64
	}{
		{types.StandardNEC, 75, 40, 0.88},
		{types.StandardNEC, 60, 35, 0.91},
		{types.StandardNEC, 90, 50, 0.82},
		{types.StandardIEC, 70, 40, 0.87},
		{types.StandardIEC, 90, 45, 0.87},
		{types.StandardIEC, 70, 5, 1.22}, // below the table floor takes the coldest row
	}
	for _, tc := range cases {
		got, err := tbl.TemperatureFactor(tc.std, tc.rating, tc.ambient)
		if err != nil {
			t.Fatalf("TemperatureFactor(%s, %dC, %.0f): %v", tc.std, tc.rating, tc.ambient, err)
		}
		if got != tc.want {
			t.Errorf("TemperatureFactor(%s, %dC, %.0f) = %v, want %v",
				tc.std, tc.rating, tc.ambient, got, tc.want)
		}
	}
}

func TestTemperatureFactorAboveTableIsLookupErrorNotClamp(t *testing.T) {
	tbl := Default()

	if _, err := tbl.TemperatureFactor(types.StandardNEC, 60, 70); !errors.IsLookup(err) {
		t.Errorf("NEC 60C at 70 ambient: want lookup error, got %v", err)
	}
	if _, err := tbl.TemperatureFactor(types.StandardIEC, 70, 65); !errors.IsLookup(err) {
		t.Errorf("IEC 70C at 65 ambient: want lookup error, got %v", err)
	}
}

func TestNECGroupingBuckets(t *testing.T) {
	tbl := Default()

	cases := []struct {
		count int
		want  float64
	}{
		{1, 1.00}, {3, 1.00},
		{4, 0.80}, {6, 0.80},
		{7, 0.70}, {9, 0.70},
		{10, 0.50}, {20, 0.50},
		{21, 0.45}, {30, 0.45},
		{31, 0.40}, {40, 0.40},
	}
	for _, tc := range cases {
		got, err := tbl.NECGroupingFactor(tc.count)
		if err != nil {
			t.Fatalf("NECGroupingFactor(%d): %v", tc.count, err)
		}
		if got != tc.want {
			t.Errorf("NECGroupingFactor(%d) = %v, want %v", tc.count, got, tc.want)
		}
	}

	if _, err := tbl.NECGroupingFactor(41); !errors.IsLookup(err) {
		t.Errorf("41 conductors: want lookup error, got %v", err)
	}
}

func TestIECGroupingPerMethod(t *testing.T) {
	tbl := Default()

	cases := []struct {
		method   types.InstallationMethod
		circuits int
		want     float64
	}{
		{types.MethodSingleConduit, 1, 1.00},
		{types.MethodSingleConduit, 2, 0.80},
		{types.MethodMultiConduit, 3, 0.70},
		{types.MethodTray, 2, 0.88},
		{types.MethodDirectBuried, 2, 0.75},
		{types.MethodFreeAir, 5, 1.00},
	}
	for _, tc := range cases {
		got, err := tbl.IECGroupingFactor(tc.method, tc.circuits)
		if err != nil {
			t.Fatalf("IECGroupingFactor(%s, %d): %v", tc.method, tc.circuits, err)
		}
		if got != tc.want {
			t.Errorf("IECGroupingFactor(%s, %d) = %v, want %v", tc.method, tc.circuits, got, tc.want)
		}
	}

	if _, err := tbl.IECGroupingFactor(types.MethodDirectBuried, 7); !errors.IsLookup(err) {
		t.Errorf("buried, 7 circuits: want lookup error, got %v", err)
	}
}

func TestSizeOrdering(t *testing.T) {
	tbl := Default()

	for _, std := range []types.Standard{types.StandardIEC, types.StandardNEC} {
		sizes, err := tbl.Sizes(std)
		if err != nil {
			t.Fatalf("Sizes(%s): %v", std, err)
		}
		if len(sizes) == 0 {
			t.Fatalf("Sizes(%s) is empty", std)
		}

		// Copper ampacity at the lowest rating must ascend with index:
		// the list is ordered by capacity.
		rating := tbl.InsulationRatings(std)[0]
		prev := 0.0
		for _, size := range sizes {
			amps, err := tbl.Ampacity(std, types.MaterialCopper, rating, size)
			if err != nil {
				t.Fatalf("Ampacity(%s, %s): %v", std, size, err)
			}
			if amps <= prev {
				t.Errorf("%s size %s ampacity %v not greater than previous %v", std, size, amps, prev)
			}
			prev = amps
		}

		largest, err := tbl.LargestSize(std)
		if err != nil {
			t.Fatalf("LargestSize(%s): %v", std, err)
		}
		if largest != sizes[len(sizes)-1] {
			t.Errorf("LargestSize(%s) = %s, want %s", std, largest, sizes[len(sizes)-1])
		}

		idx, err := tbl.SizeIndex(std, sizes[3])
		if err != nil || idx != 3 {
			t.Errorf("SizeIndex(%s, %s) = %d, %v, want 3", std, sizes[3], idx, err)
		}
	}
}
