// Package tables - IEC 60364-5-52 data
// Sizes in mm2, run lengths in meters, resistance in ohm/km (numerically
// the familiar mV/A/m figure before the circuit multiplier is applied).
// Ampacity columns follow the conduit installation tables; resistance is
// the IEC 60228 maximum DC resistance at 20 C.
package tables

import "cablesize/core/types"

// registerIEC populates the tables with the international framework
func registerIEC(t *Tables) {
	std := types.StandardIEC

	t.registerSizes(std, []types.Size{
		"1.5", "2.5", "4", "6", "10", "16", "25", "35",
		"50", "70", "95", "120", "150", "185", "240", "300",
	})

	// Ampacity, amps. PVC insulation is the 70 C rating, XLPE the 90 C
	// rating. Aluminum is not tabulated below 16 mm2.
	t.registerAmpacity(std, types.MaterialCopper, 70, []float64{
		17.5, 24, 32, 41, 57, 76, 101, 125,
		151, 192, 232, 269, 300, 341, 400, 458,
	})
	t.registerAmpacity(std, types.MaterialCopper, 90, []float64{
		22, 30, 40, 52, 71, 96, 119, 147,
		179, 229, 278, 322, 371, 424, 500, 576,
	})
	t.registerAmpacity(std, types.MaterialAluminum, 70, []float64{
		0, 0, 0, 0, 0, 59, 78, 96,
		117, 150, 183, 212, 245, 280, 330, 381,
	})
	t.registerAmpacity(std, types.MaterialAluminum, 90, []float64{
		0, 0, 0, 0, 0, 76, 98, 120,
		146, 187, 227, 263, 304, 347, 409, 471,
	})

	// Resistance, ohm/km (IEC 60228 Table 2 stranded class 2)
	t.registerResistance(std, types.MaterialCopper, []float64{
		12.1, 7.41, 4.61, 3.08, 1.83, 1.15, 0.727, 0.524,
		0.387, 0.268, 0.193, 0.153, 0.124, 0.0991, 0.0754, 0.0601,
	})
	t.registerResistance(std, types.MaterialAluminum, []float64{
		0, 0, 0, 0, 0, 1.91, 1.20, 0.868,
		0.641, 0.443, 0.320, 0.253, 0.206, 0.164, 0.125, 0.100,
	})

	// Ambient correction, Table B.52.14, reference 30 C
	t.registerTemperature(std, 70, []TempBucket{
		{10, 1.22}, {15, 1.17}, {20, 1.12}, {25, 1.06}, {30, 1.00},
		{35, 0.94}, {40, 0.87}, {45, 0.79}, {50, 0.71}, {55, 0.61}, {60, 0.50},
	})
	t.registerTemperature(std, 90, []TempBucket{
		{10, 1.15}, {15, 1.12}, {20, 1.08}, {25, 1.04}, {30, 1.00},
		{35, 0.96}, {40, 0.91}, {45, 0.87}, {50, 0.82}, {55, 0.76},
		{60, 0.71}, {65, 0.65}, {70, 0.58}, {75, 0.50}, {80, 0.41},
	})

	// Circuit grouping, Table B.52.17 (bunched / in conduit row, and
	// the single-layer perforated-tray row) and Table B.52.18 for
	// buried runs. Indexed by circuit count minus one. Free-air spaced
	// conductors take no mutual-heating penalty.
	bunched := []float64{
		1.00, 0.80, 0.70, 0.65, 0.60, 0.57, 0.54, 0.52, 0.50, 0.48,
		0.45, 0.45, 0.43, 0.43, 0.41, 0.41, 0.39, 0.39, 0.38, 0.38,
	}
	t.iecGrouping[types.MethodSingleConduit] = bunched
	t.iecGrouping[types.MethodMultiConduit] = bunched
	t.iecGrouping[types.MethodTray] = []float64{
		1.00, 0.88, 0.82, 0.79, 0.76, 0.73, 0.73, 0.72, 0.72,
	}
	t.iecGrouping[types.MethodDirectBuried] = []float64{
		1.00, 0.75, 0.65, 0.60, 0.55, 0.50,
	}
	t.iecGrouping[types.MethodFreeAir] = []float64{
		1.00, 1.00, 1.00, 1.00, 1.00, 1.00, 1.00, 1.00, 1.00, 1.00,
		1.00, 1.00, 1.00, 1.00, 1.00, 1.00, 1.00, 1.00, 1.00, 1.00,
	}
}
