// Package tables - NEC Article 310 data
// Sizes in AWG down to 1 then AWG-aught, kcmil from 250 up. Run lengths
// in feet, resistance in ohm/kft. Ampacity columns follow Table
// 310.15(B)(16) (not more than three current-carrying conductors);
// resistance follows Chapter 9 Table 8.
package tables

import "cablesize/core/types"

// registerNEC populates the tables with the North American framework
func registerNEC(t *Tables) {
	std := types.StandardNEC

	t.registerSizes(std, []types.Size{
		"14", "12", "10", "8", "6", "4", "3", "2", "1",
		"1/0", "2/0", "3/0", "4/0", "250", "300", "350", "400", "500",
	})

	// Ampacity, amps, per insulation rating column.
	// Aluminum is not tabulated at 14 AWG.
	t.registerAmpacity(std, types.MaterialCopper, 60, []float64{
		15, 20, 30, 40, 55, 70, 85, 95, 110,
		125, 145, 165, 195, 215, 240, 260, 280, 320,
	})
	t.registerAmpacity(std, types.MaterialCopper, 75, []float64{
		20, 25, 35, 50, 65, 85, 100, 115, 130,
		150, 175, 200, 230, 255, 285, 310, 335, 380,
	})
	t.registerAmpacity(std, types.MaterialCopper, 90, []float64{
		25, 30, 40, 55, 75, 95, 110, 130, 145,
		170, 195, 225, 260, 290, 320, 350, 380, 430,
	})
	t.registerAmpacity(std, types.MaterialAluminum, 60, []float64{
		0, 15, 25, 30, 40, 55, 65, 75, 85,
		100, 115, 130, 150, 170, 190, 210, 225, 260,
	})
	t.registerAmpacity(std, types.MaterialAluminum, 75, []float64{
		0, 20, 30, 40, 50, 65, 75, 90, 100,
		120, 135, 155, 180, 205, 230, 250, 270, 310,
	})
	t.registerAmpacity(std, types.MaterialAluminum, 90, []float64{
		0, 25, 35, 45, 55, 75, 85, 100, 115,
		135, 150, 175, 205, 230, 255, 280, 305, 350,
	})

	// Resistance, ohm/kft (Chapter 9 Table 8, uncoated stranded)
	t.registerResistance(std, types.MaterialCopper, []float64{
		3.07, 1.93, 1.21, 0.764, 0.491, 0.308, 0.245, 0.194, 0.154,
		0.122, 0.0967, 0.0766, 0.0608, 0.0515, 0.0429, 0.0367, 0.0321, 0.0258,
	})
	t.registerResistance(std, types.MaterialAluminum, []float64{
		0, 3.18, 2.00, 1.26, 0.808, 0.508, 0.403, 0.319, 0.253,
		0.201, 0.159, 0.126, 0.100, 0.0847, 0.0707, 0.0605, 0.0529, 0.0424,
	})

	// Ambient correction, Table 310.15(B)(2)(a), reference 30 C.
	// The first bucket is the table's "10 or less" row.
	t.registerTemperature(std, 60, []TempBucket{
		{10, 1.29}, {15, 1.22}, {20, 1.15}, {25, 1.08}, {30, 1.00},
		{35, 0.91}, {40, 0.82}, {45, 0.71}, {50, 0.58}, {55, 0.41},
	})
	t.registerTemperature(std, 75, []TempBucket{
		{10, 1.20}, {15, 1.15}, {20, 1.11}, {25, 1.05}, {30, 1.00},
		{35, 0.94}, {40, 0.88}, {45, 0.82}, {50, 0.75}, {55, 0.67},
		{60, 0.58}, {65, 0.47}, {70, 0.33},
	})
	t.registerTemperature(std, 90, []TempBucket{
		{10, 1.15}, {15, 1.12}, {20, 1.08}, {25, 1.04}, {30, 1.00},
		{35, 0.96}, {40, 0.91}, {45, 0.87}, {50, 0.82}, {55, 0.76},
		{60, 0.71}, {65, 0.65}, {70, 0.58}, {75, 0.50}, {80, 0.41},
	})

	// Conductor-count adjustment, Table 310.15(C)(1). Counts beyond 40
	// need the engineering-supervision extension and are a lookup miss.
	t.necGrouping = []CountBucket{
		{3, 1.00}, {6, 0.80}, {9, 0.70}, {20, 0.50}, {30, 0.45}, {40, 0.40},
	}
}
