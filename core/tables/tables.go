// Package tables - Authoritative standard lookup data
// Ampacity, resistance, derating curves, grouping buckets, and the
// ordered legal size list for each supported framework. This is the
// source of truth for every number the engine emits. Loaded once at
// process start and never mutated; safe for unbounded concurrent reads.
package tables

import (
	"fmt"
	"sync"

	"cablesize/core/types"
	"cablesize/internal/errors"
)

// ampacityKey selects an ampacity column
type ampacityKey struct {
	Standard types.Standard
	Material types.Material
	Rating   int
}

// resistanceKey selects a resistance column
type resistanceKey struct {
	Standard types.Standard
	Material types.Material
}

// tempKey selects a temperature-derating curve
type tempKey struct {
	Standard types.Standard
	Rating   int
}

// TempBucket is one step of a temperature-derating curve. A bucket
// covers ambients up to and including UpperC; ambients above the last
// bucket are a lookup miss, never a silent clamp.
type TempBucket struct {
	UpperC float64
	Factor float64
}

// CountBucket is one step of the NEC conductor-count adjustment table,
// covering counts up to and including UpperCount.
type CountBucket struct {
	UpperCount int
	Factor     float64
}

// Tables holds all lookup data for every supported standard.
// Columns are slices aligned with the standard's ordered size list;
// a zero entry means the row is not tabulated for that size.
type Tables struct {
	sizes       map[types.Standard][]types.Size
	sizeIndex   map[types.Standard]map[types.Size]int
	ampacity    map[ampacityKey][]float64
	resistance  map[resistanceKey][]float64
	temperature map[tempKey][]TempBucket

	// necGrouping is the count-adjustment table; iecGrouping is keyed
	// by installation method and indexed by circuit count minus one.
	necGrouping []CountBucket
	iecGrouping map[types.InstallationMethod][]float64
}

// New builds a fully populated table set
func New() *Tables {
	t := &Tables{
		sizes:       make(map[types.Standard][]types.Size),
		sizeIndex:   make(map[types.Standard]map[types.Size]int),
		ampacity:    make(map[ampacityKey][]float64),
		resistance:  make(map[resistanceKey][]float64),
		temperature: make(map[tempKey][]TempBucket),
		iecGrouping: make(map[types.InstallationMethod][]float64),
	}
	registerIEC(t)
	registerNEC(t)
	return t
}

var (
	defaultTables *Tables
	defaultOnce   sync.Once
)

// Default returns the process-wide table set, built once
func Default() *Tables {
	defaultOnce.Do(func() {
		defaultTables = New()
	})
	return defaultTables
}

// registerSizes installs a standard's ordered size list (ascending
// capacity). Every column registered afterwards must align with it.
func (t *Tables) registerSizes(std types.Standard, sizes []types.Size) {
	t.sizes[std] = sizes
	idx := make(map[types.Size]int, len(sizes))
	for i, s := range sizes {
		idx[s] = i
	}
	t.sizeIndex[std] = idx
}

// registerAmpacity installs one ampacity column
func (t *Tables) registerAmpacity(std types.Standard, mat types.Material, rating int, amps []float64) {
	if len(amps) != len(t.sizes[std]) {
		panic(fmt.Sprintf("tables: ampacity column %s/%s/%d has %d entries, size list has %d",
			std, mat, rating, len(amps), len(t.sizes[std])))
	}
	t.ampacity[ampacityKey{std, mat, rating}] = amps
}

// registerResistance installs one resistance column, in ohms per 1000
// native length units (ohm/km for IEC, ohm/kft for NEC)
func (t *Tables) registerResistance(std types.Standard, mat types.Material, r []float64) {
	if len(r) != len(t.sizes[std]) {
		panic(fmt.Sprintf("tables: resistance column %s/%s has %d entries, size list has %d",
			std, mat, len(r), len(t.sizes[std])))
	}
	t.resistance[resistanceKey{std, mat}] = r
}

// registerTemperature installs one temperature-derating curve
func (t *Tables) registerTemperature(std types.Standard, rating int, buckets []TempBucket) {
	t.temperature[tempKey{std, rating}] = buckets
}

// Sizes returns the standard's ordered size list, smallest capacity first
func (t *Tables) Sizes(std types.Standard) ([]types.Size, error) {
	sizes, ok := t.sizes[std]
	if !ok {
		return nil, errors.Lookup("size", string(std))
	}
	return sizes, nil
}

// LargestSize returns the last entry of the standard's size list
func (t *Tables) LargestSize(std types.Standard) (types.Size, error) {
	sizes, err := t.Sizes(std)
	if err != nil {
		return "", err
	}
	return sizes[len(sizes)-1], nil
}

// SizeIndex returns the position of a size in the standard's ordered list
func (t *Tables) SizeIndex(std types.Standard, size types.Size) (int, error) {
	idx, ok := t.sizeIndex[std]
	if !ok {
		return 0, errors.Lookup("size", string(std))
	}
	i, ok := idx[size]
	if !ok {
		return 0, errors.Lookup("size", fmt.Sprintf("%s/%s", std, size))
	}
	return i, nil
}

// Ampacity returns the base ampacity in amps for the exact
// (standard, material, insulation rating, size) tuple. No
// interpolation between ratings or sizes is performed.
func (t *Tables) Ampacity(std types.Standard, mat types.Material, rating int, size types.Size) (float64, error) {
	col, ok := t.ampacity[ampacityKey{std, mat, rating}]
	if !ok {
		return 0, errors.Lookup("ampacity", fmt.Sprintf("%s/%s/%dC", std, mat, rating))
	}
	i, err := t.SizeIndex(std, size)
	if err != nil {
		return 0, err
	}
	if col[i] == 0 {
		return 0, errors.Lookup("ampacity", fmt.Sprintf("%s/%s/%dC/%s", std, mat, rating, size))
	}
	return col[i], nil
}

// Resistance returns the per-unit-length resistance for a size, in
// ohms per 1000 native length units
func (t *Tables) Resistance(std types.Standard, mat types.Material, size types.Size) (float64, error) {
	col, ok := t.resistance[resistanceKey{std, mat}]
	if !ok {
		return 0, errors.Lookup("resistance", fmt.Sprintf("%s/%s", std, mat))
	}
	i, err := t.SizeIndex(std, size)
	if err != nil {
		return 0, err
	}
	if col[i] == 0 {
		return 0, errors.Lookup("resistance", fmt.Sprintf("%s/%s/%s", std, mat, size))
	}
	return col[i], nil
}

// TemperatureFactor returns the ambient correction factor for the
// standard's curve at the given insulation rating. The standard's
// reference ambient (30 C for both frameworks) yields exactly 1.0.
func (t *Tables) TemperatureFactor(std types.Standard, rating int, ambientC float64) (float64, error) {
	curve, ok := t.temperature[tempKey{std, rating}]
	if !ok {
		return 0, errors.Lookup("temperature derating", fmt.Sprintf("%s/%dC", std, rating))
	}
	for _, b := range curve {
		if ambientC <= b.UpperC {
			return b.Factor, nil
		}
	}
	return 0, errors.Lookup("temperature derating",
		fmt.Sprintf("%s/%dC/ambient %.1fC", std, rating, ambientC))
}

// NECGroupingFactor returns the conductor-count adjustment factor.
// Counts past the last bucket require an extended table and are a
// lookup miss, not a silent default.
func (t *Tables) NECGroupingFactor(conductorCount int) (float64, error) {
	for _, b := range t.necGrouping {
		if conductorCount <= b.UpperCount {
			return b.Factor, nil
		}
	}
	return 0, errors.Lookup("grouping", fmt.Sprintf("nec/%d conductors", conductorCount))
}

// IECGroupingFactor returns the circuit-grouping factor for an
// installation method. circuits is the number of circuits, not raw
// conductors.
func (t *Tables) IECGroupingFactor(method types.InstallationMethod, circuits int) (float64, error) {
	row, ok := t.iecGrouping[method]
	if !ok {
		return 0, errors.Lookup("grouping", fmt.Sprintf("iec/%s", method))
	}
	if circuits < 1 || circuits > len(row) {
		return 0, errors.Lookup("grouping", fmt.Sprintf("iec/%s/%d circuits", method, circuits))
	}
	return row[circuits-1], nil
}

// InsulationRatings returns the ratings a standard tabulates
func (t *Tables) InsulationRatings(std types.Standard) []int {
	switch std {
	case types.StandardIEC:
		return []int{70, 90}
	case types.StandardNEC:
		return []int{60, 75, 90}
	default:
		return nil
	}
}
