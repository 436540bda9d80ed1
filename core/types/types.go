// Package types defines core domain types shared across all layers.
// This package contains NO sizing logic - only type definitions.
package types

// Standard represents a regulatory cable-sizing framework
type Standard string

const (
	// StandardIEC is the international framework (IEC 60364-5-52):
	// mm2 sizes, run lengths in meters, ambient reference 30 C.
	StandardIEC Standard = "iec"

	// StandardNEC is the North American framework (NEC Article 310):
	// AWG/kcmil sizes, run lengths in feet, ambient reference 30 C.
	StandardNEC Standard = "nec"
)

// String returns the string representation of the standard
func (s Standard) String() string {
	return string(s)
}

// IsValid checks if the standard is a known framework
func (s Standard) IsValid() bool {
	switch s {
	case StandardIEC, StandardNEC:
		return true
	default:
		return false
	}
}

// NativeLengthUnit returns the run-length unit the standard's
// resistance tables are expressed in
func (s Standard) NativeLengthUnit() LengthUnit {
	if s == StandardNEC {
		return UnitFeet
	}
	return UnitMeters
}

// Material represents a conductor material
type Material string

const (
	MaterialCopper   Material = "copper"
	MaterialAluminum Material = "aluminum"
)

// String returns the string representation of the material
func (m Material) String() string {
	return string(m)
}

// IsValid checks if the material is known
func (m Material) IsValid() bool {
	return m == MaterialCopper || m == MaterialAluminum
}

// InstallationMethod represents how conductors are installed.
// It selects the IEC grouping bucket; the NEC side groups by
// conductor count directly.
type InstallationMethod string

const (
	MethodSingleConduit InstallationMethod = "single_conduit"
	MethodMultiConduit  InstallationMethod = "multi_conduit"
	MethodTray          InstallationMethod = "tray"
	MethodDirectBuried  InstallationMethod = "direct_buried"
	MethodFreeAir       InstallationMethod = "free_air"
)

// String returns the string representation of the method
func (m InstallationMethod) String() string {
	return string(m)
}

// IsValid checks if the installation method is known
func (m InstallationMethod) IsValid() bool {
	switch m {
	case MethodSingleConduit, MethodMultiConduit, MethodTray, MethodDirectBuried, MethodFreeAir:
		return true
	default:
		return false
	}
}

// CircuitType represents the circuit topology.
// DC circuits are modeled as single-phase (round-trip multiplier 2).
type CircuitType string

const (
	CircuitSinglePhase CircuitType = "single_phase"
	CircuitThreePhase  CircuitType = "three_phase"
)

// String returns the string representation of the circuit type
func (c CircuitType) String() string {
	return string(c)
}

// IsValid checks if the circuit type is known
func (c CircuitType) IsValid() bool {
	return c == CircuitSinglePhase || c == CircuitThreePhase
}

// Size is a standard-specific conductor size designation
// (e.g. "6" for 6 mm2 under IEC, "1/0" for 1/0 AWG under NEC).
// Designations are NOT numerically comparable across standards;
// ordering comes from each standard's table, never from the string.
type Size string

// String returns the string representation of the size
func (s Size) String() string {
	return string(s)
}

// LengthUnit is the unit a run length is expressed in
type LengthUnit string

const (
	UnitMeters LengthUnit = "m"
	UnitFeet   LengthUnit = "ft"
)

// String returns the string representation of the unit
func (u LengthUnit) String() string {
	return string(u)
}

// IsValid checks if the unit is known
func (u LengthUnit) IsValid() bool {
	return u == UnitMeters || u == UnitFeet
}

// Length is a run length tagged with its unit, so a meters value
// cannot silently serve a feet-based lookup.
type Length struct {
	Value float64    `json:"value"`
	Unit  LengthUnit `json:"unit"`
}

// Meters constructs a length in meters
func Meters(v float64) Length {
	return Length{Value: v, Unit: UnitMeters}
}

// Feet constructs a length in feet
func Feet(v float64) Length {
	return Length{Value: v, Unit: UnitFeet}
}
