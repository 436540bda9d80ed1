// Package types - Sizing request types
package types

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"cablesize/internal/errors"
)

// DefaultMaxVoltageDropPercent is the conventional branch-circuit limit
// under both frameworks.
const DefaultMaxVoltageDropPercent = 3.0

// CableSizingInput is a validated sizing request. The engine assumes
// ranges have been checked by Validate (or an equivalent upstream
// validator) and only verifies table membership itself.
type CableSizingInput struct {
	// CurrentAmps is the design load current
	CurrentAmps float64 `json:"current_amps"`

	// Length is the one-way circuit run length, in the standard's
	// native unit (meters for IEC, feet for NEC)
	Length Length `json:"length"`

	// SystemVoltage is the nominal system voltage; zero means unknown,
	// in which case the voltage-drop percent is omitted from the result
	SystemVoltage float64 `json:"system_voltage"`

	// Material is the conductor material
	Material Material `json:"material"`

	// InstallationMethod selects the IEC grouping bucket
	InstallationMethod InstallationMethod `json:"installation_method"`

	// CircuitType selects the voltage-drop multiplier
	CircuitType CircuitType `json:"circuit_type"`

	// AmbientTempC is the ambient temperature in Celsius
	AmbientTempC float64 `json:"ambient_temp_c"`

	// ConductorCount is the number of current-carrying conductors
	// grouped together
	ConductorCount int `json:"conductor_count"`

	// InsulationRating is the insulation temperature rating in Celsius
	// (70/90 under IEC, 60/75/90 under NEC)
	InsulationRating int `json:"insulation_rating"`

	// Standard is the governing framework
	Standard Standard `json:"standard"`

	// MaxVoltageDropPercent is the compliance limit; zero means the
	// 3.0 percent convention
	MaxVoltageDropPercent float64 `json:"max_voltage_drop_percent,omitempty"`

	// ExplicitSize, when set, evaluates just that size instead of
	// searching for the smallest compliant one
	ExplicitSize Size `json:"explicit_size,omitempty"`
}

// MaxDropPercent returns the effective voltage-drop limit
func (in *CableSizingInput) MaxDropPercent() float64 {
	if in.MaxVoltageDropPercent <= 0 {
		return DefaultMaxVoltageDropPercent
	}
	return in.MaxVoltageDropPercent
}

// Validate checks ranges and enum membership. This is the boundary
// validator; the engine does not re-check ranges.
func (in *CableSizingInput) Validate() error {
	if !in.Standard.IsValid() {
		return errors.Inputf("unknown standard %q", in.Standard)
	}
	if !in.Material.IsValid() {
		return errors.Inputf("unknown material %q", in.Material)
	}
	if !in.InstallationMethod.IsValid() {
		return errors.Inputf("unknown installation method %q", in.InstallationMethod)
	}
	if !in.CircuitType.IsValid() {
		return errors.Inputf("unknown circuit type %q", in.CircuitType)
	}
	if in.CurrentAmps <= 0 {
		return errors.Inputf("current must be positive, got %g A", in.CurrentAmps)
	}
	if in.Length.Value <= 0 {
		return errors.Inputf("length must be positive, got %g", in.Length.Value)
	}
	if !in.Length.Unit.IsValid() {
		return errors.Inputf("unknown length unit %q", in.Length.Unit)
	}
	if want := in.Standard.NativeLengthUnit(); in.Length.Unit != want {
		return errors.Inputf("standard %s requires length in %s, got %s",
			in.Standard, want, in.Length.Unit)
	}
	if in.SystemVoltage < 0 {
		return errors.Inputf("system voltage must not be negative, got %g V", in.SystemVoltage)
	}
	if in.ConductorCount < 1 {
		return errors.Inputf("conductor count must be at least 1, got %d", in.ConductorCount)
	}
	if in.MaxVoltageDropPercent < 0 {
		return errors.Inputf("max voltage drop percent must not be negative, got %g",
			in.MaxVoltageDropPercent)
	}
	return nil
}

// Hash returns a deterministic sha256 key over every input field,
// suitable for memoization. Cross-standard collisions are impossible
// because the standard participates in the key.
func (in *CableSizingInput) Hash() string {
	canonical := fmt.Sprintf(
		"std=%s|i=%.6f|len=%.6f%s|v=%.6f|mat=%s|method=%s|circ=%s|amb=%.2f|n=%d|ins=%d|max=%.4f|size=%s",
		in.Standard,
		in.CurrentAmps,
		in.Length.Value, in.Length.Unit,
		in.SystemVoltage,
		in.Material,
		in.InstallationMethod,
		in.CircuitType,
		in.AmbientTempC,
		in.ConductorCount,
		in.InsulationRating,
		in.MaxDropPercent(),
		in.ExplicitSize,
	)
	sum := sha256.Sum256([]byte(canonical))
	return hex.EncodeToString(sum[:])
}
