// Package types - Sizing result types
package types

import "github.com/shopspring/decimal"

// DeratingFactor is the composed ampacity correction for one request
type DeratingFactor struct {
	// TemperatureFactor corrects for ambient temperature
	TemperatureFactor decimal.Decimal `json:"temperature_factor"`

	// GroupingFactor corrects for bundled conductors
	GroupingFactor decimal.Decimal `json:"grouping_factor"`

	// TotalFactor is the product, never above 1.0
	TotalFactor decimal.Decimal `json:"total_factor"`

	// StandardReference cites the tables the factors came from
	StandardReference string `json:"standard_reference"`
}

// VoltageDrop is the computed drop for the recommended size
type VoltageDrop struct {
	// Volts is the absolute drop
	Volts decimal.Decimal `json:"volts"`

	// Percent is the drop relative to system voltage; nil when no
	// system voltage was supplied (omitted, not zero)
	Percent *decimal.Decimal `json:"percent,omitempty"`

	// IsViolation reports whether the drop exceeds the limit
	IsViolation bool `json:"is_violation"`
}

// Ampacity is the thermal capacity block for the recommended size
type Ampacity struct {
	// BaseAmps is the raw table ampacity
	BaseAmps decimal.Decimal `json:"base_amps"`

	// DeratedAmps is base times the total derating factor
	DeratedAmps decimal.Decimal `json:"derated_amps"`

	// UtilizationPercent is load current over derated ampacity
	UtilizationPercent decimal.Decimal `json:"utilization_percent"`
}

// Compliance summarizes the pass/fail state of the recommendation
type Compliance struct {
	IsVoltageDropCompliant bool `json:"is_voltage_drop_compliant"`
	IsAmpacityCompliant    bool `json:"is_ampacity_compliant"`

	// IsFullyCompliant is both of the above; false on table exhaustion
	IsFullyCompliant bool `json:"is_fully_compliant"`
}

// CableSizingResult is the complete sizing recommendation
type CableSizingResult struct {
	// RecommendedSize is the selected size designation
	RecommendedSize Size `json:"recommended_size"`

	// Standard echoes the governing framework
	Standard Standard `json:"standard"`

	// VoltageDrop is the drop at the recommended size
	VoltageDrop VoltageDrop `json:"voltage_drop"`

	// Ampacity is the thermal block at the recommended size
	Ampacity Ampacity `json:"ampacity"`

	// Derating is the factor set applied to the whole search
	Derating DeratingFactor `json:"derating"`

	// Compliance is the pass/fail summary
	Compliance Compliance `json:"compliance"`

	// Warnings are informational notes (never errors)
	Warnings []string `json:"warnings,omitempty"`

	// StandardReferences are literal clause citations backing the
	// numbers in this result
	StandardReferences []string `json:"standard_references,omitempty"`
}
