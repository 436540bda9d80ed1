// Package sizing - Compliance report assembly
package sizing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"cablesize/core/types"
)

// Reporter assembles the final result object. Pure assembly: every
// number is already computed by the time it gets here.
type Reporter struct{}

// NewReporter creates a reporter
func NewReporter() *Reporter {
	return &Reporter{}
}

// utilizationNoteThreshold is the informational continuous-loading mark
var utilizationNoteThreshold = decimal.NewFromInt(80)

// Build assembles a result from an evaluated candidate. extraWarnings
// carries the exhaustion warning set when the search ran out of table.
func (r *Reporter) Build(in *types.CableSizingInput, cand candidate, derating types.DeratingFactor, extraWarnings []string) *types.CableSizingResult {
	utilization := decimal.Zero
	if cand.derated.IsPositive() {
		utilization = decimal.NewFromFloat(in.CurrentAmps).Mul(hundred).Div(cand.derated)
	}

	result := &types.CableSizingResult{
		RecommendedSize: cand.size,
		Standard:        in.Standard,
		VoltageDrop: types.VoltageDrop{
			Volts:       cand.drop.Volts,
			Percent:     cand.drop.Percent,
			IsViolation: !cand.voltageOk,
		},
		Ampacity: types.Ampacity{
			BaseAmps:           cand.resolution.BaseAmpacity,
			DeratedAmps:        cand.derated,
			UtilizationPercent: utilization,
		},
		Derating: derating,
		Compliance: types.Compliance{
			IsVoltageDropCompliant: cand.voltageOk,
			IsAmpacityCompliant:    cand.ampacityOk,
			IsFullyCompliant:       cand.ampacityOk && cand.voltageOk,
		},
		StandardReferences: References(in.Standard, in.InstallationMethod),
	}

	if in.Material == types.MaterialAluminum {
		result.Warnings = append(result.Warnings,
			"aluminum conductors: use antioxidant compound and terminations rated for aluminum")
	}
	if utilization.GreaterThan(utilizationNoteThreshold) {
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"conductor loaded to %s%% of derated ampacity; consider the next size for continuous loads",
			utilization.StringFixed(1)))
	}
	result.Warnings = append(result.Warnings, extraWarnings...)

	return result
}

// ExhaustionWarnings names the constraint(s) still failing at the
// largest evaluable size
func (r *Reporter) ExhaustionWarnings(cand candidate) []string {
	failed := ""
	switch {
	case !cand.ampacityOk && !cand.voltageOk:
		failed = "ampacity and voltage drop"
	case !cand.ampacityOk:
		failed = "ampacity"
	default:
		failed = "voltage drop"
	}
	return []string{fmt.Sprintf(
		"%s constraint not met at any tabulated size; exceeds maximum conductor size for standard table; consider splitting circuit or parallel runs",
		failed)}
}

// References returns the literal clause citations backing a result,
// selected purely from the standard and installation method
func References(std types.Standard, method types.InstallationMethod) []string {
	if std == types.StandardNEC {
		return []string{
			"NEC Table 310.15(B)(16)",
			"NEC Table 310.15(B)(2)(a)",
			"NEC Table 310.15(C)(1)",
			"NEC Chapter 9 Table 8",
		}
	}

	refs := []string{
		"IEC 60364-5-52 Table B.52.4",
		"IEC 60364-5-52 Table B.52.14",
	}
	switch method {
	case types.MethodDirectBuried:
		refs = append(refs, "IEC 60364-5-52 Table B.52.18")
	case types.MethodFreeAir:
		// Spaced free-air runs take no grouping table
	default:
		refs = append(refs, "IEC 60364-5-52 Table B.52.17")
	}
	return append(refs, "IEC 60228 Table 2")
}
