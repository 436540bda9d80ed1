// Package output - Terminal rendering
// Rich CLI output with colors, in the spirit of a compliance sheet.
package output

import (
	"fmt"
	"io"

	"cablesize/core/types"
)

// Colors for terminal output
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	cyan   = "\033[36m"
)

// TerminalFormatter renders results for a terminal
type TerminalFormatter struct {
	noColor bool
}

// NewTerminalFormatter creates a terminal formatter
func NewTerminalFormatter(noColor bool) *TerminalFormatter {
	return &TerminalFormatter{noColor: noColor}
}

// Format returns the format type
func (f *TerminalFormatter) Format() Format {
	return FormatCLI
}

func (f *TerminalFormatter) color(c, text string) string {
	if f.noColor {
		return text
	}
	return c + text + reset
}

func (f *TerminalFormatter) passFail(ok bool) string {
	if ok {
		return f.color(green, "PASS")
	}
	return f.color(red, "FAIL")
}

// sizeUnit names the designation system for display
func sizeUnit(std types.Standard) string {
	if std == types.StandardNEC {
		return "AWG/kcmil"
	}
	return "mm²"
}

// Render produces terminal output for a single report
func (f *TerminalFormatter) Render(w io.Writer, report *Report) error {
	in, res := report.Input, report.Result

	title := "Cable Sizing"
	if report.Name != "" {
		title = "Circuit: " + report.Name
	}
	fmt.Fprintf(w, "\n%s\n\n", f.color(bold+cyan, "━━━ "+title+" ━━━"))

	fmt.Fprintf(w, "  %s %s %s (%s, %s)\n",
		f.color(bold, "Recommended size:"),
		f.color(bold, res.RecommendedSize.String()),
		sizeUnit(res.Standard), in.Material, res.Standard)

	overall := f.color(green, "COMPLIANT")
	if !res.Compliance.IsFullyCompliant {
		overall = f.color(red, "NOT COMPLIANT")
	}
	fmt.Fprintf(w, "  %s %s\n\n", f.color(bold, "Status:"), overall)

	fmt.Fprintf(w, "  Ampacity        base %s A, derated %s A, utilization %s%%  [%s]\n",
		res.Ampacity.BaseAmps.StringFixed(1),
		res.Ampacity.DeratedAmps.StringFixed(1),
		res.Ampacity.UtilizationPercent.StringFixed(1),
		f.passFail(res.Compliance.IsAmpacityCompliant))

	drop := res.VoltageDrop.Volts.StringFixed(2) + " V"
	if res.VoltageDrop.Percent != nil {
		drop += fmt.Sprintf(" (%s%% of %g V)", res.VoltageDrop.Percent.StringFixed(2), in.SystemVoltage)
	}
	fmt.Fprintf(w, "  Voltage drop    %s  [%s]\n",
		drop, f.passFail(res.Compliance.IsVoltageDropCompliant))

	fmt.Fprintf(w, "  Derating        temperature %s × grouping %s = %s\n",
		res.Derating.TemperatureFactor.StringFixed(2),
		res.Derating.GroupingFactor.StringFixed(2),
		res.Derating.TotalFactor.StringFixed(3))

	if len(res.Warnings) > 0 {
		fmt.Fprintf(w, "\n  %s\n", f.color(bold+yellow, "Warnings"))
		for _, warning := range res.Warnings {
			fmt.Fprintf(w, "  %s %s\n", f.color(yellow, "!"), warning)
		}
	}

	if len(res.StandardReferences) > 0 {
		fmt.Fprintf(w, "\n  %s\n", f.color(bold, "References"))
		for _, ref := range res.StandardReferences {
			fmt.Fprintf(w, "  %s %s\n", f.color(dim, "•"), f.color(dim, ref))
		}
	}

	fmt.Fprintln(w)
	return nil
}

// RenderAll produces terminal output for a batch of reports
func (f *TerminalFormatter) RenderAll(w io.Writer, reports []*Report) error {
	for _, report := range reports {
		if err := f.Render(w, report); err != nil {
			return err
		}
	}
	return nil
}
