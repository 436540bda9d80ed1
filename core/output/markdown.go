// Package output - Markdown rendering
package output

import (
	"fmt"
	"io"
)

// MarkdownFormatter renders reports as a markdown compliance summary
type MarkdownFormatter struct{}

// Format returns the format type
func (f *MarkdownFormatter) Format() Format {
	return FormatMarkdown
}

func check(ok bool) string {
	if ok {
		return "✅"
	}
	return "❌"
}

// Render produces markdown for a single report
func (f *MarkdownFormatter) Render(w io.Writer, report *Report) error {
	in, res := report.Input, report.Result

	title := "Cable Sizing"
	if report.Name != "" {
		title = report.Name
	}
	fmt.Fprintf(w, "## %s\n\n", title)
	fmt.Fprintf(w, "**Recommended size:** %s %s (%s, %s) %s\n\n",
		res.RecommendedSize, sizeUnit(res.Standard), in.Material, res.Standard,
		check(res.Compliance.IsFullyCompliant))

	fmt.Fprintf(w, "| Check | Value | Status |\n")
	fmt.Fprintf(w, "|---|---|---|\n")
	fmt.Fprintf(w, "| Derated ampacity | %s A (base %s A × %s) | %s |\n",
		res.Ampacity.DeratedAmps.StringFixed(1),
		res.Ampacity.BaseAmps.StringFixed(1),
		res.Derating.TotalFactor.StringFixed(3),
		check(res.Compliance.IsAmpacityCompliant))

	drop := res.VoltageDrop.Volts.StringFixed(2) + " V"
	if res.VoltageDrop.Percent != nil {
		drop += " / " + res.VoltageDrop.Percent.StringFixed(2) + "%"
	}
	fmt.Fprintf(w, "| Voltage drop | %s | %s |\n\n",
		drop, check(res.Compliance.IsVoltageDropCompliant))

	for _, warning := range res.Warnings {
		fmt.Fprintf(w, "> ⚠️ %s\n", warning)
	}
	if len(res.Warnings) > 0 {
		fmt.Fprintln(w)
	}

	if len(res.StandardReferences) > 0 {
		fmt.Fprintf(w, "_References: ")
		for i, ref := range res.StandardReferences {
			if i > 0 {
				fmt.Fprintf(w, "; ")
			}
			fmt.Fprintf(w, "%s", ref)
		}
		fmt.Fprintf(w, "_\n\n")
	}
	return nil
}

// RenderAll produces markdown for a batch of reports
func (f *MarkdownFormatter) RenderAll(w io.Writer, reports []*Report) error {
	fmt.Fprintf(w, "# Cable Sizing Report\n\n")
	for _, report := range reports {
		if err := f.Render(w, report); err != nil {
			return err
		}
	}
	return nil
}
