package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"cablesize/core/sizing"
	"cablesize/core/types"
)

func sampleReport(t *testing.T) *Report {
	t.Helper()
	in := &types.CableSizingInput{
		CurrentAmps:        30,
		Length:             types.Meters(50),
		SystemVoltage:      230,
		Material:           types.MaterialCopper,
		InstallationMethod: types.MethodSingleConduit,
		CircuitType:        types.CircuitSinglePhase,
		AmbientTempC:       30,
		ConductorCount:     3,
		InsulationRating:   70,
		Standard:           types.StandardIEC,
	}
	result, err := sizing.NewDefaultSelector().Select(in)
	if err != nil {
		t.Fatal(err)
	}
	return &Report{Name: "pump_feeder", Input: in, Result: result}
}

func TestNewFormatter(t *testing.T) {
	cases := []struct {
		format Format
		want   Format
	}{
		{FormatCLI, FormatCLI},
		{"", FormatCLI},
		{FormatJSON, FormatJSON},
		{FormatMarkdown, FormatMarkdown},
	}
	for _, tc := range cases {
		f, err := New(tc.format)
		if err != nil {
			t.Fatalf("New(%q): %v", tc.format, err)
		}
		if f.Format() != tc.want {
			t.Errorf("New(%q).Format() = %s, want %s", tc.format, f.Format(), tc.want)
		}
	}

	if _, err := New("yaml"); err == nil {
		t.Error("unknown format must error")
	}
}

func TestTerminalRender(t *testing.T) {
	report := sampleReport(t)

	var buf bytes.Buffer
	if err := NewTerminalFormatter(true).Render(&buf, report); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	for _, want := range []string{
		"Circuit: pump_feeder",
		"Recommended size:",
		report.Result.RecommendedSize.String(),
		"mm²",
		"COMPLIANT",
		"PASS",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("terminal output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\033[") {
		t.Error("noColor output must not contain ANSI escapes")
	}

	buf.Reset()
	if err := NewTerminalFormatter(false).Render(&buf, report); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\033[") {
		t.Error("colored output should contain ANSI escapes")
	}
}

func TestJSONRender(t *testing.T) {
	report := sampleReport(t)

	var buf bytes.Buffer
	if err := (&JSONFormatter{}).Render(&buf, report); err != nil {
		t.Fatal(err)
	}

	var decoded Report
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Name != "pump_feeder" {
		t.Errorf("name = %s, want pump_feeder", decoded.Name)
	}
	if decoded.Result.RecommendedSize != report.Result.RecommendedSize {
		t.Errorf("size = %s, want %s", decoded.Result.RecommendedSize, report.Result.RecommendedSize)
	}
}

func TestJSONRenderAll(t *testing.T) {
	report := sampleReport(t)

	var buf bytes.Buffer
	if err := (&JSONFormatter{}).RenderAll(&buf, []*Report{report, report}); err != nil {
		t.Fatal(err)
	}

	var decoded []Report
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("batch output is not valid JSON: %v", err)
	}
	if len(decoded) != 2 {
		t.Errorf("got %d reports, want 2", len(decoded))
	}
}

func TestMarkdownRender(t *testing.T) {
	report := sampleReport(t)

	var buf bytes.Buffer
	if err := (&MarkdownFormatter{}).RenderAll(&buf, []*Report{report}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	for _, want := range []string{
		"# Cable Sizing Report",
		"## pump_feeder",
		"| Check | Value | Status |",
		"Derated ampacity",
		"Voltage drop",
		"✅",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown output missing %q:\n%s", want, out)
		}
	}
}
