// Package output provides output formatting for sizing results.
// This package produces human and machine-readable renderings; it
// never computes anything.
package output

import (
	"io"

	"cablesize/core/types"
	"cablesize/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable terminal rendering
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatMarkdown is a markdown report
	FormatMarkdown Format = "markdown"
)

// Report pairs a sizing result with the request that produced it
type Report struct {
	// Name labels the circuit (batch files name their circuits;
	// ad hoc requests leave it empty)
	Name string `json:"name,omitempty"`

	// Input is the request
	Input *types.CableSizingInput `json:"input"`

	// Result is the engine's recommendation
	Result *types.CableSizingResult `json:"result"`
}

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for a single report
	Render(w io.Writer, report *Report) error

	// RenderAll produces output for a batch of reports
	RenderAll(w io.Writer, reports []*Report) error
}

// New returns the formatter for a format name
func New(format Format) (Formatter, error) {
	switch format {
	case FormatCLI, "":
		return NewTerminalFormatter(false), nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	case FormatMarkdown:
		return &MarkdownFormatter{}, nil
	default:
		return nil, errors.Inputf("unknown output format %q", format)
	}
}
