// Package circuitfile provides HCL circuit definition parsing.
// A circuit file declares one or more circuits to size, plus an
// optional defaults block:
//
//	defaults {
//	  standard = "iec"
//	  voltage  = 230
//	}
//
//	circuit "pump_feeder" {
//	  current    = 30
//	  length     = 50
//	  phases     = 1
//	  conductors = 3
//	}
package circuitfile

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"cablesize/core/types"
	"cablesize/internal/errors"
)

// NamedInput is one decoded circuit with its block label
type NamedInput struct {
	Name  string
	Input *types.CableSizingInput
}

type fileSchema struct {
	Defaults *defaultsSchema `hcl:"defaults,block"`
	Circuits []circuitSchema `hcl:"circuit,block"`
}

type defaultsSchema struct {
	Standard     *string  `hcl:"standard,optional"`
	Voltage      *float64 `hcl:"voltage,optional"`
	Ambient      *float64 `hcl:"ambient,optional"`
	MaxDrop      *float64 `hcl:"max_drop,optional"`
	Material     *string  `hcl:"material,optional"`
	Installation *string  `hcl:"installation,optional"`
	Insulation   *int     `hcl:"insulation,optional"`
	Conductors   *int     `hcl:"conductors,optional"`
}

type circuitSchema struct {
	Name         string   `hcl:"name,label"`
	Current      float64  `hcl:"current"`
	Length       float64  `hcl:"length"`
	LengthUnit   *string  `hcl:"length_unit,optional"`
	Standard     *string  `hcl:"standard,optional"`
	Voltage      *float64 `hcl:"voltage,optional"`
	Phases       *int     `hcl:"phases,optional"`
	Material     *string  `hcl:"material,optional"`
	Installation *string  `hcl:"installation,optional"`
	Ambient      *float64 `hcl:"ambient,optional"`
	Conductors   *int     `hcl:"conductors,optional"`
	Insulation   *int     `hcl:"insulation,optional"`
	MaxDrop      *float64 `hcl:"max_drop,optional"`
	Size         *string  `hcl:"size,optional"`
}

// Decoder parses circuit files
type Decoder struct {
	parser *hclparse.Parser
}

// NewDecoder creates a circuit-file decoder
func NewDecoder() *Decoder {
	return &Decoder{parser: hclparse.NewParser()}
}

// DecodeFile parses a circuit file from disk
func (d *Decoder) DecodeFile(path string) ([]NamedInput, error) {
	file, diags := d.parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, errors.Parsing("failed to parse circuit file", diags)
	}
	return d.decode(file.Body)
}

// Decode parses circuit definitions from a byte slice
func (d *Decoder) Decode(filename string, src []byte) ([]NamedInput, error) {
	file, diags := d.parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Parsing("failed to parse circuit file", diags)
	}
	return d.decode(file.Body)
}

func (d *Decoder) decode(body hcl.Body) ([]NamedInput, error) {
	var schema fileSchema
	if diags := gohcl.DecodeBody(body, nil, &schema); diags.HasErrors() {
		return nil, errors.Parsing("failed to decode circuit file", diags)
	}

	defaults := schema.Defaults
	if defaults == nil {
		defaults = &defaultsSchema{}
	}

	inputs := make([]NamedInput, 0, len(schema.Circuits))
	for _, block := range schema.Circuits {
		input, err := buildInput(&block, defaults)
		if err != nil {
			return nil, errors.Wrap(errors.TypeParsing,
				"circuit "+block.Name, err)
		}
		inputs = append(inputs, NamedInput{Name: block.Name, Input: input})
	}
	return inputs, nil
}

// buildInput cascades circuit attributes over file defaults over the
// package's own fallbacks, then range-validates the result
func buildInput(block *circuitSchema, defaults *defaultsSchema) (*types.CableSizingInput, error) {
	standard := types.Standard(strOr(block.Standard, strOr(defaults.Standard, "")))
	if standard == "" {
		return nil, errors.Input("no standard set on circuit or in defaults block")
	}

	phases := intOr(block.Phases, 1)
	var circuit types.CircuitType
	switch phases {
	case 1:
		circuit = types.CircuitSinglePhase
	case 3:
		circuit = types.CircuitThreePhase
	default:
		return nil, errors.Inputf("phases must be 1 or 3, got %d", phases)
	}

	insulation := intOr(block.Insulation, intOr(defaults.Insulation, 0))
	if insulation == 0 {
		if standard == types.StandardNEC {
			insulation = 75
		} else {
			insulation = 70
		}
	}

	unit := types.LengthUnit(strOr(block.LengthUnit, string(standard.NativeLengthUnit())))

	input := &types.CableSizingInput{
		CurrentAmps:           block.Current,
		Length:                types.Length{Value: block.Length, Unit: unit},
		SystemVoltage:         floatOr(block.Voltage, floatOr(defaults.Voltage, 0)),
		Material:              types.Material(strOr(block.Material, strOr(defaults.Material, string(types.MaterialCopper)))),
		InstallationMethod:    types.InstallationMethod(strOr(block.Installation, strOr(defaults.Installation, string(types.MethodSingleConduit)))),
		CircuitType:           circuit,
		AmbientTempC:          floatOr(block.Ambient, floatOr(defaults.Ambient, 30)),
		ConductorCount:        intOr(block.Conductors, intOr(defaults.Conductors, 3)),
		InsulationRating:      insulation,
		Standard:              standard,
		MaxVoltageDropPercent: floatOr(block.MaxDrop, floatOr(defaults.MaxDrop, 0)),
		ExplicitSize:          types.Size(strOr(block.Size, "")),
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	return input, nil
}

func strOr(v *string, fallback string) string {
	if v != nil {
		return *v
	}
	return fallback
}

func floatOr(v *float64, fallback float64) float64 {
	if v != nil {
		return *v
	}
	return fallback
}

func intOr(v *int, fallback int) int {
	if v != nil {
		return *v
	}
	return fallback
}
