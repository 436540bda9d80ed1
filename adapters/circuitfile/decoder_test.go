package circuitfile

import (
	"testing"

	"cablesize/core/types"
	"cablesize/internal/errors"
)

const sampleFile = `
defaults {
  standard = "iec"
  voltage  = 230
  ambient  = 35
}

circuit "pump_feeder" {
  current    = 30
  length     = 50
  phases     = 1
  conductors = 3
}

circuit "chiller" {
  current      = 100
  length       = 80
  phases       = 3
  voltage      = 400
  material     = "aluminum"
  installation = "tray"
  insulation   = 90
  conductors   = 6
  max_drop     = 5
}
`

func TestDecodeSampleFile(t *testing.T) {
	inputs, err := NewDecoder().Decode("circuits.hcl", []byte(sampleFile))
	if err != nil {
		t.Fatal(err)
	}
	if len(inputs) != 2 {
		t.Fatalf("decoded %d circuits, want 2", len(inputs))
	}

	pump := inputs[0]
	if pump.Name != "pump_feeder" {
		t.Errorf("name = %s, want pump_feeder", pump.Name)
	}
	in := pump.Input
	if in.Standard != types.StandardIEC {
		t.Errorf("standard = %s, want iec (from defaults)", in.Standard)
	}
	if in.SystemVoltage != 230 {
		t.Errorf("voltage = %g, want 230 (from defaults)", in.SystemVoltage)
	}
	if in.AmbientTempC != 35 {
		t.Errorf("ambient = %g, want 35 (from defaults)", in.AmbientTempC)
	}
	if in.Length != types.Meters(50) {
		t.Errorf("length = %+v, want 50 m (IEC native unit)", in.Length)
	}
	if in.Material != types.MaterialCopper {
		t.Errorf("material = %s, want copper fallback", in.Material)
	}
	if in.InsulationRating != 70 {
		t.Errorf("insulation = %d, want IEC fallback 70", in.InsulationRating)
	}
	if in.CircuitType != types.CircuitSinglePhase {
		t.Errorf("circuit type = %s, want single_phase", in.CircuitType)
	}

	chiller := inputs[1].Input
	if chiller.SystemVoltage != 400 {
		t.Errorf("chiller voltage = %g, want circuit value 400 over defaults", chiller.SystemVoltage)
	}
	if chiller.Material != types.MaterialAluminum {
		t.Errorf("chiller material = %s, want aluminum", chiller.Material)
	}
	if chiller.InstallationMethod != types.MethodTray {
		t.Errorf("chiller method = %s, want tray", chiller.InstallationMethod)
	}
	if chiller.CircuitType != types.CircuitThreePhase {
		t.Errorf("chiller circuit type = %s, want three_phase", chiller.CircuitType)
	}
	if chiller.MaxVoltageDropPercent != 5 {
		t.Errorf("chiller max drop = %g, want 5", chiller.MaxVoltageDropPercent)
	}
}

func TestDecodeNECLengthUnit(t *testing.T) {
	src := `
circuit "panel_run" {
  standard = "nec"
  current  = 100
  length   = 150
  voltage  = 240
}
`
	inputs, err := NewDecoder().Decode("circuits.hcl", []byte(src))
	if err != nil {
		t.Fatal(err)
	}
	in := inputs[0].Input
	if in.Length != types.Feet(150) {
		t.Errorf("length = %+v, want 150 ft (NEC native unit)", in.Length)
	}
	if in.InsulationRating != 75 {
		t.Errorf("insulation = %d, want NEC fallback 75", in.InsulationRating)
	}
}

func TestDecodeErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"missing standard", `
circuit "a" {
  current = 30
  length  = 50
  voltage = 230
}
`},
		{"bad phases", `
circuit "a" {
  standard = "iec"
  current  = 30
  length   = 50
  voltage  = 230
  phases   = 2
}
`},
		{"invalid input ranges", `
circuit "a" {
  standard = "iec"
  current  = -5
  length   = 50
  voltage  = 230
}
`},
		{"hcl syntax error", `circuit "a" {`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewDecoder().Decode("circuits.hcl", []byte(tc.src))
			if err == nil {
				t.Fatal("expected decode error")
			}
		})
	}
}

func TestDecodeErrorsCarryParsingType(t *testing.T) {
	_, err := NewDecoder().Decode("circuits.hcl", []byte(`circuit "a" {`))
	if !errors.IsType(err, errors.TypeParsing) {
		t.Errorf("syntax errors must be parsing errors, got %v", err)
	}
}
