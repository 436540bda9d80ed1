// Package cmd - size command
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"cablesize/core/output"
	"cablesize/core/sizing"
	"cablesize/core/types"
	"cablesize/internal/config"
	"cablesize/internal/logging"
)

var (
	sizeCurrent      float64
	sizeLength       float64
	sizeLengthUnit   string
	sizeVoltage      float64
	sizeStandard     string
	sizeMaterial     string
	sizeInstallation string
	sizePhases       int
	sizeAmbient      float64
	sizeConductors   int
	sizeInsulation   int
	sizeMaxDrop      float64
	sizeExplicit     string
	sizeFormat       string
	sizeNoColor      bool
)

// sizeCmd represents the size command
var sizeCmd = &cobra.Command{
	Use:   "size",
	Short: "Size a single circuit from flags",
	Long: `Recommend the smallest compliant conductor size for one circuit.

Length must be given in the standard's native unit: meters for IEC,
feet for NEC. Pass --size to check a specific size instead of
searching.

Examples:
  cablesize size --standard iec --current 30 --length 50 --voltage 230
  cablesize size --standard nec --current 60 --length 120 --voltage 240 --insulation 75
  cablesize size --standard iec --current 50 --length 100 --voltage 400 --phases 3 --size 16`,
	RunE: runSize,
}

func init() {
	flags := sizeCmd.Flags()
	flags.Float64VarP(&sizeCurrent, "current", "i", 0, "load current in amps (required)")
	flags.Float64VarP(&sizeLength, "length", "l", 0, "one-way run length in the standard's native unit (required)")
	flags.StringVar(&sizeLengthUnit, "length-unit", "", "length unit (m, ft; default is the standard's native unit)")
	flags.Float64VarP(&sizeVoltage, "voltage", "V", 0, "system voltage (default from config)")
	flags.StringVarP(&sizeStandard, "standard", "s", "", "governing standard: iec or nec (default from config)")
	flags.StringVarP(&sizeMaterial, "material", "m", "copper", "conductor material (copper, aluminum)")
	flags.StringVar(&sizeInstallation, "installation", "single_conduit", "installation method (single_conduit, multi_conduit, tray, direct_buried, free_air)")
	flags.IntVarP(&sizePhases, "phases", "p", 1, "circuit phases (1 or 3)")
	flags.Float64Var(&sizeAmbient, "ambient", 0, "ambient temperature in Celsius (default from config)")
	flags.IntVarP(&sizeConductors, "conductors", "n", 3, "grouped current-carrying conductors")
	flags.IntVar(&sizeInsulation, "insulation", 0, "insulation rating in Celsius (default 70 for IEC, 75 for NEC)")
	flags.Float64Var(&sizeMaxDrop, "max-drop", 0, "max voltage drop percent (default 3.0)")
	flags.StringVar(&sizeExplicit, "size", "", "check this size instead of searching")
	flags.StringVarP(&sizeFormat, "format", "f", "", "output format (cli, json, markdown)")
	flags.BoolVar(&sizeNoColor, "no-color", false, "disable colored output")

	_ = sizeCmd.MarkFlagRequired("current")
	_ = sizeCmd.MarkFlagRequired("length")
}

func runSize(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	standard := types.Standard(sizeStandard)
	if sizeStandard == "" {
		standard = types.Standard(cfg.Defaults.Standard)
	}

	ambient := sizeAmbient
	if ambient == 0 {
		ambient = cfg.Defaults.AmbientTempC
	}
	voltage := sizeVoltage
	if voltage == 0 {
		voltage = cfg.Defaults.SystemVoltage
	}
	insulation := sizeInsulation
	if insulation == 0 {
		if standard == types.StandardNEC {
			insulation = 75
		} else {
			insulation = 70
		}
	}
	unit := types.LengthUnit(sizeLengthUnit)
	if sizeLengthUnit == "" {
		unit = standard.NativeLengthUnit()
	}

	circuit := types.CircuitSinglePhase
	if sizePhases == 3 {
		circuit = types.CircuitThreePhase
	}

	input := &types.CableSizingInput{
		CurrentAmps:           sizeCurrent,
		Length:                types.Length{Value: sizeLength, Unit: unit},
		SystemVoltage:         voltage,
		Material:              types.Material(sizeMaterial),
		InstallationMethod:    types.InstallationMethod(sizeInstallation),
		CircuitType:           circuit,
		AmbientTempC:          ambient,
		ConductorCount:        sizeConductors,
		InsulationRating:      insulation,
		Standard:              standard,
		MaxVoltageDropPercent: sizeMaxDrop,
		ExplicitSize:          types.Size(sizeExplicit),
	}

	if err := input.Validate(); err != nil {
		return err
	}

	logging.Sugar.Debugw("sizing circuit",
		"standard", input.Standard, "current", input.CurrentAmps, "length", input.Length.Value)

	result, err := sizing.NewDefaultSelector().Select(input)
	if err != nil {
		return err
	}

	return renderReports(sizeFormat, sizeNoColor, []*output.Report{{Input: input, Result: result}})
}

// renderReports writes reports in the chosen format
func renderReports(format string, noColor bool, reports []*output.Report) error {
	cfg := config.Get()

	chosen := output.Format(format)
	if chosen == "" {
		chosen = output.Format(cfg.Output.DefaultFormat)
	}

	var formatter output.Formatter
	var err error
	if chosen == output.FormatCLI || chosen == "" {
		formatter = output.NewTerminalFormatter(noColor || cfg.Output.NoColor)
	} else if formatter, err = output.New(chosen); err != nil {
		return err
	}

	if len(reports) == 1 {
		return formatter.Render(os.Stdout, reports[0])
	}
	return formatter.RenderAll(os.Stdout, reports)
}
