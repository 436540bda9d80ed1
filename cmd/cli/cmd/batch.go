// Package cmd - batch command
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cablesize/adapters/circuitfile"
	"cablesize/core/output"
	"cablesize/core/sizing"
	"cablesize/internal/logging"
)

var (
	batchFormat  string
	batchNoColor bool
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file.hcl>",
	Short: "Size every circuit in an HCL circuit file",
	Long: `Parse an HCL circuit file and size each declared circuit.

Example file:

  defaults {
    standard = "iec"
    voltage  = 230
  }

  circuit "pump_feeder" {
    current    = 30
    length     = 50
    conductors = 3
  }`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVarP(&batchFormat, "format", "f", "", "output format (cli, json, markdown)")
	batchCmd.Flags().BoolVar(&batchNoColor, "no-color", false, "disable colored output")
}

func runBatch(cmd *cobra.Command, args []string) error {
	path := args[0]
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("circuit file does not exist: %s", path)
	}

	circuits, err := circuitfile.NewDecoder().DecodeFile(path)
	if err != nil {
		return err
	}
	if len(circuits) == 0 {
		fmt.Println("No circuits found in the file.")
		return nil
	}

	logging.Sugar.Debugw("sizing batch", "file", path, "circuits", len(circuits))

	selector := sizing.NewDefaultSelector()
	reports := make([]*output.Report, 0, len(circuits))
	for _, circuit := range circuits {
		result, err := selector.Select(circuit.Input)
		if err != nil {
			return fmt.Errorf("circuit %s: %w", circuit.Name, err)
		}
		reports = append(reports, &output.Report{
			Name:   circuit.Name,
			Input:  circuit.Input,
			Result: result,
		})
	}

	return renderReports(batchFormat, batchNoColor, reports)
}
