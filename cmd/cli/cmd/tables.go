// Package cmd - tables command
package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"cablesize/core/tables"
	"cablesize/core/types"
	"cablesize/internal/errors"
)

// tablesCmd represents the tables command
var tablesCmd = &cobra.Command{
	Use:   "tables <standard>",
	Short: "Dump a standard's ampacity and resistance tables",
	Long: `Print the ordered size list for a standard with base ampacity per
insulation rating and per-unit-length resistance per material.

Examples:
  cablesize tables iec
  cablesize tables nec`,
	Args: cobra.ExactArgs(1),
	RunE: runTables,
}

func runTables(cmd *cobra.Command, args []string) error {
	std := types.Standard(args[0])
	if !std.IsValid() {
		return errors.Inputf("unknown standard %q (want iec or nec)", args[0])
	}

	t := tables.Default()
	sizes, err := t.Sizes(std)
	if err != nil {
		return err
	}
	ratings := t.InsulationRatings(std)

	resUnit := "Ω/km"
	if std == types.StandardNEC {
		resUnit = "Ω/kft"
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	defer w.Flush()

	for _, mat := range []types.Material{types.MaterialCopper, types.MaterialAluminum} {
		fmt.Fprintf(w, "\n%s / %s\n", std, mat)
		fmt.Fprintf(w, "Size")
		for _, rating := range ratings {
			fmt.Fprintf(w, "\t%dC (A)", rating)
		}
		fmt.Fprintf(w, "\tR (%s)\n", resUnit)

		for _, size := range sizes {
			fmt.Fprintf(w, "%s", size)
			tabulated := false
			for _, rating := range ratings {
				amps, err := t.Ampacity(std, mat, rating, size)
				if err != nil {
					fmt.Fprintf(w, "\t-")
					continue
				}
				tabulated = true
				fmt.Fprintf(w, "\t%.0f", amps)
			}
			if resistance, err := t.Resistance(std, mat, size); err == nil && tabulated {
				fmt.Fprintf(w, "\t%.4g", resistance)
			} else {
				fmt.Fprintf(w, "\t-")
			}
			fmt.Fprintln(w)
		}
	}
	return nil
}
