package main

import (
	"fmt"
	"math"

	"energy-history/internal/analysis"

	"github.com/spf13/cobra"
)

var rowsLimit int

var rowsCmd = &cobra.Command{
	Use:   "rows",
	Short: "Print validated rows in the selected range",
	RunE:  runRows,
}

func init() {
	rowsCmd.Flags().IntVar(&rowsLimit, "limit", 100, "show at most the last N rows (0 = all)")
	rootCmd.AddCommand(rowsCmd)
}

func runRows(cmd *cobra.Command, args []string) error {
	ds, err := loadDataset()
	if err != nil {
		return err
	}
	r, err := resolveRange(ds)
	if err != nil {
		return err
	}

	filtered := analysis.FilterRange(ds.Records, r)
	if rowsLimit > 0 && rowsLimit < len(filtered) {
		filtered = filtered[len(filtered)-rowsLimit:]
	}

	fmt.Printf("%-20s %12s %10s %10s %12s %12s %10s\n",
		"time", "current_mA", "voltage_V", "power_W", "energy_kWh", "cost_BDT", "dur_min")
	for _, rec := range filtered {
		fmt.Printf("%-20s %12s %10s %10s %12s %12s %10s\n",
			rec.Time.Format("2006-01-02 15:04:05"),
			cellStr(rec.CurrentMA), cellStr(rec.VoltageV), cellStr(rec.PowerW),
			cellStr(rec.EnergyKWh), cellStr(rec.CostBDT), cellStr(rec.DurationMin))
	}
	fmt.Printf("%d rows\n", len(filtered))
	return nil
}

func cellStr(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return fmt.Sprintf("%.3f", v)
}
