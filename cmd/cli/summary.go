package main

import (
	"fmt"
	"math"

	"energy-history/internal/analysis"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Derived metrics and per-column statistics for a date range",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	ds, err := loadDataset()
	if err != nil {
		return err
	}
	r, err := resolveRange(ds)
	if err != nil {
		return err
	}

	filtered := analysis.FilterRange(ds.Records, r)
	from, to := r.Window()
	fmt.Printf("Filtering data from %s to %s\n", from.Format("2006-01-02 15:04:05"), to.Format("2006-01-02 15:04:05"))
	fmt.Printf("Filtered rows: %d (of %d valid, %d dropped)\n\n", len(filtered), len(ds.Records), ds.DroppedRows())

	if len(filtered) == 0 {
		fmt.Println("No data available for the selected date range.")
		return nil
	}

	m := analysis.ComputeMetrics(filtered)
	if math.IsNaN(m.MaxPower) {
		fmt.Println("Max Power:    n/a")
	} else {
		fmt.Printf("Max Power:    %.2f W\n", m.MaxPower)
	}
	fmt.Printf("Total Energy: %.4f kWh\n", m.TotalEnergyDelta)
	fmt.Printf("Total Cost:   ৳%.2f\n", m.TotalCostDelta)
	if m.EnergyResets > 0 || m.CostResets > 0 {
		fmt.Printf("Counter resets in window: energy=%d cost=%d\n", m.EnergyResets, m.CostResets)
	}

	fmt.Printf("\n%-16s %8s %12s %12s %12s %12s %12s %12s %12s\n",
		"column", "count", "mean", "std", "min", "p25", "p50", "p75", "max")
	for _, s := range analysis.Describe(filtered) {
		fmt.Printf("%-16s %8d %12s %12s %12s %12s %12s %12s %12s\n",
			s.Column, s.Count,
			fmtStat(s.Mean), fmtStat(s.Std), fmtStat(s.Min),
			fmtStat(s.P25), fmtStat(s.P50), fmtStat(s.P75), fmtStat(s.Max))
	}

	fmt.Println("\nCorrelation matrix:")
	printCorrelation(m)
	return nil
}

func fmtStat(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return fmt.Sprintf("%.4f", v)
}
