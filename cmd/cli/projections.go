package main

import (
	"fmt"
	"math"

	"energy-history/internal/analysis"
	"energy-history/internal/charts"

	"github.com/spf13/cobra"
)

var projectionsCmd = &cobra.Command{
	Use:   "projections [name]",
	Short: "List the projection catalog, or print one projection's (x, y) pairs",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runProjections,
}

func init() {
	rootCmd.AddCommand(projectionsCmd)
}

func runProjections(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		for _, p := range charts.Catalog() {
			fmt.Printf("%-20s %s -> %s\n", p.Name, p.XColumn, p.YColumn)
		}
		return nil
	}

	ds, err := loadDataset()
	if err != nil {
		return err
	}
	r, err := resolveRange(ds)
	if err != nil {
		return err
	}

	filtered := analysis.FilterRange(ds.Records, r)
	proj, err := charts.Lookup(args[0])
	if err != nil {
		return err
	}
	pts, err := charts.Project(args[0], filtered)
	if err != nil {
		return err
	}

	for _, pt := range pts {
		if proj.TimeSeries() {
			fmt.Printf("%s\t%s\n", pt.Time.Format("2006-01-02 15:04:05"), pairCell(pt.Y))
		} else {
			fmt.Printf("%s\t%s\n", pairCell(pt.X), pairCell(pt.Y))
		}
	}
	fmt.Printf("%d points\n", len(pts))
	return nil
}

func pairCell(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return fmt.Sprintf("%g", v)
}
