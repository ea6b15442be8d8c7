package main

import (
	"fmt"
	"os"
	"path/filepath"

	"energy-history/internal/analysis"
	"energy-history/internal/data"

	"github.com/spf13/cobra"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the filtered range back out as CSV",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "results/filtered.csv", "output CSV path")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	ds, err := loadDataset()
	if err != nil {
		return err
	}
	r, err := resolveRange(ds)
	if err != nil {
		return err
	}

	filtered := analysis.FilterRange(ds.Records, r)
	if err := os.MkdirAll(filepath.Dir(exportOut), 0o755); err != nil {
		return err
	}
	if err := data.WriteHistoryCSV(exportOut, filtered); err != nil {
		return err
	}
	fmt.Printf("Wrote %d rows to %s\n", len(filtered), exportOut)
	return nil
}
