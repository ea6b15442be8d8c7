package main

import (
	"fmt"
	"math"

	"energy-history/internal/model"
)

func printCorrelation(m model.DerivedMetrics) {
	cols := m.Correlation.Columns
	fmt.Printf("%-16s", "")
	for _, c := range cols {
		fmt.Printf(" %14s", shorten(c))
	}
	fmt.Println()
	for i, row := range m.Correlation.Matrix {
		fmt.Printf("%-16s", shorten(cols[i]))
		for _, v := range row {
			if math.IsNaN(v) {
				fmt.Printf(" %14s", "-")
			} else {
				fmt.Printf(" %14.3f", v)
			}
		}
		fmt.Println()
	}
}

func shorten(col string) string {
	if len(col) > 14 {
		return col[:14]
	}
	return col
}
