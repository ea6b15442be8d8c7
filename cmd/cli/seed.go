package main

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"energy-history/internal/data"
	"energy-history/internal/model"

	"github.com/spf13/cobra"
)

var (
	seedOut    string
	seedDays   int
	seedStep   int
	seedTariff float64
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generate a synthetic history CSV for demos and local development",
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&seedOut, "out", "energy_history.csv", "output CSV path")
	seedCmd.Flags().IntVar(&seedDays, "days", 3, "days of history to generate")
	seedCmd.Flags().IntVar(&seedStep, "step", 60, "sample period in seconds")
	seedCmd.Flags().Float64Var(&seedTariff, "tariff", 8.5, "price per kWh (BDT)")
	rootCmd.AddCommand(seedCmd)
}

// runSeed emulates a single-phase appliance meter: a daily load curve with
// noise, and energy/cost accumulated from the instantaneous power.
func runSeed(cmd *cobra.Command, args []string) error {
	if seedDays <= 0 || seedStep <= 0 {
		return fmt.Errorf("--days and --step must be positive")
	}

	start := time.Now().AddDate(0, 0, -seedDays).Truncate(time.Minute)
	step := time.Duration(seedStep) * time.Second
	rng := rand.New(rand.NewSource(start.Unix()))

	var records []model.Record
	energy := 0.0
	elapsed := 0.0
	for t := start; t.Before(time.Now()); t = t.Add(step) {
		hour := float64(t.Hour()) + float64(t.Minute())/60
		// load peaks in the evening, idles overnight
		base := 40 + 180*math.Exp(-math.Pow(hour-19, 2)/8)
		power := base + rng.NormFloat64()*10
		if power < 0 {
			power = 0
		}
		voltage := 220 + rng.NormFloat64()*3
		current := power / voltage * 1000

		energy += power * step.Hours() / 1000
		elapsed += step.Minutes()

		records = append(records, model.Record{
			Time:        t,
			CurrentMA:   current,
			VoltageV:    voltage,
			PowerW:      power,
			EnergyKWh:   energy,
			CostBDT:     energy * seedTariff,
			DurationMin: elapsed,
		})
	}

	if dir := filepath.Dir(seedOut); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := data.WriteHistoryCSV(seedOut, records); err != nil {
		return err
	}
	fmt.Printf("Wrote %d rows covering %d days to %s\n", len(records), seedDays, seedOut)
	return nil
}
