package main

import (
	"fmt"
	"os"
	"time"

	"energy-history/internal/config"
	"energy-history/internal/data"
	"energy-history/internal/model"

	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	dataFile  string
	startDate string
	endDate   string
)

var rootCmd = &cobra.Command{
	Use:   "energy-history",
	Short: "Inspect and summarize an energy metering log",
	Long: `energy-history runs the analytics pipeline over an energy_history.csv log:
it validates the schema, drops rows with unparseable timestamps, applies an
inclusive date-range filter, and derives energy/cost totals, max power and a
correlation matrix over the numeric columns.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (optional)")
	rootCmd.PersistentFlags().StringVar(&dataFile, "data", "", "history CSV (default from config)")
	rootCmd.PersistentFlags().StringVar(&startDate, "start", "", "range start, YYYY-MM-DD (default: first day in log)")
	rootCmd.PersistentFlags().StringVar(&endDate, "end", "", "range end, YYYY-MM-DD (default: last day in log)")
}

func loadConfig() (*config.Config, error) {
	return config.Load(cfgFile)
}

// loadDataset runs the load/validate stage against the configured log.
func loadDataset() (*model.Dataset, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	path := cfg.HistoryCSV
	if dataFile != "" {
		path = dataFile
	}
	return data.LoadHistoryCSV(path)
}

// resolveRange applies --start/--end over the dataset's own bounds.
func resolveRange(ds *model.Dataset) (model.DateRange, error) {
	minT, maxT, _ := ds.TimeBounds()
	r := model.DateRange{Start: minT, End: maxT}
	if startDate != "" {
		t, err := time.ParseInLocation("2006-01-02", startDate, time.Local)
		if err != nil {
			return r, fmt.Errorf("invalid --start %q: %w", startDate, err)
		}
		r.Start = t
	}
	if endDate != "" {
		t, err := time.ParseInLocation("2006-01-02", endDate, time.Local)
		if err != nil {
			return r, fmt.Errorf("invalid --end %q: %w", endDate, err)
		}
		r.End = t
	}
	return r, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
