package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("load defaults: %v", err)
	}
	if c.HistoryCSV != "energy_history.csv" {
		t.Fatalf("history_csv = %q", c.HistoryCSV)
	}
	if c.Refresh.Interval() != 60*time.Second {
		t.Fatalf("refresh interval = %s, want 60s", c.Refresh.Interval())
	}
	if c.TailRows != 100 {
		t.Fatalf("tail_rows = %d, want 100", c.TailRows)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `history_csv: /var/log/meter/history.csv
server:
  listen_addr: ":9090"
  allowed_origins: ["https://dashboard.local"]
refresh:
  interval_seconds: 30
tail_rows: 250
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.HistoryCSV != "/var/log/meter/history.csv" {
		t.Fatalf("history_csv = %q", c.HistoryCSV)
	}
	if c.Server.ListenAddr != ":9090" {
		t.Fatalf("listen_addr = %q", c.Server.ListenAddr)
	}
	if c.Refresh.Interval() != 30*time.Second {
		t.Fatalf("interval = %s", c.Refresh.Interval())
	}
	if c.TailRows != 250 {
		t.Fatalf("tail_rows = %d", c.TailRows)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("history_csv: other.csv\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.HistoryCSV != "other.csv" {
		t.Fatalf("history_csv = %q", c.HistoryCSV)
	}
	if c.Server.ListenAddr != ":8080" || c.Refresh.IntervalSeconds != 60 {
		t.Fatalf("defaults not applied: %+v", c)
	}
}

func TestValidateRejectsBadInterval(t *testing.T) {
	c := Default()
	c.Refresh.IntervalSeconds = -5
	if err := c.Validate(); err == nil {
		t.Fatalf("expected validation error")
	}
}
