package data

import (
	"context"
	"errors"
	"sync"
	"time"

	"energy-history/internal/model"
	"energy-history/internal/observability/metrics"
)

// errorKind maps a load error to a stable metrics label.
func errorKind(err error) string {
	var nf *SourceNotFoundError
	var se *SchemaError
	var ee *EmptyDatasetError
	switch {
	case errors.As(err, &nf):
		return "source_not_found"
	case errors.As(err, &se):
		return "schema"
	case errors.As(err, &ee):
		return "empty_dataset"
	}
	return "other"
}

// Snapshot holds the most recent load pass. Each refresh rebuilds the dataset
// from the source file wholesale; readers always see either the previous
// complete pass or the new one, never a partial result.
type Snapshot struct {
	mu       sync.RWMutex
	path     string
	ds       *model.Dataset
	err      error
	loadedAt time.Time
}

func NewSnapshot(path string) *Snapshot {
	return &Snapshot{path: path}
}

// Refresh runs one full load pass and swaps in the result. The pass is pure
// apart from reading the file, so repeated invocation is idempotent.
func (s *Snapshot) Refresh() error {
	ds, err := LoadHistoryCSV(s.path)
	now := time.Now()

	if err != nil {
		metrics.ObserveLoadFailure(errorKind(err), now)
	} else {
		metrics.ObserveLoadSuccess(len(ds.Records), ds.DroppedRows(), now)
	}

	s.mu.Lock()
	s.ds, s.err, s.loadedAt = ds, err, now
	s.mu.Unlock()
	return err
}

// Latest returns the outcome of the most recent pass. The dataset is nil when
// the pass failed (or no pass has run yet); err carries the typed load error.
func (s *Snapshot) Latest() (*model.Dataset, time.Time, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ds, s.loadedAt, s.err
}

// Run refreshes immediately, then on every tick until ctx is done. Load
// failures are retried on the next tick only; there is no backoff because the
// period already bounds the retry rate.
func (s *Snapshot) Run(ctx context.Context, interval time.Duration) {
	_ = s.Refresh()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_ = s.Refresh()
		}
	}
}
