package data

import (
	"fmt"
	"strings"
)

// SourceNotFoundError means the history CSV is absent. Fatal for the current
// pass; the next scheduled refresh retries naturally.
type SourceNotFoundError struct {
	Path string
	Err  error
}

func (e *SourceNotFoundError) Error() string {
	return fmt.Sprintf("history file not found: %s", e.Path)
}

func (e *SourceNotFoundError) Unwrap() error { return e.Err }

// SchemaError means the header is missing required columns. Fatal for the
// current pass; Missing lists the absent names in canonical order.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing required columns: [%s]", strings.Join(e.Missing, ", "))
}

// EmptyDatasetError means the file exists and has a valid header but no data
// rows yet. This is a user-visible "no data yet" state, not a fault.
type EmptyDatasetError struct {
	Path string
}

func (e *EmptyDatasetError) Error() string {
	return fmt.Sprintf("history file contains no data entries yet: %s", e.Path)
}
