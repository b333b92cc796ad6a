package history

import (
	"errors"
	"fmt"
)

// ErrExportFailed matches any error returned by Store.Export.
var ErrExportFailed = errors.New("export failed")

// ExportError reports a failed export and carries the underlying cause.
type ExportError struct {
	Path string
	Err  error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export failed: %s: %v", e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrExportFailed) true for every ExportError.
func (e *ExportError) Is(target error) bool {
	return target == ErrExportFailed
}

// DegradationKind classifies a swallowed storage failure.
type DegradationKind string

const (
	// StorageReadDegraded: the persisted history could not be loaded and the
	// store started empty.
	StorageReadDegraded DegradationKind = "storage_read_degraded"

	// StorageWriteDegraded: a mutation was applied in memory but not persisted.
	StorageWriteDegraded DegradationKind = "storage_write_degraded"

	// StorageRemoveDegraded: clear emptied the history but the artifact remains.
	StorageRemoveDegraded DegradationKind = "storage_remove_degraded"
)

// Degradation is a storage failure that was logged instead of returned.
type Degradation struct {
	Kind     DegradationKind
	Location string
	Err      error
}

func (d Degradation) Error() string {
	return fmt.Sprintf("%s: %s: %v", d.Kind, d.Location, d.Err)
}

func (d Degradation) Unwrap() error {
	return d.Err
}
