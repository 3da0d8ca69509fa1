package wifiscanner

import (
	"errors"
	"fmt"
)

var (
	// ErrNothingToScan means there is no completed session with results to export
	ErrNothingToScan = errors.New("no wifis to save")

	// ErrStorageUnavailable means the snapshot directory cannot be ensured
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrSuperseded means the awaited session was replaced by a newer Start
	ErrSuperseded = errors.New("scan session superseded")

	// ErrNoWifiInterface means no wireless station interface was found
	ErrNoWifiInterface = errors.New("no wifi interface found")
)

// WriteError is returned when writing a snapshot fails after the target
// directory was ensured.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("cannot write snapshot %q: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
