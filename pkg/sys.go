package wifiscanner

// see ./system/ for implementations

// Issues platform scans on behalf of the Scanner. RequestScan must not
// block; the outcome arrives later on the Completions channel tagged with
// the session ID that asked for it.
type ScanTrigger interface {
	RequestScan(sessionID string)
	Completions() <-chan Completion
}

// A Completion is the platform's answer to one RequestScan.
// Err is set when the platform scan itself failed.
type Completion struct {
	SessionID string
	Results   []AccessPointRecord
	Err       error
}

// Resolves a writable base directory for snapshots, or
// reports ErrStorageUnavailable.
type StorageLocator interface {
	Resolve() (string, error)
}
