package network_wifi

import (
	"context"

	wifiscanner "github.com/dogeorg/wifiscanner/pkg"
	"github.com/sirupsen/logrus"
)

var _ wifiscanner.ScanTrigger = &PlatformTrigger{}

/* PlatformTrigger
 *
 * Adapts a blocking WifiScanner to the fire-and-forget ScanTrigger the
 * Scanner expects. Each RequestScan runs the scan in its own goroutine and
 * posts a Completion tagged with the requesting session ID. Scans are not
 * cancelled when superseded; the Scanner drops their late completions.
 */
type PlatformTrigger struct {
	scanner     WifiScanner
	iface       string
	log         logrus.FieldLogger
	completions chan wifiscanner.Completion
}

func NewPlatformTrigger(scanner WifiScanner, iface string, log logrus.FieldLogger) *PlatformTrigger {
	return &PlatformTrigger{
		scanner:     scanner,
		iface:       iface,
		log:         log,
		completions: make(chan wifiscanner.Completion, 4),
	}
}

func (t *PlatformTrigger) RequestScan(sessionID string) {
	go func() {
		t.log.WithFields(logrus.Fields{"session": sessionID, "iface": t.iface}).Debug("requesting platform scan")
		results, err := t.scanner.Scan(context.Background(), t.iface)
		t.completions <- wifiscanner.Completion{
			SessionID: sessionID,
			Results:   results,
			Err:       err,
		}
	}()
}

func (t *PlatformTrigger) Completions() <-chan wifiscanner.Completion {
	return t.completions
}
