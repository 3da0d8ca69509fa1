package snapshot

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	wifiscanner "github.com/dogeorg/wifiscanner/pkg"
)

// DirName is created under the base directory to hold snapshots.
const DirName = "WifiScanner"

// year, day, month: day before month is deliberate
const timestampLayout = "2006_02_01_15_04_05"

// FileName is the snapshot file name for a session started at startedAt.
// Sessions started within the same second share a name.
func FileName(startedAt time.Time) string {
	return startedAt.Format(timestampLayout) + "_snap.csv"
}

/* Export writes a completed session as CSV under <baseDir>/WifiScanner
 * and returns the path written. One row per record:
 *
 *   BSSID,SSID,channel,signal
 *
 * with no header and an empty channel for unclassifiable frequencies.
 *
 * Rows go to a temp file in the target directory which is renamed into
 * place once fully written, so a reader never sees a half-written snapshot.
 */
func Export(s wifiscanner.Session, baseDir string) (string, error) {
	if s.State != wifiscanner.StateCompleted || len(s.Results) == 0 {
		return "", wifiscanner.ErrNothingToScan
	}

	dir, err := ensureDir(baseDir)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, FileName(s.StartedAt))
	if err := writeAtomic(path, s.Results); err != nil {
		return "", &wifiscanner.WriteError{Path: path, Err: err}
	}
	return path, nil
}

func ensureDir(baseDir string) (string, error) {
	info, err := os.Stat(baseDir)
	if err != nil {
		return "", fmt.Errorf("%w: %w", wifiscanner.ErrStorageUnavailable, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %q is not a directory", wifiscanner.ErrStorageUnavailable, baseDir)
	}

	dir := filepath.Join(baseDir, DirName)
	if err := os.Mkdir(dir, 0o755); err != nil && !errors.Is(err, fs.ErrExist) {
		return "", fmt.Errorf("%w: %w", wifiscanner.ErrStorageUnavailable, err)
	}

	info, err = os.Stat(dir)
	if err != nil {
		return "", fmt.Errorf("%w: %w", wifiscanner.ErrStorageUnavailable, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %q is not a directory", wifiscanner.ErrStorageUnavailable, dir)
	}
	return dir, nil
}

func writeAtomic(path string, records []wifiscanner.AccessPointRecord) error {
	tempFile, err := os.CreateTemp(filepath.Dir(path), ".snap-*.csv")
	if err != nil {
		return fmt.Errorf("cannot create temporary file: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			tempFile.Close()
			os.Remove(tempFile.Name())
		}
	}()

	w := csv.NewWriter(tempFile)
	for _, r := range records {
		if err := w.Write(Row(r)); err != nil {
			return fmt.Errorf("cannot write row for %s: %w", r.BSSID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("cannot flush rows: %w", err)
	}

	if err := tempFile.Sync(); err != nil {
		return fmt.Errorf("cannot sync temporary file: %w", err)
	}
	if err := tempFile.Chmod(0o644); err != nil {
		return fmt.Errorf("cannot chmod temporary file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("cannot close temporary file: %w", err)
	}

	if err := os.Rename(tempFile.Name(), path); err != nil {
		return fmt.Errorf("cannot rename temporary file to %q: %w", path, err)
	}
	committed = true
	return nil
}

// Row is the CSV row for one record.
func Row(r wifiscanner.AccessPointRecord) []string {
	channel := ""
	if c, ok := wifiscanner.ClassifyChannel(r.Frequency); ok {
		channel = strconv.Itoa(c)
	}
	return []string{r.BSSID, r.SSID, channel, strconv.Itoa(r.SignalLevel)}
}
