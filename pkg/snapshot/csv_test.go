package snapshot

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	wifiscanner "github.com/dogeorg/wifiscanner/pkg"
	"github.com/google/go-cmp/cmp"
)

var startedAt = time.Date(2024, time.March, 7, 14, 5, 9, 0, time.Local)

func completed(records ...wifiscanner.AccessPointRecord) wifiscanner.Session {
	return wifiscanner.Session{
		ID:        "test",
		StartedAt: startedAt,
		State:     wifiscanner.StateCompleted,
		Results:   records,
	}
}

func readRows(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	return rows
}

func dirEntries(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		t.Fatal(err)
	}
	names := []string{}
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestFileName(t *testing.T) {
	if got, want := FileName(startedAt), "2024_07_03_14_05_09_snap.csv"; got != want {
		t.Errorf("FileName = %q, want %q", got, want)
	}

	// same wall clock second, same name
	later := startedAt.Add(900 * time.Millisecond)
	if FileName(later) != FileName(startedAt) {
		t.Error("sessions in the same second should share a file name")
	}
}

func TestExportRoundTrip(t *testing.T) {
	base := t.TempDir()
	s := completed(wifiscanner.AccessPointRecord{BSSID: "AA:BB:CC:DD:EE:FF", SSID: "home", Frequency: 2437, SignalLevel: -45})

	path, err := Export(s, base)
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(base, "WifiScanner", "2024_07_03_14_05_09_snap.csv"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}

	want := [][]string{{"AA:BB:CC:DD:EE:FF", "home", "6", "-45"}}
	if diff := cmp.Diff(want, readRows(t, path)); diff != "" {
		t.Errorf("rows (-want +got):\n%s", diff)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != "AA:BB:CC:DD:EE:FF,home,6,-45\n" {
		t.Errorf("raw file = %q", raw)
	}
}

func TestExportQuotingAndUnknownChannel(t *testing.T) {
	base := t.TempDir()
	s := completed(
		wifiscanner.AccessPointRecord{BSSID: "00:11:22:33:44:55", SSID: `cafe, "guest"`, Frequency: 5180, SignalLevel: -67},
		wifiscanner.AccessPointRecord{BSSID: "66:77:88:99:AA:BB", SSID: "", Frequency: 60480, SignalLevel: -80},
	)

	path, err := Export(s, base)
	if err != nil {
		t.Fatal(err)
	}

	want := [][]string{
		{"00:11:22:33:44:55", `cafe, "guest"`, "36", "-67"},
		{"66:77:88:99:AA:BB", "", "", "-80"},
	}
	if diff := cmp.Diff(want, readRows(t, path)); diff != "" {
		t.Errorf("rows (-want +got):\n%s", diff)
	}
}

func TestExportNothingToScan(t *testing.T) {
	cases := map[string]wifiscanner.Session{
		"empty results": completed(),
		"still scanning": {
			ID: "x", StartedAt: startedAt, State: wifiscanner.StateScanning,
		},
		"idle": {},
	}

	for name, s := range cases {
		t.Run(name, func(t *testing.T) {
			base := t.TempDir()
			_, err := Export(s, base)
			if !errors.Is(err, wifiscanner.ErrNothingToScan) {
				t.Fatalf("err = %v, want ErrNothingToScan", err)
			}
			if entries := dirEntries(t, base); len(entries) != 0 {
				t.Errorf("files written: %v", entries)
			}
		})
	}
}

func TestExportStorageUnavailable(t *testing.T) {
	s := completed(wifiscanner.AccessPointRecord{BSSID: "AA:BB:CC:DD:EE:FF", SSID: "home", Frequency: 2437, SignalLevel: -45})

	t.Run("base is a file", func(t *testing.T) {
		base := filepath.Join(t.TempDir(), "sdcard")
		if err := os.WriteFile(base, nil, 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Export(s, base); !errors.Is(err, wifiscanner.ErrStorageUnavailable) {
			t.Errorf("err = %v, want ErrStorageUnavailable", err)
		}
	})

	t.Run("base missing", func(t *testing.T) {
		base := filepath.Join(t.TempDir(), "unmounted")
		if _, err := Export(s, base); !errors.Is(err, wifiscanner.ErrStorageUnavailable) {
			t.Errorf("err = %v, want ErrStorageUnavailable", err)
		}
		if _, err := os.Stat(base); !os.IsNotExist(err) {
			t.Error("export created the missing base directory")
		}
	})

	t.Run("snapshot dir is a file", func(t *testing.T) {
		base := t.TempDir()
		if err := os.WriteFile(filepath.Join(base, DirName), nil, 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Export(s, base); !errors.Is(err, wifiscanner.ErrStorageUnavailable) {
			t.Errorf("err = %v, want ErrStorageUnavailable", err)
		}
	})
}

func TestExportExistingDirAndOverwrite(t *testing.T) {
	base := t.TempDir()
	if err := os.Mkdir(filepath.Join(base, DirName), 0o755); err != nil {
		t.Fatal(err)
	}

	first := completed(wifiscanner.AccessPointRecord{BSSID: "AA:AA:AA:AA:AA:AA", SSID: "one", Frequency: 2412, SignalLevel: -40})
	second := completed(wifiscanner.AccessPointRecord{BSSID: "BB:BB:BB:BB:BB:BB", SSID: "two", Frequency: 2462, SignalLevel: -75})
	second.StartedAt = startedAt.Add(300 * time.Millisecond)

	p1, err := Export(first, base)
	if err != nil {
		t.Fatal(err)
	}
	p2, err := Export(second, base)
	if err != nil {
		t.Fatal(err)
	}
	if p1 != p2 {
		t.Fatalf("same-second exports went to %q and %q", p1, p2)
	}

	want := [][]string{{"BB:BB:BB:BB:BB:BB", "two", "11", "-75"}}
	if diff := cmp.Diff(want, readRows(t, p2)); diff != "" {
		t.Errorf("rows (-want +got):\n%s", diff)
	}

	// no temp files left behind
	if diff := cmp.Diff([]string{filepath.Base(p1)}, dirEntries(t, filepath.Join(base, DirName))); diff != "" {
		t.Errorf("dir entries (-want +got):\n%s", diff)
	}
}

func TestExportWriteFailure(t *testing.T) {
	base := t.TempDir()
	s := completed(wifiscanner.AccessPointRecord{BSSID: "AA:BB:CC:DD:EE:FF", SSID: "home", Frequency: 2437, SignalLevel: -45})

	// a directory squatting on the target name makes the final rename fail
	target := filepath.Join(base, DirName, FileName(startedAt))
	if err := os.MkdirAll(filepath.Join(target, "occupied"), 0o755); err != nil {
		t.Fatal(err)
	}

	_, err := Export(s, base)
	var we *wifiscanner.WriteError
	if !errors.As(err, &we) {
		t.Fatalf("err = %v, want *WriteError", err)
	}
	if we.Path != target {
		t.Errorf("WriteError.Path = %q, want %q", we.Path, target)
	}
	if errors.Is(err, wifiscanner.ErrStorageUnavailable) {
		t.Error("write failure reported as storage unavailable")
	}

	if diff := cmp.Diff([]string{filepath.Base(target)}, dirEntries(t, filepath.Join(base, DirName))); diff != "" {
		t.Errorf("temp file left behind (-want +got):\n%s", diff)
	}
}

func TestObjectKey(t *testing.T) {
	if got := ObjectKey("/sdcard/WifiScanner/2024_07_03_14_05_09_snap.csv"); got != "WifiScanner/2024_07_03_14_05_09_snap.csv" {
		t.Errorf("ObjectKey = %q", got)
	}
}
