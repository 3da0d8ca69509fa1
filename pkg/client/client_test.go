package client

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	wifiscanner "github.com/dogeorg/wifiscanner/pkg"
	"github.com/dogeorg/wifiscanner/pkg/web"
	"github.com/sirupsen/logrus"
)

type nopTrigger struct{}

func (nopTrigger) RequestScan(string) {}

func (nopTrigger) Completions() <-chan wifiscanner.Completion { return nil }

type dirStorage string

func (d dirStorage) Resolve() (string, error) { return string(d), nil }

func newServer(t *testing.T) (*wifiscanner.Scanner, Client) {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	scanner := wifiscanner.NewScanner(nopTrigger{}, nil, log)
	relay := web.NewWSRelay(scanner.GetChangeChannel(), log)
	api := web.RESTAPI(wifiscanner.DefaultConfig(), scanner, dirStorage(t.TempDir()), relay, log)

	srv := httptest.NewServer(api.Handler())
	t.Cleanup(srv.Close)
	return scanner, New(srv.URL)
}

func TestClientScanAndExport(t *testing.T) {
	scanner, c := newServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	id, err := c.StartScan(ctx)
	if err != nil {
		t.Fatal(err)
	}

	go func() {
		time.Sleep(20 * time.Millisecond)
		scanner.Complete(id, []wifiscanner.AccessPointRecord{
			{BSSID: "AA:BB:CC:DD:EE:FF", SSID: "home", Frequency: 2437, SignalLevel: -45},
		})
	}()

	view, err := c.WaitScan(ctx, id, 5*time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}
	if len(view.Results) != 1 || view.Results[0].Channel != 6 || view.Results[0].Tier != wifiscanner.TierStrong {
		t.Errorf("view: %+v", view)
	}

	path, err := c.Export(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(path, "_snap.csv") {
		t.Errorf("export path = %q", path)
	}
}

func TestClientExportNothing(t *testing.T) {
	_, c := newServer(t)

	_, err := c.Export(context.Background())
	if err == nil || !strings.Contains(err.Error(), "No WiFis to save") {
		t.Errorf("err = %v", err)
	}
}

func TestClientWaitSuperseded(t *testing.T) {
	scanner, c := newServer(t)
	ctx := context.Background()

	id, err := c.StartScan(ctx)
	if err != nil {
		t.Fatal(err)
	}
	scanner.Start()

	if _, err := c.WaitScan(ctx, id, time.Millisecond); !errors.Is(err, wifiscanner.ErrSuperseded) {
		t.Errorf("err = %v, want ErrSuperseded", err)
	}
}
