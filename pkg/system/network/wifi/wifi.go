package network_wifi

import (
	"context"

	wifiscanner "github.com/dogeorg/wifiscanner/pkg"
)

// A WifiScanner runs one blocking platform scan on an interface.
type WifiScanner interface {
	Scan(ctx context.Context, networkInterface string) ([]wifiscanner.AccessPointRecord, error)
}

func NewWifiScanner() WifiScanner {
	// TODO: fall back to `iw dev <iface> scan` where wireless-tools is not installed.
	return IWListScanner{}
}
