package network_wifi

import (
	"fmt"

	wifiscanner "github.com/dogeorg/wifiscanner/pkg"
	"github.com/mdlayher/wifi"
)

// WifiInterface describes a wireless interface and, when it is associated,
// the access point it is connected to.
type WifiInterface struct {
	Name         string
	HardwareAddr string
	IsStation    bool
	Associated   *wifiscanner.AccessPointRecord
}

func ListInterfaces() ([]WifiInterface, error) {
	wifiClient, err := wifi.New()
	if err != nil {
		return nil, fmt.Errorf("could not init a wifi interface client: %w", err)
	}
	defer wifiClient.Close()

	wifiInterfaces, err := wifiClient.Interfaces()
	if err != nil {
		return nil, fmt.Errorf("could not list wifi interfaces: %w", err)
	}

	out := []WifiInterface{}
	for _, ifi := range wifiInterfaces {
		// Ignore anything without a netdev (eg. P2P device interfaces).
		if ifi.Name == "" {
			continue
		}

		wi := WifiInterface{
			Name:         ifi.Name,
			HardwareAddr: ifi.HardwareAddr.String(),
			IsStation:    ifi.Type == wifi.InterfaceTypeStation,
		}

		if bss, err := wifiClient.BSS(ifi); err == nil {
			ap := wifiscanner.AccessPointRecord{
				BSSID:     bss.BSSID.String(),
				SSID:      bss.SSID,
				Frequency: bss.Frequency,
			}
			if stations, err := wifiClient.StationInfo(ifi); err == nil && len(stations) > 0 {
				ap.SignalLevel = stations[0].Signal
			}
			wi.Associated = &ap
		}

		out = append(out, wi)
	}

	return out, nil
}

// DefaultInterface returns the first station-mode interface on the system.
func DefaultInterface() (string, error) {
	ifaces, err := ListInterfaces()
	if err != nil {
		return "", err
	}
	return pickDefault(ifaces)
}

func pickDefault(ifaces []WifiInterface) (string, error) {
	for _, ifi := range ifaces {
		if ifi.IsStation {
			return ifi.Name, nil
		}
	}
	return "", wifiscanner.ErrNoWifiInterface
}
