package network_wifi

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	wifiscanner "github.com/dogeorg/wifiscanner/pkg"
)

var _ WifiScanner = &IWListScanner{}

type IWListScanner struct{}

func (s IWListScanner) Scan(ctx context.Context, interfaceName string) ([]wifiscanner.AccessPointRecord, error) {
	cmd := exec.CommandContext(ctx, "iwlist", interfaceName, "scan")
	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr
	err := cmd.Run()
	if err != nil {
		return nil, fmt.Errorf("iwlist %s scan: %w: %s", interfaceName, err, strings.TrimSpace(stderr.String()))
	}

	return parseIWListOutput(out.String()), nil
}

var (
	addressRegex   = regexp.MustCompile(`Address: ([0-9A-Fa-f:]+)`)
	ssidRegex      = regexp.MustCompile(`ESSID:"(.*?)"`)
	frequencyRegex = regexp.MustCompile(`Frequency:([0-9.]+) GHz`)
	dbmRegex       = regexp.MustCompile(`Signal level=(-?[0-9]+) dBm`)
	relativeRegex  = regexp.MustCompile(`Signal level=([0-9]+)/([0-9]+)`)
)

func parseIWListOutput(output string) []wifiscanner.AccessPointRecord {
	var networks []wifiscanner.AccessPointRecord
	cells := strings.Split(output, "Cell ")

	for _, cell := range cells {
		address := addressRegex.FindStringSubmatch(cell)
		// the first chunk is the "Scan completed" header
		if len(address) < 2 {
			continue
		}

		network := wifiscanner.AccessPointRecord{
			BSSID: strings.ToUpper(address[1]),
		}

		if ssid := ssidRegex.FindStringSubmatch(cell); len(ssid) > 1 {
			network.SSID = ssid[1]
		}

		if freq := frequencyRegex.FindStringSubmatch(cell); len(freq) > 1 {
			ghz, err := strconv.ParseFloat(freq[1], 64)
			if err == nil {
				network.Frequency = int(math.Round(ghz * 1000))
			}
		}

		network.SignalLevel = parseSignalLevel(cell)
		networks = append(networks, network)
	}

	return networks
}

// Some drivers report a relative level (n/scale) instead of dBm. That is
// treated as a signal quality percentage and interpolated linearly onto
// -100..-50 dBm, the same scale the Windows WLAN API documents for
// wlanSignalQuality (0 is -100 dBm, 100 is -50 dBm). A cell with no
// readable level counts as -100.
func parseSignalLevel(cell string) int {
	if m := dbmRegex.FindStringSubmatch(cell); len(m) > 1 {
		level, err := strconv.Atoi(m[1])
		if err == nil {
			return level
		}
	}
	if m := relativeRegex.FindStringSubmatch(cell); len(m) > 2 {
		n, err1 := strconv.Atoi(m[1])
		scale, err2 := strconv.Atoi(m[2])
		if err1 == nil && err2 == nil && scale > 0 {
			return n*50/scale - 100
		}
	}
	return -100
}
