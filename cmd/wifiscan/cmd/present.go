package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	wifiscanner "github.com/dogeorg/wifiscanner/pkg"
)

func present(w io.Writer, s wifiscanner.Session, asJSON bool) error {
	return presentView(w, s.View(), asJSON)
}

func presentView(w io.Writer, v wifiscanner.SessionView, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	if len(v.Results) == 0 {
		_, err := fmt.Fprintln(w, "No networks found")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "BSSID\tSSID\tCHANNEL\tBAND\tSIGNAL\tQUALITY")
	for _, r := range v.Results {
		channel := "?"
		if r.HasChannel {
			channel = strconv.Itoa(r.Channel)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d dB\t%s\n", r.BSSID, r.SSID, channel, r.Band, r.SignalLevel, r.Tier)
	}
	fmt.Fprintf(tw, "\n%d networks, scan took %dms\n", len(v.Results), v.ElapsedMs)
	return tw.Flush()
}
