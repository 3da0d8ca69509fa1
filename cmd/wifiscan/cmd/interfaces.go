package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/dogeorg/wifiscanner/cmd/wifiscan/utils"
	network_wifi "github.com/dogeorg/wifiscanner/pkg/system/network/wifi"
	"github.com/spf13/cobra"
)

var interfacesCmd = &cobra.Command{
	Use:   "interfaces",
	Short: "List wireless interfaces and what they are connected to.",
	Run: func(cmd *cobra.Command, args []string) {
		ifaces, err := network_wifi.ListInterfaces()
		if err != nil {
			log.WithError(err).Error("Failed to list wireless interfaces")
			utils.ExitBad(false)
		}

		if len(ifaces) == 0 {
			fmt.Println("No wireless interfaces found")
			return
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "INTERFACE\tMAC\tMODE\tCONNECTED TO")
		for _, ifi := range ifaces {
			mode := "other"
			if ifi.IsStation {
				mode = "station"
			}
			connected := "-"
			if ap := ifi.Associated; ap != nil {
				connected = fmt.Sprintf("%s (%s, %d MHz, %d dBm)", ap.SSID, ap.BSSID, ap.Frequency, ap.SignalLevel)
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", ifi.Name, ifi.HardwareAddr, mode, connected)
		}
		tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(interfacesCmd)
}
