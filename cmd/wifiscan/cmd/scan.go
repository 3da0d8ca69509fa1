package cmd

import (
	"context"
	"errors"
	"os"

	"github.com/dogeorg/wifiscanner/cmd/wifiscan/utils"
	wifiscanner "github.com/dogeorg/wifiscanner/pkg"
	network_wifi "github.com/dogeorg/wifiscanner/pkg/system/network/wifi"
	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan for nearby Wi-Fi networks and list them.",
	Run: func(cmd *cobra.Command, args []string) {
		save, _ := cmd.Flags().GetBool("save")
		asJSON, _ := cmd.Flags().GetBool("json")

		scanner, shutdown, err := newScanner()
		if err != nil {
			log.WithError(err).Error("Failed to set up scanner")
			utils.ExitBad(false)
		}
		defer shutdown()

		s := scanner.Start()

		ctx, cancel := utils.WithTimeout(cmd.Context(), config.Timeout)
		defer cancel()

		done, err := scanner.Wait(ctx, s.ID)
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				log.WithField("timeout", config.Timeout).Error("Scan did not complete in time")
			} else {
				log.WithError(err).Error("Scan failed")
			}
			shutdown()
			utils.ExitBad(false)
		}

		if err := present(os.Stdout, done, asJSON); err != nil {
			log.WithError(err).Error("Failed to print results")
		}

		if save {
			if _, err := saveSnapshot(cmd.Context(), done); err != nil {
				shutdown()
				utils.ExitBad(false)
			}
		}
	},
}

// newScanner wires a Scanner to the platform and starts its run loop.
// Call the returned func to stop it.
func newScanner() (*wifiscanner.Scanner, func(), error) {
	iface := config.Interface
	if iface == "" {
		var err error
		iface, err = network_wifi.DefaultInterface()
		if err != nil {
			return nil, nil, err
		}
	}

	trigger := network_wifi.NewPlatformTrigger(network_wifi.NewWifiScanner(), iface, log.WithField("iface", iface))
	scanner := wifiscanner.NewScanner(trigger, wifiscanner.SystemClock{}, log)

	started, stopped := make(chan bool), make(chan bool)
	stop := make(chan context.Context)
	if err := scanner.Run(started, stopped, stop); err != nil {
		return nil, nil, err
	}
	<-started

	stopping := false
	shutdown := func() {
		if stopping {
			return
		}
		stopping = true
		stop <- context.Background()
		<-stopped
	}
	return scanner, shutdown, nil
}

func init() {
	scanCmd.Flags().BoolP("save", "s", false, "Save the results to a CSV snapshot")
	scanCmd.Flags().Bool("json", false, "Print results as JSON")
	rootCmd.AddCommand(scanCmd)
}
