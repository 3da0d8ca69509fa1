package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/dogeorg/wifiscanner/cmd/wifiscan/utils"
	"github.com/dogeorg/wifiscanner/pkg/client"
	"github.com/spf13/cobra"
)

var remoteAddr string

var remoteCmd = &cobra.Command{
	Use:   "remote",
	Short: "Drive a running `wifiscan serve` over its REST API.",
}

var remoteScanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Start a scan on the server and print the results.",
	Run: func(cmd *cobra.Command, args []string) {
		asJSON, _ := cmd.Flags().GetBool("json")
		c := client.New(remoteAddr)

		ctx, cancel := utils.WithTimeout(cmd.Context(), config.Timeout)
		defer cancel()

		id, err := c.StartScan(ctx)
		if err != nil {
			log.WithError(err).Error("Failed to start remote scan")
			utils.ExitBad(false)
		}

		view, err := c.WaitScan(ctx, id, 500*time.Millisecond)
		if err != nil {
			log.WithError(err).Error("Remote scan failed")
			utils.ExitBad(false)
		}

		if err := presentView(os.Stdout, view, asJSON); err != nil {
			log.WithError(err).Error("Failed to print results")
		}
	},
}

var remoteResultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Print the server's latest scan session.",
	Run: func(cmd *cobra.Command, args []string) {
		asJSON, _ := cmd.Flags().GetBool("json")
		view, err := client.New(remoteAddr).Session(cmd.Context())
		if err != nil {
			log.WithError(err).Error("Failed to fetch remote session")
			utils.ExitBad(false)
		}
		if !asJSON {
			fmt.Printf("Session %s: %s\n", view.ID, view.State)
		}
		if err := presentView(os.Stdout, view, asJSON); err != nil {
			log.WithError(err).Error("Failed to print results")
		}
	},
}

var remoteExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Save the server's latest scan to a CSV snapshot on the server.",
	Run: func(cmd *cobra.Command, args []string) {
		path, err := client.New(remoteAddr).Export(cmd.Context())
		if err != nil {
			log.WithError(err).Error("Remote export failed")
			utils.ExitBad(false)
		}
		fmt.Println("Save completed:", path)
	},
}

func init() {
	remoteCmd.PersistentFlags().StringVar(&remoteAddr, "addr", "http://127.0.0.1:8080", "Base URL of the wifiscan server")
	remoteScanCmd.Flags().Bool("json", false, "Print results as JSON")
	remoteResultsCmd.Flags().Bool("json", false, "Print results as JSON")

	remoteCmd.AddCommand(remoteScanCmd, remoteResultsCmd, remoteExportCmd)
	rootCmd.AddCommand(remoteCmd)
}
