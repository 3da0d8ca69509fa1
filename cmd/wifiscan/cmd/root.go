package cmd

import (
	"os"
	"time"

	wifiscanner "github.com/dogeorg/wifiscanner/pkg"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configPath string
	config     wifiscanner.Config
	log        = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:   "wifiscan",
	Short: "wifiscan scans for nearby Wi-Fi networks and saves snapshots",
	Long: `wifiscan triggers a wireless scan, lists the access points found with
their channel, band and signal quality, and can save the result to a
timestamped CSV file under <dir>/WifiScanner.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := wifiscanner.LoadConfig(configPath)
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		if flags.Changed("dir") {
			cfg.BaseDir, _ = flags.GetString("dir")
		}
		if flags.Changed("iface") {
			cfg.Interface, _ = flags.GetString("iface")
		}
		if flags.Changed("timeout") {
			cfg.Timeout, _ = flags.GetDuration("timeout")
		}
		if flags.Changed("verbose") {
			cfg.Verbose, _ = flags.GetBool("verbose")
		}

		if cfg.Verbose {
			log.SetLevel(logrus.DebugLevel)
		}
		config = cfg
		return nil
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	log.SetOutput(os.Stderr)

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a yaml config file")
	rootCmd.PersistentFlags().String("dir", "", "Base directory snapshots are saved under (default $HOME)")
	rootCmd.PersistentFlags().StringP("iface", "i", "", "Wireless interface to scan (default: first station interface)")
	rootCmd.PersistentFlags().Duration("timeout", 30*time.Second, "How long to wait for a scan to complete, 0 waits forever")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Be verbose")
}
