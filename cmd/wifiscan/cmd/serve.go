package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coreos/go-systemd/v22/daemon"
	"github.com/dogeorg/wifiscanner/cmd/wifiscan/utils"
	"github.com/dogeorg/wifiscanner/pkg/system"
	"github.com/dogeorg/wifiscanner/pkg/web"
	"github.com/spf13/cobra"
)

type service interface {
	Run(started, stopped chan bool, stop chan context.Context) error
}

type runningService struct {
	name    string
	stopped chan bool
	stop    chan context.Context
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the scanner as a service with a REST and websocket API.",
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("bind") {
			config.Bind, _ = cmd.Flags().GetString("bind")
		}
		if cmd.Flags().Changed("port") {
			config.Port, _ = cmd.Flags().GetInt("port")
		}

		scanner, shutdownScanner, err := newScanner()
		if err != nil {
			log.WithError(err).Error("Failed to set up scanner")
			utils.ExitBad(true)
		}

		storage := system.NewStorageLocator(config, log)
		relay := web.NewWSRelay(scanner.GetChangeChannel(), log)
		api := web.RESTAPI(config, scanner, storage, relay, log)

		running := []runningService{}
		for _, s := range []struct {
			name string
			svc  service
		}{
			{"WSock Relay", relay},
			{"REST API", api},
		} {
			started, stopped := make(chan bool), make(chan bool)
			stop := make(chan context.Context)
			if err := s.svc.Run(started, stopped, stop); err != nil {
				log.WithError(err).Errorf("Failed to start %s", s.name)
				utils.ExitBad(true)
			}
			<-started
			log.Debugf("%s started", s.name)
			running = append(running, runningService{s.name, stopped, stop})
		}

		if ok, err := daemon.SdNotify(false, daemon.SdNotifyReady); err != nil {
			log.WithError(err).Warn("Failed to notify systemd")
		} else if ok {
			log.Debug("Notified systemd we are ready")
		}

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		log.Info("Shutting down")
		daemon.SdNotify(false, daemon.SdNotifyStopping)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		for i := len(running) - 1; i >= 0; i-- {
			running[i].stop <- ctx
			<-running[i].stopped
			log.Debugf("%s stopped", running[i].name)
		}
		shutdownScanner()
	},
}

func init() {
	serveCmd.Flags().String("bind", "127.0.0.1", "Address to bind to")
	serveCmd.Flags().Int("port", 8080, "REST API Port")
	rootCmd.AddCommand(serveCmd)
}
