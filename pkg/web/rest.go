package web

import (
	"context"
	"fmt"
	"net/http"

	wifiscanner "github.com/dogeorg/wifiscanner/pkg"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

func RESTAPI(
	config wifiscanner.Config,
	scanner *wifiscanner.Scanner,
	storage wifiscanner.StorageLocator,
	ws *WSRelay,
	log logrus.FieldLogger,
) api {
	a := api{
		mux:     http.NewServeMux(),
		config:  config,
		scanner: scanner,
		storage: storage,
		ws:      ws,
		log:     log,
	}

	routes := map[string]http.HandlerFunc{
		"POST /scan":        a.startScan,
		"GET /scan":         a.getScan,
		"POST /scan/export": a.exportScan,
		"/ws/scan/":         a.getScanSocket,
	}

	for p, h := range routes {
		a.mux.HandleFunc(p, h)
	}
	log.Debugf("Loaded %d API routes", len(routes))

	return a
}

type api struct {
	mux     *http.ServeMux
	config  wifiscanner.Config
	scanner *wifiscanner.Scanner
	storage wifiscanner.StorageLocator
	ws      *WSRelay
	log     logrus.FieldLogger
}

func (t api) Handler() http.Handler {
	return cors.AllowAll().Handler(t.mux)
}

func (t api) Run(started, stopped chan bool, stop chan context.Context) error {
	go func() {
		srv := &http.Server{Addr: fmt.Sprintf("%s:%d", t.config.Bind, t.config.Port), Handler: t.Handler()}
		go func() {
			if err := srv.ListenAndServe(); err != http.ErrServerClosed {
				t.log.Fatalf("HTTP server ListenAndServe: %v", err)
			}
		}()

		t.log.Infof("REST API listening on %s", srv.Addr)
		started <- true
		ctx := <-stop
		srv.Shutdown(ctx)
		stopped <- true
	}()
	return nil
}
