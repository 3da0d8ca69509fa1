package web

import (
	"errors"
	"net/http"

	wifiscanner "github.com/dogeorg/wifiscanner/pkg"
	"github.com/dogeorg/wifiscanner/pkg/snapshot"
)

func (t api) startScan(w http.ResponseWriter, r *http.Request) {
	s := t.scanner.Start()
	sendResponse(w, t.log, map[string]string{"id": s.ID})
}

func (t api) getScan(w http.ResponseWriter, r *http.Request) {
	sendResponse(w, t.log, t.scanner.Current().View())
}

func (t api) exportScan(w http.ResponseWriter, r *http.Request) {
	session := t.scanner.Current()
	if session.State != wifiscanner.StateCompleted || len(session.Results) == 0 {
		sendErrorResponse(w, t.log, http.StatusConflict, "No WiFis to save")
		return
	}

	baseDir, err := t.storage.Resolve()
	if err != nil {
		t.log.WithError(err).Warn("storage unavailable")
		sendErrorResponse(w, t.log, http.StatusServiceUnavailable, "Storage unavailable")
		return
	}

	path, err := snapshot.Export(session, baseDir)
	var we *wifiscanner.WriteError
	switch {
	case err == nil:
	case errors.Is(err, wifiscanner.ErrNothingToScan):
		sendErrorResponse(w, t.log, http.StatusConflict, "No WiFis to save")
		return
	case errors.Is(err, wifiscanner.ErrStorageUnavailable):
		t.log.WithError(err).Warn("storage unavailable")
		sendErrorResponse(w, t.log, http.StatusServiceUnavailable, "Storage unavailable")
		return
	case errors.As(err, &we):
		t.log.WithError(err).Error("failed to write snapshot")
		sendErrorResponse(w, t.log, http.StatusInternalServerError, "Failed to write snapshot")
		return
	default:
		sendErrorResponse(w, t.log, http.StatusInternalServerError, err.Error())
		return
	}

	t.log.WithField("path", path).Info("Save completed")
	sendResponse(w, t.log, map[string]any{"success": true, "path": path})
}

func (t api) getScanSocket(w http.ResponseWriter, r *http.Request) {
	initialPayload := func() any {
		return t.scanner.Current().View()
	}
	t.ws.GetWSHandler(initialPayload).ServeHTTP(w, r)
}
