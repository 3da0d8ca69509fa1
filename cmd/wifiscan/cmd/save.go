package cmd

import (
	"context"
	"errors"
	"fmt"

	wifiscanner "github.com/dogeorg/wifiscanner/pkg"
	"github.com/dogeorg/wifiscanner/pkg/snapshot"
	"github.com/dogeorg/wifiscanner/pkg/system"
)

// saveSnapshot exports a completed session, and copies it to the object
// store when one is configured. Failures are logged here with a message
// per error kind.
func saveSnapshot(ctx context.Context, s wifiscanner.Session) (string, error) {
	locator := system.NewStorageLocator(config, log)

	baseDir, err := locator.Resolve()
	if err == nil {
		var path string
		path, err = snapshot.Export(s, baseDir)
		if err == nil {
			fmt.Println("Save completed:", path)
			log.WithField("path", path).Debug("Save to path")
			upload(ctx, path)
			return path, nil
		}
	}

	var we *wifiscanner.WriteError
	switch {
	case errors.Is(err, wifiscanner.ErrNothingToScan):
		log.Error("No WiFis to save")
	case errors.Is(err, wifiscanner.ErrStorageUnavailable):
		log.WithError(err).Error("Storage unavailable, snapshot not saved")
	case errors.As(err, &we):
		log.WithError(we.Err).WithField("path", we.Path).Error("Failed to write snapshot")
	default:
		log.WithError(err).Error("Save failed")
	}
	return "", err
}

// Upload failures never fail the save, the local snapshot stands.
func upload(ctx context.Context, path string) {
	if !config.ObjectStore.Enabled() {
		return
	}

	uploader, err := snapshot.NewUploader(ctx, config.ObjectStore)
	if err != nil {
		log.WithError(err).Warn("Object store unavailable, snapshot kept locally only")
		return
	}

	url, err := uploader.Upload(ctx, path)
	if err != nil {
		log.WithError(err).Warn("Failed to upload snapshot")
		return
	}
	fmt.Println("Uploaded:", url)
}
