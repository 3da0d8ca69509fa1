package system

import (
	"fmt"
	"path/filepath"

	wifiscanner "github.com/dogeorg/wifiscanner/pkg"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/sirupsen/logrus"
)

var _ wifiscanner.StorageLocator = StorageLocator{}

// StorageLocator checks that the configured base directory sits on a
// mounted filesystem with at least MinFree bytes available.
type StorageLocator struct {
	BaseDir string
	MinFree uint64
	log     logrus.FieldLogger
}

func NewStorageLocator(config wifiscanner.Config, log logrus.FieldLogger) StorageLocator {
	return StorageLocator{
		BaseDir: config.BaseDir,
		MinFree: config.MinFreeBytes,
		log:     log,
	}
}

func (t StorageLocator) Resolve() (string, error) {
	dir, err := filepath.Abs(t.BaseDir)
	if err != nil {
		return "", fmt.Errorf("%w: %w", wifiscanner.ErrStorageUnavailable, err)
	}

	usage, err := disk.Usage(dir)
	if err != nil {
		return "", fmt.Errorf("%w: %w", wifiscanner.ErrStorageUnavailable, err)
	}

	if usage.Free < t.MinFree {
		return "", fmt.Errorf("%w: %s has %d bytes free, need %d", wifiscanner.ErrStorageUnavailable, dir, usage.Free, t.MinFree)
	}

	if t.log != nil {
		t.log.WithFields(logrus.Fields{
			"path":   dir,
			"fstype": usage.Fstype,
			"free":   usage.Free,
		}).Debug("storage available")
	}
	return dir, nil
}
