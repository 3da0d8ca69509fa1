package wifiscanner

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	BaseDir      string            `yaml:"dir"`
	Interface    string            `yaml:"interface"`
	Timeout      time.Duration     `yaml:"timeout"`
	MinFreeBytes uint64            `yaml:"minFreeBytes"`
	Bind         string            `yaml:"bind"`
	Port         int               `yaml:"port"`
	Verbose      bool              `yaml:"verbose"`
	ObjectStore  ObjectStoreConfig `yaml:"objectStore"`
}

// ObjectStoreConfig points at an S3 compatible bucket that saved snapshots
// are copied to. Leave Endpoint empty to keep snapshots local only.
type ObjectStoreConfig struct {
	Endpoint   string `yaml:"endpoint"`
	AccessKey  string `yaml:"accessKey"`
	SecretKey  string `yaml:"secretKey"`
	BucketName string `yaml:"bucketName"`
	Region     string `yaml:"region"`
	UseSSL     bool   `yaml:"useSSL"`
}

func (c ObjectStoreConfig) Enabled() bool {
	return c.Endpoint != ""
}

func DefaultConfig() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return Config{
		BaseDir:      home,
		Timeout:      30 * time.Second,
		MinFreeBytes: 1 << 20,
		Bind:         "127.0.0.1",
		Port:         8080,
	}
}

// LoadConfig reads a yaml config file over the defaults. An empty path
// returns the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("config file %q not found", path)
		}
		return cfg, fmt.Errorf("cannot read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("cannot parse config %q: %w", path, err)
	}
	return cfg, nil
}
