package main

import (
	"fmt"
	"os"
	"time"

	"github.com/hupe1980/apfind"
	"github.com/hupe1980/apfind/internal/mla"
	"gopkg.in/yaml.v3"
)

// Config is the apfind configuration, loadable from a YAML file and
// overridable with flags.
type Config struct {
	Input            string        `yaml:"input"`
	BlowByBlow       bool          `yaml:"blow_by_blow"`
	Fanout           int           `yaml:"fanout"`
	MemoryLimitBytes int64         `yaml:"memory_limit_bytes"`
	ReadLimitBytes   int64         `yaml:"read_limit_bytes_per_sec"`
	ProgressInterval time.Duration `yaml:"progress_interval"`
	MetricsTextfile  string        `yaml:"metrics_textfile"`
	Log              LogConfig     `yaml:"log"`
	MinIO            MinIOConfig   `yaml:"minio"`
}

// LogConfig selects the diagnostic log output.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error; empty disables
	Format string `yaml:"format"` // text or json
}

// MinIOConfig configures minio:// inputs.
type MinIOConfig struct {
	Endpoint string `yaml:"endpoint"`
	Secure   bool   `yaml:"secure"`
}

func defaultConfig() Config {
	return Config{
		Input:            "-",
		Fanout:           mla.DefaultFanout,
		ProgressInterval: apfind.DefaultProgressInterval,
		Log: LogConfig{
			Format: "text",
		},
	}
}

// loadConfig overlays the YAML file at path onto cfg.
func loadConfig(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}
