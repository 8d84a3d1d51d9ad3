// Package config loads limit profiles from yaml files.
//
// A profile looks like
//
//	pid: 0
//	limits:
//	  nofile: "1024:4096"
//	  core: "0"
//	log:
//	  level: info
//	  format: console
package config

import (
	"fmt"
	"os"
	"sort"

	"github.com/criyle/go-prlimit/internal/logger"
	"github.com/criyle/go-prlimit/pkg/rlimit"
	"gopkg.in/yaml.v3"
)

// Defaults applied after load
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"
)

// Config is a limit profile
type Config struct {
	// Pid is the target process, 0 for the calling process
	Pid int `yaml:"pid"`
	// Limits maps resource name to soft:hard, see rlimit.ParseRequest
	Limits map[string]string `yaml:"limits"`
	Log    logger.Config     `yaml:"log"`
}

// Load reads and parses the profile at path
func Load(path string) (Config, error) {
	cfg := Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config file failed: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config file failed: %w", err)
	}
	if cfg.Pid < 0 {
		return cfg, fmt.Errorf("invalid pid %d in config", cfg.Pid)
	}
	applyDefaults(&cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
}

// Requests returns the limits as requests ordered by resource name
func (c Config) Requests() (rlimit.RLimits, error) {
	names := make([]string, 0, len(c.Limits))
	for n := range c.Limits {
		names = append(names, n)
	}
	sort.Strings(names)

	ret := make(rlimit.RLimits, 0, len(names))
	for _, n := range names {
		r, err := rlimit.ParseRequest(n + "=" + c.Limits[n])
		if err != nil {
			return nil, fmt.Errorf("limits.%s: %w", n, err)
		}
		ret = append(ret, r)
	}
	return ret, nil
}
