// Package config loads the TOML configuration of ets.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"

	ET "github.com/CristianoRez/Entangled-Threads"
	"github.com/CristianoRez/Entangled-Threads/Logistics"
	"github.com/CristianoRez/Entangled-Threads/logutil"
)

const (
	defaultCustomers = 1000
	defaultPackages  = 1000
	defaultLogs      = 1000
)

// RegistryConfig holds the initial capacities of the registry tables.
type RegistryConfig struct {
	Customers int `toml:"customers"`
	Packages  int `toml:"packages"`
	Logs      int `toml:"logs"`
}

// Sizes of the registry. Validate first.
func (c RegistryConfig) Sizes() Logistics.Sizes {
	return Logistics.Sizes{Customers: uint(c.Customers), Packages: uint(c.Packages), Logs: uint(c.Logs)}
}

type OutputConfig struct {
	Summary bool `toml:"summary"`
}

type Config struct {
	Log      logutil.LogConfig `toml:"log"`
	Registry RegistryConfig    `toml:"registry"`
	Output   OutputConfig      `toml:"output"`
}

func Default() Config {
	return Config{
		Log: logutil.LogConfig{Level: "info", Format: "console", MaxSize: 64, MaxDays: 7, MaxBackups: 3},
		Registry: RegistryConfig{
			Customers: defaultCustomers,
			Packages:  defaultPackages,
			Logs:      defaultLogs,
		},
	}
}

// Load path over the defaults. An empty path, or a file that doesn't exist, leaves the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config %s: unknown key %s", path, undecoded[0])
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	for _, f := range []struct {
		name string
		n    int
	}{
		{"registry.customers", c.Registry.Customers},
		{"registry.packages", c.Registry.Packages},
		{"registry.logs", c.Registry.Logs},
		{"log.max-size", c.Log.MaxSize},
		{"log.max-days", c.Log.MaxDays},
		{"log.max-backups", c.Log.MaxBackups},
	} {
		if f.n < 0 {
			return ET.CapacityError(f.name, f.n)
		}
	}
	return nil
}
