package config

import (
	"os"
	"path/filepath"
	"testing"

	ET "github.com/CristianoRez/Entangled-Threads"
	"github.com/CristianoRez/Entangled-Threads/Logistics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, body string) string {
	name := filepath.Join(t.TempDir(), "ets.toml")
	require.NoError(t, os.WriteFile(name, []byte(body), 0o644))
	return name
}

func TestLoad(t *testing.T) {
	name := write(t, `
[log]
level = "debug"
format = "json"

[registry]
customers = 10
logs = 50

[output]
summary = true
`)
	cfg, err := Load(name)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 64, cfg.Log.MaxSize)
	assert.True(t, cfg.Output.Summary)
	assert.Equal(t, Logistics.Sizes{Customers: 10, Packages: defaultPackages, Logs: 50}, cfg.Registry.Sizes())
}

func TestLoad_defaults(t *testing.T) {
	for _, path := range []string{"", filepath.Join(t.TempDir(), "missing.toml")} {
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	}
}

func TestLoad_invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		is   error
	}{
		{name: "negative", body: "[registry]\npackages = -1\n", is: ET.ErrInvalidCapacity},
		{name: "unknown key", body: "[registry]\nbuckets = 3\n"},
		{name: "syntax", body: "[registry\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(write(t, tt.body))
			require.Error(t, err)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
		})
	}
}
