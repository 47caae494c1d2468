package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func newTestConfig() *Config {
	return &Config{
		Env:    EnvironmentTest,
		Server: Server{Addr: "0", Port: 8080, URI: "api/v1"},
		DB: Database{
			URL:               "postgresql://u:p@h/db_test",
			MinConnections:    1,
			MaxConnections:    10,
			AcquireTimeout:    750 * time.Millisecond,
			IdleTimeout:       300 * time.Second,
			TestBeforeAcquire: true,
		},
	}
}

func TestConfig_FormatJSON(t *testing.T) {
	out, err := newTestConfig().FormatJSON()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))

	assert.Equal(t, "test", decoded["app_env"])
	assert.Equal(t, "http://localhost:8080/api/v1/", decoded["app_url"])

	server := decoded["server"].(map[string]any)
	assert.Equal(t, "0", server["host"])
	assert.InDelta(t, 8080, server["port"], 0)

	db := decoded["database"].(map[string]any)
	assert.Equal(t, "postgresql://u:p@h/db_test", db["database_url"])
	assert.Equal(t, "750ms", db["acquire_timeout"])
	assert.Equal(t, "5m0s", db["idle_timeout"])
	assert.Equal(t, true, db["test_before_acquire"])
}

func TestConfig_FormatYAML(t *testing.T) {
	out, err := newTestConfig().FormatYAML()
	require.NoError(t, err)

	var decoded struct {
		Env      string `yaml:"app_env"`
		URL      string `yaml:"app_url"`
		Database struct {
			AcquireTimeout string `yaml:"acquire_timeout"`
			MaxConnections uint32 `yaml:"max_connections"`
		} `yaml:"database"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))

	assert.Equal(t, "test", decoded.Env)
	assert.Equal(t, "http://localhost:8080/api/v1/", decoded.URL)
	assert.Equal(t, "750ms", decoded.Database.AcquireTimeout)
	assert.Equal(t, uint32(10), decoded.Database.MaxConnections)
}
