package config

import (
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredView is the JSON / YAML shape of a resolved [Config]. Unlike
// [Config.String] it includes the derived server URL as a field.
type StructuredView struct {
	Env    Environment `json:"app_env" yaml:"app_env"`
	URL    string      `json:"app_url" yaml:"app_url"`
	Server struct {
		Addr string `json:"host" yaml:"host"`
		Port uint16 `json:"port" yaml:"port"`
		URI  string `json:"app_uri" yaml:"app_uri"`
	} `json:"server" yaml:"server"`
	Database struct {
		URL               string   `json:"database_url" yaml:"database_url"`
		MinConnections    uint32   `json:"min_connections" yaml:"min_connections"`
		MaxConnections    uint32   `json:"max_connections" yaml:"max_connections"`
		AcquireTimeout    Duration `json:"acquire_timeout" yaml:"acquire_timeout"`
		IdleTimeout       Duration `json:"idle_timeout" yaml:"idle_timeout"`
		TestBeforeAcquire bool     `json:"test_before_acquire" yaml:"test_before_acquire"`
	} `json:"database" yaml:"database"`
	LogLevel string `json:"log_level" yaml:"log_level"`
}

// View maps c onto a [StructuredView].
func (c *Config) View() StructuredView {
	var v StructuredView
	v.Env = c.Env
	v.URL = c.Server.URL()
	v.Server.Addr = c.Server.Addr
	v.Server.Port = c.Server.Port
	v.Server.URI = c.Server.URI
	v.Database.URL = c.DB.URL
	v.Database.MinConnections = c.DB.MinConnections
	v.Database.MaxConnections = c.DB.MaxConnections
	v.Database.AcquireTimeout = Duration(c.DB.AcquireTimeout)
	v.Database.IdleTimeout = Duration(c.DB.IdleTimeout)
	v.Database.TestBeforeAcquire = c.DB.TestBeforeAcquire
	v.LogLevel = c.LogLevel
	return v
}

// FormatJSON renders c as indented JSON.
func (c *Config) FormatJSON() (string, error) {
	data, err := json.MarshalIndent(c.View(), "", "  ")
	if err != nil {
		return "", fmt.Errorf("error encoding json config: %w", err)
	}
	return string(data), nil
}

// FormatYAML renders c as YAML.
func (c *Config) FormatYAML() (string, error) {
	data, err := yaml.Marshal(c.View())
	if err != nil {
		return "", fmt.Errorf("error encoding yaml config: %w", err)
	}
	return string(data), nil
}

// Duration is a wrapper around time.Duration that is encoded as a string
// like "750ms" or "5m0s".
type Duration time.Duration

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}
