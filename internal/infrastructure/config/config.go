// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigDir is the directory name for qsweep configuration.
	DefaultConfigDir = ".qsweep"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"

	// DefaultAddr is the default Qdrant address (gRPC port).
	DefaultAddr = "localhost:6334"
	// DefaultAPIKey is the default Qdrant credential used by local deployments.
	DefaultAPIKey = "123456"

	// DefaultGRPCPort is the conventional Qdrant gRPC port, used both when an
	// address carries no port and as the primary connection attempt.
	DefaultGRPCPort = 6334

	// EnvAddr overrides the Qdrant address.
	EnvAddr = "QDRANT_URL"
	// EnvAPIKey overrides the Qdrant credential.
	EnvAPIKey = "QDRANT_PASSWORD"
)

// Config holds the connection settings for the target Qdrant deployment.
// It is built once at startup and never mutated afterwards.
type Config struct {
	Addr   string `yaml:"addr,omitempty"`
	APIKey string `yaml:"api_key,omitempty"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Addr:   DefaultAddr,
		APIKey: DefaultAPIKey,
	}
}

// Load builds the configuration for the given base path. Precedence, lowest
// first: compiled defaults, optional .qsweep/config.yaml, environment
// variables. Flag overrides are applied by the caller via Override.
func Load(basePath string) (*Config, error) {
	cfg := Default()

	configFile := filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
	data, err := os.ReadFile(configFile)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if addr := os.Getenv(EnvAddr); addr != "" {
		c.Addr = addr
	}
	if key := os.Getenv(EnvAPIKey); key != "" {
		c.APIKey = key
	}
}

// Override returns a copy with non-empty flag values applied on top.
func (c *Config) Override(addr, apiKey string) *Config {
	out := *c
	if addr != "" {
		out.Addr = addr
	}
	if apiKey != "" {
		out.APIKey = apiKey
	}
	return &out
}

// HasCredential reports whether a credential is configured. The credential
// value itself must never be printed.
func (c *Config) HasCredential() bool {
	return c.APIKey != ""
}

// SplitAddr splits the configured address into host and port. An address
// without a port gets DefaultGRPCPort.
func (c *Config) SplitAddr() (string, int, error) {
	host, portStr, err := net.SplitHostPort(c.Addr)
	if err != nil {
		// No port in the address.
		return c.Addr, DefaultGRPCPort, nil
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return "", 0, fmt.Errorf("invalid port in address %q: %w", c.Addr, err)
	}

	return host, port, nil
}
