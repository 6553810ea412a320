// Package config provides YAML-based configuration loading for Konoha.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where Load looks for configuration when no path is given.
const DefaultPath = "konoha.yaml"

// Config is the top-level Konoha configuration, loaded from konoha.yaml
// with KONOHA_* environment overrides applied on top.
type Config struct {
	App      AppConfig      `yaml:"app"`
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
}

// AppConfig names the application and sets the API path prefix.
type AppConfig struct {
	Name   string `yaml:"name"`
	Prefix string `yaml:"prefix"`
}

// ServerConfig holds the HTTP listen address.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// DatabaseConfig selects the store driver and its DSN.
type DatabaseConfig struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

// LogConfig sets the logging level.
type LogConfig struct {
	Level string `yaml:"level"`
}

// CORSConfig lists the origins allowed to call the API.
type CORSConfig struct {
	Origins []string `yaml:"origins"`
}

// Load reads a YAML config file from path and returns a validated Config.
// A missing file is not an error: defaults plus environment overrides
// are enough to run. A .env file in the working directory is honored.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Parse(nil)
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse unmarshals YAML bytes into a validated Config. Environment
// overrides win over YAML values; defaults fill whatever remains unset.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyEnv overrides config values from KONOHA_* environment variables.
func (c *Config) applyEnv() error {
	if v := os.Getenv("KONOHA_APP_NAME"); v != "" {
		c.App.Name = v
	}
	if v := os.Getenv("KONOHA_API_PREFIX"); v != "" {
		c.App.Prefix = v
	}
	if v := os.Getenv("KONOHA_SERVER_HOST"); v != "" {
		c.Server.Host = v
	}
	if v := os.Getenv("KONOHA_SERVER_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: KONOHA_SERVER_PORT %q: %w", v, err)
		}
		c.Server.Port = port
	}
	if v := os.Getenv("KONOHA_DATABASE_DRIVER"); v != "" {
		c.Database.Driver = v
	}
	if v := os.Getenv("KONOHA_DATABASE_DSN"); v != "" {
		c.Database.DSN = v
	}
	if v := os.Getenv("KONOHA_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	return nil
}

// applyDefaults fills in derived and default values.
func (c *Config) applyDefaults() {
	if c.App.Name == "" {
		c.App.Name = "Konoha Management API"
	}
	if c.App.Prefix == "" {
		c.App.Prefix = "/api/v1"
	}
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "sqlite"
	}
	if c.Database.DSN == "" && c.Database.Driver == "sqlite" {
		c.Database.DSN = "konoha.db"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if len(c.CORS.Origins) == 0 {
		c.CORS.Origins = []string{"*"}
	}
}

// validate checks that all fields are present and consistent.
func (c *Config) validate() error {
	var errs []string
	switch c.Database.Driver {
	case "sqlite", "mysql":
	default:
		errs = append(errs, fmt.Sprintf("database.driver %q is not one of sqlite, mysql", c.Database.Driver))
	}
	if c.Database.Driver == "mysql" && c.Database.DSN == "" {
		errs = append(errs, "database.dsn is required for the mysql driver")
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("server.port %d is out of range", c.Server.Port))
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("log.level %q is not one of debug, info, warn, error", c.Log.Level))
	}
	if c.App.Prefix != "" && !strings.HasPrefix(c.App.Prefix, "/") {
		errs = append(errs, fmt.Sprintf("app.prefix %q must start with /", c.App.Prefix))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Addr returns the host:port the HTTP server should bind.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
