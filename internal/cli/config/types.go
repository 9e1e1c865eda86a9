// Package config provides configuration management for the roman CLI.
//
// Values are layered with koanf: built-in defaults, then roman.yaml (or the
// file named by --config), then ROMAN_ environment variables, then flags
// that were explicitly set on the command line.
package config

import (
	"net"
	"strconv"
	"time"
)

// Config holds all CLI configuration options.
type Config struct {
	Verbose      bool          `koanf:"verbose"`
	OutputFormat string        `koanf:"output"`
	Collection   string        `koanf:"collection"`
	Store        StoreConfig   `koanf:"store"`
	Server       ServerConfig  `koanf:"server"`
	Convert      ConvertConfig `koanf:"convert"`
}

// StoreConfig selects the key-value backend for person records.
type StoreConfig struct {
	Driver string `koanf:"driver"`
	Path   string `koanf:"path"`
	DSN    string `koanf:"dsn"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host              string        `koanf:"host"`
	Port              int           `koanf:"port"`
	ReadHeaderTimeout time.Duration `koanf:"read_header_timeout"`
	ShutdownTimeout   time.Duration `koanf:"shutdown_timeout"`
}

// ConvertConfig holds numeral conversion defaults.
type ConvertConfig struct {
	Strict   bool `koanf:"strict"`
	FoldCase bool `koanf:"fold_case"`
}

// Default configuration values.
const (
	DefaultCollection        = "persons"
	DefaultStoreDriver       = "memory"
	DefaultStorePath         = ".roman/names.db"
	DefaultHost              = ""
	DefaultPort              = 8000
	DefaultReadHeaderTimeout = 10 * time.Second
	DefaultShutdownTimeout   = 5 * time.Second
	DefaultOutput            = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	EnvPrefix                = "ROMAN_"
)

// Addr returns the listen address for the server.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}
