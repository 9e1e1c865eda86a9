package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/leapstack-labs/roman/internal/store"
)

// OutputFormats lists the accepted values for the output option.
var OutputFormats = []string{"auto", "text", "markdown", "json"}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Collection) == "" {
		return fmt.Errorf("collection is required")
	}

	if !slices.Contains(store.Drivers(), c.Store.Driver) {
		return fmt.Errorf("unknown store driver %q (available: %s)", c.Store.Driver, strings.Join(store.Drivers(), ", "))
	}
	if c.Store.Driver == store.DriverPostgres && c.Store.DSN == "" {
		return fmt.Errorf("store.dsn is required for the postgres driver\nHint: set ROMAN_STORE__DSN or use --store-dsn")
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 0 and 65535, got %d", c.Server.Port)
	}

	if !slices.Contains(OutputFormats, c.OutputFormat) {
		return fmt.Errorf("unknown output format %q (available: %s)", c.OutputFormat, strings.Join(OutputFormats, ", "))
	}
	return nil
}
