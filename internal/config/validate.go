package config

import (
	"fmt"
	"strconv"
)

const (
	minPort = 1
	maxPort = 65535
)

// parsePort coerces the stored port value to an integer and range-checks it.
func parsePort(raw string) (int, error) {
	port, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &ConfigError{Kind: InvalidValue, Key: "port", Err: err}
	}
	if port < minPort || port > maxPort {
		return 0, &ConfigError{
			Kind: InvalidValue,
			Key:  "port",
			Err:  fmt.Errorf("port %d must be between %d and %d", port, minPort, maxPort),
		}
	}
	return port, nil
}

// Validate checks that an assembled ConnectionSettings satisfies the record
// invariants. Records produced by Load or Parse always pass; this exists for
// settings constructed by hand before encoding.
func (s ConnectionSettings) Validate() error {
	if s.Host == "" {
		return &ConfigError{Kind: InvalidValue, Key: "host", Err: fmt.Errorf("host must not be empty")}
	}
	if s.Port < minPort || s.Port > maxPort {
		return &ConfigError{
			Kind: InvalidValue,
			Key:  "port",
			Err:  fmt.Errorf("port %d must be between %d and %d", s.Port, minPort, maxPort),
		}
	}
	return nil
}
