package config

import "fmt"

// ErrorKind classifies loader failures.
type ErrorKind int

const (
	// SourceUnavailable means the configuration source could not be opened
	// or read at all.
	SourceUnavailable ErrorKind = iota + 1

	// InvalidValue means a recognized key holds a value that fails type
	// coercion or a range check.
	InvalidValue
)

func (k ErrorKind) String() string {
	switch k {
	case SourceUnavailable:
		return "source unavailable"
	case InvalidValue:
		return "invalid value"
	default:
		return "unknown error"
	}
}

// ConfigError is the loader's only failure type. Kind is always set; Key
// names the offending key for InvalidValue errors.
type ConfigError struct {
	Kind ErrorKind
	Key  string
	Err  error
}

func (e *ConfigError) Error() string {
	switch {
	case e.Key != "" && e.Err != nil:
		return fmt.Sprintf("%s for key %q: %v", e.Kind, e.Key, e.Err)
	case e.Key != "":
		return fmt.Sprintf("%s for key %q", e.Kind, e.Key)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	default:
		return e.Kind.String()
	}
}

func (e *ConfigError) Unwrap() error { return e.Err }
