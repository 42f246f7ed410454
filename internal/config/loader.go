package config

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// sectionMySQL is the only section the loader reads. The match is
// case-sensitive.
const sectionMySQL = "mysql"

// Load reads the configuration file at path and returns the connection
// settings from its [mysql] section, with defaults applied for missing keys.
// Failures are always *ConfigError: SourceUnavailable when the file cannot
// be opened or read, InvalidValue when a recognized key fails coercion.
func Load(path string) (ConnectionSettings, error) {
	f, err := os.Open(path)
	if err != nil {
		return ConnectionSettings{}, &ConfigError{Kind: SourceUnavailable, Err: err}
	}
	defer f.Close()

	return Parse(f)
}

// Parse scans a configuration source in the line-oriented section format and
// builds the settings from its [mysql] section. Duplicate keys within the
// section are last-write-wins.
func Parse(r io.Reader) (ConnectionSettings, error) {
	values := make(map[string]string)
	section := ""

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "" || strings.HasPrefix(line, "#"):
			// Blank line or comment.
		case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
			section = strings.TrimSpace(line[1 : len(line)-1])
		default:
			key, value, ok := strings.Cut(line, "=")
			if !ok || section != sectionMySQL {
				// Lines without '=' and foreign sections are no-ops so the
				// file can grow new content without breaking older loaders.
				continue
			}
			values[strings.TrimSpace(key)] = strings.TrimSpace(value)
		}
	}
	if err := scanner.Err(); err != nil {
		return ConnectionSettings{}, &ConfigError{Kind: SourceUnavailable, Err: err}
	}

	return build(values)
}
