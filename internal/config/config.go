package config

import (
	"net"
	"strconv"
)

// ConnectionSettings holds the MySQL connection parameters read from the
// [mysql] section. Obtain one through Load or Parse; it is never mutated
// after construction and may be shared freely across goroutines.
type ConnectionSettings struct {
	Host string `yaml:"host" json:"host"`
	Port int    `yaml:"port" json:"port"`
	User string `yaml:"user" json:"user"`
	Pass string `yaml:"pass" json:"pass"`
}

// Addr returns the host:port pair in dialable form.
func (s ConnectionSettings) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// Redacted returns a copy with the password masked, for logging and dumps.
// An empty password stays empty so the mask never suggests a credential
// exists where none does.
func (s ConnectionSettings) Redacted() ConnectionSettings {
	if s.Pass != "" {
		s.Pass = "****"
	}
	return s
}

// String formats the settings as user@host:port. The password is never
// included.
func (s ConnectionSettings) String() string {
	return s.User + "@" + s.Addr()
}
