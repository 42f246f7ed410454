package config

// Default values for keys absent from the [mysql] section.
const (
	DefaultHost = "127.0.0.1"
	DefaultPort = 3306
	DefaultUser = "root"
	DefaultPass = ""
)

// build assembles a ConnectionSettings from the scanned key/value pairs,
// filling defaults for missing keys and coercing typed values. An empty host
// value is treated as absent so the record always carries a dialable host;
// an empty pass value is kept, since an empty password is a real credential.
func build(values map[string]string) (ConnectionSettings, error) {
	s := ConnectionSettings{
		Host: DefaultHost,
		Port: DefaultPort,
		User: DefaultUser,
		Pass: DefaultPass,
	}

	if host, ok := values["host"]; ok && host != "" {
		s.Host = host
	}
	if user, ok := values["user"]; ok {
		s.User = user
	}
	if pass, ok := values["pass"]; ok {
		s.Pass = pass
	}
	if raw, ok := values["port"]; ok {
		port, err := parsePort(raw)
		if err != nil {
			return ConnectionSettings{}, err
		}
		s.Port = port
	}

	return s, nil
}
