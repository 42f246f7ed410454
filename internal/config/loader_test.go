package config

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	ini := `
# MySQL connection for the provisioning step.
[mysql]
host = db.example.com
port = 13306
user = orthomcl
pass = s3cret
`
	path := writeTempFile(t, ini)

	settings, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := ConnectionSettings{Host: "db.example.com", Port: 13306, User: "orthomcl", Pass: "s3cret"}
	if settings != want {
		t.Errorf("Load() = %+v, want %+v", settings, want)
	}
}

func TestLoadTrimsWhitespace(t *testing.T) {
	ini := "[mysql]\n  host =   10.0.0.5  \n\tport=3307\nuser\t= admin\npass = p w d\n"
	path := writeTempFile(t, ini)

	settings, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := ConnectionSettings{Host: "10.0.0.5", Port: 3307, User: "admin", Pass: "p w d"}
	if settings != want {
		t.Errorf("Load() = %+v, want %+v", settings, want)
	}
}

func TestLoadDefaults(t *testing.T) {
	tests := []struct {
		name string
		ini  string
		want ConnectionSettings
	}{
		{
			name: "missing port",
			ini:  "[mysql]\nhost = localhost\nuser = orthomcl\npass = x\n",
			want: ConnectionSettings{Host: "localhost", Port: 3306, User: "orthomcl", Pass: "x"},
		},
		{
			name: "no mysql section",
			ini:  "# only operator notes here\n[grants]\naccount = granter\n",
			want: ConnectionSettings{Host: "127.0.0.1", Port: 3306, User: "root", Pass: ""},
		},
		{
			name: "empty file",
			ini:  "",
			want: ConnectionSettings{Host: "127.0.0.1", Port: 3306, User: "root", Pass: ""},
		},
		{
			name: "explicit empty password",
			ini:  "[mysql]\nhost = localhost\npass =\n",
			want: ConnectionSettings{Host: "localhost", Port: 3306, User: "root", Pass: ""},
		},
		{
			name: "empty host falls back to default",
			ini:  "[mysql]\nhost =\nuser = orthomcl\n",
			want: ConnectionSettings{Host: "127.0.0.1", Port: 3306, User: "orthomcl", Pass: ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings, err := Load(writeTempFile(t, tt.ini))
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if settings != tt.want {
				t.Errorf("Load() = %+v, want %+v", settings, tt.want)
			}
		})
	}
}

func TestLoadIgnoresForeignContent(t *testing.T) {
	ini := `
[client]
host = wrong.example.com
port = 9999

[mysql]
host = right.example.com
timeout = 30s

[MySQL]
host = case.sensitive.example.com
`
	settings, err := Load(writeTempFile(t, ini))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if settings.Host != "right.example.com" {
		t.Errorf("Host = %q, want %q", settings.Host, "right.example.com")
	}
	if settings.Port != 3306 {
		t.Errorf("Port = %d, want default 3306", settings.Port)
	}
}

func TestLoadDuplicateKeysLastWins(t *testing.T) {
	ini := "[mysql]\nhost = first.example.com\nhost = second.example.com\n"

	settings, err := Load(writeTempFile(t, ini))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if settings.Host != "second.example.com" {
		t.Errorf("Host = %q, want %q", settings.Host, "second.example.com")
	}
}

func TestLoadInvalidPort(t *testing.T) {
	tests := []struct {
		name string
		port string
	}{
		{name: "non-numeric", port: "abc"},
		{name: "above range", port: "99999"},
		{name: "zero", port: "0"},
		{name: "negative", port: "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempFile(t, "[mysql]\nhost = localhost\nport = "+tt.port+"\n")

			_, err := Load(path)
			if err == nil {
				t.Fatalf("Load() expected error for port %q, got nil", tt.port)
			}

			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("Load() error type = %T, want *ConfigError", err)
			}
			if cfgErr.Kind != InvalidValue {
				t.Errorf("Kind = %v, want InvalidValue", cfgErr.Kind)
			}
			if cfgErr.Key != "port" {
				t.Errorf("Key = %q, want %q", cfgErr.Key, "port")
			}
			if !strings.Contains(err.Error(), "port") {
				t.Errorf("Error() = %q, should name the offending key", err.Error())
			}
		})
	}
}

func TestLoadSourceUnavailable(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.ini"))
	if err == nil {
		t.Fatal("Load() expected error for missing file, got nil")
	}

	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("Load() error type = %T, want *ConfigError", err)
	}
	if cfgErr.Kind != SourceUnavailable {
		t.Errorf("Kind = %v, want SourceUnavailable", cfgErr.Kind)
	}
	if cfgErr.Unwrap() == nil {
		t.Error("Unwrap() = nil, want wrapped cause")
	}
}

func TestLoadIdempotent(t *testing.T) {
	path := writeTempFile(t, "[mysql]\nhost = localhost\nport = 3307\nuser = orthomcl\npass = x\n")

	first, err := Load(path)
	if err != nil {
		t.Fatalf("first Load failed: %v", err)
	}
	second, err := Load(path)
	if err != nil {
		t.Fatalf("second Load failed: %v", err)
	}
	if first != second {
		t.Errorf("repeated Load() differs: %+v vs %+v", first, second)
	}
}

func TestParseReader(t *testing.T) {
	r := strings.NewReader("[mysql]\nhost = localhost\nuser = granter\n")

	settings, err := Parse(r)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if settings.User != "granter" {
		t.Errorf("User = %q, want %q", settings.User, "granter")
	}
}
