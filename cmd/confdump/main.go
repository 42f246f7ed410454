package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rickgao/orthocfg/internal/config"
	"github.com/rickgao/orthocfg/internal/database"
	"github.com/rickgao/orthocfg/internal/version"
)

func main() {
	configPath := flag.String("config", "configs/orthomcl.local.ini", "path to config file")
	format := flag.String("format", "ini", "output format: ini, yaml or json")
	showPassword := flag.Bool("show-password", false, "print the real password instead of a mask")
	printDSN := flag.Bool("dsn", false, "print the driver DSN instead of the settings")
	dbName := flag.String("database", "", "database name for -dsn")
	sandbox := flag.Bool("sandbox", false, "use a fresh per-run sandbox database name for -dsn")
	grants := flag.Bool("grants", false, "print the recommended granter-account SQL")
	flag.Parse()

	// Diagnostics go to stderr so stdout stays machine-readable.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	settings, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config",
			"version", version.Version,
			"file", *configPath,
			"error", err,
		)
		os.Exit(1)
	}

	switch {
	case *printDSN:
		name := *dbName
		if *sandbox {
			name = database.SandboxName(database.DefaultSandboxPrefix)
		}
		fmt.Println(database.DSN(settings, name))
	case *grants:
		for _, stmt := range database.GrantStatements(settings, "") {
			fmt.Println(stmt)
		}
	default:
		out := settings
		if !*showPassword {
			out = settings.Redacted()
		}
		if err := dump(os.Stdout, out, *format); err != nil {
			logger.Error("failed to render settings", "format", *format, "error", err)
			os.Exit(1)
		}
	}
}

// dump writes the effective settings in the requested format.
func dump(w io.Writer, settings config.ConnectionSettings, format string) error {
	switch format {
	case "ini":
		return settings.Encode(w)
	case "yaml":
		data, err := yaml.Marshal(settings)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(settings)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
