package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/rickgao/orthocfg/internal/config"
	"github.com/rickgao/orthocfg/internal/version"
)

type result struct {
	settings config.ConnectionSettings
	err      error
}

func main() {
	quiet := flag.Bool("quiet", false, "only log failures")
	flag.Parse()

	// Set up structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	paths := flag.Args()
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "usage: confcheck [-quiet] file...")
		os.Exit(2)
	}

	if !*quiet {
		logger.Info("checking config files",
			"version", version.Version,
			"files", len(paths),
		)
	}

	// Each file records its own outcome; the group never fails early so
	// every file gets reported.
	results := make([]result, len(paths))
	var g errgroup.Group
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			settings, err := config.Load(path)
			results[i] = result{settings: settings, err: err}
			return nil
		})
	}
	g.Wait()

	failed := 0
	for i, path := range paths {
		if err := results[i].err; err != nil {
			failed++
			logger.Error("config invalid", "file", path, "error", err)
			continue
		}
		if !*quiet {
			logger.Info("config ok",
				"file", path,
				"addr", results[i].settings.Addr(),
				"user", results[i].settings.User,
			)
		}
	}

	if failed > 0 {
		logger.Error("check failed", "invalid", failed, "total", len(paths))
		os.Exit(1)
	}
}
