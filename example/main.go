// Example program: declares items from struct defaults, loads a file, the
// environment and command-line overrides, then scans a module back into a struct.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lixenwraith/cfgitems"
)

type serverConfig struct {
	Host     string  `cfg:"host"`
	Port     uint16  `cfg:"port"`
	Timeout  string  `cfg:"timeout"`
	Ratio    float64 `cfg:"ratio"`
	Verbose  bool    `cfg:"verbose"`
	MaxConns uint32  `cfg:"max_conns"`
}

type serverSettings struct {
	Host     string        `cfg:"host"`
	Port     int           `cfg:"port"`
	Timeout  time.Duration `cfg:"timeout"`
	Ratio    float64       `cfg:"ratio"`
	Verbose  bool          `cfg:"verbose"`
	MaxConns int           `cfg:"max_conns"`
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

	defaults := &serverConfig{
		Host:     "localhost",
		Port:     8080,
		Timeout:  "30s",
		Ratio:    0.5,
		MaxConns: 100,
	}

	r, err := cfgitems.NewBuilder().
		WithStruct("server", defaults).
		WithCatalog(cfgitems.NewCatalog().Bool("", "debug", false)).
		WithEnvPrefix("EXAMPLE_").
		WithFileDiscovery(cfgitems.DefaultDiscoveryOptions("example")).
		WithLogger(logger).
		WithValidator(func(r *cfgitems.Registry) error {
			port, err := r.U16("server", "port")
			if err != nil {
				return err
			}
			if port == 0 {
				return errors.New("server.port must not be 0")
			}
			return nil
		}).
		Build()
	if err != nil && !errors.Is(err, cfgitems.ErrConfigNotFound) {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	var settings serverSettings
	if err := r.Scan("server", &settings); err != nil {
		logger.Error("failed to scan server settings", "error", err)
		os.Exit(1)
	}

	debug, _ := r.Bool("", "debug")
	fmt.Printf("server: %+v\n", settings)
	fmt.Printf("debug: %v\n\n", debug)

	if err := r.Dump(os.Stdout); err != nil {
		logger.Error("failed to dump configuration", "error", err)
		os.Exit(1)
	}
}
