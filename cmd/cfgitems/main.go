// Command cfgitems inspects and converts configuration items.
//
//	cfgitems convert <kind> <text>   print the canonical value of text as kind
//	cfgitems show [--module.name=v]  print the effective configuration as INI
//	cfgitems save <path> [...]       write the effective configuration to path
//
// Settings are read from CFGITEMS_FILE, CFGITEMS_ENV_PREFIX, CFGITEMS_LOG_LEVEL
// and CFGITEMS_LOG_FORMAT.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/lixenwraith/cfgitems"
)

// settings configures the command itself
type settings struct {
	File      string `env:"CFGITEMS_FILE"`
	EnvPrefix string `env:"CFGITEMS_ENV_PREFIX" envDefault:"CFGITEMS_"`
	LogLevel  string `env:"CFGITEMS_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"CFGITEMS_LOG_FORMAT" envDefault:"text"`
}

// Items shown by the show and save commands
var (
	_ = cfgitems.DefineBool("", "multithreaded", false)
	_ = cfgitems.DefineString("", "configuration_file", "cfgitems.ini")
	_ = cfgitems.DefineDouble("", "speed", 1.0)
	_ = cfgitems.DefineBool("net", "ipv6", false)
	_ = cfgitems.DefineString("net", "host", "localhost")
	_ = cfgitems.DefineU16("net", "port", 8080)
	_ = cfgitems.DefineU32("net", "timeout_ms", 30000)
	_ = cfgitems.DefineS8("worker", "nice", 0)
	_ = cfgitems.DefineU8("worker", "count", 4)
	_ = cfgitems.DefineS64("worker", "offset", 0)
	_ = cfgitems.DefineU64("worker", "max_bytes", 1<<20)
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "cfgitems:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	var s settings
	if err := env.Parse(&s); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	logger := newLogger(s.LogLevel, s.LogFormat, stderr)

	if len(args) == 0 {
		return errors.New("usage: cfgitems convert <kind> <text> | show [overrides] | save <path> [overrides]")
	}

	switch args[0] {
	case "convert":
		if len(args) != 3 {
			return errors.New("usage: cfgitems convert <kind> <text>")
		}
		return convert(args[1], args[2], stdout)

	case "show":
		r, err := load(s, args[1:], logger)
		if err != nil {
			return err
		}
		return r.Dump(stdout)

	case "save":
		if len(args) < 2 {
			return errors.New("usage: cfgitems save <path> [overrides]")
		}
		r, err := load(s, args[2:], logger)
		if err != nil {
			return err
		}
		if err := r.Save(args[1]); err != nil {
			return err
		}
		logger.Info("configuration saved", "path", args[1], "items", r.Len())
		return nil
	}
	return fmt.Errorf("unknown command %q", args[0])
}

func convert(kindName, text string, w io.Writer) error {
	kind, err := cfgitems.ParseKind(kindName)
	if err != nil {
		return err
	}
	v, err := cfgitems.Convert(kind, text)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, v.String())
	return err
}

// load initializes the process-wide registry and applies the configuration
// file, the environment and command-line overrides, in that order. A registry
// that is already initialized keeps its values and receives the layers again.
func load(s settings, overrides []string, logger *slog.Logger) (*cfgitems.Registry, error) {
	r := cfgitems.Default()
	r.SetLogger(logger)
	if err := cfgitems.Init(""); err != nil && !errors.Is(err, cfgitems.ErrAlreadyInitialized) {
		return nil, err
	}

	if s.File != "" {
		if err := r.LoadFile(s.File); err != nil {
			if !errors.Is(err, cfgitems.ErrConfigNotFound) {
				return nil, err
			}
			logger.Warn("configuration file not found, using defaults", "path", s.File)
		}
	}

	var errs []error
	if err := r.LoadEnv(s.EnvPrefix); err != nil {
		errs = append(errs, err)
	}
	if err := r.LoadCLI(overrides); err != nil {
		errs = append(errs, err)
	}
	for _, err := range errs {
		logger.Warn("ignored configuration value", "error", err)
	}

	logger.Debug("configuration loaded", "items", r.Len(), "modules", strings.Join(r.Modules(), ","))
	return r, nil
}

// newLogger creates a logger writing to w. Unknown levels fall back to info.
func newLogger(level, format string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	var handler slog.Handler
	switch strings.ToLower(format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
