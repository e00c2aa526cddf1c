package cfgitems

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Source represents a configuration source, used to define load precedence
type Source string

const (
	// SourceDefault represents the declared default values
	SourceDefault Source = "default"
	// SourceFile represents values loaded from a configuration file
	SourceFile Source = "file"
	// SourceEnv represents values loaded from environment variables
	SourceEnv Source = "env"
	// SourceCLI represents values loaded from command-line arguments
	SourceCLI Source = "cli"
)

// Supported configuration file formats.
const (
	FormatINI  = "ini"
	FormatTOML = "toml"
	FormatYAML = "yaml"
	FormatJSON = "json"
	FormatHCL  = "hcl"
)

// EnvTransformFunc converts an item's module and name to an environment variable name
type EnvTransformFunc func(module, name string) string

// LoadOptions configures how configuration is loaded from multiple sources
type LoadOptions struct {
	// Sources defines the precedence order (first = highest priority)
	// Default: [SourceCLI, SourceEnv, SourceFile, SourceDefault]
	Sources []Source

	// EnvPrefix is prepended to environment variable names
	// Example: "MYAPP_" maps server.port to MYAPP_SERVER_PORT
	EnvPrefix string

	// EnvTransform customizes how items map to environment variables
	// If nil, uses the default transformation (see LoadEnv)
	EnvTransform EnvTransformFunc

	// Format forces a file format instead of detecting it from the extension
	Format string
}

// DefaultLoadOptions returns the standard load options
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		Sources: []Source{SourceCLI, SourceEnv, SourceFile, SourceDefault},
	}
}

// Load applies a configuration file, environment variables and command-line arguments
// in the precedence order of the registry's LoadOptions, lowest priority first.
// A missing file is reported with ErrConfigNotFound alongside any other
// non-fatal errors; other file errors abort the load. Load fails with
// ErrNotInitialized before Init.
func (r *Registry) Load(filePath string, args []string) error {
	r.mutex.RLock()
	opts := r.options
	initialized := r.initialized
	r.mutex.RUnlock()

	if !initialized {
		return ErrNotInitialized
	}

	var loadErrors []error
	for i := len(opts.Sources) - 1; i >= 0; i-- {
		switch opts.Sources[i] {
		case SourceDefault:
			// Defaults are installed by Init
			continue

		case SourceFile:
			if filePath == "" {
				continue
			}
			if err := r.LoadFileFormat(filePath, opts.Format); err != nil {
				if !errors.Is(err, ErrConfigNotFound) {
					return err
				}
				loadErrors = append(loadErrors, err)
			}

		case SourceEnv:
			if err := r.loadEnv(opts); err != nil {
				loadErrors = append(loadErrors, err)
			}

		case SourceCLI:
			if len(args) > 0 {
				if err := r.LoadCLI(args); err != nil {
					loadErrors = append(loadErrors, err)
				}
			}
		}
	}

	return errors.Join(loadErrors...)
}

// LoadFile applies a configuration file whose format is detected from its extension.
func (r *Registry) LoadFile(path string) error {
	return r.LoadFileFormat(path, "")
}

// LoadFileFormat applies a configuration file in the given format.
// An empty format or "auto" detects it from the extension; unknown extensions are INI.
//
// Structured formats map top-level scalars to GlobalModule and top-level tables to
// modules. Each scalar goes through the converter of the matching item's kind; entries
// without a matching item or with an unconvertible value are skipped.
func (r *Registry) LoadFileFormat(path, format string) error {
	if format == "" || format == "auto" {
		format = detectFileFormat(path)
	}
	if format == FormatINI {
		return r.Parse(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		r.logger.Warn("failed to read configuration file", "path", path, "error", err)
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: '%s': %w", ErrConfigNotFound, path, err)
		}
		return fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	tree, err := decodeTree(path, format, data)
	if err != nil {
		return err
	}

	applied := r.applyTree(tree)
	r.logger.Debug("configuration file applied", "path", path, "format", format, "applied", applied)
	return nil
}

// decodeTree parses structured configuration data into a nested map
func decodeTree(path, format string, data []byte) (map[string]any, error) {
	tree := make(map[string]any)
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &tree); err != nil {
			return nil, fmt.Errorf("failed to parse TOML config file '%s': %w", path, err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &tree); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config file '%s': %w", path, err)
		}
	case FormatJSON:
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber() // Preserve number text for the converters
		if err := decoder.Decode(&tree); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config file '%s': %w", path, err)
		}
	case FormatHCL:
		t, err := decodeHCL(path, data)
		if err != nil {
			return nil, err
		}
		tree = t
	default:
		return nil, fmt.Errorf("%w: %q for file '%s'", ErrUnsupportedFormat, format, path)
	}
	return tree, nil
}

// applyTree stores every (module, name, scalar) triple of tree and returns
// how many items were updated.
func (r *Registry) applyTree(tree map[string]any) int {
	applied := 0
	for _, e := range flattenTree(tree) {
		if err := r.SetText(e.module, e.name, e.text); err == nil {
			applied++
		}
	}
	return applied
}

// detectFileFormat determines format from file extension
func detectFileFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".tml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	case ".hcl":
		return FormatHCL
	default:
		return FormatINI
	}
}
