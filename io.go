package cfgitems

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Dump writes the current values as INI text. Global items come first,
// without a section header.
//
// The format has no quoting: Parse reads back only the first token of a
// value, and skips an empty one. String values that contain whitespace or
// '=', or are empty, are written as they are and logged at Warn level.
func (r *Registry) Dump(w io.Writer) error {
	var buf bytes.Buffer
	module := GlobalModule
	for _, st := range r.snapshot() {
		if st.module != module {
			module = st.module
			if buf.Len() > 0 {
				buf.WriteByte('\n')
			}
			fmt.Fprintf(&buf, "[%s]\n", module)
		}
		text := st.value.String()
		if st.kind == KindString && !isBareToken(text) {
			r.logger.Warn("string value does not survive INI round trip", "item", st.key(), "value", text)
		}
		fmt.Fprintf(&buf, "%s = %s\n", st.name, text)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// isBareToken reports whether s is read back unchanged as an assignment value.
func isBareToken(s string) bool {
	return s != "" && !strings.ContainsAny(s, spaceChars+tokenChars)
}

// Save writes the current values to path atomically, in the format chosen by
// the file extension. Every module, GlobalModule included, becomes a table
// in structured formats.
func (r *Registry) Save(path string) error {
	return r.SaveFormat(path, "")
}

// SaveFormat is like Save with an explicit format.
func (r *Registry) SaveFormat(path, format string) error {
	if format == "" || format == "auto" {
		format = detectFileFormat(path)
	}

	var buf bytes.Buffer
	switch format {
	case FormatINI:
		if err := r.Dump(&buf); err != nil {
			return err
		}
	case FormatTOML:
		if err := toml.NewEncoder(&buf).Encode(r.tree()); err != nil {
			return fmt.Errorf("failed to marshal config data to TOML: %w", err)
		}
	case FormatYAML:
		data, err := yaml.Marshal(r.tree())
		if err != nil {
			return fmt.Errorf("failed to marshal config data to YAML: %w", err)
		}
		buf.Write(data)
	case FormatJSON:
		encoder := json.NewEncoder(&buf)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(r.tree()); err != nil {
			return fmt.Errorf("failed to marshal config data to JSON: %w", err)
		}
	default:
		return fmt.Errorf("%w: cannot save %q", ErrUnsupportedFormat, format)
	}

	if err := atomicWriteFile(path, buf.Bytes()); err != nil {
		return err
	}
	r.logger.Debug("configuration saved", "path", path, "format", format)
	return nil
}

// tree builds module -> name -> typed value
func (r *Registry) tree() map[string]any {
	out := make(map[string]any)
	for _, st := range r.snapshot() {
		section, ok := out[st.module].(map[string]any)
		if !ok {
			section = make(map[string]any)
			out[st.module] = section
		}
		section[st.name] = st.value.Interface()
	}
	return out
}

// atomicWriteFile performs atomic file write
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory '%s': %w", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}

	tempPath := tempFile.Name()
	defer os.Remove(tempPath) // no-op after a successful rename

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to sync temporary file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}

	if err := os.Chmod(tempPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}
