package cfgitems

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	// MaxLineLength is the size of the line buffer used by the file parser.
	// Longer lines are split: every MaxLineLength-1 bytes start a new line.
	MaxLineLength = 1024
	// maxModuleLength bounds a section identifier, terminator included.
	maxModuleLength = 1024

	spaceChars = " \t\n\v\f\r"
	tokenChars = "\t ="
)

// Parse applies an INI-style configuration file to the registered items.
// An empty path is a no-op. Failing to open the file is logged and returned;
// lines that do not match a registered item or do not convert to its kind are skipped.
func (r *Registry) Parse(path string) error {
	if path == "" {
		return nil
	}

	file, err := os.Open(path)
	if err != nil {
		r.logger.Warn("failed to open configuration file", "path", path, "error", err)
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: '%s': %w", ErrConfigNotFound, path, err)
		}
		return fmt.Errorf("failed to open configuration file '%s': %w", path, err)
	}
	defer file.Close()

	if err := r.ParseReader(file); err != nil {
		return fmt.Errorf("failed to read configuration file '%s': %w", path, err)
	}
	r.logger.Debug("configuration file applied", "path", path, "format", FormatINI)
	return nil
}

// ParseReader applies INI-style configuration text read from rd.
// Assignments before the first section header belong to GlobalModule.
func (r *Registry) ParseReader(rd io.Reader) error {
	scanner := bufio.NewScanner(rd)
	scanner.Split(scanLine)

	module := GlobalModule
	for scanner.Scan() {
		r.parseLine(&module, scanner.Text())
	}
	return scanner.Err()
}

// scanLine yields lines including their newline, cut at MaxLineLength-1 bytes.
func scanLine(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	limit := min(len(data), MaxLineLength-1)
	if i := bytes.IndexByte(data[:limit], '\n'); i >= 0 {
		return i + 1, data[:i+1], nil
	}
	if limit == MaxLineLength-1 || atEOF {
		return limit, data[:limit], nil
	}
	return 0, nil, nil
}

// parseLine handles one line: comment, section header or assignment.
// A valid section header switches module; everything else leaves it alone.
func (r *Registry) parseLine(module *string, raw string) {
	line := strings.TrimLeft(raw, spaceChars)
	if line == "" || line[0] == ';' || line[0] == '#' {
		return
	}
	line = strings.TrimRight(line, spaceChars)

	if line[0] == '[' {
		if len(line) < 2 || line[len(line)-1] != ']' {
			return
		}
		id := line[1 : len(line)-1]
		if id == "" || len(id) >= maxModuleLength {
			return
		}
		*module = id
		return
	}

	name, value, ok := splitAssignment(line)
	if !ok {
		return
	}
	// Unknown items and bad values only affect this line.
	_ = r.SetText(*module, name, value)
}

// splitAssignment returns the first two tokens separated by runs of tabs,
// spaces or '='. Further tokens are ignored.
func splitAssignment(line string) (string, string, bool) {
	isSep := func(c rune) bool { return strings.ContainsRune(tokenChars, c) }

	line = strings.TrimLeftFunc(line, isSep)
	end := strings.IndexFunc(line, isSep)
	if line == "" || end < 0 {
		return "", "", false
	}
	name := line[:end]

	rest := strings.TrimLeftFunc(line[end:], isSep)
	if rest == "" {
		return "", "", false
	}
	if end = strings.IndexFunc(rest, isSep); end >= 0 {
		rest = rest[:end]
	}
	return name, rest, true
}
