package cfgitems

import (
	"errors"
	"flag"
	"fmt"
	"strings"
)

// LoadCLI applies command-line overrides of the form --module.name=value,
// --module.name value, or a bare --name which sets a flag to "true".
// Keys without a dot address GlobalModule. Unregistered keys are ignored.
func (r *Registry) LoadCLI(args []string) error {
	entries, err := parseArgs(args)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCLIParse, err)
	}

	var errs []error
	for _, e := range entries {
		if !r.Has(e.module, e.name) {
			continue
		}
		if err := r.SetText(e.module, e.name, e.text); err != nil {
			errs = append(errs, fmt.Errorf("argument --%s.%s: %w", e.module, e.name, err))
		}
	}
	return errors.Join(errs...)
}

// parseArgs processes command-line arguments into assignments.
func parseArgs(args []string) ([]entry, error) {
	var entries []entry
	i := 0
	for i < len(args) {
		arg := args[i]
		if !strings.HasPrefix(arg, "--") {
			// Skip non-flag arguments
			i++
			continue
		}

		argContent := strings.TrimPrefix(arg, "--")
		if argContent == "" {
			// Skip "--" argument if used as a separator
			i++
			continue
		}

		var keyPath, valueStr string
		if k, v, found := strings.Cut(argContent, "="); found {
			keyPath, valueStr = k, v
			i++
		} else {
			keyPath = argContent
			// Boolean flag if the next arg is another flag or there is none
			if i+1 >= len(args) || strings.HasPrefix(args[i+1], "--") {
				valueStr = "true"
				i++
			} else {
				valueStr = args[i+1]
				i += 2
			}
		}

		if keyPath == "" {
			continue
		}

		module, name := splitKey(keyPath)
		if !isValidKeySegment(module) || !isValidKeySegment(name) {
			return nil, fmt.Errorf("invalid command-line key %q", keyPath)
		}
		entries = append(entries, entry{module: module, name: name, text: valueStr})
	}
	return entries, nil
}

// FlagSet creates a flag.FlagSet with one string flag per registered item,
// named after Item.Key and defaulting to the current value.
func (r *Registry) FlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	for _, st := range r.snapshot() {
		fs.String(st.key(), st.value.String(), fmt.Sprintf("%s (%s)", st.key(), st.kind))
	}
	return fs
}

// BindFlags applies every flag that was set on the command line.
func (r *Registry) BindFlags(fs *flag.FlagSet) error {
	var errs []error
	fs.Visit(func(f *flag.Flag) {
		module, name := splitKey(f.Name)
		if err := r.SetText(module, name, f.Value.String()); err != nil {
			errs = append(errs, fmt.Errorf("flag %s: %w", f.Name, err))
		}
	})
	return errors.Join(errs...)
}
