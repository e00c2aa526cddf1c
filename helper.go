package cfgitems

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// entry is one textual assignment produced by a structured source
type entry struct {
	module string
	name   string
	text   string
}

// flattenTree converts a decoded configuration tree to assignments.
// Top-level scalars belong to GlobalModule, top-level maps are modules.
// Deeper nesting, lists and nulls have no item to map to and are dropped.
func flattenTree(tree map[string]any) []entry {
	var entries []entry
	for key, value := range tree {
		if section, isMap := value.(map[string]any); isMap {
			for name, v := range section {
				if text, ok := renderScalar(v); ok {
					entries = append(entries, entry{module: key, name: name, text: text})
				}
			}
			continue
		}
		if text, ok := renderScalar(value); ok {
			entries = append(entries, entry{module: GlobalModule, name: key, text: text})
		}
	}

	// Deterministic order, matching the registry index
	sort.Slice(entries, func(i, j int) bool {
		return compareKeys(entries[i].module, entries[i].name, entries[j].module, entries[j].name) < 0
	})
	return entries
}

// renderScalar returns the text of a decoded scalar for the converters
func renderScalar(v any) (string, bool) {
	switch val := v.(type) {
	case nil:
		return "", false
	case string:
		return val, true
	case bool:
		return strconv.FormatBool(val), true
	case int:
		return strconv.Itoa(val), true
	case int64:
		return strconv.FormatInt(val, 10), true
	case uint64:
		return strconv.FormatUint(val, 10), true
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64), true
	case time.Time:
		return val.Format(time.RFC3339), true
	case fmt.Stringer: // json.Number, toml local dates
		return val.String(), true
	case map[string]any, []any:
		return "", false
	default:
		return fmt.Sprint(val), true
	}
}

// splitKey splits "module.name" at the first dot; a key without a dot
// names an item of GlobalModule.
func splitKey(key string) (string, string) {
	if module, name, found := strings.Cut(key, "."); found {
		return module, name
	}
	return GlobalModule, key
}

// isValidKeySegment checks if a module or item name is usable as a bare key
// in every output format: ASCII letters, digits, underscores and dashes.
func isValidKeySegment(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		isDigit := r >= '0' && r <= '9'
		if !(isLetter || isDigit || r == '_' || r == '-') {
			return false
		}
	}
	return true
}
