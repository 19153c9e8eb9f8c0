// Package fields turns raw recognized text into a canonical field map. Raw
// OCR output is a loose list of "label: value" lines whose labels are often
// partially garbled; extraction collects the pairs and normalization
// reconciles them against a fixed schema.
package fields

import "strings"

// ExtractColonFields splits raw text into lines and records a key/value pair
// for every line containing a colon, splitting on the first colon only and
// trimming both sides. Lines without a colon are dropped. When the same key
// appears on multiple lines the last one wins.
func ExtractColonFields(text string) map[string]string {
	out := make(map[string]string)
	for _, line := range strings.Split(text, "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		out[key] = strings.TrimSpace(value)
	}

	return out
}
