package machine

import "strings"

// TagEntry is one parsed element of a machine's tag string: either a
// bare tag name, or a key/value pair when tag splitting is enabled.
type TagEntry struct {
	Key      string
	Value    string
	HasValue bool
}

// ParseTags splits a raw comma-separated tag string. When split is true
// and sep occurs in an element, the element becomes a key/value pair on
// the first occurrence of sep; otherwise it stays a bare tag.
//
// An empty raw string yields a single bare empty-name tag, matching how
// splitting an empty string on "," behaves. Callers relying on "no tags"
// must not pass the empty string expecting an empty result.
func ParseTags(raw string, split bool, sep string) []TagEntry {
	parts := strings.Split(raw, ",")
	entries := make([]TagEntry, 0, len(parts))
	for _, part := range parts {
		if split && strings.Contains(part, sep) {
			k, v, _ := strings.Cut(part, sep)
			entries = append(entries, TagEntry{Key: k, Value: v, HasValue: true})
			continue
		}
		entries = append(entries, TagEntry{Key: part})
	}
	return entries
}
