package form

import (
	"strconv"
	"strings"
)

// fieldForKey maps a server error key onto a configured field. Exact matches
// win; otherwise the key is read as a path (JSON pointer, dotted or indexed)
// and wrapper segments such as "body" or "data" are ignored. Keys that
// address the whole form report formLevel. Anything else is returned as is,
// so the lookup by id decides whether it lands on an element.
func fieldForKey(key string, fields []string) (field string, formLevel bool) {
	for _, candidate := range fields {
		if candidate == key {
			return key, false
		}
	}

	trimmed := strings.TrimSpace(key)
	if isFormLevelKey(trimmed) {
		return "", true
	}

	segments := keySegments(trimmed)
	if len(segments) == 0 {
		return "", true
	}

	known := make(map[string]struct{}, len(fields))
	for _, candidate := range fields {
		known[candidate] = struct{}{}
	}
	for _, variant := range segmentVariants(segments) {
		if match := firstKnownSegment(variant, known); match != "" {
			return match, false
		}
	}
	return trimmed, false
}

// keySegments splits an error key written as a JSON pointer ("/email"), a
// JSONPath ("$.body.email") or a dotted, indexed path ("items[0].sku").
func keySegments(key string) []string {
	var out []string
	for _, part := range strings.FieldsFunc(key, isKeySeparator) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, pointerUnescaper.Replace(part))
		}
	}
	return out
}

func isKeySeparator(r rune) bool {
	switch r {
	case '.', '/', '[', ']', '#', '$':
		return true
	}
	return false
}

// pointerUnescaper decodes JSON pointer escapes inside one segment.
var pointerUnescaper = strings.NewReplacer("~1", "/", "~0", "~")

func segmentVariants(segments []string) [][]string {
	noWrappers := dropWrapperSegments(segments)
	return [][]string{
		segments,
		noWrappers,
		stripNumericSegments(noWrappers),
	}
}

func dropWrapperSegments(segments []string) []string {
	out := segments
	for len(out) > 0 {
		switch strings.ToLower(out[0]) {
		case "body", "request", "payload", "data", "attributes", "errors":
			out = out[1:]
			continue
		}
		break
	}
	return out
}

func stripNumericSegments(segments []string) []string {
	out := make([]string, 0, len(segments))
	for _, segment := range segments {
		if _, err := strconv.Atoi(segment); err == nil {
			continue
		}
		out = append(out, segment)
	}
	return out
}

// firstKnownSegment returns the leading segment when it names a field. Fields
// are flat, so a nested path ("address.city") reports on its root input.
func firstKnownSegment(segments []string, known map[string]struct{}) string {
	if len(segments) == 0 {
		return ""
	}
	if _, ok := known[segments[0]]; ok {
		return segments[0]
	}
	joined := strings.Join(segments, ".")
	if _, ok := known[joined]; ok {
		return joined
	}
	return ""
}

func isFormLevelKey(key string) bool {
	switch strings.ToLower(key) {
	case "", ".", "/", "#", "$", "form", "__all__", "non_field_errors", "non-field-errors":
		return true
	default:
		return false
	}
}
