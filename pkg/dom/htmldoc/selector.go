package htmldoc

import (
	"fmt"
	"strings"
)

// selectorToXPath translates the small CSS subset the engine relies on into a
// relative XPath expression: descendant combinators (space), an optional tag,
// any number of .class parts and [attr], [attr=value] or [attr="value"] parts.
func selectorToXPath(selector string) (string, bool) {
	parts := strings.Fields(selector)
	if len(parts) == 0 {
		return "", false
	}
	var b strings.Builder
	b.WriteString(".")
	for _, part := range parts {
		step, ok := compoundToXPath(part)
		if !ok {
			return "", false
		}
		b.WriteString("//")
		b.WriteString(step)
	}
	return b.String(), true
}

func compoundToXPath(token string) (string, bool) {
	tag := "*"
	var predicates []string

	end := strings.IndexAny(token, ".[")
	if end == -1 {
		end = len(token)
	}
	if end > 0 {
		tag = strings.ToLower(token[:end])
	}
	rest := token[end:]

	for rest != "" {
		switch rest[0] {
		case '.':
			next := strings.IndexAny(rest[1:], ".[")
			if next == -1 {
				next = len(rest) - 1
			}
			class := rest[1 : next+1]
			if class == "" || strings.ContainsAny(class, `'"`) {
				return "", false
			}
			predicates = append(predicates,
				fmt.Sprintf("contains(concat(' ', normalize-space(@class), ' '), ' %s ')", class))
			rest = rest[next+1:]
		case '[':
			closeIdx := strings.IndexByte(rest, ']')
			if closeIdx == -1 {
				return "", false
			}
			predicate, ok := attrPredicate(rest[1:closeIdx])
			if !ok {
				return "", false
			}
			predicates = append(predicates, predicate)
			rest = rest[closeIdx+1:]
		default:
			return "", false
		}
	}

	if len(predicates) == 0 {
		return tag, true
	}
	return tag + "[" + strings.Join(predicates, " and ") + "]", true
}

func attrPredicate(expr string) (string, bool) {
	name, value, hasValue := strings.Cut(expr, "=")
	name = strings.TrimSpace(name)
	if name == "" {
		return "", false
	}
	if !hasValue {
		return "@" + name, true
	}
	value = strings.Trim(strings.TrimSpace(value), `"'`)
	if strings.ContainsAny(value, `'"`) {
		return "", false
	}
	return fmt.Sprintf("@%s='%s'", name, value), true
}
