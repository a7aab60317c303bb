// Package dom defines the narrow document surface the form engine binds to.
// Implementations wrap a browser DOM, a parsed HTML tree, or a test fake; the
// engine only ever looks elements up by id and manipulates them through these
// interfaces.
package dom

import "net/url"

// Element is a single node the engine can inspect and mutate.
type Element interface {
	ID() string
	Tag() string

	Attr(name string) (string, bool)
	SetAttr(name, value string)
	RemoveAttr(name string)

	HasClass(name string) bool
	AddClass(name string)
	RemoveClass(name string)

	Text() string
	SetText(text string)

	Value() string
	SetValue(value string)

	Disabled() bool
	SetDisabled(disabled bool)

	Focus()

	// Query returns the first descendant matching a simple CSS selector
	// (tag, .class and [attr="value"] parts).
	Query(selector string) (Element, bool)
}

// Form is an Element backed by a <form>.
type Form interface {
	Element

	// FormValue returns the submitted value of the first successful control
	// named name. ok is false when no such control exists.
	FormValue(name string) (value string, ok bool)
	// Values returns every successful control as a raw payload.
	Values() url.Values
	// Reset restores every control to its initial value.
	Reset()
}

// Document resolves elements by id.
type Document interface {
	ElementByID(id string) (Element, bool)
	FormByID(id string) (Form, bool)
	ActiveElement() (Element, bool)
}
