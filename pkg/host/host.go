// Package host models the enclosing UI surfaces (modals, drawers) a form may
// live in. The engine only needs to close a container after a successful
// submission; an absent container is never an error.
package host

import (
	"strings"
	"sync"

	"github.com/goliatone/go-formflow/pkg/binding"
	"github.com/goliatone/go-formflow/pkg/dom"
)

// KindModal is the container kind forms close on success.
const KindModal = "Modal"

// Container is the control surface of a host container.
type Container interface {
	Hide()
}

// Directory resolves containers by kind and id.
type Directory interface {
	Lookup(kind, id string) (Container, bool)
}

// Registry is an in-memory Directory. Containers are registered explicitly or
// resolved on demand through a fallback directory.
type Registry struct {
	mu       sync.RWMutex
	items    map[string]Container
	fallback Directory
}

var _ Directory = (*Registry)(nil)

// NewRegistry creates a registry that consults fallback for unknown ids.
func NewRegistry(fallback Directory) *Registry {
	return &Registry{
		items:    make(map[string]Container),
		fallback: fallback,
	}
}

// Register stores c under kind/id.
func (r *Registry) Register(kind, id string, c Container) {
	if r == nil || c == nil || strings.TrimSpace(id) == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[key(kind, id)] = c
}

// Lookup implements Directory.
func (r *Registry) Lookup(kind, id string) (Container, bool) {
	if r == nil || id == "" {
		return nil, false
	}
	r.mu.RLock()
	c, ok := r.items[key(kind, id)]
	r.mu.RUnlock()
	if ok {
		return c, true
	}
	if r.fallback != nil {
		return r.fallback.Lookup(kind, id)
	}
	return nil, false
}

func key(kind, id string) string {
	return kind + "/" + id
}

// Modal hides a document element the way the page's modal widget does.
type Modal struct {
	Element dom.Element
}

// Hide adds the hidden class and marks the element hidden for assistive tech.
func (m Modal) Hide() {
	if m.Element == nil {
		return
	}
	m.Element.AddClass(binding.HiddenClass)
	m.Element.SetAttr("aria-hidden", "true")
	m.Element.RemoveAttr("aria-modal")
}

// DocumentDirectory resolves modal containers straight from a document.
type DocumentDirectory struct {
	Doc dom.Document
}

// Lookup implements Directory for KindModal ids present in the document.
func (d DocumentDirectory) Lookup(kind, id string) (Container, bool) {
	if d.Doc == nil || kind != KindModal {
		return nil, false
	}
	el, ok := d.Doc.ElementByID(id)
	if !ok {
		return nil, false
	}
	return Modal{Element: el}, true
}
