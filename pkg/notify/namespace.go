package notify

import (
	"sort"
	"strings"
	"sync"
)

const (
	// ToastKey is the conventional namespace entry for the toast notifier.
	ToastKey = "Toast"
	// AlertKey optionally overrides the Alerter used by the fallback.
	AlertKey = "alert"
)

// Namespace is a shared, read-mostly directory of page collaborators keyed by
// name. Forms look collaborators up by convention instead of holding them.
type Namespace struct {
	mu      sync.RWMutex
	entries map[string]any
}

// NewNamespace creates an empty namespace.
func NewNamespace() *Namespace {
	return &Namespace{entries: make(map[string]any)}
}

// Set stores value under name, replacing any previous entry. A nil value
// removes the entry.
func (n *Namespace) Set(name string, value any) {
	if n == nil {
		return
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	if value == nil {
		delete(n.entries, name)
		return
	}
	n.entries[name] = value
}

// Get returns the entry stored under name.
func (n *Namespace) Get(name string) (any, bool) {
	if n == nil {
		return nil, false
	}
	n.mu.RLock()
	defer n.mu.RUnlock()
	value, ok := n.entries[name]
	return value, ok
}

// Names returns the registered names in sorted order.
func (n *Namespace) Names() []string {
	if n == nil {
		return nil
	}
	n.mu.RLock()
	defer n.mu.RUnlock()
	names := make([]string, 0, len(n.entries))
	for name := range n.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup resolves the notifier registered under ToastKey. When none is
// registered it returns the Alert fallback, honouring an Alerter stored
// under AlertKey.
func Lookup(ns *Namespace) Notifier {
	if value, ok := ns.Get(ToastKey); ok {
		if notifier, ok := value.(Notifier); ok {
			return notifier
		}
	}
	fallback := Alert{}
	if value, ok := ns.Get(AlertKey); ok {
		if alerter, ok := value.(Alerter); ok {
			fallback.Alerter = alerter
		}
	}
	return fallback
}
