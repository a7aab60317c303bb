package host

import (
	"testing"

	"github.com/goliatone/go-formflow/pkg/dom/htmldoc"
)

type countingContainer struct{ hidden int }

func (c *countingContainer) Hide() { c.hidden++ }

func TestRegistry_LookupAndFallback(t *testing.T) {
	doc, err := htmldoc.ParseString(`<html><body><div id="contact-modal" aria-modal="true" class="modal"></div></body></html>`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	reg := NewRegistry(DocumentDirectory{Doc: doc})

	explicit := &countingContainer{}
	reg.Register(KindModal, "drawer", explicit)

	c, ok := reg.Lookup(KindModal, "drawer")
	if !ok {
		t.Fatalf("expected explicit container")
	}
	c.Hide()
	if explicit.hidden != 1 {
		t.Fatalf("explicit container not hidden")
	}

	c, ok = reg.Lookup(KindModal, "contact-modal")
	if !ok {
		t.Fatalf("expected document modal")
	}
	c.Hide()
	el, _ := doc.ElementByID("contact-modal")
	if !el.HasClass("hidden") {
		t.Fatalf("modal not hidden")
	}
	if v, _ := el.Attr("aria-hidden"); v != "true" {
		t.Fatalf("aria-hidden = %q", v)
	}
	if _, ok := el.Attr("aria-modal"); ok {
		t.Fatalf("aria-modal should be removed")
	}

	if _, ok := reg.Lookup(KindModal, "missing"); ok {
		t.Fatalf("missing container must not resolve")
	}
	if _, ok := reg.Lookup("Drawer", "contact-modal"); ok {
		t.Fatalf("document directory only resolves modals")
	}
}

func TestNilRegistry(t *testing.T) {
	var reg *Registry
	if _, ok := reg.Lookup(KindModal, "x"); ok {
		t.Fatalf("nil registry must not resolve")
	}
	reg.Register(KindModal, "x", &countingContainer{})
}
