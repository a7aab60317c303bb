package form

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/goliatone/go-formflow/pkg/dom/htmldoc"
	"github.com/goliatone/go-formflow/pkg/formconfig"
	"github.com/goliatone/go-formflow/pkg/notify"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	doc, err := htmldoc.ParseString(page)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	reg := NewRegistry(WithDocument(doc))

	inst, err := reg.Register(contactConfig("/api/v1/contact"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	got, ok := reg.Get("ContactForm")
	if !ok || got != inst {
		t.Fatalf("instance not reachable by name")
	}
	if !inst.Bound() {
		t.Fatalf("instance must be bound on registration")
	}
	if inst.IdleLabel() != "Send message" {
		t.Fatalf("idle label = %q", inst.IdleLabel())
	}
	if diff := cmp.Diff([]string{"ContactForm"}, reg.List()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistry_ReRegisterReplaces(t *testing.T) {
	doc, err := htmldoc.ParseString(page)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	reg := NewRegistry(WithDocument(doc))

	first := reg.MustRegister(contactConfig("/api/v1/contact"))
	cfg := contactConfig("/api/v2/contact")
	cfg.Messages.Success = "Thanks!"
	second := reg.MustRegister(cfg)

	got, ok := reg.Get("ContactForm")
	if !ok || got != second || got == first {
		t.Fatalf("registry must hold the latest instance")
	}
	if got.Config().Endpoint != "/api/v2/contact" || got.Config().Messages.Success != "Thanks!" {
		t.Fatalf("replacement config not applied: %+v", got.Config())
	}
	if len(reg.List()) != 1 {
		t.Fatalf("names = %v", reg.List())
	}
}

func TestRegistry_InvalidConfigIsLoggedNotFatal(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	reg := NewRegistry(WithLogger(zap.New(core)))

	inst, err := reg.Register(formconfig.Config{Name: "Broken", FormID: "broken-form", Fields: []string{"a"}})
	if inst != nil {
		t.Fatalf("expected nil instance")
	}
	if !formconfig.IsConfigurationError(err) {
		t.Fatalf("expected configuration error, got %v", err)
	}
	if logs.FilterMessage("form registration rejected").Len() != 1 {
		t.Fatalf("rejection not logged: %v", logs.All())
	}
	if reg.Has("Broken") {
		t.Fatalf("broken form must not be registered")
	}

	if _, err := reg.Register(contactConfig("/api/v1/contact")); err != nil {
		t.Fatalf("other forms must still register: %v", err)
	}
}

func TestRegistry_MissingFormElementStaysRegistered(t *testing.T) {
	doc, err := htmldoc.ParseString(`<html><body></body></html>`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	core, logs := observer.New(zapcore.WarnLevel)
	reg := NewRegistry(WithDocument(doc), WithLogger(zap.New(core)))

	inst, err := reg.Register(contactConfig("/api/v1/contact"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if inst.Bound() {
		t.Fatalf("instance must be unbound")
	}
	if logs.FilterMessage("form not bound").Len() != 1 {
		t.Fatalf("bind failure not logged")
	}

	bound, err := htmldoc.ParseString(page)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := reg.BindAll(bound); err != nil {
		t.Fatalf("bind all: %v", err)
	}
	if !inst.Bound() {
		t.Fatalf("instance must bind once the form exists")
	}
}

func TestRegistry_Submit(t *testing.T) {
	client := newServerClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	doc, err := htmldoc.ParseString(page)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	ns := notify.NewNamespace()
	ns.Set(notify.ToastKey, &recordingNotifier{})
	reg := NewRegistry(WithDocument(doc), WithClient(client), WithNamespace(ns))
	reg.MustRegister(contactConfig("/api/v1/contact"))

	outcome, err := reg.Submit(context.Background(), "ContactForm", NewEvent())
	if err != nil || outcome != OutcomeSucceeded {
		t.Fatalf("outcome = %v err = %v", outcome, err)
	}
	if _, err := reg.Submit(context.Background(), "Missing", NewEvent()); !errors.Is(err, ErrNotRegistered) {
		t.Fatalf("expected ErrNotRegistered, got %v", err)
	}
}
