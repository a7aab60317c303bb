package formflow

import (
	"bytes"
	"context"
	"io"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formflow/pkg/dom/htmldoc"
	"github.com/goliatone/go-formflow/pkg/form"
	"github.com/goliatone/go-formflow/pkg/formconfig"
	"github.com/goliatone/go-formflow/pkg/page"
	"github.com/goliatone/go-formflow/pkg/transport"
)

func newsletter(endpoint string) Config {
	return Config{
		Name:     "Newsletter",
		Endpoint: endpoint,
		FormID:   "newsletter-form",
		Fields:   []string{"email"},
	}
}

func TestEmbeddedTemplatesContainsPage(t *testing.T) {
	if _, err := fs.ReadFile(EmbeddedTemplates(), page.DefaultTemplate); err != nil {
		t.Fatalf("expected page template to be readable: %v", err)
	}
}

func TestRenderInitializeSubmit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, `{"ok":true}`)
	}))
	defer srv.Close()

	var buf bytes.Buffer
	if err := RenderPage(&buf, "Subscribe", newsletter("/subscribe")); err != nil {
		t.Fatalf("render: %v", err)
	}
	doc, err := htmldoc.Parse(&buf)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	input, ok := doc.ElementByID("newsletter-email")
	if !ok {
		t.Fatalf("expected newsletter-email input in %s", doc.String())
	}
	input.SetValue("ada@example.com")

	client, err := transport.New(transport.WithBaseURL(srv.URL))
	if err != nil {
		t.Fatal(err)
	}
	reg := NewRegistry(form.WithClient(client))
	if _, err := Initialize(reg, newsletter("/subscribe")); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	if err := Bind(reg, doc); err != nil {
		t.Fatalf("bind: %v", err)
	}

	outcome, err := Submit(context.Background(), reg, "Newsletter")
	if err != nil || outcome != form.OutcomeSucceeded {
		t.Fatalf("submit: outcome=%s err=%v", outcome, err)
	}
	if got := input.Value(); got != "" {
		t.Fatalf("expected form reset, got %q", got)
	}
}

func TestRenderPageRejectsInvalidConfig(t *testing.T) {
	err := RenderPage(io.Discard, "x", Config{Name: "Broken"})
	if !formconfig.IsConfigurationError(err) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestLoadForms(t *testing.T) {
	store, err := LoadForms(fstest.MapFS{
		"forms.yaml": {Data: []byte("forms:\n  - name: Newsletter\n    endpoint: /subscribe\n    formId: newsletter-form\n    fields: [email]\n")},
	})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := strings.Join(store.Names(), ","); got != "Newsletter" {
		t.Fatalf("names = %q", got)
	}
}

func TestWithTheme(t *testing.T) {
	selector := formconfig.NewManifestSelector(&theme.Manifest{
		Name:   "brand",
		Tokens: map[string]string{formconfig.TokenErrorClass: "ring-red"},
	})
	cfg, err := WithTheme(newsletter("/subscribe"), selector, "", "")
	if err != nil {
		t.Fatalf("with theme: %v", err)
	}
	if cfg.ErrorClass != "ring-red" || cfg.NormalClass != formconfig.DefaultNormalClass {
		t.Fatalf("expected default classes, got %q / %q", cfg.ErrorClass, cfg.NormalClass)
	}
}
