// Package page renders HTML pages whose forms follow the binding convention,
// so a rendered page can be bound and submitted by package form.
package page

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/goliatone/go-formflow/pkg/dom/htmldoc"
	"github.com/goliatone/go-formflow/pkg/formconfig"
	"github.com/goliatone/go-formflow/pkg/notify"
)

// ToastContainerID is the id of the element toasts are appended to.
const ToastContainerID = notify.ContainerID

// Page is the data rendered into the page template.
type Page struct {
	Title      string
	Lang       string
	Stylesheet string
	Forms      []FormView
}

// Add appends the view of cfg to the page.
func (p *Page) Add(cfg formconfig.Effective, hints map[string]FieldHint) {
	p.Forms = append(p.Forms, NewFormView(cfg, hints))
}

// Option configures a Renderer.
type Option func(*config)

type config struct {
	templates fs.FS
	dir       string
	template  string
	globals   map[string]any
}

// WithTemplatesFS supplies an alternate template bundle.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templates = files
		}
	}
}

// WithTemplatesDir loads templates from a directory on disk instead of the
// embedded bundle.
func WithTemplatesDir(dir string) Option {
	return func(cfg *config) {
		cfg.dir = strings.TrimSpace(dir)
	}
}

// WithTemplate selects the template rendered from the bundle.
func WithTemplate(name string) Option {
	return func(cfg *config) {
		if name != "" {
			cfg.template = name
		}
	}
}

// WithGlobalData seeds values available to every render.
func WithGlobalData(data map[string]any) Option {
	return func(cfg *config) {
		for key, value := range data {
			if cfg.globals == nil {
				cfg.globals = make(map[string]any, len(data))
			}
			cfg.globals[key] = value
		}
	}
}

// Renderer renders Page values.
type Renderer struct {
	engine   *Engine
	template string
}

// New constructs a Renderer over the embedded templates unless overridden.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templates: TemplatesFS(),
		template:  DefaultTemplate,
	}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	source := FromFS(cfg.templates)
	if cfg.dir != "" {
		source = FromDir(cfg.dir)
	}
	engine, err := NewEngine(source, WithEngineGlobals(cfg.globals))
	if err != nil {
		return nil, err
	}
	return &Renderer{engine: engine, template: cfg.template}, nil
}

// Render writes p as HTML.
func (r *Renderer) Render(w io.Writer, p Page) error {
	lang := p.Lang
	if lang == "" {
		lang = "en"
	}
	return r.engine.RenderTemplate(w, r.template, map[string]any{
		"title":          p.Title,
		"lang":           lang,
		"stylesheet":     p.Stylesheet,
		"forms":          p.Forms,
		"toastContainer": ToastContainerID,
	})
}

// Document renders p and parses the result, ready to be bound.
func (r *Renderer) Document(p Page) (*htmldoc.Document, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, p); err != nil {
		return nil, err
	}
	doc, err := htmldoc.Parse(&buf)
	if err != nil {
		return nil, fmt.Errorf("page: parse rendered page: %w", err)
	}
	return doc, nil
}
