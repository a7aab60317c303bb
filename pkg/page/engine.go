package page

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/flosch/pongo2/v6"
	gotemplate "github.com/goliatone/go-template"
)

// TemplateExtension is the extension of page templates.
const TemplateExtension = ".tmpl"

// templateRenderer is the part of the go-template renderer the page needs.
type templateRenderer interface {
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	GlobalContext(data any) error
}

// Engine renders pongo2 templates through go-template, loaded from an fs.FS
// or a base directory on disk.
type Engine struct {
	renderer templateRenderer
}

// EngineOption configures NewEngine.
type EngineOption func(*engineConfig)

type engineConfig struct {
	baseDir string
	files   fs.FS
	globals map[string]any
}

// FromFS loads templates from files.
func FromFS(files fs.FS) EngineOption {
	return func(cfg *engineConfig) {
		cfg.files = files
	}
}

// FromDir loads templates from a directory on disk.
func FromDir(dir string) EngineOption {
	return func(cfg *engineConfig) {
		cfg.baseDir = strings.TrimSpace(dir)
	}
}

// WithEngineGlobals seeds values visible to every template.
func WithEngineGlobals(data map[string]any) EngineOption {
	return func(cfg *engineConfig) {
		for key, value := range data {
			if key = strings.TrimSpace(key); key == "" {
				continue
			}
			if cfg.globals == nil {
				cfg.globals = make(map[string]any, len(data))
			}
			cfg.globals[key] = value
		}
	}
}

// NewEngine builds an engine. One of FromFS or FromDir is required; a base
// directory takes precedence.
func NewEngine(options ...EngineOption) (*Engine, error) {
	cfg := engineConfig{}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	rendererOpts := []gotemplate.Option{gotemplate.WithExtension(TemplateExtension)}
	switch {
	case cfg.baseDir != "":
		rendererOpts = append(rendererOpts, gotemplate.WithBaseDir(cfg.baseDir))
	case cfg.files != nil:
		rendererOpts = append(rendererOpts, gotemplate.WithFS(cfg.files))
	default:
		return nil, errors.New("page: need a template fs or base dir")
	}

	registerFilters()
	renderer, err := gotemplate.NewRenderer(rendererOpts...)
	if err != nil {
		return nil, fmt.Errorf("page: create template renderer: %w", err)
	}
	if len(cfg.globals) > 0 {
		if err := renderer.GlobalContext(cfg.globals); err != nil {
			return nil, fmt.Errorf("page: apply global data: %w", err)
		}
	}
	return &Engine{renderer: renderer}, nil
}

// RenderTemplate executes the template name with data and writes the result
// to w. The extension may be omitted.
func (e *Engine) RenderTemplate(w io.Writer, name string, data map[string]any) error {
	if e == nil || e.renderer == nil {
		return errors.New("page: engine is nil")
	}
	name = strings.TrimSuffix(path.Clean(name), TemplateExtension)
	if _, err := e.renderer.RenderTemplate(name, data, w); err != nil {
		return fmt.Errorf("page: render template %q: %w", name, err)
	}
	return nil
}

// registerFilters installs the filters the page template relies on. pongo2
// filters are process wide, so existing registrations are kept.
func registerFilters() {
	if !pongo2.FilterExists("trim") {
		_ = pongo2.RegisterFilter("trim", filterTrim)
	}
}

func filterTrim(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsValue(strings.TrimSpace(in.String())), nil
}
