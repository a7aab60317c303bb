// Package formflow is the top-level entry point: it re-exports the types most
// callers need and wires the common render, register and submit path.
package formflow

import (
	"context"
	"io"
	"io/fs"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formflow/pkg/dom"
	"github.com/goliatone/go-formflow/pkg/form"
	"github.com/goliatone/go-formflow/pkg/formconfig"
	"github.com/goliatone/go-formflow/pkg/page"
)

// Config describes a form; alias exported via the root package for
// convenience.
type Config = formconfig.Config

// Messages are the user facing strings of a form.
type Messages = formconfig.Messages

// Hooks are the optional transform, success and error callbacks.
type Hooks = formconfig.Hooks

// Registry is the named set of live form instances.
type Registry = form.Registry

// Instance is one bound form.
type Instance = form.Instance

// Outcome is the result of a submission.
type Outcome = form.Outcome

// NewRegistry exposes the registry constructor from the top-level module.
func NewRegistry(options ...form.Option) *Registry {
	return form.NewRegistry(options...)
}

// Initialize registers cfg and returns its instance, replacing any form of
// the same name. With form.WithDocument the instance is bound immediately.
func Initialize(reg *Registry, cfg Config) (*Instance, error) {
	return reg.Register(cfg)
}

// Submit runs a submission of the named form with a fresh event.
func Submit(ctx context.Context, reg *Registry, name string) (Outcome, error) {
	return reg.Submit(ctx, name, form.NewEvent())
}

// LoadForms reads every form definition document in fsys.
func LoadForms(fsys fs.FS) (*formconfig.Store, error) {
	return formconfig.LoadFS(fsys)
}

// RenderPage renders a page holding every cfg using the embedded template.
func RenderPage(w io.Writer, title string, cfgs ...Config) error {
	p := page.Page{Title: title}
	for _, cfg := range cfgs {
		eff, err := formconfig.Merge(cfg)
		if err != nil {
			return err
		}
		p.Add(eff, nil)
	}
	renderer, err := page.New()
	if err != nil {
		return err
	}
	return renderer.Render(w, p)
}

// WithTheme applies the input classes of a go-theme selection to cfg.
func WithTheme(cfg Config, selector theme.ThemeSelector, name, variant string) (Config, error) {
	classes, err := formconfig.ThemeClasses(selector, name, variant)
	if err != nil {
		return cfg, err
	}
	return formconfig.ApplyClasses(cfg, classes), nil
}

// Bind binds every registered form to doc.
func Bind(reg *Registry, doc dom.Document) error {
	return reg.BindAll(doc)
}
