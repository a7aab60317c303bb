package form

import (
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-formflow/pkg/binding"
	"github.com/goliatone/go-formflow/pkg/dom"
	"github.com/goliatone/go-formflow/pkg/transport"
)

// ClearErrors returns every configured field to the normal visual state.
// Calling it repeatedly has no further effect.
func (i *Instance) ClearErrors() {
	doc := i.document()
	if doc == nil {
		return
	}
	for _, b := range i.cfg.Bindings() {
		i.clearBinding(doc, b)
	}
}

// HandleInput clears the error state of field, the way typing into an input
// dismisses its error. It reports false for unknown fields.
func (i *Instance) HandleInput(field string) bool {
	if !i.cfg.HasField(field) {
		return false
	}
	doc := i.document()
	if doc == nil {
		return false
	}
	i.clearBinding(doc, binding.Binding{
		Field:   field,
		InputID: i.cfg.Convention.InputID(field),
		ErrorID: i.cfg.Convention.ErrorID(field),
	})
	return true
}

// ShowErrors marks each reported field as invalid and renders its message,
// then focuses the first reported field whose input exists. Keys are matched
// against the configured fields first and normalised otherwise; form-level
// keys are skipped. Missing elements are ignored.
func (i *Instance) ShowErrors(errs transport.FieldErrors) {
	doc := i.document()
	if doc == nil || len(errs) == 0 {
		return
	}

	var focus dom.Element
	shown := make(map[string]struct{}, len(errs))
	for _, entry := range errs {
		field, formLevel := fieldForKey(entry.Field, i.cfg.Fields)
		if formLevel {
			i.logger.Debug("form level error not mapped", zap.String("key", entry.Field))
			continue
		}
		if _, dup := shown[field]; dup {
			continue
		}
		shown[field] = struct{}{}

		input, ok := doc.ElementByID(i.cfg.Convention.InputID(field))
		if ok {
			removeClasses(input, i.cfg.NormalClass)
			addClasses(input, i.cfg.ErrorClass)
			if focus == nil {
				focus = input
			}
		}
		if slot, ok := doc.ElementByID(i.cfg.Convention.ErrorID(field)); ok {
			slot.SetText(entry.Message)
			slot.RemoveClass(binding.HiddenClass)
		}
	}

	if focus != nil {
		focus.Focus()
	}
}

func (i *Instance) clearBinding(doc dom.Document, b binding.Binding) {
	if input, ok := doc.ElementByID(b.InputID); ok {
		removeClasses(input, i.cfg.ErrorClass)
		addClasses(input, i.cfg.NormalClass)
	}
	if slot, ok := doc.ElementByID(b.ErrorID); ok {
		slot.SetText("")
		slot.AddClass(binding.HiddenClass)
	}
}

// Class settings may hold several space separated classes.
func addClasses(el dom.Element, classes string) {
	for _, class := range strings.Fields(classes) {
		el.AddClass(class)
	}
}

func removeClasses(el dom.Element, classes string) {
	for _, class := range strings.Fields(classes) {
		el.RemoveClass(class)
	}
}
