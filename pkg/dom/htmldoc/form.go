package htmldoc

import (
	"net/url"
	"strings"

	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"

	"github.com/goliatone/go-formflow/pkg/dom"
)

const controlsXPath = ".//*[self::input or self::textarea or self::select]"

type form struct {
	element
}

var _ dom.Form = (*form)(nil)

func (f *form) FormValue(name string) (string, bool) {
	f.doc.mu.Lock()
	defer f.doc.mu.Unlock()
	for _, node := range htmlquery.Find(f.node, controlsXPath) {
		controlName, _ := getAttr(node, "name")
		if controlName != name || !successful(node) {
			continue
		}
		return submittedValue(node), true
	}
	return "", false
}

func (f *form) Values() url.Values {
	f.doc.mu.Lock()
	defer f.doc.mu.Unlock()
	out := url.Values{}
	for _, node := range htmlquery.Find(f.node, controlsXPath) {
		name, _ := getAttr(node, "name")
		if name == "" || !successful(node) {
			continue
		}
		out.Add(name, submittedValue(node))
	}
	return out
}

func (f *form) Reset() {
	f.doc.mu.Lock()
	defer f.doc.mu.Unlock()
	for _, node := range htmlquery.Find(f.node, controlsXPath) {
		initial, ok := f.doc.defaults[node]
		if !ok {
			continue
		}
		setControlValue(node, initial)
		delete(f.doc.defaults, node)
	}
}

func successful(node *html.Node) bool {
	if _, disabled := getAttr(node, "disabled"); disabled {
		return false
	}
	if node.Data != "input" {
		return true
	}
	switch inputType(node) {
	case "submit", "button", "reset", "image", "file":
		return false
	case "checkbox", "radio":
		_, checked := getAttr(node, "checked")
		return checked
	}
	return true
}

func submittedValue(node *html.Node) string {
	if node.Data == "input" {
		switch inputType(node) {
		case "checkbox", "radio":
			if value, ok := getAttr(node, "value"); ok {
				return value
			}
			return "on"
		}
	}
	return controlValue(node)
}

func inputType(node *html.Node) string {
	value, _ := getAttr(node, "type")
	return strings.ToLower(strings.TrimSpace(value))
}

func controlValue(node *html.Node) string {
	switch node.Data {
	case "textarea":
		return htmlquery.InnerText(node)
	case "select":
		options := htmlquery.Find(node, ".//option")
		for _, option := range options {
			if _, selected := getAttr(option, "selected"); selected {
				return optionValue(option)
			}
		}
		if len(options) > 0 {
			return optionValue(options[0])
		}
		return ""
	default:
		value, _ := getAttr(node, "value")
		return value
	}
}

func setControlValue(node *html.Node, value string) {
	switch node.Data {
	case "textarea":
		replaceText(node, value)
	case "select":
		for _, option := range htmlquery.Find(node, ".//option") {
			if optionValue(option) == value {
				setAttr(option, "selected", "")
				continue
			}
			removeAttr(option, "selected")
		}
	default:
		if value == "" {
			removeAttr(node, "value")
			return
		}
		setAttr(node, "value", value)
	}
}

func optionValue(option *html.Node) string {
	if value, ok := getAttr(option, "value"); ok {
		return value
	}
	return strings.TrimSpace(htmlquery.InnerText(option))
}
