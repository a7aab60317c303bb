package htmldoc

import (
	"strings"

	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"

	"github.com/goliatone/go-formflow/pkg/dom"
)

type element struct {
	doc  *Document
	node *html.Node
}

var _ dom.Element = (*element)(nil)

func (e *element) ID() string {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	value, _ := getAttr(e.node, "id")
	return value
}

func (e *element) Tag() string {
	return e.node.Data
}

func (e *element) Attr(name string) (string, bool) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	return getAttr(e.node, name)
}

func (e *element) SetAttr(name, value string) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	setAttr(e.node, name, value)
}

func (e *element) RemoveAttr(name string) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	removeAttr(e.node, name)
}

func (e *element) HasClass(name string) bool {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	for _, class := range classes(e.node) {
		if class == name {
			return true
		}
	}
	return false
}

func (e *element) AddClass(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	current := classes(e.node)
	for _, class := range current {
		if class == name {
			return
		}
	}
	setAttr(e.node, "class", strings.Join(append(current, name), " "))
}

func (e *element) RemoveClass(name string) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	current := classes(e.node)
	kept := current[:0]
	for _, class := range current {
		if class != name {
			kept = append(kept, class)
		}
	}
	if len(kept) == 0 {
		removeAttr(e.node, "class")
		return
	}
	setAttr(e.node, "class", strings.Join(kept, " "))
}

func (e *element) Text() string {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	return htmlquery.InnerText(e.node)
}

func (e *element) SetText(text string) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	replaceText(e.node, text)
}

func (e *element) Value() string {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	return controlValue(e.node)
}

func (e *element) SetValue(value string) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	e.doc.rememberDefault(e.node, controlValue(e.node))
	setControlValue(e.node, value)
}

func (e *element) Disabled() bool {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	_, ok := getAttr(e.node, "disabled")
	return ok
}

func (e *element) SetDisabled(disabled bool) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	if disabled {
		setAttr(e.node, "disabled", "")
		return
	}
	removeAttr(e.node, "disabled")
}

func (e *element) Focus() {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	e.doc.active = e.node
}

func (e *element) Query(selector string) (dom.Element, bool) {
	xpath, ok := selectorToXPath(selector)
	if !ok {
		return nil, false
	}
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	node, err := htmlquery.Query(e.node, xpath)
	if err != nil || node == nil {
		return nil, false
	}
	return &element{doc: e.doc, node: node}, true
}

func getAttr(node *html.Node, name string) (string, bool) {
	for _, attr := range node.Attr {
		if attr.Namespace == "" && attr.Key == name {
			return attr.Val, true
		}
	}
	return "", false
}

func setAttr(node *html.Node, name, value string) {
	for i, attr := range node.Attr {
		if attr.Namespace == "" && attr.Key == name {
			node.Attr[i].Val = value
			return
		}
	}
	node.Attr = append(node.Attr, html.Attribute{Key: name, Val: value})
}

func removeAttr(node *html.Node, name string) {
	kept := node.Attr[:0]
	for _, attr := range node.Attr {
		if attr.Namespace == "" && attr.Key == name {
			continue
		}
		kept = append(kept, attr)
	}
	node.Attr = kept
}

func classes(node *html.Node) []string {
	value, _ := getAttr(node, "class")
	return strings.Fields(value)
}

func replaceText(node *html.Node, text string) {
	for child := node.FirstChild; child != nil; {
		next := child.NextSibling
		node.RemoveChild(child)
		child = next
	}
	if text == "" {
		return
	}
	node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}
