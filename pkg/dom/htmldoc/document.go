package htmldoc

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/goliatone/go-formflow/pkg/dom"
)

// Document is a mutable HTML tree. All element operations lock the document,
// so a Document can be shared between the engine and a renderer goroutine.
type Document struct {
	mu       sync.Mutex
	root     *html.Node
	active   *html.Node
	defaults map[*html.Node]string
}

var _ dom.Document = (*Document)(nil)

// Parse reads a full HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("htmldoc: parse: %w", err)
	}
	return &Document{
		root:     root,
		defaults: make(map[*html.Node]string),
	}, nil
}

// ParseString parses markup held in memory.
func ParseString(markup string) (*Document, error) {
	return Parse(strings.NewReader(markup))
}

// Render writes the current tree.
func (d *Document) Render(w io.Writer) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return html.Render(w, d.root)
}

// String returns the serialised tree.
func (d *Document) String() string {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}

// ElementByID returns the element with the given id attribute.
func (d *Document) ElementByID(id string) (dom.Element, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	node := d.findByID(id)
	if node == nil {
		return nil, false
	}
	return &element{doc: d, node: node}, true
}

// FormByID returns the <form> with the given id.
func (d *Document) FormByID(id string) (dom.Form, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	node := d.findByID(id)
	if node == nil || node.Data != "form" {
		return nil, false
	}
	return &form{element: element{doc: d, node: node}}, true
}

// ActiveElement returns the element that last received focus.
func (d *Document) ActiveElement() (dom.Element, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.active == nil {
		return nil, false
	}
	return &element{doc: d, node: d.active}, true
}

// Append parses fragment and appends it to the element with id parentID,
// creating nothing when the parent is missing.
func (d *Document) Append(parentID, fragment string) (dom.Element, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	parent := d.findByID(parentID)
	if parent == nil {
		return nil, fmt.Errorf("htmldoc: element %q not found", parentID)
	}
	// ParseFragment rejects a context node whose atom disagrees with its tag.
	if parent.DataAtom == 0 {
		parent.DataAtom = atom.Lookup([]byte(parent.Data))
	}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), parent)
	if err != nil {
		return nil, fmt.Errorf("htmldoc: parse fragment: %w", err)
	}
	var first *html.Node
	for _, node := range nodes {
		parent.AppendChild(node)
		if first == nil && node.Type == html.ElementNode {
			first = node
		}
	}
	if first == nil {
		return nil, nil
	}
	return &element{doc: d, node: first}, nil
}

// EnsureContainer returns the element with id, creating a <div> with the
// provided class at the end of <body> when absent.
func (d *Document) EnsureContainer(id, class string) (dom.Element, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if node := d.findByID(id); node != nil {
		return &element{doc: d, node: node}, nil
	}
	body := htmlquery.FindOne(d.root, "//body")
	if body == nil {
		return nil, fmt.Errorf("htmldoc: document has no body")
	}
	node := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Div,
		Data:     "div",
		Attr:     []html.Attribute{{Key: "id", Val: id}},
	}
	if class != "" {
		node.Attr = append(node.Attr, html.Attribute{Key: "class", Val: class})
	}
	body.AppendChild(node)
	return &element{doc: d, node: node}, nil
}

func (d *Document) findByID(id string) *html.Node {
	if d.root == nil || id == "" || strings.ContainsAny(id, `'"`) {
		return nil
	}
	node, err := htmlquery.Query(d.root, fmt.Sprintf("//*[@id='%s']", id))
	if err != nil {
		return nil
	}
	return node
}

func (d *Document) rememberDefault(node *html.Node, value string) {
	if _, seen := d.defaults[node]; !seen {
		d.defaults[node] = value
	}
}
