// Package dom implements port.Document over an HTML tree parsed in memory.
package dom

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/bnema/themesync/internal/application/port"
)

type clickHandler struct {
	fn func()
}

// Document is a parsed HTML page with a loading/interactive lifecycle
// and click dispatch for its elements.
type Document struct {
	mu       sync.Mutex
	tree     *html.Node
	root     *html.Node
	ready    bool
	readyFns []func()
	handlers map[*html.Node][]*clickHandler
}

// Parse reads an HTML page. The returned document is still loading:
// OnReady callbacks queue until MarkReady is called.
func Parse(r io.Reader) (*Document, error) {
	tree, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}

	root := findElement(tree, atom.Html)
	if root == nil {
		// html.Parse always synthesizes <html>; this only guards odd inputs.
		root = &html.Node{Type: html.ElementNode, Data: "html", DataAtom: atom.Html}
		tree.AppendChild(root)
	}

	return &Document{
		tree:     tree,
		root:     root,
		handlers: make(map[*html.Node][]*clickHandler),
	}, nil
}

// ParseString is Parse for an in-memory string.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// RootAttribute implements port.Document.
func (d *Document) RootAttribute(name string) (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return getAttr(d.root, name)
}

// SetRootAttribute implements port.Document.
func (d *Document) SetRootAttribute(name, value string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	setAttr(d.root, name, value)
}

// Toggles implements port.Document.
func (d *Document) Toggles(selector port.ToggleSelector) []port.ToggleControl {
	d.mu.Lock()
	defer d.mu.Unlock()

	var out []port.ToggleControl
	walk(d.tree, func(n *html.Node) {
		if n.Type == html.ElementNode && matches(n, selector) {
			out = append(out, &Element{doc: d, node: n})
		}
	})
	return out
}

// Elements returns the concrete elements matching selector.
func (d *Document) Elements(selector port.ToggleSelector) []*Element {
	controls := d.Toggles(selector)
	out := make([]*Element, len(controls))
	for i, c := range controls {
		out[i] = c.(*Element)
	}
	return out
}

// OnReady implements port.Document.
func (d *Document) OnReady(fn func()) {
	d.mu.Lock()
	if d.ready {
		d.mu.Unlock()
		fn()
		return
	}
	d.readyFns = append(d.readyFns, fn)
	d.mu.Unlock()
}

// Ready reports whether the document has become interactive.
func (d *Document) Ready() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.ready
}

// MarkReady moves the document to interactive and runs queued OnReady callbacks
// in registration order. Calling it again is a no-op.
func (d *Document) MarkReady() {
	d.mu.Lock()
	if d.ready {
		d.mu.Unlock()
		return
	}
	d.ready = true
	fns := d.readyFns
	d.readyFns = nil
	d.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return html.Render(w, d.tree)
}

// String renders the document, returning an empty string on error.
func (d *Document) String() string {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}

func (d *Document) addHandler(n *html.Node, fn func()) func() {
	d.mu.Lock()
	defer d.mu.Unlock()

	h := &clickHandler{fn: fn}
	d.handlers[n] = append(d.handlers[n], h)

	return func() {
		d.mu.Lock()
		defer d.mu.Unlock()

		list := d.handlers[n]
		for i, existing := range list {
			if existing == h {
				d.handlers[n] = append(list[:i], list[i+1:]...)
				return
			}
		}
	}
}

func (d *Document) dispatchClick(n *html.Node) {
	d.mu.Lock()
	list := make([]*clickHandler, len(d.handlers[n]))
	copy(list, d.handlers[n])
	d.mu.Unlock()

	for _, h := range list {
		h.fn()
	}
}

// matches reports whether n is a toggle under the selector's class/id convention.
func matches(n *html.Node, selector port.ToggleSelector) bool {
	if selector.ID != "" {
		if id, ok := getAttr(n, "id"); ok && id == selector.ID {
			return true
		}
	}
	if selector.Class != "" {
		if class, ok := getAttr(n, "class"); ok {
			for _, c := range strings.Fields(class) {
				if c == selector.Class {
					return true
				}
			}
		}
	}
	return false
}

func walk(n *html.Node, fn func(*html.Node)) {
	fn(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}

func getAttr(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

func setAttr(n *html.Node, name, value string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == name {
			n.Attr[i].Val = value
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: name, Val: value})
}

var _ port.Document = (*Document)(nil)
