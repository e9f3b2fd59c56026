package dom

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/bnema/themesync/internal/application/port"
)

// Element is a single node of a Document.
type Element struct {
	doc  *Document
	node *html.Node
}

// SetText implements port.ToggleControl.
func (e *Element) SetText(text string) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()

	for c := e.node.FirstChild; c != nil; {
		next := c.NextSibling
		e.node.RemoveChild(c)
		c = next
	}
	e.node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

// SetAttribute implements port.ToggleControl.
func (e *Element) SetAttribute(name, value string) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	setAttr(e.node, name, value)
}

// OnClick implements port.ToggleControl.
func (e *Element) OnClick(handler func()) func() {
	return e.doc.addHandler(e.node, handler)
}

// Click dispatches a click to every handler attached to the element.
func (e *Element) Click() {
	e.doc.dispatchClick(e.node)
}

// Attribute returns an attribute value, false if absent.
func (e *Element) Attribute(name string) (string, bool) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	return getAttr(e.node, name)
}

// Text returns the concatenated text content of the element.
func (e *Element) Text() string {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()

	var sb strings.Builder
	walk(e.node, func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
	})
	return sb.String()
}

var _ port.ToggleControl = (*Element)(nil)
