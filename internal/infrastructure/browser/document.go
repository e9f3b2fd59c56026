//go:build js && wasm

// Package browser implements the application ports on top of a live browser
// page: the DOM, window.localStorage and matchMedia.
package browser

import (
	"strings"
	"sync"
	"syscall/js"

	"github.com/bnema/themesync/internal/application/port"
)

// Document implements port.Document over window.document.
type Document struct {
	doc js.Value
}

// NewDocument wraps the global document.
func NewDocument() *Document {
	return &Document{doc: js.Global().Get("document")}
}

func (d *Document) root() js.Value {
	return d.doc.Get("documentElement")
}

// RootAttribute implements port.Document.
func (d *Document) RootAttribute(name string) (string, bool) {
	v := d.root().Call("getAttribute", name)
	if v.IsNull() || v.IsUndefined() {
		return "", false
	}
	return v.String(), true
}

// SetRootAttribute implements port.Document. documentElement exists while
// the page is still parsing, so this is safe from a script in <head>.
func (d *Document) SetRootAttribute(name, value string) {
	d.root().Call("setAttribute", name, value)
}

// Toggles implements port.Document.
func (d *Document) Toggles(selector port.ToggleSelector) []port.ToggleControl {
	query := cssSelector(selector)
	if query == "" {
		return nil
	}

	list := d.doc.Call("querySelectorAll", query)
	n := list.Length()
	out := make([]port.ToggleControl, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, &Element{el: list.Index(i)})
	}
	return out
}

// OnReady implements port.Document.
func (d *Document) OnReady(fn func()) {
	if d.doc.Get("readyState").String() != "loading" {
		fn()
		return
	}

	var cb js.Func
	cb = js.FuncOf(func(js.Value, []js.Value) any {
		cb.Release()
		fn()
		return nil
	})
	d.doc.Call("addEventListener", "DOMContentLoaded", cb, map[string]any{"once": true})
}

// cssSelector builds a selector list matching the class or the id.
// querySelectorAll returns each element once, in document order.
func cssSelector(sel port.ToggleSelector) string {
	var parts []string
	if sel.Class != "" {
		parts = append(parts, "."+cssEscape(sel.Class))
	}
	if sel.ID != "" {
		parts = append(parts, "#"+cssEscape(sel.ID))
	}
	return strings.Join(parts, ",")
}

func cssEscape(ident string) string {
	css := js.Global().Get("CSS")
	if css.Truthy() && css.Get("escape").Type() == js.TypeFunction {
		return css.Call("escape", ident).String()
	}
	return ident
}

// Element implements port.ToggleControl for a DOM element.
type Element struct {
	el js.Value
}

// SetText implements port.ToggleControl.
func (e *Element) SetText(text string) {
	e.el.Set("textContent", text)
}

// SetAttribute implements port.ToggleControl.
func (e *Element) SetAttribute(name, value string) {
	e.el.Call("setAttribute", name, value)
}

// OnClick implements port.ToggleControl. The returned detach removes the
// listener and releases the Go callback.
func (e *Element) OnClick(handler func()) func() {
	cb := js.FuncOf(func(js.Value, []js.Value) any {
		handler()
		return nil
	})
	e.el.Call("addEventListener", "click", cb)

	var once sync.Once
	return func() {
		once.Do(func() {
			e.el.Call("removeEventListener", "click", cb)
			cb.Release()
		})
	}
}

var (
	_ port.Document      = (*Document)(nil)
	_ port.ToggleControl = (*Element)(nil)
)
