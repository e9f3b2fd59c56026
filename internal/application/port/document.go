package port

// ToggleSelector identifies toggle controls by class name or element id.
// An element matching either is a toggle; empty fields match nothing.
type ToggleSelector struct {
	Class string
	ID    string
}

// Document is the hosting page: its root element and the toggle controls in it.
type Document interface {
	// RootAttribute returns an attribute of the root element, false if absent.
	RootAttribute(name string) (string, bool)

	// SetRootAttribute writes an attribute on the root element.
	// Must work before the document has finished loading.
	SetRootAttribute(name, value string)

	// Toggles returns every element matching the selector, in document order.
	Toggles(selector ToggleSelector) []ToggleControl

	// OnReady runs fn once the document is interactive.
	// If it already is, fn runs before OnReady returns.
	OnReady(fn func())
}

// ToggleControl is an interactive element that flips the theme on activation.
type ToggleControl interface {
	// SetText replaces the element's text content.
	SetText(text string)

	// SetAttribute writes an attribute on the element.
	SetAttribute(name, value string)

	// OnClick attaches a click handler. Returns a function that detaches it.
	OnClick(handler func()) (detach func())
}
