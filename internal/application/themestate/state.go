// Package themestate holds the document theme state: the root attribute
// that style rules key on, plus the subscribers interested in it.
package themestate

import (
	"sync"

	"github.com/bnema/themesync/internal/application/port"
	"github.com/bnema/themesync/internal/domain/entity"
)

// DefaultAttribute is the root attribute holding the active theme.
const DefaultAttribute = "data-theme"

// subscriber wraps a callback function to enable pointer comparison for removal.
type subscriber struct {
	fn func(entity.Theme)
}

// State reads and writes the active theme on a document's root element.
type State struct {
	mu          sync.Mutex
	doc         port.Document
	attribute   string
	subscribers []*subscriber
}

// New creates a theme state bound to doc. An empty attribute means DefaultAttribute.
func New(doc port.Document, attribute string) *State {
	if attribute == "" {
		attribute = DefaultAttribute
	}
	return &State{
		doc:       doc,
		attribute: attribute,
	}
}

// Attribute returns the root attribute name.
func (s *State) Attribute() string {
	return s.attribute
}

// Get returns the theme currently on the root element.
// Returns false when the attribute is missing or holds an unknown value.
func (s *State) Get() (entity.Theme, bool) {
	raw, ok := s.doc.RootAttribute(s.attribute)
	if !ok {
		return "", false
	}
	theme, err := entity.ParseTheme(raw)
	if err != nil {
		return "", false
	}
	return theme, true
}

// Raw returns the root attribute as written, known theme or not.
func (s *State) Raw() (string, bool) {
	return s.doc.RootAttribute(s.attribute)
}

// Set writes theme on the root element and notifies subscribers.
func (s *State) Set(theme entity.Theme) {
	s.doc.SetRootAttribute(s.attribute, theme.String())

	s.mu.Lock()
	subs := make([]*subscriber, len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(theme)
	}
}

// Subscribe registers fn to run after every Set.
// Returns a function to unregister it.
func (s *State) Subscribe(fn func(entity.Theme)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	wrapper := &subscriber{fn: fn}
	s.subscribers = append(s.subscribers, wrapper)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		for i, sub := range s.subscribers {
			if sub == wrapper {
				s.subscribers = append(s.subscribers[:i], s.subscribers[i+1:]...)
				return
			}
		}
	}
}
