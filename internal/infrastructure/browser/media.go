//go:build js && wasm

package browser

import (
	"sync"
	"syscall/js"

	"github.com/bnema/themesync/internal/application/port"
)

const darkSchemeQuery = "(prefers-color-scheme: dark)"

// MediaPreference implements port.SystemPreference with
// matchMedia('(prefers-color-scheme: dark)').
type MediaPreference struct {
	mql js.Value
}

// NewMediaPreference queries matchMedia. Without matchMedia support the
// preference reads as unknown and subscriptions are no-ops.
func NewMediaPreference() *MediaPreference {
	matchMedia := js.Global().Get("matchMedia")
	if matchMedia.Type() != js.TypeFunction {
		return &MediaPreference{}
	}
	return &MediaPreference{mql: js.Global().Call("matchMedia", darkSchemeQuery)}
}

// PrefersDark implements port.SystemPreference.
func (m *MediaPreference) PrefersDark() (bool, bool) {
	if !m.mql.Truthy() {
		return false, false
	}
	return m.mql.Get("matches").Bool(), true
}

// Subscribe implements port.SystemPreference.
func (m *MediaPreference) Subscribe(callback func(prefersDark bool)) func() {
	if !m.mql.Truthy() {
		return func() {}
	}

	cb := js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) > 0 {
			callback(args[0].Get("matches").Bool())
		}
		return nil
	})

	// Safari before 14 only has the deprecated addListener.
	modern := m.mql.Get("addEventListener").Type() == js.TypeFunction
	if modern {
		m.mql.Call("addEventListener", "change", cb)
	} else {
		m.mql.Call("addListener", cb)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			if modern {
				m.mql.Call("removeEventListener", "change", cb)
			} else {
				m.mql.Call("removeListener", cb)
			}
			cb.Release()
		})
	}
}

var _ port.SystemPreference = (*MediaPreference)(nil)
