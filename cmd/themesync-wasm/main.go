//go:build js && wasm

// Command themesync-wasm runs the theme controller inside a browser page.
// Load it from <head> so the theme is applied before first paint:
//
//	GOOS=js GOARCH=wasm go build -o themesync.wasm ./cmd/themesync-wasm
package main

import (
	"context"
	"syscall/js"

	"github.com/bnema/themesync/internal/app/themer"
	"github.com/bnema/themesync/internal/domain/entity"
	"github.com/bnema/themesync/internal/infrastructure/browser"
	"github.com/bnema/themesync/internal/infrastructure/persistence"
	"github.com/bnema/themesync/internal/logging"
)

func main() {
	// stderr goes to the browser console.
	ctx := logging.WithContext(context.Background(), logging.NewFromConfigValues("warn", "console"))

	store := persistence.NewPreferenceStore(browser.NewLocalStorage(), entity.DefaultPreferenceKey)
	ctrl := themer.New(browser.NewDocument(), store, browser.NewMediaPreference(), themer.DefaultOptions())
	ctrl.Start(ctx)

	exposeAPI(ctx, ctrl)

	// Handlers run on the JS event loop; keep the Go runtime alive for them.
	select {}
}

// exposeAPI publishes window.themesync for page scripts:
// toggle() flips the theme like a click, theme() returns the current one.
func exposeAPI(ctx context.Context, ctrl *themer.Controller) {
	api := js.Global().Get("Object").New()
	api.Set("toggle", js.FuncOf(func(js.Value, []js.Value) any {
		return ctrl.Toggle(ctx).Current.String()
	}))
	api.Set("theme", js.FuncOf(func(js.Value, []js.Value) any {
		theme, ok := ctrl.Theme()
		if !ok {
			return js.Null()
		}
		return theme.String()
	}))
	js.Global().Set("themesync", api)
}
