// Package themer wires the theme use cases to a document: it applies the
// resolved theme as early as possible, then keeps toggles and the root
// attribute in step with clicks and system color scheme changes.
package themer

import (
	"context"
	"sync"

	"github.com/bnema/themesync/internal/application/port"
	"github.com/bnema/themesync/internal/application/themestate"
	"github.com/bnema/themesync/internal/application/usecase"
	"github.com/bnema/themesync/internal/domain/entity"
	"github.com/bnema/themesync/internal/logging"
)

// DefaultToggleName is both the class and the id that mark a toggle control.
const DefaultToggleName = "theme-toggle"

// Options configures the markup conventions of a Controller.
type Options struct {
	// Attribute is the root attribute holding the theme. Empty means "data-theme".
	Attribute string
	// Selector identifies toggle controls.
	Selector port.ToggleSelector
	// Labels are the glyphs and texts written on toggles.
	Labels entity.ToggleLabels
}

// DefaultOptions returns the stock conventions.
func DefaultOptions() Options {
	return Options{
		Attribute: themestate.DefaultAttribute,
		Selector:  port.ToggleSelector{Class: DefaultToggleName, ID: DefaultToggleName},
		Labels:    entity.DefaultToggleLabels(),
	}
}

// Controller owns the theme lifecycle of one document.
// Transitions are serialized so each read-modify-write completes before the next.
type Controller struct {
	mu      sync.Mutex
	doc     port.Document
	system  port.SystemPreference
	state   *themestate.State
	resolve *usecase.ResolveThemeUseCase
	apply   *usecase.ApplyThemeUseCase
	sync    *usecase.SyncTogglesUseCase
	toggle  *usecase.ToggleThemeUseCase
	follow  *usecase.FollowSystemThemeUseCase

	cancels []func()
	started bool
	wired   bool
	closed  bool
}

// New creates a controller. store and system may be nil.
func New(doc port.Document, store port.PreferenceStore, system port.SystemPreference, opts Options) *Controller {
	state := themestate.New(doc, opts.Attribute)
	resolve := usecase.NewResolveThemeUseCase(store, system)
	apply := usecase.NewApplyThemeUseCase(state)
	syncUC := usecase.NewSyncTogglesUseCase(doc, opts.Selector, opts.Labels)

	return &Controller{
		doc:     doc,
		system:  system,
		state:   state,
		resolve: resolve,
		apply:   apply,
		sync:    syncUC,
		toggle:  usecase.NewToggleThemeUseCase(state, resolve, apply, syncUC, store),
		follow:  usecase.NewFollowSystemThemeUseCase(store, apply, syncUC),
	}
}

// Start resolves and applies the theme immediately, then defers toggle
// synchronization and event wiring until the document is ready.
// Returns the initially applied theme. Calling Start twice is a no-op.
func (c *Controller) Start(ctx context.Context) entity.Theme {
	ctx = logging.WithComponent(ctx, "themer")
	log := logging.FromContext(ctx)

	c.mu.Lock()
	if c.started {
		c.mu.Unlock()
		theme, _ := c.state.Get()
		return theme
	}
	c.started = true

	resolution := c.resolve.Resolve(ctx)
	c.apply.Execute(ctx, resolution.Theme)
	c.mu.Unlock()

	log.Info().
		Str("theme", resolution.Theme.String()).
		Str("source", resolution.Source).
		Msg("initial theme applied")

	c.doc.OnReady(func() {
		c.wire(ctx, resolution.Theme)
	})

	return resolution.Theme
}

// wire synchronizes toggles and attaches the click and system listeners.
func (c *Controller) wire(ctx context.Context, initial entity.Theme) {
	log := logging.FromContext(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || c.wired {
		return
	}
	c.wired = true

	current, ok := c.state.Get()
	if !ok {
		current = initial
	}
	c.sync.Execute(ctx, current)

	controls := c.doc.Toggles(c.sync.Selector())
	for _, control := range controls {
		c.cancels = append(c.cancels, control.OnClick(func() {
			c.Toggle(ctx)
		}))
	}

	if c.system != nil {
		c.cancels = append(c.cancels, c.system.Subscribe(func(prefersDark bool) {
			c.SystemChanged(ctx, prefersDark)
		}))
	}

	log.Debug().Int("controls", len(controls)).Bool("system", c.system != nil).Msg("theme listeners attached")
}

// Toggle flips the theme as a click on a toggle control does.
func (c *Controller) Toggle(ctx context.Context) usecase.ToggleThemeOutput {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.toggle.Execute(ctx)
}

// SystemChanged handles a system color scheme notification.
// Returns the applied theme and true, or false if a stored preference took precedence.
func (c *Controller) SystemChanged(ctx context.Context, prefersDark bool) (entity.Theme, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.follow.Execute(ctx, prefersDark)
}

// Theme returns the theme currently applied to the document.
func (c *Controller) Theme() (entity.Theme, bool) {
	return c.state.Get()
}

// Resolve reports what the resolver would pick right now, and why.
func (c *Controller) Resolve(ctx context.Context) usecase.ThemeResolution {
	return c.resolve.Resolve(ctx)
}

// Appearance returns what toggles show for theme.
func (c *Controller) Appearance(theme entity.Theme) entity.ToggleAppearance {
	return c.sync.Appearance(theme)
}

// Subscribe registers fn to run after every theme change on the document.
// fn must not call back into the Controller.
func (c *Controller) Subscribe(fn func(entity.Theme)) func() {
	return c.state.Subscribe(fn)
}

// Close detaches every click handler and the system subscription.
// The document keeps its current theme. Safe to call more than once.
func (c *Controller) Close() {
	c.mu.Lock()
	cancels := c.cancels
	c.cancels = nil
	c.closed = true
	c.mu.Unlock()

	for _, cancel := range cancels {
		if cancel != nil {
			cancel()
		}
	}
}
