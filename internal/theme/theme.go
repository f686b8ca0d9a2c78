// Package theme holds the light/dark mode state shared by the page and the
// header's toggle control.
package theme

import (
	"html/template"
	"net/http"
	"sync"
)

// CookieName is read to seed the initial mode. Writing it is left to the client.
const CookieName = "dark-mode"

// Context exposes the current mode and a way to flip it.
type Context interface {
	IsDarkMode() bool
	ToggleDarkMode()
}

// State is an in-memory Context.
type State struct {
	mu   sync.Mutex
	dark bool
}

// NewState returns a State starting in the given mode.
func NewState(dark bool) *State {
	return &State{dark: dark}
}

// FromRequest seeds a State from the dark-mode cookie.
func FromRequest(r *http.Request) *State {
	c, err := r.Cookie(CookieName)
	return NewState(err == nil && c.Value == "true")
}

func (s *State) IsDarkMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dark
}

func (s *State) ToggleDarkMode() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dark = !s.dark
}

// Icon names rendered by the toggle.
const (
	IconSun  = "sun"
	IconMoon = "moon"
)

// Toggle is the header's theme switch. Until Mount is called it renders a
// hidden placeholder so the first paint never shows the wrong icon.
type Toggle struct {
	ctx     Context
	mounted bool
}

// NewToggle creates an unmounted toggle bound to ctx.
func NewToggle(ctx Context) *Toggle {
	return &Toggle{ctx: ctx}
}

// Mount marks the toggle as mounted; the real icon shows from then on.
func (t *Toggle) Mount() { t.mounted = true }

// Mounted reports whether Mount has been called.
func (t *Toggle) Mounted() bool { return t.mounted }

// OnToggle flips the bound theme context.
func (t *Toggle) OnToggle() { t.ctx.ToggleDarkMode() }

// View is what the toggle renders.
type View struct {
	Hidden bool
	Icon   string
}

// View returns the current rendering: the sun placeholder while unmounted,
// then moon for dark mode and sun for light mode.
func (t *Toggle) View() View {
	if !t.mounted {
		return View{Hidden: true, Icon: IconSun}
	}
	if t.ctx.IsDarkMode() {
		return View{Icon: IconMoon}
	}
	return View{Icon: IconSun}
}

// SVG returns the markup for icon.
func SVG(icon string) template.HTML {
	if icon == IconMoon {
		return moonSVG
	}
	return sunSVG
}

const sunSVG template.HTML = `<svg class="sun-icon" width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"><circle cx="12" cy="12" r="5"/><line x1="12" y1="1" x2="12" y2="3"/><line x1="12" y1="21" x2="12" y2="23"/><line x1="4.22" y1="4.22" x2="5.64" y2="5.64"/><line x1="18.36" y1="18.36" x2="19.78" y2="19.78"/><line x1="1" y1="12" x2="3" y2="12"/><line x1="21" y1="12" x2="23" y2="12"/><line x1="4.22" y1="19.78" x2="5.64" y2="18.36"/><line x1="18.36" y1="5.64" x2="19.78" y2="4.22"/></svg>`

const moonSVG template.HTML = `<svg class="moon-icon" width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"><path d="M21 12.79A9 9 0 1 1 11.21 3 7 7 0 0 0 21 12.79z"/></svg>`
