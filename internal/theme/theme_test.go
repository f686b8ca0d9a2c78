package theme

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestToggleHiddenUntilMounted(t *testing.T) {
	tg := NewToggle(NewState(true))

	v := tg.View()
	if !v.Hidden || v.Icon != IconSun {
		t.Errorf("unmounted view = %+v, want hidden sun placeholder", v)
	}

	tg.Mount()
	v = tg.View()
	if v.Hidden || v.Icon != IconMoon {
		t.Errorf("mounted dark view = %+v, want visible moon", v)
	}
}

func TestToggleFlipsContext(t *testing.T) {
	state := NewState(false)
	tg := NewToggle(state)
	tg.Mount()

	if tg.View().Icon != IconSun {
		t.Fatal("light mode should show the sun")
	}
	tg.OnToggle()
	if !state.IsDarkMode() {
		t.Error("toggle should switch to dark mode")
	}
	if tg.View().Icon != IconMoon {
		t.Error("dark mode should show the moon")
	}
	tg.OnToggle()
	if state.IsDarkMode() {
		t.Error("second toggle should switch back to light mode")
	}
}

func TestFromRequest(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if FromRequest(req).IsDarkMode() {
		t.Error("no cookie should mean light mode")
	}

	req.AddCookie(&http.Cookie{Name: CookieName, Value: "true"})
	if !FromRequest(req).IsDarkMode() {
		t.Error("dark-mode=true cookie should mean dark mode")
	}
}

func TestSVG(t *testing.T) {
	if !strings.Contains(string(SVG(IconMoon)), "moon-icon") {
		t.Error("moon icon markup")
	}
	if !strings.Contains(string(SVG("anything")), "sun-icon") {
		t.Error("unknown icons fall back to the sun")
	}
}
