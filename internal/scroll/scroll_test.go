package scroll

import (
	"strings"
	"sync"
	"testing"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name string
		m    Measurement
		want float64
	}{
		{"top below viewport", Measurement{MainTop: 10, MainHeight: 2000, WindowHeight: 800}, 0},
		{"at top", Measurement{MainTop: 0, MainHeight: 2000, WindowHeight: 800}, 0},
		{"halfway", Measurement{MainTop: -600, MainHeight: 2000, WindowHeight: 800}, 50},
		{"end", Measurement{MainTop: -1200, MainHeight: 2000, WindowHeight: 800}, 100},
		{"past end clamps", Measurement{MainTop: -5000, MainHeight: 2000, WindowHeight: 800}, 100},
		{"comment excluded", Measurement{MainTop: -400, MainHeight: 2000, CommentHeight: 400, WindowHeight: 800}, 50},
		{"fits window", Measurement{MainTop: 0, MainHeight: 500, WindowHeight: 800}, 100},
		{"fits window after comment", Measurement{MainTop: -10, MainHeight: 1000, CommentHeight: 300, WindowHeight: 800}, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compute(tt.m); got != tt.want {
				t.Errorf("Compute(%+v) = %v, want %v", tt.m, got, tt.want)
			}
		})
	}
}

func TestComputeMonotonic(t *testing.T) {
	prev := -1.0
	for top := 100.0; top >= -3000; top -= 50 {
		got := Compute(Measurement{MainTop: top, MainHeight: 2500, CommentHeight: 200, WindowHeight: 700})
		if got < 0 || got > 100 {
			t.Fatalf("Compute at top=%v = %v, out of range", top, got)
		}
		if got < prev {
			t.Fatalf("Compute decreased at top=%v: %v < %v", top, got, prev)
		}
		prev = got
	}
}

type fakeElement struct {
	rect   Rect
	client float64
}

func (e *fakeElement) BoundingRect() Rect { return e.rect }
func (e *fakeElement) ClientHeight() float64 { return e.client }

type fakeViewport struct {
	mu       sync.Mutex
	elements map[string]*fakeElement
	height   float64
	observer func(bool)
	scroll   func()

	disconnects int
	removes     int
}

func (v *fakeViewport) Query(selector string) (Element, bool) {
	el, ok := v.elements[selector]
	if !ok {
		return nil, false
	}
	return el, true
}

func (v *fakeViewport) InnerHeight() float64 { return v.height }

func (v *fakeViewport) Observe(_ Element, fn func(bool)) func() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.observer = fn
	return func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		v.observer = nil
		v.disconnects++
	}
}

func (v *fakeViewport) OnScroll(fn func()) func() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.scroll = fn
	return func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		v.scroll = nil
		v.removes++
	}
}

func (v *fakeViewport) intersect(visible bool) {
	v.mu.Lock()
	fn := v.observer
	v.mu.Unlock()
	if fn != nil {
		fn(visible)
	}
}

func (v *fakeViewport) scrollTo(main *fakeElement, top float64) {
	main.rect.Top = top
	v.mu.Lock()
	fn := v.scroll
	v.mu.Unlock()
	if fn != nil {
		fn()
	}
}

func newFake() (*fakeViewport, *fakeElement) {
	main := &fakeElement{rect: Rect{Top: 0, Height: 2000}}
	return &fakeViewport{
		elements: map[string]*fakeElement{"main": main},
		height:   800,
	}, main
}

func TestTrackerNoMainElement(t *testing.T) {
	vp := &fakeViewport{elements: map[string]*fakeElement{}, height: 800}
	tr := NewTracker(vp, Options{})
	if tr.Start() {
		t.Fatal("Start() = true without a main element")
	}
	if vp.observer != nil || vp.scroll != nil {
		t.Error("listeners attached without a main element")
	}
	tr.Stop()
	if vp.disconnects != 0 || vp.removes != 0 {
		t.Error("Stop detached listeners that were never attached")
	}
}

func TestTrackerVisibility(t *testing.T) {
	vp, main := newFake()
	var changes []State
	tr := NewTracker(vp, Options{OnChange: func(s State) { changes = append(changes, s) }})
	if !tr.Start() {
		t.Fatal("Start() = false")
	}

	// Scrolling while not visible leaves progress alone.
	vp.scrollTo(main, -600)
	if got := tr.State(); got.Progress != 0 || got.Visible {
		t.Fatalf("State before visible = %+v", got)
	}

	vp.intersect(true)
	if got := tr.State(); !got.Visible || got.Progress != 50 {
		t.Fatalf("State after visible = %+v, want visible at 50", got)
	}

	vp.scrollTo(main, -1200)
	if got := tr.State().Progress; got != 100 {
		t.Errorf("Progress after scrolling to end = %v, want 100", got)
	}

	vp.intersect(false)
	if got := tr.State(); got.Visible || got.Progress != 0 {
		t.Errorf("State after invisible = %+v, want hidden at 0", got)
	}

	if len(changes) != 3 {
		t.Errorf("OnChange called %d times, want 3", len(changes))
	}
}

func TestTrackerCommentSelector(t *testing.T) {
	vp, main := newFake()
	vp.elements[".giscus"] = &fakeElement{client: 400}
	tr := NewTracker(vp, Options{CommentSelector: ".giscus"})
	tr.Start()
	vp.intersect(true)
	vp.scrollTo(main, -400)
	if got := tr.State().Progress; got != 50 {
		t.Errorf("Progress = %v, want 50", got)
	}
}

func TestTrackerStopDetaches(t *testing.T) {
	vp, main := newFake()
	tr := NewTracker(vp, Options{})
	tr.Start()
	vp.intersect(true)

	tr.Stop()
	tr.Stop()
	if vp.disconnects != 1 || vp.removes != 1 {
		t.Fatalf("detached observer %d times and scroll %d times, want 1 each", vp.disconnects, vp.removes)
	}
	if vp.observer != nil || vp.scroll != nil {
		t.Error("listeners still registered after Stop")
	}

	before := tr.State()
	vp.scrollTo(main, -1200)
	if tr.State() != before {
		t.Error("state changed after Stop")
	}
}

func TestBar(t *testing.T) {
	html := string(Bar(42.5, ""))
	for _, want := range []string{
		`class="scroll-progress"`,
		`data-comment-selector=".giscus"`,
		`style="width: 42.5%"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("Bar() missing %q in %s", want, html)
		}
	}
	if got := string(Bar(250, "#comments")); !strings.Contains(got, "width: 100%") || !strings.Contains(got, `data-comment-selector="#comments"`) {
		t.Errorf("Bar(250) = %s", got)
	}
}
