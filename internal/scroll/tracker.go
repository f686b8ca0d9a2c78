package scroll

import "sync"

// Rect is the bounding box of an element relative to the viewport.
type Rect struct {
	Top    float64
	Height float64
}

// Element is a node in the host document.
type Element interface {
	BoundingRect() Rect
	ClientHeight() float64
}

// Viewport is the host runtime the tracker attaches to. Observe and OnScroll
// return functions that detach what they registered.
type Viewport interface {
	Query(selector string) (Element, bool)
	InnerHeight() float64
	Observe(el Element, fn func(intersecting bool)) (disconnect func())
	OnScroll(fn func()) (remove func())
}

// State is the tracker's rendered state.
type State struct {
	Progress float64
	Visible  bool
}

// Options selects the elements the tracker measures.
type Options struct {
	MainSelector    string // defaults to "main"
	CommentSelector string // optional
	OnChange        func(State)
}

// Tracker follows scroll progress through the main region. It owns an
// intersection observer and a scroll listener between Start and Stop.
type Tracker struct {
	vp   Viewport
	opts Options

	mu      sync.Mutex
	state   State
	main    Element
	comment Element
	detach  []func()
	started bool
}

// NewTracker creates a stopped tracker.
func NewTracker(vp Viewport, opts Options) *Tracker {
	if opts.MainSelector == "" {
		opts.MainSelector = "main"
	}
	return &Tracker{vp: vp, opts: opts}
}

// Start attaches the observer and the scroll listener. It returns false and
// attaches nothing when the main region is missing. Starting twice is a no-op.
func (t *Tracker) Start() bool {
	t.mu.Lock()
	if t.started {
		t.mu.Unlock()
		return true
	}
	main, ok := t.vp.Query(t.opts.MainSelector)
	if !ok {
		t.mu.Unlock()
		return false
	}
	t.main = main
	if t.opts.CommentSelector != "" {
		if c, ok := t.vp.Query(t.opts.CommentSelector); ok {
			t.comment = c
		}
	}
	t.started = true
	t.mu.Unlock()

	// Registration happens outside the lock: hosts may fire callbacks synchronously.
	disconnect := t.vp.Observe(main, t.onVisibility)
	remove := t.vp.OnScroll(t.onScroll)

	t.mu.Lock()
	t.detach = append(t.detach, disconnect, remove)
	t.mu.Unlock()

	t.onScroll()
	return true
}

// Stop detaches the observer and the scroll listener. It is safe to call more
// than once.
func (t *Tracker) Stop() {
	t.mu.Lock()
	detach := t.detach
	t.detach = nil
	t.started = false
	t.main = nil
	t.comment = nil
	t.mu.Unlock()

	for _, fn := range detach {
		if fn != nil {
			fn()
		}
	}
}

// State returns the current progress and visibility.
func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

func (t *Tracker) onVisibility(intersecting bool) {
	t.mu.Lock()
	if !t.started {
		t.mu.Unlock()
		return
	}
	t.state.Visible = intersecting
	if intersecting {
		t.state.Progress = t.measureLocked()
	} else {
		t.state.Progress = 0
	}
	st := t.state
	t.mu.Unlock()
	t.notify(st)
}

func (t *Tracker) onScroll() {
	t.mu.Lock()
	if !t.started || !t.state.Visible {
		t.mu.Unlock()
		return
	}
	t.state.Progress = t.measureLocked()
	st := t.state
	t.mu.Unlock()
	t.notify(st)
}

func (t *Tracker) measureLocked() float64 {
	rect := t.main.BoundingRect()
	m := Measurement{
		MainTop:      rect.Top,
		MainHeight:   rect.Height,
		WindowHeight: t.vp.InnerHeight(),
	}
	if t.comment != nil {
		m.CommentHeight = t.comment.ClientHeight()
	}
	return Compute(m)
}

func (t *Tracker) notify(st State) {
	if t.opts.OnChange != nil {
		t.opts.OnChange(st)
	}
}
