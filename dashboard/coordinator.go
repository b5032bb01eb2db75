package dashboard

// Plot is a layout-sensitive widget the coordinator can resize.
type Plot interface {
	// PanelClosed reports whether the panel hosting the plot is collapsed.
	PanelClosed() bool

	// Resize re-fits the plot to a new bounding box.
	Resize(width, height int)
}

// Surface enumerates the plots currently on screen. The coordinator calls
// Plots on every dispatch and never caches the result, so plots added or
// removed between resizes are picked up automatically.
type Surface interface {
	Plots() []Plot
}

// ReadyFunc reports whether the application has finished its initial load.
// It is owned by the application; the coordinator only reads it.
type ReadyFunc func() bool

// Coordinator fans a terminal resize out to registered callbacks and to
// every visible plot on its surface. All work is suppressed while the
// readiness check reports false, which guards against redraw attempts before
// the first batch of data has arrived and widgets have real dimensions.
type Coordinator struct {
	ready     ReadyFunc
	surface   Surface
	callbacks []func()
}

// NewCoordinator creates a coordinator reading readiness from ready and
// enumerating plots from surface.
func NewCoordinator(ready ReadyFunc, surface Surface) *Coordinator {
	return &Coordinator{
		ready:   ready,
		surface: surface,
	}
}

// OnEvent registers a callback invoked on every resize dispatch. Callbacks
// run in registration order and are never removed.
func (c *Coordinator) OnEvent(fn func()) {
	c.callbacks = append(c.callbacks, fn)
}

// OnResize handles a window resize event. While the application is not
// ready it returns immediately with no side effects. Otherwise it invokes
// every registered callback in order and then refreshes the plots.
//
// Failures are not handled here: a panicking callback or plot propagates to
// the caller, matching the top-level crash handling in main.
func (c *Coordinator) OnResize(width, height int) {
	if c.ready == nil || !c.ready() {
		return
	}

	for _, fn := range c.callbacks {
		fn()
	}

	c.RefreshPlots(width, height)
}

// RefreshPlots resizes every plot whose panel is open. Plots inside
// collapsed panels are skipped: resizing a hidden plot would fit it against
// a zero-height box and corrupt its sample window.
func (c *Coordinator) RefreshPlots(width, height int) {
	if c.surface == nil {
		return
	}

	for _, p := range c.surface.Plots() {
		if p.PanelClosed() {
			continue
		}
		p.Resize(width, height)
	}
}
