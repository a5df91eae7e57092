package surf

// Dimensions is a viewport measurement. Scale and FontScale exist for
// host environments that report them; terminal hosts leave them at 1.
type Dimensions struct {
	Width     int
	Height    int
	Scale     float64
	FontScale float64
}

// sameDimensions compares field by field. Only a change in at least one
// field may propagate to listeners.
func sameDimensions(a, b Dimensions) bool {
	return a.Width == b.Width &&
		a.Height == b.Height &&
		a.Scale == b.Scale &&
		a.FontScale == b.FontScale
}

// DimensionWatcher supplies the current viewport size and change
// notifications.
type DimensionWatcher interface {
	Current() Dimensions
	Subscribe(listener func(Dimensions)) (cancel func())
}

// ResizeWatcher is the de-duplicating fallback watcher used when the host
// has no native dimension source. It wraps a read function over the raw
// resize signal; Notify is called on every resize notification and fans out
// only when at least one field actually changed.
//
// Not safe for concurrent use: it is driven from the single-threaded update
// loop, like everything else in this package.
type ResizeWatcher struct {
	read      func() Dimensions
	last      Dimensions
	listeners map[int]func(Dimensions)
	nextID    int
}

// NewResizeWatcher primes the watcher with an initial read.
func NewResizeWatcher(read func() Dimensions) *ResizeWatcher {
	return &ResizeWatcher{
		read:      read,
		last:      read(),
		listeners: make(map[int]func(Dimensions)),
	}
}

// Current returns the last propagated value.
func (w *ResizeWatcher) Current() Dimensions {
	return w.last
}

// Notify re-reads the dimensions and propagates them when changed.
func (w *ResizeWatcher) Notify() {
	cur := w.read()
	if sameDimensions(cur, w.last) {
		return
	}
	w.last = cur
	w.fanOut(cur)
}

// Subscribe registers a listener and returns its cancel function. A resize
// may have fired between the caller's last read and this registration, so
// the watcher immediately re-reads and propagates any missed update before
// returning.
func (w *ResizeWatcher) Subscribe(listener func(Dimensions)) (cancel func()) {
	id := w.nextID
	w.nextID++
	w.listeners[id] = listener

	w.Notify()

	return func() {
		delete(w.listeners, id)
	}
}

func (w *ResizeWatcher) fanOut(d Dimensions) {
	for _, fn := range w.listeners {
		fn(d)
	}
}
