// Package visibility reports when watched regions of a scrollable document
// first scroll into view.
package visibility

// DefaultThreshold is the fraction of a region that must be on screen.
const DefaultThreshold = 0.1

// Region is a vertical span of the document, in lines.
type Region struct {
	Top    int
	Height int
}

// Window is the part of the document currently on screen.
type Window struct {
	Top    int
	Height int
}

// Observer fires a callback the first time each region becomes visible and
// then stops watching it. It is driven from a single update loop and is not
// safe for concurrent use.
type Observer struct {
	threshold float64
	onVisible func(id string)
	order     []string
	regions   map[string]Region
	closed    bool
}

// New returns an Observer. Thresholds outside (0, 1] fall back to
// DefaultThreshold. onVisible may be nil.
func New(threshold float64, onVisible func(id string)) *Observer {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultThreshold
	}
	return &Observer{
		threshold: threshold,
		onVisible: onVisible,
		regions:   make(map[string]Region),
	}
}

// Observe starts watching id. Re-observing an id replaces its region and
// keeps its original position in the firing order.
func (o *Observer) Observe(id string, r Region) {
	if o.closed {
		return
	}
	if _, ok := o.regions[id]; !ok {
		o.order = append(o.order, id)
	}
	o.regions[id] = r
}

// Unobserve stops watching id.
func (o *Observer) Unobserve(id string) {
	if _, ok := o.regions[id]; !ok {
		return
	}
	delete(o.regions, id)
	for i, existing := range o.order {
		if existing == id {
			o.order = append(o.order[:i], o.order[i+1:]...)
			break
		}
	}
}

// Check tests every watched region against w. Regions that meet the
// threshold are unobserved and their ids returned in registration order,
// after the callback has run for each.
func (o *Observer) Check(w Window) []string {
	if o.closed || len(o.order) == 0 {
		return nil
	}

	var fired []string
	for _, id := range o.order {
		if o.Ratio(o.regions[id], w) >= o.threshold {
			fired = append(fired, id)
		}
	}

	for _, id := range fired {
		o.Unobserve(id)
		if o.onVisible != nil {
			o.onVisible(id)
		}
	}
	return fired
}

// Ratio is the fraction of r inside w. Empty regions count as visible once
// their top line is inside w.
func (o *Observer) Ratio(r Region, w Window) float64 {
	if w.Height <= 0 {
		return 0
	}
	if r.Height <= 0 {
		if r.Top >= w.Top && r.Top < w.Top+w.Height {
			return 1
		}
		return 0
	}

	top := max(r.Top, w.Top)
	bottom := min(r.Top+r.Height, w.Top+w.Height)
	if bottom <= top {
		return 0
	}
	return float64(bottom-top) / float64(r.Height)
}

// Pending lists the ids still being watched, in registration order.
func (o *Observer) Pending() []string {
	out := make([]string, len(o.order))
	copy(out, o.order)
	return out
}

// Disconnect drops every watch. Later calls to Observe and Check do
// nothing.
func (o *Observer) Disconnect() {
	o.closed = true
	o.order = nil
	o.regions = make(map[string]Region)
}

// Disconnected reports whether Disconnect was called.
func (o *Observer) Disconnected() bool {
	return o.closed
}
