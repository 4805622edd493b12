package ui

// ScrollThreshold is the vertical offset, in pixels, past which the
// navigation bar switches to its solid mode.
const ScrollThreshold = 50

// NavMode is the visual scheme of the navigation bar.
type NavMode string

const (
	NavTransparent NavMode = "transparent"
	NavSolid       NavMode = "solid"
)

// ScrollObserver derives the navigation bar mode from the page scroll
// position. It only reacts to observations while mounted.
type ScrollObserver struct {
	mounted  bool
	scrolled bool
}

// NewScrollObserver returns an unmounted observer in transparent mode.
func NewScrollObserver() *ScrollObserver {
	return &ScrollObserver{}
}

// Mount subscribes the observer. The page starts at the top, so the
// derived flag is cleared.
func (o *ScrollObserver) Mount() {
	o.mounted = true
	o.scrolled = false
}

// Unmount unsubscribes the observer; later observations are dropped.
func (o *ScrollObserver) Unmount() {
	o.mounted = false
}

// Mounted reports whether the observer is subscribed.
func (o *ScrollObserver) Mounted() bool {
	return o.mounted
}

// Observe records a new vertical scroll offset and reports whether the
// derived mode changed.
func (o *ScrollObserver) Observe(offset float64) bool {
	if !o.mounted {
		return false
	}
	scrolled := offset > ScrollThreshold
	changed := scrolled != o.scrolled
	o.scrolled = scrolled
	return changed
}

// Scrolled reports whether the last observed offset was past the threshold.
func (o *ScrollObserver) Scrolled() bool {
	return o.scrolled
}

// Mode returns the navigation bar mode for the current scroll position.
func (o *ScrollObserver) Mode() NavMode {
	if o.scrolled {
		return NavSolid
	}
	return NavTransparent
}
