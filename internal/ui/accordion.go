package ui

const noneOpen = -1

// Accordion tracks which single FAQ entry, if any, is expanded.
// The zero value is not ready for use; call NewAccordion.
type Accordion struct {
	open int
}

// NewAccordion returns an accordion with every panel collapsed.
func NewAccordion() *Accordion {
	return &Accordion{open: noneOpen}
}

// Toggle collapses entry i if it is the open one, otherwise it collapses
// whichever entry was open and expands i.
func (a *Accordion) Toggle(i int) {
	if i < 0 {
		return
	}
	if a.open == i {
		a.open = noneOpen
		return
	}
	a.open = i
}

// OpenIndex returns the expanded entry and true, or false when every panel
// is collapsed.
func (a *Accordion) OpenIndex() (int, bool) {
	if a.open == noneOpen {
		return 0, false
	}
	return a.open, true
}

// IsOpen reports whether entry i is expanded.
func (a *Accordion) IsOpen(i int) bool {
	return a.open != noneOpen && a.open == i
}

// Reset collapses every panel.
func (a *Accordion) Reset() {
	a.open = noneOpen
}
