package ui

// MobileMenu tracks whether the full-screen navigation overlay is shown.
type MobileMenu struct {
	open bool
}

// Toggle flips the overlay between shown and hidden.
func (m *MobileMenu) Toggle() {
	m.open = !m.open
}

// Open shows the overlay.
func (m *MobileMenu) Open() {
	m.open = true
}

// Close hides the overlay. Navigation links and the overlay's reserve
// button both call it.
func (m *MobileMenu) Close() {
	m.open = false
}

// IsOpen reports whether the overlay is shown.
func (m *MobileMenu) IsOpen() bool {
	return m.open
}
