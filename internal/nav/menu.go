package nav

// Menu owns the mobile menu-open flag. The zero value is a closed menu.
//
// Menu is confined to the browser's event loop and is not safe for concurrent use.
type Menu struct {
	open bool
}

// Open reports whether the overlay is shown.
func (m *Menu) Open() bool { return m.open }

// Toggle flips the flag and returns the new value.
func (m *Menu) Toggle() bool {
	m.open = !m.open
	return m.open
}

// Close hides the overlay.
func (m *Menu) Close() { m.open = false }

// ToggleIcon is the icon shown on the toggle control for the current state.
func (m *Menu) ToggleIcon() string {
	if m.open {
		return "times"
	}
	return "bars"
}
