package ui

const (
	// MenuQueryValue is the ?menu= value sent by the menu button.
	MenuQueryValue = "aberto"
	// MenuOutsideValue is the ?menu= value sent by the backdrop around the open menu.
	MenuOutsideValue = "fora"
)

type Menu struct {
	open bool
}

func NewMenu(open bool) *Menu { return &Menu{open: open} }

func (m *Menu) Toggle() { m.open = !m.open }

// ClickOutside closes the menu; a click elsewhere never opens it.
func (m *Menu) ClickOutside() { m.open = false }

func (m *Menu) IsOpen() bool { return m.open }

// MenuFromQuery replays the click that produced a ?menu= value: the button toggles a
// closed menu, the backdrop is a click outside an open one.
func MenuFromQuery(v string) *Menu {
	switch v {
	case MenuQueryValue:
		m := NewMenu(false)
		m.Toggle()
		return m
	case MenuOutsideValue:
		m := NewMenu(true)
		m.ClickOutside()
		return m
	}
	return NewMenu(false)
}

// ToggleHref is the link the menu button points to on path.
func (m *Menu) ToggleHref(path string) string {
	if m.open {
		return path
	}
	return path + "?menu=" + MenuQueryValue
}

// BackdropHref is the link the area around the open menu points to on path.
func (m *Menu) BackdropHref(path string) string {
	return path + "?menu=" + MenuOutsideValue
}
