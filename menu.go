package main

// menuItem identifies a selectable dropdown entry.
type menuItem struct {
	id    string
	label string
}

type menu struct {
	title string
	items []menuItem
}

// menubar holds the header dropdowns. At most one menu is open at a time:
// opening any menu closes the rest. Leaving the menubar does not hide the
// open dropdown immediately; a delayed hide is scheduled and invalidated
// by re-entry via the generation counter.
type menubar struct {
	menus   []menu
	cursor  int // highlighted menu while the menubar has focus
	open    int // index of the open menu, -1 when all closed
	itemIdx int // highlighted item inside the open menu
	gen     int // pending-hide generation
}

func newMenubar() menubar {
	return menubar{
		menus: []menu{
			{title: "Account", items: []menuItem{
				{id: "login", label: "Sign in"},
				{id: "register", label: "Create account"},
			}},
			{title: "Help", items: []menuItem{
				{id: "about", label: "About"},
				{id: "shortcuts", label: "Shortcuts"},
			}},
		},
		open: -1,
	}
}

// openMenu opens the menu at i, closing any other.
func (b *menubar) openMenu(i int) {
	if i < 0 || i >= len(b.menus) {
		return
	}
	b.cursor = i
	b.open = i
	b.itemIdx = 0
}

// closeAll hides every dropdown.
func (b *menubar) closeAll() {
	b.open = -1
	b.itemIdx = 0
}

// enter marks the menubar as re-entered, invalidating any pending hide.
func (b *menubar) enter() {
	b.gen++
}

// leave bumps the generation and returns it; the caller schedules a
// delayed hide for that generation.
func (b *menubar) leave() int {
	b.gen++
	return b.gen
}

// hideIfStale closes the dropdowns only when gen is still current.
func (b *menubar) hideIfStale(gen int) {
	if gen == b.gen {
		b.closeAll()
	}
}

// moveCursor shifts the highlighted menu by delta, wrapping, and opens it
// so moving along the bar behaves like hover.
func (b *menubar) moveCursor(delta int) {
	n := len(b.menus)
	if n == 0 {
		return
	}
	b.cursor = ((b.cursor+delta)%n + n) % n
	b.openMenu(b.cursor)
}

// moveItem shifts the highlighted item in the open menu by delta, wrapping.
func (b *menubar) moveItem(delta int) {
	if b.open < 0 {
		return
	}
	n := len(b.menus[b.open].items)
	if n == 0 {
		return
	}
	b.itemIdx = ((b.itemIdx+delta)%n + n) % n
}

// selected returns the highlighted item of the open menu.
func (b *menubar) selected() (menuItem, bool) {
	if b.open < 0 || b.itemIdx >= len(b.menus[b.open].items) {
		return menuItem{}, false
	}
	return b.menus[b.open].items[b.itemIdx], true
}
