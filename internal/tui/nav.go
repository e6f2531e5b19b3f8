package tui

// mode is the single active UI state. Exactly one mode is active at a time.
type mode int

const (
	modeMainMenu mode = iota
	modeCategorySelection
	modeProjectSelection
	modeInputURL
	modeCloneCategory
	modeFavorites
	modeRecent
	modeConfirmOpen
	modeHelp
	modeThemeSelection
)

func (m mode) String() string {
	switch m {
	case modeMainMenu:
		return "main-menu"
	case modeCategorySelection:
		return "category-selection"
	case modeProjectSelection:
		return "project-selection"
	case modeInputURL:
		return "input-url"
	case modeCloneCategory:
		return "clone-category"
	case modeFavorites:
		return "favorites"
	case modeRecent:
		return "recent"
	case modeConfirmOpen:
		return "confirm-open"
	case modeHelp:
		return "help"
	case modeThemeSelection:
		return "theme-selection"
	default:
		return "unknown"
	}
}

// backTarget is the back-chain as data. ConfirmOpen and Help are absent: they
// pop the saved previous mode instead. MainMenu maps to itself (back is a
// no-op there).
var backTarget = map[mode]mode{
	modeMainMenu:          modeMainMenu,
	modeCategorySelection: modeMainMenu,
	modeInputURL:          modeMainMenu,
	modeFavorites:         modeMainMenu,
	modeRecent:            modeMainMenu,
	modeThemeSelection:    modeMainMenu,
	modeProjectSelection:  modeCategorySelection,
	modeCloneCategory:     modeInputURL,
}

// projectMode reports whether the mode lists project records.
func (m mode) projectMode() bool {
	return m == modeProjectSelection || m == modeFavorites || m == modeRecent
}

// categoryMode reports whether the mode lists category names.
func (m mode) categoryMode() bool {
	return m == modeCategorySelection || m == modeCloneCategory
}

// searchable reports whether the search sub-mode may be entered.
func (m mode) searchable() bool {
	return m.projectMode() || m.categoryMode()
}

// navigation owns the current mode and the saved previous mode used by the
// two interrupt modes (ConfirmOpen, Help) to return where they came from.
//
// Invariant: prevSet is true exactly while an interrupt mode is active.
type navigation struct {
	mode    mode
	prev    mode
	prevSet bool
}

// pushInterrupt enters an interrupt mode, saving the current mode.
func (n *navigation) pushInterrupt(to mode) {
	n.prev = n.mode
	n.prevSet = true
	n.mode = to
}

// pop leaves an interrupt mode, consuming the saved mode. MainMenu is the
// fallback when nothing was saved.
func (n *navigation) pop() mode {
	target := modeMainMenu
	if n.prevSet {
		target = n.prev
	}
	n.prev = modeMainMenu
	n.prevSet = false
	n.mode = target
	return target
}
