// Package catalog holds the filtered, ordered, selectable listing shared by
// every browsing mode: menu entries, categories, projects, favorites,
// recents. Selection is always an index into the filtered view.
package catalog

import "strings"

// Item is anything listable. The interface mirrors the bubbles list item
// convention: FilterValue returns the text the filter matches against.
type Item interface {
	FilterValue() string
}

// StringItem adapts a plain string (category names, menu labels).
type StringItem string

func (s StringItem) FilterValue() string { return string(s) }

// Index owns one listing plus its filter text and selection.
//
// Invariant: the selected index is -1 iff the filtered view is empty,
// otherwise it is a valid index into the filtered view.
type Index struct {
	items    []Item
	filter   string
	selected int
}

func New(items ...Item) *Index {
	idx := &Index{}
	idx.SetItems(items)
	return idx
}

// SetItems replaces the listing wholesale and re-clamps the selection. The
// active filter is kept.
func (x *Index) SetItems(items []Item) {
	x.items = items
	x.resetSelection()
}

// SetFilter replaces the filter text and resets the selection to the first
// match. A stale index into a shrunk view is never left behind.
func (x *Index) SetFilter(q string) {
	x.filter = q
	x.resetSelection()
}

func (x *Index) ClearFilter() { x.SetFilter("") }

func (x *Index) Filter() string { return x.filter }

// Visible returns the filtered view: the items whose FilterValue contains
// the filter text case-insensitively, in underlying order.
func (x *Index) Visible() []Item {
	if x.filter == "" {
		return x.items
	}
	q := strings.ToLower(x.filter)
	var out []Item
	for _, it := range x.items {
		if strings.Contains(strings.ToLower(it.FilterValue()), q) {
			out = append(out, it)
		}
	}
	return out
}

func (x *Index) Len() int { return len(x.Visible()) }

// SelectedIndex returns the index into the filtered view, or -1.
func (x *Index) SelectedIndex() int { return x.selected }

// Selected returns the selected item of the filtered view.
func (x *Index) Selected() (Item, bool) {
	visible := x.Visible()
	if x.selected < 0 || x.selected >= len(visible) {
		return nil, false
	}
	return visible[x.selected], true
}

// Next advances the selection, wrapping past the end. No-op on an empty view.
func (x *Index) Next() { x.move(1) }

// Prev moves the selection back, wrapping past the start.
func (x *Index) Prev() { x.move(-1) }

func (x *Index) move(delta int) {
	n := x.Len()
	if n == 0 {
		return
	}
	x.selected = ((x.selected+delta)%n + n) % n
}

func (x *Index) resetSelection() {
	if x.Len() == 0 {
		x.selected = -1
		return
	}
	x.selected = 0
}

// Strings wraps a string slice as items.
func Strings(values []string) []Item {
	items := make([]Item, len(values))
	for i, v := range values {
		items[i] = StringItem(v)
	}
	return items
}
