package catalog

import "testing"

func names(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.FilterValue()
	}
	return out
}

func TestFilterIsOrderedSubsequence(t *testing.T) {
	idx := New(Strings([]string{"Alpha", "beta", "Gamma", "alphabet"})...)
	idx.SetFilter("ALPHA")

	got := names(idx.Visible())
	want := []string{"Alpha", "alphabet"}
	if len(got) != len(want) {
		t.Fatalf("filtered view: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("filtered view order: got %v, want %v", got, want)
		}
	}
}

func TestEmptyFilterPassesAll(t *testing.T) {
	idx := New(Strings([]string{"a", "b", "c"})...)
	if idx.Len() != 3 {
		t.Fatalf("empty filter should pass all: got %d", idx.Len())
	}
}

func TestSelectionInvariant(t *testing.T) {
	idx := New()
	if idx.SelectedIndex() != -1 {
		t.Fatalf("empty index must have no selection, got %d", idx.SelectedIndex())
	}

	idx.SetItems(Strings([]string{"one", "two"}))
	if idx.SelectedIndex() != 0 {
		t.Fatalf("non-empty index must select 0, got %d", idx.SelectedIndex())
	}

	idx.SetFilter("zzz")
	if idx.SelectedIndex() != -1 {
		t.Fatalf("empty filtered view must clear selection, got %d", idx.SelectedIndex())
	}
	if _, ok := idx.Selected(); ok {
		t.Fatal("Selected must report false on an empty filtered view")
	}
}

func TestMoveOnEmptyViewIsNoop(t *testing.T) {
	idx := New()
	idx.Next()
	idx.Prev()
	if idx.SelectedIndex() != -1 {
		t.Fatalf("move on empty view changed selection: %d", idx.SelectedIndex())
	}
}

func TestMoveWrapsAndRoundTrips(t *testing.T) {
	idx := New(Strings([]string{"a", "b", "c"})...)

	idx.Next()
	idx.Prev()
	if idx.SelectedIndex() != 0 {
		t.Fatalf("next then prev should restore selection, got %d", idx.SelectedIndex())
	}

	idx.Prev()
	if idx.SelectedIndex() != 2 {
		t.Fatalf("prev from 0 should wrap to last, got %d", idx.SelectedIndex())
	}
	idx.Next()
	if idx.SelectedIndex() != 0 {
		t.Fatalf("next from last should wrap to 0, got %d", idx.SelectedIndex())
	}
}

func TestFilterChangeResetsSelection(t *testing.T) {
	idx := New(Strings([]string{"alpha", "beta", "gamma"})...)
	idx.Next()
	idx.Next()

	idx.SetFilter("a")
	if idx.SelectedIndex() != 0 {
		t.Fatalf("filter change must reset selection to 0, got %d", idx.SelectedIndex())
	}

	it, ok := idx.Selected()
	if !ok || it.FilterValue() != "alpha" {
		t.Fatalf("selected after filter: got %v", it)
	}
}
