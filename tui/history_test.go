package tui

import "testing"

func TestHistoryPushAndPrev(t *testing.T) {
	h := NewHistory(5)
	h.Push("look")
	h.Push("f")
	h.Push("climb")

	prev, ok := h.Prev()
	if !ok || prev != "climb" {
		t.Errorf("expected 'climb', got %q (ok=%v)", prev, ok)
	}
	prev, ok = h.Prev()
	if !ok || prev != "f" {
		t.Errorf("expected 'f', got %q (ok=%v)", prev, ok)
	}
	prev, ok = h.Prev()
	if !ok || prev != "look" {
		t.Errorf("expected 'look', got %q (ok=%v)", prev, ok)
	}

	// At oldest, stays there.
	prev, ok = h.Prev()
	if !ok || prev != "look" {
		t.Errorf("expected 'look' at boundary, got %q (ok=%v)", prev, ok)
	}
}

func TestHistoryNext(t *testing.T) {
	h := NewHistory(5)
	h.Push("look")
	h.Push("f")

	h.Prev() // "f"
	h.Prev() // "look"

	next, ok := h.Next()
	if !ok || next != "f" {
		t.Errorf("expected 'f', got %q (ok=%v)", next, ok)
	}
	_, ok = h.Next()
	if ok {
		t.Error("expected false when past newest entry")
	}
}

func TestHistoryEmpty(t *testing.T) {
	h := NewHistory(5)
	if _, ok := h.Prev(); ok {
		t.Error("expected false on empty history")
	}
	if _, ok := h.Next(); ok {
		t.Error("expected false on empty history")
	}
}

func TestHistoryMaxSize(t *testing.T) {
	h := NewHistory(2)
	h.Push("a")
	h.Push("b")
	h.Push("c") // "a" evicted

	prev, _ := h.Prev()
	if prev != "c" {
		t.Errorf("expected 'c', got %q", prev)
	}
	prev, _ = h.Prev()
	if prev != "b" {
		t.Errorf("expected 'b', got %q", prev)
	}
	// "a" is gone.
	prev, _ = h.Prev()
	if prev != "b" {
		t.Errorf("expected 'b' at boundary, got %q", prev)
	}
}

func TestHistoryNoDuplicates(t *testing.T) {
	h := NewHistory(5)
	h.Push("look")
	h.Push("look") // skipped
	h.Push("look") // skipped

	if len(h.entries) != 1 {
		t.Errorf("expected 1 entry, got %d", len(h.entries))
	}
}

func TestHistoryResetCursor(t *testing.T) {
	h := NewHistory(5)
	h.Push("look")
	h.Push("f")

	h.Prev() // "f"
	h.ResetCursor()

	prev, ok := h.Prev()
	if !ok || prev != "f" {
		t.Errorf("expected 'f' after reset, got %q", prev)
	}
}
