package console

import "testing"

func TestHistory_Clamp(t *testing.T) {
	var h history
	if got := h.move(-1); got != "" || h.cursor != -1 {
		t.Fatalf("empty history: %q cursor=%d", got, h.cursor)
	}
	if got := h.move(5); got != "" || h.cursor != 0 {
		t.Fatalf("empty history down: %q cursor=%d", got, h.cursor)
	}

	h = newHistory()
	h.add("a")
	h.add("b")
	h.add("c")
	if h.cursor != 3 {
		t.Fatalf("cursor after add = %d", h.cursor)
	}
	// up k then down k returns to empty
	for k := 1; k <= len(h.entries); k++ {
		for i := 0; i < k; i++ {
			h.move(-1)
		}
		var got string
		for i := 0; i < k; i++ {
			got = h.move(1)
		}
		if got != "" || h.cursor != 3 {
			t.Fatalf("k=%d: %q cursor=%d", k, got, h.cursor)
		}
	}
	for i := 0; i < 10; i++ {
		h.move(-1)
	}
	if got := h.move(0); got != "a" {
		t.Fatalf("up past oldest = %q", got)
	}
}
