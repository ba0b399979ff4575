package display

import "testing"

var (
	out   = Style{Color: "black"}
	errSt = Style{Color: "red"}
	in    = Style{Color: "blue", Bold: true}
)

func TestAppend_MergesEqualStyles(t *testing.T) {
	b := New()
	b.Append("hello ", out)
	b.Append("world", out)
	b.Append("!", errSt)
	spans := b.Snapshot().Spans
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %d: %+v", len(spans), spans)
	}
	if spans[0].Text != "hello world" || spans[1].Text != "!" {
		t.Fatalf("unexpected spans: %+v", spans)
	}
	if b.Len() != 12 || b.Text() != "hello world!" {
		t.Fatalf("unexpected text %q len %d", b.Text(), b.Len())
	}
}

func TestRegion_EmptyRegionFollowsTail(t *testing.T) {
	b := New()
	b.Append("prompt> ", out)
	b.OpenRegion(in)
	b.Append("more output ", out)
	r, ok := b.Region()
	if !ok {
		t.Fatalf("expected open region")
	}
	if r.Start != b.Len() || r.End != b.Len() {
		t.Fatalf("empty region should sit at end, got %+v (len %d)", r, b.Len())
	}
}

func TestRegion_NonEmptyRegionStaysPut(t *testing.T) {
	b := New()
	b.Append("> ", out)
	b.OpenRegion(in)
	b.InsertInput(0, "abc")
	before, _ := b.Region()
	b.Append("\nasync output", out)
	after, _ := b.Region()
	if after.Start != before.Start || after.End != before.End {
		t.Fatalf("region moved: %+v -> %+v", before, after)
	}
	if after.Gen != before.Gen {
		t.Fatalf("generation changed without a region edit")
	}
	if got := b.InputText(); got != "abc" {
		t.Fatalf("input text %q", got)
	}
}

func TestInsertDeleteInput(t *testing.T) {
	b := New()
	b.Append("> ", out)
	b.OpenRegion(in)
	b.InsertInput(0, "bd")
	b.InsertInput(1, "c")
	b.InsertInput(0, "a")
	if got := b.InputText(); got != "abcd" {
		t.Fatalf("input text %q", got)
	}
	spans := b.Snapshot().Spans
	if len(spans) != 2 || spans[1].Text != "abcd" || spans[1].Style != in {
		t.Fatalf("input should be one styled run: %+v", spans)
	}
	if !b.DeleteInput(3, 1) {
		t.Fatalf("delete failed")
	}
	if b.DeleteInput(3, 1) {
		t.Fatalf("delete past region end should fail")
	}
	if got := b.InputText(); got != "abc" {
		t.Fatalf("input text after delete %q", got)
	}
	r, _ := b.Region()
	if r.Start != 2 || r.End != 5 {
		t.Fatalf("unexpected region %+v", r)
	}
}

func TestSelection(t *testing.T) {
	b := New()
	b.Append("0123456789", out)
	b.SetCaret(2, false)
	b.SetCaret(5, true)
	if s, e := b.Selection(); s != 2 || e != 5 {
		t.Fatalf("selection %d..%d", s, e)
	}
	if got := b.SelectedText(); got != "234" {
		t.Fatalf("selected %q", got)
	}
	b.SetCaret(0, true)
	if s, e := b.Selection(); s != 0 || e != 2 {
		t.Fatalf("reversed selection %d..%d", s, e)
	}
	b.ClearSelection()
	if b.HasSelection() {
		t.Fatalf("selection should be empty")
	}
	b.SelectAll()
	if b.SelectedText() != "0123456789" {
		t.Fatalf("select all: %q", b.SelectedText())
	}
}

func TestClear_KeepsLiveInput(t *testing.T) {
	b := New()
	b.Append("lots of output\n", out)
	b.OpenRegion(in)
	b.InsertInput(0, "typed")
	b.Clear()
	if b.Text() != "typed" {
		t.Fatalf("expected only live input after clear, got %q", b.Text())
	}
	r, ok := b.Region()
	if !ok || r.Start != 0 || r.End != 5 {
		t.Fatalf("unexpected region after clear: %+v open=%v", r, ok)
	}

	b2 := New()
	b2.Append("x", out)
	b2.Clear()
	if b2.Len() != 0 || len(b2.Snapshot().Spans) != 0 {
		t.Fatalf("expected empty buffer")
	}
}

func TestRecolor_IncludesInputRun(t *testing.T) {
	b := New()
	b.Append("out", out)
	b.Append("err", errSt)
	b.OpenRegion(in)
	b.InsertInput(0, "in")
	b.Recolor("green")
	for _, s := range b.Snapshot().Spans {
		if s.Style.Color != "green" {
			t.Fatalf("span not recolored: %+v", s)
		}
	}
	b.InsertInput(2, "!")
	if got := b.Snapshot().Spans; got[len(got)-1].Text != "in!" {
		t.Fatalf("new input should join the recolored run: %+v", got)
	}
}

func TestSlice_Unicode(t *testing.T) {
	b := New()
	b.Append("héllo ", out)
	b.Append("wörld", errSt)
	if got := b.Slice(1, 8); got != "éllo wö" {
		t.Fatalf("slice %q", got)
	}
	if got := b.Slice(-3, 100); got != "héllo wörld" {
		t.Fatalf("clamped slice %q", got)
	}
}
