package document

import "testing"

func TestWrapSelection_BoldMidWord(t *testing.T) {
	d := New("make this bold now", Options{})

	got := d.WrapSelection(Pos{Row: 0, Col: 11}, "**")
	if want, text := (Pos{Row: 0, Col: 18}), "make this **bold** now"; d.Text() != text || got != want {
		t.Fatalf("text=%q cursor=%v, want %q cursor=%v", d.Text(), got, text, want)
	}
}

func TestWrapSelection_ItalicAtLineBoundaries(t *testing.T) {
	d := New("word", Options{})
	got := d.WrapSelection(Pos{Row: 0, Col: 2}, "*")
	if want := (Pos{Row: 0, Col: 6}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	if got, want := d.Text(), "*word*"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestWrapSelection_LastWordUsesLineEnd(t *testing.T) {
	d := New("one two", Options{})
	d.WrapSelection(Pos{Row: 0, Col: 5}, "**")
	if got, want := d.Text(), "one **two**"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestWrapSelection_NeverSpansRows(t *testing.T) {
	d := New("one\ntwo", Options{})
	d.WrapSelection(Pos{Row: 1, Col: 1}, "*")
	if got, want := d.Text(), "one\n*two*"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestWrapSelection_OutOfRangeRowReturnsInput(t *testing.T) {
	d := New("abc", Options{})
	in := Pos{Row: 7, Col: 2}
	if got := d.WrapSelection(in, "*"); got != in {
		t.Fatalf("cursor=%v, want %v", got, in)
	}
	if got, want := d.Text(), "abc"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}
