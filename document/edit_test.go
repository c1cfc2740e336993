package document

import "testing"

func TestInsert_CharAndNewline(t *testing.T) {
	d := New("helo", Options{})

	d.Insert(Pos{Row: 0, Col: 2}, 'l')
	if got, want := d.Text(), "hello"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if !d.IsDirty() {
		t.Fatalf("expected dirty after insert")
	}

	d.Insert(Pos{Row: 0, Col: 5}, '\n')
	if got, want := d.Text(), "hello\n"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := d.LineCount(), 2; got != want {
		t.Fatalf("line count=%d, want %d", got, want)
	}
}

func TestInsert_NewlineSplitsLine(t *testing.T) {
	d := New("hello world", Options{})
	d.Insert(Pos{Row: 0, Col: 5}, '\n')
	if got, want := d.Text(), "hello\n world"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestInsert_RowAtLineCountAppends(t *testing.T) {
	d := New("a", Options{})
	d.Insert(Pos{Row: 1, Col: 0}, 'b')
	if got, want := d.Text(), "a\nb"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestInsert_ClampsNeverFails(t *testing.T) {
	d := New("ab", Options{})

	// Row past the sentinel: silent no-op.
	d.Insert(Pos{Row: 5, Col: 0}, 'x')
	if got, want := d.Text(), "ab"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if d.IsDirty() {
		t.Fatalf("no-op insert must not dirty the document")
	}

	// Out-of-range column clamps to line end.
	d.Insert(Pos{Row: 0, Col: 99}, 'c')
	if got, want := d.Text(), "abc"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}

	// Negative column clamps to line start.
	d.Insert(Pos{Row: 0, Col: -4}, 'z')
	if got, want := d.Text(), "zabc"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestDelete_CharMergeAndEndOfDocument(t *testing.T) {
	d := New("abc\ndef", Options{})

	d.Delete(Pos{Row: 0, Col: 1})
	if got, want := d.Text(), "ac\ndef"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}

	// End of line with a following line: merge.
	d.Delete(Pos{Row: 0, Col: 2})
	if got, want := d.Text(), "acdef"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}

	// True end of document: no-op.
	before := d.Version()
	d.Delete(Pos{Row: 0, Col: 5})
	if got, want := d.Text(), "acdef"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got := d.Version(); got != before {
		t.Fatalf("version=%d, want %d", got, before)
	}
}

func TestDelete_MergeDropsCRWithTerminator(t *testing.T) {
	d := New("ab\r\ncd", Options{})
	d.Delete(Pos{Row: 0, Col: 2})
	if got, want := d.Text(), "abcd"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestDelete_OutOfRangeRowIsNoOp(t *testing.T) {
	d := New("ab", Options{})
	d.Delete(Pos{Row: 3, Col: 0})
	if got, want := d.Text(), "ab"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if d.IsDirty() {
		t.Fatalf("no-op delete must not dirty the document")
	}
}

func TestDeleteLine(t *testing.T) {
	d := New("a\nb\nc", Options{})
	d.DeleteLine(1)
	if got, want := d.Text(), "a\nc"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}

	d.DeleteLine(0)
	d.DeleteLine(0)
	// Deleting the only line leaves one empty line.
	if got, want := d.LineCount(), 1; got != want {
		t.Fatalf("line count=%d, want %d", got, want)
	}
	if got, want := d.Text(), ""; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestInsertString_WithNewlines(t *testing.T) {
	d := New("ab", Options{})
	d.InsertString(Pos{Row: 0, Col: 1}, "x\ny")
	if got, want := d.Text(), "ax\nyb"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestReplaceAll_CountsOccurrences(t *testing.T) {
	d := New("aba aba\nab", Options{})
	if got, want := d.ReplaceAll("ab", "X"), 3; got != want {
		t.Fatalf("count=%d, want %d", got, want)
	}
	if got, want := d.Text(), "Xa Xa\nX"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestReplaceAll_NoMatchLeavesDocumentClean(t *testing.T) {
	d := New("hello", Options{})
	if got, want := d.ReplaceAll("zz", "y"), 0; got != want {
		t.Fatalf("count=%d, want %d", got, want)
	}
	if d.IsDirty() {
		t.Fatalf("no-match replace must not dirty the document")
	}
	if got, want := d.ReplaceAll("", "y"), 0; got != want {
		t.Fatalf("empty-target count=%d, want %d", got, want)
	}
}

func TestSetHeader(t *testing.T) {
	cases := []struct {
		line  string
		level int
		want  string
	}{
		{line: "## Title", level: 1, want: "# Title"},
		{line: "Title", level: 3, want: "### Title"},
		{line: "####   Deep", level: 2, want: "## Deep"},
		{line: "# Title", level: 0, want: "Title"},
		{line: "Title", level: 99, want: "###### Title"},
	}
	for _, tc := range cases {
		d := New(tc.line, Options{})
		d.SetHeader(0, tc.level)
		if got := d.LineContent(0); got != tc.want {
			t.Fatalf("SetHeader(%q, %d)=%q, want %q", tc.line, tc.level, got, tc.want)
		}
	}
}

func TestSetHeader_OutOfRangeRowIsNoOp(t *testing.T) {
	d := New("abc", Options{})
	d.SetHeader(4, 1)
	if got, want := d.Text(), "abc"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestIndent(t *testing.T) {
	d := New("hello", Options{})
	d.Indent(0, 2)
	if got, want := d.LineContent(0), "        hello"; got != want {
		t.Fatalf("line=%q, want %q", got, want)
	}

	d.Indent(0, 0)
	d.Indent(5, 1)
	if got, want := d.LineContent(0), "        hello"; got != want {
		t.Fatalf("line=%q, want %q", got, want)
	}
}

// The end-to-end command scenario: header, replace, indent.
func TestEditScenario_HeaderReplaceIndent(t *testing.T) {
	d := New("## Title\nhello world\n", Options{})

	d.SetHeader(0, 1)
	if got, want := d.LineContent(0), "# Title"; got != want {
		t.Fatalf("line 0=%q, want %q", got, want)
	}

	if got, want := d.ReplaceAll("world", "earth"), 1; got != want {
		t.Fatalf("replace count=%d, want %d", got, want)
	}
	if got, want := d.LineContent(1), "hello earth"; got != want {
		t.Fatalf("line 1=%q, want %q", got, want)
	}

	d.Indent(1, 2)
	if got, want := d.LineContent(1), "        hello earth"; got != want {
		t.Fatalf("line 1=%q, want %q", got, want)
	}
}
