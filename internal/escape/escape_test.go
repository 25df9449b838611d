package escape

import "testing"

func TestLenMatchesExpand(t *testing.T) {
	in := []byte(`A\tB\nC\x41\d065\o101é\\end`)
	n, err := Len(in)
	if err != nil {
		t.Fatalf("Len: %v", err)
	}
	out, err := Expand(in)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if len(out) != n {
		t.Fatalf("Len()=%d but Expand() produced %d bytes", n, len(out))
	}
}

func TestSimpleEscapes(t *testing.T) {
	out, err := Expand([]byte(`\a\b\t\n\v\f\r\e\G\R\\`))
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	want := []byte{0x07, 0x08, 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x1B, 0x1D, 0x1E, '\\'}
	if string(out) != string(want) {
		t.Fatalf("got %v, want %v", out, want)
	}
}

func TestHexAndDecimalAndOctal(t *testing.T) {
	out, err := Expand([]byte(`\x41\d066\o103`))
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if string(out) != "ABC" {
		t.Fatalf("got %q, want ABC", out)
	}
}

func TestUnicodeEscapes(t *testing.T) {
	out, err := Expand([]byte(`é\U0001f600`))
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if len(out) != 2+4 {
		t.Fatalf("got %d bytes, want 6 (2-byte UTF-8 + 4-byte UTF-8)", len(out))
	}
}

func TestManualEscapePassthrough(t *testing.T) {
	out, err := Expand([]byte(`\^A\^1\^^`))
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if string(out) != `\^A\^1\^^` {
		t.Fatalf("got %q, manual code-set escapes should pass through untouched", out)
	}
}

func TestParenLiterals(t *testing.T) {
	out, err := Expand([]byte(`\(01\)12345678901231`))
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if string(out) != "(01)12345678901231" {
		t.Fatalf("got %q", out)
	}
}

func TestTrailingBackslashError(t *testing.T) {
	if _, err := Len([]byte(`abc\`)); err == nil {
		t.Fatalf("expected error for trailing backslash")
	}
}

func TestUnrecognizedSequenceError(t *testing.T) {
	if _, err := Len([]byte(`\q`)); err == nil {
		t.Fatalf("expected error for unrecognized escape")
	}
}

func TestTruncatedFixedWidthError(t *testing.T) {
	if _, err := Len([]byte(`\x4`)); err == nil {
		t.Fatalf("expected error for truncated \\x sequence")
	}
}
