package eci

import "testing"

func TestEncodeECIZeroASCII(t *testing.T) {
	out, err := Encode(0, []byte("HELLO123"))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if string(out) != "HELLO123" {
		t.Fatalf("got %q", out)
	}
}

func TestEncodeECIZeroRejectsNonASCII(t *testing.T) {
	if _, err := Encode(0, []byte("héllo")); err == nil {
		t.Fatalf("expected error for non-ASCII under ECI 0")
	}
}

func TestEncodeECI26IsIdentity(t *testing.T) {
	in := []byte("héllo 世界")
	out, err := Encode(26, in)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if string(out) != string(in) {
		t.Fatalf("ECI 26 should be identity UTF-8 passthrough")
	}
}

func TestEncodeISO8859_1(t *testing.T) {
	out, err := Encode(3, []byte("café"))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(out) != 4 {
		t.Fatalf("got %d bytes, want 4 (ISO-8859-1 is single-byte)", len(out))
	}
}

func TestBestFitPicksNarrowest(t *testing.T) {
	eciNum, ok := BestFit([]byte("plain ascii-ish text"))
	if !ok {
		t.Fatalf("expected a fit")
	}
	if eciNum != 3 {
		t.Fatalf("got ECI %d, want 3 (ISO-8859-1, the narrowest table entry)", eciNum)
	}
}

func TestBestFitFallsBackToUTF8(t *testing.T) {
	eciNum, ok := BestFit([]byte("日本語"))
	if !ok {
		t.Fatalf("expected a fit")
	}
	if eciNum != 26 {
		t.Fatalf("got ECI %d, want 26 (UTF-8 fallback) for CJK text no single-byte table covers", eciNum)
	}
}

func TestStripBOM(t *testing.T) {
	in := append([]byte{0xEF, 0xBB, 0xBF}, []byte("hello")...)
	out := StripBOM(in)
	if string(out) != "hello" {
		t.Fatalf("got %q, want %q", out, "hello")
	}
}

func TestStripBOMNoop(t *testing.T) {
	out := StripBOM([]byte("hello"))
	if string(out) != "hello" {
		t.Fatalf("got %q", out)
	}
}

func TestValidateUTF8(t *testing.T) {
	if !ValidateUTF8([]byte("hello")) {
		t.Fatalf("expected valid")
	}
	if ValidateUTF8([]byte{0xFF, 0xFE}) {
		t.Fatalf("expected invalid")
	}
}

func TestSupported(t *testing.T) {
	if !Supported(0) || !Supported(26) || !Supported(899) || !Supported(998) || !Supported(999) {
		t.Fatalf("passthrough ECIs should be supported")
	}
	if !Supported(3) {
		t.Fatalf("ISO-8859-1 should be supported")
	}
	if Supported(12) {
		t.Fatalf("ECI 12 is reserved/unused and should not be supported")
	}
}
