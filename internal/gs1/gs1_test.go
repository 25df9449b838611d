package gs1

import "testing"

func TestVerifyReducesWithFNC1(t *testing.T) {
	out, err := Verify([]byte("[01]09501101530003"), Strict)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if string(out) != "0109501101530003" {
		t.Fatalf("got %q, want %q", out, "0109501101530003")
	}
}

func TestVerifyMultipleAIsSeparatedByFNC1(t *testing.T) {
	out, err := Verify([]byte("[01]12345678901231[90]ABCDEFGHIJ"), Strict)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	want := "0112345678901231" + string([]byte{FNC1}) + "90ABCDEFGHIJ"
	if string(out) != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestVerifyRejectsWrongFixedLength(t *testing.T) {
	if _, err := Verify([]byte("[01]123"), Strict); err == nil {
		t.Fatalf("expected error for AI 01 with wrong length")
	}
}

func TestVerifyNoCheckSkipsLengthValidation(t *testing.T) {
	if _, err := Verify([]byte("[01]123"), NoCheck); err != nil {
		t.Fatalf("NoCheck mode should not validate fixed length: %v", err)
	}
}

func TestVerifyRejectsNonDigitAI(t *testing.T) {
	if _, err := Verify([]byte("[0A]12345"), Strict); err == nil {
		t.Fatalf("expected error for non-digit AI")
	}
}

func TestVerifyRejectsMissingBracket(t *testing.T) {
	if _, err := Verify([]byte("0109501101530003"), Strict); err == nil {
		t.Fatalf("expected error for missing opening bracket")
	}
}

func TestHRTGS1ParensModeKeepsSourceVerbatim(t *testing.T) {
	got := HRT([]byte("[01]09501101530003"), true)
	if got != "[01]09501101530003" {
		t.Fatalf("got %q", got)
	}
}

func TestHRTDefaultConvertsToParens(t *testing.T) {
	got := HRT([]byte("[01]09501101530003"), false)
	if got != "(01)09501101530003" {
		t.Fatalf("got %q, want %q", got, "(01)09501101530003")
	}
}
