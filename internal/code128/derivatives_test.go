package code128

import "testing"

func TestEncodeEAN14PadsAndChecks(t *testing.T) {
	r, err := EncodeEAN14([]byte("9501101530003"), false)
	if err != nil {
		t.Fatalf("EncodeEAN14: %v", err)
	}
	if r.ReducedLength != 16 { // "01" + 14 digits
		t.Fatalf("got reduced length %d, want 16", r.ReducedLength)
	}
}

func TestEncodeNVE18PadsAndChecks(t *testing.T) {
	r, err := EncodeNVE18([]byte("123456789012345"), false)
	if err != nil {
		t.Fatalf("EncodeNVE18: %v", err)
	}
	if r.ReducedLength != 20 { // "00" + 18 digits
		t.Fatalf("got reduced length %d, want 20", r.ReducedLength)
	}
}

func TestEncodeEAN14RejectsTooLong(t *testing.T) {
	if _, err := EncodeEAN14([]byte("12345678901234"), false); err == nil {
		t.Fatalf("expected error for input longer than 13 digits")
	}
}

func TestEncodeDPD27CharAddsRelabelTag(t *testing.T) {
	data := make([]byte, 27)
	for i := range data {
		data[i] = byte('0' + i%10)
	}
	r, err := EncodeDPD(data, false)
	if err != nil {
		t.Fatalf("EncodeDPD: %v", err)
	}
	if len(r.HRT) == 0 {
		t.Fatalf("expected non-empty HRT")
	}
}

func TestEncodeDPDWrongLength(t *testing.T) {
	if _, err := EncodeDPD(make([]byte, 20), false); err == nil {
		t.Fatalf("expected error for wrong DPD input length")
	}
}

func TestEncodeUPUS10ComputesCheckDigit(t *testing.T) {
	r, err := EncodeUPUS10([]byte("EE87654321US"))
	if err != nil {
		t.Fatalf("EncodeUPUS10: %v", err)
	}
	if len(r.HRT) == 0 {
		t.Fatalf("expected non-empty HRT")
	}
}

func TestEncodeUPUS10RejectsWrongLength(t *testing.T) {
	if _, err := EncodeUPUS10([]byte("TOOSHORT")); err == nil {
		t.Fatalf("expected error for wrong UPU S10 input length")
	}
}

func TestEncodeUPUS10ReservedServiceIndicatorWarns(t *testing.T) {
	r, err := EncodeUPUS10([]byte("JE87654321US"))
	if err != nil {
		t.Fatalf("EncodeUPUS10: %v", err)
	}
	if r.NonCompliant == "" {
		t.Fatalf("expected a non-compliance warning for reserved Service Indicator 'J'")
	}
}

func TestEncodeHIBC128AppendsCheckAndTerminator(t *testing.T) {
	r, err := EncodeHIBC128([]byte("A123BJC5D6E"))
	if err != nil {
		t.Fatalf("EncodeHIBC128: %v", err)
	}
	if r.Codewords[len(r.Codewords)-1] != stop {
		t.Fatalf("expected trailing Stop codeword")
	}
}

func TestEncodeHIBC128RejectsInvalidChars(t *testing.T) {
	if _, err := EncodeHIBC128([]byte("a123")); err == nil {
		t.Fatalf("expected error for lowercase letters outside the HIBC character set")
	}
}
