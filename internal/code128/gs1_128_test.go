package code128

import (
	"testing"

	"github.com/zint-go/zint/internal/gs1"
)

func TestEncodeGS1128Basic(t *testing.T) {
	r, err := EncodeGS1128([]byte("[01]09501101530003"), gs1.Strict, nil)
	if err != nil {
		t.Fatalf("EncodeGS1128: %v", err)
	}
	if r.Codewords[len(r.Codewords)-1] != stop {
		t.Fatalf("expected trailing Stop codeword")
	}
	if r.Codewords[1] != fnc1 {
		t.Fatalf("expected leading FNC1 as the second codeword, got %d", r.Codewords[1])
	}
}

func TestEncodeGS1128NonCompliantOverLength(t *testing.T) {
	long := "[01]12345678901231[90]123456789012345678901234567890123456789012"
	r, err := EncodeGS1128([]byte(long), gs1.Strict, nil)
	if err != nil {
		t.Fatalf("EncodeGS1128: %v", err)
	}
	if !r.NonCompliant {
		t.Fatalf("expected NonCompliant for reduced data exceeding 48 characters")
	}
}

func TestHRTConvertsBracketsByDefault(t *testing.T) {
	got := HRT([]byte("[01]09501101530003"), false)
	if got != "(01)09501101530003" {
		t.Fatalf("got %q", got)
	}
}
