package largeint

import "testing"

func TestFromDigitsRoundTrip(t *testing.T) {
	v := FromDigits([]byte("123456789012345678"))
	if v.Hi() != 0 {
		t.Fatalf("expected value to fit in low limb, got hi=%d", v.Hi())
	}
	if v.Lo() != 123456789012345678 {
		t.Fatalf("got %d, want 123456789012345678", v.Lo())
	}
}

func TestMulAddU64(t *testing.T) {
	var v Int
	v.MulAddU64(10, 3)
	v.MulAddU64(10, 7)
	if v.Lo() != 37 {
		t.Fatalf("got %d, want 37", v.Lo())
	}
}

func TestDivU64(t *testing.T) {
	v := FromUint64(1000)
	rem := v.DivU64(7)
	if v.Lo() != 142 || rem != 6 {
		t.Fatalf("got q=%d r=%d, want q=142 r=6", v.Lo(), rem)
	}
}

func TestModLargeOverflow(t *testing.T) {
	// 99999999999999999999999999 mod 103, value overflows a single uint64.
	v := FromDigits([]byte("99999999999999999999999999"))
	got := v.Mod(103)
	// Computed independently: 10^26-1 repeated nines mod 103.
	want := bruteForceMod("99999999999999999999999999", 103)
	if got != want {
		t.Fatalf("got %d, want %d", got, want)
	}
}

func bruteForceMod(digits string, m uint64) uint64 {
	var acc uint64
	for _, c := range digits {
		acc = (acc*10 + uint64(c-'0')) % m
	}
	return acc
}
