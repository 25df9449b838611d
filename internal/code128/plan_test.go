package code128

import "testing"

func TestDefinePlanAllDigitsPrefersSetC(t *testing.T) {
	set := DefinePlan([]byte("12345678"), false, nil, nil)
	if set[0] != 'C' {
		t.Fatalf("got %c, want C for an even run of digits", set[0])
	}
}

func TestDefinePlanABOnlyNeverUsesC(t *testing.T) {
	set := DefinePlan([]byte("12345678"), true, nil, nil)
	for i, c := range set {
		if c == 'C' {
			t.Fatalf("position %d: ABOnly plan used set C", i)
		}
	}
}

func TestDefinePlanOddDigitsFallsBackPartially(t *testing.T) {
	set := DefinePlan([]byte("123"), false, nil, nil)
	// Odd-length digit runs can't be fully packed into set C pairs; expect
	// at least one A/B assignment among the three positions.
	sawNonC := false
	for _, c := range set {
		if c == 'A' || c == 'B' || c == 'a' || c == 'b' {
			sawNonC = true
		}
	}
	if !sawNonC {
		t.Fatalf("expected at least one non-C assignment for an odd-length digit run")
	}
}

func TestCanEncodeAorB(t *testing.T) {
	if !canEncodeAorB('A', 2, false) {
		t.Fatalf("'A' should be encodable in set B")
	}
	if canEncodeAorB(0x01, 2, false) {
		t.Fatalf("control character 0x01 should not be encodable in set B")
	}
	if !canEncodeAorB(0x01, 1, false) {
		t.Fatalf("control character 0x01 should be encodable in set A")
	}
}

func TestCanEncodeC(t *testing.T) {
	if !canEncodeC([]byte("12"), 0, false) {
		t.Fatalf("a two-digit run should be encodable in set C")
	}
	if canEncodeC([]byte("1A"), 0, false) {
		t.Fatalf("a digit followed by a letter should not be encodable in set C")
	}
}
