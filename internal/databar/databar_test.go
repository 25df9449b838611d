package databar

import (
	"io"
	"testing"

	"github.com/zint-go/zint/internal/trace"
)

func TestEncodeWithTraceEnabledDoesNotPanic(t *testing.T) {
	lg := trace.New(io.Discard, trace.Print)
	if _, err := Encode([]byte("[01]09501101530003[10]ABC123"), Options{Trace: lg}); err != nil {
		t.Fatalf("Encode: %v", err)
	}
}

func TestSelectMethod1ForLeadingGTIN(t *testing.T) {
	reduced := []byte("0190123456789012" + string(rune(fnc1Byte)) + "2001")
	if m := selectMethod(reduced); m != method1 {
		t.Fatalf("got %v, want method1", m)
	}
}

func TestSelectMethod2Fallback(t *testing.T) {
	reduced := []byte("2001" + string(rune(fnc1Byte)) + "10ABC123")
	if m := selectMethod(reduced); m != method2 {
		t.Fatalf("got %v, want method2", m)
	}
}

func TestEncodeNonStackedProducesOneRow(t *testing.T) {
	r, err := Encode([]byte("[01]09501101530003[10]ABC123"), Options{})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if r.Stacked {
		t.Fatalf("expected non-stacked result when ColsPerRow == 0")
	}
	if len(r.Rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(r.Rows))
	}
	if r.DataChars < 4 {
		t.Fatalf("expected at least 4 data characters, got %d", r.DataChars)
	}
}

func TestEncodeStackedSplitsIntoMultipleRows(t *testing.T) {
	r, err := Encode([]byte("[01]09501101530003[10]ABCDEFGHIJKLMNOPQRST"), Options{ColsPerRow: 2})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !r.Stacked {
		t.Fatalf("expected a stacked result")
	}
	if len(r.Rows) < 2 {
		t.Fatalf("expected multiple stacked rows for a long payload, got %d", len(r.Rows))
	}
}

func TestGetRSSwidthsSumsToN(t *testing.T) {
	widths := getRSSwidths(0, 12, 4, 7, false)
	sum := 0
	for _, w := range widths {
		sum += w
	}
	if sum != 12 {
		t.Fatalf("widths sum to %d, want 12", sum)
	}
}

func TestOddEvenWidthsEachSumToGroupModules(t *testing.T) {
	widths := oddEvenWidths(0)
	oddSum, evenSum := 0, 0
	for i, w := range widths {
		if i%2 == 0 {
			oddSum += w
		} else {
			evenSum += w
		}
	}
	if oddSum != modulesOddExp[0] {
		t.Fatalf("odd widths sum to %d, want %d", oddSum, modulesOddExp[0])
	}
	if evenSum != modulesEvenExp[0] {
		t.Fatalf("even widths sum to %d, want %d", evenSum, modulesEvenExp[0])
	}
}

func TestChecksumWeightExpIsPowersOfThreeMod211(t *testing.T) {
	w := 1
	for k := 0; k < len(checksumWeightExp); k++ {
		if checksumWeightExp[k] != w {
			t.Fatalf("checksumWeightExp[%d] = %d, want %d (3^%d mod 211)", k, checksumWeightExp[k], w, k)
		}
		w = (w * 3) % 211
	}
}

func TestFinderSequenceCoversEveryBucketWithValidPatternIndices(t *testing.T) {
	if len(finderSequence) != finderBuckets*finderWidth {
		t.Fatalf("got %d entries, want %d", len(finderSequence), finderBuckets*finderWidth)
	}
	for _, seq := range finderSequence {
		if seq < 1 || seq > 12 {
			t.Fatalf("finder pattern index %d out of range 1..12", seq)
		}
	}
}

func TestBuildElementsFinderLookupStaysInBounds(t *testing.T) {
	// A large payload pushes dataChars/codeblocks toward the top of the
	// supported range; buildElements must not panic indexing finderSequence
	// or finderPatternExp.
	r, err := Encode([]byte("[01]09501101530003[10]ABCDEFGHIJKLMNOPQRSTUVWXYZABCDEFGHIJ"), Options{})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if r.DataChars < 4 {
		t.Fatalf("expected at least 4 data characters, got %d", r.DataChars)
	}
}
