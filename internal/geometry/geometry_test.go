package geometry

import "testing"

func TestLargeBarHeightDistributesAcrossZeroRows(t *testing.T) {
	heights := LargeBarHeight(20, []float64{5, 0, 0})
	if heights[0] != 5 {
		t.Fatalf("fixed row height should be untouched, got %v", heights[0])
	}
	want := (20 - 5) / 2.0
	if heights[1] != want || heights[2] != want {
		t.Fatalf("got %v, want both zero rows at %v", heights, want)
	}
}

func TestLargeBarHeightFloor(t *testing.T) {
	heights := LargeBarHeight(1, []float64{0, 0, 0, 0})
	for _, h := range heights {
		if h < 0.5 {
			t.Fatalf("row height %v below the 0.5-unit floor", h)
		}
	}
}

func TestWhitespaceOffsetsAppliesQuietZoneForAlwaysOnSymbology(t *testing.T) {
	off := WhitespaceOffsets(SymUPCA, 0, 0, 0, 0)
	if off.X != 9 {
		t.Fatalf("got xoffset %v, want 9 (UPC-A quiet zone is always on)", off.X)
	}
}

func TestWhitespaceOffsetsSkipsQuietZoneWithoutOption(t *testing.T) {
	off := WhitespaceOffsets(SymCode128, 0, 0, 0, 0)
	if off.X != 0 {
		t.Fatalf("got xoffset %v, want 0 without BARCODE_QUIET_ZONES set", off.X)
	}
}

func TestWhitespaceOffsetsWithQuietZoneOption(t *testing.T) {
	off := WhitespaceOffsets(SymCode128, 0, 0, 0, OptQuietZones)
	if off.X != 10 {
		t.Fatalf("got xoffset %v, want 10", off.X)
	}
}

func TestSplitAddOnTwoDigit(t *testing.T) {
	a, ok := SplitAddOn("012345678905+12", SymUPCA)
	if !ok {
		t.Fatalf("expected add-on to be recognized")
	}
	if a.Main != "012345678905" || a.Add != "12" || a.GapModules != 9 {
		t.Fatalf("got %+v", a)
	}
}

func TestSplitAddOnNoneWithoutMarker(t *testing.T) {
	if _, ok := SplitAddOn("012345678905", SymUPCA); ok {
		t.Fatalf("expected no add-on without a '+' marker")
	}
}
