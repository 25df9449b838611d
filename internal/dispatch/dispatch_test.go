package dispatch

import "testing"

func TestResolveLegacyRemapsWithWarning(t *testing.T) {
	canonical, warn, reject, ok := ResolveLegacy(10)
	if !ok || reject || !warn || canonical != 1002 {
		t.Fatalf("got (%d, %v, %v, %v)", canonical, warn, reject, ok)
	}
}

func TestResolveLegacyRejectsRemovedSymbologies(t *testing.T) {
	if _, _, reject, ok := ResolveLegacy(19); !ok || !reject {
		t.Fatalf("expected legacy id 19 to be rejected")
	}
	if _, _, reject, ok := ResolveLegacy(27); !ok || !reject {
		t.Fatalf("expected legacy id 27 to be rejected")
	}
}

func TestResolveLegacyPassesThroughCanonicalIDs(t *testing.T) {
	if _, _, _, ok := ResolveLegacy(Code128); ok {
		t.Fatalf("expected a canonical id to report ok=false (no remap needed)")
	}
}

func TestValidIDAndBarcodeName(t *testing.T) {
	if !ValidID(Code128) {
		t.Fatalf("expected Code128 to be a valid id")
	}
	name, err := BarcodeName(GS1128)
	if err != nil || name != "GS1-128" {
		t.Fatalf("got (%q, %v)", name, err)
	}
	if _, err := BarcodeName(9999); err == nil {
		t.Fatalf("expected an error for an unknown id")
	}
}

func TestCapMasksRequireAllBits(t *testing.T) {
	if !Cap(DataBarExpandedStacked, CapGS1|CapStacked) {
		t.Fatalf("expected DataBarExpandedStacked to carry both CapGS1 and CapStacked")
	}
	if Cap(Code128, CapGS1) {
		t.Fatalf("Code128 should not report CapGS1")
	}
}

func TestSupportsECI(t *testing.T) {
	if SupportsECI(Code128) {
		t.Fatalf("Code128 is not flagged ECI-capable in this table")
	}
}
