// Package geometry implements the geometry finalizer: large-bar height
// distribution, quiet-zone lookup, whitespace offset computation, and the
// UPC/EAN add-on HRT split, grounded on the "4.5 Geometry finalizer"
// computations and library.c's set_height/set_whitespace equivalents
// referenced by spec.md.
package geometry

import "strings"

// QuietZone is the per-symbology quiet-zone width, expressed in multiples
// of X-dimension ("10X" in spec.md becomes Left: 10, Right: 10).
type QuietZone struct {
	Left, Right float64
	Top, Bottom float64
	AlwaysOn    bool // EAN/UPC family always gets quiet zones regardless of the caller's option
}

// quietZones is the fixed table keyed by symbology id, per spec.md's
// "Quiet zones" bullet (Code-128 = 10X horiz, UPC-A = 9X left/right unless
// addon present, ITF-14 = 10X, DPD = 12.5X, QR = 4X all sides).
var quietZones = map[int]QuietZone{
	SymCode128:    {Left: 10, Right: 10},
	SymGS1128:     {Left: 10, Right: 10},
	SymUPCA:       {Left: 9, Right: 9, AlwaysOn: true},
	SymEAN13:      {Left: 11, Right: 7, AlwaysOn: true},
	SymITF14:      {Left: 10, Right: 10, Top: 10, Bottom: 10, AlwaysOn: true},
	SymDPD:        {Left: 12.5, Right: 12.5},
	SymQR:         {Left: 4, Right: 4, Top: 4, Bottom: 4},
	SymDataBarExp: {Left: 10, Right: 10},
}

// Symbology ids used by the quiet-zone table, numbered locally. Only
// SymCode128 and SymGS1128 have the same value as dispatch's ids; the others
// (including SymDPD and SymDataBarExp) do not.
const (
	SymCode128 = iota + 1
	SymGS1128
	SymUPCA
	SymEAN13
	SymITF14
	SymDPD
	SymQR
	SymDataBarExp
)

// QuietZoneFor returns the quiet zone for symbology id, and whether a
// non-zero entry exists in the table at all.
func QuietZoneFor(symbology int) (QuietZone, bool) {
	qz, ok := quietZones[symbology]
	return qz, ok
}

// LargeBarHeight distributes symbol.height across rows whose declared
// row_height is zero, per spec.md: "share (height - sum fixed)/zero_count
// with a 0.5-unit floor per row".
func LargeBarHeight(totalHeight float64, rowHeights []float64) []float64 {
	var fixedSum float64
	zeroCount := 0
	for _, h := range rowHeights {
		if h == 0 {
			zeroCount++
		} else {
			fixedSum += h
		}
	}
	if zeroCount == 0 {
		return rowHeights
	}
	share := (totalHeight - fixedSum) / float64(zeroCount)
	if share < 0.5 {
		share = 0.5
	}
	out := make([]float64, len(rowHeights))
	copy(out, rowHeights)
	for i, h := range out {
		if h == 0 {
			out[i] = share
		}
	}
	return out
}

// Offsets holds the four whitespace offsets applied before rendering.
type Offsets struct {
	X, Y, XRight, YBottom float64
}

// OutputOption bits mirror BARCODE_QUIET_ZONES / BARCODE_BIND /
// BARCODE_BIND_TOP / BARCODE_BOX from the Appearance field group.
type OutputOption int

const (
	OptQuietZones OutputOption = 1 << iota
	OptBind
	OptBindTop
	OptBox
)

// WhitespaceOffsets computes xoffset/yoffset/xoffset-right/yoffset-bottom
// per spec.md's "Whitespace offsets" bullet:
// xoffset = whitespace_width + quiet_left + (box ? border_width : 0); the
// other three sides follow the same shape, with BIND affecting top/bottom
// only and BIND_TOP only top.
func WhitespaceOffsets(symbology int, whitespaceWidth, whitespaceHeight, borderWidth float64, opts OutputOption) Offsets {
	qz, hasQZ := QuietZoneFor(symbology)
	applyQZ := hasQZ && (qz.AlwaysOn || opts&OptQuietZones != 0)

	var left, right, top, bottom float64
	if applyQZ {
		left, right, top, bottom = qz.Left, qz.Right, qz.Top, qz.Bottom
	}

	border := func(active bool) float64 {
		if opts&OptBox != 0 && active {
			return borderWidth
		}
		return 0
	}

	bindTop := opts&OptBind != 0 || opts&OptBindTop != 0
	bindBottom := opts&OptBind != 0

	return Offsets{
		X:       whitespaceWidth + left + border(true),
		XRight:  whitespaceWidth + right + border(true),
		Y:       whitespaceHeight + top + border(bindTop),
		YBottom: whitespaceHeight + bottom + border(bindBottom),
	}
}

// AddOn splits human-readable text into the main GTIN portion and a UPC/EAN
// add-on ("+NN" or "+NNNNN"), per spec.md's "UPC/EAN add-on split" bullet.
type AddOn struct {
	Main, Add string
	GapModules float64
}

// DefaultAddOnGap returns the add-on gap in X-dimension multiples: 9X for
// UPC-A, 7X otherwise (configurable 7-12 by the caller, not modelled here
// since spec.md treats it as a caller-supplied option on top of this
// default).
func DefaultAddOnGap(symbology int) float64 {
	if symbology == SymUPCA {
		return 9
	}
	return 7
}

// SplitAddOn finds a "+NN"/"+NNNNN" suffix in hrt and splits it off,
// returning ok == false when no add-on marker is present.
func SplitAddOn(hrt string, symbology int) (AddOn, bool) {
	idx := strings.IndexByte(hrt, '+')
	if idx < 0 {
		return AddOn{}, false
	}
	add := hrt[idx+1:]
	if len(add) != 2 && len(add) != 5 {
		return AddOn{}, false
	}
	for _, c := range add {
		if c < '0' || c > '9' {
			return AddOn{}, false
		}
	}
	return AddOn{Main: hrt[:idx], Add: add, GapModules: DefaultAddOnGap(symbology)}, true
}

// AddOnTextYPosn computes addon_text_yposn = row_height - text_ascent gap,
// per spec.md's closing formula for the add-on HRT vertical position.
func AddOnTextYPosn(rowHeight, textAscentGap float64) float64 {
	return rowHeight - textAscentGap
}
