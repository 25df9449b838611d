package databar

import "fmt"

// method selects one of the 14 GS1 DataBar Expanded encoding methods by
// inspecting the reduced-GS1 byte stream's leading AIs, the cascade ported
// from rssexp_binary_string in rss.c (top-to-bottom first match).
type method int

const (
	method1 method = iota + 1 // (01)... - "1XX" header
	method2                   // any other start - "00XX" header
	method3                   // (01)(3103) weight kg, <= 32767g
	method4                   // (01)(3202/3203) weight lb
	method5                   // (01)(392x) price, currency
	method6                   // (01)(393x) price, no currency
	method7                   // (01)(310x/320x)(11) production date
	method8                   // ...(13) packaging date
	method9                   // ...(15) best-before date
	method10                  // ...(17) expiration date
	method11                  // variant of 7 (date field width 2)
	method12                  // variant of 8
	method13                  // variant of 9
	method14                  // variant of 10
)

// selectMethod inspects reduced, a GS1-verified byte stream with FNC1
// (0x1D) AI separators, and returns the method to apply.
func selectMethod(reduced []byte) method {
	n := len(reduced)
	if n >= 16 && reduced[0] == '0' && reduced[1] == '1' {
		if n >= 20 && reduced[2] == '9' {
			switch {
			case reduced[17] == '3' && reduced[18] == '1' && reduced[19] == '0' && reduced[20] == '3':
				return method3
			case reduced[17] == '3' && reduced[18] == '2' && reduced[19] == '0' && (reduced[20] == '2' || reduced[20] == '3'):
				return method4
			case reduced[17] == '3' && reduced[18] == '9' && reduced[19] == '2':
				return method5
			case reduced[17] == '3' && reduced[18] == '9' && reduced[19] == '3':
				return method6
			case reduced[17] == '3' && (reduced[18] == '1' || reduced[18] == '2') && reduced[19] == '0':
				if n >= 30 {
					switch string(reduced[28:30]) {
					case "11":
						return method7
					case "13":
						return method8
					case "15":
						return method9
					case "17":
						return method10
					}
				}
				return method11
			}
		}
		return method1
	}
	return method2
}

// headerBits returns the fixed header bit pattern for m (excluding the
// variable-length symbol-character patch applied after sizing), per the
// "Header bits" column of the method-selection table.
func headerBits(m method) (value uint64, width int) {
	switch m {
	case method1:
		return 0x4, 3 // "1XX", patched at bits 2-3 after sizing
	case method2:
		return 0x0, 4 // "00XX", patched at bits 3-4
	case method3:
		return 0x4, 4 // "0100"
	case method4:
		return 0x5, 4 // "0101"
	case method5:
		return 0x30, 7 // "01100XX", patched at bits 6-7
	case method6:
		return 0x34, 7 // "01101XX", patched at bits 6-7
	case method7, method8, method9, method10, method11, method12, method13, method14:
		return uint64(0x38 + (int(m) - int(method7))), 7 // "0111" + 3-bit date-field selector
	default:
		return 0, 0
	}
}

// patchOffset returns the 0-based bit position (from the start of the
// stream) and width of the variable-length symbol-character-count patch for
// m, and whether m gets one at all (methods 1, 2, 5, 6 per spec.md's Open
// Question resolution). The positions are the header's XX bits, which
// headerBits counts from 1 (bits 2-3, 3-4 and 6-7).
func patchOffset(m method) (pos, width int, ok bool) {
	switch m {
	case method1:
		return 1, 2, true
	case method2:
		return 2, 2, true
	case method5, method6:
		return 5, 2, true
	default:
		return 0, 0, false
	}
}

// applyPatch writes (symbolChars & 1, symbolChars > 14) into the two bits
// reserved by patchOffset, per "Variable-length bit patch" in spec.md.
func applyPatch(bits []bool, m method, symbolChars int) {
	pos, width, ok := patchOffset(m)
	if !ok || width != 2 {
		return
	}
	d1 := symbolChars & 1
	d2 := 0
	if symbolChars > 14 {
		d2 = 1
	}
	if pos+1 >= len(bits) {
		return
	}
	bits[pos] = d1 != 0
	bits[pos+1] = d2 != 0
}

func (m method) String() string {
	return fmt.Sprintf("method%d", int(m))
}
