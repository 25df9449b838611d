package code128

// emitSetA appends the Code Set A codeword for source, mirroring
// c128_set_a: control characters NUL-US map onto 64-95 and the other bytes
// below 128 are offset by -32; bytes 128-159 map onto 64-95 and bytes from
// 160 up are offset by -160 (the FNC4 codewords for those are added by the
// caller).
func emitSetA(source byte, values []int) []int {
	var v int
	switch {
	case source >= 128 && source < 160:
		v = int(source-128) + 64
	case source >= 128:
		v = int(source-128) - 32
	case source < 32:
		v = int(source) + 64
	default:
		v = int(source) - 32
	}
	return append(values, v)
}

// emitSetB appends the Code Set B codeword for source, mirroring
// c128_set_b: printable ASCII and the extended range above it.
func emitSetB(source byte, values []int) []int {
	var v int
	switch {
	case source >= 128+32:
		v = int(source) - 32 - 128
	case source >= 32:
		v = int(source) - 32
	default:
		v = 0 // unreachable, matches "Should never happen" in the original
	}
	return append(values, v)
}

// emitSetC appends the Code Set C codeword for a two-digit run, mirroring
// c128_set_c: codeword = 10*(a-'0') + (b-'0').
func emitSetC(a, b byte, values []int) []int {
	return append(values, 10*int(a-'0')+int(b-'0'))
}

// Expand computes the mod-103 check codeword and appends it plus the Stop
// character, returning the full codeword sequence and the module-width
// byte stream ready for geometry finalization, mirroring c128_expand.
func Expand(values []int) (codewords []int, moduleWidths []int) {
	total := values[0]
	for i := 1; i < len(values); i++ {
		total += values[i] * i
	}
	check := total % 103

	codewords = make([]int, 0, len(values)+2)
	codewords = append(codewords, values...)
	codewords = append(codewords, check, stop)

	mw := make([]int, 0, len(codewords)*6+1)
	for _, cw := range codewords[:len(codewords)-1] {
		mw = append(mw, widths[cw][:]...)
	}
	mw = append(mw, stopWidths[:]...)
	return codewords, mw
}

// GlyphCount estimates the final symbol-character count (codewords, not
// source bytes) for set/fset without materializing the codeword list,
// mirroring c128_glyph_count, used to enforce the 99-character symbol
// length limit before emission.
func GlyphCount(source []byte, set []byte, fset []byte) int {
	count := 0
	var current byte = ' '
	fState := false

	switch set[0] {
	case 'A', 'b':
		current = 'A'
	case 'B', 'a':
		current = 'B'
	case 'C':
		current = 'C'
	}

	for i := 0; i < len(source); i++ {
		if set[i] != current {
			switch set[i] {
			case 'A', 'b':
				if current != 'A' {
					current = 'A'
					count++
				}
			case 'B', 'a':
				if current != 'B' {
					current = 'B'
					count++
				}
			case 'C':
				current = 'C'
				count++
			}
		}
		if fset != nil {
			if (fset[i] == 'F' && !fState) || (fset[i] == ' ' && fState) {
				fState = !fState
				count += 2
			} else if (fset[i] == 'f' && !fState) || (fset[i] == 'n' && fState) {
				count++
			}
		}
		if set[i] == 'a' || set[i] == 'b' {
			count++
		}
		count++
		if set[i] == 'C' && source[i] != 0x1D {
			i++
		}
	}
	return count
}
