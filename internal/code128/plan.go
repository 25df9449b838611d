package code128

// maxLen is the Code-128 symbol-character cap (C128_SYMBOL_MAX in
// code128.c) that GlyphCount is checked against; EncodeGS1128 also uses it
// as its cap on reduced data length. Encode's raw input cap is maxInputLen.
const maxLen = 99

// ManualMode records, per source byte, a caller-forced code set from the
// extra-escape `\^A \^B \^C` manual mode (manual_set in code128.c): 0 means
// unset, 1/2/3 mean A/B/C.
type ManualMode []byte

// Fncs marks which source positions are manual FNC1 insertions (fncs in
// code128.c): those bytes are dummies ('\x1D') standing in for an FNC1
// codeword rather than literal data.
type Fncs []bool

// canEncodeAorB reports whether ch can be encoded directly (without a
// shift) in code set charset (1=A, 2=B), mirroring c128_can_aorb.
func canEncodeAorB(ch byte, charset int, checkFNC1 bool) bool {
	switch {
	case ch <= 31:
		return charset == 1 || (checkFNC1 && ch == 0x1D)
	case ch <= 95:
		return true
	case ch <= 127:
		return charset == 2
	case ch <= 159:
		return charset == 1
	case ch <= 223:
		return true
	default:
		return charset == 2
	}
}

// canEncodeC reports whether source[pos] can be encoded in code set C,
// mirroring c128_can_c: either a run of two digits, or (in GS1 contexts) an
// FNC1 dummy.
func canEncodeC(source []byte, pos int, checkFNC1 bool) bool {
	if pos+1 < len(source) && isDigit(source[pos]) && isDigit(source[pos+1]) {
		return true
	}
	return checkFNC1 && source[pos] == 0x1D
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// planState holds the memoization tables shared across the recursive cost
// computation, mirroring the costs/modes arrays in code128.c (there
// stack-allocated with alloca; here owned by a single planner call).
type planState struct {
	source   []byte
	abOnly   bool
	manual   ManualMode
	fncs     Fncs
	costs    [][4]int
	modes    [][4]int
}

// cost computes (and memoizes) the minimal cost of encoding from position
// onward starting in code set charset (0 = "none yet", 1=A, 2=B, 3=C),
// mirroring c128_cost's divide-and-conquer-with-memoization (Alex Geller's
// algorithm, ported 1:1 in control flow).
func (p *planState) cost(position, charset int) int {
	if p.costs[position][charset] != 0 {
		return p.costs[position][charset]
	}

	length := len(p.source)
	atEnd := position+1 >= length
	checkFNC1 := p.fncs == nil || p.fncs[position]
	canC := canEncodeC(p.source, position, checkFNC1)
	manualCFail := !canC && p.manual != nil && p.manual[position] == 3

	minCost := 999999
	minLatch := 0

	// Prefer code set C first: preserves previous encodation better than B/A
	// on ties (the tie-break the original comment calls out explicitly).
	if !p.abOnly && canC && (p.manual == nil || p.manual[position] == 0 || p.manual[position] == 3) {
		advance := 2
		if p.source[position] == 0x1D {
			advance = 1
		}
		c := 1
		latch := 0
		if charset != 3 {
			c++
			latch = 3
		}
		if position+advance < length {
			c += p.cost(position+advance, 3)
		}
		if c < minCost {
			minCost = c
			minLatch = latch
		}
	}

	for tryset := 2; tryset >= 1; tryset-- {
		if p.manual != nil && p.manual[position] != 0 && int(p.manual[position]) != tryset && !manualCFail {
			continue
		}
		if canEncodeAorB(p.source[position], tryset, checkFNC1) {
			c := 1
			latch := 0
			if charset != tryset {
				c++
				latch = tryset
			}
			if !atEnd {
				c += p.cost(position+1, tryset)
			}
			if c < minCost {
				minCost = c
				minLatch = latch
			}
			if charset != tryset && (charset == 1 || charset == 2) {
				c = 2
				latch = 3 + charset
				if !atEnd {
					c += p.cost(position+1, charset)
				}
				if c < minCost {
					minCost = c
					minLatch = latch
				}
			}
		} else if p.manual != nil && int(p.manual[position]) == tryset {
			c := 2
			latch := 3 + tryset
			if charset != tryset {
				c++
			}
			if !atEnd {
				c += p.cost(position+1, tryset)
			}
			if c < minCost {
				minCost = c
				minLatch = latch
			}
		}
	}

	p.costs[position][charset] = minCost
	p.modes[position][charset] = minLatch
	return minCost
}

// DefinePlan computes the per-character code-set assignment string, one
// byte per source byte ('A'/'B'/'C' for latches, 'a'/'b' for shifts, with a
// following extra 'C' inserted when a C-run consumes two source bytes),
// mirroring c128_define_mode.
func DefinePlan(source []byte, abOnly bool, manual ManualMode, fncs Fncs) []byte {
	length := len(source)
	p := &planState{
		source: source,
		abOnly: abOnly,
		manual: manual,
		fncs:   fncs,
		costs:  make([][4]int, length),
		modes:  make([][4]int, length),
	}
	p.cost(0, 0)

	set := make([]byte, length)
	charset := 0
	for i := 0; i < length; i++ {
		latch := p.modes[i][charset]
		switch {
		case latch >= 1 && latch <= 3:
			charset = latch
			set[i] = byte('@' + latch)
		case latch >= 4 && latch <= 5:
			charset = latch - 3
			if charset == 1 {
				set[i] = 'b'
			} else {
				set[i] = 'a'
			}
		default:
			set[i] = byte('@' + charset)
		}
		if charset == 3 && source[i] != 0x1D {
			i++
			set[i] = 'C'
		}
	}
	return set
}
