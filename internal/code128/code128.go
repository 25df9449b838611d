package code128

import (
	"fmt"

	"github.com/zint-go/zint/internal/trace"
)

// Options controls the few caller-visible knobs that change how Encode
// builds its plan, mirroring the symbol->input_mode/symbology checks at
// the top of code128() in code128.c.
type Options struct {
	// ABOnly forces the planner to never use code set C (BARCODE_CODE128AB).
	ABOnly bool
	// ExtraEscape enables detection of manual `\^A \^B \^C \^1 \^^` escapes
	// (EXTRA_ESCAPE_MODE, BARCODE_CODE128 only).
	ExtraEscape bool
	// ReaderInit prepends an FNC3 after the start character (READER_INIT).
	ReaderInit bool
	// Trace receives the planner/codeword debug dump when non-nil and
	// enabled, mirroring code128()'s ZINT_DEBUG_PRINT "Set:"/"FSet:"/
	// "Codewords:" output.
	Trace *trace.Logger
}

// Result is the codeword-level output of Encode: the final codeword
// stream, the row's module widths, and the de-escaped text suitable for
// human-readable-text rendering (manual FNC1 dummies already stripped).
type Result struct {
	Codewords    []int
	ModuleWidths []int
	Text         []byte
}

// Encode runs the full Code-128 pipeline: manual escape extraction (if
// ExtraEscape), minimal-cost code-set planning, extended-ASCII fset
// latch/shift assignment per Annex E note 3, glyph-count length check,
// codeword emission, and checksum/Stop appending. Mirrors code128() in
// code128.c end to end.
func Encode(source []byte, opts Options) (*Result, error) {
	if len(source) == 0 {
		return nil, fmt.Errorf("code128: no input data")
	}
	if len(source) > maxInputLen {
		return nil, fmt.Errorf("code128: input too long (%d character maximum)", maxInputLen)
	}

	src := source
	var manual ManualMode
	var fncs Fncs
	haveFNC1 := false

	haveManual := false
	if opts.ExtraEscape {
		src, manual, fncs, haveFNC1, haveManual = extractManualEscapes(source)
		if len(src) == 0 {
			return nil, fmt.Errorf("code128: no input data")
		}
	}

	length := len(src)
	var manualArg ManualMode
	if haveManual {
		manualArg = manual
	}
	var fncsArg Fncs
	if haveFNC1 {
		fncsArg = fncs
	}
	set := DefinePlan(src, opts.ABOnly, manualArg, fncsArg)

	fset := make([]byte, length)
	for i, b := range src {
		if b >= 128 {
			fset[i] = 'f'
		} else {
			fset[i] = ' '
		}
	}
	latchExtendedRuns(fset)
	revertShortRuns(set, fset)

	if GlyphCount(src, set, fset) > maxLen {
		return nil, fmt.Errorf("code128: input too long (%d symbol character maximum)", maxLen)
	}

	opts.Trace.Plan(string(src), string(set), string(fset))

	values := make([]int, 0, length+4)
	currentSet := byte(0)

	switch set[0] {
	case 'A', 'b':
		values = append(values, startA)
		currentSet = 'A'
		if opts.ReaderInit {
			values = append(values, fnc3)
		}
	case 'B', 'a':
		values = append(values, startB)
		currentSet = 'B'
		if opts.ReaderInit {
			values = append(values, fnc3)
		}
	case 'C':
		if opts.ReaderInit {
			values = append(values, startB, fnc3, codeC)
		} else {
			values = append(values, startC)
		}
		currentSet = 'C'
	}

	fState := false
	for read := 0; read < length; read++ {
		if set[read] != currentSet {
			switch set[read] {
			case 'A', 'b':
				if currentSet != 'A' {
					values = append(values, codeA)
					currentSet = 'A'
				}
			case 'B', 'a':
				if currentSet != 'B' {
					values = append(values, codeB)
					currentSet = 'B'
				}
			case 'C':
				values = append(values, codeC)
				currentSet = 'C'
			}
		}

		if (fset[read] == 'F' && !fState) || (fset[read] == ' ' && fState) {
			switch currentSet {
			case 'A':
				values = append(values, fnc4A, fnc4A)
				fState = !fState
			case 'B':
				values = append(values, fnc4B, fnc4B)
				fState = !fState
			}
		} else if (fset[read] == 'f' && !fState) || (fset[read] == 'n' && fState) {
			switch currentSet {
			case 'A':
				values = append(values, fnc4A)
			case 'B':
				values = append(values, fnc4B)
			}
		}

		if set[read] == 'a' || set[read] == 'b' {
			values = append(values, shiftA)
		}

		if fncs == nil || !fncs[read] {
			switch set[read] {
			case 'A', 'a':
				values = emitSetA(src[read], values)
			case 'B', 'b':
				values = emitSetB(src[read], values)
			case 'C':
				values = emitSetC(src[read], src[read+1], values)
				read++
			}
		} else {
			values = append(values, fnc1)
		}
	}

	codewords, moduleWidths := Expand(values)
	opts.Trace.Codewords(codewords, codewords[len(codewords)-2])

	text := src
	if haveFNC1 {
		out := make([]byte, 0, length)
		for i, b := range src {
			if !fncs[i] {
				out = append(out, b)
			}
		}
		text = out
	}

	return &Result{Codewords: codewords, ModuleWidths: moduleWidths, Text: text}, nil
}

// maxInputLen is the raw input cap (C128_MAX in code128.c), checked before
// escape processing; the symbol-character cap is maxLen.
const maxInputLen = 256

// extractManualEscapes scans for `\^A \^B \^C \^1 \^^` sequences in extra
// escape mode, mirroring the manual-escape-detection loop at the top of
// code128(). Returns the rewritten source (with `\^1` replaced by an FNC1
// dummy byte and `\^A/B/C` markers consumed into manual), the manual
// code-set-per-position array, the FNC1-dummy-position array, and whether
// any manual FNC1 was seen.
func extractManualEscapes(source []byte) (src []byte, manual ManualMode, fncs Fncs, haveFNC1, haveManual bool) {
	manual = make(ManualMode, 0, len(source))
	fncs = make(Fncs, 0, len(source))
	src = make([]byte, 0, len(source))

	var manualCh byte
	i := 0
	for i < len(source) {
		if source[i] == '\\' && i+2 < len(source) && source[i+1] == '^' &&
			((source[i+2] >= 'A' && source[i+2] <= 'C') || source[i+2] == '1' || source[i+2] == '^') {
			switch source[i+2] {
			case '^':
				manual = append(manual, manualCh)
				src = append(src, source[i])
				fncs = append(fncs, false)
				i++
				manual = append(manual, manualCh)
				src = append(src, source[i])
				fncs = append(fncs, false)
				i++
			case '1':
				i += 2
				haveFNC1 = true
				manual = append(manual, manualCh)
				src = append(src, 0x1D)
				fncs = append(fncs, true)
			default:
				i += 2
				manualCh = source[i] - '@'
				haveManual = true
			}
		} else {
			manual = append(manual, manualCh)
			src = append(src, source[i])
			fncs = append(fncs, false)
		}
		i++
	}
	return src, manual, fncs, haveFNC1, haveManual
}

// latchExtendedRuns marks runs of 5+ consecutive extended-ASCII ('f')
// positions (and a trailing run of 3+) as latched ('F'), per Annex E
// note 3, mirroring the first fset-rewriting loop in code128().
func latchExtendedRuns(fset []byte) {
	j := 0
	length := len(fset)
	for i := 0; i < length; i++ {
		if fset[i] == 'f' {
			j++
		} else {
			j = 0
		}
		if j >= 5 {
			for k := i; k > i-5; k-- {
				fset[k] = 'F'
			}
		}
	}
	if j >= 3 {
		for k := length - 1; k > length-1-j; k-- {
			fset[k] = 'F'
		}
	}
}

// revertShortRuns decides whether a short run of non-extended characters
// sandwiched between extended runs is cheaper encoded via shift ('n')
// rather than a full latch back, mirroring the second fset-rewriting loop
// in code128() (the exact `j - c < 3` / `(j - c < 5 && k > 2)` thresholds
// from ISO/IEC 15417:2007 Annex E note 3, reproduced unchanged).
func revertShortRuns(set []byte, fset []byte) {
	length := len(fset)
	for i := 1; i < length; i++ {
		if fset[i-1] == 'F' && fset[i] == ' ' {
			c := 0
			j := 0
			for ; i+j < length && fset[i+j] == ' '; j++ {
				if set[i+j] == 'C' {
					c++
				}
			}
			k := 0
			if i+j < length {
				for k = 1; i+j+k < length && fset[i+j+k] != ' '; k++ {
				}
			}
			if j-c < 3 || (j-c < 5 && k > 2) {
				for kk := 0; kk < j; kk++ {
					fset[i+kk] = 'n'
				}
			}
		}
	}
}
