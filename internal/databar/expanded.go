package databar

import (
	"github.com/zint-go/zint/internal/bitwriter"
	"github.com/zint-go/zint/internal/checksum"
	"github.com/zint-go/zint/internal/gs1"
	"github.com/zint-go/zint/internal/trace"
)

// Result is the encoded form of a DataBar Expanded / Expanded Stacked
// symbol: element (bar/space) widths ready for the geometry finalizer, laid
// out either as one row (Expanded) or several (Expanded Stacked), per
// rssexpanded_cc's two branches.
type Result struct {
	Method      int
	DataChars   int
	Rows        [][]int // each row's element widths, guard-to-guard
	Stacked     bool
	ColsPerRow  int
	StackRows   int
	WidthModules int
}

// Options controls the Expanded Stacked column count; ColsPerRow == 0
// selects the single-row (non-stacked) Expanded form, matching
// BARCODE_DBAR_EXP vs BARCODE_DBAR_EXPSTK in the original.
type Options struct {
	ColsPerRow int // 0 = non-stacked; 1-11 valid for stacked, per option_2
	// Trace receives the method/binary-string debug dump when non-nil and
	// enabled, mirroring rssexp_binary_string's "Choosing Method N"/
	// "Resultant binary =" printf output.
	Trace *trace.Logger
}

// Encode builds a GS1 DataBar Expanded / Expanded Stacked symbol from
// bracketed GS1 AI data, following gs1_verify -> rssexp_binary_string ->
// rssexpanded_cc end to end.
func Encode(bracketed []byte, opts Options) (*Result, error) {
	reduced, err := gs1.Verify(bracketed, gs1.Strict)
	if err != nil {
		return nil, err
	}

	m := selectMethod(reduced)
	opts.Trace.Method(int(m))
	w := bitwriter.New(13*len(bracketed) + 200)

	hv, hw := headerBits(m)
	w.Append(hv, hw)

	encodeCompressedAndResidual(w, reduced, m)

	padGeneralField(w, w.Len())
	dataChars := w.Len() / 12
	if dataChars < 4 {
		dataChars = 4 // minimum four symbol characters, per spec.md sizing rule
	}
	applyPatchToWriter(w, m, dataChars+1) // + check character
	if opts.Trace.Enabled() {
		opts.Trace.Binary(binaryString(w), dataChars)
	}

	widths := make([][8]int, dataChars)
	for i := 0; i < dataChars; i++ {
		vs := w.Codeword(i*12, 12)
		widths[i] = oddEvenWidths(vs)
	}

	sum := checksum.WeightedSum(widths, checksumWeightExp, func(i int) int {
		bucket := (dataChars - 2) / 2
		if bucket < 0 {
			bucket = 0
		}
		if bucket >= 21 {
			bucket = 20 // bounds guard: DataBar Expanded caps at 21 data characters
		}
		return weightRows[bucket*21+i]
	})
	checkChar := checksum.Mod211Check(dataChars, sum)
	checkWidths := oddEvenWidths(checkChar)

	codeblocks := (dataChars+1)/2 + (dataChars+1)&1
	elements := buildElements(dataChars, codeblocks, widths, checkWidths)

	res := &Result{Method: int(m), DataChars: dataChars}

	if opts.ColsPerRow == 0 {
		row := make([]int, 0, len(elements)+4)
		row = append(row, 1, 1)
		row = append(row, elements...)
		row = append(row, 1, 1)
		res.Rows = [][]int{row}
		res.WidthModules = sumInts(row)
		return res, nil
	}

	res.Stacked = true
	res.ColsPerRow = opts.ColsPerRow
	res.StackRows = codeblocks / opts.ColsPerRow
	if codeblocks%opts.ColsPerRow > 0 {
		res.StackRows++
	}
	res.Rows = stackRows(elements, codeblocks, opts.ColsPerRow)
	for _, r := range res.Rows {
		if s := sumInts(r); s > res.WidthModules {
			res.WidthModules = s
		}
	}
	return res, nil
}

// encodeCompressedAndResidual appends the method-appropriate compressed
// leading-digit field then hands the remaining bytes to the
// general-purpose field encoder, per rssexp_binary_string's per-method
// bodies (simplified to the common packed-triplet-then-general-field shape
// all 14 methods share after their distinct headers).
func encodeCompressedAndResidual(w *bitwriter.Writer, reduced []byte, m method) {
	// The AI(01) GTIN-like leading field, when present, is packed three
	// digits at a time into 10 bits, mirroring the compressed data field's
	// "three digits -> 10 bits" rule for methods 1 and 3-14.
	start := 0
	if m != method2 {
		start = skipLeadingAI01(reduced)
		packDigitsTriplets(w, reduced[:start])
	}
	generalFieldEncode(w, reduced[start:])
}

// skipLeadingAI01 returns the byte offset just past a leading "01" AI's
// 14-digit GTIN field (AI digits included), or 0 if none is present.
func skipLeadingAI01(reduced []byte) int {
	if len(reduced) >= 16 && reduced[0] == '0' && reduced[1] == '1' {
		return 16
	}
	return 0
}

// packDigitsTriplets packs ASCII digit bytes three at a time into 10-bit
// codewords, per the compressed data field's leading-digit packing rule.
func packDigitsTriplets(w *bitwriter.Writer, digits []byte) {
	i := 0
	for i+3 <= len(digits) {
		v := 0
		for j := 0; j < 3; j++ {
			if digits[i+j] >= '0' && digits[i+j] <= '9' {
				v = v*10 + int(digits[i+j]-'0')
			}
		}
		w.Append(uint64(v), 10)
		i += 3
	}
	if i < len(digits) {
		generalFieldEncode(w, digits[i:])
	}
}

func applyPatchToWriter(w *bitwriter.Writer, m method, symbolChars int) {
	pos, width, ok := patchOffset(m)
	if !ok || width != 2 || pos+1 >= w.Len() {
		return
	}
	d1 := symbolChars & 1
	d2 := 0
	if symbolChars > 14 {
		d2 = 1
	}
	w.Patch(pos, d1 != 0)
	w.Patch(pos+1, d2 != 0)
}

// buildElements lays out the finder patterns between data-character pairs
// and the check character at the front, interleaving forward and reversed
// data characters, per the "Put ... in element array" loops in
// rssexpanded_cc.
func buildElements(dataChars, codeblocks int, widths [][8]int, checkWidths [8]int) []int {
	patternWidth := codeblocks*5 + (dataChars+1)*8 + 4
	elements := make([]int, patternWidth)

	// p selects the finder-sequence bucket for this symbol's size, per
	// rssexpanded_cc: p = (((data_chars+1-2)/2) + ((data_chars+1)&1) - 1) * 11.
	p := (((dataChars+1-2)/2 + (dataChars+1)&1) - 1) * 11
	if p < 0 {
		p = 0
	}
	if p > len(finderSequence)-codeblocks {
		p = len(finderSequence) - codeblocks // bounds guard against the largest encodable symbol
	}
	for i := 0; i < codeblocks; i++ {
		seq := finderSequence[p+i]
		for j := 0; j < 5; j++ {
			pos := 21*i + j + 10
			if pos < len(elements) {
				elements[pos] = finderPatternExp[seq-1][j]
			}
		}
	}

	for i := 0; i < 8; i++ {
		if i+2 < len(elements) {
			elements[i+2] = checkWidths[i]
		}
	}

	for i := 1; i < dataChars; i += 2 {
		k := ((i-1)/2)*21 + 23
		for j := 0; j < 8; j++ {
			if k+j < len(elements) {
				elements[k+j] = widths[i][j]
			}
		}
	}
	for i := 0; i < dataChars; i += 2 {
		k := (i/2)*21 + 15
		for j := 0; j < 8; j++ {
			if k+j < len(elements) {
				elements[k+j] = widths[i][7-j]
			}
		}
	}
	return elements
}

// stackRows splits the linear elements array into Expanded Stacked rows,
// cols_per_row codeblocks per row, per rssexpanded_cc's stacked branch
// (guard-pattern bookending and left-to-right/right-to-left alternation
// simplified to always-left-to-right, which the geometry finalizer may
// still reverse per row when rendering).
func stackRows(elements []int, codeblocks, colsPerRow int) [][]int {
	stackRowCount := codeblocks / colsPerRow
	if codeblocks%colsPerRow > 0 {
		stackRowCount++
	}
	rows := make([][]int, 0, stackRowCount)
	block := 0
	for r := 0; r < stackRowCount; r++ {
		cols := colsPerRow
		if (r+1)*colsPerRow > codeblocks {
			cols = codeblocks - block
		}
		row := []int{1, 1}
		for c := 0; c < cols && block < codeblocks; c++ {
			i := 2 + block*21
			for j := 0; j < 21 && i+j < len(elements); j++ {
				row = append(row, elements[i+j])
			}
			block++
		}
		row = append(row, 1, 1)
		rows = append(rows, row)
	}
	return rows
}

// binaryString renders w's accumulated bits as a "0"/"1" string for the
// trace dump, mirroring rssexp_binary_string's "Resultant binary =" printf.
func binaryString(w *bitwriter.Writer) string {
	bits := make([]byte, w.Len())
	for i := range bits {
		if w.Bit(i) {
			bits[i] = '1'
		} else {
			bits[i] = '0'
		}
	}
	return string(bits)
}

func sumInts(xs []int) int {
	s := 0
	for _, x := range xs {
		s += x
	}
	return s
}
