package code128

import (
	"fmt"

	"github.com/zint-go/zint/internal/gs1"
	"github.com/zint-go/zint/internal/trace"
)

// GS1Result mirrors Result but additionally reports whether the reduced
// GS1 data length exceeded the 48-character compliance limit (GS1 General
// Specifications 5.4.4.3), surfaced by the caller as WARN_NONCOMPLIANT.
type GS1Result struct {
	Codewords     []int
	ModuleWidths  []int
	ReducedLength int
	NonCompliant  bool
}

// EncodeGS1128 implements gs1_128_cc with cc_mode=0 (no composite
// component): verifies/reduces GS1 bracket input, plans a B/C-only code
// set (always forcing the leading FNC1), and emits the codeword stream.
// Mirrors gs1_128_cc/gs1_128 in code128.c. tr receives the same
// plan/codeword debug dump as Encode when non-nil; pass nil to disable.
func EncodeGS1128(bracketed []byte, mode gs1.Mode, tr *trace.Logger) (*GS1Result, error) {
	reduced, err := gs1.Verify(bracketed, mode)
	if err != nil {
		return nil, err
	}
	if len(reduced) > maxLen {
		return nil, fmt.Errorf("code128: input too long (%d character maximum)", maxLen)
	}

	set := DefinePlan(reduced, false, nil, nil)
	if GlyphCount(reduced, set, nil) > maxLen {
		return nil, fmt.Errorf("code128: input too long (%d symbol character maximum)", maxLen)
	}
	if set[0] != 'B' && set[0] != 'C' {
		return nil, fmt.Errorf("code128: GS1-128 plan must start in set B or C")
	}
	tr.Plan(string(reduced), string(set), "")

	values := make([]int, 0, len(reduced)+4)
	switch set[0] {
	case 'B':
		values = append(values, startB)
	case 'C':
		values = append(values, startC)
	}
	values = append(values, fnc1)

	for read := 0; read < len(reduced); read++ {
		if read != 0 && set[read] != set[read-1] {
			switch set[read] {
			case 'B':
				values = append(values, codeB)
			case 'C':
				values = append(values, codeC)
			}
		}
		if reduced[read] != 0x1D {
			switch set[read] {
			case 'B':
				values = emitSetB(reduced[read], values)
			case 'C':
				values = emitSetC(reduced[read], reduced[read+1], values)
				read++
			}
		} else {
			values = append(values, fnc1)
		}
	}

	codewords, moduleWidths := Expand(values)
	tr.Codewords(codewords, codewords[len(codewords)-2])
	return &GS1Result{
		Codewords:     codewords,
		ModuleWidths:  moduleWidths,
		ReducedLength: len(reduced),
		NonCompliant:  len(reduced) > 48,
	}, nil
}

// HRT renders GS1-128 human-readable text: source bracket characters '['
// and ']' become '(' and ')' unless gs1Parens (GS1PARENS_MODE) is set, in
// which case the source is shown verbatim, per the bracket_level loop at
// the end of gs1_128_cc.
func HRT(source []byte, gs1Parens bool) string {
	return gs1.HRT(source, gs1Parens)
}
