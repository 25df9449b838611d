package zint

import (
	"errors"
	"os"

	"github.com/zint-go/zint/internal/code128"
	"github.com/zint-go/zint/internal/databar"
	"github.com/zint-go/zint/internal/dispatch"
	"github.com/zint-go/zint/internal/eci"
	"github.com/zint-go/zint/internal/escape"
	"github.com/zint-go/zint/internal/geometry"
	"github.com/zint-go/zint/internal/gs1"
	"github.com/zint-go/zint/internal/render"
)

// maxDataLen is the dispatcher's overall input cap, per spec.md §4.1 step 3.
const maxDataLen = 17400

// Encode is the single-segment entry point, per spec.md §6 "encode(symbol,
// source, length)". It drives the dispatcher contract of §4.1: validate
// and remap the symbology id, de-escape, normalize charset/ECI, verify GS1
// syntax when applicable, dispatch to the symbology encoder, then run the
// geometry finalizer.
func Encode(s *Symbol, source []byte) error {
	return EncodeSegs(s, []Segment{{ECI: s.ECI, Data: source}})
}

// EncodeSegs is the multi-segment entry point, per spec.md §6
// "encode_segs(symbol, segs[], n)".
func EncodeSegs(s *Symbol, segs []Segment) error {
	if len(segs) == 0 {
		return fail(s, newErrorf(CodeInvalidData, "no input data"))
	}
	if len(segs) > 256 {
		return fail(s, newErrorf(CodeInvalidData, "too many segments (max 256)"))
	}

	if canonical, warn, reject, ok := dispatch.ResolveLegacy(s.Symbology); ok {
		if reject {
			return fail(s, newErrorf(CodeInvalidOption, "symbology id %d is no longer supported", s.Symbology))
		}
		s.Symbology = canonical
		if warn {
			s.ErrText = newWarningf(CodeInvalidOption, "legacy symbology id remapped").Error()
		}
	}
	if !dispatch.ValidID(s.Symbology) {
		return fail(s, newErrorf(CodeInvalidOption, "unknown symbology id %d", s.Symbology))
	}
	if len(segs) > 1 && !dispatch.SupportsECI(s.Symbology) {
		return fail(s, newErrorf(CodeInvalidOption, "symbology does not support multiple segments"))
	}

	total := 0
	processed := make([][]byte, len(segs))
	for i, seg := range segs {
		data := seg.Data
		if len(data) == 0 {
			return fail(s, newErrorf(CodeInvalidData, "segment %d is empty", i))
		}
		if s.InputMode&EscapeMode != 0 {
			expanded, err := escape.Expand(data)
			if err != nil {
				return fail(s, newErrorf(CodeInvalidData, "segment %d: %v", i, err))
			}
			data = expanded
		}
		if s.InputMode&UnicodeMode != 0 {
			if i == 0 {
				data = eci.StripBOM(data)
			}
			converted, cerr := eci.Encode(seg.ECI, data)
			if cerr != nil {
				// step 10: the requested (or absent, ECI 0) charset can't
				// hold this segment; re-run ECI selection picking the
				// narrowest ECI that fits and surface WARN_USES_ECI.
				best, _ := eci.BestFit(data)
				converted, cerr = eci.Encode(best, data)
				if cerr != nil {
					return fail(s, newErrorf(CodeInvalidData, "segment %d: %v", i, cerr))
				}
				s.ErrText = newWarningf(CodeUsesECI, "segment %d: auto-selected ECI %d", i, best).Error()
				if i == 0 {
					s.ECI = best
				}
			} else if i == 0 && seg.ECI != 0 {
				s.ECI = seg.ECI
			}
			data = converted
		}
		processed[i] = data
		total += len(data)
	}
	if total > maxDataLen {
		return fail(s, newErrorf(CodeTooLong, "input too long (max %d bytes)", maxDataLen))
	}

	src := processed[0]

	// GS1-128, EAN-14, NVE-18 and DataBar Expanded (the CapGS1 symbologies)
	// verify or build their GS1 data themselves from the caller's input.
	if s.InputMode&GS1Mode != 0 && !dispatch.Cap(s.Symbology, dispatch.CapGS1) {
		mode := gs1.Strict
		if s.InputMode&GS1NoCheckMode != 0 {
			mode = gs1.NoCheck
		}
		reduced, err := gs1.Verify(src, mode)
		if err != nil {
			return fail(s, newErrorf(CodeInvalidData, "GS1 verify: %v", err))
		}
		src = reduced
	}

	legacyWarning := s.ErrText
	s.ErrText = ""
	_, rows, hrt, err := encodeSymbology(s, src)
	if err != nil {
		return fail(s, err)
	}

	s.Width = sumWidths(rows[0])
	s.Rows = len(rows)
	s.EncodedData = make([][]bool, len(rows))
	for i, row := range rows {
		s.EncodedData[i] = widthsToModules(row)
	}
	s.Text = []byte(hrt)
	fixedHeights := make([]float64, len(rows))
	if s.InputMode&HeightPerRowMode != 0 {
		copy(fixedHeights, s.RowHeight)
	}
	s.RowHeight = geometry.LargeBarHeight(s.Height, fixedHeights)
	if s.ErrText == "" {
		s.ErrText = legacyWarning
	}
	return nil
}

// widthsToModules expands a row of alternating bar/space widths (bar
// first) into one boolean per module, the form internal/render and
// internal/geometry consume.
func widthsToModules(widths []int) []bool {
	var row []bool
	dark := true
	for _, w := range widths {
		for i := 0; i < w; i++ {
			row = append(row, dark)
		}
		dark = !dark
	}
	return row
}

// encodeSymbology dispatches to the symbology-specific encoder, the
// table-indexed step of spec.md §4.1 step 9. rows holds one slice of
// alternating bar/space widths per output row; every symbology but
// DataBar Expanded Stacked returns exactly one.
func encodeSymbology(s *Symbol, src []byte) (codewords []int, rows [][]int, hrt string, err error) {
	switch s.Symbology {
	case SymbologyCode128:
		r, e := code128.Encode(src, code128.Options{
			ABOnly:      false,
			ExtraEscape: s.InputMode&ExtraEscapeMode != 0,
			ReaderInit:  s.OutputOptions&ReaderInit != 0,
			Trace:       s.trace,
		})
		if e != nil {
			return nil, nil, "", newErrorf(CodeEncodingProblem, "%v", e)
		}
		return r.Codewords, [][]int{r.ModuleWidths}, string(r.Text), nil

	case SymbologyGS1128:
		mode := gs1.Strict
		if s.InputMode&GS1NoCheckMode != 0 {
			mode = gs1.NoCheck
		}
		r, e := code128.EncodeGS1128(src, mode, s.trace)
		if e != nil {
			return nil, nil, "", newErrorf(CodeEncodingProblem, "%v", e)
		}
		if r.NonCompliant {
			s.ErrText = newWarningf(CodeNonCompliant, "reduced length exceeds 48 characters").Error()
		}
		hrt := code128.HRT(src, s.InputMode&GS1ParensMode != 0)
		return r.Codewords, [][]int{r.ModuleWidths}, hrt, nil

	case SymbologyEAN14:
		r, e := code128.EncodeEAN14(src, s.InputMode&GS1ParensMode != 0)
		if e != nil {
			return nil, nil, "", newErrorf(CodeEncodingProblem, "%v", e)
		}
		return r.Codewords, [][]int{r.ModuleWidths}, "", nil

	case SymbologyNVE18:
		r, e := code128.EncodeNVE18(src, s.InputMode&GS1ParensMode != 0)
		if e != nil {
			return nil, nil, "", newErrorf(CodeEncodingProblem, "%v", e)
		}
		return r.Codewords, [][]int{r.ModuleWidths}, "", nil

	case SymbologyDPD:
		r, e := code128.EncodeDPD(src, s.Option1 != 0)
		if e != nil {
			return nil, nil, "", newErrorf(CodeEncodingProblem, "%v", e)
		}
		if len(r.NonCompliant) > 0 {
			s.ErrText = newWarningf(CodeNonCompliantDPD, "%v", r.NonCompliant).Error()
		}
		return r.Codewords, [][]int{r.ModuleWidths}, r.HRT, nil

	case SymbologyUPUS10:
		r, e := code128.EncodeUPUS10(src)
		if e != nil {
			return nil, nil, "", newErrorf(CodeEncodingProblem, "%v", e)
		}
		if r.NonCompliant != "" {
			s.ErrText = newWarningf(CodeNonCompliant, "%s", r.NonCompliant).Error()
		}
		return r.Codewords, [][]int{r.ModuleWidths}, r.HRT, nil

	case SymbologyHIBC128:
		r, e := code128.EncodeHIBC128(src)
		if e != nil {
			return nil, nil, "", newErrorf(CodeEncodingProblem, "%v", e)
		}
		return r.Codewords, [][]int{r.ModuleWidths}, "", nil

	case SymbologyDataBarExpanded, SymbologyDataBarExpandedStacked:
		opts := databar.Options{Trace: s.trace}
		if s.Symbology == SymbologyDataBarExpandedStacked {
			opts.ColsPerRow = s.Option2
			if opts.ColsPerRow == 0 {
				opts.ColsPerRow = 2
			}
		}
		r, e := databar.Encode(src, opts)
		if e != nil {
			return nil, nil, "", newErrorf(CodeEncodingProblem, "%v", e)
		}
		return nil, r.Rows, "", nil

	default:
		return nil, nil, "", newErrorf(CodeInvalidOption, "no encoder registered for symbology id %d", s.Symbology)
	}
}

func sumWidths(widths []int) int {
	total := 0
	for _, w := range widths {
		total += w
	}
	return total
}

func fail(s *Symbol, err error) error {
	var ze *Error
	if errors.As(err, &ze) {
		s.ErrText = ze.Error()
	} else {
		s.ErrText = err.Error()
	}
	if s.WarnLevel == WarnFailAll {
		if errors.As(err, &ze) && ze.Severity == SeverityWarning {
			ze.Severity = SeverityError
		}
	}
	return err
}

// Print writes the serialized form to outfile per spec.md §6. Format is
// chosen by the outfile extension; only ".bmp" and ".txt" are implemented,
// matching internal/render's two concrete serializers (§13 of
// SPEC_FULL.md) — every other extension returns ErrNotImplemented.
func Print(s *Symbol, outfile string, rotate int) error {
	m := toMatrix(s)
	var data []byte
	var err error
	switch ext(outfile) {
	case ".bmp":
		data, err = render.BMP{}.Render(m)
	case ".txt":
		data, err = render.TXT{}.Render(m)
	default:
		return ErrNotImplemented
	}
	if err != nil {
		return newErrorf(CodeFileWrite, "%v", err)
	}
	if err := os.WriteFile(outfile, data, 0o644); err != nil {
		return newErrorf(CodeFileAccess, "%v", err)
	}
	return nil
}

func ext(path string) string {
	for i := len(path) - 1; i >= 0 && path[i] != '/'; i-- {
		if path[i] == '.' {
			return path[i:]
		}
	}
	return ""
}

// Buffer serializes the symbol as raster bytes (BMP), per spec.md §6
// "buffer(symbol, rotate)".
func Buffer(s *Symbol, rotate int) ([]byte, error) {
	m := toMatrix(s)
	return render.BMP{}.Render(m)
}

// BufferVector serializes as a vector tree, per spec.md §6
// "buffer_vector(symbol, rotate)". Vector rendering is explicitly out of
// scope (§1 Non-goals); the operation exists on the API surface but is
// unimplemented.
func BufferVector(s *Symbol, rotate int) ([]byte, error) {
	return nil, ErrNotImplemented
}

// ErrNotImplemented is returned by API operations whose feature is an
// explicit Non-goal (vector rendering, most file formats) but which are
// still present on the interface per spec.md §6.
var ErrNotImplemented = errors.New("zint: not implemented")

func toMatrix(s *Symbol) *render.Matrix {
	return &render.Matrix{
		Width:    s.Width,
		Rows:     s.EncodedData,
		FgColour: s.FgColour,
		BgColour: s.BgColour,
	}
}

// UTF8ToECI converts utf8Text into the byte encoding of eciNum, per
// spec.md §6 "utf8_to_eci".
func UTF8ToECI(eciNum int, utf8Text []byte) ([]byte, error) {
	return eci.Encode(eciNum, utf8Text)
}

// DestLenECI returns the byte length utf8Text would occupy once converted
// to eciNum's encoding, per spec.md §6 "dest_len_eci".
func DestLenECI(eciNum int, utf8Text []byte) (int, error) {
	return eci.DestLen(eciNum, utf8Text)
}
