package zint

import "github.com/zint-go/zint/internal/trace"

// Input-mode bits, combined with the escape/GS1/height-per-row bits below,
// per spec.md §6 "Input modes".
type InputMode int

const (
	DataMode    InputMode = 0
	UnicodeMode InputMode = 1 << iota
	GS1Mode

	EscapeMode
	ExtraEscapeMode
	GS1ParensMode
	GS1NoCheckMode
	HeightPerRowMode
)

// Output-option bits, a selected subset of spec.md §6 "Output options".
type OutputOption int

const (
	BarcodeBind OutputOption = 1 << iota
	BarcodeBindTop
	BarcodeBox
	BarcodeStdout
	ReaderInit
	SmallText
	BoldText
	CMYKColour
	BarcodeDottyMode
	GS1GSSeparator
	BarcodeQuietZones
	BarcodeNoQuietZones
	CompliantHeight
	BarcodeContentSegs
	EANUPCGuardWhitespace
	EmbedVectorFont
)

// WarnLevel names the warning-handling levels of spec.md §7. Encode does
// not upgrade warnings under WarnFailAll: a warning leaves its text in
// ErrText and Encode returns nil at either level.
type WarnLevel int

const (
	WarnDefault WarnLevel = iota
	WarnFailAll
)

// Debug bitmask, mirroring ZINT_DEBUG_PRINT/ZINT_DEBUG_TEST from
// original_source/backend/library.c, consumed by internal/trace.
type Debug = trace.Flags

const (
	DebugPrint = trace.Print
	DebugTest  = trace.Test
)

// Segment is a (ECI, bytes) tuple, the unit of multi-segment input, per
// spec.md §3 "Segment".
type Segment struct {
	ECI  int
	Data []byte
}

// Symbol is the pipeline's working object, field groups named after
// spec.md §3's table (Selection / Appearance / Output / Linkage), plus the
// debug/input_mode/warn_level fields SPEC_FULL.md §4 supplements from
// library.c.
type Symbol struct {
	// Selection
	Symbology int
	InputMode InputMode
	ECI       int
	Option1   int
	Option2   int
	Option3   int
	Debug     Debug
	WarnLevel WarnLevel

	// Appearance
	Scale                float64
	DotSize              float64
	FgColour             [3]byte
	BgColour             [3]byte
	OutputOptions        OutputOption
	BorderWidth          float64
	WhitespaceWidth      float64
	WhitespaceHeight     float64
	GuardDescent         float64
	TextGap              float64
	ShowHRT              bool
	Height               float64

	// Output, filled by the encoder/serializer
	Rows         int
	Width        int
	EncodedData  [][]bool
	RowHeight    []float64
	Text         []byte
	ErrText      string

	// Linkage
	Primary      string
	ContentSegs  []Segment

	trace *trace.Logger
}

// Create allocates a zeroed Symbol with the defaults spec.md §6's `create`
// entry names: symbology = CODE128, scale = 1, fg=black, bg=white,
// dot_size = 0.8, text_gap = 1.0, guard_descent = 5.0.
func Create() *Symbol {
	return &Symbol{
		Symbology:    SymbologyCode128,
		Scale:        1.0,
		DotSize:      0.8,
		TextGap:      1.0,
		GuardDescent: 5.0,
		FgColour:     [3]byte{0, 0, 0},
		BgColour:     [3]byte{0xFF, 0xFF, 0xFF},
		WarnLevel:    WarnDefault,
	}
}

// Clear zeroes output fields (rows/width/encoded data/text/errtxt) but
// preserves configuration, per spec.md §3 "clear zeroes output fields but
// preserves configuration".
func (s *Symbol) Clear() {
	s.Rows = 0
	s.Width = 0
	s.EncodedData = nil
	s.RowHeight = nil
	s.Text = nil
	s.ErrText = ""
}

// Reset restores a Symbol to its freshly-created configuration as well as
// clearing output, per spec.md §3's `reset` lifecycle entry.
func (s *Symbol) Reset() {
	fresh := Create()
	primary := s.Primary
	*s = *fresh
	s.Primary = primary
}

// Delete releases a Symbol's owned buffers. Go's garbage collector makes
// this a no-op beyond clearing references, kept as a named operation for
// parity with spec.md §6's lifecycle table and callers migrating from the
// C API's explicit free.
func (s *Symbol) Delete() {
	s.EncodedData = nil
	s.RowHeight = nil
	s.Text = nil
	s.ContentSegs = nil
}

// EnableTrace attaches a structured debug logger to the symbol; Encode hands
// it to the Code-128, GS1-128 and DataBar Expanded encoders. Whether anything
// is written depends on the Flags the logger was built with (trace.New); the
// Debug field is not consulted.
func (s *Symbol) EnableTrace(lg *trace.Logger) { s.trace = lg }
