// Package trace replaces the raw stdout printf dumps gated by
// symbol->debug & ZINT_DEBUG_PRINT in code128.c/rss.c with structured
// logging via charmbracelet/log, grounded on doismellburning/samoyed, which
// wires the same library for its own ported-from-C encoder/decoder tracing.
package trace

import (
	"io"

	"github.com/charmbracelet/log"
)

// Flags mirrors the symbol->debug bitmask (ZINT_DEBUG_PRINT / ZINT_DEBUG_TEST).
type Flags int

const (
	Print Flags = 1 << iota
	Test
)

// Logger wraps a *log.Logger, silent by default, enabled per the Flags a
// Symbol was configured with.
type Logger struct {
	l     *log.Logger
	flags Flags
}

// New returns a Logger writing to w when flags&Print != 0, discarding
// everything otherwise.
func New(w io.Writer, flags Flags) *Logger {
	out := io.Discard
	if flags&Print != 0 && w != nil {
		out = w
	}
	l := log.New(out)
	l.SetLevel(log.DebugLevel) // every trace call logs at Debug level
	return &Logger{
		l:     l,
		flags: flags,
	}
}

// Plan logs the Code-128 minimal-cost planner's chosen code-set and
// extended-ASCII assignment per position, mirroring the "Set:"/"FSet:"
// printf dump in code128's code128().
func (lg *Logger) Plan(data string, set string, fset string) {
	if lg == nil {
		return
	}
	lg.l.Debug("code128 plan", "data", data, "set", set, "fset", fset)
}

// Codewords logs the final codeword stream and checksum, mirroring
// c128_expand's "Codewords:"/"Checksum:" dump.
func (lg *Logger) Codewords(values []int, checksum int) {
	if lg == nil {
		return
	}
	lg.l.Debug("code128 codewords", "values", values, "checksum", checksum)
}

// Binary logs the DataBar Expanded binary string under construction,
// mirroring rssexp_binary_string's "Resultant binary ="/"Symbol chars:" dump.
func (lg *Logger) Binary(binary string, symbolChars int) {
	if lg == nil {
		return
	}
	lg.l.Debug("databar binary", "bits", binary, "symbol_chars", symbolChars)
}

// Method logs the DataBar Expanded method-selection decision, mirroring
// "Choosing Method N"/"Now using method N".
func (lg *Logger) Method(n int) {
	if lg == nil {
		return
	}
	lg.l.Debug("databar method", "method", n)
}

// Enabled reports whether Print-level tracing is active.
func (lg *Logger) Enabled() bool {
	return lg != nil && lg.flags&Print != 0
}
