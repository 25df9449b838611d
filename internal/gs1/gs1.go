// Package gs1 parses GS1 Application Identifier bracket syntax and reduces
// it to the AI-concatenated-with-FNC1-separators representation the
// Code-128 and DataBar Expanded encoders consume, grounded on spec.md's
// §4 intro step 4 and the gs1_verify call sites in code128_based.c/rss.c
// (gs1.c itself is not present in the retrieval pack — see SPEC_FULL.md §8).
package gs1

import (
	"fmt"
	"strings"
)

// FNC1 is the separator byte a reduced-GS1 string puts between consecutive
// AI fields (Verify inserts it after every field but the last), matching Code-128's FNC1 codeword and
// DataBar's GS1 general-field termination convention.
const FNC1 = 0x1D

// fixedLength maps an AI to its exact data length (digits/characters
// following the AI, not counting the AI itself), for the subset of AIs
// with a fixed field length per the GS1 General Specifications. AIs not
// listed here are variable-length and terminated by FNC1 or end of input.
var fixedLength = map[string]int{
	"00": 18,
	"01": 14,
	"02": 14,
	"11": 6,
	"12": 6,
	"13": 6,
	"14": 6,
	"15": 6,
	"16": 6,
	"17": 6,
	"18": 6,
	"19": 6,
	"20": 2,
	"31": 10, "3100": 6, "3101": 6, "3102": 6, "3103": 6, "3104": 6, "3105": 6,
	"32": 10, "3200": 6, "3201": 6, "3202": 6, "3203": 6, "3204": 6, "3205": 6,
	"33": 10, "3300": 6, "3301": 6, "3302": 6, "3303": 6, "3304": 6, "3305": 6,
	"34": 10, "3400": 6, "3401": 6, "3402": 6, "3403": 6, "3404": 6, "3405": 6,
	"35": 10, "3500": 6, "3501": 6, "3502": 6, "3503": 6, "3504": 6, "3505": 6,
	"36": 10, "3600": 6, "3601": 6, "3602": 6, "3603": 6, "3604": 6, "3605": 6,
	"41": 14,
}

// Mode selects how strict Verify is about unknown or malformed AIs,
// corresponding to GS1NOCHECK_MODE.
type Mode int

const (
	// Strict rejects unknown AIs and length mismatches.
	Strict Mode = iota
	// NoCheck (GS1NOCHECK_MODE) skips AI validation, only reducing syntax.
	NoCheck
)

// Verify parses "(AI)data(AI)data..." bracket input, validates the AIs it
// recognises against fixedLength, and returns the reduced AI+FNC1-separated
// byte form, per §4 intro step 4 ("parses AI-bracketed input, validates
// fixed-length AIs, and emits a reduced representation with FNC1 separators
// as 0x1D bytes").
func Verify(data []byte, mode Mode) (reduced []byte, err error) {
	s := string(data)
	if len(s) == 0 || (s[0] != '(' && s[0] != '[') {
		return nil, fmt.Errorf("gs1: input must start with a '(AI)' or '[AI]' bracket")
	}

	var out strings.Builder
	first := true
	for len(s) > 0 {
		open := s[0]
		if open != '(' && open != '[' {
			return nil, fmt.Errorf("gs1: expected bracket at %q", s)
		}
		closeByte := byte(')')
		if open == '[' {
			closeByte = ']'
		}
		close := strings.IndexByte(s, closeByte)
		if close < 0 {
			return nil, fmt.Errorf("gs1: unterminated AI bracket in %q", s)
		}
		ai := s[1:close]
		if len(ai) < 2 || len(ai) > 4 {
			return nil, fmt.Errorf("gs1: AI %q must be 2-4 digits", ai)
		}
		for _, c := range ai {
			if c < '0' || c > '9' {
				return nil, fmt.Errorf("gs1: AI %q must be all digits", ai)
			}
		}
		s = s[close+1:]

		fieldEnd := strings.IndexAny(s, "([")
		var field string
		if fieldEnd < 0 {
			field = s
			s = ""
		} else {
			field = s[:fieldEnd]
			s = s[fieldEnd:]
		}
		if field == "" {
			return nil, fmt.Errorf("gs1: AI (%s) has empty data field", ai)
		}

		if mode == Strict {
			if want, ok := fixedLength[ai]; ok && len(field) != want {
				return nil, fmt.Errorf("gs1: AI (%s) requires %d characters, got %d", ai, want, len(field))
			}
		}

		if !first {
			out.WriteByte(FNC1)
		}
		first = false
		out.WriteString(ai)
		out.WriteString(field)
	}
	return []byte(out.String()), nil
}

// HRT renders a parsed AI sequence as human-readable text. Callers pass the
// GS1PARENS_MODE flag as useBrackets. By default (useBrackets false,
// GS1PARENS_MODE unset) square brackets in the source become parentheses;
// when useBrackets is true (GS1PARENS_MODE set) the source is returned
// verbatim, per spec.md §4.3's GS1-128 bullet.
func HRT(sourceBrackets []byte, useBrackets bool) string {
	s := string(sourceBrackets)
	if useBrackets {
		return s
	}
	s = strings.ReplaceAll(s, "[", "(")
	s = strings.ReplaceAll(s, "]", ")")
	return s
}
