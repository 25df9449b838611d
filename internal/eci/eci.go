// Package eci converts UTF-8 segment bytes into the byte encoding named by
// an Extended Channel Interpretation number, grounded on library.c's
// utf8_to_eci/dest_len_eci (original_source/backend/library.c) and on
// golang.org/x/text/encoding, the charset-conversion library used across
// the retrieval pack (other_examples/MeKo-Christian-pogo and
// seehuhn.de/go/pdf both require golang.org/x/text for the same purpose —
// see SPEC_FULL.md §3).
package eci

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

// table maps ECI numbers to their x/text encoding.Encoding, per the ECI
// registry Zint documents in library.c's comment block above utf8_to_eci.
// ECI 0, 26, 899, 998 and 999 are handled specially (see Encode) and have
// no entry here.
var table = map[int]encoding.Encoding{
	3:  charmap.ISO8859_1,
	4:  charmap.ISO8859_2,
	5:  charmap.ISO8859_3,
	6:  charmap.ISO8859_4,
	7:  charmap.ISO8859_5,
	8:  charmap.ISO8859_6,
	9:  charmap.ISO8859_7,
	10: charmap.ISO8859_8,
	11: charmap.ISO8859_9,
	13: charmap.ISO8859_10,
	15: charmap.ISO8859_11,
	17: charmap.ISO8859_13,
	18: charmap.ISO8859_14,
	19: charmap.ISO8859_15,
	20: charmap.ISO8859_16,
	21: charmap.Windows1250,
	22: charmap.Windows1251,
	23: charmap.Windows1252,
	24: charmap.Windows1256,
	25: unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
	28: simplifiedchinese.GBK,
	29: korean.EUCKR,
	30: traditionalchinese.Big5,
	31: simplifiedchinese.GB18030,
	32: japanese.ShiftJIS,
}

// Supported reports whether eciNum names an encoding this package can
// convert to/from.
func Supported(eciNum int) bool {
	switch eciNum {
	case 0, 26, 899, 998, 999:
		return true
	}
	_, ok := table[eciNum]
	return ok
}

// Encode converts UTF-8 text into the byte encoding designated by eciNum.
// ECI 0 asserts the source is already 7-bit ASCII and passes it through
// unchanged (matching Zint's convention that ECI 0 means "no conversion").
// ECI 26 is UTF-8 itself (identity). ECI 899/998/999 are 8-bit binary /
// unknown / binary passthroughs and are never transcoded.
func Encode(eciNum int, utf8Text []byte) ([]byte, error) {
	switch eciNum {
	case 0:
		for _, b := range utf8Text {
			if b >= 0x80 {
				return nil, fmt.Errorf("eci: ECI 0 requires 7-bit ASCII, got byte %#x", b)
			}
		}
		return utf8Text, nil
	case 26, 899, 998, 999:
		return utf8Text, nil
	}
	enc, ok := table[eciNum]
	if !ok {
		return nil, fmt.Errorf("eci: unsupported ECI %d", eciNum)
	}
	out, err := enc.NewEncoder().Bytes(utf8Text)
	if err != nil {
		return nil, fmt.Errorf("eci: encode to ECI %d: %w", eciNum, err)
	}
	return out, nil
}

// DestLen reports the length Encode(eciNum, utf8Text) would produce,
// without allocating the result, mirroring dest_len_eci's use before
// buffer allocation in library.c.
func DestLen(eciNum int, utf8Text []byte) (int, error) {
	out, err := Encode(eciNum, utf8Text)
	if err != nil {
		return 0, err
	}
	return len(out), nil
}

// StripBOM removes a leading UTF-8 byte-order mark from segment 0 when
// UNICODE_MODE is active, per §4 intro step 7.
func StripBOM(data []byte) []byte {
	return bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})
}

// ValidateUTF8 reports whether data is well-formed UTF-8, required before
// ECI selection when UNICODE_MODE is set.
func ValidateUTF8(data []byte) bool {
	return utf8.Valid(data)
}

// eciOrder lists the single-byte ECI candidates in ascending numeric order.
// BestFit walks this list so the narrowest (lowest-numbered) ECI that can
// represent the text wins ties, matching "picks the narrowest one that fits"
// in the normalizer's contract. The multibyte ECIs (25, 28-32) are not
// candidates: text no single-byte table covers falls back to UTF-8.
var eciOrder = []int{3, 4, 5, 6, 7, 8, 9, 10, 11, 13, 15, 17, 18, 19, 20, 21, 22, 23, 24}

// BestFit picks the narrowest ECI able to represent utf8Text losslessly,
// falling back to ECI 26 (UTF-8 itself) when nothing narrower fits, per
// §4 intro step 10's "re-run ECI selection picking the narrowest ECI that
// fits".
func BestFit(utf8Text []byte) (eciNum int, ok bool) {
	for _, n := range eciOrder {
		enc := table[n]
		if _, err := enc.NewEncoder().Bytes(utf8Text); err == nil {
			return n, true
		}
	}
	return 26, true
}
