package render

import (
	"bytes"
	"encoding/binary"
	"errors"
)

// BMP serializes a Matrix as a Windows BMP file, per spec.md's "BMP byte
// format" bullet: bitmap-file header (0x4D42, file size, reserved=0, data
// offset) + info header (width, height, planes=1, bits/pixel, compression=0
// BI_RGB, image size=0, DPI, colour table size) + colour table + bottom-up
// pixel rows padded to a 4-byte boundary.
type BMP struct {
	Ultra bool // 4 bits/pixel, 8 named colours, instead of 1-bit monochrome
}

// ultraPalette is the 8 named ULTRA colours, C B M R Y G K W, in BGR order
// as BMP colour-table entries expect.
var ultraPalette = [8][3]byte{
	{0xFF, 0xFF, 0x00}, // Cyan
	{0xFF, 0x00, 0x00}, // Blue
	{0xFF, 0x00, 0xFF}, // Magenta
	{0x00, 0x00, 0xFF}, // Red
	{0x00, 0xFF, 0xFF}, // Yellow
	{0x00, 0xFF, 0x00}, // Green
	{0x00, 0x00, 0x00}, // blacK
	{0xFF, 0xFF, 0xFF}, // White
}

func (b BMP) Render(m *Matrix) ([]byte, error) {
	if m.Width <= 0 || len(m.Rows) == 0 {
		return nil, errors.New("render: empty matrix")
	}

	bitsPerPixel := 1
	paletteEntries := 2
	if b.Ultra {
		bitsPerPixel = 4
		paletteEntries = 8
	}

	height := pixelHeight(m)
	rowBytes := ((m.Width*bitsPerPixel + 31) / 32) * 4
	pixelDataSize := rowBytes * height
	paletteSize := paletteEntries * 4
	dataOffset := 14 + 40 + paletteSize
	fileSize := dataOffset + pixelDataSize

	var buf bytes.Buffer

	// Bitmap-file header.
	buf.WriteByte('B')
	buf.WriteByte('M')
	writeU32(&buf, uint32(fileSize))
	writeU32(&buf, 0) // reserved
	writeU32(&buf, uint32(dataOffset))

	// Info header (BITMAPINFOHEADER).
	writeU32(&buf, 40) // header size
	writeI32(&buf, int32(m.Width))
	writeI32(&buf, int32(height))
	writeU16(&buf, 1) // planes
	writeU16(&buf, uint16(bitsPerPixel))
	writeU32(&buf, 0) // BI_RGB
	writeU32(&buf, 0) // image size, may be 0 for BI_RGB
	writeI32(&buf, 2835) // ~72 DPI in pixels/metre
	writeI32(&buf, 2835)
	writeU32(&buf, uint32(paletteEntries))
	writeU32(&buf, uint32(paletteEntries))

	// Colour table.
	if b.Ultra {
		for _, c := range ultraPalette {
			buf.Write(c[:])
			buf.WriteByte(0)
		}
	} else {
		buf.Write(bgr(m.BgColour))
		buf.WriteByte(0)
		buf.Write(bgr(m.FgColour))
		buf.WriteByte(0)
	}

	// Pixel rows, bottom-up, each padded to rowBytes.
	expanded := expandRows(m)
	for y := len(expanded) - 1; y >= 0; y-- {
		row := packRow(expanded[y], bitsPerPixel)
		padded := make([]byte, rowBytes)
		copy(padded, row)
		buf.Write(padded)
	}

	return buf.Bytes(), nil
}

// expandRows replicates each logical row RowPixels[y] times, for stacked
// symbols whose rows have unequal heights.
func expandRows(m *Matrix) [][]bool {
	if len(m.RowPixels) == 0 {
		return m.Rows
	}
	var out [][]bool
	for y, row := range m.Rows {
		n := 1
		if y < len(m.RowPixels) {
			n = m.RowPixels[y]
		}
		for i := 0; i < n; i++ {
			out = append(out, row)
		}
	}
	return out
}

// packRow packs a row of booleans into bitsPerPixel-wide palette indices
// (index 1 = dark/foreground, 0 = light/background for monochrome; for
// ULTRA, dark maps to palette index 6 "blacK").
func packRow(row []bool, bitsPerPixel int) []byte {
	bytesLen := (len(row)*bitsPerPixel + 7) / 8
	out := make([]byte, bytesLen)
	for x, dark := range row {
		idx := byte(0)
		if dark {
			if bitsPerPixel == 1 {
				idx = 1
			} else {
				idx = 6 // blacK in ultraPalette
			}
		}
		bitPos := x * bitsPerPixel
		bytePos := bitPos / 8
		shift := 8 - bitsPerPixel - (bitPos % 8)
		out[bytePos] |= idx << uint(shift)
	}
	return out
}

func bgr(c [3]byte) []byte { return []byte{c[2], c[1], c[0]} }

func writeU32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}

func writeI32(buf *bytes.Buffer, v int32) { writeU32(buf, uint32(v)) }

func writeU16(buf *bytes.Buffer, v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	buf.Write(b[:])
}
