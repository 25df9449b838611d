package render

import "strings"

// TXT renders a Matrix as a plain-text module dump: one line per row, one
// '1' (dark) or '0' (light) character per module, each line ending in a
// newline. Modules are not packed into hex nibbles.
type TXT struct{}

func (TXT) Render(m *Matrix) ([]byte, error) {
	var sb strings.Builder
	for _, row := range m.Rows {
		for _, dark := range row {
			if dark {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteByte('\n')
	}
	return []byte(sb.String()), nil
}
