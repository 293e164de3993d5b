package movegen

import "strings"

const fileHeader = "  a b c d e f g h\n"

// String draws the board as text, rank 8 first: uppercase for white, lowercase
// for black, '.' for an empty square.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString(fileHeader)
	for row := 0; row < 8; row++ {
		sb.WriteByte('8' - byte(row))
		sb.WriteByte(' ')
		for file := 0; file < 8; file++ {
			if kind, color, ok := b.PieceAt(NewSquare(file, row)); ok {
				sb.WriteByte(kind.Letter(color))
			} else {
				sb.WriteByte('.')
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
