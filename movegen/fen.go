package movegen

import (
	"fmt"
	"strconv"
	"strings"
)

// FENStartPos is the FEN string for the standard initial chess position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN parses a FEN string into a new Board. The half-move clock and
// full-move number are optional and default to 0 and 1.
func ParseFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 || len(fields) > 6 {
		return nil, fmt.Errorf("%d fields, want 4 to 6: %w", len(fields), ErrInvalidFEN)
	}

	b := NewBoard()
	if err := parsePlacement(b, fields[0]); err != nil {
		return nil, err
	}

	st := GameState{EnPassant: NoSquare, FullMoves: 1}
	switch fields[1] {
	case "w":
		st.ActiveColor = White
	case "b":
		st.ActiveColor = Black
	default:
		return nil, fmt.Errorf("side to move %q: %w", fields[1], ErrInvalidFEN)
	}

	castling, err := parseCastling(fields[2])
	if err != nil {
		return nil, err
	}
	st.Castling = castling

	if fields[3] != "-" {
		ep, err := ParseSquare(fields[3])
		if err != nil {
			return nil, fmt.Errorf("en passant %q: %w", fields[3], ErrInvalidFEN)
		}
		st.EnPassant = ep
	}

	if len(fields) > 4 {
		if st.HalfMoves, err = parseCounter("halfmove clock", fields[4]); err != nil {
			return nil, err
		}
	}
	if len(fields) > 5 {
		if st.FullMoves, err = parseCounter("fullmove number", fields[5]); err != nil {
			return nil, err
		}
	}

	b.SetState(st)
	return b, nil
}

// MustParseFEN is ParseFEN that panics on error, for fixtures and tests.
func MustParseFEN(fen string) *Board {
	b, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return b
}

func parsePlacement(b *Board, placement string) error {
	rows := strings.Split(placement, "/")
	if len(rows) != 8 {
		return fmt.Errorf("%d ranks, want 8: %w", len(rows), ErrInvalidFEN)
	}
	for row, desc := range rows {
		file := 0
		for i := 0; i < len(desc); i++ {
			ch := desc[i]
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			kind, color, ok := pieceFromLetter(ch)
			if !ok {
				return fmt.Errorf("unknown piece %q: %w", ch, ErrInvalidFEN)
			}
			if file >= 8 {
				return fmt.Errorf("rank %d overflows: %w", 8-row, ErrInvalidFEN)
			}
			if err := b.PlacePiece(kind, color, NewSquare(file, row)); err != nil {
				return fmt.Errorf("%v: %w", err, ErrInvalidFEN)
			}
			file++
		}
		if file != 8 {
			return fmt.Errorf("rank %d has %d files: %w", 8-row, file, ErrInvalidFEN)
		}
	}
	return nil
}

func parseCastling(s string) (Castling, error) {
	var c Castling
	if s == "-" {
		return c, nil
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'K':
			c.WhiteKingSide = true
		case 'Q':
			c.WhiteQueenSide = true
		case 'k':
			c.BlackKingSide = true
		case 'q':
			c.BlackQueenSide = true
		default:
			return c, fmt.Errorf("castling %q: %w", s, ErrInvalidFEN)
		}
	}
	return c, nil
}

func parseCounter(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s %q: %w", name, s, ErrInvalidFEN)
	}
	return n, nil
}

// FEN returns the board in Forsyth-Edwards Notation.
func (b *Board) FEN() string {
	var sb strings.Builder

	for row := 0; row < 8; row++ {
		empty := 0
		for file := 0; file < 8; file++ {
			kind, color, ok := b.PieceAt(NewSquare(file, row))
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteByte(kind.Letter(color))
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if row < 7 {
			sb.WriteByte('/')
		}
	}

	st := b.state
	if st.ActiveColor == White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}

	if !st.Castling.Any() {
		sb.WriteByte('-')
	} else {
		if st.Castling.WhiteKingSide {
			sb.WriteByte('K')
		}
		if st.Castling.WhiteQueenSide {
			sb.WriteByte('Q')
		}
		if st.Castling.BlackKingSide {
			sb.WriteByte('k')
		}
		if st.Castling.BlackQueenSide {
			sb.WriteByte('q')
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(st.EnPassant.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(st.HalfMoves))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(st.FullMoves))
	return sb.String()
}
