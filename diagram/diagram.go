// Package diagram draws boards and move targets as SVG.
package diagram

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"chess-movegen/movegen"
)

const (
	lightSquare = "fill:#f0d9b5"
	darkSquare  = "fill:#b58863"
	targetMark  = "fill:#2e8b57;fill-opacity:0.6"
	labelStyle  = "font-family:sans-serif;fill:#333;text-anchor:middle;dominant-baseline:central"
)

var glyphs = [2][movegen.NumPieceKinds]string{
	{"♙", "♖", "♗", "♘", "♔", "♕"},
	{"♟", "♜", "♝", "♞", "♚", "♛"},
}

type config struct {
	square int
	title  string
	coords bool
}

// Option configures Write.
type Option func(*config)

// WithSquareSize sets the edge length of one square in pixels.
func WithSquareSize(px int) Option {
	return func(c *config) {
		if px > 0 {
			c.square = px
		}
	}
}

// WithTitle sets the SVG title element.
func WithTitle(title string) Option { return func(c *config) { c.title = title } }

// WithoutCoordinates omits the file and rank labels.
func WithoutCoordinates() Option { return func(c *config) { c.coords = false } }

// errWriter keeps the first write error; svgo itself ignores them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

// Write renders b to w, marking every square in highlight with a dot.
func Write(w io.Writer, b *movegen.Board, highlight movegen.Bitboard, opts ...Option) error {
	cfg := config{square: 48, coords: true}
	for _, o := range opts {
		o(&cfg)
	}
	s := cfg.square
	margin := 0
	if cfg.coords {
		margin = s / 2
	}

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(8*s+2*margin, 8*s+2*margin)
	if cfg.title != "" {
		canvas.Title(cfg.title)
	}

	for sq := movegen.Square(0); sq < 64; sq++ {
		x, y := margin+sq.File()*s, margin+sq.Row()*s
		style := lightSquare
		if (sq.File()+sq.Row())%2 == 1 {
			style = darkSquare
		}
		canvas.Rect(x, y, s, s, style)
		if kind, color, ok := b.PieceAt(sq); ok {
			canvas.Text(x+s/2, y+s/2, glyphs[color][kind], fmt.Sprintf("font-size:%dpx;text-anchor:middle;dominant-baseline:central", s*3/4))
		}
		if highlight.Has(sq) {
			canvas.Circle(x+s/2, y+s/2, s/6, targetMark)
		}
	}

	if cfg.coords {
		font := fmt.Sprintf("%s;font-size:%dpx", labelStyle, s/3)
		for i := 0; i < 8; i++ {
			canvas.Text(margin+i*s+s/2, 8*s+margin+margin/2, string(rune('a'+i)), font)
			canvas.Text(margin/2, margin+i*s+s/2, string(rune('8'-i)), font)
		}
	}
	canvas.End()
	return ew.err
}
