package diagram_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"chess-movegen/diagram"
	"chess-movegen/movegen"
)

func TestWriteStartPosition(t *testing.T) {
	b := movegen.MustParseFEN(movegen.FENStartPos)
	targets := movegen.Targets(b, movegen.White, movegen.Knight)

	var buf bytes.Buffer
	if err := diagram.Write(&buf, b, targets, diagram.WithTitle("knights"), diagram.WithSquareSize(40)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "<svg") || !strings.HasSuffix(strings.TrimSpace(out), "</svg>") {
		t.Fatalf("output is not a complete SVG document:\n%s", out)
	}
	if !strings.Contains(out, "<title>knights</title>") {
		t.Errorf("title missing")
	}
	if got := strings.Count(out, "<rect"); got != 64 {
		t.Errorf("%d squares drawn, want 64", got)
	}
	if got := strings.Count(out, "<circle"); got != targets.PopCount() {
		t.Errorf("%d target marks, want %d", got, targets.PopCount())
	}
	if got := strings.Count(out, "♙"); got != 8 {
		t.Errorf("%d white pawns drawn, want 8", got)
	}
	if !strings.Contains(out, `width="360"`) {
		t.Errorf("expected a 360px canvas for 40px squares with coordinates")
	}
}

func TestWriteWithoutCoordinates(t *testing.T) {
	var buf bytes.Buffer
	if err := diagram.Write(&buf, movegen.NewBoard(), 0, diagram.WithoutCoordinates(), diagram.WithSquareSize(10)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !strings.Contains(buf.String(), `width="80"`) {
		t.Errorf("expected an 80px canvas:\n%s", buf.String())
	}
	if strings.Contains(buf.String(), "<text") {
		t.Errorf("empty board without coordinates should have no text")
	}
}

type failingWriter struct{}

var errDiskFull = errors.New("disk full")

func (failingWriter) Write([]byte) (int, error) { return 0, errDiskFull }

func TestWritePropagatesErrors(t *testing.T) {
	err := diagram.Write(failingWriter{}, movegen.NewBoard(), 0)
	if !errors.Is(err, errDiskFull) {
		t.Fatalf("Write error = %v, want errDiskFull", err)
	}
}
