package engine

import (
	"testing"

	"github.com/PortalChess/Chess/chess"
)

// mustBoard builds a board from a FEN string, aborting the test on failure.
func mustBoard(t *testing.T, fen string) *Board {
	t.Helper()
	b, err := NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) error: %v", fen, err)
	}
	return b
}

// mustMove plays a coordinate move, aborting the test on rejection.
func mustMove(t *testing.T, b *Board, coords string) chess.MoveResult {
	t.Helper()
	result := b.MoveCoords(coords)
	if !result.Succeeded {
		t.Fatalf("MoveCoords(%q) rejected: %s", coords, result.Reason)
	}
	return result
}

// loc parses a square name for test setup.
func loc(t *testing.T, square string) chess.Location {
	t.Helper()
	l := chess.Loc(int(square[0]-'a')+1, int(square[1]-'1')+1)
	if !l.Valid() {
		t.Fatalf("bad test square %q", square)
	}
	return l
}
