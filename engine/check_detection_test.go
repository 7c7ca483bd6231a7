package engine

import (
	"testing"

	"github.com/PortalChess/Chess/chess"
)

func TestInCheck(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		colour chess.Colour
		want   bool
	}{
		{"start position, white", InitialFEN, chess.White, false},
		{"start position, black", InitialFEN, chess.Black, false},
		{"queen adjacent to white king", "4k3/8/8/8/8/8/4q3/4K3 w - - 0 1", chess.White, true},
		{"same position, black king safe", "4k3/8/8/8/8/8/4q3/4K3 w - - 0 1", chess.Black, false},
		{"rook on an open file", "4k3/8/8/8/4r3/8/8/4K3 w - - 0 1", chess.White, true},
		{"rook blocked by a friendly knight", "4k3/8/8/8/4r3/8/4N3/4K3 w - - 0 1", chess.White, false},
		{"knight check ignores blockers", "4k3/8/8/8/8/3n4/3PPP2/4K3 w - - 0 1", chess.White, true},
		{"pawn checks diagonally", "4k3/8/8/8/8/8/3p4/4K3 w - - 0 1", chess.White, true},
		{"pawn does not check straight ahead", "4k3/8/8/8/8/8/4p3/4K3 w - - 0 1", chess.White, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustBoard(t, tt.fen)
			if got := b.inCheck(tt.colour); got != tt.want {
				t.Errorf("inCheck(%v) = %v, want %v", tt.colour, got, tt.want)
			}
		})
	}
}

func TestKingLocation(t *testing.T) {
	b := NewStandardBoard()

	white, ok := b.kingLocation(chess.White)
	if !ok || white != chess.Loc(5, 1) {
		t.Errorf("white king at %v, want e1", white)
	}
	black, ok := b.kingLocation(chess.Black)
	if !ok || black != chess.Loc(5, 8) {
		t.Errorf("black king at %v, want e8", black)
	}
}

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want chess.GameStatus
	}{
		{"start position", InitialFEN, chess.WaitingForMove},
		{"white in check with escapes", "4k3/8/8/8/8/8/4q3/4K3 w - - 0 1", chess.WhiteInCheck},
		{"black in check with escapes", "4K3/8/8/8/8/8/4Q3/4k3 b - - 0 1", chess.BlackInCheck},
		{"fool's mate", "rnb1kbnr/pppp1ppp/4p3/8/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 0 3", chess.CheckmateBlackWins},
		{"scholar's mate", "r1bqkb1r/pppp1Qpp/2n2n2/4p3/2B1P3/8/PPPP1PPP/RNB1K1NR b KQkq - 0 4", chess.CheckmateWhiteWins},
		{"back-rank mate", "R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1", chess.CheckmateWhiteWins},
		{"supported queen mate", "4k3/8/8/8/8/5b2/6q1/7K w - - 0 1", chess.CheckmateBlackWins},
		// The status model has no draw variants, so a stalemate stays at
		// WaitingForMove.
		{"stalemate", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", chess.WaitingForMove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustBoard(t, tt.fen)
			if got := b.Status(); got != tt.want {
				t.Errorf("Status() = %v, want %v", got, tt.want)
			}
		})
	}
}
