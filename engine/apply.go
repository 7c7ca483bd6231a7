package engine

import "github.com/PortalChess/Chess/chess"

// applyMove is the move handler: the only occupancy mutation path into a
// board after construction. The move must already have passed validation.
// It relocates the piece, marks it moved, resolves the promotion and
// en-passant refinements, and maintains the en-passant target square for
// the next move's pawn generation.
func (b *Board) applyMove(m chess.Move) {
	piece := b.at(m.From)
	b.set(m.From, chess.Piece{})

	if m.EnPassant {
		// The captured pawn stands beside the destination, not on it.
		b.set(chess.Loc(m.To.File, m.From.Rank), chess.Piece{})
	}

	doubleStep := piece.Type == chess.Pawn && abs(m.To.Rank-m.From.Rank) == 2

	if m.Promotion {
		piece.Type = chess.Queen
	}
	piece.Moved = true
	b.set(m.To, piece)

	b.epTarget = chess.Location{}
	if doubleStep {
		b.epTarget = chess.Loc(m.From.File, (m.From.Rank+m.To.Rank)/2)
	}
}
