package engine

import "github.com/PortalChess/Chess/chess"

// legalMoves applies the self-check filter to the candidates from loc.
// Cover candidates drop out first: they are never playable, so they are
// neither filtered nor offered. Each surviving candidate is simulated on a
// throwaway clone; a move that leaves the mover's own king attacked is
// discarded.
func (b *Board) legalMoves(loc chess.Location) []chess.Move {
	piece := b.at(loc)
	if piece.IsBlank() {
		return nil
	}
	var legal []chess.Move
	for _, m := range candidateMoves(b, loc) {
		if m.Kind == chess.Cover {
			continue
		}
		if b.leavesKingAttacked(m, piece.Colour) {
			continue
		}
		legal = append(legal, m)
	}
	return legal
}

// leavesKingAttacked simulates m on a private clone and reports whether the
// mover's king ends up attacked. The simulation touches occupancy only and
// never re-derives status, which keeps the legality check non-recursive.
// The clone is discarded afterwards; it is never linked back into the live
// game.
func (b *Board) leavesKingAttacked(m chess.Move, mover chess.Colour) bool {
	clone := b.Clone()
	clone.applyMove(m)
	return clone.inCheck(mover)
}

// hasAnyLegalMove reports whether colour has at least one legal move,
// stopping at the first candidate that survives the self-check filter. The
// checkmate test runs it on a clone of the live board.
func (b *Board) hasAnyLegalMove(colour chess.Colour) bool {
	for _, pp := range b.Pieces() {
		if pp.Piece.Colour != colour {
			continue
		}
		for _, m := range candidateMoves(b, pp.Loc) {
			if m.Kind == chess.Cover {
				continue
			}
			if !b.leavesKingAttacked(m, colour) {
				return true
			}
		}
	}
	return false
}
