package engine

import "github.com/PortalChess/Chess/chess"

// kingLocation finds the king of the given colour.
func (b *Board) kingLocation(colour chess.Colour) (chess.Location, bool) {
	for _, pp := range b.Pieces() {
		if pp.Piece.Type == chess.King && pp.Piece.Colour == colour {
			return pp.Loc, true
		}
	}
	return chess.Location{}, false
}

// inCheck reports whether colour's king is attacked. A board without that
// king (an unfinished simulation layout) is never in check.
func (b *Board) inCheck(colour chess.Colour) bool {
	kingLoc, ok := b.kingLocation(colour)
	if !ok {
		return false
	}
	return b.attacked(kingLoc, colour.Opposite())
}

// attacked reports whether any of byColour's pieces has an unfiltered
// candidate targeting loc. Every candidate kind counts, Cover included.
func (b *Board) attacked(loc chess.Location, byColour chess.Colour) bool {
	for _, pp := range b.Pieces() {
		if pp.Piece.Colour != byColour {
			continue
		}
		for _, m := range candidateMoves(b, pp.Loc) {
			if m.To == loc {
				return true
			}
		}
	}
	return false
}

// deriveStatus recomputes the game status from occupancy and active colour.
// Both colour pairs are evaluated every time; at most one defender can stand
// in check in a legal position. A checked defender with no legal reply is
// mated and the attacker wins. Construction calls this only once a layout
// is fully populated, so the legality simulations inside the checkmate test
// cannot re-enter it.
func (b *Board) deriveStatus() {
	b.status = chess.WaitingForMove
	for _, attacker := range []chess.Colour{chess.White, chess.Black} {
		defender := attacker.Opposite()
		if !b.inCheck(defender) {
			continue
		}
		if b.Clone().hasAnyLegalMove(defender) {
			b.status = chess.CheckStatus(defender)
		} else {
			b.status = chess.WinStatus(attacker)
		}
	}
}
