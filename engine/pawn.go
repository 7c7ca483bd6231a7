package engine

import "github.com/PortalChess/Chess/chess"

func pawnDirection(colour chess.Colour) int {
	if colour == chess.White {
		return 1
	}
	return -1
}

func pawnStartRank(colour chess.Colour) int {
	if colour == chess.White {
		return 2
	}
	return 7
}

func pawnLastRank(colour chess.Colour) int {
	if colour == chess.White {
		return chess.BoardSize
	}
	return 1
}

// pawnEnPassantRank is the rank a pawn of the given colour captures onto en
// passant: the skipped square behind an enemy double step. Scoping the
// capture to this rank keeps the board's target square from being offered to
// the side that just double-stepped.
func pawnEnPassantRank(colour chess.Colour) int {
	if colour == chess.White {
		return 6
	}
	return 3
}

// generatePawn enumerates pawn candidates: forward one onto an empty square,
// forward two from the start rank when both squares are empty, and the two
// forward diagonals as Take (enemy occupant or the en-passant target) or
// Cover (friendly occupant). Any candidate landing on the farthest rank
// carries the promotion flag.
func generatePawn(b *Board, loc chess.Location, piece chess.Piece) []chess.Move {
	var moves []chess.Move
	dir := pawnDirection(piece.Colour)

	add := func(m chess.Move) {
		m.Promotion = m.To.Rank == pawnLastRank(piece.Colour)
		moves = append(moves, m)
	}

	// Forward moves never capture.
	if one := loc.Offset(0, dir); one.Valid() && b.at(one).IsBlank() {
		add(chess.Move{From: loc, To: one, Kind: chess.Quiet})
		if loc.Rank == pawnStartRank(piece.Colour) {
			if two := loc.Offset(0, 2*dir); two.Valid() && b.at(two).IsBlank() {
				add(chess.Move{From: loc, To: two, Kind: chess.Quiet})
			}
		}
	}

	// Diagonals capture or cover; an empty diagonal is no move at all
	// unless it is the en-passant target.
	for _, df := range []int{-1, 1} {
		to := loc.Offset(df, dir)
		if !to.Valid() {
			continue
		}
		switch target := b.at(to); {
		case target.IsBlank():
			if to == b.epTarget && to.Rank == pawnEnPassantRank(piece.Colour) {
				add(chess.Move{From: loc, To: to, Kind: chess.Take, EnPassant: true})
			}
		case target.Colour == piece.Colour:
			add(chess.Move{From: loc, To: to, Kind: chess.Cover})
		default:
			add(chess.Move{From: loc, To: to, Kind: chess.Take})
		}
	}

	return moves
}
