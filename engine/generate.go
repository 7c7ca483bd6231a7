package engine

import "github.com/PortalChess/Chess/chess"

// generator enumerates the candidate moves of one piece type from loc,
// unfiltered for self-check. Every generator emits Cover moves for
// friendly-occupied targets: check detection needs them even though they are
// never playable.
type generator func(b *Board, loc chess.Location, piece chess.Piece) []chess.Move

// generators dispatches on piece type. The piece set is closed, so a table
// of pure functions replaces open-ended subtyping. Blank has no entry and
// generates nothing.
var generators = map[chess.PieceType]generator{
	chess.Pawn:   generatePawn,
	chess.Knight: generateOffsets(knightOffsets),
	chess.Bishop: generateRays(diagonalDirections),
	chess.Rook:   generateRays(straightDirections),
	chess.Queen:  generateRays(queenDirections),
	chess.King:   generateOffsets(kingOffsets),
}

var queenDirections = append(append([]offset{}, diagonalDirections...), straightDirections...)

// candidateMoves enumerates the unfiltered candidates for the piece at loc.
func candidateMoves(b *Board, loc chess.Location) []chess.Move {
	piece := b.at(loc)
	gen, ok := generators[piece.Type]
	if !ok {
		return nil
	}
	return gen(b, loc, piece)
}

// generateOffsets builds a fixed-offset generator (knight, king).
func generateOffsets(offsets []offset) generator {
	return func(b *Board, loc chess.Location, piece chess.Piece) []chess.Move {
		var moves []chess.Move
		for _, to := range applyOffsets(loc, offsets) {
			moves = append(moves, classify(b, loc, to, piece.Colour))
		}
		return moves
	}
}

// generateRays builds a sliding generator (bishop, rook, queen). Each ray
// stops at the first occupied square, inclusive: that square yields a Take
// or Cover, every empty square before it a quiet move.
func generateRays(directions []offset) generator {
	return func(b *Board, loc chess.Location, piece chess.Piece) []chess.Move {
		var moves []chess.Move
		for _, dir := range directions {
			for _, to := range walkRay(loc, dir) {
				m := classify(b, loc, to, piece.Colour)
				moves = append(moves, m)
				if m.Kind != chess.Quiet {
					break
				}
			}
		}
		return moves
	}
}

// classify builds the candidate move for a target square: Quiet when empty,
// Take against an enemy occupant, Cover over a friendly one.
func classify(b *Board, from, to chess.Location, colour chess.Colour) chess.Move {
	move := chess.Move{From: from, To: to}
	switch target := b.at(to); {
	case target.IsBlank():
		move.Kind = chess.Quiet
	case target.Colour == colour:
		move.Kind = chess.Cover
	default:
		move.Kind = chess.Take
	}
	return move
}
