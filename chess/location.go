package chess

import "fmt"

// BoardSize is the number of files and ranks.
const BoardSize = 8

// Location identifies a board square by file (1..8, printed a..h) and rank
// (1..8). It is an immutable value; equality is by value.
type Location struct {
	File int
	Rank int
}

// Loc is shorthand for constructing a Location.
func Loc(file, rank int) Location {
	return Location{File: file, Rank: rank}
}

// Valid reports whether the location lies on the board.
func (l Location) Valid() bool {
	return l.File >= 1 && l.File <= BoardSize && l.Rank >= 1 && l.Rank <= BoardSize
}

// Offset returns the location displaced by the given file and rank deltas.
// The result may lie off the board; callers clip with Valid.
func (l Location) Offset(df, dr int) Location {
	return Location{File: l.File + df, Rank: l.Rank + dr}
}

// Index maps the location onto a flat 64-square array, rank-major from a1.
func (l Location) Index() int {
	return (l.Rank-1)*BoardSize + l.File - 1
}

// LocationFromIndex is the inverse of Index.
func LocationFromIndex(i int) Location {
	return Location{File: i%BoardSize + 1, Rank: i/BoardSize + 1}
}

// String returns the algebraic square name, e.g. "e4". Off-board locations
// render as their raw coordinates.
func (l Location) String() string {
	if !l.Valid() {
		return fmt.Sprintf("(%d,%d)", l.File, l.Rank)
	}
	return fmt.Sprintf("%c%d", 'a'+l.File-1, l.Rank)
}

// PlacedPiece pairs a piece with the square it stands on.
type PlacedPiece struct {
	Loc   Location
	Piece Piece
}
