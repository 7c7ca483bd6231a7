// Package notation parses coordinate move text into the engine's move
// values. It sits outside the core state machine: parse failures surface
// here, before a move ever reaches a board.
package notation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PortalChess/Chess/chess"
)

// ErrBadCoordinate indicates text that does not name a board square or a
// square pair.
var ErrBadCoordinate = errors.New("bad coordinate")

// ParseSquare converts algebraic square text such as "e2" to a Location.
func ParseSquare(s string) (chess.Location, error) {
	lower := strings.ToLower(strings.TrimSpace(s))
	if len(lower) != 2 {
		return chess.Location{}, fmt.Errorf("square %q: %w", s, ErrBadCoordinate)
	}
	loc := chess.Loc(int(lower[0]-'a')+1, int(lower[1]-'1')+1)
	if !loc.Valid() {
		return chess.Location{}, fmt.Errorf("square %q: %w", s, ErrBadCoordinate)
	}
	return loc, nil
}

// ParseMove converts a from-to coordinate pair such as "e2e4" (separators
// " ", "-" and "x" are tolerated) into a move request. Only the endpoints
// are filled in; the board resolves the kind and flags during validation.
func ParseMove(s string) (chess.Move, error) {
	coords := strings.NewReplacer(" ", "", "-", "", "x", "").Replace(strings.ToLower(strings.TrimSpace(s)))
	if len(coords) != 4 {
		return chess.Move{}, fmt.Errorf("move %q: %w", s, ErrBadCoordinate)
	}
	from, err := ParseSquare(coords[:2])
	if err != nil {
		return chess.Move{}, fmt.Errorf("move %q: %w", s, ErrBadCoordinate)
	}
	to, err := ParseSquare(coords[2:])
	if err != nil {
		return chess.Move{}, fmt.Errorf("move %q: %w", s, ErrBadCoordinate)
	}
	return chess.Move{From: from, To: to}, nil
}
