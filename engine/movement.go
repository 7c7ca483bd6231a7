package engine

import "github.com/PortalChess/Chess/chess"

// offset is a fixed file/rank displacement.
type offset struct {
	df, dr int
}

var (
	knightOffsets = []offset{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = []offset{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}

	diagonalDirections = []offset{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirections = []offset{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// applyOffsets is the movement transformation for fixed-pattern pieces: it
// displaces loc by every offset and clips the results to the board. It is
// pure and knows nothing about occupancy.
func applyOffsets(loc chess.Location, offsets []offset) []chess.Location {
	targets := make([]chess.Location, 0, len(offsets))
	for _, o := range offsets {
		if t := loc.Offset(o.df, o.dr); t.Valid() {
			targets = append(targets, t)
		}
	}
	return targets
}

// walkRay is the movement transformation for sliding pieces: successive
// steps from loc along dir until the board edge. Occupancy along the ray is
// the generator's concern, not the transformation's.
func walkRay(loc chess.Location, dir offset) []chess.Location {
	var targets []chess.Location
	for t := loc.Offset(dir.df, dir.dr); t.Valid(); t = t.Offset(dir.df, dir.dr) {
		targets = append(targets, t)
	}
	return targets
}
