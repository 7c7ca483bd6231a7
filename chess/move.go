package chess

// MoveKind classifies a candidate move by its destination occupancy.
type MoveKind int

const (
	// Quiet moves onto an empty square.
	Quiet MoveKind = iota

	// Take captures an enemy piece on the destination square.
	Take

	// Cover targets a friendly-occupied square. Cover moves are never
	// playable; they exist so check detection can see defended squares.
	Cover
)

// String returns the string representation of a move kind.
func (k MoveKind) String() string {
	switch k {
	case Take:
		return "Take"
	case Cover:
		return "Cover"
	default:
		return "Move"
	}
}

// Move is a candidate or played move between two squares. Move requests only
// need From and To; the board fills in the kind and flags during validation.
type Move struct {
	From Location
	To   Location
	Kind MoveKind

	// Promotion marks a pawn reaching the farthest rank; the move handler
	// promotes it to a queen on application.
	Promotion bool

	// EnPassant marks a pawn capture onto the board's en-passant target
	// square; the captured pawn does not stand on To.
	EnPassant bool
}

// String returns the coordinate representation of a move, e.g. "e2e4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// Rejection reasons reported through MoveResult.
const (
	ReasonGameOver        = "game already decided"
	ReasonIncorrectPlayer = "incorrect player"
	ReasonInvalidMove     = "invalid move"
)

// MoveResult reports the outcome of a move request. Rejections come back as
// values, never as errors: Reason carries the cause and Move the offending
// request.
type MoveResult struct {
	Succeeded bool
	Reason    string
	Move      Move
}
