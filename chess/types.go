// Package chess provides the core value types for the rules engine:
// colours, piece types, board locations, moves and game status.
package chess

// Colour identifies the owner of a piece. The zero value None marks blank
// squares; a board whose active colour is None accepts moves from either
// side, which the engine uses for simulation copies.
type Colour int

const (
	None Colour = iota
	White
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "None"
	}
}

// Opposite returns the opposing colour. None has no opponent and maps to
// itself.
func (c Colour) Opposite() Colour {
	switch c {
	case White:
		return Black
	case Black:
		return White
	default:
		return None
	}
}

// PieceType enumerates the chess piece kinds. The zero value Blank marks an
// unoccupied square; every square always holds a piece value, never an
// absent entry.
type PieceType int

const (
	Blank PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece type.
func (t PieceType) String() string {
	names := []string{"Blank", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if t >= 0 && int(t) < len(names) {
		return names[t]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type
// (uppercase, ' ' for Blank).
func (t PieceType) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if t >= 0 && int(t) < len(letters) {
		return letters[t]
	}
	return '?'
}

// Piece is a coloured piece occupying a square. The zero value is the blank
// placeholder. Moved records whether the piece has moved since construction;
// the move handler maintains it.
type Piece struct {
	Type   PieceType
	Colour Colour
	Moved  bool
}

// NewPiece creates an unmoved piece.
func NewPiece(t PieceType, c Colour) Piece {
	return Piece{Type: t, Colour: c}
}

// IsBlank reports whether the piece is the blank placeholder.
func (p Piece) IsBlank() bool {
	return p.Type == Blank
}

// String returns the string representation of a piece, e.g. "White Pawn".
func (p Piece) String() string {
	if p.IsBlank() {
		return "Blank"
	}
	return p.Colour.String() + " " + p.Type.String()
}

// GameStatus is the derived state of a game. It is a pure function of board
// occupancy and active colour; only the board's status re-derivation step
// assigns it.
type GameStatus int

const (
	Unknown GameStatus = iota
	WaitingForMove
	WhiteInCheck
	BlackInCheck
	CheckmateWhiteWins
	CheckmateBlackWins
)

// String returns the string representation of a game status.
func (s GameStatus) String() string {
	names := []string{
		"Unknown",
		"WaitingForMove",
		"WhiteInCheck",
		"BlackInCheck",
		"CheckmateWhiteWins",
		"CheckmateBlackWins",
	}
	if s >= 0 && int(s) < len(names) {
		return names[s]
	}
	return "Invalid"
}

// Terminal reports whether the game is over. No further move is accepted
// once a terminal status is reached.
func (s GameStatus) Terminal() bool {
	return s == CheckmateWhiteWins || s == CheckmateBlackWins
}

// CheckStatus returns the status marking colour's king as in check.
func CheckStatus(colour Colour) GameStatus {
	if colour == White {
		return WhiteInCheck
	}
	return BlackInCheck
}

// WinStatus returns the checkmate status naming winner as the winning side.
func WinStatus(winner Colour) GameStatus {
	if winner == White {
		return CheckmateWhiteWins
	}
	return CheckmateBlackWins
}
