package engine

import "errors"

// Sentinel errors for board construction failures. Use errors.Is to check
// for them through wrapped context. Move rejections are never errors; they
// travel through chess.MoveResult.
var (
	// ErrMissingKing indicates a custom layout without both kings.
	ErrMissingKing = errors.New("board is missing a king")

	// ErrInvalidPlacement indicates an off-board or doubly-occupied square
	// in a custom layout.
	ErrInvalidPlacement = errors.New("invalid piece placement")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")
)
