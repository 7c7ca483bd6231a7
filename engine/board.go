// Package engine implements the chess rules core: board state, legal-move
// enumeration, move application and game status derivation.
package engine

import (
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"

	"github.com/PortalChess/Chess/chess"
	"github.com/PortalChess/Chess/notation"
)

// Board owns the 64 squares, the active colour and the derived game status.
// All occupancy mutation after construction goes through the move handler in
// apply.go; every speculative calculation runs on a throwaway Clone.
type Board struct {
	// squares is indexed by chess.Location.Index(). Every entry holds a
	// real piece or the blank placeholder; there are no absent squares.
	squares [chess.BoardSize * chess.BoardSize]chess.Piece

	active chess.Colour
	status chess.GameStatus

	// epTarget is the square a pawn skipped with its last double step, or
	// the zero Location when no en-passant capture is available.
	epTarget chess.Location

	id    string
	instr Instrumentation
}

// Option configures a board under construction.
type Option func(*Board)

// WithInstrumentation injects a construction-event sink. The default sink
// discards events.
func WithInstrumentation(instr Instrumentation) Option {
	return func(b *Board) {
		if instr != nil {
			b.instr = instr
		}
	}
}

// newBoard allocates a blank board without deriving status. Construction is
// two-phase: populate occupancy first, then finalize derives the status once
// the layout is complete. Status derivation can therefore never observe a
// half-built board.
func newBoard(active chess.Colour, opts ...Option) *Board {
	b := &Board{
		active: active,
		status: chess.Unknown,
		id:     uuid.NewString(),
		instr:  nopInstrumentation{},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// finalize derives the game status for a fully populated board and fires the
// construction event.
func (b *Board) finalize(layout string) {
	b.deriveStatus()
	b.constructed(layout)
}

func (b *Board) constructed(layout string) {
	b.instr.BoardConstructed(ConstructionEvent{
		BoardID: b.id,
		Layout:  layout,
		Pieces:  len(b.Pieces()),
		Active:  b.active,
		Status:  b.status,
	})
}

// NewStandardBoard creates a fresh game in the canonical starting layout,
// White to move.
func NewStandardBoard(opts ...Option) *Board {
	b := newBoard(chess.White, opts...)
	backRank := []chess.PieceType{
		chess.Rook, chess.Knight, chess.Bishop, chess.Queen,
		chess.King, chess.Bishop, chess.Knight, chess.Rook,
	}
	for file := 1; file <= chess.BoardSize; file++ {
		b.set(chess.Loc(file, 1), chess.NewPiece(backRank[file-1], chess.White))
		b.set(chess.Loc(file, 2), chess.NewPiece(chess.Pawn, chess.White))
		b.set(chess.Loc(file, 7), chess.NewPiece(chess.Pawn, chess.Black))
		b.set(chess.Loc(file, 8), chess.NewPiece(backRank[file-1], chess.Black))
	}
	b.finalize("standard")
	return b
}

// NewEmptyBoard creates a board with no pieces and no active colour. Its
// status stays Unknown; it is a building block for tests and simulations,
// not a playable game.
func NewEmptyBoard(opts ...Option) *Board {
	b := newBoard(chess.None, opts...)
	b.constructed("empty")
	return b
}

// NewBoardFromPieces creates a board from an explicit layout and active
// colour. It fails if any placement is off the board, two pieces share a
// square, or either king is absent; a failed construction never yields a
// usable board.
func NewBoardFromPieces(pieces []chess.PlacedPiece, active chess.Colour, opts ...Option) (*Board, error) {
	b, err := newPopulatedBoard(pieces, active, opts...)
	if err != nil {
		return nil, err
	}
	b.finalize("custom")
	return b, nil
}

// newPopulatedBoard runs the populate phase of construction: it places and
// validates the layout but does not derive status.
func newPopulatedBoard(pieces []chess.PlacedPiece, active chess.Colour, opts ...Option) (*Board, error) {
	b := newBoard(active, opts...)
	for _, pp := range pieces {
		if !pp.Loc.Valid() {
			return nil, fmt.Errorf("%s off the board at %s: %w", pp.Piece, pp.Loc, ErrInvalidPlacement)
		}
		if pp.Piece.IsBlank() {
			continue
		}
		if !b.at(pp.Loc).IsBlank() {
			return nil, fmt.Errorf("two pieces at %s: %w", pp.Loc, ErrInvalidPlacement)
		}
		b.set(pp.Loc, pp.Piece)
	}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if _, ok := b.kingLocation(colour); !ok {
			return nil, fmt.Errorf("no %s king: %w", colour, ErrMissingKing)
		}
	}
	return b, nil
}

// At returns the piece at loc. Indexing a location off the board is a
// programming error and panics.
func (b *Board) At(loc chess.Location) chess.Piece {
	return b.at(loc)
}

func (b *Board) at(loc chess.Location) chess.Piece {
	if !loc.Valid() {
		panic(fmt.Sprintf("engine: location %s is off the board", loc))
	}
	return b.squares[loc.Index()]
}

// set writes a square directly. Write access is restricted to construction
// and the move handler; embedders change occupancy only through Move.
func (b *Board) set(loc chess.Location, p chess.Piece) {
	if !loc.Valid() {
		panic(fmt.Sprintf("engine: location %s is off the board", loc))
	}
	b.squares[loc.Index()] = p
}

// Pieces enumerates every occupied square, skipping blanks.
func (b *Board) Pieces() []chess.PlacedPiece {
	var pieces []chess.PlacedPiece
	for i, p := range b.squares {
		if !p.IsBlank() {
			pieces = append(pieces, chess.PlacedPiece{Loc: chess.LocationFromIndex(i), Piece: p})
		}
	}
	return pieces
}

// ActiveColour returns the colour to move.
func (b *Board) ActiveColour() chess.Colour { return b.active }

// Status returns the current derived game status.
func (b *Board) Status() chess.GameStatus { return b.status }

// ID returns the board's construction identity. Clones share the identity
// of the board they simulate.
func (b *Board) ID() string { return b.id }

// Clone produces an independent board with the same piece layout and active
// colour. The squares array copies by value, so mutations on the clone never
// reach the source.
func (b *Board) Clone() *Board {
	clone := *b
	clone.constructed("clone")
	return &clone
}

// Move validates and applies a move request, then re-derives the game
// status and passes the turn. Rejections come back through the result value
// and leave the board untouched. Requests only need From and To; the
// matched legal move supplies the kind and flags.
func (b *Board) Move(req chess.Move) chess.MoveResult {
	if b.status.Terminal() {
		return rejected(req, chess.ReasonGameOver)
	}
	if !req.From.Valid() || !req.To.Valid() {
		return rejected(req, chess.ReasonInvalidMove)
	}
	piece := b.at(req.From)
	if piece.IsBlank() {
		return rejected(req, chess.ReasonInvalidMove)
	}
	if b.active != chess.None && piece.Colour != b.active {
		return rejected(req, chess.ReasonIncorrectPlayer)
	}
	move, ok := b.findLegal(req)
	if !ok {
		return rejected(req, chess.ReasonInvalidMove)
	}

	b.applyMove(move)
	b.active = b.active.Opposite()
	b.deriveStatus()
	return chess.MoveResult{Succeeded: true, Move: move}
}

// findLegal matches the request against the legality-filtered moves from its
// origin square.
func (b *Board) findLegal(req chess.Move) (chess.Move, bool) {
	for _, m := range b.legalMoves(req.From) {
		if m.To == req.To {
			return m, true
		}
	}
	return chess.Move{}, false
}

// MoveCoords is the adapter-friendly overload of Move: it accepts a
// coordinate pair such as "e2e4" and feeds the parsed request through Move.
func (b *Board) MoveCoords(coords string) chess.MoveResult {
	move, err := notation.ParseMove(coords)
	if err != nil {
		return rejected(chess.Move{}, err.Error())
	}
	return b.Move(move)
}

// MovesFor enumerates the playable legality-filtered moves from loc, sorted
// by destination so repeated calls on an unchanged board compare equal.
// Cover moves never appear; they are check bookkeeping, not playable moves.
func (b *Board) MovesFor(loc chess.Location) []chess.Move {
	moves := b.legalMoves(loc)
	slices.SortFunc(moves, func(a, other chess.Move) int {
		if d := a.To.Index() - other.To.Index(); d != 0 {
			return d
		}
		return int(a.Kind) - int(other.Kind)
	})
	return moves
}

func rejected(move chess.Move, reason string) chess.MoveResult {
	return chess.MoveResult{Reason: reason, Move: move}
}
