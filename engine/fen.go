package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/PortalChess/Chess/chess"
	"github.com/PortalChess/Chess/notation"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// pieceFromFENChar converts a FEN letter to a piece type, Blank when the
// letter is not a piece.
func pieceFromFENChar(c rune) chess.PieceType {
	switch unicode.ToUpper(c) {
	case 'K':
		return chess.King
	case 'Q':
		return chess.Queen
	case 'R':
		return chess.Rook
	case 'N':
		return chess.Knight
	case 'B':
		return chess.Bishop
	case 'P':
		return chess.Pawn
	default:
		return chess.Blank
	}
}

// NewBoardFromFEN builds a validated board from the placement, side-to-move
// and en-passant fields of a FEN string. Castling and clock fields are
// accepted and ignored: the core models neither. The construction rules of
// NewBoardFromPieces apply, so both kings must be present.
func NewBoardFromFEN(fen string, opts ...Option) (*Board, error) {
	parts := strings.Fields(fen)
	if len(parts) == 0 {
		return nil, fmt.Errorf("empty FEN string: %w", ErrInvalidFEN)
	}

	pieces, err := parsePlacement(parts[0])
	if err != nil {
		return nil, err
	}

	active := chess.White
	if len(parts) >= 2 {
		switch parts[1] {
		case "w":
			active = chess.White
		case "b":
			active = chess.Black
		default:
			return nil, fmt.Errorf("side to move %q: %w", parts[1], ErrInvalidFEN)
		}
	}

	b, err := newPopulatedBoard(pieces, active, opts...)
	if err != nil {
		return nil, err
	}

	if len(parts) >= 4 && parts[3] != "-" {
		ep, err := notation.ParseSquare(parts[3])
		if err != nil {
			return nil, fmt.Errorf("en passant square %q: %w", parts[3], ErrInvalidFEN)
		}
		b.epTarget = ep
	}

	b.finalize("fen")
	return b, nil
}

// parsePlacement parses the piece placement field of a FEN string into a
// placed-piece list.
func parsePlacement(placement string) ([]chess.PlacedPiece, error) {
	var pieces []chess.PlacedPiece
	rank := chess.BoardSize
	file := 1

	for _, c := range placement {
		switch {
		case c == '/':
			rank--
			file = 1
		case c >= '1' && c <= '8':
			file += int(c - '0')
		default:
			t := pieceFromFENChar(c)
			if t == chess.Blank {
				return nil, fmt.Errorf("piece character %q: %w", c, ErrInvalidFEN)
			}
			if file > chess.BoardSize || rank < 1 {
				return nil, fmt.Errorf("placement overruns the board: %w", ErrInvalidFEN)
			}
			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}
			pieces = append(pieces, chess.PlacedPiece{
				Loc:   chess.Loc(file, rank),
				Piece: chess.NewPiece(t, colour),
			})
			file++
		}
	}
	return pieces, nil
}

// FEN renders the board's placement, side to move and en-passant fields.
// The castling field is emitted as "-" and the clocks as "0 1": the core
// tracks neither.
func (b *Board) FEN() string {
	var sb strings.Builder

	for rank := chess.BoardSize; rank >= 1; rank-- {
		empty := 0
		for file := 1; file <= chess.BoardSize; file++ {
			p := b.at(chess.Loc(file, rank))
			if p.IsBlank() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			letter := p.Type.Letter()
			if p.Colour == chess.Black {
				letter = byte(unicode.ToLower(rune(letter)))
			}
			sb.WriteByte(letter)
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 1 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if b.active == chess.Black {
		sb.WriteByte('b')
	} else {
		sb.WriteByte('w')
	}

	sb.WriteString(" - ")
	if b.epTarget.Valid() {
		sb.WriteString(b.epTarget.String())
	} else {
		sb.WriteByte('-')
	}
	sb.WriteString(" 0 1")

	return sb.String()
}
