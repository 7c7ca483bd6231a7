package chess

import "testing"

func TestColourOpposite(t *testing.T) {
	tests := []struct {
		colour Colour
		want   Colour
	}{
		{White, Black},
		{Black, White},
		{None, None},
	}

	for _, tt := range tests {
		t.Run(tt.colour.String(), func(t *testing.T) {
			if got := tt.colour.Opposite(); got != tt.want {
				t.Errorf("Opposite(%v) = %v, want %v", tt.colour, got, tt.want)
			}
		})
	}
}

func TestPieceTypeLetter(t *testing.T) {
	tests := []struct {
		piece PieceType
		want  byte
	}{
		{Blank, ' '},
		{Pawn, 'P'},
		{Knight, 'N'},
		{Bishop, 'B'},
		{Rook, 'R'},
		{Queen, 'Q'},
		{King, 'K'},
	}

	for _, tt := range tests {
		t.Run(tt.piece.String(), func(t *testing.T) {
			if got := tt.piece.Letter(); got != tt.want {
				t.Errorf("Letter(%v) = %c, want %c", tt.piece, got, tt.want)
			}
		})
	}
}

func TestStringOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"negative piece type", PieceType(-1).String(), "Unknown"},
		{"oversized piece type", PieceType(99).String(), "Unknown"},
		{"negative status", GameStatus(-1).String(), "Invalid"},
		{"oversized status", GameStatus(99).String(), "Invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("String() = %q, want %q", tt.got, tt.want)
			}
		})
	}

	if got := PieceType(-1).Letter(); got != '?' {
		t.Errorf("Letter(-1) = %c, want ?", got)
	}
}

func TestPieceIsBlank(t *testing.T) {
	if !(Piece{}).IsBlank() {
		t.Error("zero Piece should be blank")
	}
	if NewPiece(Pawn, White).IsBlank() {
		t.Error("white pawn should not be blank")
	}
}

func TestPieceString(t *testing.T) {
	if got := NewPiece(Knight, Black).String(); got != "Black Knight" {
		t.Errorf("String() = %q, want %q", got, "Black Knight")
	}
	if got := (Piece{}).String(); got != "Blank" {
		t.Errorf("String() = %q, want %q", got, "Blank")
	}
}

func TestGameStatusTerminal(t *testing.T) {
	tests := []struct {
		status GameStatus
		want   bool
	}{
		{Unknown, false},
		{WaitingForMove, false},
		{WhiteInCheck, false},
		{BlackInCheck, false},
		{CheckmateWhiteWins, true},
		{CheckmateBlackWins, true},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			if got := tt.status.Terminal(); got != tt.want {
				t.Errorf("Terminal(%v) = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestStatusForColour(t *testing.T) {
	if got := CheckStatus(White); got != WhiteInCheck {
		t.Errorf("CheckStatus(White) = %v, want WhiteInCheck", got)
	}
	if got := CheckStatus(Black); got != BlackInCheck {
		t.Errorf("CheckStatus(Black) = %v, want BlackInCheck", got)
	}
	if got := WinStatus(White); got != CheckmateWhiteWins {
		t.Errorf("WinStatus(White) = %v, want CheckmateWhiteWins", got)
	}
	if got := WinStatus(Black); got != CheckmateBlackWins {
		t.Errorf("WinStatus(Black) = %v, want CheckmateBlackWins", got)
	}
}
