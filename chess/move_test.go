package chess

import "testing"

func TestMoveKindString(t *testing.T) {
	tests := []struct {
		kind MoveKind
		want string
	}{
		{Quiet, "Move"},
		{Take, "Take"},
		{Cover, "Cover"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("String(%d) = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestMoveString(t *testing.T) {
	m := Move{From: Loc(5, 2), To: Loc(5, 4)}
	if got := m.String(); got != "e2e4" {
		t.Errorf("String() = %q, want %q", got, "e2e4")
	}
}
