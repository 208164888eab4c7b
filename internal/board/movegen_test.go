package board

import "testing"

func mustParseMove(t *testing.T, s string) Move {
	t.Helper()
	m, err := ParseMove(s)
	if err != nil {
		t.Fatalf("ParseMove(%q): %v", s, err)
	}
	return m
}

func applyUCISequence(t *testing.T, state *State, moves ...string) {
	t.Helper()
	for _, s := range moves {
		state.ApplyMove(mustParseMove(t, s))
	}
}

func TestGenerateStartPositionHas20Moves(t *testing.T) {
	state := NewState()
	got := Generate(&state.Position, White, true)
	if len(got) != 20 {
		t.Errorf("startpos legal moves = %d, want 20", len(got))
	}
}

func TestGenerateAfterE4Has20BlackMoves(t *testing.T) {
	state := NewState()
	applyUCISequence(t, state, "e2e4")
	got := Generate(&state.Position, Black, true)
	if len(got) != 20 {
		t.Errorf("black legal moves after e2e4 = %d, want 20", len(got))
	}
}

func TestGenerateAfterG4E5Has21WhiteMoves(t *testing.T) {
	state := NewState()
	applyUCISequence(t, state, "g2g4", "e7e5")
	got := Generate(&state.Position, White, true)
	if len(got) != 21 {
		t.Errorf("white legal moves after g2g4 e7e5 = %d, want 21", len(got))
	}
}

func TestGeneratedMovesAreLegal(t *testing.T) {
	state := NewState()
	applyUCISequence(t, state, "e2e4", "e7e5", "g1f3", "b8c6")
	for _, color := range []Color{White, Black} {
		for _, m := range Generate(&state.Position, color, true) {
			clone := state.Position.Clone()
			clone.ApplyMove(m)
			if InCheck(&clone, color) {
				t.Errorf("move %s leaves %v king in check", m, color)
			}
		}
	}
}

func TestGenerateNeverCapturesKing(t *testing.T) {
	state := NewState()
	applyUCISequence(t, state, "e2e4", "e7e5", "d1h5", "a7a6", "h5f7")
	for _, m := range Generate(&state.Position, Black, false) {
		if state.Position.PieceAt(m.Destination).Type() == King {
			t.Errorf("pseudo-legal move %s captures a king", m)
		}
	}
}
