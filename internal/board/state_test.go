package board

import "testing"

func TestMateScenario(t *testing.T) {
	state, err := ParseFEN("2b1kr2/4Qp2/8/pP1Np2p/3P4/3BP3/PP3PPP/R3K2R b KQ - 1 19")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if moves := Generate(&state.Position, Black, true); len(moves) != 0 {
		t.Fatalf("expected no legal moves, got %d", len(moves))
	}
	if !InCheck(&state.Position, Black) {
		t.Fatalf("expected black to be in check")
	}
	status := state.Status()
	if status.Kind != Checkmate || status.Winner != White {
		t.Errorf("status = %+v, want Checkmate/White", status)
	}
}

func TestRepetitionDraw(t *testing.T) {
	state := NewState()
	applyUCISequence(t, state,
		"b1c3", "b8c6", "c3b1", "c6b8",
		"b1c3", "b8c6", "c3b1", "c6b8",
	)
	status := state.Status()
	if status.Kind != DrawRepetition {
		t.Errorf("status = %+v, want DrawRepetition", status)
	}
}

func TestStalemateIsDrawNotVictory(t *testing.T) {
	// King on a1 with the black queen on b3 covering a2, b1 and b2: no
	// legal move, but no check.
	state, err := ParseFEN("7k/8/8/8/8/1q6/8/K7 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if moves := Generate(&state.Position, White, true); len(moves) != 0 {
		t.Fatalf("expected stalemate position to have no legal moves, got %d", len(moves))
	}
	if InCheck(&state.Position, White) {
		t.Fatalf("expected white not to be in check in this stalemate position")
	}
	status := state.Status()
	if status.Kind != Stalemate {
		t.Errorf("status = %+v, want Stalemate", status)
	}
}

func TestBitboardInvariants(t *testing.T) {
	state := NewState()
	applyUCISequence(t, state, "e2e4", "e7e5", "g1f3", "b8c6", "f1b5")
	b := &state.Position.Board

	for c := White; c <= Black; c++ {
		var union Bitboard
		for pt := Pawn; pt <= King; pt++ {
			for other := pt + 1; other <= King; other++ {
				if b.Pieces[c][pt]&b.Pieces[c][other] != 0 {
					t.Errorf("pieces[%v][%v] and pieces[%v][%v] overlap", c, pt, c, other)
				}
			}
			union |= b.Pieces[c][pt]
		}
		if union != b.AllPieces[c] {
			t.Errorf("all_pieces[%v] = %#x, want union %#x", c, uint64(b.AllPieces[c]), uint64(union))
		}
		if want := b.AllPieces[c] &^ b.Pieces[c][King]; b.Attackable[c] != want {
			t.Errorf("attackable[%v] = %#x, want %#x", c, uint64(b.Attackable[c]), uint64(want))
		}
	}
	if b.Unoccupied != ^b.Occupied {
		t.Errorf("unoccupied is not the complement of occupied")
	}
	if b.Occupied != b.AllPieces[White]|b.AllPieces[Black] {
		t.Errorf("occupied does not equal the union of both colors' pieces")
	}
}
