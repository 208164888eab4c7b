package board

import "testing"

func TestParseFENStartPosition(t *testing.T) {
	state, err := ParseFEN(StartFEN)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if state.Position.SideToMove != White {
		t.Errorf("side to move = %v, want White", state.Position.SideToMove)
	}
	if !state.Position.WhiteKingSideCastle || !state.Position.WhiteQueenSideCastle ||
		!state.Position.BlackKingSideCastle || !state.Position.BlackQueenSideCastle {
		t.Errorf("expected all castling rights at start")
	}
	if state.Position.EnPassantSquare != 0 {
		t.Errorf("expected no en passant square at start")
	}
	if state.HalfmoveClock != 0 || state.FullmoveNumber != 1 {
		t.Errorf("halfmove=%d fullmove=%d, want 0,1", state.HalfmoveClock, state.FullmoveNumber)
	}
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"r1bq1rk1/ppp1p1bp/2np1np1/5p2/2PP4/2N2NP1/PP2PPBP/R1BQ1RK1 w - - 2 8",
		"2b1kr2/4Qp2/8/pP1Np2p/3P4/3BP3/PP3PPP/R3K2R b KQ - 1 19",
	}
	for _, fen := range fens {
		state, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		if got := state.FEN(); got != fen {
			t.Errorf("round-trip %q -> %q", fen, got)
		}
	}
}

func TestParseFENRejectsMalformed(t *testing.T) {
	cases := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -", // missing fields
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",       // only 7 ranks
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w ZZZZ - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9 0 1",
	}
	for _, fen := range cases {
		if _, err := ParseFEN(fen); err == nil {
			t.Errorf("ParseFEN(%q): expected error, got none", fen)
		}
	}
}
