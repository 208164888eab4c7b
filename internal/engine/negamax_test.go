package engine

import (
	"testing"
	"time"

	"github.com/chessatk/engine/internal/board"
)

func TestNegamaxDepth1Smoke(t *testing.T) {
	state, err := board.ParseFEN("r1bq1rk1/ppp1p1bp/2np1np1/5p2/2PP4/2N2NP1/PP2PPBP/R1BQ1RK1 w - - 2 8")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	searcher := NewNegamaxSearcher(DefaultNegamaxConfig())
	_, move := searcher.SearchDepth(state, 1)
	if move == nil {
		t.Fatalf("expected a move from a sound, ongoing position")
	}
}

func TestNegamaxDeclinesWhenCheckmated(t *testing.T) {
	state, err := board.ParseFEN("2b1kr2/4Qp2/8/pP1Np2p/3P4/3BP3/PP3PPP/R3K2R b KQ - 1 19")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	searcher := NewNegamaxSearcher(DefaultNegamaxConfig())
	_, move := searcher.SearchDepth(state, 1)
	if move != nil {
		t.Errorf("expected no move from a checkmated position, got %v", move)
	}
}

func TestNegamaxIterativeDeepeningReturnsAMove(t *testing.T) {
	state := board.NewState()
	searcher := NewNegamaxSearcher(NegamaxConfig{WorkerCount: 4})
	_, move := searcher.SearchTime(state, 50*time.Millisecond)
	if move == nil {
		t.Fatalf("expected a move from startpos within the time budget")
	}
}
