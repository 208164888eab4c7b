package engine

import (
	"testing"
	"time"

	"github.com/chessatk/engine/internal/board"
)

func TestMCTSSearchReturnsAMove(t *testing.T) {
	state := board.NewState()
	searcher := NewMCTSSearcher(MCTSConfig{WorkerCount: 4, ExplorationConstant: 0.3})
	move, _ := searcher.SearchTime(state, 100*time.Millisecond)
	if move == nil {
		t.Fatalf("expected a move from startpos within the time budget")
	}
}

func TestMCTSDeclinesWhenCheckmated(t *testing.T) {
	state, err := board.ParseFEN("2b1kr2/4Qp2/8/pP1Np2p/3P4/3BP3/PP3PPP/R3K2R b KQ - 1 19")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	searcher := NewMCTSSearcher(DefaultMCTSConfig())
	move, _ := searcher.SearchTime(state, 20*time.Millisecond)
	if move != nil {
		t.Errorf("expected no move from a checkmated position, got %v", move)
	}
}

func TestMCTSRootRebasingKeepsExploredSubtree(t *testing.T) {
	state := board.NewState()
	searcher := NewMCTSSearcher(MCTSConfig{WorkerCount: 4, ExplorationConstant: 0.3})
	searcher.SearchTime(state, 50*time.Millisecond)

	searcher.mu.Lock()
	rootChildren := len(searcher.tree[searcher.root].children)
	searcher.mu.Unlock()
	if rootChildren == 0 {
		t.Fatalf("expected the root to have explored children after search")
	}

	var applied board.Move
	searcher.mu.Lock()
	applied = searcher.tree[searcher.tree[searcher.root].children[0]].lastMove
	searcher.mu.Unlock()

	searcher.RebaseRoot(applied)

	searcher.mu.Lock()
	defer searcher.mu.Unlock()
	if !searcher.tree[searcher.root].hasLastMove || searcher.tree[searcher.root].lastMove != applied {
		t.Errorf("expected root to rebase onto the already-explored child for move %v", applied)
	}
}

func TestMCTSResetClearsTree(t *testing.T) {
	state := board.NewState()
	searcher := NewMCTSSearcher(MCTSConfig{WorkerCount: 4, ExplorationConstant: 0.3})
	searcher.SearchTime(state, 30*time.Millisecond)
	searcher.Reset()

	searcher.mu.Lock()
	defer searcher.mu.Unlock()
	if len(searcher.tree) != 1 || searcher.root != 0 {
		t.Errorf("expected Reset to leave a single root node")
	}
}
