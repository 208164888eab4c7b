package engine

import (
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/chessatk/engine/internal/board"
)

// NegamaxConfig parameterises the negamax searcher. WorkerCount governs the
// root-split worker pool (spec.md §4.5); KingCountsTowardAdvancement
// resolves the Open Question in eval.go.
type NegamaxConfig struct {
	WorkerCount                 int
	KingCountsTowardAdvancement bool
}

// DefaultNegamaxConfig mirrors the reference implementation: one worker per
// root move (rayon's par_iter unbounded fan-out), default advancement rule.
func DefaultNegamaxConfig() NegamaxConfig {
	return NegamaxConfig{
		WorkerCount:                 0, // 0 means "one goroutine per root move"
		KingCountsTowardAdvancement: DefaultKingCountsTowardAdvancement,
	}
}

const mateScore = -10000.0

// NegamaxSearcher implements the iterative-deepening alpha-beta searcher
// of spec.md §4.5.
type NegamaxSearcher struct {
	cfg NegamaxConfig
}

func NewNegamaxSearcher(cfg NegamaxConfig) *NegamaxSearcher {
	return &NegamaxSearcher{cfg: cfg}
}

// SearchDepth runs a single fixed-depth search and returns the
// side-to-move-relative score and best move (nil if the game is already
// over).
func (n *NegamaxSearcher) SearchDepth(state *board.State, depth int) (float64, *board.Move) {
	return n.search(state, depth)
}

// SearchTime runs iterative deepening until the next depth is unlikely to
// fit the remaining budget (spec.md §4.5: begin depth d+1 only if
// usedTime*2 < T), returning the last fully completed depth's result.
func (n *NegamaxSearcher) SearchTime(state *board.State, budget time.Duration) (float64, *board.Move) {
	var (
		usedTime    time.Duration
		overallEval float64
		overallMove *board.Move
	)
	for depth := 1; usedTime*2 < budget; depth++ {
		start := time.Now()
		eval, move := n.search(state, depth)
		overallEval, overallMove = eval, move
		usedTime += time.Since(start)
	}
	return overallEval, overallMove
}

func (n *NegamaxSearcher) search(state *board.State, depth int) (float64, *board.Move) {
	if state.Repeated() {
		return 0, nil
	}

	pos := state.Position
	moves := board.Generate(&pos, pos.SideToMove, true)

	if len(moves) == 0 && !board.InCheck(&pos, pos.SideToMove) {
		return 0, nil
	}
	if len(moves) > 0 && state.HalfmoveClock >= 100 {
		return 0, nil
	}
	// If checkmated at the root, moves is empty and the loop below runs
	// zero iterations, leaving max at -infinity and best nil: a root
	// search never fabricates a move out of a lost position.

	type result struct {
		move  board.Move
		score float64
	}
	scores := make([]result, len(moves))

	workers := n.cfg.WorkerCount
	if workers <= 0 {
		workers = len(moves)
	}

	g := new(errgroup.Group)
	g.SetLimit(workers)
	for i, m := range moves {
		i, m := i, m
		g.Go(func() error {
			child := state.Clone()
			child.ApplyMove(m)
			score := -n.negaMax(child, depth-1, 1, math.Inf(-1), math.Inf(1))
			scores[i] = result{move: m, score: score}
			return nil
		})
	}
	_ = g.Wait()

	max := math.Inf(-1)
	var best *board.Move
	for _, r := range scores {
		r := r
		if best == nil || r.score > max {
			max = r.score
			best = &r.move
		}
	}
	return max, best
}

// negaMax is the sequential alpha-beta recursion of spec.md §4.5. Negamax
// workers never block: every clone/apply/evaluate step is pure CPU work.
func (n *NegamaxSearcher) negaMax(state *board.State, depth, ply int, alpha, beta float64) float64 {
	if state.Repeated() {
		return 0
	}
	if depth <= 0 {
		return Evaluate(&state.Position, n.cfg.KingCountsTowardAdvancement)
	}

	pos := &state.Position
	moves := board.Generate(pos, pos.SideToMove, true)

	if len(moves) == 0 && !board.InCheck(pos, pos.SideToMove) {
		return 0
	}
	if len(moves) > 0 && state.HalfmoveClock >= 100 {
		return 0
	}
	if len(moves) == 0 {
		return mateScore + float64(ply)
	}

	max := mateScore + float64(ply)
	for _, m := range moves {
		child := state.Clone()
		child.ApplyMove(m)
		score := -n.negaMax(child, depth-1, ply+1, -beta, -alpha)
		if score > max {
			max = score
		}
		if max > alpha {
			alpha = max
		}
		if alpha >= beta {
			break
		}
	}
	return max
}
