package engine

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/chessatk/engine/internal/board"
)

// MCTSConfig parameterises the tree-parallel MCTS searcher of spec.md §4.6.
type MCTSConfig struct {
	WorkerCount         int
	ExplorationConstant float64
}

// DefaultMCTSConfig matches the spec's defaults: 16 rollout workers, c ~ 0.3.
func DefaultMCTSConfig() MCTSConfig {
	return MCTSConfig{WorkerCount: 16, ExplorationConstant: 0.3}
}

const ucbMinVisits = 50

// mctsNode is one entry of the append-only arena tree (spec.md §4.6). The
// node created by Reset has hasLastMove false; every other node records the
// move that created it and the color that made it, and keeps both after
// RebaseRoot makes it the root.
type mctsNode struct {
	lastMove    board.Move
	hasLastMove bool
	lastPlayer  board.Color
	parent      int
	children    []int

	simulations           uint64
	unobservedSimulations uint64
	score                 float64
}

// MCTSSearcher holds the persistent, cross-query search tree and the one
// coarse mutex guarding it (spec.md §4.6/§5).
type MCTSSearcher struct {
	cfg  MCTSConfig
	mu   sync.Mutex
	tree []*mctsNode
	root int
}

func NewMCTSSearcher(cfg MCTSConfig) *MCTSSearcher {
	m := &MCTSSearcher{cfg: cfg}
	m.Reset()
	return m
}

// Reset clears the tree to a single root node, called on SetState.
func (m *MCTSSearcher) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tree = []*mctsNode{{parent: 0}}
	m.root = 0
}

// RebaseRoot relocates the root to the child reached by the applied move,
// if the subtree already explored it; otherwise it resets the tree
// (spec.md §4.6 "Root rebasing").
func (m *MCTSSearcher) RebaseRoot(applied board.Move) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, childIdx := range m.tree[m.root].children {
		if child := m.tree[childIdx]; child.hasLastMove && child.lastMove == applied {
			m.root = childIdx
			return
		}
	}
	m.tree = []*mctsNode{{parent: 0}}
	m.root = 0
}

func isInfScore(f float64) bool {
	return math.IsInf(f, 1) || math.IsInf(f, -1)
}

// ucb1 returns the selection score spec.md §4.6 defines: win_rate + c *
// sqrt(ln(parentTotal) / childTotal), or +Inf outright when the child has
// fewer than 50 combined (real + virtual) visits.
func ucb1(c float64, node *mctsNode, parentTotal uint64) float64 {
	childTotal := node.simulations + node.unobservedSimulations
	if childTotal < ucbMinVisits {
		return math.Inf(1)
	}
	winRate := 0.5
	if node.simulations > 0 {
		winRate = node.score / float64(node.simulations)
	}
	explore := c * math.Sqrt(math.Log(float64(parentTotal))/float64(childTotal))
	return winRate + explore
}

// outcome is the resolved result of one iteration's leaf, used to drive
// the backprop walk. kind is one of the board.GameStatusKind draw/victory
// values, or board.Ongoing to mean "no fresh result" (the leaf's score was
// already a known +/-Inf from a prior iteration; only the ancestor
// propagation rules run, no statistical update is applied). simulated
// reports whether kind came from an actual random playout (rollout) rather
// than the leaf itself already being terminal; only a non-simulated
// Checkmate may set the leaf's score to +/-Inf (spec.md §4.6 step 3: "if
// this iteration did NOT simulate").
type outcome struct {
	kind      board.GameStatusKind
	winner    board.Color
	simulated bool
}

// SearchTime runs W rollout workers for budget and returns the root's best
// child move with its win rate (score / simulations, or the score itself
// when it is +/-Inf), or (nil, 0) if the root has no children
// (the game was already over when the search began).
func (m *MCTSSearcher) SearchTime(rootState *board.State, budget time.Duration) (*board.Move, float64) {
	workers := m.cfg.WorkerCount
	if workers <= 0 {
		workers = 16
	}
	deadline := time.Now().Add(budget)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for time.Now().Before(deadline) {
				for i := 0; i < 100; i++ {
					m.iterate(rootState)
				}
			}
		}()
	}
	wg.Wait()

	return m.bestMove()
}

// iterate runs one selection/expansion -> simulation -> backprop cycle.
func (m *MCTSSearcher) iterate(rootState *board.State) {
	leaf, state, status, preResolved := m.selectAndExpand(rootState)

	var result outcome
	switch {
	case preResolved:
		// Selection stopped because the leaf's score was already +/-Inf
		// from a prior iteration: no playout occurred, no fresh result;
		// only the ancestor propagation rules and counters apply.
		result = outcome{kind: board.Ongoing}
	case status.Kind != board.Ongoing:
		// The game genuinely ended at the leaf (checkmate, stalemate,
		// fifty-move, or repetition): no playout needed.
		result = outcome{kind: status.Kind, winner: status.Winner}
	default:
		result = m.rollout(state)
		result.simulated = true
	}

	m.backprop(leaf, result)
}

// selectAndExpand walks from the root to a leaf under the tree lock,
// creating at most one new node, per spec.md §4.6 step 1. preResolved
// reports whether the stop was due to an already-known +/-Inf score
// (status may legitimately still read Ongoing there, since the forced
// outcome was inferred from descendants, not from this position itself).
func (m *MCTSSearcher) selectAndExpand(rootState *board.State) (leaf int, state *board.State, status board.GameStatus, preResolved bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cur := m.root
	m.tree[cur].unobservedSimulations++
	state = rootState.Clone()
	status = state.Status()

	for {
		if status.Kind != board.Ongoing {
			return cur, state, status, false
		}
		if isInfScore(m.tree[cur].score) {
			return cur, state, status, true
		}

		moves := board.Generate(&state.Position, state.Position.SideToMove, true)

		children := m.tree[cur].children
		rand.Shuffle(len(children), func(i, j int) { children[i], children[j] = children[j], children[i] })

		if unrep, ok := findUnrepresented(children, m.tree, moves); ok {
			newIdx := len(m.tree)
			m.tree = append(m.tree, &mctsNode{
				lastMove:              unrep,
				hasLastMove:           true,
				lastPlayer:            state.Position.SideToMove,
				parent:                cur,
				unobservedSimulations: 1,
			})
			m.tree[cur].children = append(m.tree[cur].children, newIdx)
			state.ApplyMove(unrep)
			status = state.Status()
			return newIdx, state, status, false
		}

		parentTotal := m.tree[cur].simulations + m.tree[cur].unobservedSimulations
		best := -1
		bestScore := math.Inf(-1)
		for _, idx := range children {
			if !moveStillLegal(m.tree[idx].lastMove, moves) {
				continue
			}
			s := ucb1(m.cfg.ExplorationConstant, m.tree[idx], parentTotal)
			if best == -1 || s > bestScore {
				best, bestScore = idx, s
			}
		}
		m.tree[best].unobservedSimulations++
		state.ApplyMove(m.tree[best].lastMove)
		cur = best
		status = state.Status()
	}
}

func findUnrepresented(children []int, tree []*mctsNode, moves []board.Move) (board.Move, bool) {
	for _, mv := range moves {
		represented := false
		for _, idx := range children {
			if tree[idx].lastMove == mv {
				represented = true
				break
			}
		}
		if !represented {
			return mv, true
		}
	}
	return board.Move{}, false
}

func moveStillLegal(mv board.Move, legal []board.Move) bool {
	for _, l := range legal {
		if l == mv {
			return true
		}
	}
	return false
}

// rollout plays uniformly random legal moves to completion with the tree
// lock released (spec.md §4.6 step 2); it touches no tree node.
func (m *MCTSSearcher) rollout(state *board.State) outcome {
	status := state.Status()
	moves := board.Generate(&state.Position, state.Position.SideToMove, true)
	for status.Kind == board.Ongoing {
		mv := moves[rand.Intn(len(moves))]
		state.ApplyMove(mv)
		status = state.Status()
		moves = board.Generate(&state.Position, state.Position.SideToMove, true)
	}
	return outcome{kind: status.Kind, winner: status.Winner}
}

// backprop walks from leaf to the root under the tree lock, applying the
// ancestor +/-Inf propagation rule where it fires and the statistical
// update otherwise (spec.md §4.6 step 3).
func (m *MCTSSearcher) backprop(leaf int, result outcome) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if result.kind == board.Checkmate && !result.simulated {
		node := m.tree[leaf]
		if node.lastPlayer == result.winner {
			node.score = math.Inf(1)
		} else {
			node.score = math.Inf(-1)
		}
	}

	cur := leaf
	for {
		node := m.tree[cur]

		anyChildWon := false
		allChildrenLost := len(node.children) > 0
		for _, idx := range node.children {
			c := m.tree[idx].score
			if math.IsInf(c, 1) {
				anyChildWon = true
			}
			if !math.IsInf(c, -1) {
				allChildrenLost = false
			}
		}

		switch {
		case anyChildWon:
			node.score = math.Inf(-1)
		case allChildrenLost:
			node.score = math.Inf(1)
		case result.kind != board.Ongoing:
			switch result.kind {
			case board.DrawFiftyMove, board.DrawRepetition, board.Stalemate:
				node.score += 0.5
			case board.Checkmate:
				if node.lastPlayer == result.winner {
					node.score += 1.0
				}
			}
		}

		node.simulations++
		if node.unobservedSimulations > 0 {
			node.unobservedSimulations--
		}

		if cur == m.root {
			return
		}
		cur = node.parent
	}
}

// bestMove picks the root's child maximising score + sqrt(1/simulations),
// spec.md §4.6's tie-break favouring less-visited winners. Children never
// visited (simulations == 0) are skipped; a node spawned but never backed
// up carries no reliable signal.
func (m *MCTSSearcher) bestMove() (*board.Move, float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var best *mctsNode
	bestValue := math.Inf(-1)
	for _, idx := range m.tree[m.root].children {
		node := m.tree[idx]
		if node.simulations == 0 {
			continue
		}
		value := node.score + math.Sqrt(1/float64(node.simulations))
		if best == nil || value > bestValue {
			best, bestValue = node, value
		}
	}
	if best == nil {
		return nil, 0
	}
	mv := best.lastMove
	winRate := best.score
	if best.simulations > 0 && !isInfScore(best.score) {
		winRate = best.score / float64(best.simulations)
	}
	return &mv, winRate
}
