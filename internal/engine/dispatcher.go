package engine

import (
	"log"

	"github.com/chessatk/engine/internal/board"
)

// SearcherKind selects which algorithm a Dispatcher drives, chosen once at
// startup and never switched at runtime (spec.md §4.1).
type SearcherKind uint8

const (
	NegamaxSearcherKind SearcherKind = iota
	MCTSSearcherKind
)

// Dispatcher is the long-lived task of spec.md §4.7: it owns one mutable
// State and a reference to the active searcher, processing messages to
// completion one at a time.
type Dispatcher struct {
	kind    SearcherKind
	negamax *NegamaxSearcher
	mcts    *MCTSSearcher

	state    *board.State
	lastEval float64

	in  <-chan InterfaceMessage
	out chan<- EngineMessage
}

// NewDispatcher constructs a Dispatcher bound to the given channel pair.
// Exactly one of negamaxCfg/mctsCfg is used, selected by kind.
func NewDispatcher(kind SearcherKind, negamaxCfg NegamaxConfig, mctsCfg MCTSConfig, in <-chan InterfaceMessage, out chan<- EngineMessage) *Dispatcher {
	d := &Dispatcher{
		kind:  kind,
		state: board.NewState(),
		in:    in,
		out:   out,
	}
	switch kind {
	case NegamaxSearcherKind:
		d.negamax = NewNegamaxSearcher(negamaxCfg)
	case MCTSSearcherKind:
		d.mcts = NewMCTSSearcher(mctsCfg)
	}
	return d
}

// Run blocks, processing messages from in until it is closed. It suspends
// only at the channel receive (spec.md §5).
func (d *Dispatcher) Run() {
	for msg := range d.in {
		d.handle(msg)
	}
}

func (d *Dispatcher) handle(msg InterfaceMessage) {
	switch m := msg.(type) {
	case SetState:
		d.state = m.State
		if d.mcts != nil {
			d.mcts.Reset()
		}

	case ApplyMove:
		d.state.ApplyMove(m.Move)
		if d.mcts != nil {
			d.mcts.RebaseRoot(m.Move)
		}

	case GoDepth:
		if d.negamax == nil {
			// ProtocolMisuse (spec.md §7): GoDepth sent to an MCTS engine.
			log.Printf("engine: GoDepth is unsupported by the MCTS searcher, ignoring")
			d.out <- BestMove{Move: nil}
			return
		}
		eval, move := d.negamax.SearchDepth(d.state, m.Depth)
		d.recordEval(eval)
		d.out <- BestMove{Move: move}

	case GoTime:
		var (
			eval float64
			move *board.Move
		)
		if d.negamax != nil {
			eval, move = d.negamax.SearchTime(d.state, m.Budget)
		} else {
			move, eval = d.mcts.SearchTime(d.state, m.Budget)
		}
		d.recordEval(eval)
		d.out <- BestMove{Move: move}

	case QueryEval:
		d.out <- CurrentEval{Eval: d.lastEval}

	default:
		log.Printf("engine: unrecognised message %T, ignoring", msg)
	}
}

// recordEval stores the root evaluation sign-normalised so positive always
// favours White, per spec.md §4.7's QueryEval contract.
func (d *Dispatcher) recordEval(sideToMoveRelativeEval float64) {
	if d.state.Position.SideToMove == board.Black {
		d.lastEval = -sideToMoveRelativeEval
	} else {
		d.lastEval = sideToMoveRelativeEval
	}
}
