// Package engine implements the two searchers (negamax and MCTS) and the
// long-lived Engine Dispatcher that drives them, per spec.md §4.5-4.7.
package engine

import (
	"time"

	"github.com/chessatk/engine/internal/board"
)

// InterfaceMessage is sent from a frontend to the Dispatcher (spec.md §6).
type InterfaceMessage interface {
	isInterfaceMessage()
}

// SetState replaces the Dispatcher's current State. MCTS resets its tree.
type SetState struct {
	State *board.State
}

// ApplyMove mutates the Dispatcher's State with m. MCTS rebases its root.
type ApplyMove struct {
	Move board.Move
}

// GoDepth runs negamax to a fixed depth. Unsupported by the MCTS searcher.
type GoDepth struct {
	Depth int
}

// GoTime runs the active searcher (iterative-deepening negamax, or MCTS)
// for the given wall-clock budget.
type GoTime struct {
	Budget time.Duration
}

// QueryEval requests the most recently computed root evaluation.
type QueryEval struct{}

func (SetState) isInterfaceMessage()  {}
func (ApplyMove) isInterfaceMessage() {}
func (GoDepth) isInterfaceMessage()   {}
func (GoTime) isInterfaceMessage()    {}
func (QueryEval) isInterfaceMessage() {}

// EngineMessage is sent from the Dispatcher back to the frontend.
type EngineMessage interface {
	isEngineMessage()
}

// BestMove replies to GoDepth/GoTime. A nil Move means the engine declines
// to move: the game is over, or ProtocolMisuse occurred (spec.md §7).
type BestMove struct {
	Move *board.Move
}

// CurrentEval replies to QueryEval, sign-normalised so positive favours
// White.
type CurrentEval struct {
	Eval float64
}

func (BestMove) isEngineMessage()    {}
func (CurrentEval) isEngineMessage() {}
