// Command enginedemo drives a Dispatcher over its in-process channels, has
// it play a few moves against itself, and prints each move and the final
// evaluation to stdout. It is a minimal demonstration of the Engine
// Protocol (spec.md §6), not a UCI or Lichess frontend — those are
// explicit non-goals of the core this module implements.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/chessatk/engine/internal/engine"
)

func main() {
	useMCTS := flag.Bool("mcts", false, "use the MCTS searcher instead of negamax")
	moveTime := flag.Duration("movetime", 500*time.Millisecond, "time budget per move")
	plies := flag.Int("plies", 10, "number of plies to self-play")
	flag.Parse()

	kind := engine.NegamaxSearcherKind
	if *useMCTS {
		kind = engine.MCTSSearcherKind
	}

	in := make(chan engine.InterfaceMessage)
	out := make(chan engine.EngineMessage)

	d := engine.NewDispatcher(kind, engine.DefaultNegamaxConfig(), engine.DefaultMCTSConfig(), in, out)
	go d.Run()
	defer close(in)

	for ply := 0; ply < *plies; ply++ {
		in <- engine.GoTime{Budget: *moveTime}
		reply := (<-out).(engine.BestMove)
		if reply.Move == nil {
			log.Printf("game over after %d plies", ply)
			break
		}
		fmt.Printf("ply %d: %s\n", ply+1, reply.Move)
		in <- engine.ApplyMove{Move: *reply.Move}
	}

	in <- engine.QueryEval{}
	eval := (<-out).(engine.CurrentEval)
	fmt.Printf("final eval (White-relative): %.2f\n", eval.Eval)
}
