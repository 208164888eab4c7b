package engine

import "github.com/chessatk/engine/internal/board"

// materialValue is the pawn = 1, knight/bishop = 3, rook = 5, queen = 10,
// king = 0 scale spec.md §4.5 fixes for the leaf evaluation.
var materialValue = [6]float64{
	board.Pawn:   1,
	board.Knight: 3,
	board.Bishop: 3,
	board.Rook:   5,
	board.Queen:  10,
	board.King:   0,
}

// DefaultKingCountsTowardAdvancement resolves spec.md §9's first Open Question:
// whether the advancement term also scores the king's rank. The original
// implementation's evaluate() only ever iterated non-king squares in its
// (never-finished) loop body, so the default here is false, matching that
// intent; NegamaxConfig lets a caller opt into counting it instead.
const DefaultKingCountsTowardAdvancement = false

// Evaluate computes the side-to-move-relative leaf heuristic of spec.md
// §4.5: 0.90*material + 0.06*mobility + 0.04*advancement.
func Evaluate(pos *board.Position, kingCountsTowardAdvancement bool) float64 {
	var mat, dist float64

	for color := board.White; color <= board.Black; color++ {
		sign := 1.0
		if color == board.Black {
			sign = -1.0
		}
		for pt := board.Pawn; pt <= board.King; pt++ {
			bb := pos.Board.Pieces[color][pt]
			mat += sign * float64(bb.PopCount()) * materialValue[pt]

			if pt == board.King && !kingCountsTowardAdvancement {
				continue
			}
			for bb != 0 {
				sq := bb.PopLSB()
				rank := sq.Rank() + 1 // spec's r is 1-indexed
				if color == board.White {
					dist += sign * float64(rank-1)
				} else {
					dist += sign * float64(8-rank)
				}
			}
		}
	}

	whiteMoves := len(board.Generate(pos, board.White, false))
	blackMoves := len(board.Generate(pos, board.Black, false))
	mobility := float64(whiteMoves - blackMoves)

	raw := 0.90*mat + 0.06*mobility + 0.04*dist
	if pos.SideToMove == board.White {
		return raw
	}
	return -raw
}
