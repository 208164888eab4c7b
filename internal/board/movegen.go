package board

// Generate returns the pseudo-legal moves for color in pos, per spec.md
// §4.4. When filterLegal is true, each pseudo-legal move is applied to a
// clone of pos and discarded if it leaves color's own king in check.
func Generate(pos *Position, color Color, filterLegal bool) []Move {
	moves := make([]Move, 0, 48)
	moves = genPawnMoves(pos, color, moves)
	moves = genKnightMoves(pos, color, moves)
	moves = genBishopMoves(pos, color, moves)
	moves = genRookMoves(pos, color, moves)
	moves = genQueenMoves(pos, color, moves)
	moves = genKingMoves(pos, color, moves)
	moves = genCastlingMoves(pos, color, moves)

	if !filterLegal {
		return moves
	}

	legal := moves[:0]
	for _, m := range moves {
		clone := pos.Clone()
		clone.ApplyMove(m)
		if !InCheck(&clone, color) {
			legal = append(legal, m)
		}
	}
	return legal
}

func addShiftedMoves(moves []Move, destinations Bitboard, originDelta int, promotionRank Bitboard) []Move {
	for destinations != 0 {
		dest := destinations.PopLSB()
		origin := Square(int(dest) - originDelta)
		if promotionRank != 0 && SquareBB(dest)&promotionRank != 0 {
			moves = append(moves,
				Move{Origin: origin, Destination: dest, Promotion: PromoteKnight},
				Move{Origin: origin, Destination: dest, Promotion: PromoteBishop},
				Move{Origin: origin, Destination: dest, Promotion: PromoteRook},
				Move{Origin: origin, Destination: dest, Promotion: PromoteQueen},
			)
			continue
		}
		moves = append(moves, Move{Origin: origin, Destination: dest})
	}
	return moves
}

func genPawnMoves(pos *Position, color Color, moves []Move) []Move {
	b := &pos.Board
	pawns := b.Pieces[color][Pawn]
	opp := color.Other()

	var push1, push2, diagLeft, diagRight Bitboard
	var delta1, delta2, deltaLeft, deltaRight int
	var promotionRank, fourthRank Bitboard

	if color == White {
		push1 = pawns.North() & b.Unoccupied
		push2 = push1.North() & b.Unoccupied
		diagLeft = pawns.NorthWest()
		diagRight = pawns.NorthEast()
		delta1, delta2, deltaLeft, deltaRight = 8, 16, 7, 9
		promotionRank, fourthRank = Rank8, Rank4
	} else {
		push1 = pawns.South() & b.Unoccupied
		push2 = push1.South() & b.Unoccupied
		diagLeft = pawns.SouthWest()
		diagRight = pawns.SouthEast()
		delta1, delta2, deltaLeft, deltaRight = -8, -16, -9, -7
		promotionRank, fourthRank = Rank1, Rank5
	}
	push2 &= fourthRank

	moves = addShiftedMoves(moves, push1, delta1, promotionRank)
	moves = addShiftedMoves(moves, push2, delta2, 0)

	capLeft := diagLeft & b.Attackable[opp]
	capRight := diagRight & b.Attackable[opp]
	moves = addShiftedMoves(moves, capLeft, deltaLeft, promotionRank)
	moves = addShiftedMoves(moves, capRight, deltaRight, promotionRank)

	if pos.EnPassantSquare != 0 {
		epLeft := diagLeft & pos.EnPassantSquare
		epRight := diagRight & pos.EnPassantSquare
		moves = addShiftedMoves(moves, epLeft, deltaLeft, 0)
		moves = addShiftedMoves(moves, epRight, deltaRight, 0)
	}

	return moves
}

func genKnightMoves(pos *Position, color Color, moves []Move) []Move {
	b := &pos.Board
	knights := b.Pieces[color][Knight]
	excl := b.AllPieces[color] | b.Pieces[color.Other()][King]
	for knights != 0 {
		from := knights.PopLSB()
		targets := knightAttacks[from] &^ excl
		for targets != 0 {
			moves = append(moves, Move{Origin: from, Destination: targets.PopLSB()})
		}
	}
	return moves
}

func genKingMoves(pos *Position, color Color, moves []Move) []Move {
	b := &pos.Board
	from := b.KingSquare(color)
	if from == NoSquare {
		return moves
	}
	targets := kingAttacks[from] &^ (b.AllPieces[color] | b.Pieces[color.Other()][King])
	for targets != 0 {
		moves = append(moves, Move{Origin: from, Destination: targets.PopLSB()})
	}
	return moves
}

// genSlidingMoves generates bishop/rook/queen moves. The opponent's king
// bitboard is masked out of the targets as a consistency guard (spec.md
// §4.4): legal play never lets a generator reach it, since the king can
// never be left in check one ply earlier.
func genSlidingMoves(pos *Position, color Color, pt PieceType, attacks func(Square, Bitboard) Bitboard, moves []Move) []Move {
	b := &pos.Board
	pieces := b.Pieces[color][pt]
	excl := b.AllPieces[color] | b.Pieces[color.Other()][King]
	for pieces != 0 {
		from := pieces.PopLSB()
		targets := attacks(from, b.Occupied) &^ excl
		for targets != 0 {
			moves = append(moves, Move{Origin: from, Destination: targets.PopLSB()})
		}
	}
	return moves
}

func genBishopMoves(pos *Position, color Color, moves []Move) []Move {
	return genSlidingMoves(pos, color, Bishop, BishopRayAttacks, moves)
}

func genRookMoves(pos *Position, color Color, moves []Move) []Move {
	return genSlidingMoves(pos, color, Rook, RookRayAttacks, moves)
}

func genQueenMoves(pos *Position, color Color, moves []Move) []Move {
	return genSlidingMoves(pos, color, Queen, QueenRayAttacks, moves)
}

// genCastlingMoves applies the preconditions of spec.md §4.4(d): the
// castling right holds, the squares between king and rook are empty, the
// king isn't in check, and the squares it crosses (including destination)
// aren't attacked. b1/b8 must be empty for the queenside rook's path but
// need not be unattacked, since the king never crosses it.
func genCastlingMoves(pos *Position, color Color, moves []Move) []Move {
	occupied := pos.Board.Occupied
	if color == White {
		if pos.WhiteKingSideCastle &&
			occupied&(SquareBB(F1)|SquareBB(G1)) == 0 &&
			!InCheck(pos, White) &&
			!SquareIsAttacked(pos, White, F1) && !SquareIsAttacked(pos, White, G1) {
			moves = append(moves, Move{Origin: E1, Destination: G1})
		}
		if pos.WhiteQueenSideCastle &&
			occupied&(SquareBB(B1)|SquareBB(C1)|SquareBB(D1)) == 0 &&
			!InCheck(pos, White) &&
			!SquareIsAttacked(pos, White, D1) && !SquareIsAttacked(pos, White, C1) {
			moves = append(moves, Move{Origin: E1, Destination: C1})
		}
		return moves
	}

	if pos.BlackKingSideCastle &&
		occupied&(SquareBB(F8)|SquareBB(G8)) == 0 &&
		!InCheck(pos, Black) &&
		!SquareIsAttacked(pos, Black, F8) && !SquareIsAttacked(pos, Black, G8) {
		moves = append(moves, Move{Origin: E8, Destination: G8})
	}
	if pos.BlackQueenSideCastle &&
		occupied&(SquareBB(B8)|SquareBB(C8)|SquareBB(D8)) == 0 &&
		!InCheck(pos, Black) &&
		!SquareIsAttacked(pos, Black, D8) && !SquareIsAttacked(pos, Black, C8) {
		moves = append(moves, Move{Origin: E8, Destination: C8})
	}
	return moves
}
