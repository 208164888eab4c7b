package board

import "fmt"

// Position is a Board plus the non-piece-placement parts of a chess
// position: side to move, castling rights, and the en passant target
// square (spec.md §3).
type Position struct {
	Board Board

	SideToMove Color

	WhiteKingSideCastle  bool
	WhiteQueenSideCastle bool
	BlackKingSideCastle  bool
	BlackQueenSideCastle bool

	// EnPassantSquare is zero, or a bitboard with exactly one bit set
	// naming the square a capturing pawn would move TO. Present only the
	// ply immediately following a two-square pawn advance.
	EnPassantSquare Bitboard
}

// NewPosition returns the standard starting position.
func NewPosition() *Position {
	state, err := ParseFEN(StartFEN)
	if err != nil {
		panic(fmt.Sprintf("board: start FEN failed to parse: %v", err))
	}
	return &state.Position
}

// Clone returns an independent copy; Position holds only value types, so a
// shallow struct copy already satisfies the "clone freely" lifecycle
// spec.md §3 requires of search.
func (p *Position) Clone() Position {
	return *p
}

// PieceAt returns the piece occupying sq, or NoPiece.
func (p *Position) PieceAt(sq Square) Piece {
	return p.Board.PieceAt(sq)
}

// KingSquare returns the square of color's king.
func (p *Position) KingSquare(c Color) Square {
	return p.Board.KingSquare(c)
}

// CanCastle reports whether color still holds the named castling right.
func (p *Position) CanCastle(c Color, kingSide bool) bool {
	switch {
	case c == White && kingSide:
		return p.WhiteKingSideCastle
	case c == White && !kingSide:
		return p.WhiteQueenSideCastle
	case c == Black && kingSide:
		return p.BlackKingSideCastle
	default:
		return p.BlackQueenSideCastle
	}
}

// ApplyMove destructively mutates p per spec.md §4.2. It assumes m is
// syntactically well-formed and either generator-produced or a trusted UCI
// move; it does not itself verify legality.
func (p *Position) ApplyMove(m Move) {
	us := p.SideToMove
	origin, dest := m.Origin, m.Destination

	// The mover's color is whichever side has a piece on origin, so a move
	// of the side not to move (as the legality filter may apply) works too.
	moverPT := p.Board.pieceTypeAt(us, origin)
	if moverPT == NoPieceType {
		us = us.Other()
		moverPT = p.Board.pieceTypeAt(us, origin)
	}
	them := us.Other()
	capturedPT := p.Board.pieceTypeAt(them, dest)

	p.Board.remove(us, moverPT, origin)
	if capturedPT != NoPieceType {
		p.Board.remove(them, capturedPT, dest)
	}

	addPT := moverPT
	if m.Promotion != NoPromotion {
		addPT = m.Promotion.PieceType()
	}
	p.Board.add(us, addPT, dest)

	prevEnPassant := p.EnPassantSquare
	keepEnPassant := false

	switch moverPT {
	case King:
		if us == White {
			p.WhiteKingSideCastle = false
			p.WhiteQueenSideCastle = false
		} else {
			p.BlackKingSideCastle = false
			p.BlackQueenSideCastle = false
		}
		if fileDiff := dest.File() - origin.File(); fileDiff == 2 || fileDiff == -2 {
			rank := origin.Rank()
			if fileDiff == 2 {
				p.Board.remove(us, Rook, NewSquare(7, rank))
				p.Board.add(us, Rook, NewSquare(5, rank))
			} else {
				p.Board.remove(us, Rook, NewSquare(0, rank))
				p.Board.add(us, Rook, NewSquare(3, rank))
			}
		}
	case Pawn:
		if rankDiff := dest.Rank() - origin.Rank(); rankDiff == 2 || rankDiff == -2 {
			passedRank := (origin.Rank() + dest.Rank()) / 2
			p.EnPassantSquare = SquareBB(NewSquare(origin.File(), passedRank))
			keepEnPassant = true
		} else if prevEnPassant != 0 && SquareBB(dest) == prevEnPassant {
			capRank := dest.Rank()
			if us == White {
				capRank--
			} else {
				capRank++
			}
			p.Board.remove(them, Pawn, NewSquare(dest.File(), capRank))
		}
	}

	if !keepEnPassant {
		p.EnPassantSquare = 0
	}

	revokeRookRights := func(sq Square) {
		switch sq {
		case A1:
			p.WhiteQueenSideCastle = false
		case H1:
			p.WhiteKingSideCastle = false
		case A8:
			p.BlackQueenSideCastle = false
		case H8:
			p.BlackKingSideCastle = false
		}
	}
	revokeRookRights(origin)
	revokeRookRights(dest)

	p.SideToMove = them
}

// String renders the position for debugging.
func (p *Position) String() string {
	s := "\n"
	for rank := 7; rank >= 0; rank-- {
		s += fmt.Sprintf("%d  ", rank+1)
		for file := 0; file < 8; file++ {
			piece := p.PieceAt(NewSquare(file, rank))
			if piece == NoPiece {
				s += ". "
			} else {
				s += piece.String() + " "
			}
		}
		s += "\n"
	}
	s += "\n   a b c d e f g h\n"
	s += fmt.Sprintf("Side to move: %s\n", p.SideToMove)
	return s
}
