package board

// GameStatusKind classifies the outcome of a State per spec.md §4.4.
type GameStatusKind uint8

const (
	Ongoing GameStatusKind = iota
	Checkmate
	Stalemate
	DrawFiftyMove
	DrawRepetition
)

// GameStatus reports whether a State is still being played and, if not,
// how it ended and who won.
type GameStatus struct {
	Kind   GameStatusKind
	Winner Color // only meaningful when Kind == Checkmate
}

func (s GameStatus) IsOver() bool {
	return s.Kind != Ongoing
}

// State is a Position plus the history needed to detect draws: the
// halfmove clock (since the last pawn move or capture) and the sequence
// of positions reached since that same reset, used for threefold repetition (spec.md
// §3, §4.4).
type State struct {
	Position Position

	HalfmoveClock int
	FullmoveNumber int

	history []Position
}

// NewState returns the standard starting position.
func NewState() *State {
	state, err := ParseFEN(StartFEN)
	if err != nil {
		panic("board: start FEN failed to parse: " + err.Error())
	}
	return state
}

// Clone returns an independent copy; history is copied so the clone's
// repetition count never aliases the original's.
func (s *State) Clone() *State {
	clone := &State{
		Position:       s.Position,
		HalfmoveClock:  s.HalfmoveClock,
		FullmoveNumber: s.FullmoveNumber,
		history:        make([]Position, len(s.history)),
	}
	copy(clone.history, s.history)
	return clone
}

// ApplyMove mutates the Position and maintains the halfmove clock and
// repetition history. The clock resets whenever the mover is a pawn
// (covering en passant, which is always a pawn move) or the destination
// square was occupied by an opponent piece.
func (s *State) ApplyMove(m Move) {
	pos := &s.Position
	moverPT := pos.Board.pieceTypeAt(pos.SideToMove, m.Origin)
	isCapture := pos.Board.pieceTypeAt(pos.SideToMove.Other(), m.Destination) != NoPieceType

	s.history = append(s.history, *pos)

	if pos.SideToMove == Black {
		s.FullmoveNumber++
	}

	pos.ApplyMove(m)

	if moverPT == Pawn || isCapture {
		s.HalfmoveClock = 0
		s.history = s.history[:0]
	} else {
		s.HalfmoveClock++
	}
}

// repetitionCount returns how many times the current position (including
// the present occurrence) has been reached.
func (s *State) repetitionCount() int {
	count := 1
	for _, p := range s.history {
		if p == s.Position {
			count++
		}
	}
	return count
}

// Repeated reports whether the current position has at least two prior
// occurrences in history, the cheap repetition check spec.md §4.5's
// negamax recursion needs on every node (a full Status() is overkill there
// since it also regenerates legal moves).
func (s *State) Repeated() bool {
	matches := 0
	for _, p := range s.history {
		if p == s.Position {
			matches++
			if matches >= 2 {
				return true
			}
		}
	}
	return false
}

// Status determines the game's outcome per spec.md §4.4, checked in the
// order the spec gives: a threefold-repeated position draws outright;
// otherwise an empty move list is stalemate (not in check) or checkmate
// (in check); otherwise a non-empty move list with halfmove_clock >= 100
// draws; else the game is ongoing.
func (s *State) Status() GameStatus {
	if s.repetitionCount() >= 3 {
		return GameStatus{Kind: DrawRepetition}
	}

	color := s.Position.SideToMove
	legalMoves := Generate(&s.Position, color, true)

	if len(legalMoves) == 0 {
		if InCheck(&s.Position, color) {
			return GameStatus{Kind: Checkmate, Winner: color.Other()}
		}
		return GameStatus{Kind: Stalemate}
	}

	if s.HalfmoveClock >= 100 {
		return GameStatus{Kind: DrawFiftyMove}
	}

	return GameStatus{Kind: Ongoing}
}
