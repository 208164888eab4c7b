package board

import "fmt"

// PromotionTarget names the piece a pawn promotes to, or NoPromotion.
type PromotionTarget uint8

const (
	NoPromotion PromotionTarget = iota
	PromoteKnight
	PromoteBishop
	PromoteRook
	PromoteQueen
)

// PieceType returns the promoted piece's type, or NoPieceType.
func (pt PromotionTarget) PieceType() PieceType {
	switch pt {
	case PromoteKnight:
		return Knight
	case PromoteBishop:
		return Bishop
	case PromoteRook:
		return Rook
	case PromoteQueen:
		return Queen
	default:
		return NoPieceType
	}
}

func (pt PromotionTarget) char() byte {
	switch pt {
	case PromoteKnight:
		return 'n'
	case PromoteBishop:
		return 'b'
	case PromoteRook:
		return 'r'
	case PromoteQueen:
		return 'q'
	default:
		return 0
	}
}

// Move is the value-record spec.md §3 defines: an origin square, a
// destination square, and an optional promotion target.
type Move struct {
	Origin      Square
	Destination Square
	Promotion   PromotionTarget
}

// String returns UCI algebraic notation, e.g. "e2e4" or "a7a8q".
func (m Move) String() string {
	s := m.Origin.String() + m.Destination.String()
	if m.Promotion != NoPromotion {
		s += string(m.Promotion.char())
	}
	return s
}

// ErrInvalidMove wraps every UCI move parse failure.
var ErrInvalidMove = fmt.Errorf("invalid move")

// ParseMove parses UCI algebraic notation into a Move. It rejects any
// length other than 4 or 5 bytes and any character outside [a-h][1-8] for
// the squares or [nbrq] for the promotion suffix.
func ParseMove(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, fmt.Errorf("%w: %q has length %d, want 4 or 5", ErrInvalidMove, s, len(s))
	}

	origin, err := ParseSquare(s[0:2])
	if err != nil {
		return Move{}, fmt.Errorf("%w: %v", ErrInvalidMove, err)
	}
	destination, err := ParseSquare(s[2:4])
	if err != nil {
		return Move{}, fmt.Errorf("%w: %v", ErrInvalidMove, err)
	}

	promo := NoPromotion
	if len(s) == 5 {
		switch s[4] {
		case 'n':
			promo = PromoteKnight
		case 'b':
			promo = PromoteBishop
		case 'r':
			promo = PromoteRook
		case 'q':
			promo = PromoteQueen
		default:
			return Move{}, fmt.Errorf("%w: unknown promotion piece %q", ErrInvalidMove, s[4])
		}
	}

	return Move{Origin: origin, Destination: destination, Promotion: promo}, nil
}
