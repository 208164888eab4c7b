package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the FEN string for the standard starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ErrMalformedFEN wraps every FEN parse failure (spec.md §6, ParseError).
var ErrMalformedFEN = fmt.Errorf("malformed FEN")

// ParseFEN parses a FEN string into a State. All six fields are required:
// piece placement, side to move, castling rights, en passant target
// square, halfmove clock, and fullmove number.
func ParseFEN(fen string) (*State, error) {
	parts := strings.Fields(fen)
	if len(parts) != 6 {
		return nil, fmt.Errorf("%w: need 6 fields, got %d", ErrMalformedFEN, len(parts))
	}

	pos := Position{EnPassantSquare: 0}

	if err := parsePlacement(&pos.Board, parts[0]); err != nil {
		return nil, err
	}

	switch parts[1] {
	case "w":
		pos.SideToMove = White
	case "b":
		pos.SideToMove = Black
	default:
		return nil, fmt.Errorf("%w: invalid side to move %q", ErrMalformedFEN, parts[1])
	}

	if err := parseCastling(&pos, parts[2]); err != nil {
		return nil, err
	}

	if parts[3] != "-" {
		sq, err := ParseSquare(parts[3])
		if err != nil {
			return nil, fmt.Errorf("%w: invalid en passant square %q: %v", ErrMalformedFEN, parts[3], err)
		}
		pos.EnPassantSquare = SquareBB(sq)
	}

	halfmove, err := strconv.Atoi(parts[4])
	if err != nil || halfmove < 0 {
		return nil, fmt.Errorf("%w: invalid halfmove clock %q", ErrMalformedFEN, parts[4])
	}

	fullmove, err := strconv.Atoi(parts[5])
	if err != nil || fullmove < 1 {
		return nil, fmt.Errorf("%w: invalid fullmove number %q", ErrMalformedFEN, parts[5])
	}

	return &State{
		Position:       pos,
		HalfmoveClock:  halfmove,
		FullmoveNumber: fullmove,
	}, nil
}

func parsePlacement(b *Board, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("%w: need 8 ranks, got %d", ErrMalformedFEN, len(ranks))
	}

	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, c := range rankStr {
			if file > 7 {
				return fmt.Errorf("%w: too many squares in rank %d", ErrMalformedFEN, rank+1)
			}
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			piece := PieceFromChar(byte(c))
			if piece == NoPiece {
				return fmt.Errorf("%w: invalid piece character %q", ErrMalformedFEN, c)
			}
			b.add(piece.Color(), piece.Type(), NewSquare(file, rank))
			file++
		}
		if file != 8 {
			return fmt.Errorf("%w: rank %d has %d squares, want 8", ErrMalformedFEN, rank+1, file)
		}
	}
	return nil
}

func parseCastling(pos *Position, castling string) error {
	if castling == "-" {
		return nil
	}
	for _, c := range castling {
		switch c {
		case 'K':
			pos.WhiteKingSideCastle = true
		case 'Q':
			pos.WhiteQueenSideCastle = true
		case 'k':
			pos.BlackKingSideCastle = true
		case 'q':
			pos.BlackQueenSideCastle = true
		default:
			return fmt.Errorf("%w: invalid castling character %q", ErrMalformedFEN, c)
		}
	}
	return nil
}

// FEN renders the State back to FEN notation, completing the writer the
// reference implementation left stubbed.
func (s *State) FEN() string {
	var sb strings.Builder
	pos := &s.Position

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			piece := pos.PieceAt(NewSquare(file, rank))
			if piece == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(piece.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if pos.SideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	castling := ""
	if pos.WhiteKingSideCastle {
		castling += "K"
	}
	if pos.WhiteQueenSideCastle {
		castling += "Q"
	}
	if pos.BlackKingSideCastle {
		castling += "k"
	}
	if pos.BlackQueenSideCastle {
		castling += "q"
	}
	if castling == "" {
		castling = "-"
	}
	sb.WriteString(castling)

	sb.WriteByte(' ')
	if pos.EnPassantSquare == 0 {
		sb.WriteByte('-')
	} else {
		sb.WriteString(pos.EnPassantSquare.LSB().String())
	}

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(s.HalfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(s.FullmoveNumber))

	return sb.String()
}
