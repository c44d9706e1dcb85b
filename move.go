// move.go implements the Move value type and its UCI string codec.
package chess

import (
	"errors"
	"strings"
)

// ErrInvalidUCI is returned when a string is not a well-formed UCI move.
var ErrInvalidUCI = errors.New("chess: invalid uci move string")

// Move is a (from, to, promotion) triple. Promotion is NoPieceType for
// non-promoting moves.
type Move struct {
	From, To  Square
	Promotion PieceType
}

// NoMove is a sentinel move that never matches a real move.
var NoMove = Move{From: NoSquare, To: NoSquare, Promotion: NoPieceType}

// NewMove builds a non-promoting move.
func NewMove(from, to Square) Move {
	return Move{From: from, To: to, Promotion: NoPieceType}
}

// NewPromotionMove builds a promoting move.
func NewPromotionMove(from, to Square, promotion PieceType) Move {
	return Move{From: from, To: to, Promotion: promotion}
}

var promotionLetters = map[PieceType]byte{Knight: 'n', Bishop: 'b', Rook: 'r', Queen: 'q'}
var promotionPieces = map[byte]PieceType{'n': Knight, 'b': Bishop, 'r': Rook, 'q': Queen}

// UCI encodes the move in long algebraic notation: two square names,
// optionally followed by a promotion letter (q|r|b|n).
func (m Move) UCI() string {
	if m == NoMove {
		return "0000"
	}
	var b strings.Builder
	b.Grow(5)
	b.WriteString(m.From.String())
	b.WriteString(m.To.String())
	if m.Promotion != NoPieceType {
		b.WriteByte(promotionLetters[m.Promotion])
	}
	return b.String()
}

// String implements fmt.Stringer.
func (m Move) String() string { return m.UCI() }

// MoveFromUCI parses a 4- or 5-character UCI move string.
func MoveFromUCI(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return NoMove, ErrInvalidUCI
	}
	from, ok := squareFromName(s[0:2])
	if !ok {
		return NoMove, ErrInvalidUCI
	}
	to, ok := squareFromName(s[2:4])
	if !ok {
		return NoMove, ErrInvalidUCI
	}
	promo := NoPieceType
	if len(s) == 5 {
		pt, ok := promotionPieces[s[4]]
		if !ok {
			return NoMove, ErrInvalidUCI
		}
		promo = pt
	}
	return Move{From: from, To: to, Promotion: promo}, nil
}
