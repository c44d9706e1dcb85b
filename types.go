/*
Package chess implements bitboard-based chess position representation,
fully legal move generation, Zobrist hashing, and a negamax search over
a tapered material+piece-square evaluation.

types.go contains declarations of Square/Color/PieceType/BitBoard and
their sentinel values.
*/
package chess

// Square is a board square index: file (0..7, a..h) in the low 3 bits,
// rank (0..7, 1..8) in bits 3..5, so square = rank*8 + file.
type Square int

// NoSquare is a sentinel distinguishable from any valid square.
const NoSquare Square = -1

const (
	SA1 Square = iota
	SB1
	SC1
	SD1
	SE1
	SF1
	SG1
	SH1
	SA2
	SB2
	SC2
	SD2
	SE2
	SF2
	SG2
	SH2
	SA3
	SB3
	SC3
	SD3
	SE3
	SF3
	SG3
	SH3
	SA4
	SB4
	SC4
	SD4
	SE4
	SF4
	SG4
	SH4
	SA5
	SB5
	SC5
	SD5
	SE5
	SF5
	SG5
	SH5
	SA6
	SB6
	SC6
	SD6
	SE6
	SF6
	SG6
	SH6
	SA7
	SB7
	SC7
	SD7
	SE7
	SF7
	SG7
	SH7
	SA8
	SB8
	SC8
	SD8
	SE8
	SF8
	SG8
	SH8
)

// Square name table, a1..h8 in board order (rank 1 first).
var squareNames = [64]string{
	"a1", "b1", "c1", "d1", "e1", "f1", "g1", "h1",
	"a2", "b2", "c2", "d2", "e2", "f2", "g2", "h2",
	"a3", "b3", "c3", "d3", "e3", "f3", "g3", "h3",
	"a4", "b4", "c4", "d4", "e4", "f4", "g4", "h4",
	"a5", "b5", "c5", "d5", "e5", "f5", "g5", "h5",
	"a6", "b6", "c6", "d6", "e6", "f6", "g6", "h6",
	"a7", "b7", "c7", "d7", "e7", "f7", "g7", "h7",
	"a8", "b8", "c8", "d8", "e8", "f8", "g8", "h8",
}

// String renders the square in algebraic notation, e.g. "e4".
func (s Square) String() string {
	if s < 0 || s > 63 {
		return "-"
	}
	return squareNames[s]
}

// squareFromName parses algebraic notation ("e4") into a Square.
// Returns NoSquare and false if str is not a well-formed square name.
func squareFromName(str string) (Square, bool) {
	if len(str) != 2 {
		return NoSquare, false
	}
	file := str[0]
	rank := str[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, false
	}
	return Square(int(rank-'1')*8 + int(file-'a')), true
}

// Color is the two players; White XOR 1 == Black and vice versa.
type Color int

const (
	Black Color = 0
	White Color = 1
)

// NoColor is a sentinel for "no piece here".
const NoColor Color = -1

// Other returns the opposing color.
func (c Color) Other() Color { return c ^ 1 }

// PieceType enumerates the six piece kinds, plus NoPieceType for "empty".
type PieceType int

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

var pieceSymbols = [...]byte{0, 'p', 'n', 'b', 'r', 'q', 'k'}

// Symbol returns the FEN letter for (pt, color): uppercase for White.
func (pt PieceType) Symbol(c Color) byte {
	sym := pieceSymbols[pt]
	if c == White {
		sym -= 'a' - 'A'
	}
	return sym
}

// BitBoard is a 64-bit mask, one bit per square.
type BitBoard uint64

const (
	BBEmpty BitBoard = 0
	BBAll   BitBoard = 0xFFFFFFFFFFFFFFFF
)

// BBSquares holds single-bit masks, BBSquares[s] == 1<<s.
var BBSquares [64]BitBoard

func init() {
	for s := Square(0); s < 64; s++ {
		BBSquares[s] = BitBoard(1) << uint(s)
	}
}

// CastlingRights is a bitmask over the four rook-home squares still
// eligible to castle with (a1, h1, a8, h8 bits, see Castling* consts).
type CastlingRights BitBoard

const (
	CastlingWhiteKingside  CastlingRights = CastlingRights(BitBoard(1) << SH1)
	CastlingWhiteQueenside CastlingRights = CastlingRights(BitBoard(1) << SA1)
	CastlingBlackKingside  CastlingRights = CastlingRights(BitBoard(1) << SH8)
	CastlingBlackQueenside CastlingRights = CastlingRights(BitBoard(1) << SA8)
)

// Outcome is the terminal classification of a position.
type Outcome int

const (
	Ongoing Outcome = iota
	Draw
	WhiteWin
	BlackWin
)
