package chess

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBaseBoardStartingPosition(t *testing.T) {
	initAttackTables()
	b := NewBaseBoard()

	require.Equal(t, 16, popCount(b.occupiedColor[White]))
	require.Equal(t, 16, popCount(b.occupiedColor[Black]))
	require.Equal(t, b.occupied, b.occupiedColor[White]|b.occupiedColor[Black])
	require.Zero(t, b.occupiedColor[White]&b.occupiedColor[Black])
	require.Equal(t, b.occupied, b.pawns|b.knights|b.bishops|b.rooks|b.queens|b.kings)

	require.Equal(t, SE1, b.king(White))
	require.Equal(t, SE8, b.king(Black))
	require.Equal(t, Pawn, b.pieceTypeAt(SE2))
	require.Equal(t, White, b.colorAt(SE2))
	require.Equal(t, NoPieceType, b.pieceTypeAt(SE4))
}

func TestSetPieceAtRemovePieceAt(t *testing.T) {
	initAttackTables()
	var b BaseBoard
	b.setPieceAt(SD4, Knight, White)

	require.Equal(t, Knight, b.pieceTypeAt(SD4))
	require.Equal(t, White, b.colorAt(SD4))

	removed := b.removePieceAt(SD4)
	require.Equal(t, Knight, removed)
	require.Equal(t, NoPieceType, b.pieceTypeAt(SD4))
	require.Zero(t, b.occupied)
}

func TestAttackersMask(t *testing.T) {
	initAttackTables()
	var b BaseBoard
	b.setBoardFEN("8/8/8/3k4/8/3R4/8/K7")

	attackers := b.attackersMask(White, SD5, b.occupied)
	require.Equal(t, BBSquares[SD3], attackers, "the white rook on d3 attacks d5 along the file")
}

func TestPinMask(t *testing.T) {
	initAttackTables()
	var b BaseBoard
	// White king e1, white bishop e2 pinned by black rook e8.
	b.setBoardFEN("4r3/8/8/8/8/8/4B3/4K3")

	pin := b.pinMask(White, SE2)
	require.NotEqual(t, BBAll, pin, "bishop on e2 is pinned")
	require.NotZero(t, pin&BBSquares[SE2])
	require.NotZero(t, pin&BBSquares[SE8])

	// A square not on any pin ray (here the empty a1) returns BBAll.
	require.Equal(t, BBAll, b.pinMask(White, SA1))
}

func TestSetBoardFENRoundTrip(t *testing.T) {
	initAttackTables()
	var b BaseBoard
	fen := "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"
	b.setBoardFEN(fen)
	require.Equal(t, fen, b.boardFEN())
}
