package chess

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluateSymmetricStartingPosition(t *testing.T) {
	b := NewBoard()
	require.Zero(t, Evaluate(&b), "the starting position is materially and positionally symmetric")
}

func TestEvaluateFavorsExtraQueen(t *testing.T) {
	b, err := FromFEN("4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	require.NoError(t, err)
	require.Positive(t, Evaluate(&b))
}

func TestEvaluateFromMoverPerspective(t *testing.T) {
	b, err := FromFEN("4k3/8/8/8/8/8/8/3QK3 b - - 0 1")
	require.NoError(t, err)
	require.Negative(t, Evaluate(&b), "black to move is down a queen")
}

func BenchmarkEvaluate(b *testing.B) {
	board := NewBoard()
	for b.Loop() {
		Evaluate(&board)
	}
}
