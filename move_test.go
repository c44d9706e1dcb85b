package chess

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMoveUCIRoundTrip(t *testing.T) {
	testcases := []struct {
		uci string
	}{
		{"e2e4"},
		{"e7e5"},
		{"e1g1"},
		{"a7a8q"},
		{"b2a1r"},
	}

	for _, tc := range testcases {
		m, err := MoveFromUCI(tc.uci)
		require.NoError(t, err)
		require.Equal(t, tc.uci, m.UCI())
	}
}

func TestMoveFromUCIInvalid(t *testing.T) {
	testcases := []string{"", "e2", "e2e4qq", "i2e4", "e2e9", "e2e4x"}
	for _, s := range testcases {
		_, err := MoveFromUCI(s)
		require.ErrorIs(t, err, ErrInvalidUCI, "input %q", s)
	}
}

func TestMoveEquality(t *testing.T) {
	a := NewMove(SE2, SE4)
	b := NewMove(SE2, SE4)
	c := NewPromotionMove(SE7, SE8, Queen)
	require.Equal(t, a, b)
	require.NotEqual(t, a, c)
	require.Equal(t, NoMove, NoMove)
}
