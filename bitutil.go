/*
bitutil.go implements bitboard-level primitives (lsb, msb, popcount,
square distance) shared by attack generation, move generation, and
evaluation.
*/
package chess

import "math/bits"

// lsb returns the index of the least-significant set bit of bb.
// Undefined (returns 64) if bb == 0; callers must guard with a nonzero check.
func lsb(bb BitBoard) Square {
	return Square(bits.TrailingZeros64(uint64(bb)))
}

// msb returns the index of the most-significant set bit of bb.
func msb(bb BitBoard) Square {
	return Square(63 - bits.LeadingZeros64(uint64(bb)))
}

// popLSB clears and returns the least-significant set bit's index.
func popLSB(bb *BitBoard) Square {
	s := lsb(*bb)
	*bb &= *bb - 1
	return s
}

// popCount counts the set bits of bb.
func popCount(bb BitBoard) int {
	return bits.OnesCount64(uint64(bb))
}

func squareFile(s Square) int { return int(s) & 7 }
func squareRank(s Square) int { return int(s) >> 3 }

// squareDistance is the Chebyshev (king) distance between two squares.
func squareDistance(a, b Square) int {
	df := squareFile(a) - squareFile(b)
	if df < 0 {
		df = -df
	}
	dr := squareRank(a) - squareRank(b)
	if dr < 0 {
		dr = -dr
	}
	if df > dr {
		return df
	}
	return dr
}
