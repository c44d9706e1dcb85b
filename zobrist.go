/*
zobrist.go implements Zobrist hashing: a randomized per-feature key
table, a from-scratch hash, and an incremental hash update applied
before each push.
*/
package chess

import "math/rand/v2"

// ZobristTable holds the random 64-bit keys used to fingerprint a
// position. A table is created once (InitZobrist) and shared, by
// reference, across hashing and search; Push and Pop do not use it.
type ZobristTable struct {
	Piece       [2][7][64]uint64 // [color][pieceType][square]; pieceType 0 unused
	Castling    [4]uint64        // a1, h1, a8, h8 corners
	EPFile      [8]uint64
	BlackToMove uint64
}

const (
	castlingA1 = 0
	castlingH1 = 1
	castlingA8 = 2
	castlingH8 = 3
)

// InitZobrist draws a fresh table from a hardware-seeded random source.
func InitZobrist() *ZobristTable {
	var z ZobristTable
	for c := Black; c <= White; c++ {
		for pt := Pawn; pt <= King; pt++ {
			for sq := Square(0); sq < 64; sq++ {
				z.Piece[c][pt][sq] = rand.Uint64()
			}
		}
	}
	for i := range z.Castling {
		z.Castling[i] = rand.Uint64()
	}
	for i := range z.EPFile {
		z.EPFile[i] = rand.Uint64()
	}
	z.BlackToMove = rand.Uint64()
	return &z
}

// HashZobrist computes the hash of b from scratch.
func HashZobrist(b *Board, z *ZobristTable) uint64 {
	var hash uint64
	for pt := Pawn; pt <= King; pt++ {
		bb := *b.pieceBB(pt)
		for bb != 0 {
			sq := popLSB(&bb)
			hash ^= z.Piece[b.colorAt(sq)][pt][sq]
		}
	}
	if b.CastlingRights&CastlingWhiteQueenside != 0 {
		hash ^= z.Castling[castlingA1]
	}
	if b.CastlingRights&CastlingWhiteKingside != 0 {
		hash ^= z.Castling[castlingH1]
	}
	if b.CastlingRights&CastlingBlackQueenside != 0 {
		hash ^= z.Castling[castlingA8]
	}
	if b.CastlingRights&CastlingBlackKingside != 0 {
		hash ^= z.Castling[castlingH8]
	}
	if b.EPSquare != NoSquare {
		hash ^= z.EPFile[squareFile(b.EPSquare)]
	}
	if b.Turn == Black {
		hash ^= z.BlackToMove
	}
	return hash
}

// UpdateZobrist computes the hash that will result from pushing m to b,
// without mutating b. It must be called before Push, since it reads
// b's pre-move state to decide what changed.
func UpdateZobrist(hash uint64, b *Board, z *ZobristTable, m Move) uint64 {
	turn := b.Turn
	movingPT := b.pieceTypeAt(m.From)

	if b.EPSquare != NoSquare {
		hash ^= z.EPFile[squareFile(b.EPSquare)]
	}

	hash ^= z.Piece[turn][movingPT][m.From]

	touched := BBSquares[m.From] | BBSquares[m.To]
	if b.CastlingRights&CastlingWhiteQueenside != 0 && touched&BBSquares[SA1] != 0 {
		hash ^= z.Castling[castlingA1]
	}
	if b.CastlingRights&CastlingWhiteKingside != 0 && touched&BBSquares[SH1] != 0 {
		hash ^= z.Castling[castlingH1]
	}
	if b.CastlingRights&CastlingBlackQueenside != 0 && touched&BBSquares[SA8] != 0 {
		hash ^= z.Castling[castlingA8]
	}
	if b.CastlingRights&CastlingBlackKingside != 0 && touched&BBSquares[SH8] != 0 {
		hash ^= z.Castling[castlingH8]
	}
	if movingPT == King {
		if turn == White {
			if b.CastlingRights&CastlingWhiteQueenside != 0 {
				hash ^= z.Castling[castlingA1]
			}
			if b.CastlingRights&CastlingWhiteKingside != 0 {
				hash ^= z.Castling[castlingH1]
			}
		} else {
			if b.CastlingRights&CastlingBlackQueenside != 0 {
				hash ^= z.Castling[castlingA8]
			}
			if b.CastlingRights&CastlingBlackKingside != 0 {
				hash ^= z.Castling[castlingH8]
			}
		}
	}

	diff := int(m.To) - int(m.From)
	isEPCapture := movingPT == Pawn && m.To == b.EPSquare && b.EPSquare != NoSquare && b.occupied&BBSquares[m.To] == 0

	if movingPT == Pawn && (diff == 16 || diff == -16) {
		hash ^= z.EPFile[squareFile(m.From)]
	} else if isEPCapture {
		var capSq Square
		if turn == White {
			capSq = m.To - 8
		} else {
			capSq = m.To + 8
		}
		hash ^= z.Piece[turn.Other()][Pawn][capSq]
	}

	if movingPT == King && abs(squareFile(m.To)-squareFile(m.From)) > 1 {
		rank := 0
		if turn == Black {
			rank = 7
		}
		var rookFrom, rookTo Square
		if squareFile(m.To) > squareFile(m.From) {
			rookFrom, rookTo = Square(rank*8+7), Square(rank*8+5)
		} else {
			rookFrom, rookTo = Square(rank*8+0), Square(rank*8+3)
		}
		hash ^= z.Piece[turn][Rook][rookFrom]
		hash ^= z.Piece[turn][Rook][rookTo]
	} else if capturedPT := b.pieceTypeAt(m.To); capturedPT != NoPieceType && !isEPCapture {
		hash ^= z.Piece[turn.Other()][capturedPT][m.To]
	}

	placedPT := movingPT
	if m.Promotion != NoPieceType {
		placedPT = m.Promotion
	}
	hash ^= z.Piece[turn][placedPT][m.To]

	hash ^= z.BlackToMove
	return hash
}
