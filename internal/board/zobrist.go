package board

import "github.com/salmancheema155/chesshash/internal/zobrist"

// keys is the engine-facing Zobrist table. It is generated once from the
// fixed default seed, so every build hashes positions identically, and is
// never mutated afterwards, so search threads read it without locking.
var keys = zobrist.MustGenerate(zobrist.DefaultSeed)

// PieceKey returns the Zobrist key for a piece on a square.
func PieceKey(c Color, pt PieceType, sq Square) uint64 {
	return keys.Piece[c][pt][sq]
}

// CastlingRightKey returns the key for a single castling right.
// Right ordering: 0=white kingside, 1=white queenside, 2=black kingside,
// 3=black queenside, matching the CastlingRights bit layout.
func CastlingRightKey(right int) uint64 {
	return keys.Castling[right]
}

// EnPassantKey returns the Zobrist key for an en passant file (0=a .. 7=h).
func EnPassantKey(file int) uint64 {
	return keys.EnPassant[file]
}

// SideToMoveKey returns the key XORed into the hash when black is to move.
func SideToMoveKey() uint64 {
	return keys.SideToMove
}

// castlingHash returns the XOR of the per-right keys for every right held
// in cr. Because each right has an independent key, hashing the symmetric
// difference of two rights masks gives the update for a rights change.
func castlingHash(cr CastlingRights) uint64 {
	var h uint64
	for i := 0; i < zobrist.NumCastlingRights; i++ {
		if cr&(CastlingRights(1)<<i) != 0 {
			h ^= keys.Castling[i]
		}
	}
	return h
}
