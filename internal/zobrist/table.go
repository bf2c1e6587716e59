// Package zobrist generates and serializes the random key tables used for
// incremental chess position hashing. A Table is produced once, either at
// build time by cmd/zobrist-gen or at startup from a fixed seed, and is
// never mutated afterwards, so concurrent readers need no synchronization.
package zobrist

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// Table dimensions. The piece block is indexed [color][pieceType][square].
const (
	NumColors         = 2
	NumPieceTypes     = 6 // pawn, knight, bishop, rook, queen, king
	NumSquares        = 64
	NumCastlingRights = 4 // white kingside, white queenside, black kingside, black queenside
	NumFiles          = 8

	// NumKeys is the total key count across all blocks.
	NumKeys = NumColors*NumPieceTypes*NumSquares + NumCastlingRights + NumFiles + 1
)

// Table holds one complete set of Zobrist keys. A position's hash is the
// XOR of the Piece key for every occupied square, the Castling key for
// every held right, the EnPassant key for the current en passant file if
// any, and SideToMove when black is to move.
type Table struct {
	Piece      [NumColors][NumPieceTypes][NumSquares]uint64
	Castling   [NumCastlingRights]uint64
	EnPassant  [NumFiles]uint64
	SideToMove uint64
}

// PieceKey returns the key for a piece of the given color and type on the
// given square. Indexes out of range return an error rather than panicking
// so that generated consumers can validate lookups cheaply.
func (t *Table) PieceKey(color, pieceType, square int) (uint64, error) {
	if color < 0 || color >= NumColors {
		return 0, errors.Errorf("zobrist: color index %d out of range", color)
	}
	if pieceType < 0 || pieceType >= NumPieceTypes {
		return 0, errors.Errorf("zobrist: piece type index %d out of range", pieceType)
	}
	if square < 0 || square >= NumSquares {
		return 0, errors.Errorf("zobrist: square index %d out of range", square)
	}
	return t.Piece[color][pieceType][square], nil
}

// CastlingKey returns the key for a single castling right.
// Right ordering: 0=white kingside, 1=white queenside, 2=black kingside,
// 3=black queenside.
func (t *Table) CastlingKey(right int) (uint64, error) {
	if right < 0 || right >= NumCastlingRights {
		return 0, errors.Errorf("zobrist: castling right index %d out of range", right)
	}
	return t.Castling[right], nil
}

// EnPassantKey returns the key for the given file (0=a .. 7=h).
func (t *Table) EnPassantKey(file int) (uint64, error) {
	if file < 0 || file >= NumFiles {
		return 0, errors.Errorf("zobrist: file index %d out of range", file)
	}
	return t.EnPassant[file], nil
}

// SideToMoveKey returns the key XORed into the hash when black is to move.
func (t *Table) SideToMoveKey() uint64 {
	return t.SideToMove
}

// Keys returns all keys of the table flattened in generation order:
// piece block by color, piece type, square, then castling, en passant,
// and finally the side-to-move key.
func (t *Table) Keys() []uint64 {
	keys := make([]uint64, 0, NumKeys)
	for c := 0; c < NumColors; c++ {
		for pt := 0; pt < NumPieceTypes; pt++ {
			keys = append(keys, t.Piece[c][pt][:]...)
		}
	}
	keys = append(keys, t.Castling[:]...)
	keys = append(keys, t.EnPassant[:]...)
	keys = append(keys, t.SideToMove)
	return keys
}

// Validate checks that the table is fully populated and free of duplicate
// keys. A zero key almost certainly means an uninitialized slot, and a
// duplicate would make two distinct position features hash-equivalent, so
// both are rejected before the table is serialized or archived.
func (t *Table) Validate() error {
	keys := t.Keys()
	for i, k := range keys {
		if k == 0 {
			return errors.Errorf("zobrist: key %d of %d is zero (table incomplete?)", i, NumKeys)
		}
	}

	sorted := slices.Clone(keys)
	slices.Sort(sorted)
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			return errors.Errorf("zobrist: duplicate key 0x%016x", sorted[i])
		}
	}
	return nil
}
