package zobrist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeysFlattensAllBlocks(t *testing.T) {
	table := MustGenerate(DefaultSeed)
	keys := table.Keys()

	require.Len(t, keys, NumKeys)
	assert.Equal(t, table.Piece[0][0][0], keys[0])
	assert.Equal(t, table.SideToMove, keys[NumKeys-1])
}

// Keys are drawn uniformly from the full 64-bit range, so for any sampled
// seed the 781 keys should be pairwise distinct. A collision here is
// astronomically unlikely with a healthy generator and would point at a
// generation bug.
func TestTableUniqueness(t *testing.T) {
	for _, seed := range []uint64{DefaultSeed, 1, 999, 0xABCDEF0123456789} {
		table := MustGenerate(seed)
		if err := table.Validate(); err != nil {
			t.Errorf("seed 0x%x: %v", seed, err)
		}
	}
}

func TestValidateDetectsZeroKey(t *testing.T) {
	table := MustGenerate(DefaultSeed)
	table.EnPassant[3] = 0
	assert.Error(t, table.Validate())
}

func TestValidateDetectsDuplicate(t *testing.T) {
	table := MustGenerate(DefaultSeed)
	table.Castling[0] = table.Piece[1][2][30]
	assert.Error(t, table.Validate())
}

func TestAccessors(t *testing.T) {
	table := MustGenerate(DefaultSeed)

	k, err := table.PieceKey(1, 5, 63)
	require.NoError(t, err)
	assert.Equal(t, table.Piece[1][5][63], k)

	k, err = table.CastlingKey(2)
	require.NoError(t, err)
	assert.Equal(t, table.Castling[2], k)

	k, err = table.EnPassantKey(7)
	require.NoError(t, err)
	assert.Equal(t, table.EnPassant[7], k)

	assert.Equal(t, table.SideToMove, table.SideToMoveKey())
}

func TestAccessorsRejectOutOfRange(t *testing.T) {
	table := MustGenerate(DefaultSeed)

	cases := []struct {
		name string
		call func() error
	}{
		{"color low", func() error { _, err := table.PieceKey(-1, 0, 0); return err }},
		{"color high", func() error { _, err := table.PieceKey(NumColors, 0, 0); return err }},
		{"piece high", func() error { _, err := table.PieceKey(0, NumPieceTypes, 0); return err }},
		{"square high", func() error { _, err := table.PieceKey(0, 0, NumSquares); return err }},
		{"castling high", func() error { _, err := table.CastlingKey(NumCastlingRights); return err }},
		{"file low", func() error { _, err := table.EnPassantKey(-1); return err }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, tc.call())
		})
	}
}
