package board

import "github.com/salmancheema155/chesshash/internal/zobrist"

// Opening-book keys. This is a second, fixed key set whose seed never
// changes, so book entries stay valid even if the engine's own table is
// regenerated. Note the conventions differ from the main hash: the en
// passant file only counts when a pawn can actually capture, and the
// side-to-move key marks white to move.
var (
	bookPieces     [12][64]uint64 // [piece kind][square]
	bookCastling   [4]uint64      // [KQkq]
	bookEnPassant  [8]uint64      // [file]
	bookSideToMove uint64
)

// bookSeed is fixed independently of the engine table's seed.
const bookSeed = 0x37b4a4b3f0d1c0d0

func init() {
	rng := zobrist.NewPRNG(bookSeed)

	for piece := 0; piece < 12; piece++ {
		for sq := 0; sq < 64; sq++ {
			bookPieces[piece][sq] = rng.Next()
		}
	}
	for i := 0; i < 4; i++ {
		bookCastling[i] = rng.Next()
	}
	for f := 0; f < 8; f++ {
		bookEnPassant[f] = rng.Next()
	}
	bookSideToMove = rng.Next()
}

// bookPieceKind maps [color][pieceType] to the book key index.
// Black pieces occupy kinds 0-5, white pieces 6-11.
var bookPieceKind = [2][6]int{
	{6, 7, 8, 9, 10, 11}, // White: p=6, N=7, B=8, R=9, Q=10, K=11
	{0, 1, 2, 3, 4, 5},   // Black: p=0, N=1, B=2, R=3, Q=4, K=5
}

// BookHash computes the opening-book hash key for the position.
// Always computed from scratch; book probes happen once per move, not per
// search node, so there is nothing to maintain incrementally.
func (p *Position) BookHash() uint64 {
	var hash uint64

	for color := White; color <= Black; color++ {
		for pt := Pawn; pt <= King; pt++ {
			bb := p.Pieces[color][pt]
			for bb != 0 {
				sq := bb.PopLSB()
				hash ^= bookPieces[bookPieceKind[color][pt]][sq]
			}
		}
	}

	if p.CastlingRights&WhiteKingSideCastle != 0 {
		hash ^= bookCastling[0]
	}
	if p.CastlingRights&WhiteQueenSideCastle != 0 {
		hash ^= bookCastling[1]
	}
	if p.CastlingRights&BlackKingSideCastle != 0 {
		hash ^= bookCastling[2]
	}
	if p.CastlingRights&BlackQueenSideCastle != 0 {
		hash ^= bookCastling[3]
	}

	if p.EnPassant != NoSquare && p.epCapturable() {
		hash ^= bookEnPassant[p.EnPassant.File()]
	}

	if p.SideToMove == White {
		hash ^= bookSideToMove
	}

	return hash
}

// epCapturable reports whether a pawn of the side to move stands next to
// the en passant square and could capture onto it.
func (p *Position) epCapturable() bool {
	file := p.EnPassant.File()

	// The capturing pawn sits beside the en passant file, on rank 5 for
	// white or rank 4 for black.
	rank := 4
	if p.SideToMove == Black {
		rank = 3
	}

	pawns := p.Pieces[p.SideToMove][Pawn]
	if file > 0 && pawns.IsSet(NewSquare(file-1, rank)) {
		return true
	}
	if file < 7 && pawns.IsSet(NewSquare(file+1, rank)) {
		return true
	}
	return false
}
