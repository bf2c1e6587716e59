// Package board holds the position state and incremental Zobrist hashing
// contract consumed by a chess engine. It applies moves it is given and
// keeps the running hash exact; generating or validating those moves is
// the caller's concern.
package board

import "fmt"

// CastlingRights represents the available castling options.
type CastlingRights uint8

const (
	WhiteKingSideCastle  CastlingRights = 1 << iota // K
	WhiteQueenSideCastle                            // Q
	BlackKingSideCastle                             // k
	BlackQueenSideCastle                            // q
	NoCastling           CastlingRights = 0
	AllCastling          CastlingRights = WhiteKingSideCastle | WhiteQueenSideCastle | BlackKingSideCastle | BlackQueenSideCastle
)

// String returns the FEN castling rights string.
func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	s := ""
	if cr&WhiteKingSideCastle != 0 {
		s += "K"
	}
	if cr&WhiteQueenSideCastle != 0 {
		s += "Q"
	}
	if cr&BlackKingSideCastle != 0 {
		s += "k"
	}
	if cr&BlackQueenSideCastle != 0 {
		s += "q"
	}
	return s
}

// CanCastle returns true if the given side can castle in the given direction.
func (cr CastlingRights) CanCastle(c Color, kingSide bool) bool {
	if c == White {
		if kingSide {
			return cr&WhiteKingSideCastle != 0
		}
		return cr&WhiteQueenSideCastle != 0
	}
	if kingSide {
		return cr&BlackKingSideCastle != 0
	}
	return cr&BlackQueenSideCastle != 0
}

// Position represents a complete chess position.
type Position struct {
	// Piece bitboards: [Color][PieceType]
	Pieces [2][6]Bitboard

	// Occupancy bitboards (cached for efficiency)
	Occupied    [2]Bitboard // All pieces of each color
	AllOccupied Bitboard    // All pieces on the board

	// Game state
	SideToMove     Color
	CastlingRights CastlingRights
	EnPassant      Square // Target square for en passant, NoSquare if none
	HalfMoveClock  int    // Moves since last pawn move or capture (for 50-move rule)
	FullMoveNumber int    // Full move counter, starts at 1

	// Zobrist hash, maintained incrementally by MakeMove/UnmakeMove
	Hash uint64

	// Pawn hash key for pawn structure caching
	PawnKey uint64
}

// NewPosition creates the starting position.
func NewPosition() *Position {
	pos, _ := ParseFEN(StartFEN)
	return pos
}

// Copy creates a deep copy of the position.
func (p *Position) Copy() *Position {
	newPos := *p
	return &newPos
}

// PieceAt returns the piece at the given square, or NoPiece if empty.
func (p *Position) PieceAt(sq Square) Piece {
	bb := SquareBB(sq)

	if p.AllOccupied&bb == 0 {
		return NoPiece
	}

	var c Color
	if p.Occupied[White]&bb != 0 {
		c = White
	} else {
		c = Black
	}

	for pt := Pawn; pt <= King; pt++ {
		if p.Pieces[c][pt]&bb != 0 {
			return NewPiece(pt, c)
		}
	}

	return NoPiece
}

// IsEmpty returns true if the square is empty.
func (p *Position) IsEmpty(sq Square) bool {
	return p.AllOccupied&SquareBB(sq) == 0
}

// setPiece places a piece on a square (does not update hash).
func (p *Position) setPiece(piece Piece, sq Square) {
	if piece == NoPiece {
		return
	}
	c := piece.Color()
	pt := piece.Type()
	bb := SquareBB(sq)

	p.Pieces[c][pt] |= bb
	p.Occupied[c] |= bb
	p.AllOccupied |= bb
}

// removePiece removes a piece from a square (does not update hash).
func (p *Position) removePiece(sq Square) Piece {
	piece := p.PieceAt(sq)
	if piece == NoPiece {
		return NoPiece
	}

	c := piece.Color()
	pt := piece.Type()
	bb := SquareBB(sq)

	p.Pieces[c][pt] &^= bb
	p.Occupied[c] &^= bb
	p.AllOccupied &^= bb

	return piece
}

// movePiece moves a piece from one square to another (does not update hash).
func (p *Position) movePiece(from, to Square) {
	piece := p.PieceAt(from)
	if piece == NoPiece {
		return
	}

	c := piece.Color()
	pt := piece.Type()
	moveBB := SquareBB(from) | SquareBB(to)

	p.Pieces[c][pt] ^= moveBB
	p.Occupied[c] ^= moveBB
	p.AllOccupied ^= moveBB
}

// updateOccupied recalculates occupancy bitboards from piece bitboards.
func (p *Position) updateOccupied() {
	p.Occupied[White] = Empty
	p.Occupied[Black] = Empty

	for pt := Pawn; pt <= King; pt++ {
		p.Occupied[White] |= p.Pieces[White][pt]
		p.Occupied[Black] |= p.Pieces[Black][pt]
	}

	p.AllOccupied = p.Occupied[White] | p.Occupied[Black]
}

// ComputeHash computes the Zobrist hash for the position from scratch:
// the XOR of the piece key for every occupied square, the key for every
// held castling right, the en passant file key if an en passant square is
// set, and the side-to-move key when black is to move. The incrementally
// maintained Hash must always equal this value.
func (p *Position) ComputeHash() uint64 {
	var hash uint64

	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			bb := p.Pieces[c][pt]
			for bb != 0 {
				sq := bb.PopLSB()
				hash ^= keys.Piece[c][pt][sq]
			}
		}
	}

	if p.SideToMove == Black {
		hash ^= keys.SideToMove
	}

	hash ^= castlingHash(p.CastlingRights)

	if p.EnPassant != NoSquare {
		hash ^= keys.EnPassant[p.EnPassant.File()]
	}

	return hash
}

// ComputePawnKey computes the pawn hash key from scratch.
// Only includes pawn positions for pawn structure caching.
func (p *Position) ComputePawnKey() uint64 {
	var key uint64

	for c := White; c <= Black; c++ {
		bb := p.Pieces[c][Pawn]
		for bb != 0 {
			sq := bb.PopLSB()
			key ^= keys.Piece[c][Pawn][sq]
		}
	}

	return key
}

// String returns a visual representation of the position.
func (p *Position) String() string {
	s := "\n"
	for rank := 7; rank >= 0; rank-- {
		s += fmt.Sprintf("%d  ", rank+1)
		for file := 0; file < 8; file++ {
			sq := NewSquare(file, rank)
			piece := p.PieceAt(sq)
			if piece == NoPiece {
				s += ". "
			} else {
				s += piece.String() + " "
			}
		}
		s += "\n"
	}
	s += "\n   a b c d e f g h\n\n"
	s += fmt.Sprintf("Side to move: %s\n", p.SideToMove)
	s += fmt.Sprintf("Castling: %s\n", p.CastlingRights)
	s += fmt.Sprintf("En passant: %s\n", p.EnPassant)
	s += fmt.Sprintf("Half-move clock: %d\n", p.HalfMoveClock)
	s += fmt.Sprintf("Full move: %d\n", p.FullMoveNumber)
	s += fmt.Sprintf("Hash: %016x\n", p.Hash)
	return s
}

// Clear resets the position to an empty board.
func (p *Position) Clear() {
	*p = Position{
		EnPassant:      NoSquare,
		FullMoveNumber: 1,
	}
}

// Validate checks if the position is structurally valid.
func (p *Position) Validate() error {
	if p.Pieces[White][King].PopCount() != 1 {
		return fmt.Errorf("white must have exactly one king")
	}
	if p.Pieces[Black][King].PopCount() != 1 {
		return fmt.Errorf("black must have exactly one king")
	}

	if (p.Pieces[White][Pawn]|p.Pieces[Black][Pawn])&(Rank1|Rank8) != 0 {
		return fmt.Errorf("pawns cannot be on rank 1 or 8")
	}

	return nil
}
