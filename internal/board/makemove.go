package board

// UndoInfo stores information needed to undo a move. The full piece and
// occupancy state is snapshotted so UnmakeMove is a plain restore and can
// never drift from the incremental path.
type UndoInfo struct {
	CapturedPiece  Piece
	CastlingRights CastlingRights
	EnPassant      Square
	HalfMoveClock  int
	Hash           uint64
	PawnKey        uint64
	Pieces         [2][6]Bitboard
	Occupied       [2]Bitboard
	AllOccupied    Bitboard
	Valid          bool // True if move was actually applied
}

// MakeMove applies a move to the position and returns undo information.
// The move is applied as given; legality is the caller's responsibility.
// The running Zobrist hash is updated by XORing only the keys of the
// features the move changes, never recomputed from scratch:
//
//   - the side-to-move key, unconditionally every ply
//   - the moving piece's key on its from and to squares
//   - the captured piece's key on its actual square (which for en passant
//     is the captured pawn's square, not the destination)
//   - on promotion, the pawn's key out and the promoted piece's key in
//   - on castling, the rook's key on its two squares as well
//   - the key of each castling right revoked by the move
//   - the old en passant file key out and the new one in, when set
func (p *Position) MakeMove(m Move) UndoInfo {
	undo := UndoInfo{
		CapturedPiece:  NoPiece,
		CastlingRights: p.CastlingRights,
		EnPassant:      p.EnPassant,
		HalfMoveClock:  p.HalfMoveClock,
		Hash:           p.Hash,
		PawnKey:        p.PawnKey,
		Pieces:         p.Pieces,
		Occupied:       p.Occupied,
		AllOccupied:    p.AllOccupied,
		Valid:          false,
	}

	us := p.SideToMove
	them := us.Other()
	from := m.From()
	to := m.To()
	piece := p.PieceAt(from)

	// No piece to move, or moving the opponent's piece: leave the
	// position untouched so the caller can detect the bad move.
	if piece == NoPiece || piece.Color() != us {
		return undo
	}

	undo.Valid = true
	pt := piece.Type()

	// Update hash for side to move
	p.Hash ^= keys.SideToMove

	// Update hash for en passant
	if p.EnPassant != NoSquare {
		p.Hash ^= keys.EnPassant[p.EnPassant.File()]
	}
	p.EnPassant = NoSquare

	// Handle captures
	if m.IsEnPassant() {
		// The captured pawn is not on the destination square.
		var capturedSq Square
		if us == White {
			capturedSq = to - 8
		} else {
			capturedSq = to + 8
		}
		undo.CapturedPiece = p.removePiece(capturedSq)
		p.Hash ^= keys.Piece[them][Pawn][capturedSq]
		p.PawnKey ^= keys.Piece[them][Pawn][capturedSq]
	} else if captured := p.PieceAt(to); captured != NoPiece {
		undo.CapturedPiece = captured
		p.removePiece(to)
		p.Hash ^= keys.Piece[them][captured.Type()][to]
		if captured.Type() == Pawn {
			p.PawnKey ^= keys.Piece[them][Pawn][to]
		}
	}

	// Move the piece
	p.movePiece(from, to)
	p.Hash ^= keys.Piece[us][pt][from]
	p.Hash ^= keys.Piece[us][pt][to]

	if pt == Pawn {
		p.PawnKey ^= keys.Piece[us][Pawn][from]
		p.PawnKey ^= keys.Piece[us][Pawn][to]
	}

	// Handle promotion: swap the pawn's key for the promoted piece's key
	if m.IsPromotion() {
		promoPt := m.Promotion()
		p.Pieces[us][Pawn] &^= SquareBB(to)
		p.Pieces[us][promoPt] |= SquareBB(to)
		p.Hash ^= keys.Piece[us][Pawn][to]
		p.Hash ^= keys.Piece[us][promoPt][to]
		p.PawnKey ^= keys.Piece[us][Pawn][to]
	}

	// Handle castling: the rook hops as well
	if m.IsCastling() {
		var rookFrom, rookTo Square
		if to > from {
			// Kingside
			rookFrom = NewSquare(7, from.Rank())
			rookTo = NewSquare(5, from.Rank())
		} else {
			// Queenside
			rookFrom = NewSquare(0, from.Rank())
			rookTo = NewSquare(3, from.Rank())
		}
		p.movePiece(rookFrom, rookTo)
		p.Hash ^= keys.Piece[us][Rook][rookFrom]
		p.Hash ^= keys.Piece[us][Rook][rookTo]
	}

	// Update castling rights
	if pt == King {
		if us == White {
			p.CastlingRights &^= WhiteKingSideCastle | WhiteQueenSideCastle
		} else {
			p.CastlingRights &^= BlackKingSideCastle | BlackQueenSideCastle
		}
	}

	// Rook moves or captures affect castling
	if from == A1 || to == A1 {
		p.CastlingRights &^= WhiteQueenSideCastle
	}
	if from == H1 || to == H1 {
		p.CastlingRights &^= WhiteKingSideCastle
	}
	if from == A8 || to == A8 {
		p.CastlingRights &^= BlackQueenSideCastle
	}
	if from == H8 || to == H8 {
		p.CastlingRights &^= BlackKingSideCastle
	}

	// XOR out the key of each right revoked by this move. Each right has
	// its own key, so the symmetric difference is exactly the update.
	p.Hash ^= castlingHash(undo.CastlingRights ^ p.CastlingRights)

	// Set en passant square for double pawn push
	if pt == Pawn && abs(int(to)-int(from)) == 16 {
		epSquare := Square((int(from) + int(to)) / 2)
		p.EnPassant = epSquare
		p.Hash ^= keys.EnPassant[epSquare.File()]
	}

	// Update half-move clock
	if pt == Pawn || undo.CapturedPiece != NoPiece {
		p.HalfMoveClock = 0
	} else {
		p.HalfMoveClock++
	}

	// Update full-move number
	if us == Black {
		p.FullMoveNumber++
	}

	// Switch side to move
	p.SideToMove = them

	return undo
}

// UnmakeMove undoes a move using the stored undo information.
func (p *Position) UnmakeMove(m Move, undo UndoInfo) {
	us := p.SideToMove.Other()

	p.CastlingRights = undo.CastlingRights
	p.EnPassant = undo.EnPassant
	p.HalfMoveClock = undo.HalfMoveClock
	p.Hash = undo.Hash
	p.PawnKey = undo.PawnKey
	p.Pieces = undo.Pieces
	p.Occupied = undo.Occupied
	p.AllOccupied = undo.AllOccupied
	p.SideToMove = us

	if us == Black {
		p.FullMoveNumber--
	}
}

// NullMoveUndo stores state for unmake of null move.
// Returned by MakeNullMove and passed to UnmakeNullMove.
type NullMoveUndo struct {
	EnPassant Square
	Hash      uint64
}

// MakeNullMove passes the turn without moving: the en passant file key is
// XORed out (if set) and the side-to-move key is toggled.
// Used for null move pruning in search.
func (p *Position) MakeNullMove() NullMoveUndo {
	undo := NullMoveUndo{
		EnPassant: p.EnPassant,
		Hash:      p.Hash,
	}

	if p.EnPassant != NoSquare {
		p.Hash ^= keys.EnPassant[p.EnPassant.File()]
	}
	p.EnPassant = NoSquare

	p.SideToMove = p.SideToMove.Other()
	p.Hash ^= keys.SideToMove

	return undo
}

// UnmakeNullMove undoes a null move.
func (p *Position) UnmakeNullMove(undo NullMoveUndo) {
	p.EnPassant = undo.EnPassant
	p.Hash = undo.Hash
	p.SideToMove = p.SideToMove.Other()
}
