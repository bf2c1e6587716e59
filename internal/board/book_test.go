package board

import "testing"

func TestBookHashDeterministic(t *testing.T) {
	a := NewPosition()
	b := NewPosition()

	if a.BookHash() != b.BookHash() {
		t.Errorf("start position book hash not deterministic")
	}
	if a.BookHash() == a.Hash {
		t.Errorf("book key set should be independent of the engine table")
	}
}

// The book convention only hashes the en passant file when a pawn of the
// side to move can actually capture onto the en passant square.
func TestBookHashEnPassantCapturability(t *testing.T) {
	// After 1. e4 no black pawn stands beside e3, so the en passant
	// right is dead weight and must not change the book hash.
	withEP, err := ParseFEN("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	if err != nil {
		t.Fatalf("parse FEN: %v", err)
	}
	withoutEP, err := ParseFEN("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1")
	if err != nil {
		t.Fatalf("parse FEN: %v", err)
	}
	if withEP.BookHash() != withoutEP.BookHash() {
		t.Errorf("non-capturable en passant file changed the book hash")
	}

	// With a black pawn on d4, the e3 square is capturable and the file
	// key must be hashed in.
	capturable, err := ParseFEN("rnbqkbnr/ppp1pppp/8/8/3pP3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 2")
	if err != nil {
		t.Fatalf("parse FEN: %v", err)
	}
	base, err := ParseFEN("rnbqkbnr/ppp1pppp/8/8/3pP3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 2")
	if err != nil {
		t.Fatalf("parse FEN: %v", err)
	}
	if capturable.BookHash() == base.BookHash() {
		t.Errorf("capturable en passant file did not change the book hash")
	}
}

func TestBookHashSideToMove(t *testing.T) {
	w, err := ParseFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("parse FEN: %v", err)
	}
	b, err := ParseFEN("4k3/8/8/8/8/8/8/4K3 b - - 0 1")
	if err != nil {
		t.Fatalf("parse FEN: %v", err)
	}

	if w.BookHash() == b.BookHash() {
		t.Errorf("book hash must distinguish the side to move")
	}
}

func TestBookHashCastlingRights(t *testing.T) {
	full, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("parse FEN: %v", err)
	}
	none, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w - - 0 1")
	if err != nil {
		t.Fatalf("parse FEN: %v", err)
	}

	if full.BookHash() == none.BookHash() {
		t.Errorf("book hash must distinguish castling rights")
	}
}
