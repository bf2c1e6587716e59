package board

import "testing"

func TestParseFENStartPosition(t *testing.T) {
	pos, err := ParseFEN(StartFEN)
	if err != nil {
		t.Fatalf("parse start FEN: %v", err)
	}

	if pos.SideToMove != White {
		t.Errorf("side to move = %v, want White", pos.SideToMove)
	}
	if pos.CastlingRights != AllCastling {
		t.Errorf("castling rights = %v, want KQkq", pos.CastlingRights)
	}
	if pos.EnPassant != NoSquare {
		t.Errorf("en passant = %v, want none", pos.EnPassant)
	}
	if got := pos.PieceAt(E1); got != WhiteKing {
		t.Errorf("piece at e1 = %v, want white king", got)
	}
	if got := pos.PieceAt(D8); got != BlackQueen {
		t.Errorf("piece at d8 = %v, want black queen", got)
	}
	if got := pos.AllOccupied.PopCount(); got != 32 {
		t.Errorf("occupied squares = %d, want 32", got)
	}
	if err := pos.Validate(); err != nil {
		t.Errorf("start position invalid: %v", err)
	}
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"8/P6k/8/8/8/8/8/7K w - - 12 40",
	}

	for _, fen := range fens {
		pos, err := ParseFEN(fen)
		if err != nil {
			t.Errorf("parse %q: %v", fen, err)
			continue
		}
		if got := pos.ToFEN(); got != fen {
			t.Errorf("round trip %q -> %q", fen, got)
		}
	}
}

func TestParseFENErrors(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty", ""},
		{"too few fields", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq"},
		{"seven ranks", "rnbqkbnr/pppppppp/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"bad piece char", "rnbqkbnr/ppppxppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"rank too long", "rnbqkbnr/ppppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"bad side", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1"},
		{"bad castling", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KZkq - 0 1"},
		{"bad en passant", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9 0 1"},
		{"bad half-move clock", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - x 1"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseFEN(tc.fen); err == nil {
				t.Errorf("expected error for %q", tc.fen)
			}
		})
	}
}

func TestParseFENHashDeterministic(t *testing.T) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

	a, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("parse FEN: %v", err)
	}
	b, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("parse FEN: %v", err)
	}

	if a.Hash != b.Hash {
		t.Errorf("same FEN hashed differently: %016x vs %016x", a.Hash, b.Hash)
	}
	if a.Hash != a.ComputeHash() {
		t.Errorf("stored hash %016x != computed %016x", a.Hash, a.ComputeHash())
	}
}

func TestDifferentPositionsHashDifferently(t *testing.T) {
	fens := []string{
		StartFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b Qkq - 0 1",
		"4k3/8/8/8/8/8/8/4K3 w - - 0 1",
	}

	seen := make(map[uint64]string)
	for _, fen := range fens {
		pos, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("parse %q: %v", fen, err)
		}
		if prev, ok := seen[pos.Hash]; ok {
			t.Errorf("hash collision between %q and %q", prev, fen)
		}
		seen[pos.Hash] = fen
	}
}
