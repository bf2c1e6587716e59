package zobrist

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Output formats understood by the generator.
const (
	FormatGo  = "go"
	FormatCpp = "cpp"
)

// WriteGo renders the table as a Go source file declaring package-level
// key arrays. Output is deterministic given the table and round-trips
// bit-exact: every value is an unsigned 64-bit hex literal.
func WriteGo(w io.Writer, pkg string, t *Table) error {
	if pkg == "" {
		return errors.New("zobrist: package name must not be empty")
	}
	if err := t.Validate(); err != nil {
		return errors.Wrap(err, "refusing to serialize")
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "// Code generated by zobrist-gen. DO NOT EDIT.\n\n")
	fmt.Fprintf(bw, "package %s\n\n", pkg)

	fmt.Fprintf(bw, "var zobristPiece = [%d][%d][%d]uint64{\n", NumColors, NumPieceTypes, NumSquares)
	for c := 0; c < NumColors; c++ {
		fmt.Fprintf(bw, "\t{\n")
		for pt := 0; pt < NumPieceTypes; pt++ {
			fmt.Fprintf(bw, "\t\t{")
			for sq := 0; sq < NumSquares; sq++ {
				if sq > 0 {
					fmt.Fprintf(bw, ", ")
				}
				fmt.Fprintf(bw, "0x%016x", t.Piece[c][pt][sq])
			}
			fmt.Fprintf(bw, "},\n")
		}
		fmt.Fprintf(bw, "\t},\n")
	}
	fmt.Fprintf(bw, "}\n\n")

	writeGoArray(bw, "zobristCastling", t.Castling[:])
	writeGoArray(bw, "zobristEnPassant", t.EnPassant[:])
	fmt.Fprintf(bw, "var zobristSideToMove uint64 = 0x%016x\n", t.SideToMove)

	return errors.Wrap(bw.Flush(), "zobrist: writing Go output")
}

func writeGoArray(w io.Writer, name string, keys []uint64) {
	fmt.Fprintf(w, "var %s = [%d]uint64{", name, len(keys))
	for i, k := range keys {
		if i > 0 {
			fmt.Fprintf(w, ", ")
		}
		fmt.Fprintf(w, "0x%016x", k)
	}
	fmt.Fprintf(w, "}\n\n")
}

// WriteCppHeader renders the declarations unit: an extern declaration for
// the piece table plus the auxiliary key arrays as inline constexpr
// constants, ready for inclusion by a C++ engine build.
func WriteCppHeader(w io.Writer, t *Table) error {
	if err := t.Validate(); err != nil {
		return errors.Wrap(err, "refusing to serialize")
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "#ifndef ZOBRIST_KEYS_H\n#define ZOBRIST_KEYS_H\n\n#include <cstdint>\n\n")
	fmt.Fprintf(bw, "extern const uint64_t zobristTable[%d][%d][%d];\n\n", NumColors, NumPieceTypes, NumSquares)

	writeCppArray(bw, "zobristCastling", t.Castling[:])
	writeCppArray(bw, "zobristEnPassant", t.EnPassant[:])
	fmt.Fprintf(bw, "inline constexpr uint64_t zobristPlayerTurn = 0x%016XULL;\n", t.SideToMove)

	fmt.Fprintf(bw, "\n#endif // ZOBRIST_KEYS_H\n")
	return errors.Wrap(bw.Flush(), "zobrist: writing C++ header")
}

// WriteCppSource renders the definitions unit containing the full piece
// table as unsigned 64-bit literals.
func WriteCppSource(w io.Writer, t *Table) error {
	if err := t.Validate(); err != nil {
		return errors.Wrap(err, "refusing to serialize")
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "#include <cstdint>\n#include \"zobrist_keys.h\"\n\n")
	fmt.Fprintf(bw, "const uint64_t zobristTable[%d][%d][%d] = {\n", NumColors, NumPieceTypes, NumSquares)
	for c := 0; c < NumColors; c++ {
		fmt.Fprintf(bw, "    {\n")
		for pt := 0; pt < NumPieceTypes; pt++ {
			fmt.Fprintf(bw, "    {")
			for sq := 0; sq < NumSquares; sq++ {
				if sq > 0 {
					fmt.Fprintf(bw, ", ")
				}
				fmt.Fprintf(bw, "0x%016XULL", t.Piece[c][pt][sq])
			}
			fmt.Fprintf(bw, "},\n")
		}
		fmt.Fprintf(bw, "    },\n")
	}
	fmt.Fprintf(bw, "};\n")
	return errors.Wrap(bw.Flush(), "zobrist: writing C++ source")
}

func writeCppArray(w io.Writer, name string, keys []uint64) {
	fmt.Fprintf(w, "inline constexpr uint64_t %s[%d] = {", name, len(keys))
	for i, k := range keys {
		if i > 0 {
			fmt.Fprintf(w, ", ")
		}
		fmt.Fprintf(w, "0x%016XULL", k)
	}
	fmt.Fprintf(w, "};\n")
}
