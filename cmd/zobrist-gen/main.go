// Command zobrist-gen generates Zobrist key tables and serializes them as
// source-code artifacts for a consuming chess engine build. Generated
// tables can be archived by name so a reproducible build can pin the
// exact table it shipped with.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/salmancheema155/chesshash/internal/storage"
	"github.com/salmancheema155/chesshash/internal/zobrist"
)

var (
	seedFlag    = flag.String("seed", "", "generation seed (decimal or 0x-prefixed hex); random if empty")
	outDir      = flag.String("out", ".", "output directory for generated artifacts")
	format      = flag.String("format", zobrist.FormatGo, "output format: go or cpp")
	pkgName     = flag.String("pkg", "zobrist", "package name for Go output")
	archiveDir  = flag.String("archive", "", "key-table archive directory (BadgerDB)")
	saveName    = flag.String("save", "", "archive the generated table under this name")
	loadName    = flag.String("load", "", "emit a previously archived table instead of generating")
	listArchive = flag.Bool("list", false, "list archived tables and exit")
)

func main() {
	flag.Parse()

	var store *storage.Store
	if *archiveDir != "" {
		var err error
		store, err = storage.Open(*archiveDir)
		if err != nil {
			log.Fatalf("could not open archive: %v", err)
		}
		defer store.Close()
	}

	if *listArchive {
		if store == nil {
			log.Fatal("-list requires -archive")
		}
		names, err := store.ListTables()
		if err != nil {
			log.Fatalf("could not list archive: %v", err)
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return
	}

	table, seed, err := obtainTable(store)
	if err != nil {
		log.Fatalf("could not obtain table: %v", err)
	}
	log.Printf("key table ready (seed 0x%016x)", seed)

	if *saveName != "" {
		if store == nil {
			log.Fatal("-save requires -archive")
		}
		if err := store.SaveTable(*saveName, seed, table); err != nil {
			log.Fatalf("could not archive table: %v", err)
		}
		log.Printf("table archived as %q", *saveName)
	}

	if err := emit(table); err != nil {
		log.Fatalf("could not write artifacts: %v", err)
	}
}

// obtainTable loads a table from the archive or generates a new one.
func obtainTable(store *storage.Store) (*zobrist.Table, uint64, error) {
	if *loadName != "" {
		if store == nil {
			return nil, 0, fmt.Errorf("-load requires -archive")
		}
		rec, err := store.LoadTable(*loadName)
		if err != nil {
			return nil, 0, err
		}
		return rec.Table, rec.Seed, nil
	}

	if *seedFlag != "" {
		seed, err := strconv.ParseUint(*seedFlag, 0, 64)
		if err != nil {
			return nil, 0, fmt.Errorf("invalid seed %q: %v", *seedFlag, err)
		}
		table, err := zobrist.Generate(seed)
		if err != nil {
			return nil, 0, err
		}
		return table, seed, nil
	}

	return zobrist.GenerateRandom()
}

// emit writes the serialized artifacts for the selected format.
func emit(table *zobrist.Table) error {
	switch *format {
	case zobrist.FormatGo:
		path := filepath.Join(*outDir, "zobrist_keys.go")
		if err := writeFileAtomic(path, func(w io.Writer) error {
			return zobrist.WriteGo(w, *pkgName, table)
		}); err != nil {
			return err
		}
		log.Printf("wrote %s", path)
		return nil

	case zobrist.FormatCpp:
		header := filepath.Join(*outDir, "zobrist_keys.h")
		if err := writeFileAtomic(header, func(w io.Writer) error {
			return zobrist.WriteCppHeader(w, table)
		}); err != nil {
			return err
		}
		source := filepath.Join(*outDir, "zobrist_keys.cpp")
		if err := writeFileAtomic(source, func(w io.Writer) error {
			return zobrist.WriteCppSource(w, table)
		}); err != nil {
			return err
		}
		log.Printf("wrote %s and %s", header, source)
		return nil

	default:
		return fmt.Errorf("unknown format %q (want go or cpp)", *format)
	}
}

// writeFileAtomic writes through a temp file and renames into place, so a
// failed serialization never leaves a partial artifact behind.
func writeFileAtomic(path string, write func(io.Writer) error) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".zobrist-gen-*")
	if err != nil {
		return err
	}

	if err := write(tmp); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}
