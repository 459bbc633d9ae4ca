package moneybook

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ErrNotFound reports a load from a book file that does not exist.
var ErrNotFound = errors.New("book file not found")

// SaveFile writes the book document to path, replacing any existing
// file. The write is a plain open-write-close sequence with no
// atomicity guarantee: a crash mid-write can leave a partial document.
func SaveFile(path string, b *Book) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not open book file %q for writing: %w", path, err)
	}
	defer f.Close()

	return Encode(f, b)
}

// SaveFullFile writes the full-fidelity book document to path,
// replacing any existing file. Unlike SaveFile it keeps transactions
// and investments, so it is the right call for a working book that
// must survive between runs.
func SaveFullFile(path string, b *Book) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not open book file %q for writing: %w", path, err)
	}
	defer f.Close()

	return EncodeFull(f, b)
}

// LoadFile reads the book document at path into b. A missing file is
// reported as ErrNotFound, other failures wrap the underlying error.
// In every failure case b keeps its previous state.
func LoadFile(path string, b *Book) error {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%q: %w", path, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("could not open book file %q: %w", path, err)
	}
	defer f.Close()

	return Decode(f, b)
}
