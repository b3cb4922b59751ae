package fs

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// List reads the directory at path and returns its entries grouped as
// directories, then symlinks, then files. Inside each group the order
// the filesystem returned is kept; there is deliberately no sort by
// name. Dotfiles are skipped when showDotfiles is false.
func List(path string, showDotfiles bool) ([]Entry, error) {
	dir, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory %s: %w", path, err)
	}
	defer func() {
		_ = dir.Close()
	}()

	// ReadDir on the open handle keeps the raw filesystem order;
	// os.ReadDir would sort by name.
	dirEntries, err := dir.ReadDir(-1)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory %s: %w", path, err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		rawName := de.Name()
		if !showDotfiles && strings.HasPrefix(rawName, ".") {
			continue
		}

		entry := Entry{Name: norm.NFC.String(rawName)}

		info, err := de.Info()
		if err != nil {
			// The entry disappeared between ReadDir and Info; fall
			// back to the entry's own type bits.
			switch {
			case de.Type()&os.ModeSymlink != 0:
				entry.Kind = KindSymlink
			case de.IsDir():
				entry.Kind = KindDir
			default:
				entry.Kind = KindFile
			}
			entries = append(entries, entry)
			continue
		}

		switch {
		case info.Mode()&os.ModeSymlink != 0:
			entry.Kind = KindSymlink
		case info.IsDir():
			entry.Kind = KindDir
		default:
			entry.Kind = KindFile
		}
		entry.Modified = info.ModTime()
		if entry.Kind == KindFile {
			entry.Size = info.Size()
		}

		entries = append(entries, entry)
	}

	return Group(entries), nil
}

// Group orders entries as directories, symlinks, files, preserving the
// relative order within each group.
func Group(entries []Entry) []Entry {
	grouped := make([]Entry, 0, len(entries))
	for _, kind := range []Kind{KindDir, KindSymlink, KindFile} {
		for _, e := range entries {
			if e.Kind == kind {
				grouped = append(grouped, e)
			}
		}
	}
	return grouped
}
