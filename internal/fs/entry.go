package fs

import (
	"strings"
	"time"
)

// Kind classifies a directory entry.
type Kind int

const (
	KindDir Kind = iota
	KindSymlink
	KindFile
)

// String returns the label shown in the type column.
func (k Kind) String() string {
	switch k {
	case KindDir:
		return "dir"
	case KindSymlink:
		return "symlink"
	default:
		return "file"
	}
}

// Entry represents a single file, directory or symlink in a listing.
// Modified is the zero time when the filesystem could not report it.
type Entry struct {
	Name     string
	Kind     Kind
	Size     int64
	Modified time.Time
}

// IsDir reports whether the entry is a directory.
func (e Entry) IsDir() bool {
	return e.Kind == KindDir
}

// IsFile reports whether the entry is a regular file.
func (e Entry) IsFile() bool {
	return e.Kind == KindFile
}

// Ext returns the lowercased file extension without the leading dot,
// or "" when the name has none.
func (e Entry) Ext() string {
	idx := strings.LastIndexByte(e.Name, '.')
	if idx < 0 || idx == len(e.Name)-1 {
		return ""
	}
	return strings.ToLower(e.Name[idx+1:])
}
