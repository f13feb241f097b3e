package dattype

import (
	"errors"
	"fmt"
)

// Sentinel errors. Typed errors below unwrap to one of these.
var (
	// ErrIO is returned when a data file cannot be opened or read.
	ErrIO = errors.New("cmdat: io error")

	// ErrTruncatedRecord is returned when fewer bytes are available than one record needs.
	ErrTruncatedRecord = errors.New("cmdat: truncated record")

	// ErrSizeMismatch marks a block whose length is not a multiple of its record size.
	ErrSizeMismatch = errors.New("cmdat: size mismatch")

	// ErrSpanMismatch marks a catalog entry whose computed end disagrees with the next block.
	ErrSpanMismatch = errors.New("cmdat: span mismatch")

	// ErrEntryNotFound is returned when the catalog has no entry for a file/type pair.
	ErrEntryNotFound = errors.New("cmdat: index entry not found")

	// ErrOutOfRange is returned when an offset or length falls outside loaded bounds.
	ErrOutOfRange = errors.New("cmdat: out of range")
)

// FileError records a failed file operation.
type FileError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("cmdat: %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns both ErrIO and the underlying cause so errors.Is works
// against either (for example fs.ErrNotExist).
func (e *FileError) Unwrap() []error { return []error{ErrIO, e.Err} }

// RecordError reports a record that could not be decoded because its input
// was shorter than the fixed record size.
type RecordError struct {
	Kind   string // record kind, e.g. "club"
	File   string // empty when decoding detached bytes
	Offset int64
	Want   int
	Got    int
}

func (e *RecordError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("cmdat: truncated %s record: want %d bytes, got %d", e.Kind, e.Want, e.Got)
	}
	return fmt.Sprintf("cmdat: truncated %s record in %s at offset %d: want %d bytes, got %d",
		e.Kind, e.File, e.Offset, e.Want, e.Got)
}

func (e *RecordError) Unwrap() error { return ErrTruncatedRecord }

// RangeError reports an access outside the bounds of a loaded source.
type RangeError struct {
	File   string
	Offset int64
	Length int64
	Size   int64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("cmdat: %s: range [%d, +%d) outside %d bytes", e.File, e.Offset, e.Length, e.Size)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }

// EntryNotFoundError reports a catalog miss for a required sub-block.
type EntryNotFoundError struct {
	Filename string
	FileType uint32
	HasType  bool
}

func (e *EntryNotFoundError) Error() string {
	if e.HasType {
		return fmt.Sprintf("cmdat: missing index entry %s fileType=%d", e.Filename, e.FileType)
	}
	return fmt.Sprintf("cmdat: missing index entry %s", e.Filename)
}

func (e *EntryNotFoundError) Unwrap() error { return ErrEntryNotFound }

// SizeMismatchWarning is a non-fatal condition: a block holding bytes past
// its last whole record, or past the record count it was expected to hold.
// The records that fit are still decoded.
type SizeMismatchWarning struct {
	File       string
	Offset     int64
	Length     int64
	RecordSize int
	Count      int
	Remainder  int64
}

func (w *SizeMismatchWarning) Error() string {
	return fmt.Sprintf("cmdat: %s: block of %d bytes at offset %d does not hold whole %d-byte records; using %d records, ignoring %d trailing bytes",
		w.File, w.Length, w.Offset, w.RecordSize, w.Count, w.Remainder)
}

func (w *SizeMismatchWarning) Unwrap() error { return ErrSizeMismatch }

// SpanMismatchWarning reports that offset+count*recordSize for a catalog
// entry does not land on the start of the following block in the same file
// (or on the end of the file when the entry is last). It usually means the
// record size or the catalog was misread.
type SpanMismatchWarning struct {
	File     string
	FileType uint32
	Computed int64 // computed end of the block
	Next     int64 // offset of the next block, or file length
}

func (w *SpanMismatchWarning) Error() string {
	return fmt.Sprintf("cmdat: %s fileType=%d: block ends at %d but next block starts at %d",
		w.File, w.FileType, w.Computed, w.Next)
}

func (w *SpanMismatchWarning) Unwrap() error { return ErrSpanMismatch }
