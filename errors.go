package cmdat

import "github.com/meigma/cmdat/internal/dattype"

// Errors re-exported from dattype.
var (
	// ErrIO is returned when a data file cannot be opened or read.
	ErrIO = dattype.ErrIO

	// ErrTruncatedRecord is returned when fewer bytes are available than one record needs.
	ErrTruncatedRecord = dattype.ErrTruncatedRecord

	// ErrSizeMismatch marks a block whose length is not a multiple of its record size.
	ErrSizeMismatch = dattype.ErrSizeMismatch

	// ErrSpanMismatch marks a catalog entry whose computed end disagrees with the next block.
	ErrSpanMismatch = dattype.ErrSpanMismatch

	// ErrEntryNotFound is returned when the catalog has no entry for a required block.
	ErrEntryNotFound = dattype.ErrEntryNotFound

	// ErrOutOfRange is returned when an offset or length falls outside a file.
	ErrOutOfRange = dattype.ErrOutOfRange
)

// FileError records a failed file operation.
type FileError = dattype.FileError

// RecordError reports a record shorter than its fixed size.
type RecordError = dattype.RecordError

// RangeError reports an access outside the bounds of a file.
type RangeError = dattype.RangeError

// EntryNotFoundError reports a catalog miss.
type EntryNotFoundError = dattype.EntryNotFoundError

// SizeMismatchWarning reports a block length that is not a multiple of the record size.
type SizeMismatchWarning = dattype.SizeMismatchWarning

// SpanMismatchWarning reports a block whose end disagrees with the next block.
type SpanMismatchWarning = dattype.SpanMismatchWarning
