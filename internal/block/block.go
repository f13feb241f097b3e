// Package block provides a generic read-only repository over a block of
// fixed-size records.
package block

import (
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"slices"
	"strings"

	"github.com/meigma/cmdat/internal/dattype"
	"github.com/meigma/cmdat/internal/source"
)

// Layout describes how to decode one record kind and how records are
// identified.
type Layout[T any] struct {
	// Kind names the record kind in errors and logs.
	Kind string

	// RecordSize is the on-disk size of one record.
	RecordSize int

	// Decode decodes exactly one record.
	Decode func([]byte) (T, error)

	// IDOf projects the identity of a record. It is ignored when Ordinal is set.
	IDOf func(*T) int32

	// Ordinal makes a record's identity its 0-based position in the block.
	Ordinal bool

	// SetOrdinal, when non-nil, is called with each record's position after
	// decoding.
	SetOrdinal func(*T, int32)
}

// Repository holds the decoded records of one block, in file order.
//
// A Repository is immutable after Build and safe for concurrent use.
type Repository[T any] struct {
	name     string
	layout   Layout[T]
	loc      dattype.RecordLocation
	records  []T
	warnings []error
}

// Build decodes every whole record in loc from src.
//
// A block length that is not a multiple of the record size is not an error:
// the trailing bytes are ignored and a SizeMismatchWarning is logged and
// kept in Warnings. The same holds for bytes past WithMaxRecords.
func Build[T any](src *source.Source, loc dattype.RecordLocation, layout Layout[T], opts ...Option) (*Repository[T], error) {
	if layout.RecordSize <= 0 || layout.Decode == nil {
		return nil, fmt.Errorf("cmdat: invalid %s layout", layout.Kind)
	}
	if !layout.Ordinal && layout.IDOf == nil {
		return nil, fmt.Errorf("cmdat: %s layout has no identity", layout.Kind)
	}

	cfg := newConfig(opts)
	if loc.File == "" {
		loc.File = src.Name()
	}
	r := &Repository[T]{
		name:   cfg.nameOr(loc.File),
		layout: layout,
		loc:    loc,
	}

	data, err := src.Slice(loc.Offset, loc.Length)
	if err != nil {
		return nil, err
	}

	size := int64(layout.RecordSize)
	count := loc.Length / size
	if cfg.max > 0 && count > int64(cfg.max) {
		count = int64(cfg.max)
	}
	if rem := loc.Length - count*size; rem != 0 {
		w := &dattype.SizeMismatchWarning{
			File:       loc.File,
			Offset:     loc.Offset,
			Length:     loc.Length,
			RecordSize: layout.RecordSize,
			Count:      int(count),
			Remainder:  rem,
		}
		cfg.log().Warn("block size is not a multiple of record size",
			slog.String("block", r.name),
			slog.String("file", loc.File),
			slog.Int64("offset", loc.Offset),
			slog.Int("record_size", layout.RecordSize),
			slog.Int64("remainder", rem))
		r.warnings = append(r.warnings, w)
	}
	if loc.Clipped {
		cfg.log().Warn("block extends past end of file",
			slog.String("block", r.name),
			slog.String("file", loc.File),
			slog.Int64("offset", loc.Offset),
			slog.Int64("length", loc.Length))
	}

	records, err := decodeAll(data[:count*size], layout, cfg.workerCount(int(count)))
	if err != nil {
		var recErr *dattype.RecordError
		if errors.As(err, &recErr) {
			recErr.File = loc.File
			recErr.Offset += loc.Offset
		}
		return nil, fmt.Errorf("cmdat: decode %s: %w", r.name, err)
	}
	r.records = records

	cfg.log().Debug("block loaded",
		slog.String("block", r.name),
		slog.String("kind", layout.Kind),
		slog.Int("records", len(records)))
	return r, nil
}

// Empty returns a repository with no records, used for blocks that are
// absent from an installation.
func Empty[T any](name string, layout Layout[T]) *Repository[T] {
	return &Repository[T]{name: name, layout: layout, loc: dattype.RecordLocation{File: name}}
}

// Name returns the label of the repository.
func (r *Repository[T]) Name() string { return r.name }

// Kind returns the record kind.
func (r *Repository[T]) Kind() string { return r.layout.Kind }

// RecordSize returns the on-disk record size.
func (r *Repository[T]) RecordSize() int { return r.layout.RecordSize }

// Location returns the byte range the records were decoded from.
func (r *Repository[T]) Location() dattype.RecordLocation { return r.loc }

// Len returns the number of records.
func (r *Repository[T]) Len() int { return len(r.records) }

// All returns a copy of the records in file order, or nil when there are
// none. Use Records or At to read without copying.
func (r *Repository[T]) All() []T {
	if len(r.records) == 0 {
		return nil
	}
	return slices.Clone(r.records)
}

// Records iterates over (position, record) pairs in file order.
func (r *Repository[T]) Records() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range r.records {
			if !yield(i, r.records[i]) {
				return
			}
		}
	}
}

// At returns the record at 0-based position i.
func (r *Repository[T]) At(i int) (T, bool) {
	if i < 0 || i >= len(r.records) {
		var zero T
		return zero, false
	}
	return r.records[i], true
}

// GetByID returns the first record in file order whose identity is id.
// For ordinal layouts the identity is the position.
func (r *Repository[T]) GetByID(id int32) (T, bool) {
	if r.layout.Ordinal {
		return r.At(int(id))
	}
	for i := range r.records {
		if r.layout.IDOf(&r.records[i]) == id {
			return r.records[i], true
		}
	}
	var zero T
	return zero, false
}

// Find returns the records satisfying pred, in file order.
func (r *Repository[T]) Find(pred func(T) bool) []T {
	var out []T
	for _, rec := range r.records {
		if pred(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// SearchByName returns records whose projected name contains needle,
// ignoring case. An empty needle matches every record.
func (r *Repository[T]) SearchByName(needle string, nameOf func(T) string) []T {
	needle = strings.ToLower(needle)
	return r.Find(func(rec T) bool {
		return strings.Contains(strings.ToLower(nameOf(rec)), needle)
	})
}

// Warnings returns the non-fatal conditions found while building.
func (r *Repository[T]) Warnings() []error {
	return append([]error(nil), r.warnings...)
}
