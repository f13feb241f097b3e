// Package index parses the index.dat catalog that maps a (filename, fileType)
// pair to the byte range of a record block inside a data file.
package index

import (
	"fmt"
	"slices"

	"github.com/meigma/cmdat/internal/codec"
	"github.com/meigma/cmdat/internal/dattype"
	"github.com/meigma/cmdat/internal/sizing"
	"github.com/meigma/cmdat/internal/source"
)

// Catalog is a parsed index.dat.
//
// Entries are kept in file order. A Catalog is immutable and safe for
// concurrent use.
type Catalog struct {
	entries []dattype.IndexEntry
}

// Load reads and parses the catalog at path.
func Load(path string) (*Catalog, error) {
	src, err := source.Load(path)
	if err != nil {
		return nil, err
	}
	return Parse(src.Bytes())
}

// Parse decodes a catalog. The 8-byte header is skipped, then 67-byte
// records are consumed until fewer than 67 bytes remain. Entries with an
// empty filename are dropped.
func Parse(b []byte) (*Catalog, error) {
	if len(b) < dattype.IndexHeaderSize {
		return nil, &dattype.RecordError{
			Kind: "index header",
			File: "index.dat",
			Want: dattype.IndexHeaderSize,
			Got:  len(b),
		}
	}

	body := b[dattype.IndexHeaderSize:]
	entries := make([]dattype.IndexEntry, 0, len(body)/dattype.IndexEntrySize)
	for off := 0; off+dattype.IndexEntrySize <= len(body); off += dattype.IndexEntrySize {
		e, err := codec.DecodeIndexEntry(body[off : off+dattype.IndexEntrySize])
		if err != nil {
			return nil, fmt.Errorf("index.dat record at offset %d: %w", dattype.IndexHeaderSize+off, err)
		}
		if e.Filename == "" {
			continue
		}
		entries = append(entries, e)
	}
	return &Catalog{entries: entries}, nil
}

// New builds a catalog from already decoded entries.
func New(entries []dattype.IndexEntry) *Catalog {
	return &Catalog{entries: slices.Clone(entries)}
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns a copy of all entries in file order.
func (c *Catalog) Entries() []dattype.IndexEntry {
	return slices.Clone(c.entries)
}

// EntriesFor returns the entries for filename in file order.
func (c *Catalog) EntriesFor(filename string) []dattype.IndexEntry {
	var out []dattype.IndexEntry
	for _, e := range c.entries {
		if e.Filename == filename {
			out = append(out, e)
		}
	}
	return out
}

// Files returns the distinct filenames in order of first appearance.
func (c *Catalog) Files() []string {
	var out []string
	for _, e := range c.entries {
		if !slices.Contains(out, e.Filename) {
			out = append(out, e.Filename)
		}
	}
	return out
}

// Lookup returns the first entry matching filename and, when given,
// fileType.
func (c *Catalog) Lookup(filename string, fileType ...uint32) (dattype.IndexEntry, bool) {
	for _, e := range c.entries {
		if e.Filename != filename {
			continue
		}
		if len(fileType) > 0 && e.FileType != fileType[0] {
			continue
		}
		return e, true
	}
	return dattype.IndexEntry{}, false
}

// Resolve is Lookup for required entries: a miss is an EntryNotFoundError.
func (c *Catalog) Resolve(filename string, fileType ...uint32) (dattype.IndexEntry, error) {
	if e, ok := c.Lookup(filename, fileType...); ok {
		return e, nil
	}
	notFound := &dattype.EntryNotFoundError{Filename: filename}
	if len(fileType) > 0 {
		notFound.FileType = fileType[0]
		notFound.HasType = true
	}
	return dattype.IndexEntry{}, notFound
}

// Bounds computes the byte range [offset, offset+count*recordSize) of the
// block described by e, clipped to fileLen. A zero count is a valid empty
// block.
func Bounds(e dattype.IndexEntry, recordSize int, fileLen int64) (dattype.RecordLocation, error) {
	if recordSize <= 0 {
		return dattype.RecordLocation{}, fmt.Errorf("cmdat: invalid record size %d", recordSize)
	}
	overflow := &dattype.RangeError{File: e.Filename, Offset: int64(e.ByteOffset), Size: fileLen}
	product, ok := sizing.MulUint64(uint64(e.RecordCount), uint64(recordSize))
	if !ok {
		return dattype.RecordLocation{}, overflow
	}
	length, err := sizing.ToInt64(product, overflow)
	if err != nil {
		return dattype.RecordLocation{}, err
	}
	if _, ok := sizing.Span(int64(e.ByteOffset), length); !ok {
		return dattype.RecordLocation{}, overflow
	}
	loc := dattype.RecordLocation{
		File:   e.Filename,
		Offset: int64(e.ByteOffset),
		Length: length,
	}
	if loc.Offset > fileLen {
		loc.Offset = fileLen
		loc.Length = 0
		loc.Clipped = e.RecordCount > 0
		return loc, nil
	}
	if loc.End() > fileLen {
		loc.Length = fileLen - loc.Offset
		loc.Clipped = true
	}
	return loc, nil
}

// NextOffset returns the smallest offset of another entry in the same file
// that lies past e, or fileLen when e is the last block.
func (c *Catalog) NextOffset(e dattype.IndexEntry, fileLen int64) int64 {
	next := fileLen
	for _, o := range c.entries {
		if o.Filename != e.Filename {
			continue
		}
		if off := int64(o.ByteOffset); off > int64(e.ByteOffset) && off < next {
			next = off
		}
	}
	return next
}

// CheckSpan compares the computed end of e's block with the start of the
// next block in the same file. A disagreement is returned as a
// SpanMismatchWarning. Empty blocks are not checked. An end that does not
// fit in an int64 is a RangeError.
func (c *Catalog) CheckSpan(e dattype.IndexEntry, recordSize int, fileLen int64) error {
	if e.RecordCount == 0 {
		return nil
	}
	if recordSize <= 0 {
		return fmt.Errorf("cmdat: invalid record size %d", recordSize)
	}
	overflow := &dattype.RangeError{File: e.Filename, Offset: int64(e.ByteOffset), Size: fileLen}
	length, ok := sizing.MulUint64(uint64(e.RecordCount), uint64(recordSize))
	if !ok {
		return overflow
	}
	end, ok := sizing.AddUint64(uint64(e.ByteOffset), length)
	if !ok {
		return overflow
	}
	computed, err := sizing.ToInt64(end, overflow)
	if err != nil {
		return err
	}
	next := c.NextOffset(e, fileLen)
	if computed != next {
		return &dattype.SpanMismatchWarning{
			File:     e.Filename,
			FileType: e.FileType,
			Computed: computed,
			Next:     next,
		}
	}
	return nil
}
