package cmdat

import (
	"fmt"
	"path/filepath"

	"github.com/meigma/cmdat/internal/block"
	"github.com/meigma/cmdat/internal/dattype"
	"github.com/meigma/cmdat/internal/index"
	"github.com/meigma/cmdat/internal/source"
)

// LoadCatalog reads and parses an index.dat file.
func LoadCatalog(path string) (*Catalog, error) {
	return index.Load(path)
}

// ParseCatalog parses an in-memory index.dat image.
func ParseCatalog(b []byte) (*Catalog, error) {
	return index.Parse(b)
}

// Locator names the catalog entry of a block.
type Locator struct {
	Filename string
	FileType uint32

	// HasType restricts the match to FileType. Without it the first entry
	// for Filename wins.
	HasType bool
}

// File locates the first catalog entry for filename.
func File(filename string) Locator {
	return Locator{Filename: filename}
}

// SubBlock locates the entry for filename with the given fileType.
func SubBlock(filename string, fileType uint32) Locator {
	return Locator{Filename: filename, FileType: fileType, HasType: true}
}

func (l Locator) String() string {
	if l.HasType {
		return fmt.Sprintf("%s[%d]", l.Filename, l.FileType)
	}
	return l.Filename
}

func (l Locator) resolve(cat *Catalog) (IndexEntry, error) {
	if l.HasType {
		return cat.Resolve(l.Filename, l.FileType)
	}
	return cat.Resolve(l.Filename)
}

// OpenRepository resolves loc in the catalog, reads the file from dataDir
// and decodes the block. A missing catalog entry is an EntryNotFoundError.
func OpenRepository[T any](cat *Catalog, dataDir string, layout Layout[T], loc Locator, opts ...BlockOption) (*Repository[T], error) {
	entry, err := loc.resolve(cat)
	if err != nil {
		return nil, err
	}
	src, err := source.Load(filepath.Join(dataDir, entry.Filename))
	if err != nil {
		return nil, err
	}
	return buildEntry(src, entry, layout, opts...)
}

// OpenTable decodes a whole file as one block of records.
func OpenTable[T any](path string, layout Layout[T], opts ...BlockOption) (*Repository[T], error) {
	src, err := source.Load(path)
	if err != nil {
		return nil, err
	}
	return block.Build(src, RecordLocation{File: src.Name(), Length: src.Size()}, layout, opts...)
}

func buildEntry[T any](src *source.Source, entry IndexEntry, layout Layout[T], opts ...BlockOption) (*Repository[T], error) {
	loc, err := index.Bounds(entry, layout.RecordSize, src.Size())
	if err != nil {
		return nil, err
	}
	return block.Build(src, loc, layout, opts...)
}

// OpenNameTable decodes a name table. When count is positive the record
// stride is derived from the file size, as name tables of some releases pad
// their records, and bytes past count records are kept as a
// SizeMismatchWarning. Otherwise 60-byte records are assumed.
func OpenNameTable(path string, count uint32, opts ...BlockOption) (*NameTable, error) {
	src, err := source.Load(path)
	if err != nil {
		return nil, err
	}
	repo, err := buildNameTable(src, count, opts...)
	if err != nil {
		return nil, err
	}
	return NewNameTable(repo), nil
}

func buildNameTable(src *source.Source, count uint32, opts ...BlockOption) (*Repository[NameEntry], error) {
	layout := NameLayout
	if count > 0 {
		if stride := src.Size() / int64(count); stride > dattype.NameSize {
			layout = nameLayout(int(stride))
		}
		opts = append(opts[:len(opts):len(opts)], block.WithMaxRecords(int(count)))
	}
	loc := RecordLocation{File: src.Name(), Length: src.Size()}
	return block.Build(src, loc, layout, opts...)
}
