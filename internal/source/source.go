// Package source provides immutable, bounds-checked byte buffers backed by
// whole data files.
package source

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/opencontainers/go-digest"

	"github.com/meigma/cmdat/internal/dattype"
	"github.com/meigma/cmdat/internal/sizing"
)

// Source is an immutable in-memory copy of one data file.
//
// A Source is safe for concurrent use.
type Source struct {
	name string
	data []byte

	digestOnce sync.Once
	digest     digest.Digest
}

// Load reads the whole file at path.
func Load(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &dattype.FileError{Op: "read", Path: path, Err: err}
	}
	return &Source{name: filepath.Base(path), data: data}, nil
}

// FromBytes wraps data as a source named name. The slice is retained;
// callers must not modify it afterwards.
func FromBytes(name string, data []byte) *Source {
	return &Source{name: name, data: data}
}

// Name returns the base file name of the source.
func (s *Source) Name() string { return s.name }

// Size returns the number of bytes in the source.
func (s *Source) Size() int64 { return int64(len(s.data)) }

// Bytes returns the whole buffer. The result must not be modified.
func (s *Source) Bytes() []byte { return s.data }

// Slice returns a read-only view of n bytes starting at off.
func (s *Source) Slice(off, n int64) ([]byte, error) {
	end, ok := sizing.Span(off, n)
	if !ok || end > s.Size() {
		return nil, &dattype.RangeError{File: s.name, Offset: off, Length: n, Size: s.Size()}
	}
	return s.data[off:end:end], nil
}

// ReadAt implements io.ReaderAt.
func (s *Source) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 {
		return 0, &dattype.RangeError{File: s.name, Offset: off, Length: int64(len(p)), Size: s.Size()}
	}
	if off >= s.Size() {
		return 0, io.EOF
	}
	n := copy(p, s.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// SourceID returns the content digest of the source, computed once.
func (s *Source) SourceID() string {
	s.digestOnce.Do(func() {
		s.digest = digest.FromBytes(s.data)
	})
	return s.digest.String()
}
