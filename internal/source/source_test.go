package source

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meigma/cmdat/internal/dattype"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "club.dat")
	require.NoError(t, os.WriteFile(path, []byte("0123456789"), 0o600))

	src, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "club.dat", src.Name())
	assert.Equal(t, int64(10), src.Size())
}

func TestLoadMissing(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.dat"))
	require.ErrorIs(t, err, dattype.ErrIO)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	var fileErr *dattype.FileError
	require.ErrorAs(t, err, &fileErr)
	assert.Equal(t, "read", fileErr.Op)
}

func TestSlice(t *testing.T) {
	t.Parallel()

	src := FromBytes("x.dat", []byte("abcdefgh"))

	tests := []struct {
		name    string
		off, n  int64
		want    string
		wantErr bool
	}{
		{name: "head", off: 0, n: 3, want: "abc"},
		{name: "tail", off: 5, n: 3, want: "fgh"},
		{name: "empty at end", off: 8, n: 0, want: ""},
		{name: "past end", off: 6, n: 3, wantErr: true},
		{name: "negative offset", off: -1, n: 1, wantErr: true},
		{name: "overflow", off: 1, n: 1<<63 - 1, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := src.Slice(tt.off, tt.n)
			if tt.wantErr {
				require.ErrorIs(t, err, dattype.ErrOutOfRange)
				var rangeErr *dattype.RangeError
				require.ErrorAs(t, err, &rangeErr)
				assert.Equal(t, "x.dat", rangeErr.File)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestSliceIsCapped(t *testing.T) {
	t.Parallel()

	src := FromBytes("x.dat", []byte("abcdefgh"))
	view, err := src.Slice(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, cap(view))
}

func TestReadAt(t *testing.T) {
	t.Parallel()

	src := FromBytes("x.dat", []byte("abcdef"))
	buf := make([]byte, 4)

	n, err := src.ReadAt(buf, 1)
	require.NoError(t, err)
	assert.Equal(t, "bcde", string(buf[:n]))

	n, err = src.ReadAt(buf, 4)
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "ef", string(buf[:n]))

	_, err = src.ReadAt(buf, 6)
	assert.ErrorIs(t, err, io.EOF)
}

func TestSourceID(t *testing.T) {
	t.Parallel()

	a := FromBytes("a.dat", []byte("same"))
	b := FromBytes("b.dat", []byte("same"))
	c := FromBytes("c.dat", []byte("different"))

	assert.Equal(t, a.SourceID(), b.SourceID())
	assert.NotEqual(t, a.SourceID(), c.SourceID())
	assert.Regexp(t, `^sha256:[0-9a-f]{64}$`, a.SourceID())
}
