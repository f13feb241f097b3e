package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meigma/cmdat/internal/dattype"
)

func TestNameRoundTrip(t *testing.T) {
	t.Parallel()

	want := dattype.NameEntry{Name: "Ståle", IDField: 17, Nation: 47, Count: -2}
	b := EncodeName(&want)
	require.Len(t, b, dattype.NameSize)

	got, err := DecodeName(b)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDecodeNameTrimsPadding(t *testing.T) {
	t.Parallel()

	b := make([]byte, dattype.NameSize)
	copy(b, "Smith     ")
	got, err := DecodeName(b)
	require.NoError(t, err)
	assert.Equal(t, "Smith", got.Name)
}

func TestIndexEntryRoundTrip(t *testing.T) {
	t.Parallel()

	want := dattype.IndexEntry{
		Filename:      "staff.dat",
		FileType:      dattype.FileTypePlayer,
		RecordCount:   3,
		ByteOffset:    330,
		FormatVersion: 2,
	}
	b := EncodeIndexEntry(&want)
	require.Len(t, b, dattype.IndexEntrySize)

	got, err := DecodeIndexEntry(b)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDecodeIndexEntrySpacePadded(t *testing.T) {
	t.Parallel()

	b := make([]byte, dattype.IndexEntrySize)
	for i := range dattype.IndexFilenameLen {
		b[i] = ' '
	}
	copy(b, "club.dat")
	got, err := DecodeIndexEntry(b)
	require.NoError(t, err)
	assert.Equal(t, "club.dat", got.Filename)
}
