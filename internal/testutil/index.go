package testutil

import (
	"testing"

	"github.com/meigma/cmdat/internal/codec"
	"github.com/meigma/cmdat/internal/dattype"
)

// IndexHeader is the header written by BuildIndex. Its content is not
// interpreted by the reader.
var IndexHeader = []byte{'C', 'M', 'I', 'X', 0x01, 0x00, 0x00, 0x00}

// BuildIndex encodes entries as an index.dat image: the 8-byte header
// followed by one 67-byte record per entry, in the given order.
func BuildIndex(tb testing.TB, entries []dattype.IndexEntry) []byte {
	tb.Helper()

	out := make([]byte, 0, dattype.IndexHeaderSize+len(entries)*dattype.IndexEntrySize)
	out = append(out, IndexHeader...)
	for i := range entries {
		out = append(out, codec.EncodeIndexEntry(&entries[i])...)
	}
	return out
}

// BuildClubs encodes clubs back to back as a club.dat image.
func BuildClubs(tb testing.TB, clubs []dattype.Club) []byte {
	tb.Helper()

	out := make([]byte, 0, len(clubs)*dattype.ClubSize)
	for i := range clubs {
		out = append(out, codec.EncodeClub(&clubs[i])...)
	}
	return out
}

// BuildNames encodes a name table.
func BuildNames(tb testing.TB, names []dattype.NameEntry) []byte {
	tb.Helper()

	out := make([]byte, 0, len(names)*dattype.NameSize)
	for i := range names {
		out = append(out, codec.EncodeName(&names[i])...)
	}
	return out
}

// NewClub returns a club with every reference slot empty.
func NewClub(id int32, longName, shortName string) dattype.Club {
	c := dattype.Club{
		ID:                      id,
		LongName:                longName,
		ShortName:               shortName,
		ChairmanStaffID:         dattype.Empty,
		ManagerStaffID:          dattype.Empty,
		AssistantManagerStaffID: dattype.Empty,
	}
	for _, s := range [][]int32{
		c.PlayingSquad[:], c.CurrentSquad[:], c.Coaches[:], c.Scouts[:],
		c.Physios[:], c.Directors[:], c.LikedStaff[:], c.DislikedStaff[:],
		c.RivalClubs[:], c.Tactics[:],
	} {
		for i := range s {
			s[i] = dattype.Empty
		}
	}
	return c
}

// NewStaff returns a staff row with the given name references and no
// player, non-player or preferences extension.
func NewStaff(id, first, second, common int32) dattype.Staff {
	return dattype.Staff{
		ID:             id,
		FirstNameRef:   first,
		SecondNameRef:  second,
		CommonNameRef:  common,
		Nation:         dattype.Empty,
		SecondNation:   dattype.Empty,
		NationalJob:    dattype.Empty,
		ClubJob:        dattype.Empty,
		PlayerRef:      dattype.Empty,
		PreferencesRef: dattype.Empty,
		NonPlayerRef:   dattype.Empty,
	}
}
