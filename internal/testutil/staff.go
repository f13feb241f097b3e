package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meigma/cmdat/internal/codec"
	"github.com/meigma/cmdat/internal/dattype"
)

// StaffDat describes the sub-blocks of a synthetic staff.dat. Blocks are
// laid out people, non-players, players, preferences.
type StaffDat struct {
	People     []dattype.Staff
	NonPlayers []dattype.NonPlayer
	Players    []dattype.Player

	// Preferences is copied verbatim; PreferenceCount is reported in the
	// catalog.
	Preferences     []byte
	PreferenceCount uint32

	// Omit lists fileTypes left out of the catalog. Their bytes are still
	// written.
	Omit []uint32
}

// Build returns the staff.dat image and its catalog entries.
func (s StaffDat) Build(tb testing.TB) ([]byte, []dattype.IndexEntry) {
	tb.Helper()

	var out []byte
	var entries []dattype.IndexEntry
	add := func(fileType uint32, count int, block []byte) {
		for _, o := range s.Omit {
			if o == fileType {
				out = append(out, block...)
				return
			}
		}
		entries = append(entries, dattype.IndexEntry{
			Filename:    "staff.dat",
			FileType:    fileType,
			RecordCount: uint32(count),
			ByteOffset:  uint32(len(out)),
		})
		out = append(out, block...)
	}

	var people []byte
	for i := range s.People {
		people = append(people, codec.EncodeStaff(&s.People[i])...)
	}
	add(dattype.FileTypeStaff, len(s.People), people)

	var nonPlayers []byte
	for i := range s.NonPlayers {
		nonPlayers = append(nonPlayers, codec.EncodeNonPlayer(&s.NonPlayers[i])...)
	}
	add(dattype.FileTypeNonPlayer, len(s.NonPlayers), nonPlayers)

	var players []byte
	for i := range s.Players {
		players = append(players, codec.EncodePlayer(&s.Players[i])...)
	}
	add(dattype.FileTypePlayer, len(s.Players), players)

	if s.Preferences != nil {
		add(dattype.FileTypePreferences, int(s.PreferenceCount), s.Preferences)
	}
	return out, entries
}

// Installation is a complete synthetic data directory.
type Installation struct {
	Clubs       []dattype.Club
	Staff       StaffDat
	FirstNames  []dattype.NameEntry
	SecondNames []dattype.NameEntry
	CommonNames []dattype.NameEntry

	// Extra entries are appended to the catalog after the generated ones.
	Extra []dattype.IndexEntry
}

// Write writes index.dat, club.dat, staff.dat and the name tables into dir
// and returns the catalog entries it wrote.
func (in Installation) Write(tb testing.TB, dir string) []dattype.IndexEntry {
	tb.Helper()

	staffImage, entries := in.Staff.Build(tb)
	entries = append([]dattype.IndexEntry{{
		Filename:    "club.dat",
		RecordCount: uint32(len(in.Clubs)),
	}}, entries...)

	names := []struct {
		file  string
		table []dattype.NameEntry
	}{
		{"first_names.dat", in.FirstNames},
		{"second_names.dat", in.SecondNames},
		{"common_names.dat", in.CommonNames},
	}
	for _, n := range names {
		entries = append(entries, dattype.IndexEntry{Filename: n.file, RecordCount: uint32(len(n.table))})
		WriteFile(tb, dir, n.file, BuildNames(tb, n.table))
	}
	entries = append(entries, in.Extra...)

	WriteFile(tb, dir, "club.dat", BuildClubs(tb, in.Clubs))
	WriteFile(tb, dir, "staff.dat", staffImage)
	WriteFile(tb, dir, "index.dat", BuildIndex(tb, entries))
	return entries
}

// WriteFile writes data to dir/name.
func WriteFile(tb testing.TB, dir, name string, data []byte) string {
	tb.Helper()

	path := filepath.Join(dir, name)
	require.NoError(tb, os.WriteFile(path, data, 0o600))
	return path
}
