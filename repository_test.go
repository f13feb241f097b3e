package cmdat

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meigma/cmdat/internal/testutil"
)

func TestOpenRepositoryClubs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	clubs := []Club{
		testutil.NewClub(7, "Leeds United", "Leeds"),
		testutil.NewClub(8, "Arsenal", "Arsenal"),
	}
	testutil.WriteFile(t, dir, "club.dat", testutil.BuildClubs(t, clubs))
	testutil.WriteFile(t, dir, "index.dat", testutil.BuildIndex(t, []IndexEntry{
		{Filename: "club.dat", FileType: 0, RecordCount: 2, ByteOffset: 0},
	}))

	cat, err := LoadCatalog(filepath.Join(dir, "index.dat"))
	require.NoError(t, err)

	repo, err := OpenRepository(cat, dir, ClubLayout, File("club.dat"))
	require.NoError(t, err)
	assert.Len(t, repo.All(), 2)

	got, ok := repo.GetByID(clubs[0].ID)
	require.True(t, ok)
	assert.Equal(t, clubs[0], got)
	assert.Equal(t, clubs[0], repo.All()[0])
}

func TestOpenRepositoryStaffBlocks(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	people := []Staff{testutil.NewStaff(1, 0, 0, -1), testutil.NewStaff(2, 1, 1, -1)}
	people[1].PlayerRef = 40
	testutil.Installation{
		Staff: testutil.StaffDat{
			People:     people,
			NonPlayers: []NonPlayer{{CurrentAbility: 90}},
			Players:    []Player{{ID: 40, CurrentAbility: 120}},
		},
	}.Write(t, dir)

	cat, err := LoadCatalog(filepath.Join(dir, "index.dat"))
	require.NoError(t, err)

	staff, err := OpenRepository(cat, dir, StaffLayout, SubBlock("staff.dat", FileTypeStaff))
	require.NoError(t, err)
	assert.Equal(t, 2, staff.Len())

	players, err := OpenRepository(cat, dir, PlayerLayout, SubBlock("staff.dat", FileTypePlayer))
	require.NoError(t, err)
	p, ok := players.GetByID(people[1].PlayerRef)
	require.True(t, ok)
	assert.Equal(t, int16(120), p.CurrentAbility)

	nonPlayers, err := OpenRepository(cat, dir, NonPlayerLayout, SubBlock("staff.dat", FileTypeNonPlayer))
	require.NoError(t, err)
	n, ok := nonPlayers.GetByID(0)
	require.True(t, ok)
	assert.Equal(t, int16(90), n.CurrentAbility)
	assert.Equal(t, int32(0), n.Index)

	_, err = OpenRepository(cat, dir, PlayerLayout, SubBlock("staff.dat", 99))
	require.ErrorIs(t, err, ErrEntryNotFound)
}

func TestOpenRepositoryMissingFile(t *testing.T) {
	t.Parallel()

	cat, err := ParseCatalog(testutil.BuildIndex(t, []IndexEntry{{Filename: "club.dat", RecordCount: 1}}))
	require.NoError(t, err)

	_, err = OpenRepository(cat, t.TempDir(), ClubLayout, File("club.dat"))
	require.ErrorIs(t, err, ErrIO)
	var fileErr *FileError
	assert.ErrorAs(t, err, &fileErr)
}

func TestOpenTable(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	data := append(testutil.BuildClubs(t, []Club{testutil.NewClub(1, "A", "A")}), 0, 0)
	path := testutil.WriteFile(t, dir, "club.dat", data)

	repo, err := OpenTable(path, ClubLayout)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.Len())
	require.Len(t, repo.Warnings(), 1)
	assert.ErrorIs(t, repo.Warnings()[0], ErrSizeMismatch)
}

func TestOpenNameTableStride(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	entries := []NameEntry{{Name: "Ann", IDField: 1}, {Name: "Bea", IDField: 2}, {Name: "Cid", IDField: 3}}

	// Pad each 60-byte record to 64 bytes.
	var padded []byte
	for _, e := range entries {
		padded = append(padded, testutil.BuildNames(t, []NameEntry{e})...)
		padded = append(padded, 0xEE, 0xEE, 0xEE, 0xEE)
	}
	path := testutil.WriteFile(t, dir, "first_names.dat", padded)

	table, err := OpenNameTable(path, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, table.Len())
	assert.Equal(t, "Cid", table.Resolve(3))
	assert.Equal(t, 64, table.Entries().RecordSize())
	assert.Empty(t, table.Entries().Warnings())

	// Without a count the records are read as 60 bytes.
	plain := testutil.WriteFile(t, dir, "second_names.dat", testutil.BuildNames(t, entries))
	table, err = OpenNameTable(plain, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, table.Len())
	assert.Equal(t, "Bea", table.Resolve(2))
}

func TestOpenNameTableTrailingBytes(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	entries := []NameEntry{{Name: "Ann", IDField: 1}, {Name: "Bea", IDField: 2}, {Name: "Cid", IDField: 3}}

	tests := []struct {
		name   string
		pad    int
		stride int
	}{
		{"plain", 0, NameSize},
		{"padded", 4, NameSize + 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var data []byte
			for _, e := range entries {
				data = append(data, testutil.BuildNames(t, []NameEntry{e})...)
				data = append(data, make([]byte, tt.pad)...)
			}
			data = append(data, 0xAB, 0xCD)
			path := testutil.WriteFile(t, dir, tt.name+".dat", data)

			table, err := OpenNameTable(path, 3)
			require.NoError(t, err)
			assert.Equal(t, 3, table.Len())
			assert.Equal(t, tt.stride, table.Entries().RecordSize())
			assert.Equal(t, "Cid", table.Resolve(3))

			warnings := table.Entries().Warnings()
			require.Len(t, warnings, 1)
			require.ErrorIs(t, warnings[0], ErrSizeMismatch)
			var w *SizeMismatchWarning
			require.ErrorAs(t, warnings[0], &w)
			assert.Equal(t, int64(2), w.Remainder)
			assert.Equal(t, 3, w.Count)
		})
	}
}

func TestLocatorString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "club.dat", File("club.dat").String())
	assert.Equal(t, "staff.dat[10]", SubBlock("staff.dat", FileTypePlayer).String())
}
