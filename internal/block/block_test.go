package block

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meigma/cmdat/internal/codec"
	"github.com/meigma/cmdat/internal/dattype"
	"github.com/meigma/cmdat/internal/source"
	"github.com/meigma/cmdat/internal/testutil"
)

var clubLayout = Layout[dattype.Club]{
	Kind:       "club",
	RecordSize: dattype.ClubSize,
	Decode:     codec.DecodeClub,
	IDOf:       func(c *dattype.Club) int32 { return c.ID },
}

// pair is a tiny 8-byte record used to exercise large blocks cheaply.
type pair struct {
	ID    int32
	Value int32
	Pos   int32
}

var pairLayout = Layout[pair]{
	Kind:       "pair",
	RecordSize: 8,
	Decode: func(b []byte) (pair, error) {
		if len(b) < 8 {
			return pair{}, &dattype.RecordError{Kind: "pair", Want: 8, Got: len(b)}
		}
		return pair{
			ID:    int32(binary.LittleEndian.Uint32(b)),
			Value: int32(binary.LittleEndian.Uint32(b[4:])),
		}, nil
	},
	IDOf:       func(p *pair) int32 { return p.ID },
	SetOrdinal: func(p *pair, i int32) { p.Pos = i },
}

func pairs(n int) []byte {
	b := make([]byte, 0, n*8)
	for i := range n {
		b = binary.LittleEndian.AppendUint32(b, uint32(i*3))
		b = binary.LittleEndian.AppendUint32(b, uint32(i))
	}
	return b
}

func clubs(n int) []dattype.Club {
	out := make([]dattype.Club, n)
	for i := range out {
		out[i] = testutil.NewClub(int32(100+i), fmt.Sprintf("Club %d", i), fmt.Sprintf("C%d", i))
	}
	return out
}

func wholeFile(src *source.Source) dattype.RecordLocation {
	return dattype.RecordLocation{File: src.Name(), Length: src.Size()}
}

func TestBuildSizeMismatch(t *testing.T) {
	t.Parallel()

	data := append(testutil.BuildClubs(t, clubs(10)), 1, 2, 3)
	src := source.FromBytes("club.dat", data)

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	repo, err := Build(src, wholeFile(src), clubLayout, WithLogger(logger))
	require.NoError(t, err)
	assert.Equal(t, 10, repo.Len())

	warnings := repo.Warnings()
	require.Len(t, warnings, 1)
	require.ErrorIs(t, warnings[0], dattype.ErrSizeMismatch)
	var w *dattype.SizeMismatchWarning
	require.ErrorAs(t, warnings[0], &w)
	assert.Equal(t, int64(3), w.Remainder)
	assert.Equal(t, 10, w.Count)
	assert.Contains(t, logs.String(), "remainder=3")
}

func TestBuildExact(t *testing.T) {
	t.Parallel()

	src := source.FromBytes("club.dat", testutil.BuildClubs(t, clubs(2)))
	repo, err := Build(src, wholeFile(src), clubLayout)
	require.NoError(t, err)
	assert.Len(t, repo.All(), 2)
	assert.Empty(t, repo.Warnings())
	assert.Equal(t, "club.dat", repo.Name())
	assert.Equal(t, "club", repo.Kind())
	assert.Equal(t, dattype.ClubSize, repo.RecordSize())
}

func TestBuildEmpty(t *testing.T) {
	t.Parallel()

	src := source.FromBytes("club.dat", nil)
	repo, err := Build(src, wholeFile(src), clubLayout)
	require.NoError(t, err)
	assert.Nil(t, repo.All())
	assert.Equal(t, 0, repo.Len())

	_, ok := repo.GetByID(0)
	assert.False(t, ok)

	assert.Nil(t, Empty("staff.dat", pairLayout).All())
}

func TestAllReturnsCopy(t *testing.T) {
	t.Parallel()

	src := source.FromBytes("staff.dat", pairs(3))
	repo, err := Build(src, wholeFile(src), pairLayout)
	require.NoError(t, err)

	all := repo.All()
	require.Len(t, all, 3)
	all[0].Value = 99

	first, ok := repo.At(0)
	require.True(t, ok)
	assert.Equal(t, int32(0), first.Value)
	assert.Equal(t, 3, repo.Len())
	assert.Len(t, repo.All(), 3)
}

func TestBuildMaxRecords(t *testing.T) {
	t.Parallel()

	src := source.FromBytes("x.dat", append(pairs(5), 9))

	repo, err := Build(src, wholeFile(src), pairLayout, WithMaxRecords(3))
	require.NoError(t, err)
	assert.Equal(t, 3, repo.Len())
	require.Len(t, repo.Warnings(), 1)
	var w *dattype.SizeMismatchWarning
	require.ErrorAs(t, repo.Warnings()[0], &w)
	assert.Equal(t, int64(2*8+1), w.Remainder)
	assert.Equal(t, 3, w.Count)

	// A cap above the record count only floors.
	repo, err = Build(src, wholeFile(src), pairLayout, WithMaxRecords(10))
	require.NoError(t, err)
	assert.Equal(t, 5, repo.Len())
	require.Len(t, repo.Warnings(), 1)
	require.ErrorAs(t, repo.Warnings()[0], &w)
	assert.Equal(t, int64(1), w.Remainder)

	// Exact fit.
	src = source.FromBytes("x.dat", pairs(3))
	repo, err = Build(src, wholeFile(src), pairLayout, WithMaxRecords(3))
	require.NoError(t, err)
	assert.Empty(t, repo.Warnings())
}

func TestBuildOutOfRange(t *testing.T) {
	t.Parallel()

	src := source.FromBytes("club.dat", make([]byte, 10))
	_, err := Build(src, dattype.RecordLocation{Offset: 5, Length: 581}, clubLayout)
	require.ErrorIs(t, err, dattype.ErrOutOfRange)
}

func TestBuildInvalidLayout(t *testing.T) {
	t.Parallel()

	src := source.FromBytes("x.dat", nil)
	_, err := Build(src, wholeFile(src), Layout[pair]{Kind: "pair"})
	assert.Error(t, err)

	_, err = Build(src, wholeFile(src), Layout[pair]{Kind: "pair", RecordSize: 8, Decode: pairLayout.Decode})
	assert.Error(t, err)
}

func TestBuildSubRange(t *testing.T) {
	t.Parallel()

	data := append(make([]byte, 16), pairs(4)...)
	src := source.FromBytes("staff.dat", data)
	repo, err := Build(src, dattype.RecordLocation{Offset: 16, Length: 32}, pairLayout)
	require.NoError(t, err)

	got, ok := repo.GetByID(9)
	require.True(t, ok)
	assert.Equal(t, pair{ID: 9, Value: 3, Pos: 3}, got)
	assert.Equal(t, int64(16), repo.Location().Offset)
}

func TestGetByIDFirstWins(t *testing.T) {
	t.Parallel()

	cs := clubs(3)
	cs[2].ID = cs[0].ID
	cs[2].LongName = "Duplicate"
	src := source.FromBytes("club.dat", testutil.BuildClubs(t, cs))
	repo, err := Build(src, wholeFile(src), clubLayout)
	require.NoError(t, err)

	got, ok := repo.GetByID(cs[0].ID)
	require.True(t, ok)
	assert.Equal(t, "Club 0", got.LongName)

	_, ok = repo.GetByID(-1)
	assert.False(t, ok)
	_, ok = repo.GetByID(999)
	assert.False(t, ok)
}

func TestOrdinalIdentity(t *testing.T) {
	t.Parallel()

	layout := Layout[dattype.NonPlayer]{
		Kind:       "nonplayer",
		RecordSize: dattype.NonPlayerSize,
		Decode:     codec.DecodeNonPlayer,
		Ordinal:    true,
		SetOrdinal: func(n *dattype.NonPlayer, i int32) { n.Index = i },
	}
	var data []byte
	for i := range 3 {
		n := dattype.NonPlayer{CurrentAbility: int16(10 * i)}
		data = append(data, codec.EncodeNonPlayer(&n)...)
	}
	src := source.FromBytes("staff.dat", data)
	repo, err := Build(src, wholeFile(src), layout)
	require.NoError(t, err)

	got, ok := repo.GetByID(2)
	require.True(t, ok)
	assert.Equal(t, int32(2), got.Index)
	assert.Equal(t, int16(20), got.CurrentAbility)

	_, ok = repo.GetByID(3)
	assert.False(t, ok)
	_, ok = repo.GetByID(-1)
	assert.False(t, ok)
}

func TestSearchByName(t *testing.T) {
	t.Parallel()

	cs := clubs(3)
	cs[0].LongName = "Manchester United"
	cs[1].LongName = "Manchester City"
	cs[2].LongName = "Leeds United"
	src := source.FromBytes("club.dat", testutil.BuildClubs(t, cs))
	repo, err := Build(src, wholeFile(src), clubLayout)
	require.NoError(t, err)

	longName := func(c dattype.Club) string { return c.LongName }

	tests := []struct {
		needle string
		want   []int32
	}{
		{"manchester", []int32{100, 101}},
		{"UNITED", []int32{100, 102}},
		{"", []int32{100, 101, 102}},
		{"Arsenal", nil},
	}
	for _, tt := range tests {
		t.Run(tt.needle, func(t *testing.T) {
			t.Parallel()
			var ids []int32
			for _, c := range repo.SearchByName(tt.needle, longName) {
				ids = append(ids, c.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestFindAndRecords(t *testing.T) {
	t.Parallel()

	src := source.FromBytes("x.dat", pairs(10))
	repo, err := Build(src, wholeFile(src), pairLayout)
	require.NoError(t, err)

	odd := repo.Find(func(p pair) bool { return p.Value%2 == 1 })
	assert.Len(t, odd, 5)

	var seen []int
	for i, p := range repo.Records() {
		assert.Equal(t, int32(i), p.Pos)
		seen = append(seen, i)
		if i == 3 {
			break
		}
	}
	assert.Equal(t, []int{0, 1, 2, 3}, seen)

	_, ok := repo.At(10)
	assert.False(t, ok)
}

func TestParallelDecodeMatchesSerial(t *testing.T) {
	t.Parallel()

	src := source.FromBytes("x.dat", pairs(3*parallelMinRecords+5))
	serial, err := Build(src, wholeFile(src), pairLayout, WithWorkers(-1))
	require.NoError(t, err)
	parallel, err := Build(src, wholeFile(src), pairLayout, WithWorkers(4))
	require.NoError(t, err)
	auto, err := Build(src, wholeFile(src), pairLayout)
	require.NoError(t, err)

	assert.Equal(t, serial.All(), parallel.All())
	assert.Equal(t, serial.All(), auto.All())
}

func TestDecodeErrorCarriesOffset(t *testing.T) {
	t.Parallel()

	errBad := errors.New("bad record")
	layout := pairLayout
	layout.Decode = func(b []byte) (pair, error) {
		if b[0] == 0xFF {
			return pair{}, &dattype.RecordError{Kind: "pair", Want: 8, Got: 0}
		}
		if b[0] == 0xFE {
			return pair{}, errBad
		}
		return pairLayout.Decode(b)
	}

	data := pairs(4)
	data[16] = 0xFF
	src := source.FromBytes("x.dat", append(make([]byte, 8), data...))

	for _, workers := range []int{-1, 2} {
		_, err := Build(src, dattype.RecordLocation{Offset: 8, Length: 32}, layout, WithWorkers(workers))
		var recErr *dattype.RecordError
		require.ErrorAs(t, err, &recErr)
		assert.Equal(t, "x.dat", recErr.File)
		assert.Equal(t, int64(24), recErr.Offset)
	}

	data = pairs(4)
	data[8] = 0xFE
	src = source.FromBytes("y.dat", data)
	_, err := Build(src, wholeFile(src), layout, WithName("people"))
	require.ErrorIs(t, err, errBad)
	assert.Contains(t, err.Error(), "people")
}

func TestWorkerCount(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, newConfig([]Option{WithWorkers(-1)}).workerCount(1<<20))
	assert.Equal(t, 3, newConfig([]Option{WithWorkers(8)}).workerCount(3))
	assert.Equal(t, 1, newConfig(nil).workerCount(parallelMinRecords-1))
	assert.GreaterOrEqual(t, newConfig(nil).workerCount(4*parallelMinRecords), 1)
}
