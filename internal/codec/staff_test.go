package codec

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meigma/cmdat/internal/dattype"
)

func sampleStaff() dattype.Staff {
	return dattype.Staff{
		ID:                42,
		FirstNameRef:      3,
		SecondNameRef:     4,
		CommonNameRef:     -1,
		DateOfBirth:       dattype.CMDate{Day: 133, Year: 1975, LeapYear: 0},
		YearOfBirth:       1975,
		Nation:            44,
		SecondNation:      -1,
		IntApps:           12,
		IntGoals:          2,
		NationalJob:       -1,
		JobForNation:      0,
		DateJoinedNation:  dattype.CMDate{Day: -1, Year: -1, LeapYear: -1},
		DateExpiresNation: dattype.CMDate{Day: 1, Year: 2001, LeapYear: 1},
		ClubJob:           1234,
		JobForClub:        7,
		DateJoinedClub:    dattype.CMDate{Day: 200, Year: 1998},
		DateExpiresClub:   dattype.CMDate{Day: 180, Year: 2003},
		Wage:              15000,
		Value:             2500000,
		Adaptability:      11,
		Ambition:          12,
		Determination:     13,
		Loyalty:           14,
		Pressure:          15,
		Professionalism:   16,
		Sportsmanship:     17,
		Temperament:       18,
		PlayingSquad:      1,
		Classification:    2,
		ClubValuation:     3,
		PlayerRef:         777,
		PreferencesRef:    -1,
		NonPlayerRef:      -1,
		SquadSelectedFor:  255,
	}
}

func TestStaffRoundTrip(t *testing.T) {
	t.Parallel()

	want := sampleStaff()
	b := EncodeStaff(&want)
	require.Len(t, b, dattype.StaffSize)

	got, err := DecodeStaff(b)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, b, EncodeStaff(&got))
}

func TestStaffReferenceOffsets(t *testing.T) {
	t.Parallel()

	b := make([]byte, dattype.StaffSize)
	binary.LittleEndian.PutUint32(b[0x61:], 10)
	binary.LittleEndian.PutUint32(b[0x65:], 20)
	binary.LittleEndian.PutUint32(b[0x69:], 30)
	b[0x6D] = 5

	s, err := DecodeStaff(b)
	require.NoError(t, err)
	assert.Equal(t, int32(10), s.PlayerRef)
	assert.Equal(t, int32(20), s.PreferencesRef)
	assert.Equal(t, int32(30), s.NonPlayerRef)
	assert.Equal(t, uint8(5), s.SquadSelectedFor)
	assert.True(t, s.HasPlayer())
	assert.True(t, s.HasNonPlayer())
}

func TestDecodeStaffSignedValues(t *testing.T) {
	t.Parallel()

	b := make([]byte, dattype.StaffSize)
	binary.LittleEndian.PutUint32(b[0x0C:], 0xFFFFFFFF)
	binary.LittleEndian.PutUint16(b[0x10:], 0xFFFF)

	s, err := DecodeStaff(b)
	require.NoError(t, err)
	assert.Equal(t, int32(-1), s.CommonNameRef)
	assert.Equal(t, int16(-1), s.DateOfBirth.Day)
	assert.Equal(t, 0, s.DateOfBirth.DayOfYear())
}

func TestDateRoundTrip(t *testing.T) {
	t.Parallel()

	want := dattype.CMDate{Day: 59, Year: 2000, LeapYear: 1}
	got, err := DecodeDate(EncodeDate(want))
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, 60, got.DayOfYear())
}
