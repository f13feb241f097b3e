package codec

import "github.com/meigma/cmdat/internal/dattype"

// Staff field offsets.
const (
	staffID                = 0x00
	staffFirstName         = 0x04
	staffSecondName        = 0x08
	staffCommonName        = 0x0C
	staffDateOfBirth       = 0x10
	staffYearOfBirth       = 0x18
	staffNation            = 0x1A
	staffSecondNation      = 0x1E
	staffIntApps           = 0x22
	staffIntGoals          = 0x23
	staffNationalJob       = 0x24
	staffJobForNation      = 0x28
	staffDateJoinedNation  = 0x29
	staffDateExpiresNation = 0x31
	staffClubJob           = 0x39
	staffJobForClub        = 0x3D
	staffDateJoinedClub    = 0x3E
	staffDateExpiresClub   = 0x46
	staffWage              = 0x4E
	staffValue             = 0x52
	staffAdaptability      = 0x56
	staffAmbition          = 0x57
	staffDetermination     = 0x58
	staffLoyalty           = 0x59
	staffPressure          = 0x5A
	staffProfessionalism   = 0x5B
	staffSportsmanship     = 0x5C
	staffTemperament       = 0x5D
	staffPlayingSquad      = 0x5E
	staffClassification    = 0x5F
	staffClubValuation     = 0x60
	staffPlayer            = 0x61
	staffPreferences       = 0x65
	staffNonPlayer         = 0x69
	staffSquadSelectedFor  = 0x6D
)

// DecodeDate decodes an 8-byte CMDate.
func DecodeDate(b []byte) (dattype.CMDate, error) {
	if err := need("date", b, dattype.DateSize); err != nil {
		return dattype.CMDate{}, err
	}
	return fields(b).date(0), nil
}

// EncodeDate returns the 8-byte encoding of d.
func EncodeDate(d dattype.CMDate) []byte {
	b := make([]byte, dattype.DateSize)
	putter(b).date(0, d)
	return b
}

// DecodeStaff decodes a 110-byte people record.
func DecodeStaff(b []byte) (dattype.Staff, error) {
	if err := need("staff", b, dattype.StaffSize); err != nil {
		return dattype.Staff{}, err
	}
	f := fields(b)
	return dattype.Staff{
		ID:                f.i32(staffID),
		FirstNameRef:      f.i32(staffFirstName),
		SecondNameRef:     f.i32(staffSecondName),
		CommonNameRef:     f.i32(staffCommonName),
		DateOfBirth:       f.date(staffDateOfBirth),
		YearOfBirth:       f.u16(staffYearOfBirth),
		Nation:            f.i32(staffNation),
		SecondNation:      f.i32(staffSecondNation),
		IntApps:           f.u8(staffIntApps),
		IntGoals:          f.u8(staffIntGoals),
		NationalJob:       f.i32(staffNationalJob),
		JobForNation:      f.u8(staffJobForNation),
		DateJoinedNation:  f.date(staffDateJoinedNation),
		DateExpiresNation: f.date(staffDateExpiresNation),
		ClubJob:           f.i32(staffClubJob),
		JobForClub:        f.u8(staffJobForClub),
		DateJoinedClub:    f.date(staffDateJoinedClub),
		DateExpiresClub:   f.date(staffDateExpiresClub),
		Wage:              f.i32(staffWage),
		Value:             f.i32(staffValue),
		Adaptability:      f.u8(staffAdaptability),
		Ambition:          f.u8(staffAmbition),
		Determination:     f.u8(staffDetermination),
		Loyalty:           f.u8(staffLoyalty),
		Pressure:          f.u8(staffPressure),
		Professionalism:   f.u8(staffProfessionalism),
		Sportsmanship:     f.u8(staffSportsmanship),
		Temperament:       f.u8(staffTemperament),
		PlayingSquad:      f.u8(staffPlayingSquad),
		Classification:    f.u8(staffClassification),
		ClubValuation:     f.u8(staffClubValuation),
		PlayerRef:         f.i32(staffPlayer),
		PreferencesRef:    f.i32(staffPreferences),
		NonPlayerRef:      f.i32(staffNonPlayer),
		SquadSelectedFor:  f.u8(staffSquadSelectedFor),
	}, nil
}

// EncodeStaff returns the canonical 110-byte encoding of s.
func EncodeStaff(s *dattype.Staff) []byte {
	b := make([]byte, dattype.StaffSize)
	p := putter(b)
	p.i32(staffID, s.ID)
	p.i32(staffFirstName, s.FirstNameRef)
	p.i32(staffSecondName, s.SecondNameRef)
	p.i32(staffCommonName, s.CommonNameRef)
	p.date(staffDateOfBirth, s.DateOfBirth)
	p.u16(staffYearOfBirth, s.YearOfBirth)
	p.i32(staffNation, s.Nation)
	p.i32(staffSecondNation, s.SecondNation)
	p.u8(staffIntApps, s.IntApps)
	p.u8(staffIntGoals, s.IntGoals)
	p.i32(staffNationalJob, s.NationalJob)
	p.u8(staffJobForNation, s.JobForNation)
	p.date(staffDateJoinedNation, s.DateJoinedNation)
	p.date(staffDateExpiresNation, s.DateExpiresNation)
	p.i32(staffClubJob, s.ClubJob)
	p.u8(staffJobForClub, s.JobForClub)
	p.date(staffDateJoinedClub, s.DateJoinedClub)
	p.date(staffDateExpiresClub, s.DateExpiresClub)
	p.i32(staffWage, s.Wage)
	p.i32(staffValue, s.Value)
	p.u8(staffAdaptability, s.Adaptability)
	p.u8(staffAmbition, s.Ambition)
	p.u8(staffDetermination, s.Determination)
	p.u8(staffLoyalty, s.Loyalty)
	p.u8(staffPressure, s.Pressure)
	p.u8(staffProfessionalism, s.Professionalism)
	p.u8(staffSportsmanship, s.Sportsmanship)
	p.u8(staffTemperament, s.Temperament)
	p.u8(staffPlayingSquad, s.PlayingSquad)
	p.u8(staffClassification, s.Classification)
	p.u8(staffClubValuation, s.ClubValuation)
	p.i32(staffPlayer, s.PlayerRef)
	p.i32(staffPreferences, s.PreferencesRef)
	p.i32(staffNonPlayer, s.NonPlayerRef)
	p.u8(staffSquadSelectedFor, s.SquadSelectedFor)
	return b
}
