package codec

import "github.com/meigma/cmdat/internal/dattype"

// Club field offsets.
const (
	clubID                 = 0
	clubLongName           = 4
	clubLongNameGender     = 55
	clubShortName          = 56
	clubShortNameGender    = 82
	clubNation             = 83
	clubDivision           = 87
	clubLastDivision       = 91
	clubLastPosition       = 95
	clubReserveDivision    = 96
	clubProfessionalStatus = 100
	clubBankBalance        = 101
	clubStadium            = 105
	clubOwnsStadium        = 109
	clubReserveStadium     = 110
	clubMatchDay           = 114
	clubAvgAttendance      = 115
	clubMinAttendance      = 119
	clubMaxAttendance      = 123
	clubTrainingFacilities = 127
	clubReputation         = 128
	clubIsPLC              = 130
	clubHomeShirtFg        = 131
	clubHomeShirtBg        = 135
	clubAwayShirtFg        = 139
	clubAwayShirtBg        = 143
	clubThirdShirtFg       = 147
	clubThirdShirtBg       = 151
	clubLikedStaff         = 155
	clubDislikedStaff      = 167
	clubRivalClubs         = 179
	clubChairman           = 191
	clubDirectors          = 195
	clubManager            = 207
	clubAssistantManager   = 211
	clubPlayingSquad       = 215
	clubCoaches            = 415
	clubScouts             = 435
	clubPhysios            = 463
	clubEuroFlag           = 475
	clubEuroSeeding        = 479
	clubCurrentSquad       = 480
	clubTactics            = 560
	clubCurrentTactics     = 576
	clubIsLinked           = 580
)

// DecodeClub decodes a 581-byte club.dat record. Bytes past the record are
// ignored.
func DecodeClub(b []byte) (dattype.Club, error) {
	if err := need("club", b, dattype.ClubSize); err != nil {
		return dattype.Club{}, err
	}
	f := fields(b)
	c := dattype.Club{
		ID:                      f.i32(clubID),
		LongName:                f.text(clubLongName, dattype.ClubLongNameLen),
		LongNameGender:          f.u8(clubLongNameGender),
		ShortName:               f.text(clubShortName, dattype.ClubShortNameLen),
		ShortNameGender:         f.u8(clubShortNameGender),
		NationID:                f.i32(clubNation),
		DivisionID:              f.i32(clubDivision),
		LastDivisionID:          f.i32(clubLastDivision),
		LastPosition:            f.u8(clubLastPosition),
		ReserveDivisionID:       f.i32(clubReserveDivision),
		ProfessionalStatus:      f.u8(clubProfessionalStatus),
		BankBalance:             f.i32(clubBankBalance),
		StadiumID:               f.i32(clubStadium),
		OwnsStadium:             f.u8(clubOwnsStadium),
		ReserveStadiumID:        f.i32(clubReserveStadium),
		MatchDay:                f.u8(clubMatchDay),
		AvgAttendance:           f.i32(clubAvgAttendance),
		MinAttendance:           f.i32(clubMinAttendance),
		MaxAttendance:           f.i32(clubMaxAttendance),
		TrainingFacilities:      f.u8(clubTrainingFacilities),
		Reputation:              f.i16(clubReputation),
		IsPLC:                   f.u8(clubIsPLC),
		HomeShirtFg:             f.i32(clubHomeShirtFg),
		HomeShirtBg:             f.i32(clubHomeShirtBg),
		AwayShirtFg:             f.i32(clubAwayShirtFg),
		AwayShirtBg:             f.i32(clubAwayShirtBg),
		ThirdShirtFg:            f.i32(clubThirdShirtFg),
		ThirdShirtBg:            f.i32(clubThirdShirtBg),
		ChairmanStaffID:         f.i32(clubChairman),
		ManagerStaffID:          f.i32(clubManager),
		AssistantManagerStaffID: f.i32(clubAssistantManager),
		EuroFlag:                f.i32(clubEuroFlag),
		EuroSeeding:             f.u8(clubEuroSeeding),
		CurrentTactics:          f.i32(clubCurrentTactics),
		IsLinked:                f.u8(clubIsLinked),
	}
	f.i32s(clubLikedStaff, c.LikedStaff[:])
	f.i32s(clubDislikedStaff, c.DislikedStaff[:])
	f.i32s(clubRivalClubs, c.RivalClubs[:])
	f.i32s(clubDirectors, c.Directors[:])
	f.i32s(clubPlayingSquad, c.PlayingSquad[:])
	f.i32s(clubCoaches, c.Coaches[:])
	f.i32s(clubScouts, c.Scouts[:])
	f.i32s(clubPhysios, c.Physios[:])
	f.i32s(clubCurrentSquad, c.CurrentSquad[:])
	f.i32s(clubTactics, c.Tactics[:])
	return c, nil
}

// EncodeClub returns the canonical 581-byte encoding of c.
func EncodeClub(c *dattype.Club) []byte {
	b := make([]byte, dattype.ClubSize)
	p := putter(b)
	p.i32(clubID, c.ID)
	p.text(clubLongName, dattype.ClubLongNameLen, c.LongName)
	p.u8(clubLongNameGender, c.LongNameGender)
	p.text(clubShortName, dattype.ClubShortNameLen, c.ShortName)
	p.u8(clubShortNameGender, c.ShortNameGender)
	p.i32(clubNation, c.NationID)
	p.i32(clubDivision, c.DivisionID)
	p.i32(clubLastDivision, c.LastDivisionID)
	p.u8(clubLastPosition, c.LastPosition)
	p.i32(clubReserveDivision, c.ReserveDivisionID)
	p.u8(clubProfessionalStatus, c.ProfessionalStatus)
	p.i32(clubBankBalance, c.BankBalance)
	p.i32(clubStadium, c.StadiumID)
	p.u8(clubOwnsStadium, c.OwnsStadium)
	p.i32(clubReserveStadium, c.ReserveStadiumID)
	p.u8(clubMatchDay, c.MatchDay)
	p.i32(clubAvgAttendance, c.AvgAttendance)
	p.i32(clubMinAttendance, c.MinAttendance)
	p.i32(clubMaxAttendance, c.MaxAttendance)
	p.u8(clubTrainingFacilities, c.TrainingFacilities)
	p.i16(clubReputation, c.Reputation)
	p.u8(clubIsPLC, c.IsPLC)
	p.i32(clubHomeShirtFg, c.HomeShirtFg)
	p.i32(clubHomeShirtBg, c.HomeShirtBg)
	p.i32(clubAwayShirtFg, c.AwayShirtFg)
	p.i32(clubAwayShirtBg, c.AwayShirtBg)
	p.i32(clubThirdShirtFg, c.ThirdShirtFg)
	p.i32(clubThirdShirtBg, c.ThirdShirtBg)
	p.i32s(clubLikedStaff, c.LikedStaff[:])
	p.i32s(clubDislikedStaff, c.DislikedStaff[:])
	p.i32s(clubRivalClubs, c.RivalClubs[:])
	p.i32(clubChairman, c.ChairmanStaffID)
	p.i32s(clubDirectors, c.Directors[:])
	p.i32(clubManager, c.ManagerStaffID)
	p.i32(clubAssistantManager, c.AssistantManagerStaffID)
	p.i32s(clubPlayingSquad, c.PlayingSquad[:])
	p.i32s(clubCoaches, c.Coaches[:])
	p.i32s(clubScouts, c.Scouts[:])
	p.i32s(clubPhysios, c.Physios[:])
	p.i32(clubEuroFlag, c.EuroFlag)
	p.u8(clubEuroSeeding, c.EuroSeeding)
	p.i32s(clubCurrentSquad, c.CurrentSquad[:])
	p.i32s(clubTactics, c.Tactics[:])
	p.i32(clubCurrentTactics, c.CurrentTactics)
	p.u8(clubIsLinked, c.IsLinked)
	return b
}
