package dattype

// CMDate is the game's packed date. Day holds day-of-year minus one.
// Values are passed through without calendar validation.
type CMDate struct {
	Day      int16
	Year     int16
	LeapYear int32
}

// DayOfYear returns the 1-based day of the year.
func (d CMDate) DayOfYear() int {
	return int(d.Day) + 1
}

// Staff is a decoded people record from the staff.dat fileType 6 block.
//
// FirstNameRef, SecondNameRef and CommonNameRef index the name tables.
// PlayerRef, PreferencesRef and NonPlayerRef reference the other staff.dat
// sub-blocks; Empty means the extension does not apply.
type Staff struct {
	ID            int32
	FirstNameRef  int32
	SecondNameRef int32
	CommonNameRef int32

	DateOfBirth  CMDate
	YearOfBirth  uint16
	Nation       int32
	SecondNation int32
	IntApps      uint8
	IntGoals     uint8

	NationalJob       int32
	JobForNation      uint8
	DateJoinedNation  CMDate
	DateExpiresNation CMDate

	ClubJob         int32
	JobForClub      uint8
	DateJoinedClub  CMDate
	DateExpiresClub CMDate

	Wage  int32
	Value int32

	Adaptability    uint8
	Ambition        uint8
	Determination   uint8
	Loyalty         uint8
	Pressure        uint8
	Professionalism uint8
	Sportsmanship   uint8
	Temperament     uint8

	PlayingSquad   uint8
	Classification uint8
	ClubValuation  uint8

	PlayerRef        int32
	PreferencesRef   int32
	NonPlayerRef     int32
	SquadSelectedFor uint8
}

// HasPlayer reports whether the staff member has a player extension.
func (s *Staff) HasPlayer() bool { return s.PlayerRef >= 0 }

// HasNonPlayer reports whether the staff member has a non-player extension.
func (s *Staff) HasNonPlayer() bool { return s.NonPlayerRef >= 0 }
