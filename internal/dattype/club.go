package dattype

// Empty is the sentinel stored in optional reference slots.
const Empty int32 = -1

// Club is a decoded club.dat record.
type Club struct {
	ID                 int32
	LongName           string
	LongNameGender     uint8
	ShortName          string
	ShortNameGender    uint8
	NationID           int32
	DivisionID         int32
	LastDivisionID     int32
	LastPosition       uint8
	ReserveDivisionID  int32
	ProfessionalStatus uint8
	BankBalance        int32
	StadiumID          int32
	OwnsStadium        uint8
	ReserveStadiumID   int32
	MatchDay           uint8
	AvgAttendance      int32
	MinAttendance      int32
	MaxAttendance      int32
	TrainingFacilities uint8
	Reputation         int16
	IsPLC              uint8
	HomeShirtFg        int32
	HomeShirtBg        int32
	AwayShirtFg        int32
	AwayShirtBg        int32
	ThirdShirtFg       int32
	ThirdShirtBg       int32

	LikedStaff    [3]int32
	DislikedStaff [3]int32
	RivalClubs    [3]int32 // club ids, not staff ids

	ChairmanStaffID         int32
	Directors               [3]int32
	ManagerStaffID          int32
	AssistantManagerStaffID int32

	PlayingSquad [50]int32
	Coaches      [5]int32
	Scouts       [7]int32
	Physios      [3]int32

	EuroFlag     int32
	EuroSeeding  uint8
	CurrentSquad [20]int32

	Tactics        [4]int32
	CurrentTactics int32
	IsLinked       uint8
}

// Squad selects one of a club's staff slot arrays.
type Squad uint8

const (
	SquadPlaying Squad = iota
	SquadCurrent
	SquadCoaches
	SquadScouts
	SquadPhysios
	SquadDirectors
	SquadLikedStaff
	SquadDislikedStaff
)

var squadNames = [...]string{
	SquadPlaying:       "playing",
	SquadCurrent:       "current",
	SquadCoaches:       "coaches",
	SquadScouts:        "scouts",
	SquadPhysios:       "physios",
	SquadDirectors:     "directors",
	SquadLikedStaff:    "liked",
	SquadDislikedStaff: "disliked",
}

// String returns the short name of the squad.
func (s Squad) String() string {
	if int(s) < len(squadNames) {
		return squadNames[s]
	}
	return "unknown"
}

// ParseSquad maps a short name back to a Squad.
func ParseSquad(name string) (Squad, bool) {
	for i, n := range squadNames {
		if n == name {
			return Squad(i), true
		}
	}
	return 0, false
}

// Slots returns a copy of the staff-id slot array for the squad, in slot
// order. Unoccupied slots hold Empty.
func (c *Club) Slots(s Squad) []int32 {
	var src []int32
	switch s {
	case SquadPlaying:
		src = c.PlayingSquad[:]
	case SquadCurrent:
		src = c.CurrentSquad[:]
	case SquadCoaches:
		src = c.Coaches[:]
	case SquadScouts:
		src = c.Scouts[:]
	case SquadPhysios:
		src = c.Physios[:]
	case SquadDirectors:
		src = c.Directors[:]
	case SquadLikedStaff:
		src = c.LikedStaff[:]
	case SquadDislikedStaff:
		src = c.DislikedStaff[:]
	default:
		return nil
	}
	return append([]int32(nil), src...)
}

// CountOccupied returns the number of slots not holding Empty.
func CountOccupied(slots []int32) int {
	n := 0
	for _, v := range slots {
		if v != Empty {
			n++
		}
	}
	return n
}

// ProfessionalStatusString names the club's professional status code.
func (c *Club) ProfessionalStatusString() string {
	switch c.ProfessionalStatus {
	case 1:
		return "pro"
	case 2:
		return "semi"
	case 3:
		return "amtr"
	default:
		return "unk"
	}
}
