package dattype

// Player is the player extension of a Staff row (staff.dat fileType 10).
// ID is the value carried by Staff.PlayerRef.
type Player struct {
	ID                int32
	SquadNumber       uint8
	CurrentAbility    int16
	PotentialAbility  int16
	HomeReputation    uint16
	CurrentReputation uint16
	WorldReputation   uint16

	Goalkeeper          int8
	Sweeper             int8
	Defender            int8
	DefensiveMidfielder int8
	Midfielder          int8
	AttackingMidfielder int8
	Attacker            int8
	WingBack            int8
	RightSide           int8
	LeftSide            int8
	Central             int8
	FreeRole            int8

	Acceleration     int8
	Aggression       int8
	Agility          int8
	Anticipation     int8
	Balance          int8
	Bravery          int8
	Consistency      int8
	Corners          int8
	Crossing         int8
	Decisions        int8
	Dirtiness        int8
	Dribbling        int8
	Finishing        int8
	Flair            int8
	FreeKicks        int8
	Handling         int8
	Heading          int8
	ImportantMatches int8
	InjuryProneness  int8
	Jumping          int8
	Leadership       int8
	LeftFoot         int8
	LongShots        int8
	Marking          int8
	Movement         int8
	NaturalFitness   int8
	OneOnOnes        int8
	Pace             int8
	Passing          int8
	Penalties        int8
	Positioning      int8
	Reflexes         int8
	RightFoot        int8
	Stamina          int8
	Strength         int8
	Tackling         int8
	Teamwork         int8
	Technique        int8
	ThrowIns         int8
	Versatility      int8
	Vision           int8
	WorkRate         int8

	Morale uint8
}

// Attributes returns pointers to the attribute bytes in on-disk order,
// starting with Goalkeeper.
func (p *Player) Attributes() []*int8 {
	return []*int8{
		&p.Goalkeeper, &p.Sweeper, &p.Defender, &p.DefensiveMidfielder,
		&p.Midfielder, &p.AttackingMidfielder, &p.Attacker, &p.WingBack,
		&p.RightSide, &p.LeftSide, &p.Central, &p.FreeRole,
		&p.Acceleration, &p.Aggression, &p.Agility, &p.Anticipation,
		&p.Balance, &p.Bravery, &p.Consistency, &p.Corners,
		&p.Crossing, &p.Decisions, &p.Dirtiness, &p.Dribbling,
		&p.Finishing, &p.Flair, &p.FreeKicks, &p.Handling,
		&p.Heading, &p.ImportantMatches, &p.InjuryProneness, &p.Jumping,
		&p.Leadership, &p.LeftFoot, &p.LongShots, &p.Marking,
		&p.Movement, &p.NaturalFitness, &p.OneOnOnes, &p.Pace,
		&p.Passing, &p.Penalties, &p.Positioning, &p.Reflexes,
		&p.RightFoot, &p.Stamina, &p.Strength, &p.Tackling,
		&p.Teamwork, &p.Technique, &p.ThrowIns, &p.Versatility,
		&p.Vision, &p.WorkRate,
	}
}

// NonPlayer is the non-player extension of a Staff row (staff.dat
// fileType 9). The record stores no identity of its own: Index is its
// position in the block, which is what Staff.NonPlayerRef carries.
type NonPlayer struct {
	Index int32

	CurrentAbility    int16
	PotentialAbility  int16
	HomeReputation    int16
	CurrentReputation int16
	WorldReputation   int16

	Attacking         uint8
	Business          uint8
	Coaching          uint8
	CoachingGks       uint8
	CoachingTechnique uint8
	Directness        uint8
	Discipline        uint8
	FreeRoles         uint8
	Interference      uint8
	Judgement         uint8
	JudgingPotential  uint8
	ManHandling       uint8
	Marking           uint8
	Motivating        uint8
	Offside           uint8
	Patience          uint8
	Physiotherapy     uint8
	Pressing          uint8
	Resources         uint8
	Tactics           uint8
	Youngsters        uint8

	Goalkeeper          int32
	Sweeper             int32
	Defender            int32
	DefensiveMidfielder int32
	Midfielder          int32
	AttackingMidfielder int32
	Attacker            int32
	WingBack            int32

	FormationPreferred uint8
}

// Attributes returns pointers to the one-byte attributes in on-disk order.
func (n *NonPlayer) Attributes() []*uint8 {
	return []*uint8{
		&n.Attacking, &n.Business, &n.Coaching, &n.CoachingGks,
		&n.CoachingTechnique, &n.Directness, &n.Discipline, &n.FreeRoles,
		&n.Interference, &n.Judgement, &n.JudgingPotential, &n.ManHandling,
		&n.Marking, &n.Motivating, &n.Offside, &n.Patience,
		&n.Physiotherapy, &n.Pressing, &n.Resources, &n.Tactics,
		&n.Youngsters,
	}
}

// Positions returns pointers to the positional suitability values in on-disk order.
func (n *NonPlayer) Positions() []*int32 {
	return []*int32{
		&n.Goalkeeper, &n.Sweeper, &n.Defender, &n.DefensiveMidfielder,
		&n.Midfielder, &n.AttackingMidfielder, &n.Attacker, &n.WingBack,
	}
}

// NameEntry is one record of a name table (first, second or common names).
type NameEntry struct {
	Name    string
	IDField uint32
	Nation  uint32
	Count   int8
}
