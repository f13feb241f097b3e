package cmdat

import "strings"

// UnknownName is returned for staff whose name references resolve to nothing.
const UnknownName = "<unknown>"

// Names groups the three name tables a staff row references.
type Names struct {
	First  *NameTable
	Second *NameTable
	Common *NameTable
}

// StaffFinder looks staff up by id.
type StaffFinder interface {
	GetByID(id int32) (Staff, bool)
}

// ClubFinder looks clubs up by id.
type ClubFinder interface {
	GetByID(id int32) (Club, bool)
}

// RosterEntry is one occupied, resolvable slot of a club squad.
type RosterEntry struct {
	Slot         int
	StaffID      int32
	Name         string
	PlayerRef    int32
	NonPlayerRef int32
}

// ResolveStaffName returns the display name of s: the common name when it
// has one, otherwise "first second" with empty parts left out, otherwise
// UnknownName.
func ResolveStaffName(s *Staff, first, second, common *NameTable) string {
	if name := common.Resolve(s.CommonNameRef); name != "" {
		return name
	}
	parts := make([]string, 0, 2)
	if name := first.Resolve(s.FirstNameRef); name != "" {
		parts = append(parts, name)
	}
	if name := second.Resolve(s.SecondNameRef); name != "" {
		parts = append(parts, name)
	}
	if len(parts) == 0 {
		return UnknownName
	}
	return strings.Join(parts, " ")
}

// Resolve is ResolveStaffName over n.
func (n Names) Resolve(s *Staff) string {
	return ResolveStaffName(s, n.First, n.Second, n.Common)
}

// ResolveRoster walks slots in order. Empty slots and ids unknown to staff
// are skipped without error.
func ResolveRoster(slots []int32, staff StaffFinder, names Names) []RosterEntry {
	var out []RosterEntry
	for i, id := range slots {
		if id == Empty {
			continue
		}
		s, ok := staff.GetByID(id)
		if !ok {
			continue
		}
		out = append(out, RosterEntry{
			Slot:         i,
			StaffID:      id,
			Name:         names.Resolve(&s),
			PlayerRef:    s.PlayerRef,
			NonPlayerRef: s.NonPlayerRef,
		})
	}
	return out
}

// ResolveRivals returns the clubs referenced by c's rival slots, in slot
// order. Empty and unknown ids are skipped.
func ResolveRivals(c *Club, clubs ClubFinder) []Club {
	var out []Club
	for _, id := range c.RivalClubs {
		if id == Empty {
			continue
		}
		if rival, ok := clubs.GetByID(id); ok {
			out = append(out, rival)
		}
	}
	return out
}
