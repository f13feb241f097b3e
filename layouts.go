package cmdat

import (
	"github.com/meigma/cmdat/internal/codec"
	"github.com/meigma/cmdat/internal/dattype"
)

// ClubLayout decodes club.dat records, identified by Club.ID.
var ClubLayout = Layout[Club]{
	Kind:       "club",
	RecordSize: dattype.ClubSize,
	Decode:     codec.DecodeClub,
	IDOf:       func(c *Club) int32 { return c.ID },
}

// StaffLayout decodes people records, identified by Staff.ID.
var StaffLayout = Layout[Staff]{
	Kind:       "staff",
	RecordSize: dattype.StaffSize,
	Decode:     codec.DecodeStaff,
	IDOf:       func(s *Staff) int32 { return s.ID },
}

// PlayerLayout decodes player records, identified by Player.ID.
var PlayerLayout = Layout[Player]{
	Kind:       "player",
	RecordSize: dattype.PlayerSize,
	Decode:     codec.DecodePlayer,
	IDOf:       func(p *Player) int32 { return p.ID },
}

// NonPlayerLayout decodes non-player records. Their identity is their
// position in the block, stored in NonPlayer.Index.
var NonPlayerLayout = Layout[NonPlayer]{
	Kind:       "nonplayer",
	RecordSize: dattype.NonPlayerSize,
	Decode:     codec.DecodeNonPlayer,
	Ordinal:    true,
	SetOrdinal: func(n *NonPlayer, i int32) { n.Index = i },
}

// NameLayout decodes name-table records. Name tables are addressed by
// position; see NameTable for the full resolution policy.
var NameLayout = nameLayout(dattype.NameSize)

// nameLayout returns a name layout with a stride of size bytes. Only the
// first 60 bytes of each record are decoded.
func nameLayout(size int) Layout[NameEntry] {
	return Layout[NameEntry]{
		Kind:       "name",
		RecordSize: size,
		Decode:     codec.DecodeName,
		Ordinal:    true,
	}
}
