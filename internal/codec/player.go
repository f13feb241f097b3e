package codec

import "github.com/meigma/cmdat/internal/dattype"

const (
	playerID                = 0x00
	playerSquadNumber       = 0x04
	playerCurrentAbility    = 0x05
	playerPotentialAbility  = 0x07
	playerHomeReputation    = 0x09
	playerCurrentReputation = 0x0B
	playerWorldReputation   = 0x0D
	playerAttributes        = 0x0F // one signed byte each, through 0x44
	playerMorale            = 0x45
)

// DecodePlayer decodes a 70-byte player record.
func DecodePlayer(b []byte) (dattype.Player, error) {
	if err := need("player", b, dattype.PlayerSize); err != nil {
		return dattype.Player{}, err
	}
	f := fields(b)
	p := dattype.Player{
		ID:                f.i32(playerID),
		SquadNumber:       f.u8(playerSquadNumber),
		CurrentAbility:    f.i16(playerCurrentAbility),
		PotentialAbility:  f.i16(playerPotentialAbility),
		HomeReputation:    f.u16(playerHomeReputation),
		CurrentReputation: f.u16(playerCurrentReputation),
		WorldReputation:   f.u16(playerWorldReputation),
		Morale:            f.u8(playerMorale),
	}
	for i, a := range p.Attributes() {
		*a = f.i8(playerAttributes + i)
	}
	return p, nil
}

// EncodePlayer returns the canonical 70-byte encoding of p.
func EncodePlayer(p *dattype.Player) []byte {
	b := make([]byte, dattype.PlayerSize)
	w := putter(b)
	w.i32(playerID, p.ID)
	w.u8(playerSquadNumber, p.SquadNumber)
	w.i16(playerCurrentAbility, p.CurrentAbility)
	w.i16(playerPotentialAbility, p.PotentialAbility)
	w.u16(playerHomeReputation, p.HomeReputation)
	w.u16(playerCurrentReputation, p.CurrentReputation)
	w.u16(playerWorldReputation, p.WorldReputation)
	for i, a := range p.Attributes() {
		w.i8(playerAttributes+i, *a)
	}
	w.u8(playerMorale, p.Morale)
	return b
}

const (
	nonPlayerCurrentAbility    = 0x00
	nonPlayerPotentialAbility  = 0x02
	nonPlayerHomeReputation    = 0x04
	nonPlayerCurrentReputation = 0x06
	nonPlayerWorldReputation   = 0x08
	nonPlayerAttributes        = 0x0A // one unsigned byte each, through 0x1E
	nonPlayerPositions         = 0x1F // int32 each, through 0x3E
	nonPlayerFormation         = 0x3F
)

// DecodeNonPlayer decodes a 64-byte non-player record. The record carries no
// identity; callers assign Index from its position in the block.
func DecodeNonPlayer(b []byte) (dattype.NonPlayer, error) {
	if err := need("nonplayer", b, dattype.NonPlayerSize); err != nil {
		return dattype.NonPlayer{}, err
	}
	f := fields(b)
	n := dattype.NonPlayer{
		CurrentAbility:     f.i16(nonPlayerCurrentAbility),
		PotentialAbility:   f.i16(nonPlayerPotentialAbility),
		HomeReputation:     f.i16(nonPlayerHomeReputation),
		CurrentReputation:  f.i16(nonPlayerCurrentReputation),
		WorldReputation:    f.i16(nonPlayerWorldReputation),
		FormationPreferred: f.u8(nonPlayerFormation),
	}
	for i, a := range n.Attributes() {
		*a = f.u8(nonPlayerAttributes + i)
	}
	for i, pos := range n.Positions() {
		*pos = f.i32(nonPlayerPositions + 4*i)
	}
	return n, nil
}

// EncodeNonPlayer returns the canonical 64-byte encoding of n. Index is not
// stored.
func EncodeNonPlayer(n *dattype.NonPlayer) []byte {
	b := make([]byte, dattype.NonPlayerSize)
	w := putter(b)
	w.i16(nonPlayerCurrentAbility, n.CurrentAbility)
	w.i16(nonPlayerPotentialAbility, n.PotentialAbility)
	w.i16(nonPlayerHomeReputation, n.HomeReputation)
	w.i16(nonPlayerCurrentReputation, n.CurrentReputation)
	w.i16(nonPlayerWorldReputation, n.WorldReputation)
	for i, a := range n.Attributes() {
		w.u8(nonPlayerAttributes+i, *a)
	}
	for i, pos := range n.Positions() {
		w.i32(nonPlayerPositions+4*i, *pos)
	}
	w.u8(nonPlayerFormation, n.FormationPreferred)
	return b
}
