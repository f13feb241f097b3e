package cmdat

import (
	"github.com/meigma/cmdat/internal/block"
	"github.com/meigma/cmdat/internal/dattype"
	"github.com/meigma/cmdat/internal/index"
)

// --- Re-exports from dattype ---

// Club is a decoded club.dat record.
type Club = dattype.Club

// Staff is a decoded people record.
type Staff = dattype.Staff

// Player is the player extension of a staff row.
type Player = dattype.Player

// NonPlayer is the non-player extension of a staff row.
type NonPlayer = dattype.NonPlayer

// NameEntry is one name-table record.
type NameEntry = dattype.NameEntry

// CMDate is the game's packed date.
type CMDate = dattype.CMDate

// IndexEntry is one index.dat record.
type IndexEntry = dattype.IndexEntry

// RecordLocation is the byte range of a block inside a file.
type RecordLocation = dattype.RecordLocation

// Squad selects one of a club's staff slot arrays.
type Squad = dattype.Squad

// Squad constants.
const (
	SquadPlaying       = dattype.SquadPlaying
	SquadCurrent       = dattype.SquadCurrent
	SquadCoaches       = dattype.SquadCoaches
	SquadScouts        = dattype.SquadScouts
	SquadPhysios       = dattype.SquadPhysios
	SquadDirectors     = dattype.SquadDirectors
	SquadLikedStaff    = dattype.SquadLikedStaff
	SquadDislikedStaff = dattype.SquadDislikedStaff
)

// ParseSquad maps a squad name such as "playing" or "coaches" to a Squad.
func ParseSquad(name string) (Squad, bool) { return dattype.ParseSquad(name) }

// Empty is the value stored in unoccupied reference slots.
const Empty = dattype.Empty

// staff.dat block types.
const (
	FileTypeStaff       = dattype.FileTypeStaff
	FileTypeNonPlayer   = dattype.FileTypeNonPlayer
	FileTypePlayer      = dattype.FileTypePlayer
	FileTypePreferences = dattype.FileTypePreferences
)

// Record sizes.
const (
	ClubSize      = dattype.ClubSize
	StaffSize     = dattype.StaffSize
	PlayerSize    = dattype.PlayerSize
	NonPlayerSize = dattype.NonPlayerSize
	NameSize      = dattype.NameSize
)

// --- Re-exports from index and block ---

// Catalog is a parsed index.dat.
type Catalog = index.Catalog

// Repository holds the decoded records of one block in file order.
type Repository[T any] = block.Repository[T]

// Layout describes how a record kind is decoded and identified.
type Layout[T any] = block.Layout[T]

// BlockOption configures how a block is built.
type BlockOption = block.Option

// Block options re-exported from block.
var (
	BlockWithLogger  = block.WithLogger
	BlockWithName    = block.WithName
	BlockWithWorkers = block.WithWorkers
)

// CountOccupied returns the number of slots not holding Empty.
func CountOccupied(slots []int32) int { return dattype.CountOccupied(slots) }
