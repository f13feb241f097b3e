package dattype

// On-disk record sizes in bytes.
const (
	ClubSize      = 581
	StaffSize     = 110
	PlayerSize    = 70
	NonPlayerSize = 64
	NameSize      = 60
	DateSize      = 8

	IndexHeaderSize = 8
	IndexEntrySize  = 67

	// Fixed text field widths.
	IndexFilenameLen = 51
	NameLen          = 51
	ClubLongNameLen  = 51
	ClubShortNameLen = 26
)
