package dattype

// Catalog file types used by the staff.dat container.
const (
	FileTypeStaff       uint32 = 6
	FileTypeNonPlayer   uint32 = 9
	FileTypePlayer      uint32 = 10
	FileTypePreferences uint32 = 22
)

// IndexEntry is one record of index.dat: it locates a block of fixed-size
// records inside a data file. Filename alone is not unique; staff.dat
// appears once per FileType.
type IndexEntry struct {
	Filename      string
	FileType      uint32
	RecordCount   uint32
	ByteOffset    uint32
	FormatVersion uint32
}

// RecordLocation is a derived byte range inside a data file.
// It is never persisted.
type RecordLocation struct {
	File   string
	Offset int64
	Length int64

	// Clipped is true when the range computed from the catalog extended
	// past the end of the file and was shortened.
	Clipped bool
}

// End returns the exclusive end offset of the range.
func (l RecordLocation) End() int64 {
	return l.Offset + l.Length
}

// Empty reports whether the range holds no bytes.
func (l RecordLocation) Empty() bool {
	return l.Length == 0
}
