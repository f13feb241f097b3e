package codec

import "github.com/meigma/cmdat/internal/dattype"

const (
	nameText    = 0
	nameIDField = 51
	nameNation  = 55
	nameCount   = 59
)

// DecodeName decodes a 60-byte name-table record. The name is trimmed of
// trailing spaces and NULs.
func DecodeName(b []byte) (dattype.NameEntry, error) {
	if err := need("name", b, dattype.NameSize); err != nil {
		return dattype.NameEntry{}, err
	}
	f := fields(b)
	return dattype.NameEntry{
		Name:    trimName(f.text(nameText, dattype.NameLen)),
		IDField: f.u32(nameIDField),
		Nation:  f.u32(nameNation),
		Count:   f.i8(nameCount),
	}, nil
}

// EncodeName returns the canonical 60-byte encoding of e.
func EncodeName(e *dattype.NameEntry) []byte {
	b := make([]byte, dattype.NameSize)
	p := putter(b)
	p.text(nameText, dattype.NameLen, e.Name)
	p.u32(nameIDField, e.IDField)
	p.u32(nameNation, e.Nation)
	p.i8(nameCount, e.Count)
	return b
}

const (
	indexFilename = 0
	indexFileType = 51
	indexCount    = 55
	indexOffset   = 59
	indexVersion  = 63
)

// DecodeIndexEntry decodes a 67-byte index.dat record.
func DecodeIndexEntry(b []byte) (dattype.IndexEntry, error) {
	if err := need("index", b, dattype.IndexEntrySize); err != nil {
		return dattype.IndexEntry{}, err
	}
	f := fields(b)
	return dattype.IndexEntry{
		Filename:      trimName(f.text(indexFilename, dattype.IndexFilenameLen)),
		FileType:      f.u32(indexFileType),
		RecordCount:   f.u32(indexCount),
		ByteOffset:    f.u32(indexOffset),
		FormatVersion: f.u32(indexVersion),
	}, nil
}

// EncodeIndexEntry returns the canonical 67-byte encoding of e.
func EncodeIndexEntry(e *dattype.IndexEntry) []byte {
	b := make([]byte, dattype.IndexEntrySize)
	p := putter(b)
	p.text(indexFilename, dattype.IndexFilenameLen, e.Filename)
	p.u32(indexFileType, e.FileType)
	p.u32(indexCount, e.RecordCount)
	p.u32(indexOffset, e.ByteOffset)
	p.u32(indexVersion, e.FormatVersion)
	return b
}
