// Package codec decodes fixed-size little-endian records from their on-disk
// bytes, and encodes them back for fixtures.
//
// Every field is read at an explicit byte offset. Text fields are fixed-width,
// NUL-terminated and Latin-1 encoded.
package codec

import (
	"encoding/binary"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/meigma/cmdat/internal/dattype"
)

var le = binary.LittleEndian

// need returns a RecordError when b is shorter than size.
func need(kind string, b []byte, size int) error {
	if len(b) < size {
		return &dattype.RecordError{Kind: kind, Want: size, Got: len(b)}
	}
	return nil
}

// fields reads typed values out of a record buffer.
type fields []byte

func (f fields) u8(off int) uint8   { return f[off] }
func (f fields) i8(off int) int8    { return int8(f[off]) }
func (f fields) u16(off int) uint16 { return le.Uint16(f[off:]) }
func (f fields) i16(off int) int16  { return int16(le.Uint16(f[off:])) }
func (f fields) u32(off int) uint32 { return le.Uint32(f[off:]) }
func (f fields) i32(off int) int32  { return int32(le.Uint32(f[off:])) }

func (f fields) i32s(off int, dst []int32) {
	for i := range dst {
		dst[i] = f.i32(off + 4*i)
	}
}

func (f fields) date(off int) dattype.CMDate {
	return dattype.CMDate{
		Day:      f.i16(off),
		Year:     f.i16(off + 2),
		LeapYear: f.i32(off + 4),
	}
}

// text decodes the n-byte field at off up to its first NUL.
func (f fields) text(off, n int) string {
	return latin1(f[off : off+n])
}

// putter writes typed values into a record buffer.
type putter []byte

func (p putter) u8(off int, v uint8)   { p[off] = v }
func (p putter) i8(off int, v int8)    { p[off] = byte(v) }
func (p putter) u16(off int, v uint16) { le.PutUint16(p[off:], v) }
func (p putter) i16(off int, v int16)  { le.PutUint16(p[off:], uint16(v)) }
func (p putter) u32(off int, v uint32) { le.PutUint32(p[off:], v) }
func (p putter) i32(off int, v int32)  { le.PutUint32(p[off:], uint32(v)) }

func (p putter) i32s(off int, src []int32) {
	for i, v := range src {
		p.i32(off+4*i, v)
	}
}

func (p putter) date(off int, d dattype.CMDate) {
	p.i16(off, d.Day)
	p.i16(off+2, d.Year)
	p.i32(off+4, d.LeapYear)
}

// text writes s as Latin-1 into the n-byte field at off, truncating when it
// does not fit. The remainder of the field is zero.
func (p putter) text(off, n int, s string) {
	field := p[off : off+n]
	clear(field)
	copy(field, toLatin1(s))
}

func latin1(b []byte) string {
	for i, c := range b {
		if c == 0 {
			b = b[:i]
			break
		}
	}
	s, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		// Every byte is a valid Latin-1 code point.
		return string(b)
	}
	return string(s)
}

func toLatin1(s string) []byte {
	enc := encoding.ReplaceUnsupported(charmap.ISO8859_1.NewEncoder())
	b, err := enc.Bytes([]byte(s))
	if err != nil {
		return []byte(s)
	}
	return b
}

// trimName drops the trailing padding used by catalog filenames and name
// tables.
func trimName(s string) string {
	return strings.TrimRight(s, " \x00")
}
