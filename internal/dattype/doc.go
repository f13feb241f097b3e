// Package dattype holds the value types shared by the codec, catalog and
// repository packages: decoded records, catalog entries, block locations and
// the error taxonomy.
//
// Records are plain values. Cross-record relationships are integer
// references (-1 meaning "empty") resolved by explicit lookups, never
// pointers.
package dattype
