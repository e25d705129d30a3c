// Package rut validates, normalizes and formats Chilean national identifiers
// (RUT for tax purposes, RUN for civil identity; both share one scheme).
//
// An identifier is a 7 or 8 digit body followed by a check character in
// 0-9 or K, computed with a weighted modulo-11 checksum. Callers may pass any
// of these shapes, with surrounding whitespace and either case of K:
//
//	12.345.678-5
//	12345678-5
//	123456785
//
// Usage at trust boundaries:
//
//	id, err := rut.Parse(input)   // structure only, no checksum
//	ok := rut.Validate(input)     // structure and checksum, never errors
//	s, err := rut.Format(input)   // "12.345.678-5"
//
// Every function is pure and safe for concurrent use. Parse, Format, Clean and
// CheckCharacter report malformed input with an error matching
// ErrInvalidFormat; Validate and IsLikelyOrganizational collapse any failure
// to false.
package rut
