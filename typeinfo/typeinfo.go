// Package typeinfo maps an on-disk matrix element type to the fixed
// 3-byte tag and byte width recorded in its file header.
//
// Only float64 and float32 are defined; instantiating a Descriptor for any
// other type is a construction-time error, never a panic, so callers can
// surface ErrUnsupportedElementType up their own error chains.
package typeinfo

import (
	"errors"
	"fmt"
)

// ErrUnsupportedElementType is returned when Of is instantiated for a type
// with no defined (element size, tag) pair.
var ErrUnsupportedElementType = errors.New("typeinfo: unsupported element type")

// tagLength is the fixed width, in bytes, of a Descriptor's on-disk tag.
const tagLength = 3

// Element constrains the element types an on-disk matrix may hold.
type Element interface {
	~float32 | ~float64
}

// Descriptor is an immutable, stateless record pairing an element's
// in-memory byte width with the literal ASCII tag written to an on-disk
// matrix header. Descriptors are cheap to copy and carry no state beyond
// the two fields below.
type Descriptor struct {
	// Size is the element's width in bytes (8 for float64, 4 for float32).
	Size int32
	// Tag is the 3 literal ASCII bytes written at header offset 12; there
	// is no NUL terminator.
	Tag [tagLength]byte
}

// String renders the tag as a plain string, e.g. "f64".
func (d Descriptor) String() string {
	return string(d.Tag[:])
}

// Of returns the Descriptor for element type T, or
// ErrUnsupportedElementType if T has no defined (size, tag) pair.
//
// Stage 1 (Dispatch): match T against the defined variants by probing a
// zero value of T against each supported underlying kind.
// Stage 2 (Finalize): return the matching Descriptor, or the sentinel
// error wrapped with the offending type's name.
func Of[T Element]() (Descriptor, error) {
	var zero T
	switch any(zero).(type) {
	case float64:
		return Descriptor{Size: 8, Tag: [tagLength]byte{'f', '6', '4'}}, nil
	case float32:
		return Descriptor{Size: 4, Tag: [tagLength]byte{'f', '3', '2'}}, nil
	default:
		return Descriptor{}, fmt.Errorf("typeinfo.Of[%T]: %w", zero, ErrUnsupportedElementType)
	}
}

// MustOf is Of, panicking on error. Intended for package-level var
// initializers where T is a compile-time constant and failure is a
// programmer error, not a runtime condition.
func MustOf[T Element]() Descriptor {
	d, err := Of[T]()
	if err != nil {
		panic(err)
	}
	return d
}

// Equal reports whether two descriptors describe the same on-disk
// representation (same size and tag).
func Equal(a, b Descriptor) bool {
	return a.Size == b.Size && a.Tag == b.Tag
}
