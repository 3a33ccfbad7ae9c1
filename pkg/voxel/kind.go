// Package voxel provides the 5D volume data model used by the filtering
// engine. A Volume stores scalar samples along the X, Y, Z, Time and Channel
// axes with a uniform numeric element kind, and exchanges values with the
// rest of the system as float64 regardless of how they are stored.
package voxel

import "fmt"

// Kind identifies the numeric element type of a volume's samples.
type Kind int

const (
	// Uint8 is an unsigned 8-bit integer sample.
	Uint8 Kind = iota

	// Int8 is a signed 8-bit integer sample.
	Int8

	// Uint16 is an unsigned 16-bit integer sample, the most common kind
	// in scientific imaging data.
	Uint16

	// Int16 is a signed 16-bit integer sample.
	Int16

	// Uint32 is an unsigned 32-bit integer sample.
	Uint32

	// Int32 is a signed 32-bit integer sample.
	Int32

	// Float32 is a single-precision floating point sample.
	Float32

	// Float64 is a double-precision floating point sample.
	Float64
)

// kindNames maps each kind to its canonical string form.
var kindNames = map[Kind]string{
	Uint8:   "uint8",
	Int8:    "int8",
	Uint16:  "uint16",
	Int16:   "int16",
	Uint32:  "uint32",
	Int32:   "int32",
	Float32: "float32",
	Float64: "float64",
}

// String returns the canonical name of the kind, e.g. "uint16".
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Valid reports whether k is one of the supported element kinds.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// Bits returns the storage width of the kind in bits.
func (k Kind) Bits() int {
	switch k {
	case Uint8, Int8:
		return 8
	case Uint16, Int16:
		return 16
	case Uint32, Int32, Float32:
		return 32
	case Float64:
		return 64
	}
	return 0
}

// Signed reports whether the kind can represent negative values.
func (k Kind) Signed() bool {
	switch k {
	case Int8, Int16, Int32, Float32, Float64:
		return true
	}
	return false
}

// Float reports whether the kind is a floating point type.
func (k Kind) Float() bool {
	return k == Float32 || k == Float64
}

// KindFromString parses a canonical kind name such as "uint16" or "float32".
func KindFromString(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unsupported element kind: %q", name)
}
