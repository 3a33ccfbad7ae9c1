package voxel

import (
	"fmt"
	"math"
)

// Alloc allocates a zeroed plane buffer of n samples for the given kind.
// The returned value is a typed slice ([]uint8, []int16, []float32, ...);
// callers pass it back to Get and Set without inspecting the concrete type.
func Alloc(kind Kind, n int) any {
	switch kind {
	case Uint8:
		return make([]uint8, n)
	case Int8:
		return make([]int8, n)
	case Uint16:
		return make([]uint16, n)
	case Int16:
		return make([]int16, n)
	case Uint32:
		return make([]uint32, n)
	case Int32:
		return make([]int32, n)
	case Float32:
		return make([]float32, n)
	case Float64:
		return make([]float64, n)
	}
	panic(fmt.Sprintf("voxel: cannot allocate buffer for %v", kind))
}

// BufferLen returns the number of samples held by a plane buffer.
func BufferLen(buf any) int {
	switch b := buf.(type) {
	case []uint8:
		return len(b)
	case []int8:
		return len(b)
	case []uint16:
		return len(b)
	case []int16:
		return len(b)
	case []uint32:
		return len(b)
	case []int32:
		return len(b)
	case []float32:
		return len(b)
	case []float64:
		return len(b)
	}
	panic(fmt.Sprintf("voxel: unsupported buffer type %T", buf))
}

// Get reads the sample at index i from a plane buffer, widening it to
// float64. Index bounds are the caller's responsibility: every caller in
// the engine computes indices from validated shape bounds.
func Get(buf any, i int) float64 {
	switch b := buf.(type) {
	case []uint8:
		return float64(b[i])
	case []int8:
		return float64(b[i])
	case []uint16:
		return float64(b[i])
	case []int16:
		return float64(b[i])
	case []uint32:
		return float64(b[i])
	case []int32:
		return float64(b[i])
	case []float32:
		return float64(b[i])
	case []float64:
		return b[i]
	}
	panic(fmt.Sprintf("voxel: unsupported buffer type %T", buf))
}

// Set writes v into the plane buffer at index i, narrowing to the buffer's
// element type. Integer targets receive the nearest representable value:
// v is rounded to nearest and clamped to the type's range, matching how
// the display path converts intensities to Gray16.
func Set(buf any, i int, v float64) {
	switch b := buf.(type) {
	case []uint8:
		b[i] = uint8(clampRound(v, 0, math.MaxUint8))
	case []int8:
		b[i] = int8(clampRound(v, math.MinInt8, math.MaxInt8))
	case []uint16:
		b[i] = uint16(clampRound(v, 0, math.MaxUint16))
	case []int16:
		b[i] = int16(clampRound(v, math.MinInt16, math.MaxInt16))
	case []uint32:
		b[i] = uint32(clampRound(v, 0, math.MaxUint32))
	case []int32:
		b[i] = int32(clampRound(v, math.MinInt32, math.MaxInt32))
	case []float32:
		b[i] = float32(v)
	case []float64:
		b[i] = v
	default:
		panic(fmt.Sprintf("voxel: unsupported buffer type %T", buf))
	}
}

// clampRound rounds v to the nearest integer and clamps it to [lo, hi].
func clampRound(v, lo, hi float64) float64 {
	v = math.Round(v)
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
