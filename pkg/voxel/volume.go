package voxel

import "fmt"

// Shape holds the extent of a volume along each of its five axes.
type Shape struct {
	// X and Y are the in-plane dimensions of a single slice.
	X, Y int

	// Z is the number of slices per channel and time point.
	Z int

	// T is the number of time points.
	T int

	// C is the number of channels.
	C int
}

// Valid reports whether every extent is at least one voxel.
func (s Shape) Valid() bool {
	return s.X >= 1 && s.Y >= 1 && s.Z >= 1 && s.T >= 1 && s.C >= 1
}

// PlaneLen returns the number of samples in one XY plane.
func (s Shape) PlaneLen() int { return s.X * s.Y }

// Planes returns the total number of XY planes across Z, T and C.
func (s Shape) Planes() int { return s.Z * s.T * s.C }

// Voxels returns the total number of samples in the volume.
func (s Shape) Voxels() int { return s.PlaneLen() * s.Planes() }

func (s Shape) String() string {
	return fmt.Sprintf("%dx%dx%d t=%d c=%d", s.X, s.Y, s.Z, s.T, s.C)
}

// Volume is a 5D grid of scalar samples with a uniform element kind.
// Samples are stored as one buffer per (t, z, c) plane so that a whole
// plane can be handed out or committed in a single operation. Values cross
// the Volume boundary as float64 and are converted to and from the native
// element kind on access.
type Volume struct {
	shape  Shape
	kind   Kind
	planes []any
}

// New creates a volume of the given shape and kind with every plane
// allocated up front and zero-filled. Allocating all planes at creation
// time guarantees that out-of-order or partial writes during a filtering
// pass never target missing storage.
func New(shape Shape, kind Kind) (*Volume, error) {
	if !shape.Valid() {
		return nil, fmt.Errorf("invalid volume shape: %v", shape)
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("unsupported element kind: %v", kind)
	}

	v := &Volume{
		shape:  shape,
		kind:   kind,
		planes: make([]any, shape.Planes()),
	}
	for i := range v.planes {
		v.planes[i] = Alloc(kind, shape.PlaneLen())
	}
	return v, nil
}

// NewLike creates a zero-filled volume with the same shape and element kind
// as src. This is how a filtering pass allocates its output.
func NewLike(src *Volume) (*Volume, error) {
	return New(src.shape, src.kind)
}

// Shape returns the volume's extents.
func (v *Volume) Shape() Shape { return v.shape }

// Kind returns the volume's element kind.
func (v *Volume) Kind() Kind { return v.kind }

// planeIndex maps a (t, z, c) coordinate to the plane storage slot.
func (v *Volume) planeIndex(t, z, c int) int {
	return (t*v.shape.Z+z)*v.shape.C + c
}

// Plane returns the raw buffer of the XY plane at (t, z, c). The buffer is
// shared, not copied; treat it as read-only while a pass is consuming it.
func (v *Volume) Plane(t, z, c int) any {
	return v.planes[v.planeIndex(t, z, c)]
}

// SetPlane commits a raw buffer as the XY plane at (t, z, c). The buffer
// must hold exactly X*Y samples of the volume's element kind.
func (v *Volume) SetPlane(t, z, c int, buf any) error {
	if n := BufferLen(buf); n != v.shape.PlaneLen() {
		return fmt.Errorf("plane buffer has %d samples, want %d", n, v.shape.PlaneLen())
	}
	v.planes[v.planeIndex(t, z, c)] = buf
	return nil
}

// At reads the sample at the given 5D coordinate as float64.
func (v *Volume) At(x, y, z, t, c int) float64 {
	return Get(v.Plane(t, z, c), y*v.shape.X+x)
}

// SetAt writes the sample at the given 5D coordinate, converting from
// float64 to the native element kind.
func (v *Volume) SetAt(x, y, z, t, c int, value float64) {
	Set(v.Plane(t, z, c), y*v.shape.X+x, value)
}
