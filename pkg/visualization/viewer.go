// Package visualization extracts 2D views from filtered volumes and saves
// them as images for inspection. The engine itself never does I/O; this
// package is caller-side tooling.
package visualization

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"math"
	"os"
	"path/filepath"

	"voxelfilter3d/pkg/voxel"
)

// Viewer extracts orthogonal 2D slices from one (t, c) sub-volume of a
// filtered 5D volume.
type Viewer struct {
	// vol is the volume being viewed
	vol *voxel.Volume

	// t and c select the time point and channel to view
	t, c int

	// lo and hi are the intensity bounds used to normalize samples into
	// the 16-bit grayscale range
	lo, hi float64
}

// NewViewer creates a viewer over the (t, c) sub-volume of vol. The
// intensity range of that sub-volume is scanned once so that every
// extracted slice is normalized consistently.
func NewViewer(vol *voxel.Volume, t, c int) (*Viewer, error) {
	shape := vol.Shape()
	if t < 0 || t >= shape.T {
		return nil, fmt.Errorf("time point %d out of range [0,%d)", t, shape.T)
	}
	if c < 0 || c >= shape.C {
		return nil, fmt.Errorf("channel %d out of range [0,%d)", c, shape.C)
	}

	v := &Viewer{vol: vol, t: t, c: c, lo: math.Inf(1), hi: math.Inf(-1)}
	for z := 0; z < shape.Z; z++ {
		plane := vol.Plane(t, z, c)
		for i := 0; i < shape.PlaneLen(); i++ {
			val := voxel.Get(plane, i)
			if val < v.lo {
				v.lo = val
			}
			if val > v.hi {
				v.hi = val
			}
		}
	}
	if v.hi <= v.lo {
		// Flat sub-volume; everything maps to black.
		v.hi = v.lo + 1
	}
	return v, nil
}

// gray converts a sample value to 16-bit grayscale using the viewer's
// normalization range.
func (v *Viewer) gray(val float64) color.Gray16 {
	scaled := (val - v.lo) / (v.hi - v.lo) * 65535
	return color.Gray16{Y: uint16(math.Max(0, math.Min(65535, scaled)))}
}

// ExtractSlice extracts a 2D slice from the sub-volume along the specified
// axis at the given position.
func (v *Viewer) ExtractSlice(axis string, position int) (image.Image, error) {
	if position < 0 {
		return nil, fmt.Errorf("position must be non-negative")
	}

	shape := v.vol.Shape()
	var img *image.Gray16

	switch axis {
	case "x", "X":
		// Extract slice along the YZ plane
		if position >= shape.X {
			return nil, fmt.Errorf("position %d exceeds width %d", position, shape.X)
		}

		img = image.NewGray16(image.Rect(0, 0, shape.Z, shape.Y))
		for y := 0; y < shape.Y; y++ {
			for z := 0; z < shape.Z; z++ {
				img.SetGray16(z, y, v.gray(v.vol.At(position, y, z, v.t, v.c)))
			}
		}

	case "y", "Y":
		// Extract slice along the XZ plane
		if position >= shape.Y {
			return nil, fmt.Errorf("position %d exceeds height %d", position, shape.Y)
		}

		img = image.NewGray16(image.Rect(0, 0, shape.X, shape.Z))
		for z := 0; z < shape.Z; z++ {
			for x := 0; x < shape.X; x++ {
				img.SetGray16(x, z, v.gray(v.vol.At(x, position, z, v.t, v.c)))
			}
		}

	case "z", "Z":
		// Extract slice along the XY plane
		if position >= shape.Z {
			return nil, fmt.Errorf("position %d exceeds depth %d", position, shape.Z)
		}

		img = image.NewGray16(image.Rect(0, 0, shape.X, shape.Y))
		for y := 0; y < shape.Y; y++ {
			for x := 0; x < shape.X; x++ {
				img.SetGray16(x, y, v.gray(v.vol.At(x, y, position, v.t, v.c)))
			}
		}

	default:
		return nil, fmt.Errorf("invalid axis: %s (must be x, y, or z)", axis)
	}

	return img, nil
}

// SaveSlice saves an extracted slice as a JPEG image.
func (v *Viewer) SaveSlice(img image.Image, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return jpeg.Encode(file, img, &jpeg.Options{Quality: 90})
}

// SaveSliceSequence extracts and saves a sequence of slices along the
// specified axis into outputDir.
func (v *Viewer) SaveSliceSequence(axis string, outputDir string) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return err
	}

	shape := v.vol.Shape()
	var maxPos int
	switch axis {
	case "x", "X":
		maxPos = shape.X
	case "y", "Y":
		maxPos = shape.Y
	case "z", "Z":
		maxPos = shape.Z
	default:
		return fmt.Errorf("invalid axis: %s (must be x, y, or z)", axis)
	}

	for pos := 0; pos < maxPos; pos++ {
		img, err := v.ExtractSlice(axis, pos)
		if err != nil {
			return err
		}

		filename := filepath.Join(outputDir, fmt.Sprintf("slice_%s_%03d.jpg", axis, pos))
		if err := v.SaveSlice(img, filename); err != nil {
			return err
		}
	}

	return nil
}
