package engine

import (
	"voxelfilter3d/pkg/filter"
	"voxelfilter3d/pkg/voxel"
)

// extractor gathers clamped neighborhoods out of one (t, c) slice cache.
// The cache holds the raw input plane buffer for every z of the current
// channel and time point, so symmetric lookups across Z never go back to
// the Volume. The cache is read-only and shared by all row tasks.
type extractor struct {
	shape  voxel.Shape
	radius Radius
	cache  []any
}

// filterRow scores every pixel of one scan line (fixed z and y) and writes
// the results into the row's slot of the shared scratch plane. Each task
// owns a freshly allocated window buffer sized once for the whole line:
// the Y and Z ranges are constant along a line, only the X range varies
// per pixel, so the line-level capacity is always sufficient.
func (e *extractor) filterRow(z, y int, strategy filter.Strategy, out []float64) {
	nx := e.shape.X

	zMin := max(z-e.radius.Z, 0)
	zMax := min(z+e.radius.Z+1, e.shape.Z)
	yMin := max(y-e.radius.Y, 0)
	yMax := min(y+e.radius.Y+1, e.shape.Y)

	window := make([]float64, (2*e.radius.X+1)*(yMax-yMin)*(zMax-zMin))
	center := e.cache[z]
	base := y * nx

	for x := 0; x < nx; x++ {
		xMin := max(x-e.radius.X, 0)
		xMax := min(x+e.radius.X+1, nx)

		// Gather the clamped box in Z, Y, X order. The window is
		// centered on the pixel, so the pixel's own value is always
		// among the populated entries.
		n := 0
		for zz := zMin; zz < zMax; zz++ {
			plane := e.cache[zz]
			for yy := yMin; yy < yMax; yy++ {
				rowBase := yy * nx
				for xx := xMin; xx < xMax; xx++ {
					window[n] = voxel.Get(plane, rowBase+xx)
					n++
				}
			}
		}

		out[base+x] = strategy.Score(voxel.Get(center, base+x), window, n)
	}
}
