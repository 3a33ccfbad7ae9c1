package visualization

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voxelfilter3d/pkg/voxel"
)

func testVolume(t *testing.T) *voxel.Volume {
	t.Helper()
	shape := voxel.Shape{X: 6, Y: 4, Z: 3, T: 2, C: 1}
	vol, err := voxel.New(shape, voxel.Uint16)
	require.NoError(t, err)
	for tp := 0; tp < shape.T; tp++ {
		for z := 0; z < shape.Z; z++ {
			for y := 0; y < shape.Y; y++ {
				for x := 0; x < shape.X; x++ {
					vol.SetAt(x, y, z, tp, 0, float64(x+y*6+z*24+tp*100))
				}
			}
		}
	}
	return vol
}

func TestNewViewerValidatesCoordinates(t *testing.T) {
	vol := testVolume(t)

	_, err := NewViewer(vol, 2, 0)
	assert.Error(t, err)

	_, err = NewViewer(vol, 0, 1)
	assert.Error(t, err)

	_, err = NewViewer(vol, 1, 0)
	assert.NoError(t, err)
}

func TestExtractSliceDimensions(t *testing.T) {
	vol := testVolume(t)
	viewer, err := NewViewer(vol, 0, 0)
	require.NoError(t, err)

	testCases := []struct {
		axis          string
		pos           int
		width, height int
	}{
		{"x", 2, 3, 4},
		{"y", 1, 6, 3},
		{"z", 0, 6, 4},
	}

	for _, tc := range testCases {
		t.Run(tc.axis, func(t *testing.T) {
			img, err := viewer.ExtractSlice(tc.axis, tc.pos)
			require.NoError(t, err)
			bounds := img.Bounds()
			assert.Equal(t, tc.width, bounds.Dx())
			assert.Equal(t, tc.height, bounds.Dy())
		})
	}
}

func TestExtractSliceNormalization(t *testing.T) {
	vol := testVolume(t)
	viewer, err := NewViewer(vol, 0, 0)
	require.NoError(t, err)

	// The darkest sample of the sub-volume maps to black, the brightest
	// to white.
	img, err := viewer.ExtractSlice("z", 0)
	require.NoError(t, err)
	assert.Equal(t, uint16(0), img.At(0, 0).(color.Gray16).Y)

	img, err = viewer.ExtractSlice("z", 2)
	require.NoError(t, err)
	assert.Equal(t, uint16(65535), img.At(5, 3).(color.Gray16).Y)
}

func TestExtractSliceRejectsBadRequests(t *testing.T) {
	vol := testVolume(t)
	viewer, err := NewViewer(vol, 0, 0)
	require.NoError(t, err)

	_, err = viewer.ExtractSlice("z", -1)
	assert.Error(t, err)

	_, err = viewer.ExtractSlice("z", 3)
	assert.Error(t, err)

	_, err = viewer.ExtractSlice("w", 0)
	assert.Error(t, err)
}

func TestSaveSliceSequence(t *testing.T) {
	vol := testVolume(t)
	viewer, err := NewViewer(vol, 0, 0)
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "slices")
	require.NoError(t, viewer.SaveSliceSequence("z", dir))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
	assert.Equal(t, "slice_z_000.jpg", entries[0].Name())
}

func TestFlatVolumeDoesNotPanic(t *testing.T) {
	vol, err := voxel.New(voxel.Shape{X: 2, Y: 2, Z: 1, T: 1, C: 1}, voxel.Uint8)
	require.NoError(t, err)

	viewer, err := NewViewer(vol, 0, 0)
	require.NoError(t, err)

	img, err := viewer.ExtractSlice("z", 0)
	require.NoError(t, err)
	assert.Equal(t, uint16(0), img.At(0, 0).(color.Gray16).Y)
}
