package main

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"math"
	"os"

	"voxelfilter3d/pkg/voxel"
)

// loadRawVolume reads a volume from a headerless little-endian sample file.
// Samples are expected plane by plane in T, Z, C order, row-major within a
// plane, exactly as saveRawVolume writes them.
func loadRawVolume(path string, shape voxel.Shape, kind voxel.Kind) (*voxel.Volume, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	vol, err := voxel.New(shape, kind)
	if err != nil {
		return nil, err
	}

	r := bufio.NewReader(file)
	for t := 0; t < shape.T; t++ {
		for z := 0; z < shape.Z; z++ {
			for c := 0; c < shape.C; c++ {
				if err := binary.Read(r, binary.LittleEndian, vol.Plane(t, z, c)); err != nil {
					return nil, fmt.Errorf("failed to read plane (t=%d z=%d c=%d): %v", t, z, c, err)
				}
			}
		}
	}
	return vol, nil
}

// saveRawVolume writes a volume as headerless little-endian samples in
// T, Z, C plane order.
func saveRawVolume(path string, vol *voxel.Volume) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	shape := vol.Shape()
	for t := 0; t < shape.T; t++ {
		for z := 0; z < shape.Z; z++ {
			for c := 0; c < shape.C; c++ {
				if err := binary.Write(w, binary.LittleEndian, vol.Plane(t, z, c)); err != nil {
					return fmt.Errorf("failed to write plane (t=%d z=%d c=%d): %v", t, z, c, err)
				}
			}
		}
	}
	return w.Flush()
}

// generateTestVolume builds a synthetic volume with a bright sphere in the
// middle over a diagonal gradient background, a pattern with obvious
// structure in every filtered output.
func generateTestVolume(shape voxel.Shape, kind voxel.Kind) (*voxel.Volume, error) {
	vol, err := voxel.New(shape, kind)
	if err != nil {
		return nil, err
	}

	cx := float64(shape.X) / 2
	cy := float64(shape.Y) / 2
	cz := float64(shape.Z) / 2
	radius := math.Min(cx, cy) / 2

	for t := 0; t < shape.T; t++ {
		for c := 0; c < shape.C; c++ {
			for z := 0; z < shape.Z; z++ {
				for y := 0; y < shape.Y; y++ {
					for x := 0; x < shape.X; x++ {
						dx := float64(x) - cx
						dy := float64(y) - cy
						dz := float64(z) - cz
						dist := math.Sqrt(dx*dx + dy*dy + dz*dz)

						value := float64(x+y) / float64(shape.X+shape.Y) * 80
						if dist < radius {
							value = 200 - dist*4
						}
						vol.SetAt(x, y, z, t, c, value)
					}
				}
			}
		}
	}
	return vol, nil
}
