// Package engine implements the multi-threaded neighborhood filtering pass
// over 5D volumes. For every pixel it gathers a boundary-clamped window
// spanning up to three spatial axes, feeds it to a filter.Strategy, and
// writes the score into a freshly allocated output volume of identical
// shape and element kind.
//
// The pass decomposes each XY plane into one task per scan line and runs
// the tasks on a shared worker pool. Row tasks write disjoint ranges of a
// scratch plane, the input slice cache is read-only, and planes are
// processed strictly one after another, so results are deterministic for
// any worker count.
package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"voxelfilter3d/internal/pool"
	"voxelfilter3d/pkg/filter"
	"voxelfilter3d/pkg/voxel"
)

// ErrInterrupted reports that a pass stopped before completing. The output
// volume returned alongside it is partially populated: every plane finished
// before the interruption is fully written, the interrupted plane contains
// its completed rows, and everything else is at allocation default. Callers
// check for it with errors.Is and decide whether the partial result is
// worth keeping.
var ErrInterrupted = errors.New("engine: filtering pass interrupted")

// Params configures a filtering pass.
type Params struct {
	// Radius holds 1 to 3 per-axis half-window extents (x, y, z). A
	// missing y defaults to x, a missing z to 0. An empty list is a
	// configuration error.
	Radius []int

	// Workers sets the size of a private worker pool for this pass.
	// Zero selects the shared process-wide pool sized to the CPU count.
	// Pinning the size is mainly useful for deterministic tests.
	Workers int

	// Verbose enables progress output on stdout.
	Verbose bool
}

// Pass drives neighborhood filtering passes over volumes.
type Pass struct {
	params *Params

	poolOnce sync.Once
	pool     *pool.Pool
}

// NewPass creates a pass driver with the provided parameters.
func NewPass(params *Params) *Pass {
	return &Pass{params: params}
}

// Run is a convenience wrapper that filters in with the given radius and
// strategy on the shared worker pool.
func Run(ctx context.Context, in *voxel.Volume, radius []int, strategy filter.Strategy) (*voxel.Volume, error) {
	return NewPass(&Params{Radius: radius}).Run(ctx, in, strategy)
}

// workerPool returns the pool used by this pass, creating a private one on
// first use when Params.Workers is set. Radius validation happens before
// any call to this, so a misconfigured pass never touches the pool.
func (p *Pass) workerPool() *pool.Pool {
	p.poolOnce.Do(func() {
		if p.params.Workers > 0 {
			p.pool = pool.New(p.params.Workers)
		} else {
			p.pool = pool.Default()
		}
	})
	return p.pool
}

// Run executes one filtering pass and returns the output volume. The input
// volume is only ever read. On cancellation of ctx, or on a row task
// failure, Run stops scheduling new rows and returns the partial output
// together with ErrInterrupted; see the error's documentation for exactly
// which parts of the output are valid.
func (p *Pass) Run(ctx context.Context, in *voxel.Volume, strategy filter.Strategy) (*voxel.Volume, error) {
	radius, err := NewRadius(p.params.Radius)
	if err != nil {
		return nil, err
	}
	if strategy == nil {
		return nil, fmt.Errorf("engine: no filter strategy provided")
	}
	if !in.Kind().Valid() {
		return nil, fmt.Errorf("engine: unsupported element kind: %v", in.Kind())
	}

	out, err := voxel.NewLike(in)
	if err != nil {
		return nil, fmt.Errorf("engine: failed to allocate output volume: %v", err)
	}

	shape := in.Shape()
	wp := p.workerPool()

	// The scratch plane is shared by all row tasks of one plane and
	// re-filled for the next, which is why planes are never pipelined.
	scratch := make([]float64, shape.PlaneLen())
	done := make([]bool, shape.Y)

	if p.params.Verbose {
		fmt.Printf("Filtering %v volume %v with %s (radius %d,%d,%d) on %d workers\n",
			in.Kind(), shape, strategy.Name(), radius.X, radius.Y, radius.Z, wp.Workers())
	}

	interrupted := false
	planesDone := 0
	totalPlanes := shape.Planes()

	for t := 0; t < shape.T && !interrupted; t++ {
		for c := 0; c < shape.C && !interrupted; c++ {
			// Build the slice cache for this channel and time point:
			// raw input plane buffers for every z, shared read-only
			// across all row tasks.
			cache := make([]any, shape.Z)
			for z := range cache {
				cache[z] = in.Plane(t, z, c)
			}
			ext := &extractor{shape: shape, radius: radius, cache: cache}

			for z := 0; z < shape.Z; z++ {
				for i := range done {
					done[i] = false
				}

				var failed atomic.Bool
				var wg sync.WaitGroup
				for y := 0; y < shape.Y; y++ {
					if ctx.Err() != nil {
						interrupted = true
						break
					}
					y := y
					wg.Add(1)
					wp.Submit(func() {
						defer wg.Done()
						defer func() {
							if r := recover(); r != nil {
								failed.Store(true)
							}
						}()
						ext.filterRow(z, y, strategy, scratch)
						done[y] = true
					})
				}

				// Join barrier: rows already submitted always run to
				// completion, even when the pass is being cancelled.
				wg.Wait()

				if failed.Load() || ctx.Err() != nil {
					interrupted = true
				}

				// Commit whatever the scratch plane holds, interrupted
				// or not. Completed work is never silently dropped.
				outPlane := out.Plane(t, z, c)
				for y := 0; y < shape.Y; y++ {
					if !done[y] {
						continue
					}
					base := y * shape.X
					for x := 0; x < shape.X; x++ {
						voxel.Set(outPlane, base+x, scratch[base+x])
					}
				}

				if interrupted {
					break
				}

				planesDone++
				if p.params.Verbose {
					progress := float64(planesDone) / float64(totalPlanes) * 100
					fmt.Printf("\rFiltering planes: %.1f%% complete", progress)
				}
			}
		}
	}

	if p.params.Verbose {
		fmt.Println()
	}

	if interrupted {
		return out, ErrInterrupted
	}
	return out, nil
}
