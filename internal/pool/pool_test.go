package pool

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitRunsTasks(t *testing.T) {
	p := New(2)
	require.Equal(t, 2, p.Workers())

	var ran atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		p.Submit(func() {
			defer wg.Done()
			ran.Add(1)
		})
	}
	wg.Wait()

	assert.Equal(t, int64(50), ran.Load())
	assert.Equal(t, uint64(50), p.Submitted())
}

func TestWorkerCountFloor(t *testing.T) {
	p := New(0)
	assert.Equal(t, 1, p.Workers())
}

func TestDefaultIsSingleton(t *testing.T) {
	a := Default()
	b := Default()
	assert.Same(t, a, b)
	assert.GreaterOrEqual(t, a.Workers(), 1)
}

func TestSubmittedCounts(t *testing.T) {
	p := New(1)
	before := p.Submitted()

	var wg sync.WaitGroup
	wg.Add(1)
	p.Submit(func() { wg.Done() })
	wg.Wait()

	assert.Equal(t, before+1, p.Submitted())
}
