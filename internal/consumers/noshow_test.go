package consumers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type blockingSweeper struct {
	calls    atomic.Int32
	inFlight atomic.Int32
	overlap  atomic.Bool
	release  chan struct{}
}

func (s *blockingSweeper) CancelNoShows(ctx context.Context, cutoff time.Time) (int, error) {
	if s.inFlight.Add(1) > 1 {
		s.overlap.Store(true)
	}
	defer s.inFlight.Add(-1)

	s.calls.Add(1)
	<-s.release
	return 0, nil
}

func TestNoShowSweepsNeverOverlap(t *testing.T) {
	sweeper := &blockingSweeper{release: make(chan struct{})}

	job := NewNoShowJob(sweeper, time.Hour, 5*time.Millisecond)
	job.Start(context.Background())

	// Let several intervals elapse while the first sweep is still blocked
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), sweeper.calls.Load(), "ticks during a running sweep must not start another")

	close(sweeper.release)
	time.Sleep(50 * time.Millisecond)
	job.Stop()

	assert.False(t, sweeper.overlap.Load(), "two sweeps ran concurrently")
	assert.GreaterOrEqual(t, sweeper.calls.Load(), int32(2), "sweeping should resume after the slow pass finishes")
}
