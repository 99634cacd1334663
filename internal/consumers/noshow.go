package consumers

import (
	"context"
	"log/slog"
	"time"
)

type bookingSweeper interface {
	CancelNoShows(ctx context.Context, cutoff time.Time) (int, error)
}

// NoShowJob periodically cancels pending bookings whose check-in date has
// passed without the guest arriving.
type NoShowJob struct {
	bookings bookingSweeper
	grace    time.Duration
	interval time.Duration
	ticker   *time.Ticker
	done     chan bool
}

func NewNoShowJob(bookings bookingSweeper, grace, interval time.Duration) *NoShowJob {
	return &NoShowJob{
		bookings: bookings,
		grace:    grace,
		interval: interval,
		done:     make(chan bool),
	}
}

// Start begins the background sweep loop. Sweeps run synchronously inside
// the loop, so a pass that outlasts the interval delays the next tick
// instead of overlapping it.
func (j *NoShowJob) Start(ctx context.Context) {
	slog.Info("Starting no-show sweep job", "interval", j.interval, "grace", j.grace)

	j.ticker = time.NewTicker(j.interval)

	go func() {
		j.sweep(ctx)

		for {
			select {
			case <-j.ticker.C:
				j.sweep(ctx)
			case <-j.done:
				slog.Info("No-show sweep job stopped")
				return
			}
		}
	}()
}

// Stop gracefully stops the background job
func (j *NoShowJob) Stop() {
	if j.ticker != nil {
		j.ticker.Stop()
	}
	close(j.done)
}

func (j *NoShowJob) sweep(ctx context.Context) {
	cutoff := time.Now().Add(-j.grace)

	cancelled, err := j.bookings.CancelNoShows(ctx, cutoff)
	if err != nil {
		slog.Error("No-show sweep failed", "error", err)
		return
	}

	if cancelled > 0 {
		slog.Info("Cancelled no-show bookings", "count", cancelled, "cutoff", cutoff)
	} else {
		slog.Debug("No no-show bookings found")
	}
}
