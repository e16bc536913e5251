package workers

import (
	"context"
	"time"

	"github.com/alimgiray/tzroster/internal/clock"
	"github.com/alimgiray/tzroster/pkg/logger"
	"github.com/sirupsen/logrus"
)

// DefaultTickInterval is how often display times are refreshed
const DefaultTickInterval = time.Second

// Ticker recomputes derived display times at an instant
type Ticker interface {
	Tick(now time.Time)
}

// ClockWorker keeps every person's current time fresh by ticking the roster on a fixed period
type ClockWorker struct {
	*BaseWorker
	roster   Ticker
	clock    clock.Clock
	interval time.Duration
}

// NewClockWorker creates a new clock worker. A non-positive interval falls back to DefaultTickInterval.
func NewClockWorker(workerID string, roster Ticker, c clock.Clock, interval time.Duration) *ClockWorker {
	if c == nil {
		c = clock.NewSystem()
	}
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &ClockWorker{
		BaseWorker: NewBaseWorker(workerID),
		roster:     roster,
		clock:      c,
		interval:   interval,
	}
}

// Start ticks once immediately and then on every interval until Stop or ctx is done
func (w *ClockWorker) Start(ctx context.Context) error {
	if !w.run(ctx, w.loop) {
		logger.WithField("worker_id", w.WorkerID).Debug("Clock worker already running")
		return nil
	}
	logger.WithFields(logrus.Fields{
		"worker_id": w.WorkerID,
		"interval":  w.interval.String(),
	}).Info("Clock worker started")
	return nil
}

// Tick performs one recomputation pass
func (w *ClockWorker) Tick() {
	w.roster.Tick(w.clock.Now())
}

// Interval returns the tick period
func (w *ClockWorker) Interval() time.Duration {
	return w.interval
}

func (w *ClockWorker) loop(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.Tick()
	for {
		select {
		case <-ctx.Done():
			logger.WithField("worker_id", w.WorkerID).Info("Clock worker stopped")
			return
		case <-ticker.C:
			w.Tick()
		}
	}
}
