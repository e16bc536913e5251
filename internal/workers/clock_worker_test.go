package workers

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alimgiray/tzroster/internal/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingTicker records every tick it receives
type countingTicker struct {
	mu    sync.Mutex
	ticks []time.Time
}

func (c *countingTicker) Tick(now time.Time) {
	c.mu.Lock()
	c.ticks = append(c.ticks, now)
	c.mu.Unlock()
}

func (c *countingTicker) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.ticks)
}

const testInterval = 5 * time.Millisecond

func TestClockWorkerStartsStopped(t *testing.T) {
	w := NewClockWorker("clock-1", &countingTicker{}, nil, testInterval)

	assert.Equal(t, StateStopped, w.State())
	assert.False(t, w.IsRunning())
	assert.Equal(t, "clock-1", w.GetWorkerID())
}

func TestClockWorkerDefaultInterval(t *testing.T) {
	w := NewClockWorker("clock-1", &countingTicker{}, nil, 0)
	assert.Equal(t, DefaultTickInterval, w.Interval())
}

func TestClockWorkerTicksUntilStopped(t *testing.T) {
	ticker := &countingTicker{}
	w := NewClockWorker("clock-1", ticker, nil, testInterval)

	require.NoError(t, w.Start(context.Background()))
	assert.True(t, w.IsRunning())
	assert.Eventually(t, func() bool { return ticker.count() >= 3 }, time.Second, time.Millisecond)

	require.NoError(t, w.Stop())
	assert.Equal(t, StateStopped, w.State())

	stopped := ticker.count()
	time.Sleep(10 * testInterval)
	assert.Equal(t, stopped, ticker.count(), "no ticks after Stop")
}

func TestClockWorkerTickUsesInjectedClock(t *testing.T) {
	instant := time.Date(2024, 1, 15, 20, 30, 0, 0, time.UTC)
	ticker := &countingTicker{}
	w := NewClockWorker("clock-1", ticker, clock.NewFixed(instant), testInterval)

	w.Tick()

	require.Equal(t, 1, ticker.count())
	assert.Equal(t, instant, ticker.ticks[0])
}

func TestClockWorkerDoubleStartKeepsSingleTimer(t *testing.T) {
	ticker := &countingTicker{}
	w := NewClockWorker("clock-1", ticker, nil, testInterval)

	require.NoError(t, w.Start(context.Background()))
	require.NoError(t, w.Start(context.Background()))
	assert.Eventually(t, func() bool { return ticker.count() >= 2 }, time.Second, time.Millisecond)

	// a leaked second loop would keep ticking after this single Stop
	require.NoError(t, w.Stop())
	stopped := ticker.count()
	time.Sleep(10 * testInterval)
	assert.Equal(t, stopped, ticker.count())
}

func TestClockWorkerStopIsIdempotent(t *testing.T) {
	w := NewClockWorker("clock-1", &countingTicker{}, nil, testInterval)

	assert.NoError(t, w.Stop())
	require.NoError(t, w.Start(context.Background()))
	assert.NoError(t, w.Stop())
	assert.NoError(t, w.Stop())
	assert.False(t, w.IsRunning())
}

func TestClockWorkerRestartCycles(t *testing.T) {
	ticker := &countingTicker{}
	w := NewClockWorker("clock-1", ticker, nil, testInterval)

	for i := 0; i < 5; i++ {
		require.NoError(t, w.Start(context.Background()))
		assert.True(t, w.IsRunning())
		require.NoError(t, w.Stop())
		assert.False(t, w.IsRunning())
	}

	stopped := ticker.count()
	assert.GreaterOrEqual(t, stopped, 5, "every start ticks immediately")
	time.Sleep(10 * testInterval)
	assert.Equal(t, stopped, ticker.count())
}

func TestClockWorkerContextCancellationStops(t *testing.T) {
	ticker := &countingTicker{}
	w := NewClockWorker("clock-1", ticker, nil, testInterval)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, w.Start(ctx))
	cancel()

	assert.Eventually(t, func() bool { return !w.IsRunning() }, time.Second, time.Millisecond)

	// can be started again after the context ended it
	require.NoError(t, w.Start(context.Background()))
	assert.True(t, w.IsRunning())
	require.NoError(t, w.Stop())
}

func TestClockWorkerRestartRightAfterContextCancel(t *testing.T) {
	for i := 0; i < 200; i++ {
		ticker := &countingTicker{}
		w := NewClockWorker("clock-1", ticker, nil, testInterval)

		ctx, cancel := context.WithCancel(context.Background())
		require.NoError(t, w.Start(ctx))
		cancel()
		assert.False(t, w.IsRunning(), "cancelled worker reports stopped")

		require.NoError(t, w.Start(context.Background()))
		time.Sleep(time.Millisecond)
		require.True(t, w.IsRunning(), "restart %d was dropped", i)

		before := ticker.count()
		assert.Eventually(t, func() bool { return ticker.count() > before }, time.Second, time.Millisecond)
		require.NoError(t, w.Stop())
	}
}
