package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedClock(t *testing.T) {
	start := time.Date(2024, 1, 15, 20, 30, 0, 0, time.UTC)
	c := NewFixed(start)
	assert.Equal(t, start, c.Now())

	later := start.Add(time.Minute)
	c.Set(later)
	assert.Equal(t, later, c.Now())
}

func TestSystemClockAdvances(t *testing.T) {
	c := NewSystem()
	before := time.Now()
	assert.False(t, c.Now().Before(before))
}
