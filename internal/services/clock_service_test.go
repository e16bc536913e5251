package services

import (
	"testing"
	"time"

	"github.com/alimgiray/tzroster/internal/clock"
	"github.com/stretchr/testify/assert"
)

// 2024-01-15 20:30:00 UTC, winter in the northern hemisphere
var knownInstant = time.Date(2024, 1, 15, 20, 30, 0, 0, time.UTC)

func TestClockServiceFormat(t *testing.T) {
	svc := NewClockService(clock.NewFixed(knownInstant))

	testCases := []struct {
		zone string
		want string
	}{
		{"America/Los_Angeles", "12:30 PM"},
		{"America/New_York", "03:30 PM"},
		{"Europe/London", "08:30 PM"},
		{"Asia/Tokyo", "05:30 AM"},
		{"Pacific/Auckland", "09:30 AM"},
		{"America/Argentina/Buenos_Aires", "05:30 PM"},
	}

	for _, tc := range testCases {
		t.Run(tc.zone, func(t *testing.T) {
			assert.Equal(t, tc.want, svc.Format(knownInstant, tc.zone))
			assert.Equal(t, tc.want, svc.CurrentTime(tc.zone))
		})
	}
}

func TestClockServiceFormatDaylightSaving(t *testing.T) {
	svc := NewClockService(nil)
	summer := time.Date(2024, 7, 1, 16, 5, 0, 0, time.UTC)

	// PDT is UTC-7
	assert.Equal(t, "09:05 AM", svc.Format(summer, "America/Los_Angeles"))
	// BST is UTC+1
	assert.Equal(t, "05:05 PM", svc.Format(summer, "Europe/London"))
}

func TestClockServiceInvalidZone(t *testing.T) {
	svc := NewClockService(clock.NewFixed(knownInstant))

	for _, zone := range []string{"", "Local", "Not/AZone", "../../etc/passwd"} {
		assert.Equal(t, TimePlaceholder, svc.Format(knownInstant, zone), "zone %q", zone)
		// cached failure returns the same placeholder
		assert.Equal(t, TimePlaceholder, svc.Format(knownInstant, zone), "zone %q", zone)
	}
}

func TestClockServiceMidnightAndNoon(t *testing.T) {
	svc := NewClockService(nil)

	assert.Equal(t, "12:00 AM", svc.Format(time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC), "America/Los_Angeles"))
	assert.Equal(t, "12:00 PM", svc.Format(time.Date(2024, 1, 15, 20, 0, 0, 0, time.UTC), "America/Los_Angeles"))
}
