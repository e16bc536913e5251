package services

import (
	"errors"
	"sync"
	"time"
	_ "time/tzdata"

	"github.com/alimgiray/tzroster/internal/clock"
	"github.com/alimgiray/tzroster/pkg/logger"
)

const (
	// TimePlaceholder is shown for an entry whose zone cannot be converted
	TimePlaceholder = "--:--"

	// 12-hour clock, two-digit hour and minute
	displayLayout = "03:04 PM"
)

var errNotIANAZone = errors.New("not an IANA time zone")

type zoneLookup struct {
	loc *time.Location
	err error
}

// ClockService renders instants in a person's time zone
type ClockService struct {
	clock     clock.Clock
	locations sync.Map // zone -> zoneLookup
}

func NewClockService(c clock.Clock) *ClockService {
	if c == nil {
		c = clock.NewSystem()
	}
	return &ClockService{clock: c}
}

// Now returns the current instant from the injected clock
func (s *ClockService) Now() time.Time {
	return s.clock.Now()
}

// CurrentTime formats the current instant for zone
func (s *ClockService) CurrentTime(zone string) string {
	return s.Format(s.clock.Now(), zone)
}

// Format renders now in zone, or TimePlaceholder when the zone cannot be loaded
func (s *ClockService) Format(now time.Time, zone string) string {
	loc, err := s.location(zone)
	if err != nil {
		return TimePlaceholder
	}
	return now.In(loc).Format(displayLayout)
}

// location loads and caches zone. Failures are cached too so a bad zone is logged once.
func (s *ClockService) location(zone string) (*time.Location, error) {
	if cached, ok := s.locations.Load(zone); ok {
		lookup := cached.(zoneLookup)
		return lookup.loc, lookup.err
	}

	var lookup zoneLookup
	if zone == "" || zone == "Local" {
		lookup.err = errNotIANAZone
	} else {
		lookup.loc, lookup.err = time.LoadLocation(zone)
	}
	if lookup.err != nil {
		logger.WithError(lookup.err).WithField("zone", zone).Warn("Cannot convert time zone, showing placeholder")
	}

	s.locations.Store(zone, lookup)
	return lookup.loc, lookup.err
}
