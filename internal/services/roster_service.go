package services

import (
	"strings"
	"sync"
	"time"

	"github.com/alimgiray/tzroster/internal/models"
	"github.com/alimgiray/tzroster/pkg/logger"
	"github.com/sirupsen/logrus"
)

// RosterStorage is the durable home of the roster
type RosterStorage interface {
	Load() ([]*models.Person, error)
	Save(people []*models.Person) error
}

// RosterService owns the ordered list of tracked people. Every mutation is written
// through to storage before the lock is released, so readers never see unsaved state.
// Rejected input (empty fields, unknown zone or id) is a silent no-op reported only
// through the boolean result.
type RosterService struct {
	mu           sync.RWMutex
	storage      RosterStorage
	clockService *ClockService
	people       []*models.Person
}

func NewRosterService(storage RosterStorage, clockService *ClockService) *RosterService {
	return &RosterService{
		storage:      storage,
		clockService: clockService,
		people:       []*models.Person{},
	}
}

// Load replaces the in-memory roster with the persisted one. It never leaves the
// service unusable: on a read error the roster starts empty and the error is returned
// for logging only.
func (s *RosterService) Load() error {
	loaded, err := s.storage.Load()
	if err != nil {
		logger.WithError(err).Warn("Failed to load roster, starting empty")
		loaded = nil
	}

	now := s.clockService.Now()
	seen := make(map[string]bool, len(loaded))
	people := make([]*models.Person, 0, len(loaded))
	for _, person := range loaded {
		if !person.IsValid() || seen[person.ID] {
			logger.WithField("person", person).Warn("Skipping invalid roster entry")
			continue
		}
		seen[person.ID] = true
		person.CurrentTime = s.clockService.Format(now, person.Zone)
		people = append(people, person)
	}

	s.mu.Lock()
	s.people = people
	s.mu.Unlock()

	logger.WithField("count", len(people)).Info("Roster loaded")
	return err
}

// People returns a copy of the roster in display order
func (s *RosterService) People() []*models.Person {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Person, len(s.people))
	for i, person := range s.people {
		out[i] = person.Clone()
	}
	return out
}

// Get returns a copy of the person with id
func (s *RosterService) Get(id string) (*models.Person, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.people[i].Clone(), true
	}
	return nil, false
}

// Add appends a new person. It returns false without changing anything when name
// is blank or zone is not in the catalog.
func (s *RosterService) Add(name, zone string) (*models.Person, bool) {
	name = strings.TrimSpace(name)
	if name == "" || !models.IsSupportedZone(zone) {
		return nil, false
	}

	person := models.NewPerson(name, zone)
	person.CurrentTime = s.clockService.CurrentTime(zone)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.people = append(s.people, person)
	s.persist()

	logger.WithFields(logrus.Fields{"person_id": person.ID, "zone": zone}).Info("Person added")
	return person.Clone(), true
}

// Edit replaces name and zone of the person with id, keeping its id and position
func (s *RosterService) Edit(id, name, zone string) (*models.Person, bool) {
	name = strings.TrimSpace(name)
	if name == "" || !models.IsSupportedZone(zone) {
		return nil, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, false
	}

	person := s.people[i]
	person.Name = name
	person.Zone = zone
	person.CurrentTime = s.clockService.CurrentTime(zone)
	s.persist()

	logger.WithFields(logrus.Fields{"person_id": id, "zone": zone}).Info("Person updated")
	return person.Clone(), true
}

// Delete removes the person with id
func (s *RosterService) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}

	people := make([]*models.Person, 0, len(s.people)-1)
	people = append(people, s.people[:i]...)
	people = append(people, s.people[i+1:]...)
	s.people = people
	s.persist()

	logger.WithField("person_id", id).Info("Person deleted")
	return true
}

// Reorder moves sourceID to the index targetID currently occupies, shifting the
// entries in between by one.
func (s *RosterService) Reorder(sourceID, targetID string) bool {
	if sourceID == targetID {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	from, to := s.indexOf(sourceID), s.indexOf(targetID)
	if from < 0 || to < 0 {
		return false
	}

	s.people = moveEntry(s.people, from, to)
	s.persist()

	logger.WithFields(logrus.Fields{"source_id": sourceID, "target_id": targetID}).Debug("Roster reordered")
	return true
}

// Tick recomputes the display time of every entry at now. Nothing is persisted.
func (s *RosterService) Tick(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, person := range s.people {
		person.CurrentTime = s.clockService.Format(now, person.Zone)
	}
}

// Len returns the number of tracked people
func (s *RosterService) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.people)
}

func (s *RosterService) indexOf(id string) int {
	for i, person := range s.people {
		if person.ID == id {
			return i
		}
	}
	return -1
}

// persist writes the whole roster; callers hold s.mu. Failures are logged and not retried.
func (s *RosterService) persist() {
	if err := s.storage.Save(s.people); err != nil {
		logger.WithError(err).WithField("count", len(s.people)).Error("Failed to persist roster")
	}
}

// moveEntry returns a new slice with the element at from moved to index to
func moveEntry(people []*models.Person, from, to int) []*models.Person {
	out := make([]*models.Person, 0, len(people))
	moved := people[from]
	for i, person := range people {
		if i == from {
			continue
		}
		out = append(out, person)
	}
	out = append(out[:to], append([]*models.Person{moved}, out[to:]...)...)
	return out
}
