package repositories

import (
	"encoding/json"
	"fmt"

	"github.com/alimgiray/tzroster/internal/models"
)

// KeyValueStore is the durable store the roster is written to
type KeyValueStore interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
}

// RosterRepository persists the whole ordered roster as one JSON record
type RosterRepository struct {
	store KeyValueStore
	key   string
}

// NewRosterRepository creates a new RosterRepository writing to key
func NewRosterRepository(store KeyValueStore, key string) *RosterRepository {
	return &RosterRepository{store: store, key: key}
}

// Key returns the record name the roster is stored under
func (r *RosterRepository) Key() string {
	return r.key
}

// Load reads the persisted roster. A missing record yields an empty roster.
func (r *RosterRepository) Load() ([]*models.Person, error) {
	raw, found, err := r.store.Get(r.key)
	if err != nil {
		return []*models.Person{}, err
	}
	if !found || len(raw) == 0 || string(raw) == "null" {
		return []*models.Person{}, nil
	}

	var people []*models.Person
	if err := json.Unmarshal(raw, &people); err != nil {
		return []*models.Person{}, fmt.Errorf("decode %q: %w", r.key, err)
	}
	if people == nil {
		people = []*models.Person{}
	}
	return people, nil
}

// Save writes the full roster in order
func (r *RosterRepository) Save(people []*models.Person) error {
	if people == nil {
		people = []*models.Person{}
	}
	raw, err := json.Marshal(people)
	if err != nil {
		return fmt.Errorf("encode %q: %w", r.key, err)
	}
	return r.store.Set(r.key, raw)
}
