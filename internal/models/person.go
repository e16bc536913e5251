package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Person is one tracked entry of the roster
type Person struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Zone        string `json:"zone"`
	CurrentTime string `json:"currentTime"`
}

// NewPerson creates a new Person with a time-ordered UUID
func NewPerson(name, zone string) *Person {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return &Person{
		ID:   id.String(),
		Name: name,
		Zone: zone,
	}
}

// IsValid reports whether the person may be persisted: a non-empty name and a catalog zone
func (p *Person) IsValid() bool {
	return p != nil && p.ID != "" && p.Name != "" && IsSupportedZone(p.Zone)
}

// Clone returns a copy that shares nothing with p
func (p *Person) Clone() *Person {
	c := *p
	return &c
}

// UnmarshalJSON accepts numeric ids, as written by earlier millisecond-timestamp records
func (p *Person) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID          json.RawMessage `json:"id"`
		Name        string          `json:"name"`
		Zone        string          `json:"zone"`
		CurrentTime string          `json:"currentTime"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	id := bytes.TrimSpace(raw.ID)
	switch {
	case len(id) == 0 || string(id) == "null":
		p.ID = ""
	case id[0] == '"':
		if err := json.Unmarshal(id, &p.ID); err != nil {
			return err
		}
	default:
		var n json.Number
		if err := json.Unmarshal(id, &n); err != nil {
			return err
		}
		p.ID = normalizeNumericID(n)
	}

	p.Name = raw.Name
	p.Zone = raw.Zone
	p.CurrentTime = raw.CurrentTime
	return nil
}

// normalizeNumericID renders integral numbers in plain integer form so 1.718e12 and
// 1718000000000 name the same person
func normalizeNumericID(n json.Number) string {
	if i, err := n.Int64(); err == nil {
		return strconv.FormatInt(i, 10)
	}
	if f, err := n.Float64(); err == nil && f == math.Trunc(f) && math.Abs(f) < math.MaxInt64 {
		return strconv.FormatInt(int64(f), 10)
	}
	return n.String()
}

// PersonRequest is the payload for adding or editing a person
type PersonRequest struct {
	Name string `json:"name" form:"name"`
	Zone string `json:"zone" form:"zone"`
}

// Validate validates the person request
func (r *PersonRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrPersonNameRequired
	}
	if r.Zone == "" {
		return ErrZoneRequired
	}
	if !IsSupportedZone(r.Zone) {
		return &ValidationError{Field: "zone", Message: "Unsupported time zone: " + r.Zone}
	}
	return nil
}

// ReorderRequest is the payload of a drag-and-drop reorder
type ReorderRequest struct {
	SourceID string `json:"sourceId" binding:"required"`
	TargetID string `json:"targetId" binding:"required"`
}
