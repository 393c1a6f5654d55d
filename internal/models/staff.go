package models

import (
	"time"

	"gorm.io/datatypes"
)

type Staff struct {
	ID      string `gorm:"primaryKey;size:36" json:"id"`
	OwnerID string `gorm:"size:128;index;not null" json:"-"`

	Name       string  `gorm:"size:100;not null" json:"name"`
	HourlyRate float64 `json:"hourly_rate"`
	Color      string  `gorm:"size:20" json:"color"`

	// ServiceRates overrides HourlyRate per service id.
	ServiceRates datatypes.JSONType[map[string]float64] `json:"service_rates"`
	Specialties  datatypes.JSONSlice[string]            `json:"specialties"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Staff) GetID() string        { return s.ID }
func (s *Staff) SetID(id string)      { s.ID = id }
func (s *Staff) SetOwnerID(id string) { s.OwnerID = id }

func (s *Staff) GetCreatedAt() time.Time { return s.CreatedAt }

func (s *Staff) Stamp(created, now time.Time) {
	if created.IsZero() {
		created = now
	}
	s.CreatedAt = created
	s.UpdatedAt = now
}

// RateFor returns the effective hourly rate for serviceID.
func (s Staff) RateFor(serviceID string) float64 {
	if rate, ok := s.ServiceRates.Data()[serviceID]; ok {
		return rate
	}
	return s.HourlyRate
}
