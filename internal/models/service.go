package models

import "time"

// Service is a treatment type. Price and DurationMinutes are defaults copied
// into new appointments. RecurrenceDays == 0 means non-recurring.
type Service struct {
	ID      string `gorm:"primaryKey;size:36" json:"id"`
	OwnerID string `gorm:"size:128;index;not null" json:"-"`

	Name            string  `gorm:"size:100;not null" json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes"`
	RecurrenceDays  int     `gorm:"default:0" json:"recurrence_days"`
	Color           string  `gorm:"size:20" json:"color"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Service) GetID() string        { return s.ID }
func (s *Service) SetID(id string)      { s.ID = id }
func (s *Service) SetOwnerID(id string) { s.OwnerID = id }

func (s *Service) GetCreatedAt() time.Time { return s.CreatedAt }

func (s *Service) Stamp(created, now time.Time) {
	if created.IsZero() {
		created = now
	}
	s.CreatedAt = created
	s.UpdatedAt = now
}
