package models

import "time"

// StatusKind optionally tags a status with its meaning. Empty means the kind
// is inferred from the flags and the display name.
type StatusKind string

const (
	StatusKindNone      StatusKind = ""
	StatusKindScheduled StatusKind = "scheduled"
	StatusKindBillable  StatusKind = "billable"
	StatusKindCancelled StatusKind = "cancelled"
	StatusKindNoShow    StatusKind = "no_show"
	StatusKindCustom    StatusKind = "custom"
)

type AppStatus struct {
	ID      string `gorm:"primaryKey;size:36" json:"id"`
	OwnerID string `gorm:"size:128;index;not null" json:"-"`

	Name       string     `gorm:"size:50;not null" json:"name"`
	Color      string     `gorm:"size:20" json:"color"`
	IsBillable bool       `json:"is_billable"`
	IsDefault  bool       `json:"is_default"`
	Kind       StatusKind `gorm:"size:20" json:"kind,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *AppStatus) GetID() string        { return s.ID }
func (s *AppStatus) SetID(id string)      { s.ID = id }
func (s *AppStatus) SetOwnerID(id string) { s.OwnerID = id }

func (s *AppStatus) GetCreatedAt() time.Time { return s.CreatedAt }

func (s *AppStatus) Stamp(created, now time.Time) {
	if created.IsZero() {
		created = now
	}
	s.CreatedAt = created
	s.UpdatedAt = now
}
