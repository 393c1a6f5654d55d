package models

import "time"

// Appointment is one booking on the calendar. Date and StartTime are civil
// values in the clinic timezone ("2006-01-02", "15:04").
type Appointment struct {
	ID      string `gorm:"primaryKey;size:36" json:"id"`
	OwnerID string `gorm:"size:128;index;not null" json:"-"`

	ClientID  string `gorm:"size:36;index" json:"client_id"`
	ServiceID string `gorm:"size:36;index" json:"service_id"`
	StaffID   string `gorm:"size:36;index" json:"staff_id"`
	StatusID  string `gorm:"size:36" json:"status_id"`

	Date            string `gorm:"size:10;index" json:"date"`
	StartTime       string `gorm:"size:5" json:"start_time"`
	DurationMinutes int    `json:"duration_minutes"`

	BasePrice          float64 `json:"base_price"`
	DiscountPercentage float64 `json:"discount_percentage"`
	Price              float64 `json:"price"`

	Notes string `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Appointment) GetID() string        { return a.ID }
func (a *Appointment) SetID(id string)      { a.ID = id }
func (a *Appointment) SetOwnerID(id string) { a.OwnerID = id }

func (a *Appointment) GetCreatedAt() time.Time { return a.CreatedAt }

func (a *Appointment) Stamp(created, now time.Time) {
	if created.IsZero() {
		created = now
	}
	a.CreatedAt = created
	a.UpdatedAt = now
}

// Hours is the booked duration in hours.
func (a Appointment) Hours() float64 {
	return float64(a.DurationMinutes) / 60
}
