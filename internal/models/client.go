package models

import (
	"slices"
	"time"

	"gorm.io/datatypes"
)

// Client of the clinic. FinishedServiceIDs lists treatments the client has
// completed for good; recurrence tracking is suppressed for them.
type Client struct {
	ID      string `gorm:"primaryKey;size:36" json:"id"`
	OwnerID string `gorm:"size:128;index;not null" json:"-"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:20" json:"phone"`
	Email string `gorm:"size:100" json:"email" binding:"omitempty,email"`
	Notes string `gorm:"size:255" json:"notes"`

	DiscountPercentage float64                     `gorm:"default:0" json:"discount_percentage"`
	FinishedServiceIDs datatypes.JSONSlice[string] `json:"finished_service_ids"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Client) GetID() string        { return c.ID }
func (c *Client) SetID(id string)      { c.ID = id }
func (c *Client) SetOwnerID(id string) { c.OwnerID = id }

func (c *Client) GetCreatedAt() time.Time { return c.CreatedAt }

// Stamp sets the timestamps for stores that do not manage them. A zero
// created falls back to now.
func (c *Client) Stamp(created, now time.Time) {
	if created.IsZero() {
		created = now
	}
	c.CreatedAt = created
	c.UpdatedAt = now
}

func (c Client) HasFinished(serviceID string) bool {
	return slices.Contains(c.FinishedServiceIDs, serviceID)
}

// ToggleFinished flips the finished flag for serviceID and reports the new value.
func (c *Client) ToggleFinished(serviceID string) bool {
	if i := slices.Index(c.FinishedServiceIDs, serviceID); i >= 0 {
		c.FinishedServiceIDs = slices.Delete(c.FinishedServiceIDs, i, i+1)
		return false
	}
	c.FinishedServiceIDs = append(c.FinishedServiceIDs, serviceID)
	return true
}
