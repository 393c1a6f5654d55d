package dto

import "github.com/BruksfildServices01/clinic-agenda/internal/models"

// AppointmentRequest is the body of create and update. Price is never
// accepted; it is derived from base price and discount.
type AppointmentRequest struct {
	ClientID  string `json:"client_id"`
	ServiceID string `json:"service_id"`
	StaffID   string `json:"staff_id"`
	StatusID  string `json:"status_id"`

	Date            string `json:"date"`
	StartTime       string `json:"start_time"`
	DurationMinutes int    `json:"duration_minutes"`

	BasePrice          float64 `json:"base_price"`
	DiscountPercentage float64 `json:"discount_percentage"`

	Notes string `json:"notes"`
}

func (r AppointmentRequest) Model(id string) models.Appointment {
	return models.Appointment{
		ID:                 id,
		ClientID:           r.ClientID,
		ServiceID:          r.ServiceID,
		StaffID:            r.StaffID,
		StatusID:           r.StatusID,
		Date:               r.Date,
		StartTime:          r.StartTime,
		DurationMinutes:    r.DurationMinutes,
		BasePrice:          r.BasePrice,
		DiscountPercentage: r.DiscountPercentage,
		Notes:              r.Notes,
	}
}

type DropRequest struct {
	Date string `json:"date" binding:"required"`
	Hour *int   `json:"hour" binding:"required"`
	Mode string `json:"mode" binding:"required"`
}

type ResizeRequest struct {
	Edge        string  `json:"edge" binding:"required"`
	DeltaPixels float64 `json:"delta_pixels"`
}
