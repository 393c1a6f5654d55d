package appointment

import (
	"github.com/BruksfildServices01/clinic-agenda/internal/httperr"
	"github.com/BruksfildServices01/clinic-agenda/internal/models"
	"github.com/BruksfildServices01/clinic-agenda/internal/timezone"
)

// Validate checks the appointment form before anything is persisted.
func Validate(ap *models.Appointment) error {
	if ap.ClientID == "" {
		return httperr.ErrBusiness("missing_client")
	}
	if ap.ServiceID == "" {
		return httperr.ErrBusiness("missing_service")
	}
	if ap.StatusID == "" {
		return httperr.ErrBusiness("missing_status")
	}
	if _, err := timezone.ParseDate(ap.Date); err != nil {
		return httperr.ErrBusiness("invalid_date_or_time")
	}
	if _, err := timezone.ParseClock(ap.StartTime); err != nil {
		return httperr.ErrBusiness("invalid_date_or_time")
	}
	if ap.DurationMinutes <= 0 {
		return httperr.ErrBusiness("invalid_duration")
	}
	if ap.DiscountPercentage < 0 || ap.DiscountPercentage > 100 {
		return httperr.ErrBusiness("invalid_discount")
	}
	if ap.BasePrice < 0 {
		return httperr.ErrBusiness("invalid_price")
	}
	return nil
}

// ValidateDiscount is shared by the client form.
func ValidateDiscount(pct float64) error {
	if pct < 0 || pct > 100 {
		return httperr.ErrBusiness("invalid_discount")
	}
	return nil
}
