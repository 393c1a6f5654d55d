package appointment

import (
	"time"

	"github.com/BruksfildServices01/clinic-agenda/internal/httperr"
	"github.com/BruksfildServices01/clinic-agenda/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// NewDraft prefills an appointment form from the chosen client and service.
// Either may be nil while the form is incomplete.
func NewDraft(client *models.Client, service *models.Service) models.Appointment {
	var ap models.Appointment
	if client != nil {
		ap.ClientID = client.ID
		ap.DiscountPercentage = client.DiscountPercentage
	}
	if service != nil {
		ap.ServiceID = service.ID
		ap.BasePrice = service.Price
		ap.DurationMinutes = service.DurationMinutes
	}
	Reprice(&ap)
	return ap
}

// Complete moves the appointment to the default billable status.
func Complete(ap *models.Appointment, statuses []models.AppStatus) error {
	st, err := DefaultBillable(statuses)
	if err != nil {
		return err
	}
	ap.StatusID = st.ID
	return nil
}

// Cancel moves the appointment to the cancelled status. Cancelling twice is
// an error so the audit trail stays meaningful.
func Cancel(ap *models.Appointment, statuses []models.AppStatus) error {
	st, err := CancelledStatus(statuses)
	if err != nil {
		return err
	}
	if ap.StatusID == st.ID {
		return httperr.ErrBusiness("appointment_already_cancelled")
	}
	ap.StatusID = st.ID
	return nil
}

// Move reschedules ap in place; the id is kept.
func Move(ap models.Appointment, date, startTime string) models.Appointment {
	ap.Date = date
	ap.StartTime = startTime
	return ap
}

// Copy returns an independent appointment with the same attributes at the
// new slot. The id is cleared so the store assigns a fresh one.
func Copy(ap models.Appointment, date, startTime string) models.Appointment {
	ap.ID = ""
	ap.Date = date
	ap.StartTime = startTime
	ap.CreatedAt = time.Time{}
	ap.UpdatedAt = time.Time{}
	return ap
}
