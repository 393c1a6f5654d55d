// Package retention derives recommended next visits and client retention
// status from appointment history. Nothing here is stored: every call
// recomputes from the full snapshot it is given.
package retention

import (
	"sort"

	"github.com/BruksfildServices01/clinic-agenda/internal/domain"
	domainAppointment "github.com/BruksfildServices01/clinic-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-agenda/internal/models"
	"github.com/BruksfildServices01/clinic-agenda/internal/timezone"
)

type Recommendation struct {
	ServiceID         string `json:"service_id"`
	ServiceName       string `json:"service_name"`
	LastAppointmentID string `json:"last_appointment_id"`
	LastVisit         string `json:"last_visit"`
	RecommendedDate   string `json:"recommended_date"`
}

// LastBillable returns the most recent billable appointment of a client,
// restricted to serviceID unless it is empty.
func LastBillable(
	apts []models.Appointment,
	cat domain.Catalog,
	clientID string,
	serviceID string,
) (models.Appointment, bool) {
	var (
		last  models.Appointment
		found bool
	)
	for _, ap := range apts {
		if ap.ClientID != clientID {
			continue
		}
		if serviceID != "" && ap.ServiceID != serviceID {
			continue
		}
		if !domainAppointment.IsBillable(cat.Status(ap.StatusID)) {
			continue
		}
		if _, err := timezone.ParseDate(ap.Date); err != nil {
			continue
		}
		if !found || later(ap, last) {
			last = ap
			found = true
		}
	}
	return last, found
}

func later(a, b models.Appointment) bool {
	if a.Date != b.Date {
		return a.Date > b.Date
	}
	return a.StartTime > b.StartTime
}

// HasFutureBooking reports whether the client already holds a pending
// appointment for serviceID on or after today. Billable and cancelled
// appointments are not bookings.
func HasFutureBooking(
	apts []models.Appointment,
	cat domain.Catalog,
	clientID string,
	serviceID string,
	today string,
) bool {
	for _, ap := range apts {
		if ap.ClientID != clientID || ap.ServiceID != serviceID {
			continue
		}
		if ap.Date < today {
			continue
		}
		st, ok := cat.Status(ap.StatusID)
		if domainAppointment.IsBillable(st, ok) || domainAppointment.IsCancelled(st, ok) {
			continue
		}
		return true
	}
	return false
}

// Project computes the next recommended visit for one client and service.
// It yields nothing for non-recurring services, finished treatments, clients
// without billable history for the service, and when a booking already exists.
func Project(
	client models.Client,
	service models.Service,
	apts []models.Appointment,
	cat domain.Catalog,
	today string,
) (Recommendation, bool) {
	if service.RecurrenceDays == 0 {
		return Recommendation{}, false
	}
	if client.HasFinished(service.ID) {
		return Recommendation{}, false
	}

	last, ok := LastBillable(apts, cat, client.ID, service.ID)
	if !ok {
		return Recommendation{}, false
	}

	if HasFutureBooking(apts, cat, client.ID, service.ID, today) {
		return Recommendation{}, false
	}

	date, err := timezone.AddDays(last.Date, service.RecurrenceDays)
	if err != nil {
		return Recommendation{}, false
	}

	return Recommendation{
		ServiceID:         service.ID,
		ServiceName:       service.Name,
		LastAppointmentID: last.ID,
		LastVisit:         last.Date,
		RecommendedDate:   date,
	}, true
}

// Recommendations projects every service the client has been billed for,
// earliest recommended date first.
func Recommendations(
	client models.Client,
	apts []models.Appointment,
	cat domain.Catalog,
	today string,
) []Recommendation {
	seen := make(map[string]bool)
	out := []Recommendation{}

	for _, ap := range apts {
		if ap.ClientID != client.ID || seen[ap.ServiceID] {
			continue
		}
		seen[ap.ServiceID] = true

		service, ok := cat.Service(ap.ServiceID)
		if !ok {
			continue
		}
		if rec, ok := Project(client, service, apts, cat, today); ok {
			out = append(out, rec)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RecommendedDate < out[j].RecommendedDate
	})
	return out
}
