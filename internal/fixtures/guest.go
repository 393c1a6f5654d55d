// Package fixtures holds the demo workspace served to guest sessions.
package fixtures

import (
	"gorm.io/datatypes"

	"github.com/BruksfildServices01/clinic-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-agenda/internal/models"
	"github.com/BruksfildServices01/clinic-agenda/internal/timezone"
)

type Workspace struct {
	Clients      []models.Client
	Services     []models.Service
	Staff        []models.Staff
	Statuses     []models.AppStatus
	Appointments []models.Appointment
}

// Guest builds the demo workspace with appointment dates relative to today,
// so the retention views always show a mix of overdue, upcoming and on-time
// clients.
func Guest(today string) Workspace {
	day := func(offset int) string {
		d, err := timezone.AddDays(today, offset)
		if err != nil {
			return today
		}
		return d
	}

	services := []models.Service{
		{ID: "svc-laser", Name: "Depilación láser", Price: 80, DurationMinutes: 45, RecurrenceDays: 42, Color: "#e57373"},
		{ID: "svc-facial", Name: "Limpieza facial", Price: 55, DurationMinutes: 60, RecurrenceDays: 30, Color: "#64b5f6"},
		{ID: "svc-botox", Name: "Botox", Price: 250, DurationMinutes: 30, RecurrenceDays: 120, Color: "#81c784"},
		{ID: "svc-consult", Name: "Consulta", Price: 40, DurationMinutes: 30, RecurrenceDays: 0, Color: "#ffb74d"},
	}

	staff := []models.Staff{
		{
			ID: "stf-lucia", Name: "Lucía Martín", HourlyRate: 18, Color: "#9575cd",
			ServiceRates: datatypes.NewJSONType(map[string]float64{"svc-botox": 45}),
			Specialties:  datatypes.JSONSlice[string]{"svc-botox", "svc-facial"},
		},
		{
			ID: "stf-pablo", Name: "Pablo Ruiz", HourlyRate: 15, Color: "#4db6ac",
			ServiceRates: datatypes.NewJSONType(map[string]float64{}),
			Specialties:  datatypes.JSONSlice[string]{"svc-laser"},
		},
	}

	statuses := []models.AppStatus{
		{ID: "st-pending", Name: "Pendiente", Color: "#90a4ae", Kind: models.StatusKindScheduled},
		{ID: "st-confirmed", Name: "Confirmada", Color: "#4fc3f7", Kind: models.StatusKindScheduled},
		{ID: "st-done", Name: "Realizada", Color: "#66bb6a", IsBillable: true, IsDefault: true, Kind: models.StatusKindBillable},
		{ID: "st-cancelled", Name: "Cancelada", Color: "#ef5350", Kind: models.StatusKindCancelled},
	}

	clients := []models.Client{
		{ID: "cli-ana", Name: "Ana García", Phone: "600111222", Email: "ana@example.com", DiscountPercentage: 10,
			FinishedServiceIDs: datatypes.JSONSlice[string]{}},
		{ID: "cli-carmen", Name: "Carmen López", Phone: "600333444", Email: "carmen@example.com",
			FinishedServiceIDs: datatypes.JSONSlice[string]{}},
		{ID: "cli-jorge", Name: "Jorge Sánchez", Phone: "600555666",
			FinishedServiceIDs: datatypes.JSONSlice[string]{}},
		{ID: "cli-elena", Name: "Elena Torres", Phone: "600777888", DiscountPercentage: 15,
			FinishedServiceIDs: datatypes.JSONSlice[string]{"svc-laser"}},
	}

	apt := func(id, client, service, staffID, status string, offset int, start string) models.Appointment {
		var ap models.Appointment
		for _, s := range services {
			if s.ID == service {
				ap.BasePrice = s.Price
				ap.DurationMinutes = s.DurationMinutes
			}
		}
		for _, c := range clients {
			if c.ID == client {
				ap.DiscountPercentage = c.DiscountPercentage
			}
		}
		ap.ID = id
		ap.ClientID = client
		ap.ServiceID = service
		ap.StaffID = staffID
		ap.StatusID = status
		ap.Date = day(offset)
		ap.StartTime = start
		appointment.Reprice(&ap)
		return ap
	}

	appointments := []models.Appointment{
		// Ana: laser overdue.
		apt("apt-1", "cli-ana", "svc-laser", "stf-pablo", "st-done", -90, "10:00"),
		apt("apt-2", "cli-ana", "svc-laser", "stf-pablo", "st-done", -50, "10:00"),
		// Carmen: facial due within the week.
		apt("apt-3", "cli-carmen", "svc-facial", "stf-lucia", "st-done", -26, "12:00"),
		// Jorge: botox recently, plus a consult booked.
		apt("apt-4", "cli-jorge", "svc-botox", "stf-lucia", "st-done", -20, "17:30"),
		apt("apt-5", "cli-jorge", "svc-consult", "", "st-pending", 3, "09:00"),
		// Elena: finished her laser treatment.
		apt("apt-6", "cli-elena", "svc-laser", "stf-pablo", "st-done", -70, "11:15"),
		apt("apt-7", "cli-elena", "svc-facial", "stf-lucia", "st-cancelled", -5, "16:00"),
		apt("apt-8", "cli-carmen", "svc-laser", "stf-pablo", "st-confirmed", 1, "13:00"),
	}

	return Workspace{
		Clients:      clients,
		Services:     services,
		Staff:        staff,
		Statuses:     statuses,
		Appointments: appointments,
	}
}
