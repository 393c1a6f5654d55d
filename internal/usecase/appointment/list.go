package appointment

import (
	"context"
	"sort"

	"github.com/BruksfildServices01/clinic-agenda/internal/domain"
	"github.com/BruksfildServices01/clinic-agenda/internal/domain/finance"
	"github.com/BruksfildServices01/clinic-agenda/internal/dto"
	"github.com/BruksfildServices01/clinic-agenda/internal/models"
	"github.com/BruksfildServices01/clinic-agenda/internal/timezone"
)

type ListAppointments struct {
	resolver domain.StoreResolver
}

func NewListAppointments(resolver domain.StoreResolver) *ListAppointments {
	return &ListAppointments{resolver: resolver}
}

// Execute lists the calendar between from and to (inclusive, either may be
// empty) in chronological order, with names resolved for display.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	ownerID string,
	from string,
	to string,
) ([]dto.AppointmentListDTO, error) {

	store := uc.resolver.For(ownerID)

	apts, err := store.Appointments().List(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	clients, err := store.Clients().List(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	services, err := store.Services().List(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	staff, err := store.Staff().List(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	statuses, err := store.Statuses().List(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	cat := domain.NewCatalog(clients, services, staff, statuses)

	apts = finance.FilterRange(apts, from, to)
	sort.SliceStable(apts, func(i, j int) bool {
		if apts[i].Date != apts[j].Date {
			return apts[i].Date < apts[j].Date
		}
		return apts[i].StartTime < apts[j].StartTime
	})

	out := make([]dto.AppointmentListDTO, 0, len(apts))
	for _, ap := range apts {
		out = append(out, toListDTO(ap, cat))
	}
	return out, nil
}

func toListDTO(ap models.Appointment, cat domain.Catalog) dto.AppointmentListDTO {
	end := ap.StartTime
	if start, err := timezone.ParseClock(ap.StartTime); err == nil {
		end = timezone.FormatClock(start + ap.DurationMinutes)
	}
	service, _ := cat.Service(ap.ServiceID)
	status, _ := cat.Status(ap.StatusID)

	return dto.AppointmentListDTO{
		ID:              ap.ID,
		Date:            ap.Date,
		StartTime:       ap.StartTime,
		EndTime:         end,
		DurationMinutes: ap.DurationMinutes,
		Price:           ap.Price,
		StatusID:        ap.StatusID,
		Status:          cat.StatusName(ap.StatusID),
		StatusColor:     status.Color,
		ClientID:        ap.ClientID,
		ClientName:      cat.ClientName(ap.ClientID),
		ServiceID:       ap.ServiceID,
		ServiceName:     cat.ServiceName(ap.ServiceID),
		ServiceColor:    service.Color,
		StaffID:         ap.StaffID,
		StaffName:       staffName(ap.StaffID, cat),
	}
}

func staffName(id string, cat domain.Catalog) string {
	if id == "" {
		return ""
	}
	return cat.StaffName(id)
}
