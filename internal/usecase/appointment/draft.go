package appointment

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/clinic-agenda/internal/domain"
	domainAppointment "github.com/BruksfildServices01/clinic-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-agenda/internal/models"
)

type DraftAppointment struct {
	resolver domain.StoreResolver
}

func NewDraftAppointment(resolver domain.StoreResolver) *DraftAppointment {
	return &DraftAppointment{resolver: resolver}
}

// Execute prefills the appointment form. Unknown or empty ids leave the
// matching fields blank.
func (uc *DraftAppointment) Execute(
	ctx context.Context,
	ownerID string,
	clientID string,
	serviceID string,
) (models.Appointment, error) {

	store := uc.resolver.For(ownerID)

	var (
		client  *models.Client
		service *models.Service
	)
	if clientID != "" {
		c, err := domain.Find(ctx, store.Clients(), ownerID, clientID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return models.Appointment{}, err
		}
		client = c
	}
	if serviceID != "" {
		s, err := domain.Find(ctx, store.Services(), ownerID, serviceID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return models.Appointment{}, err
		}
		service = s
	}

	draft := domainAppointment.NewDraft(client, service)

	statuses, err := store.Statuses().List(ctx, ownerID)
	if err != nil {
		return models.Appointment{}, err
	}
	if len(statuses) > 0 {
		draft.StatusID = statuses[0].ID
	}
	return draft, nil
}
