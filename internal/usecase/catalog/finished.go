package catalog

import (
	"context"

	"github.com/BruksfildServices01/clinic-agenda/internal/audit"
	"github.com/BruksfildServices01/clinic-agenda/internal/domain"
	"github.com/BruksfildServices01/clinic-agenda/internal/models"
)

type ToggleFinished struct {
	resolver domain.StoreResolver
	audit    *audit.Dispatcher
}

func NewToggleFinished(resolver domain.StoreResolver, audit *audit.Dispatcher) *ToggleFinished {
	return &ToggleFinished{resolver: resolver, audit: audit}
}

// Execute flips the finished-treatment flag of serviceID for the client. The
// service does not need to exist any more.
func (uc *ToggleFinished) Execute(
	ctx context.Context,
	ownerID string,
	clientID string,
	serviceID string,
) (*models.Client, bool, error) {

	store := uc.resolver.For(ownerID)

	client, err := domain.Find(ctx, store.Clients(), ownerID, clientID)
	if err != nil {
		return nil, false, storeErr(err)
	}

	finished := client.ToggleFinished(serviceID)
	if err := store.Clients().Save(ctx, ownerID, client); err != nil {
		return nil, false, storeErr(err)
	}

	action := "treatment_reopened"
	if finished {
		action = "treatment_finished"
	}
	uc.audit.Dispatch(audit.Event{
		OwnerID:  ownerID,
		Action:   action,
		Entity:   "client",
		EntityID: clientID,
		Metadata: map[string]string{"service_id": serviceID},
	})

	return client, finished, nil
}
