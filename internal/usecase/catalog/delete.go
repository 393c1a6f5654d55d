package catalog

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/clinic-agenda/internal/audit"
	"github.com/BruksfildServices01/clinic-agenda/internal/domain"
)

// DeleteResult warns about appointments that still reference the deleted
// record. They are kept and resolve to a placeholder from now on.
type DeleteResult struct {
	FutureAppointments int `json:"future_appointments"`
}

type Delete[T any] struct {
	entity   Entity[T]
	resolver domain.StoreResolver
	audit    *audit.Dispatcher
	today    func() string
}

func NewDelete[T any](
	entity Entity[T],
	resolver domain.StoreResolver,
	audit *audit.Dispatcher,
	today func() string,
) *Delete[T] {
	return &Delete[T]{entity: entity, resolver: resolver, audit: audit, today: today}
}

// Execute always deletes; the count of appointments from today on that
// still point at the record is returned as a warning.
func (uc *Delete[T]) Execute(ctx context.Context, ownerID, id string) (*DeleteResult, error) {
	store := uc.resolver.For(ownerID)

	if err := uc.entity.Collection(store).Delete(ctx, ownerID, id); err != nil {
		return nil, storeErr(err)
	}

	res := &DeleteResult{}
	apts, err := store.Appointments().List(ctx, ownerID)
	if err != nil {
		log.Warn().Err(err).
			Str("owner_id", ownerID).
			Str("entity", uc.entity.Name).
			Msg("could not count future appointments after delete")
	}

	today := uc.today()
	for _, ap := range apts {
		if ap.Date >= today && uc.entity.Ref(ap) == id {
			res.FutureAppointments++
		}
	}

	uc.audit.Dispatch(audit.Event{
		OwnerID:  ownerID,
		Action:   uc.entity.Name + "_deleted",
		Entity:   uc.entity.Name,
		EntityID: id,
		Metadata: res,
	})
	return res, nil
}
