package appointment

import (
	"context"

	"github.com/BruksfildServices01/clinic-agenda/internal/audit"
	"github.com/BruksfildServices01/clinic-agenda/internal/domain"
)

type DeleteAppointment struct {
	resolver domain.StoreResolver
	audit    *audit.Dispatcher
}

func NewDeleteAppointment(
	resolver domain.StoreResolver,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{resolver: resolver, audit: audit}
}

func (uc *DeleteAppointment) Execute(ctx context.Context, ownerID, appointmentID string) error {
	if err := uc.resolver.For(ownerID).Appointments().Delete(ctx, ownerID, appointmentID); err != nil {
		return storeErr(err)
	}

	uc.audit.Dispatch(audit.Event{
		OwnerID:  ownerID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: appointmentID,
	})
	return nil
}
