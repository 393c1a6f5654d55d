package appointment

import (
	"context"

	"github.com/BruksfildServices01/clinic-agenda/internal/audit"
	"github.com/BruksfildServices01/clinic-agenda/internal/domain"
	"github.com/BruksfildServices01/clinic-agenda/internal/models"
)

type SaveAppointment struct {
	resolver domain.StoreResolver
	policy   Policy
	audit    *audit.Dispatcher
}

func NewSaveAppointment(
	resolver domain.StoreResolver,
	policy Policy,
	audit *audit.Dispatcher,
) *SaveAppointment {
	return &SaveAppointment{
		resolver: resolver,
		policy:   policy,
		audit:    audit,
	}
}

// Execute creates the appointment when ap.ID is empty and updates it
// otherwise. Price is always recomputed from base price and discount.
func (uc *SaveAppointment) Execute(
	ctx context.Context,
	ownerID string,
	ap *models.Appointment,
) (*Result, error) {

	action := "appointment_updated"
	if ap.ID == "" {
		action = "appointment_created"
	}

	res, err := persist(ctx, uc.resolver.For(ownerID), uc.policy, ownerID, ap)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		OwnerID:  ownerID,
		Action:   action,
		Entity:   "appointment",
		EntityID: ap.ID,
		Metadata: map[string]any{"overlaps": len(res.Overlaps)},
	})

	return res, nil
}
