package appointment

import (
	"context"

	"github.com/BruksfildServices01/clinic-agenda/internal/audit"
	"github.com/BruksfildServices01/clinic-agenda/internal/domain"
	"github.com/BruksfildServices01/clinic-agenda/internal/domain/calendar"
)

type DropAppointment struct {
	resolver domain.StoreResolver
	grid     calendar.Config
	policy   Policy
	audit    *audit.Dispatcher
}

func NewDropAppointment(
	resolver domain.StoreResolver,
	grid calendar.Config,
	policy Policy,
	audit *audit.Dispatcher,
) *DropAppointment {
	return &DropAppointment{
		resolver: resolver,
		grid:     grid,
		policy:   policy,
		audit:    audit,
	}
}

// Execute applies a drop on slot. Move updates the appointment in place;
// copy creates a new one with a fresh id and leaves the original untouched.
func (uc *DropAppointment) Execute(
	ctx context.Context,
	ownerID string,
	appointmentID string,
	slot calendar.Slot,
	mode calendar.DropMode,
) (*Result, error) {

	store := uc.resolver.For(ownerID)

	ap, err := load(ctx, store, ownerID, appointmentID)
	if err != nil {
		return nil, err
	}

	gesture := calendar.NewInteraction(uc.grid)
	if err := gesture.BeginDrag(*ap); err != nil {
		return nil, err
	}
	if err := gesture.Drop(slot); err != nil {
		return nil, err
	}
	dropped, err := gesture.Choose(mode)
	if err != nil {
		return nil, err
	}

	res, err := persist(ctx, store, uc.policy, ownerID, &dropped)
	if err != nil {
		return nil, err
	}

	action := "appointment_moved"
	if mode == calendar.DropCopy {
		action = "appointment_copied"
	}
	uc.audit.Dispatch(audit.Event{
		OwnerID:  ownerID,
		Action:   action,
		Entity:   "appointment",
		EntityID: dropped.ID,
		Metadata: map[string]string{
			"source": appointmentID,
			"date":   dropped.Date,
			"start":  dropped.StartTime,
		},
	})

	return res, nil
}
