package appointment

import (
	"context"

	"github.com/BruksfildServices01/clinic-agenda/internal/audit"
	"github.com/BruksfildServices01/clinic-agenda/internal/domain"
	"github.com/BruksfildServices01/clinic-agenda/internal/domain/calendar"
)

type ResizeAppointment struct {
	resolver domain.StoreResolver
	grid     calendar.Config
	policy   Policy
	audit    *audit.Dispatcher
}

func NewResizeAppointment(
	resolver domain.StoreResolver,
	grid calendar.Config,
	policy Policy,
	audit *audit.Dispatcher,
) *ResizeAppointment {
	return &ResizeAppointment{
		resolver: resolver,
		grid:     grid,
		policy:   policy,
		audit:    audit,
	}
}

// Execute releases a resize of edge by deltaPixels (positive is downwards).
func (uc *ResizeAppointment) Execute(
	ctx context.Context,
	ownerID string,
	appointmentID string,
	edge calendar.Edge,
	deltaPixels float64,
) (*Result, error) {

	store := uc.resolver.For(ownerID)

	ap, err := load(ctx, store, ownerID, appointmentID)
	if err != nil {
		return nil, err
	}
	before := *ap

	gesture := calendar.NewInteraction(uc.grid)
	if err := gesture.BeginResize(*ap, edge, 0); err != nil {
		return nil, err
	}
	resized, err := gesture.PointerUp(deltaPixels)
	if err != nil {
		return nil, err
	}

	res, err := persist(ctx, store, uc.policy, ownerID, &resized)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		OwnerID:  ownerID,
		Action:   "appointment_resized",
		Entity:   "appointment",
		EntityID: resized.ID,
		Metadata: map[string]any{
			"edge":         edge,
			"from_start":   before.StartTime,
			"to_start":     resized.StartTime,
			"from_minutes": before.DurationMinutes,
			"to_minutes":   resized.DurationMinutes,
		},
	})

	return res, nil
}
