package appointment

import (
	"context"

	"github.com/BruksfildServices01/clinic-agenda/internal/audit"
	"github.com/BruksfildServices01/clinic-agenda/internal/domain"
	domainAppointment "github.com/BruksfildServices01/clinic-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-agenda/internal/models"
)

// ChangeStatus applies a status transition: quick complete or cancel.
type ChangeStatus struct {
	resolver domain.StoreResolver
	audit    *audit.Dispatcher
	action   string
	apply    func(*models.Appointment, []models.AppStatus) error
}

func NewCompleteAppointment(
	resolver domain.StoreResolver,
	audit *audit.Dispatcher,
) *ChangeStatus {
	return &ChangeStatus{
		resolver: resolver,
		audit:    audit,
		action:   "appointment_completed",
		apply:    domainAppointment.Complete,
	}
}

func NewCancelAppointment(
	resolver domain.StoreResolver,
	audit *audit.Dispatcher,
) *ChangeStatus {
	return &ChangeStatus{
		resolver: resolver,
		audit:    audit,
		action:   "appointment_cancelled",
		apply:    domainAppointment.Cancel,
	}
}

func (uc *ChangeStatus) Execute(
	ctx context.Context,
	ownerID string,
	appointmentID string,
) (*models.Appointment, error) {

	store := uc.resolver.For(ownerID)

	ap, err := load(ctx, store, ownerID, appointmentID)
	if err != nil {
		return nil, err
	}

	statuses, err := store.Statuses().List(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	from := ap.StatusID
	if err := uc.apply(ap, statuses); err != nil {
		return nil, err
	}
	domainAppointment.Reprice(ap)

	if err := store.Appointments().Save(ctx, ownerID, ap); err != nil {
		return nil, storeErr(err)
	}

	uc.audit.Dispatch(audit.Event{
		OwnerID:  ownerID,
		Action:   uc.action,
		Entity:   "appointment",
		EntityID: ap.ID,
		Metadata: map[string]string{"from": from, "to": ap.StatusID},
	})

	return ap, nil
}
