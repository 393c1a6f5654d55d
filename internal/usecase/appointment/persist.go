package appointment

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/clinic-agenda/internal/domain"
	domainAppointment "github.com/BruksfildServices01/clinic-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-agenda/internal/httperr"
	"github.com/BruksfildServices01/clinic-agenda/internal/models"
)

// Result is a persisted appointment plus the same-staff bookings it
// overlaps.
type Result struct {
	Appointment *models.Appointment  `json:"appointment"`
	Overlaps    []models.Appointment `json:"overlaps,omitempty"`
}

// Policy holds the write-path options shared by every appointment use case.
type Policy struct {
	RejectOverlaps bool
}

func storeErr(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return httperr.ErrBusiness("not_found")
	}
	return err
}

func load(ctx context.Context, store domain.Store, ownerID, id string) (*models.Appointment, error) {
	ap, err := domain.Find(ctx, store.Appointments(), ownerID, id)
	if err != nil {
		return nil, storeErr(err)
	}
	return ap, nil
}

// persist validates, reprices, checks overlaps and saves. Nothing is written
// when validation fails.
func persist(
	ctx context.Context,
	store domain.Store,
	policy Policy,
	ownerID string,
	ap *models.Appointment,
) (*Result, error) {

	if err := domainAppointment.Validate(ap); err != nil {
		return nil, err
	}
	domainAppointment.Reprice(ap)

	existing, err := store.Appointments().List(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	statuses, err := store.Statuses().List(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]models.AppStatus, len(statuses))
	for _, st := range statuses {
		byID[st.ID] = st
	}

	overlaps := domainAppointment.FindOverlaps(existing, *ap, byID)
	if len(overlaps) > 0 && policy.RejectOverlaps {
		return nil, httperr.ErrBusiness("time_conflict")
	}

	if err := store.Appointments().Save(ctx, ownerID, ap); err != nil {
		return nil, storeErr(err)
	}

	return &Result{Appointment: ap, Overlaps: overlaps}, nil
}
