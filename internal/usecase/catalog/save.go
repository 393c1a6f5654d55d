package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/clinic-agenda/internal/audit"
	"github.com/BruksfildServices01/clinic-agenda/internal/domain"
	domainAppointment "github.com/BruksfildServices01/clinic-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-agenda/internal/httperr"
	"github.com/BruksfildServices01/clinic-agenda/internal/models"
)

var validate = validator.New()

// Entity describes one catalog collection to the generic use cases.
type Entity[T any] struct {
	Name       string
	Collection func(domain.Store) domain.Collection[T]
	Validate   func(*T) error
	// Ref extracts the reference an appointment holds to this entity.
	Ref func(models.Appointment) string
}

var Clients = Entity[models.Client]{
	Name:       "client",
	Collection: domain.Store.Clients,
	Validate: func(c *models.Client) error {
		c.Name = strings.TrimSpace(c.Name)
		if c.Name == "" {
			return httperr.ErrBusiness("missing_name")
		}
		c.Email = strings.TrimSpace(c.Email)
		if err := validate.Var(c.Email, "omitempty,email"); err != nil {
			return httperr.ErrBusiness("invalid_email")
		}
		return domainAppointment.ValidateDiscount(c.DiscountPercentage)
	},
	Ref: func(ap models.Appointment) string { return ap.ClientID },
}

var Services = Entity[models.Service]{
	Name:       "service",
	Collection: domain.Store.Services,
	Validate: func(s *models.Service) error {
		s.Name = strings.TrimSpace(s.Name)
		switch {
		case s.Name == "":
			return httperr.ErrBusiness("missing_name")
		case s.Price < 0:
			return httperr.ErrBusiness("invalid_price")
		case s.DurationMinutes < 0:
			return httperr.ErrBusiness("invalid_duration")
		case s.RecurrenceDays < 0:
			return httperr.ErrBusiness("invalid_recurrence")
		}
		return nil
	},
	Ref: func(ap models.Appointment) string { return ap.ServiceID },
}

var Staff = Entity[models.Staff]{
	Name:       "staff",
	Collection: domain.Store.Staff,
	Validate: func(s *models.Staff) error {
		s.Name = strings.TrimSpace(s.Name)
		if s.Name == "" {
			return httperr.ErrBusiness("missing_name")
		}
		if s.HourlyRate < 0 {
			return httperr.ErrBusiness("invalid_rate")
		}
		for _, rate := range s.ServiceRates.Data() {
			if rate < 0 {
				return httperr.ErrBusiness("invalid_rate")
			}
		}
		return nil
	},
	Ref: func(ap models.Appointment) string { return ap.StaffID },
}

var Statuses = Entity[models.AppStatus]{
	Name:       "status",
	Collection: domain.Store.Statuses,
	Validate: func(s *models.AppStatus) error {
		s.Name = strings.TrimSpace(s.Name)
		if s.Name == "" {
			return httperr.ErrBusiness("missing_name")
		}
		switch s.Kind {
		case models.StatusKindNone, models.StatusKindScheduled, models.StatusKindBillable,
			models.StatusKindCancelled, models.StatusKindNoShow, models.StatusKindCustom:
			return nil
		}
		return httperr.ErrBusiness("invalid_status_kind")
	},
	Ref: func(ap models.Appointment) string { return ap.StatusID },
}

type Save[T any] struct {
	entity   Entity[T]
	resolver domain.StoreResolver
	audit    *audit.Dispatcher
}

func NewSave[T any](
	entity Entity[T],
	resolver domain.StoreResolver,
	audit *audit.Dispatcher,
) *Save[T] {
	return &Save[T]{entity: entity, resolver: resolver, audit: audit}
}

// Execute creates item when its id is empty and updates it otherwise.
func (uc *Save[T]) Execute(ctx context.Context, ownerID string, item *T) error {
	if err := uc.entity.Validate(item); err != nil {
		return err
	}

	action := uc.entity.Name + "_updated"
	if entityID(item) == "" {
		action = uc.entity.Name + "_created"
	}

	store := uc.resolver.For(ownerID)
	if err := uc.entity.Collection(store).Save(ctx, ownerID, item); err != nil {
		return storeErr(err)
	}

	uc.audit.Dispatch(audit.Event{
		OwnerID:  ownerID,
		Action:   action,
		Entity:   uc.entity.Name,
		EntityID: entityID(item),
	})
	return nil
}

func entityID(item any) string {
	if e, ok := item.(domain.Entity); ok {
		return e.GetID()
	}
	return ""
}

func storeErr(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return httperr.ErrBusiness("not_found")
	}
	return err
}
