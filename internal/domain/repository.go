// Package domain holds the persistence contract shared by every store.
package domain

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/clinic-agenda/internal/models"
)

var ErrNotFound = errors.New("record not found")

// Entity is implemented by the pointer form of every stored record.
type Entity interface {
	GetID() string
	SetID(id string)
	SetOwnerID(id string)
}

// Collection is the CRUD contract for one entity type, partitioned by owner.
// Save creates when the ID is empty (the generated ID is written back) and
// otherwise updates; concurrent writers overwrite each other.
type Collection[T any] interface {
	List(ctx context.Context, ownerID string) ([]T, error)
	Save(ctx context.Context, ownerID string, entity *T) error
	Delete(ctx context.Context, ownerID string, id string) error
}

type Store interface {
	Clients() Collection[models.Client]
	Services() Collection[models.Service]
	Staff() Collection[models.Staff]
	Statuses() Collection[models.AppStatus]
	Appointments() Collection[models.Appointment]
}

// StoreResolver picks the store that serves an owner.
type StoreResolver interface {
	For(ownerID string) Store
}

// Find returns the record with the given id from a listed collection.
func Find[T any, P interface {
	*T
	Entity
}](ctx context.Context, c Collection[T], ownerID, id string) (*T, error) {
	items, err := c.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if P(&items[i]).GetID() == id {
			return &items[i], nil
		}
	}
	return nil, ErrNotFound
}
