package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-agenda/internal/domain"
	"github.com/BruksfildServices01/clinic-agenda/internal/httperr"
	"github.com/BruksfildServices01/clinic-agenda/internal/models"
)

type GormCollection[T any, P record[T]] struct {
	db *gorm.DB
}

func NewGormCollection[T any, P record[T]](db *gorm.DB) *GormCollection[T, P] {
	return &GormCollection[T, P]{db: db}
}

// --------------------------------------------------
// List
// --------------------------------------------------

func (r *GormCollection[T, P]) List(ctx context.Context, ownerID string) ([]T, error) {
	var items []T
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}

	for i := range items {
		P(&items[i]).SetOwnerID(ownerID)
	}
	return items, nil
}

// --------------------------------------------------
// Save (create / update)
// --------------------------------------------------

func (r *GormCollection[T, P]) Save(ctx context.Context, ownerID string, entity *T) error {
	p := P(entity)
	p.SetOwnerID(ownerID)

	if p.GetID() == "" {
		p.SetID(uuid.NewString())
		if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
			return translate(err)
		}
		return nil
	}

	// created_at is never written on update; load it so the caller sees
	// the stored value.
	var stored T
	if err := r.db.WithContext(ctx).
		Select("created_at").
		Where("id = ? AND owner_id = ?", p.GetID(), ownerID).
		Take(&stored).Error; err != nil {
		return translate(err)
	}
	stamp(entity, createdAt(P(&stored)), time.Now())

	res := r.db.WithContext(ctx).
		Model(entity).
		Select("*").
		Omit("id", "owner_id", "created_at").
		Where("owner_id = ?", ownerID).
		Updates(entity)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// Delete
// --------------------------------------------------

func (r *GormCollection[T, P]) Delete(ctx context.Context, ownerID string, id string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(new(T))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func translate(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return httperr.ErrBusiness("duplicate_id")
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return fmt.Errorf("gorm store: %w", err)
}

// GormStore keeps every collection in postgres, partitioned by owner_id.
type GormStore struct {
	clients      *GormCollection[models.Client, *models.Client]
	services     *GormCollection[models.Service, *models.Service]
	staff        *GormCollection[models.Staff, *models.Staff]
	statuses     *GormCollection[models.AppStatus, *models.AppStatus]
	appointments *GormCollection[models.Appointment, *models.Appointment]
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{
		clients:      NewGormCollection[models.Client](db),
		services:     NewGormCollection[models.Service](db),
		staff:        NewGormCollection[models.Staff](db),
		statuses:     NewGormCollection[models.AppStatus](db),
		appointments: NewGormCollection[models.Appointment](db),
	}
}

func (s *GormStore) Clients() domain.Collection[models.Client]           { return s.clients }
func (s *GormStore) Services() domain.Collection[models.Service]         { return s.services }
func (s *GormStore) Staff() domain.Collection[models.Staff]              { return s.staff }
func (s *GormStore) Statuses() domain.Collection[models.AppStatus]       { return s.statuses }
func (s *GormStore) Appointments() domain.Collection[models.Appointment] { return s.appointments }

// Compile-time check
var _ domain.Store = (*GormStore)(nil)
