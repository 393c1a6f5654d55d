package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/clinic-agenda/internal/domain"
	"github.com/BruksfildServices01/clinic-agenda/internal/fixtures"
	"github.com/BruksfildServices01/clinic-agenda/internal/models"
)

// MemoryCollection keeps records per owner in insertion order. Every owner
// starts from the seed on first access. Records are copied in and out so
// callers never share state with the store.
type MemoryCollection[T any, P record[T]] struct {
	mu     sync.Mutex
	seed   func() []T
	owners map[string][]T
	now    func() time.Time
}

func NewMemoryCollection[T any, P record[T]](seed func() []T) *MemoryCollection[T, P] {
	return &MemoryCollection[T, P]{
		seed:   seed,
		owners: make(map[string][]T),
		now:    time.Now,
	}
}

func (m *MemoryCollection[T, P]) items(ownerID string) []T {
	items, ok := m.owners[ownerID]
	if !ok {
		if m.seed != nil {
			for _, v := range m.seed() {
				items = append(items, clone(v))
			}
		}
		m.owners[ownerID] = items
	}
	return items
}

func (m *MemoryCollection[T, P]) List(_ context.Context, ownerID string) ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	items := m.items(ownerID)
	out := make([]T, 0, len(items))
	for _, v := range items {
		c := clone(v)
		P(&c).SetOwnerID(ownerID)
		out = append(out, c)
	}
	return out, nil
}

func (m *MemoryCollection[T, P]) Save(_ context.Context, ownerID string, entity *T) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p := P(entity)
	p.SetOwnerID(ownerID)
	items := m.items(ownerID)

	if p.GetID() == "" {
		p.SetID(uuid.NewString())
		stamp(entity, time.Time{}, m.now())
		m.owners[ownerID] = append(items, clone(*entity))
		return nil
	}

	for i := range items {
		if P(&items[i]).GetID() != p.GetID() {
			continue
		}
		stamp(entity, createdAt(&items[i]), m.now())
		items[i] = clone(*entity)
		return nil
	}
	return domain.ErrNotFound
}

func (m *MemoryCollection[T, P]) Delete(_ context.Context, ownerID string, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	items := m.items(ownerID)
	for i := range items {
		if P(&items[i]).GetID() == id {
			m.owners[ownerID] = append(items[:i:i], items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// Reset drops every owner's changes; the next access reseeds.
func (m *MemoryCollection[T, P]) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.owners = make(map[string][]T)
}

// MemoryStore is the guest workspace: every owner gets a private copy of the
// fixtures for the lifetime of the process, or until Reset.
type MemoryStore struct {
	clients      *MemoryCollection[models.Client, *models.Client]
	services     *MemoryCollection[models.Service, *models.Service]
	staff        *MemoryCollection[models.Staff, *models.Staff]
	statuses     *MemoryCollection[models.AppStatus, *models.AppStatus]
	appointments *MemoryCollection[models.Appointment, *models.Appointment]
}

// NewMemoryStore seeds from ws; a nil ws starts empty.
func NewMemoryStore(ws func() fixtures.Workspace) *MemoryStore {
	return &MemoryStore{
		clients:      NewMemoryCollection[models.Client](seedOf(ws, func(w fixtures.Workspace) []models.Client { return w.Clients })),
		services:     NewMemoryCollection[models.Service](seedOf(ws, func(w fixtures.Workspace) []models.Service { return w.Services })),
		staff:        NewMemoryCollection[models.Staff](seedOf(ws, func(w fixtures.Workspace) []models.Staff { return w.Staff })),
		statuses:     NewMemoryCollection[models.AppStatus](seedOf(ws, func(w fixtures.Workspace) []models.AppStatus { return w.Statuses })),
		appointments: NewMemoryCollection[models.Appointment](seedOf(ws, func(w fixtures.Workspace) []models.Appointment { return w.Appointments })),
	}
}

func seedOf[T any](ws func() fixtures.Workspace, get func(fixtures.Workspace) []T) func() []T {
	if ws == nil {
		return nil
	}
	return func() []T { return get(ws()) }
}

func (s *MemoryStore) Clients() domain.Collection[models.Client]           { return s.clients }
func (s *MemoryStore) Services() domain.Collection[models.Service]         { return s.services }
func (s *MemoryStore) Staff() domain.Collection[models.Staff]              { return s.staff }
func (s *MemoryStore) Statuses() domain.Collection[models.AppStatus]       { return s.statuses }
func (s *MemoryStore) Appointments() domain.Collection[models.Appointment] { return s.appointments }

func (s *MemoryStore) Reset() {
	s.clients.Reset()
	s.services.Reset()
	s.staff.Reset()
	s.statuses.Reset()
	s.appointments.Reset()
}

var _ domain.Store = (*MemoryStore)(nil)
