package workspace

import (
	"context"
	"errors"
	"testing"

	"github.com/BruksfildServices01/clinic-agenda/internal/domain"
	"github.com/BruksfildServices01/clinic-agenda/internal/fixtures"
	"github.com/BruksfildServices01/clinic-agenda/internal/infra/repository"
	"github.com/BruksfildServices01/clinic-agenda/internal/models"
)

type failingList[T any] struct {
	domain.Collection[T]
}

func (failingList[T]) List(context.Context, string) ([]T, error) {
	return nil, errors.New("backend unavailable")
}

// brokenStore fails to list services and staff.
type brokenStore struct {
	domain.Store
}

func (b brokenStore) Services() domain.Collection[models.Service] {
	return failingList[models.Service]{b.Store.Services()}
}

func (b brokenStore) Staff() domain.Collection[models.Staff] {
	return failingList[models.Staff]{b.Store.Staff()}
}

type staticResolver struct{ store domain.Store }

func (r staticResolver) For(string) domain.Store { return r.store }

func seed() fixtures.Workspace { return fixtures.Guest("2024-06-01") }

func TestLoadComplete(t *testing.T) {
	loader := NewLoader(staticResolver{repository.NewMemoryStore(seed)})

	ws := loader.Load(context.Background(), "guest")
	if ws.Partial || len(ws.Failed) != 0 {
		t.Fatalf("unexpected partial load: %v", ws.Failed)
	}
	if len(ws.Clients) != len(seed().Clients) || len(ws.Appointments) != len(seed().Appointments) {
		t.Errorf("collections not loaded: %d clients, %d appointments", len(ws.Clients), len(ws.Appointments))
	}
	if name := ws.Catalog().ServiceName("svc-laser"); name != "Depilación láser" {
		t.Errorf("catalog lookup = %q", name)
	}
}

func TestLoadKeepsWhatLoaded(t *testing.T) {
	store := brokenStore{repository.NewMemoryStore(seed)}
	loader := NewLoader(staticResolver{store})

	ws := loader.Load(context.Background(), "guest")
	if !ws.Partial {
		t.Fatal("expected partial load")
	}
	if len(ws.Failed) != 2 || ws.Failed[0] != "services" || ws.Failed[1] != "staff" {
		t.Errorf("Failed = %v", ws.Failed)
	}
	if ws.Services != nil || ws.Staff != nil {
		t.Error("failed collections should be left empty")
	}
	if len(ws.Clients) == 0 || len(ws.Statuses) == 0 || len(ws.Appointments) == 0 {
		t.Error("successful collections should be returned")
	}
}

func TestSnapshotFailsOnAnyError(t *testing.T) {
	loader := NewLoader(staticResolver{brokenStore{repository.NewMemoryStore(seed)}})

	if _, err := loader.Snapshot(context.Background(), "guest"); err == nil {
		t.Fatal("expected snapshot error")
	}

	ok := NewLoader(staticResolver{repository.NewMemoryStore(seed)})
	ws, err := ok.Snapshot(context.Background(), "guest")
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if len(ws.Statuses) != len(seed().Statuses) {
		t.Errorf("got %d statuses", len(ws.Statuses))
	}
}
