package workspace

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/BruksfildServices01/clinic-agenda/internal/domain"
	"github.com/BruksfildServices01/clinic-agenda/internal/models"
)

// Workspace is everything the agenda needs for one owner.
type Workspace struct {
	Clients      []models.Client      `json:"clients"`
	Services     []models.Service     `json:"services"`
	Staff        []models.Staff       `json:"staff"`
	Statuses     []models.AppStatus   `json:"statuses"`
	Appointments []models.Appointment `json:"appointments"`

	// Partial is set when some collections failed to load; they are listed
	// in Failed and left nil.
	Partial bool     `json:"partial"`
	Failed  []string `json:"failed,omitempty"`
}

func (w Workspace) Catalog() domain.Catalog {
	return domain.NewCatalog(w.Clients, w.Services, w.Staff, w.Statuses)
}

type Loader struct {
	resolver domain.StoreResolver
}

func NewLoader(resolver domain.StoreResolver) *Loader {
	return &Loader{resolver: resolver}
}

type fetch struct {
	name string
	run  func(ctx context.Context, store domain.Store, ownerID string, ws *Workspace) error
}

var fetches = []fetch{
	{"clients", func(ctx context.Context, s domain.Store, o string, ws *Workspace) (err error) {
		ws.Clients, err = s.Clients().List(ctx, o)
		return err
	}},
	{"services", func(ctx context.Context, s domain.Store, o string, ws *Workspace) (err error) {
		ws.Services, err = s.Services().List(ctx, o)
		return err
	}},
	{"staff", func(ctx context.Context, s domain.Store, o string, ws *Workspace) (err error) {
		ws.Staff, err = s.Staff().List(ctx, o)
		return err
	}},
	{"statuses", func(ctx context.Context, s domain.Store, o string, ws *Workspace) (err error) {
		ws.Statuses, err = s.Statuses().List(ctx, o)
		return err
	}},
	{"appointments", func(ctx context.Context, s domain.Store, o string, ws *Workspace) (err error) {
		ws.Appointments, err = s.Appointments().List(ctx, o)
		return err
	}},
}

// Load fetches the five collections concurrently. A failing collection is
// logged and reported in Failed; the others are still returned.
func (l *Loader) Load(ctx context.Context, ownerID string) Workspace {
	store := l.resolver.For(ownerID)

	var (
		g  errgroup.Group
		mu sync.Mutex
		ws Workspace
	)

	for _, f := range fetches {
		g.Go(func() error {
			var part Workspace
			err := f.run(ctx, store, ownerID, &part)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				log.Error().Err(err).
					Str("owner_id", ownerID).
					Str("collection", f.name).
					Msg("workspace load failed")
				ws.Partial = true
				ws.Failed = append(ws.Failed, f.name)
				return nil
			}
			merge(&ws, part)
			return nil
		})
	}
	_ = g.Wait()

	slices.Sort(ws.Failed)
	return ws
}

// Snapshot is the strict variant used by reports: any failure aborts.
func (l *Loader) Snapshot(ctx context.Context, ownerID string) (Workspace, error) {
	store := l.resolver.For(ownerID)

	g, gctx := errgroup.WithContext(ctx)
	parts := make([]Workspace, len(fetches))

	for i, f := range fetches {
		g.Go(func() error {
			if err := f.run(gctx, store, ownerID, &parts[i]); err != nil {
				return fmt.Errorf("loading %s: %w", f.name, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Workspace{}, err
	}

	var ws Workspace
	for _, p := range parts {
		merge(&ws, p)
	}
	return ws, nil
}

func merge(dst *Workspace, src Workspace) {
	if src.Clients != nil {
		dst.Clients = src.Clients
	}
	if src.Services != nil {
		dst.Services = src.Services
	}
	if src.Staff != nil {
		dst.Staff = src.Staff
	}
	if src.Statuses != nil {
		dst.Statuses = src.Statuses
	}
	if src.Appointments != nil {
		dst.Appointments = src.Appointments
	}
}
