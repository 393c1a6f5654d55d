package repository

import "github.com/BruksfildServices01/clinic-agenda/internal/domain"

// Router sends the guest owner to the in-memory workspace and everyone else
// to the configured backend.
type Router struct {
	guestID string
	guest   domain.Store
	backend domain.Store
}

func NewRouter(guestID string, guest, backend domain.Store) *Router {
	return &Router{guestID: guestID, guest: guest, backend: backend}
}

func (r *Router) For(ownerID string) domain.Store {
	if ownerID == r.guestID || r.backend == nil {
		return r.guest
	}
	return r.backend
}

func (r *Router) IsGuest(ownerID string) bool {
	return ownerID == r.guestID
}

var _ domain.StoreResolver = (*Router)(nil)
