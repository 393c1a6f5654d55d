package repository

import (
	"encoding/json"
	"time"

	"github.com/BruksfildServices01/clinic-agenda/internal/domain"
)

// record is the pointer form of a stored model.
type record[T any] interface {
	*T
	domain.Entity
}

type timestamped interface {
	GetCreatedAt() time.Time
	Stamp(created, now time.Time)
}

// stamp sets timestamps on records that carry them. created is the stored
// creation time on update, zero on create.
func stamp(v any, created, now time.Time) {
	t, ok := v.(timestamped)
	if !ok {
		return
	}
	if created.IsZero() {
		created = t.GetCreatedAt()
	}
	t.Stamp(created, now)
}

func createdAt(v any) time.Time {
	if t, ok := v.(timestamped); ok {
		return t.GetCreatedAt()
	}
	return time.Time{}
}

// clone deep-copies a record through its JSON form. OwnerID is not part of
// it and is restored by the caller.
func clone[T any](v T) T {
	var out T
	b, err := json.Marshal(v)
	if err != nil {
		return v
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return v
	}
	return out
}
