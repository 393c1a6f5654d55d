package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/clinic-agenda/internal/domain"
	"github.com/BruksfildServices01/clinic-agenda/internal/models"
)

const documentsSchema = `
CREATE TABLE IF NOT EXISTS documents (
    owner_id   TEXT NOT NULL,
    kind       TEXT NOT NULL,
    id         TEXT NOT NULL,
    body       TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL,
    PRIMARY KEY (owner_id, kind, id)
);

CREATE INDEX IF NOT EXISTS idx_documents_owner_kind ON documents(owner_id, kind, created_at);
`

// DocumentCollection stores each record as a JSON document in one shared
// table, keyed by owner, kind and id.
type DocumentCollection[T any, P record[T]] struct {
	db   *sql.DB
	kind string
	now  func() time.Time
}

func NewDocumentCollection[T any, P record[T]](db *sql.DB, kind string) *DocumentCollection[T, P] {
	return &DocumentCollection[T, P]{db: db, kind: kind, now: time.Now}
}

func (r *DocumentCollection[T, P]) List(ctx context.Context, ownerID string) ([]T, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT body FROM documents WHERE owner_id = ? AND kind = ? ORDER BY created_at, rowid`,
		ownerID, r.kind,
	)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", r.kind, err)
	}
	defer rows.Close()

	items := []T{}
	for rows.Next() {
		var body string
		if err := rows.Scan(&body); err != nil {
			return nil, fmt.Errorf("scanning %s: %w", r.kind, err)
		}
		var item T
		if err := json.Unmarshal([]byte(body), &item); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", r.kind, err)
		}
		P(&item).SetOwnerID(ownerID)
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *DocumentCollection[T, P]) Save(ctx context.Context, ownerID string, entity *T) error {
	p := P(entity)
	p.SetOwnerID(ownerID)
	now := r.now()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if p.GetID() == "" {
		p.SetID(uuid.NewString())
		stamp(entity, time.Time{}, now)
		body, err := json.Marshal(entity)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO documents (owner_id, kind, id, body, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
			ownerID, r.kind, p.GetID(), string(body), now.UnixNano(), now.UnixNano(),
		); err != nil {
			return fmt.Errorf("inserting %s: %w", r.kind, err)
		}
		return tx.Commit()
	}

	var created int64
	err = tx.QueryRowContext(ctx,
		`SELECT created_at FROM documents WHERE owner_id = ? AND kind = ? AND id = ?`,
		ownerID, r.kind, p.GetID(),
	).Scan(&created)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("loading %s: %w", r.kind, err)
	}

	stamp(entity, time.Unix(0, created), now)
	body, err := json.Marshal(entity)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE documents SET body = ?, updated_at = ? WHERE owner_id = ? AND kind = ? AND id = ?`,
		string(body), now.UnixNano(), ownerID, r.kind, p.GetID(),
	); err != nil {
		return fmt.Errorf("updating %s: %w", r.kind, err)
	}
	return tx.Commit()
}

func (r *DocumentCollection[T, P]) Delete(ctx context.Context, ownerID string, id string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM documents WHERE owner_id = ? AND kind = ? AND id = ?`,
		ownerID, r.kind, id,
	)
	if err != nil {
		return fmt.Errorf("deleting %s: %w", r.kind, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DocumentStore is the local single-file backend.
type DocumentStore struct {
	clients      *DocumentCollection[models.Client, *models.Client]
	services     *DocumentCollection[models.Service, *models.Service]
	staff        *DocumentCollection[models.Staff, *models.Staff]
	statuses     *DocumentCollection[models.AppStatus, *models.AppStatus]
	appointments *DocumentCollection[models.Appointment, *models.Appointment]
}

// NewDocumentStore creates the documents table if needed.
func NewDocumentStore(ctx context.Context, db *sql.DB) (*DocumentStore, error) {
	if _, err := db.ExecContext(ctx, documentsSchema); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return &DocumentStore{
		clients:      NewDocumentCollection[models.Client](db, "clients"),
		services:     NewDocumentCollection[models.Service](db, "services"),
		staff:        NewDocumentCollection[models.Staff](db, "staff"),
		statuses:     NewDocumentCollection[models.AppStatus](db, "statuses"),
		appointments: NewDocumentCollection[models.Appointment](db, "appointments"),
	}, nil
}

func (s *DocumentStore) Clients() domain.Collection[models.Client]     { return s.clients }
func (s *DocumentStore) Services() domain.Collection[models.Service]   { return s.services }
func (s *DocumentStore) Staff() domain.Collection[models.Staff]        { return s.staff }
func (s *DocumentStore) Statuses() domain.Collection[models.AppStatus] { return s.statuses }
func (s *DocumentStore) Appointments() domain.Collection[models.Appointment] {
	return s.appointments
}

var _ domain.Store = (*DocumentStore)(nil)
