package repository

import (
	"context"
	"errors"
	"slices"
	"strings"
	"testing"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/callbacks"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/clinic-agenda/internal/domain"
	"github.com/BruksfildServices01/clinic-agenda/internal/models"
)

// clientTable stands in for the clients table: reads answer from rows and
// updates count as applied when the id is present.
type clientTable struct {
	rows    map[string]models.Client
	reads   []string
	omitted []string
}

func newClientTable(t *testing.T, rows ...models.Client) (*gorm.DB, *clientTable) {
	t.Helper()

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=clinic dbname=clinic sslmode=disable",
	}), &gorm.Config{
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	table := &clientTable{rows: map[string]models.Client{}}
	for _, r := range rows {
		table.rows[r.ID] = r
	}

	err = db.Callback().Query().Replace("gorm:query", func(tx *gorm.DB) {
		callbacks.BuildQuerySQL(tx)
		table.reads = append(table.reads, tx.Statement.SQL.String())

		// Vars are id then owner_id.
		id, _ := tx.Statement.Vars[0].(string)
		owner, _ := tx.Statement.Vars[1].(string)
		row, ok := table.rows[id]
		if !ok || row.OwnerID != owner {
			tx.AddError(gorm.ErrRecordNotFound)
			return
		}
		if dest, ok := tx.Statement.Dest.(*models.Client); ok {
			dest.CreatedAt = row.CreatedAt
		}
		tx.RowsAffected = 1
	})
	if err != nil {
		t.Fatalf("replace query: %v", err)
	}

	err = db.Callback().Update().Replace("gorm:update", func(tx *gorm.DB) {
		table.omitted = append([]string(nil), tx.Statement.Omits...)
		c, ok := tx.Statement.Model.(*models.Client)
		if !ok {
			return
		}
		if _, exists := table.rows[c.ID]; exists {
			tx.RowsAffected = 1
		}
	})
	if err != nil {
		t.Fatalf("replace update: %v", err)
	}
	return db, table
}

func TestGormSaveKeepsCreatedAt(t *testing.T) {
	created := time.Date(2024, 3, 14, 9, 30, 0, 0, time.UTC)
	db, table := newClientTable(t, models.Client{ID: "cli-ana", OwnerID: "owner-1", Name: "Ana", CreatedAt: created})
	clients := NewGormCollection[models.Client, *models.Client](db)
	ctx := context.Background()

	// A PUT body carries no created_at.
	update := &models.Client{ID: "cli-ana", Name: "Ana López"}
	if err := clients.Save(ctx, "owner-1", update); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if !update.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt = %v, want %v", update.CreatedAt, created)
	}
	if !update.UpdatedAt.After(created) {
		t.Errorf("UpdatedAt = %v should be after creation", update.UpdatedAt)
	}
	if update.OwnerID != "owner-1" {
		t.Errorf("OwnerID = %q", update.OwnerID)
	}
	if len(table.reads) != 1 || !strings.Contains(table.reads[0], "owner_id = $2") {
		t.Errorf("created_at read not scoped to the owner: %v", table.reads)
	}
	if !slices.Contains(table.omitted, "created_at") {
		t.Errorf("update should leave created_at alone, omitted %v", table.omitted)
	}
}

func TestGormSaveUnknownRecord(t *testing.T) {
	db, table := newClientTable(t, models.Client{ID: "cli-ana", OwnerID: "owner-1", Name: "Ana"})
	clients := NewGormCollection[models.Client, *models.Client](db)
	ctx := context.Background()

	tests := []struct {
		name  string
		owner string
		id    string
	}{
		{"missing id", "owner-1", "cli-nadie"},
		{"other owner", "owner-2", "cli-ana"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table.omitted = nil
			err := clients.Save(ctx, tt.owner, &models.Client{ID: tt.id, Name: "X"})
			if !errors.Is(err, domain.ErrNotFound) {
				t.Errorf("expected ErrNotFound, got %v", err)
			}
			if table.omitted != nil {
				t.Error("nothing should be written for an unknown record")
			}
		})
	}
}
