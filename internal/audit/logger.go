package audit

import (
	"encoding/json"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-agenda/internal/models"
)

// Sink persists audit events.
type Sink interface {
	Write(ev Event) error
}

// Logger stores events in the audit_logs table.
type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Write(ev Event) error {
	entry := models.AuditLog{
		OwnerID:  ev.OwnerID,
		Action:   ev.Action,
		Entity:   ev.Entity,
		EntityID: ev.EntityID,
		Metadata: metadataJSON(ev.Metadata),
	}
	return l.db.Create(&entry).Error
}

// LogSink writes events to the application log, for deployments without a
// database.
type LogSink struct{}

func (LogSink) Write(ev Event) error {
	log.Info().
		Str("owner_id", ev.OwnerID).
		Str("action", ev.Action).
		Str("entity", ev.Entity).
		Str("entity_id", ev.EntityID).
		RawJSON("metadata", []byte(orEmpty(metadataJSON(ev.Metadata)))).
		Msg("audit")
	return nil
}

func metadataJSON(metadata any) string {
	if metadata == nil {
		return ""
	}
	b, err := json.Marshal(metadata)
	if err != nil {
		return ""
	}
	return string(b)
}

func orEmpty(s string) string {
	if s == "" {
		return "{}"
	}
	return s
}
