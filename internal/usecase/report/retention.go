package report

import (
	"context"
	"sort"

	"github.com/BruksfildServices01/clinic-agenda/internal/domain/retention"
	"github.com/BruksfildServices01/clinic-agenda/internal/httperr"
	"github.com/BruksfildServices01/clinic-agenda/internal/models"
	"github.com/BruksfildServices01/clinic-agenda/internal/timezone"
	"github.com/BruksfildServices01/clinic-agenda/internal/usecase/workspace"
)

type RetentionReport struct {
	Today   string             `json:"today"`
	Summary retention.Summary  `json:"summary"`
	Metrics []retention.Metric `json:"metrics"`
}

type ClientDetail struct {
	Client          models.Client              `json:"client"`
	Recommendations []retention.Recommendation `json:"recommendations"`
	History         []models.Appointment       `json:"history"`
}

type Retention struct {
	loader *workspace.Loader
	today  func() string
}

func NewRetention(loader *workspace.Loader, today func() string) *Retention {
	return &Retention{loader: loader, today: today}
}

func (uc *Retention) resolveToday(today string) (string, error) {
	if today == "" {
		return uc.today(), nil
	}
	if _, err := timezone.ParseDate(today); err != nil {
		return "", httperr.ErrBusiness("invalid_date_or_time")
	}
	return today, nil
}

// Execute classifies every client as of today (the clinic's current date when
// empty), most urgent first.
func (uc *Retention) Execute(ctx context.Context, ownerID, today string) (*RetentionReport, error) {
	today, err := uc.resolveToday(today)
	if err != nil {
		return nil, err
	}

	ws, err := uc.loader.Snapshot(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	metrics, err := retention.Classify(ws.Clients, ws.Appointments, ws.Catalog(), today)
	if err != nil {
		return nil, err
	}
	retention.SortAttention(metrics)

	return &RetentionReport{
		Today:   today,
		Summary: retention.Summarize(metrics),
		Metrics: metrics,
	}, nil
}

// Client returns the detail view of one client: per-service recommended
// next visits and the appointment history, newest first.
func (uc *Retention) Client(ctx context.Context, ownerID, clientID, today string) (*ClientDetail, error) {
	today, err := uc.resolveToday(today)
	if err != nil {
		return nil, err
	}

	ws, err := uc.loader.Snapshot(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	cat := ws.Catalog()
	client, ok := cat.Client(clientID)
	if !ok {
		return nil, httperr.ErrBusiness("not_found")
	}

	history := []models.Appointment{}
	for _, ap := range ws.Appointments {
		if ap.ClientID == clientID {
			history = append(history, ap)
		}
	}
	sort.SliceStable(history, func(i, j int) bool {
		if history[i].Date != history[j].Date {
			return history[i].Date > history[j].Date
		}
		return history[i].StartTime > history[j].StartTime
	})

	return &ClientDetail{
		Client:          client,
		Recommendations: retention.Recommendations(client, ws.Appointments, cat, today),
		History:         history,
	}, nil
}

// Summary is the digest used by the scheduled job.
func (uc *Retention) Summary(ctx context.Context, ownerID string) (retention.Summary, error) {
	rep, err := uc.Execute(ctx, ownerID, "")
	if err != nil {
		return retention.Summary{}, err
	}
	return rep.Summary, nil
}
