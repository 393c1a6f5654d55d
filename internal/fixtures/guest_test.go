package fixtures

import (
	"testing"

	"github.com/BruksfildServices01/clinic-agenda/internal/domain"
	"github.com/BruksfildServices01/clinic-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-agenda/internal/domain/retention"
)

func TestGuestWorkspaceIsConsistent(t *testing.T) {
	ws := Guest("2024-06-01")
	cat := domain.NewCatalog(ws.Clients, ws.Services, ws.Staff, ws.Statuses)

	for _, ap := range ws.Appointments {
		ap := ap
		if err := appointment.Validate(&ap); err != nil {
			t.Errorf("%s: %v", ap.ID, err)
		}
		if _, ok := cat.Client(ap.ClientID); !ok {
			t.Errorf("%s references unknown client %s", ap.ID, ap.ClientID)
		}
		if ap.Price != appointment.FinalPrice(ap.BasePrice, ap.DiscountPercentage) {
			t.Errorf("%s price out of sync", ap.ID)
		}
	}

	if _, err := appointment.DefaultBillable(ws.Statuses); err != nil {
		t.Errorf("guest workspace needs a billable status: %v", err)
	}
}

func TestGuestWorkspaceRetentionMix(t *testing.T) {
	ws := Guest("2024-06-01")
	cat := domain.NewCatalog(ws.Clients, ws.Services, ws.Staff, ws.Statuses)

	metrics, err := retention.Classify(ws.Clients, ws.Appointments, cat, "2024-06-01")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	sum := retention.Summarize(metrics)
	if sum.Overdue == 0 || sum.Upcoming == 0 || sum.OnTime == 0 {
		t.Errorf("expected every retention status in the demo, got %+v", sum)
	}
}
