package appointment

import (
	"context"
	"testing"

	"github.com/BruksfildServices01/clinic-agenda/internal/domain"
	"github.com/BruksfildServices01/clinic-agenda/internal/domain/calendar"
	"github.com/BruksfildServices01/clinic-agenda/internal/fixtures"
	"github.com/BruksfildServices01/clinic-agenda/internal/httperr"
	"github.com/BruksfildServices01/clinic-agenda/internal/infra/repository"
	"github.com/BruksfildServices01/clinic-agenda/internal/models"
)

const owner = "guest"

func newResolver() domain.StoreResolver {
	guest := repository.NewMemoryStore(func() fixtures.Workspace {
		return fixtures.Guest("2024-06-01")
	})
	return repository.NewRouter(owner, guest, nil)
}

func count(t *testing.T, r domain.StoreResolver) int {
	t.Helper()
	apts, err := r.For(owner).Appointments().List(context.Background(), owner)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	return len(apts)
}

func TestSaveAppointmentRepricesAndCreates(t *testing.T) {
	r := newResolver()
	uc := NewSaveAppointment(r, Policy{}, nil)
	before := count(t, r)

	ap := &models.Appointment{
		ClientID:           "cli-ana",
		ServiceID:          "svc-facial",
		StatusID:           "st-pending",
		Date:               "2024-06-10",
		StartTime:          "09:00",
		DurationMinutes:    60,
		BasePrice:          55,
		DiscountPercentage: 20,
		Price:              999,
	}
	res, err := uc.Execute(context.Background(), owner, ap)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if res.Appointment.ID == "" {
		t.Error("expected generated id")
	}
	if res.Appointment.Price != 44 {
		t.Errorf("Price = %v, want 44", res.Appointment.Price)
	}
	if count(t, r) != before+1 {
		t.Errorf("expected one more appointment")
	}
}

func TestSaveAppointmentValidationWritesNothing(t *testing.T) {
	r := newResolver()
	uc := NewSaveAppointment(r, Policy{}, nil)
	before := count(t, r)

	tests := []struct {
		name string
		ap   models.Appointment
		code string
	}{
		{"missing client", models.Appointment{ServiceID: "s", StatusID: "st", Date: "2024-06-10", StartTime: "09:00", DurationMinutes: 30}, "missing_client"},
		{"bad date", models.Appointment{ClientID: "c", ServiceID: "s", StatusID: "st", Date: "10/06/2024", StartTime: "09:00", DurationMinutes: 30}, "invalid_date_or_time"},
		{"discount above 100", models.Appointment{ClientID: "c", ServiceID: "s", StatusID: "st", Date: "2024-06-10", StartTime: "09:00", DurationMinutes: 30, DiscountPercentage: 120}, "invalid_discount"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ap := tt.ap
			if _, err := uc.Execute(context.Background(), owner, &ap); !httperr.IsBusiness(err, tt.code) {
				t.Errorf("expected %s, got %v", tt.code, err)
			}
		})
	}

	if count(t, r) != before {
		t.Error("failed validation must not write")
	}
}

func TestSaveAppointmentOverlaps(t *testing.T) {
	candidate := func() *models.Appointment {
		return &models.Appointment{
			ClientID:        "cli-jorge",
			ServiceID:       "svc-laser",
			StaffID:         "stf-pablo",
			StatusID:        "st-pending",
			Date:            "2024-06-02",
			StartTime:       "13:30",
			DurationMinutes: 45,
			BasePrice:       80,
		}
	}

	t.Run("warns by default", func(t *testing.T) {
		r := newResolver()
		res, err := NewSaveAppointment(r, Policy{}, nil).Execute(context.Background(), owner, candidate())
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if len(res.Overlaps) != 1 || res.Overlaps[0].ID != "apt-8" {
			t.Errorf("Overlaps = %+v", res.Overlaps)
		}
	})

	t.Run("rejects when configured", func(t *testing.T) {
		r := newResolver()
		before := count(t, r)
		_, err := NewSaveAppointment(r, Policy{RejectOverlaps: true}, nil).Execute(context.Background(), owner, candidate())
		if !httperr.IsBusiness(err, "time_conflict") {
			t.Fatalf("expected time_conflict, got %v", err)
		}
		if count(t, r) != before {
			t.Error("rejected save must not write")
		}
	})
}

func TestDropMoveAndCopy(t *testing.T) {
	r := newResolver()
	uc := NewDropAppointment(r, calendar.DefaultConfig(), Policy{}, nil)
	ctx := context.Background()
	before := count(t, r)

	res, err := uc.Execute(ctx, owner, "apt-3", calendar.Slot{Date: "2024-06-12", Hour: 11}, calendar.DropMove)
	if err != nil {
		t.Fatalf("move failed: %v", err)
	}
	if res.Appointment.ID != "apt-3" || res.Appointment.Date != "2024-06-12" || res.Appointment.StartTime != "11:00" {
		t.Errorf("unexpected moved appointment %+v", res.Appointment)
	}
	if count(t, r) != before {
		t.Error("move must not change the appointment count")
	}

	res, err = uc.Execute(ctx, owner, "apt-3", calendar.Slot{Date: "2024-06-19", Hour: 11}, calendar.DropCopy)
	if err != nil {
		t.Fatalf("copy failed: %v", err)
	}
	if res.Appointment.ID == "" || res.Appointment.ID == "apt-3" {
		t.Errorf("copy should get a fresh id, got %q", res.Appointment.ID)
	}
	if res.Appointment.ClientID != "cli-carmen" || res.Appointment.ServiceID != "svc-facial" {
		t.Errorf("copy lost attributes: %+v", res.Appointment)
	}
	if count(t, r) != before+1 {
		t.Error("copy must add exactly one appointment")
	}

	original, err := domain.Find(ctx, r.For(owner).Appointments(), owner, "apt-3")
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if original.Date != "2024-06-12" {
		t.Errorf("copy moved the original to %s", original.Date)
	}

	if _, err := uc.Execute(ctx, owner, "missing", calendar.Slot{Date: "2024-06-19", Hour: 11}, calendar.DropMove); !httperr.IsBusiness(err, "not_found") {
		t.Errorf("expected not_found, got %v", err)
	}
}

func TestResizeAppointment(t *testing.T) {
	r := newResolver()
	uc := NewResizeAppointment(r, calendar.DefaultConfig(), Policy{}, nil)

	res, err := uc.Execute(context.Background(), owner, "apt-4", calendar.EdgeBottom, 60)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if res.Appointment.DurationMinutes != 90 {
		t.Errorf("DurationMinutes = %d, want 90", res.Appointment.DurationMinutes)
	}

	if _, err := uc.Execute(context.Background(), owner, "apt-4", calendar.Edge("side"), 10); !httperr.IsBusiness(err, "invalid_edge") {
		t.Errorf("expected invalid_edge, got %v", err)
	}
}

func TestCompleteAndCancel(t *testing.T) {
	r := newResolver()
	ctx := context.Background()

	ap, err := NewCompleteAppointment(r, nil).Execute(ctx, owner, "apt-5")
	if err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	if ap.StatusID != "st-done" {
		t.Errorf("StatusID = %s, want st-done", ap.StatusID)
	}

	ap, err = NewCancelAppointment(r, nil).Execute(ctx, owner, "apt-8")
	if err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if ap.StatusID != "st-cancelled" {
		t.Errorf("StatusID = %s, want st-cancelled", ap.StatusID)
	}
}

func TestDeleteAppointment(t *testing.T) {
	r := newResolver()
	uc := NewDeleteAppointment(r, nil)
	before := count(t, r)

	if err := uc.Execute(context.Background(), owner, "apt-1"); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if count(t, r) != before-1 {
		t.Error("expected one appointment fewer")
	}
	if err := uc.Execute(context.Background(), owner, "apt-1"); !httperr.IsBusiness(err, "not_found") {
		t.Errorf("expected not_found, got %v", err)
	}
}

func TestDraftAppointment(t *testing.T) {
	uc := NewDraftAppointment(newResolver())

	draft, err := uc.Execute(context.Background(), owner, "cli-ana", "svc-laser")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if draft.BasePrice != 80 || draft.DiscountPercentage != 10 || draft.Price != 72 {
		t.Errorf("unexpected pricing %+v", draft)
	}
	if draft.DurationMinutes != 45 || draft.StatusID != "st-pending" {
		t.Errorf("unexpected defaults %+v", draft)
	}

	blank, err := uc.Execute(context.Background(), owner, "gone", "")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if blank.ClientID != "" || blank.Price != 0 {
		t.Errorf("unknown client should leave the draft blank: %+v", blank)
	}
}

func TestListAppointments(t *testing.T) {
	uc := NewListAppointments(newResolver())

	items, err := uc.Execute(context.Background(), owner, "2024-05-01", "2024-06-30")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	for i := 1; i < len(items); i++ {
		if items[i-1].Date > items[i].Date {
			t.Fatalf("items out of order at %d", i)
		}
	}
	for _, it := range items {
		if it.Date < "2024-05-01" || it.Date > "2024-06-30" {
			t.Errorf("%s outside range: %s", it.ID, it.Date)
		}
		if it.ID == "apt-5" && (it.StaffName != "" || it.EndTime != "09:30") {
			t.Errorf("unexpected row %+v", it)
		}
	}
}
