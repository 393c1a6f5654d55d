package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/clinic-agenda/internal/config"
	"github.com/BruksfildServices01/clinic-agenda/internal/domain/calendar"
	"github.com/BruksfildServices01/clinic-agenda/internal/domain/finance"
	"github.com/BruksfildServices01/clinic-agenda/internal/fixtures"
	"github.com/BruksfildServices01/clinic-agenda/internal/infra/repository"
	"github.com/BruksfildServices01/clinic-agenda/internal/middleware"
)

const (
	testSecret = "test-secret"
	testToday  = "2024-06-01"
)

type server struct {
	t      *testing.T
	engine *gin.Engine
	token  string
}

func newServer(t *testing.T) *server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		StoreDriver:  "memory",
		JWTSecret:    testSecret,
		GuestOwnerID: "guest",
		ReportLocale: "es",
	}
	guest := repository.NewMemoryStore(func() fixtures.Workspace { return fixtures.Guest(testToday) })

	r := gin.New()
	RegisterRoutes(r, Deps{
		Config:   cfg,
		Resolver: repository.NewRouter(cfg.GuestOwnerID, guest, nil),
		Guest:    guest,
		Grid:     calendar.DefaultConfig(),
		Sorter:   finance.NewSorter(cfg.ReportLocale),
		Metrics:  middleware.NewMetrics(),
		Today:    func() string { return testToday },
	})

	s := &server{t: t, engine: r}

	w := s.do(http.MethodPost, "/api/auth/guest", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("guest token: status %d", w.Code)
	}
	var body struct {
		Token string `json:"token"`
	}
	decode(t, w, &body)
	s.token = body.Token
	return s
}

func (s *server) do(method, path string, body any) *httptest.ResponseRecorder {
	return s.doAs(s.token, method, path, body)
}

func (s *server) doAs(token, method, path string, body any) *httptest.ResponseRecorder {
	s.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			s.t.Fatalf("encode: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Code string `json:"error_code"`
	}
	decode(t, w, &body)
	return body.Code
}

func ownerToken(t *testing.T, owner string) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": owner}).
		SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return tok
}

func TestPublicRoutes(t *testing.T) {
	s := newServer(t)

	if w := s.doAs("", http.MethodGet, "/health", nil); w.Code != http.StatusOK {
		t.Errorf("health: status %d", w.Code)
	}
	if w := s.doAs("", http.MethodGet, "/api/me/clients", nil); w.Code != http.StatusUnauthorized {
		t.Errorf("secured without token: status %d", w.Code)
	}

	w := s.doAs("", http.MethodGet, "/metrics", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("metrics: status %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "clinic_http_requests_total") {
		t.Error("metrics output misses the request counter")
	}
}

func TestMe(t *testing.T) {
	s := newServer(t)

	w := s.do(http.MethodGet, "/api/me", nil)
	var me struct {
		OwnerID string `json:"owner_id"`
		Guest   bool   `json:"guest"`
		Store   string `json:"store"`
	}
	decode(t, w, &me)
	if me.OwnerID != "guest" || !me.Guest || me.Store != "memory" {
		t.Errorf("me = %+v", me)
	}
}

func TestCatalogCRUD(t *testing.T) {
	s := newServer(t)

	var list struct {
		Total int `json:"total"`
	}
	decode(t, s.do(http.MethodGet, "/api/me/clients", nil), &list)
	if list.Total != 4 {
		t.Fatalf("seeded clients = %d, want 4", list.Total)
	}

	w := s.do(http.MethodPost, "/api/me/clients", map[string]any{
		"id":                  "ignored",
		"name":                "  Lola  ",
		"discount_percentage": 5,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create: status %d body %s", w.Code, w.Body.String())
	}
	var created struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	decode(t, w, &created)
	if created.ID == "" || created.ID == "ignored" || created.Name != "Lola" {
		t.Errorf("created = %+v", created)
	}

	w = s.do(http.MethodPost, "/api/me/clients", map[string]any{"name": "Bad", "discount_percentage": 120})
	if w.Code != http.StatusBadRequest || errorCode(t, w) != "invalid_discount" {
		t.Errorf("invalid discount: status %d body %s", w.Code, w.Body.String())
	}

	w = s.do(http.MethodPost, "/api/me/clients", map[string]any{"name": "Bad", "email": "bad@"})
	if w.Code != http.StatusBadRequest || errorCode(t, w) != "invalid_request" {
		t.Errorf("invalid email: status %d body %s", w.Code, w.Body.String())
	}

	w = s.do(http.MethodPut, "/api/me/services/missing", map[string]any{"name": "X"})
	if w.Code != http.StatusNotFound {
		t.Errorf("update unknown: status %d", w.Code)
	}

	w = s.do(http.MethodDelete, "/api/me/clients/cli-carmen", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: status %d", w.Code)
	}
	var del struct {
		FutureAppointments int `json:"future_appointments"`
	}
	decode(t, w, &del)
	if del.FutureAppointments != 1 {
		t.Errorf("future appointments = %d, want 1", del.FutureAppointments)
	}
}

func TestAppointmentWrites(t *testing.T) {
	s := newServer(t)

	w := s.do(http.MethodPost, "/api/me/appointments", map[string]any{
		"client_id":           "cli-ana",
		"service_id":          "svc-facial",
		"staff_id":            "stf-lucia",
		"status_id":           "st-pending",
		"date":                "2024-06-03",
		"start_time":          "10:00",
		"duration_minutes":    60,
		"base_price":          55,
		"discount_percentage": 10,
		"price":               1,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create: status %d body %s", w.Code, w.Body.String())
	}
	var res struct {
		Appointment struct {
			ID    string  `json:"id"`
			Price float64 `json:"price"`
		} `json:"appointment"`
	}
	decode(t, w, &res)
	if res.Appointment.Price != 49.5 {
		t.Errorf("price = %v, want 49.5", res.Appointment.Price)
	}

	w = s.do(http.MethodPost, "/api/me/appointments", map[string]any{
		"service_id": "svc-facial",
		"status_id":  "st-pending",
		"date":       "2024-06-03",
		"start_time": "10:00",
	})
	if w.Code != http.StatusBadRequest || errorCode(t, w) != "missing_client" {
		t.Errorf("missing client: status %d body %s", w.Code, w.Body.String())
	}

	w = s.do(http.MethodPatch, "/api/me/appointments/apt-5/complete", nil)
	var completed struct {
		StatusID string `json:"status_id"`
	}
	decode(t, w, &completed)
	if completed.StatusID != "st-done" {
		t.Errorf("complete status = %q", completed.StatusID)
	}

	w = s.do(http.MethodPatch, "/api/me/appointments/nope/cancel", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("cancel unknown: status %d", w.Code)
	}

	if w := s.do(http.MethodDelete, "/api/me/appointments/"+res.Appointment.ID, nil); w.Code != http.StatusNoContent {
		t.Errorf("delete: status %d", w.Code)
	}
}

func TestCalendarGestures(t *testing.T) {
	s := newServer(t)

	w := s.do(http.MethodPost, "/api/me/appointments/apt-8/drop", map[string]any{
		"date": "2024-06-04", "hour": 9, "mode": "copy",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("copy: status %d body %s", w.Code, w.Body.String())
	}

	var list struct {
		Total int `json:"total"`
	}
	decode(t, s.do(http.MethodGet, "/api/me/appointments", nil), &list)
	if list.Total != 9 {
		t.Errorf("appointments after copy = %d, want 9", list.Total)
	}

	w = s.do(http.MethodPost, "/api/me/appointments/apt-8/drop", map[string]any{
		"date": "2024-06-04", "hour": 22, "mode": "move",
	})
	if w.Code != http.StatusBadRequest || errorCode(t, w) != "outside_window" {
		t.Errorf("drop outside window: status %d body %s", w.Code, w.Body.String())
	}

	w = s.do(http.MethodPost, "/api/me/appointments/apt-8/drop", map[string]any{"date": "2024-06-04", "mode": "move"})
	if w.Code != http.StatusBadRequest || errorCode(t, w) != "invalid_request" {
		t.Errorf("drop without hour: status %d", w.Code)
	}

	w = s.do(http.MethodPost, "/api/me/appointments/apt-8/resize", map[string]any{
		"edge": "bottom", "delta_pixels": 15,
	})
	var resized struct {
		Appointment struct {
			DurationMinutes int `json:"duration_minutes"`
		} `json:"appointment"`
	}
	decode(t, w, &resized)
	if resized.Appointment.DurationMinutes != 60 {
		t.Errorf("resized duration = %d, want 60", resized.Appointment.DurationMinutes)
	}

	w = s.do(http.MethodPost, "/api/me/appointments/apt-8/resize", map[string]any{"edge": "left"})
	if errorCode(t, w) != "invalid_edge" {
		t.Errorf("invalid edge: body %s", w.Body.String())
	}
}

func TestReports(t *testing.T) {
	s := newServer(t)

	var ret struct {
		Today   string `json:"today"`
		Summary struct {
			Overdue  int `json:"overdue"`
			Upcoming int `json:"upcoming"`
			OnTime   int `json:"ontime"`
		} `json:"summary"`
	}
	decode(t, s.do(http.MethodGet, "/api/me/reports/retention", nil), &ret)
	if ret.Today != testToday {
		t.Errorf("today = %q", ret.Today)
	}
	if ret.Summary.Overdue != 1 || ret.Summary.Upcoming != 1 || ret.Summary.OnTime != 1 {
		t.Errorf("summary = %+v", ret.Summary)
	}

	w := s.do(http.MethodGet, "/api/me/reports/retention?today=junk", nil)
	if errorCode(t, w) != "invalid_date_or_time" {
		t.Errorf("bad today: body %s", w.Body.String())
	}

	tests := []struct {
		name   string
		query  string
		status int
		code   string
	}{
		{"defaults", "", http.StatusOK, ""},
		{"sorted", "?staff_sort=revenue&staff_desc=true&client_sort=name", http.StatusOK, ""},
		{"unknown sort key", "?staff_sort=shoe_size", http.StatusBadRequest, "invalid_sort_key"},
		{"bad desc flag", "?client_desc=maybe", http.StatusBadRequest, "invalid_request"},
		{"reversed range", "?from=2024-06-02&to=2024-05-01", http.StatusBadRequest, "invalid_date_range"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(http.MethodGet, "/api/me/reports/finance"+tt.query, nil)
			if w.Code != tt.status {
				t.Fatalf("status = %d, want %d (%s)", w.Code, tt.status, w.Body.String())
			}
			if tt.code != "" && errorCode(t, w) != tt.code {
				t.Errorf("code = %q, want %q", errorCode(t, w), tt.code)
			}
		})
	}

	toggles := []struct {
		query string
		want  string
	}{
		{"?staff_toggle=revenue", `{"key":"revenue","desc":false}`},
		{"?staff_sort=revenue&staff_toggle=revenue", `{"key":"revenue","desc":true}`},
		{"?staff_sort=revenue&staff_desc=true&staff_toggle=revenue", `{"key":"revenue","desc":false}`},
		{"?staff_sort=revenue&staff_desc=true&staff_toggle=name", `{"key":"name","desc":false}`},
	}
	for _, tt := range toggles {
		var rep struct {
			StaffSort json.RawMessage `json:"staff_sort"`
		}
		decode(t, s.do(http.MethodGet, "/api/me/reports/finance"+tt.query, nil), &rep)
		if string(rep.StaffSort) != tt.want {
			t.Errorf("%s: staff_sort = %s, want %s", tt.query, rep.StaffSort, tt.want)
		}
	}

	w = s.do(http.MethodGet, "/api/me/clients/cli-ana/recommendations", nil)
	if w.Code != http.StatusOK {
		t.Errorf("recommendations: status %d", w.Code)
	}
}

func TestFinishedToggle(t *testing.T) {
	s := newServer(t)

	for _, want := range []bool{true, false} {
		w := s.do(http.MethodPost, "/api/me/clients/cli-ana/finished/svc-laser", nil)
		var body struct {
			Finished bool `json:"finished"`
		}
		decode(t, w, &body)
		if body.Finished != want {
			t.Errorf("finished = %v, want %v", body.Finished, want)
		}
	}
}

func TestWorkspace(t *testing.T) {
	s := newServer(t)

	s.do(http.MethodDelete, "/api/me/clients/cli-ana", nil)

	var ws struct {
		Clients []json.RawMessage `json:"clients"`
		Partial bool              `json:"partial"`
	}
	decode(t, s.do(http.MethodGet, "/api/me/workspace", nil), &ws)
	if len(ws.Clients) != 3 || ws.Partial {
		t.Fatalf("workspace clients = %d partial = %v", len(ws.Clients), ws.Partial)
	}

	if w := s.doAs(ownerToken(t, "clinic-42"), http.MethodPost, "/api/me/workspace/reset", nil); w.Code != http.StatusForbidden {
		t.Errorf("reset by owner: status %d", w.Code)
	}
	if w := s.do(http.MethodPost, "/api/me/workspace/reset", nil); w.Code != http.StatusNoContent {
		t.Fatalf("reset: status %d", w.Code)
	}

	decode(t, s.do(http.MethodGet, "/api/me/workspace", nil), &ws)
	if len(ws.Clients) != 4 {
		t.Errorf("clients after reset = %d, want 4", len(ws.Clients))
	}
}
