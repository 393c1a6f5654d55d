package finance

import (
	"testing"

	"github.com/BruksfildServices01/clinic-agenda/internal/httperr"
)

func TestSortStateToggle(t *testing.T) {
	var s SortState

	s = s.Toggle("revenue")
	if s.Key != "revenue" || s.Desc {
		t.Fatalf("first request = %+v, want revenue asc", s)
	}
	s = s.Toggle("revenue")
	if !s.Desc {
		t.Fatalf("second request = %+v, want revenue desc", s)
	}
	s = s.Toggle("revenue")
	if s.Desc {
		t.Fatalf("third request = %+v, want revenue asc", s)
	}
	s = s.Toggle("name")
	if s.Key != "name" || s.Desc {
		t.Fatalf("new key = %+v, want name asc", s)
	}
}

func TestSortRowsNumericStable(t *testing.T) {
	rows := []StaffRow{
		{StaffID: "a", Metrics: Metrics{Revenue: 10}},
		{StaffID: "b", Metrics: Metrics{Revenue: 5}},
		{StaffID: "c", Metrics: Metrics{Revenue: 10}},
		{StaffID: "d", Metrics: Metrics{Revenue: 1}},
	}
	sorter := NewSorter("es")

	var st SortState
	st = st.Toggle("revenue")
	if err := SortRows(sorter, rows, StaffColumns, st); err != nil {
		t.Fatalf("SortRows failed: %v", err)
	}
	assertOrder(t, rows, "d", "b", "a", "c")

	st = st.Toggle("revenue")
	if err := SortRows(sorter, rows, StaffColumns, st); err != nil {
		t.Fatalf("SortRows failed: %v", err)
	}
	// Equal keys keep their relative order in both directions.
	assertOrder(t, rows, "a", "c", "b", "d")
}

func TestSortRowsLocaleAware(t *testing.T) {
	rows := []ClientRow{
		{ClientID: "1", ClientName: "Zoe"},
		{ClientID: "2", ClientName: "Ñandú"},
		{ClientID: "3", ClientName: "álvaro"},
		{ClientID: "4", ClientName: "Nora"},
	}

	if err := SortRows(NewSorter("es"), rows, ClientColumns, SortState{Key: "name"}); err != nil {
		t.Fatalf("SortRows failed: %v", err)
	}

	want := []string{"álvaro", "Nora", "Ñandú", "Zoe"}
	for i, name := range want {
		if rows[i].ClientName != name {
			t.Errorf("position %d = %s, want %s", i, rows[i].ClientName, name)
		}
	}
}

func TestSortRowsUnknownKey(t *testing.T) {
	err := SortRows(NewSorter("es"), []StaffRow{}, StaffColumns, SortState{Key: "shoe_size"})
	if !httperr.IsBusiness(err, "invalid_sort_key") {
		t.Errorf("expected invalid_sort_key, got %v", err)
	}
	if err := SortRows(NewSorter("es"), []StaffRow{}, StaffColumns, SortState{}); err != nil {
		t.Errorf("empty key should be a no-op, got %v", err)
	}
}

func assertOrder(t *testing.T, rows []StaffRow, ids ...string) {
	t.Helper()
	for i, id := range ids {
		if rows[i].StaffID != id {
			t.Errorf("position %d = %s, want %s", i, rows[i].StaffID, id)
		}
	}
}
