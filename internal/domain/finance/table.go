package finance

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/BruksfildServices01/clinic-agenda/internal/httperr"
)

// SortState is the sort applied to a breakdown table.
type SortState struct {
	Key  string `json:"key"`
	Desc bool   `json:"desc"`
}

// Toggle returns the state after a sort request on key: the same key flips
// the direction, a new key starts ascending.
func (s SortState) Toggle(key string) SortState {
	if s.Key == key {
		return SortState{Key: key, Desc: !s.Desc}
	}
	return SortState{Key: key}
}

// Column extracts a sortable value from a row. Exactly one of Text and
// Number is set.
type Column[T any] struct {
	Text   func(T) string
	Number func(T) float64
}

// Sorter compares text columns with the collation rules of a locale.
type Sorter struct {
	tag language.Tag
}

func NewSorter(locale string) *Sorter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Spanish
	}
	return &Sorter{tag: tag}
}

// SortRows sorts rows in place, stable for equal keys. An empty key leaves
// the order untouched.
func SortRows[T any](s *Sorter, rows []T, cols map[string]Column[T], st SortState) error {
	if st.Key == "" {
		return nil
	}
	col, ok := cols[st.Key]
	if !ok {
		return httperr.ErrBusiness("invalid_sort_key")
	}

	var compare func(a, b T) int
	if col.Text != nil {
		// A Collator keeps internal buffers; one per sort call.
		coll := collate.New(s.tag, collate.IgnoreCase)
		compare = func(a, b T) int {
			return coll.CompareString(col.Text(a), col.Text(b))
		}
	} else {
		compare = func(a, b T) int {
			return cmp.Compare(col.Number(a), col.Number(b))
		}
	}

	if st.Desc {
		asc := compare
		compare = func(a, b T) int { return asc(b, a) }
	}

	slices.SortStableFunc(rows, compare)
	return nil
}

func metricColumns[T any](get func(T) Metrics) map[string]Column[T] {
	num := func(f func(Metrics) float64) Column[T] {
		return Column[T]{Number: func(r T) float64 { return f(get(r)) }}
	}
	return map[string]Column[T]{
		"appointments":      num(func(m Metrics) float64 { return float64(m.BillableAppointments) }),
		"clients":           num(func(m Metrics) float64 { return float64(m.BillableClients) }),
		"hours":             num(func(m Metrics) float64 { return m.BillableHours }),
		"revenue":           num(func(m Metrics) float64 { return m.Revenue }),
		"pending":           num(func(m Metrics) float64 { return m.Pending }),
		"cost":              num(func(m Metrics) float64 { return m.Cost }),
		"profit":            num(func(m Metrics) float64 { return m.Profit }),
		"profit_per_client": num(func(m Metrics) float64 { return m.ProfitPerClient }),
		"profit_per_hour":   num(func(m Metrics) float64 { return m.ProfitPerHour }),
	}
}

var StaffColumns = func() map[string]Column[StaffRow] {
	cols := metricColumns(func(r StaffRow) Metrics { return r.Metrics })
	cols["name"] = Column[StaffRow]{Text: func(r StaffRow) string { return r.StaffName }}
	return cols
}()

var ClientColumns = func() map[string]Column[ClientRow] {
	cols := metricColumns(func(r ClientRow) Metrics { return r.Metrics })
	cols["name"] = Column[ClientRow]{Text: func(r ClientRow) string { return r.ClientName }}
	return cols
}()
