// Package finance folds appointment sets into revenue, cost and profit
// figures, overall and per staff member or client.
package finance

import (
	"sort"

	"github.com/BruksfildServices01/clinic-agenda/internal/domain"
	domainAppointment "github.com/BruksfildServices01/clinic-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-agenda/internal/models"
)

type Metrics struct {
	Revenue              float64 `json:"revenue"`
	Pending              float64 `json:"pending"`
	Cost                 float64 `json:"cost"`
	Profit               float64 `json:"profit"`
	BillableHours        float64 `json:"billable_hours"`
	BillableAppointments int     `json:"billable_appointments"`
	BillableClients      int     `json:"billable_clients"`
	ProfitPerClient      float64 `json:"profit_per_client"`
	ProfitPerHour        float64 `json:"profit_per_hour"`
}

type StaffRow struct {
	StaffID   string `json:"staff_id"`
	StaffName string `json:"staff_name"`
	Metrics
}

type ClientRow struct {
	ClientID   string `json:"client_id"`
	ClientName string `json:"client_name"`
	Metrics
}

type DailyPoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
	Cost    float64 `json:"cost"`
	Profit  float64 `json:"profit"`
}

type accumulator struct {
	m       Metrics
	clients map[string]struct{}
}

func newAccumulator() *accumulator {
	return &accumulator{clients: make(map[string]struct{})}
}

func (a *accumulator) add(ap models.Appointment, cat domain.Catalog) {
	st, ok := cat.Status(ap.StatusID)
	switch {
	case domainAppointment.IsBillable(st, ok):
		a.m.Revenue += ap.Price
		a.m.Cost += Cost(ap, cat)
		a.m.BillableHours += ap.Hours()
		a.m.BillableAppointments++
		a.clients[ap.ClientID] = struct{}{}
	case !domainAppointment.IsCancelled(st, ok):
		a.m.Pending += ap.Price
	}
}

func (a *accumulator) result() Metrics {
	m := a.m
	m.Profit = m.Revenue - m.Cost
	m.BillableClients = len(a.clients)
	if m.BillableClients > 0 {
		m.ProfitPerClient = m.Profit / float64(m.BillableClients)
	}
	if m.BillableHours > 0 {
		m.ProfitPerHour = m.Profit / m.BillableHours
	}
	return m
}

// Cost of one appointment: booked hours times the staff member's effective
// rate for the service. Unassigned or unknown staff cost nothing.
func Cost(ap models.Appointment, cat domain.Catalog) float64 {
	if ap.StaffID == "" {
		return 0
	}
	staff, ok := cat.StaffMember(ap.StaffID)
	if !ok {
		return 0
	}
	return ap.Hours() * staff.RateFor(ap.ServiceID)
}

// Compute aggregates the whole appointment set.
func Compute(apts []models.Appointment, cat domain.Catalog) Metrics {
	acc := newAccumulator()
	for _, ap := range apts {
		acc.add(ap, cat)
	}
	return acc.result()
}

// ByStaff applies the same formulas per assigned staff member, in order of
// first appearance. Unassigned appointments have no row.
func ByStaff(apts []models.Appointment, cat domain.Catalog) []StaffRow {
	var order []string
	groups := make(map[string]*accumulator)
	for _, ap := range apts {
		if ap.StaffID == "" {
			continue
		}
		acc, ok := groups[ap.StaffID]
		if !ok {
			acc = newAccumulator()
			groups[ap.StaffID] = acc
			order = append(order, ap.StaffID)
		}
		acc.add(ap, cat)
	}

	rows := make([]StaffRow, 0, len(order))
	for _, id := range order {
		rows = append(rows, StaffRow{
			StaffID:   id,
			StaffName: cat.StaffName(id),
			Metrics:   groups[id].result(),
		})
	}
	return rows
}

// ByClient applies the same formulas per client, in order of first appearance.
func ByClient(apts []models.Appointment, cat domain.Catalog) []ClientRow {
	var order []string
	groups := make(map[string]*accumulator)
	for _, ap := range apts {
		acc, ok := groups[ap.ClientID]
		if !ok {
			acc = newAccumulator()
			groups[ap.ClientID] = acc
			order = append(order, ap.ClientID)
		}
		acc.add(ap, cat)
	}

	rows := make([]ClientRow, 0, len(order))
	for _, id := range order {
		rows = append(rows, ClientRow{
			ClientID:   id,
			ClientName: cat.ClientName(id),
			Metrics:    groups[id].result(),
		})
	}
	return rows
}

// Daily returns billable revenue, cost and profit per day, oldest first.
func Daily(apts []models.Appointment, cat domain.Catalog) []DailyPoint {
	days := make(map[string]*DailyPoint)
	for _, ap := range apts {
		if !domainAppointment.IsBillable(cat.Status(ap.StatusID)) {
			continue
		}
		p, ok := days[ap.Date]
		if !ok {
			p = &DailyPoint{Date: ap.Date}
			days[ap.Date] = p
		}
		p.Revenue += ap.Price
		p.Cost += Cost(ap, cat)
	}

	out := make([]DailyPoint, 0, len(days))
	for _, p := range days {
		p.Profit = p.Revenue - p.Cost
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// FilterRange keeps appointments dated within [from, to]. An empty bound is
// open.
func FilterRange(apts []models.Appointment, from, to string) []models.Appointment {
	out := make([]models.Appointment, 0, len(apts))
	for _, ap := range apts {
		if from != "" && ap.Date < from {
			continue
		}
		if to != "" && ap.Date > to {
			continue
		}
		out = append(out, ap)
	}
	return out
}
