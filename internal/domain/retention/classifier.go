package retention

import (
	"sort"

	"github.com/BruksfildServices01/clinic-agenda/internal/domain"
	"github.com/BruksfildServices01/clinic-agenda/internal/httperr"
	"github.com/BruksfildServices01/clinic-agenda/internal/models"
	"github.com/BruksfildServices01/clinic-agenda/internal/timezone"
)

type Status string

const (
	StatusOverdue  Status = "overdue"
	StatusUpcoming Status = "upcoming"
	StatusOnTime   Status = "ontime"
)

// UpcomingWindowDays is how close to the recommended date a client turns
// from on-time to upcoming.
const UpcomingWindowDays = 7

type Metric struct {
	ClientID           string `json:"client_id"`
	ClientName         string `json:"client_name"`
	ServiceID          string `json:"service_id"`
	ServiceName        string `json:"service_name"`
	LastVisit          string `json:"last_visit"`
	RecommendedDate    string `json:"recommended_date"`
	Status             Status `json:"status"`
	DaysPastDue        int    `json:"days_past_due"`
	DaysOverdue        int    `json:"days_overdue"`
	HasUpcomingBooking bool   `json:"has_upcoming_booking"`
}

type Summary struct {
	Overdue  int `json:"overdue"`
	Upcoming int `json:"upcoming"`
	OnTime   int `json:"ontime"`
}

// ClassifyDays maps days past the recommended date to a status.
func ClassifyDays(daysPastDue int) Status {
	switch {
	case daysPastDue > 0:
		return StatusOverdue
	case daysPastDue > -UpcomingWindowDays:
		return StatusUpcoming
	default:
		return StatusOnTime
	}
}

// Classify builds one metric per client, anchored on the client's most
// recent billable appointment across all services. Clients without billable
// history, whose anchor service is non-recurring or gone, or who finished
// that treatment produce no row.
func Classify(
	clients []models.Client,
	apts []models.Appointment,
	cat domain.Catalog,
	today string,
) ([]Metric, error) {
	todayOrd, err := timezone.DayOrdinal(today)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	out := []Metric{}
	for _, client := range clients {
		last, ok := LastBillable(apts, cat, client.ID, "")
		if !ok {
			continue
		}
		if client.HasFinished(last.ServiceID) {
			continue
		}
		service, ok := cat.Service(last.ServiceID)
		if !ok || service.RecurrenceDays == 0 {
			continue
		}

		recommended, err := timezone.AddDays(last.Date, service.RecurrenceDays)
		if err != nil {
			continue
		}
		recOrd, err := timezone.DayOrdinal(recommended)
		if err != nil {
			continue
		}

		days := todayOrd - recOrd
		m := Metric{
			ClientID:           client.ID,
			ClientName:         client.Name,
			ServiceID:          service.ID,
			ServiceName:        service.Name,
			LastVisit:          last.Date,
			RecommendedDate:    recommended,
			Status:             ClassifyDays(days),
			DaysPastDue:        days,
			HasUpcomingBooking: HasFutureBooking(apts, cat, client.ID, service.ID, today),
		}
		if m.Status == StatusOverdue {
			m.DaysOverdue = days
		}
		out = append(out, m)
	}
	return out, nil
}

var statusRank = map[Status]int{
	StatusOverdue:  0,
	StatusUpcoming: 1,
	StatusOnTime:   2,
}

// SortAttention orders metrics for the attention-required view: overdue by
// most days overdue, then upcoming and on-time by nearest recommended date.
func SortAttention(metrics []Metric) {
	sort.SliceStable(metrics, func(i, j int) bool {
		a, b := metrics[i], metrics[j]
		if statusRank[a.Status] != statusRank[b.Status] {
			return statusRank[a.Status] < statusRank[b.Status]
		}
		if a.Status == StatusOverdue {
			return a.DaysOverdue > b.DaysOverdue
		}
		return a.RecommendedDate < b.RecommendedDate
	})
}

func Summarize(metrics []Metric) Summary {
	var s Summary
	for _, m := range metrics {
		switch m.Status {
		case StatusOverdue:
			s.Overdue++
		case StatusUpcoming:
			s.Upcoming++
		case StatusOnTime:
			s.OnTime++
		}
	}
	return s
}
