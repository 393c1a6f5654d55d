package report

import (
	"context"

	"github.com/BruksfildServices01/clinic-agenda/internal/domain/finance"
	"github.com/BruksfildServices01/clinic-agenda/internal/httperr"
	"github.com/BruksfildServices01/clinic-agenda/internal/timezone"
	"github.com/BruksfildServices01/clinic-agenda/internal/usecase/workspace"
)

type FinanceQuery struct {
	From       string
	To         string
	StaffSort  finance.SortState
	ClientSort finance.SortState
}

type FinanceReport struct {
	From       string               `json:"from"`
	To         string               `json:"to"`
	Totals     finance.Metrics      `json:"totals"`
	Staff      []finance.StaffRow   `json:"staff"`
	Clients    []finance.ClientRow  `json:"clients"`
	Daily      []finance.DailyPoint `json:"daily"`
	StaffSort  finance.SortState    `json:"staff_sort"`
	ClientSort finance.SortState    `json:"client_sort"`
}

type Finance struct {
	loader *workspace.Loader
	sorter *finance.Sorter
}

func NewFinance(loader *workspace.Loader, sorter *finance.Sorter) *Finance {
	return &Finance{loader: loader, sorter: sorter}
}

func (uc *Finance) Execute(ctx context.Context, ownerID string, q FinanceQuery) (*FinanceReport, error) {
	for _, d := range []string{q.From, q.To} {
		if d == "" {
			continue
		}
		if _, err := timezone.ParseDate(d); err != nil {
			return nil, httperr.ErrBusiness("invalid_date_or_time")
		}
	}
	if q.From != "" && q.To != "" && q.From > q.To {
		return nil, httperr.ErrBusiness("invalid_date_range")
	}

	ws, err := uc.loader.Snapshot(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	cat := ws.Catalog()
	apts := finance.FilterRange(ws.Appointments, q.From, q.To)

	staff := finance.ByStaff(apts, cat)
	if err := finance.SortRows(uc.sorter, staff, finance.StaffColumns, q.StaffSort); err != nil {
		return nil, err
	}
	clients := finance.ByClient(apts, cat)
	if err := finance.SortRows(uc.sorter, clients, finance.ClientColumns, q.ClientSort); err != nil {
		return nil, err
	}

	return &FinanceReport{
		From:       q.From,
		To:         q.To,
		Totals:     finance.Compute(apts, cat),
		Staff:      staff,
		Clients:    clients,
		Daily:      finance.Daily(apts, cat),
		StaffSort:  q.StaffSort,
		ClientSort: q.ClientSort,
	}, nil
}
