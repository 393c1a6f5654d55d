package domain

import "github.com/BruksfildServices01/clinic-agenda/internal/models"

// NotFoundName is shown wherever a reference points to a deleted record.
const NotFoundName = "Not found"

// Catalog indexes the owner's catalog collections by id. Lookups never fail:
// dangling references resolve to ok == false and a placeholder name.
type Catalog struct {
	Clients  map[string]models.Client
	Services map[string]models.Service
	Staff    map[string]models.Staff
	Statuses map[string]models.AppStatus

	// StatusOrder keeps the catalog order of statuses.
	StatusOrder []models.AppStatus
}

func NewCatalog(
	clients []models.Client,
	services []models.Service,
	staff []models.Staff,
	statuses []models.AppStatus,
) Catalog {
	c := Catalog{
		Clients:     make(map[string]models.Client, len(clients)),
		Services:    make(map[string]models.Service, len(services)),
		Staff:       make(map[string]models.Staff, len(staff)),
		Statuses:    make(map[string]models.AppStatus, len(statuses)),
		StatusOrder: statuses,
	}
	for _, v := range clients {
		c.Clients[v.ID] = v
	}
	for _, v := range services {
		c.Services[v.ID] = v
	}
	for _, v := range staff {
		c.Staff[v.ID] = v
	}
	for _, v := range statuses {
		c.Statuses[v.ID] = v
	}
	return c
}

func (c Catalog) Client(id string) (models.Client, bool) {
	v, ok := c.Clients[id]
	return v, ok
}

func (c Catalog) Service(id string) (models.Service, bool) {
	v, ok := c.Services[id]
	return v, ok
}

func (c Catalog) StaffMember(id string) (models.Staff, bool) {
	v, ok := c.Staff[id]
	return v, ok
}

func (c Catalog) Status(id string) (models.AppStatus, bool) {
	v, ok := c.Statuses[id]
	return v, ok
}

func (c Catalog) ClientName(id string) string {
	if v, ok := c.Clients[id]; ok {
		return v.Name
	}
	return NotFoundName
}

func (c Catalog) ServiceName(id string) string {
	if v, ok := c.Services[id]; ok {
		return v.Name
	}
	return NotFoundName
}

func (c Catalog) StaffName(id string) string {
	if v, ok := c.Staff[id]; ok {
		return v.Name
	}
	return NotFoundName
}

func (c Catalog) StatusName(id string) string {
	if v, ok := c.Statuses[id]; ok {
		return v.Name
	}
	return NotFoundName
}
