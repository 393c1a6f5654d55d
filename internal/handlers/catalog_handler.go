package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-agenda/internal/domain"
	"github.com/BruksfildServices01/clinic-agenda/internal/httperr"
	"github.com/BruksfildServices01/clinic-agenda/internal/httpresp"
	"github.com/BruksfildServices01/clinic-agenda/internal/middleware"
	"github.com/BruksfildServices01/clinic-agenda/internal/usecase/catalog"
)

// CatalogHandler serves list/create/update/delete for one catalog entity
// (clients, services, staff or statuses).
type CatalogHandler[T any, P interface {
	*T
	domain.Entity
}] struct {
	name   string
	list   *catalog.List[T]
	save   *catalog.Save[T]
	remove *catalog.Delete[T]
}

func NewCatalogHandler[T any, P interface {
	*T
	domain.Entity
}](
	name string,
	list *catalog.List[T],
	save *catalog.Save[T],
	remove *catalog.Delete[T],
) *CatalogHandler[T, P] {
	return &CatalogHandler[T, P]{name: name, list: list, save: save, remove: remove}
}

func (h *CatalogHandler[T, P]) List(c *gin.Context) {
	items, err := h.list.Execute(c.Request.Context(), middleware.OwnerID(c))
	if err != nil {
		httperr.From(c, err, h.name+"_list_failed")
		return
	}

	httpresp.List(c, items)
}

func (h *CatalogHandler[T, P]) Create(c *gin.Context) {
	h.write(c, "", http.StatusCreated)
}

func (h *CatalogHandler[T, P]) Update(c *gin.Context) {
	h.write(c, c.Param("id"), http.StatusOK)
}

// write ignores any id in the body; the path decides create or update.
func (h *CatalogHandler[T, P]) write(c *gin.Context, id string, status int) {
	var item T
	if err := c.ShouldBindJSON(&item); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}
	P(&item).SetID(id)

	if err := h.save.Execute(c.Request.Context(), middleware.OwnerID(c), &item); err != nil {
		httperr.From(c, err, h.name+"_save_failed")
		return
	}

	c.JSON(status, item)
}

func (h *CatalogHandler[T, P]) Delete(c *gin.Context) {
	res, err := h.remove.Execute(c.Request.Context(), middleware.OwnerID(c), c.Param("id"))
	if err != nil {
		httperr.From(c, err, h.name+"_delete_failed")
		return
	}

	httpresp.OK(c, res)
}
