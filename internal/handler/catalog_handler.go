package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/folio-backend/internal/response"
	"github.com/stemsi/folio-backend/internal/service"
)

type CatalogHandler struct {
	catalogService *service.CatalogService
}

func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// Get godoc
// GET /api/services
func (h *CatalogHandler) Get(c *gin.Context) {
	response.Success(c, http.StatusOK, h.catalogService.Get())
}
