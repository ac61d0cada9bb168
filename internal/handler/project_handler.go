package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/folio-backend/internal/model"
	"github.com/stemsi/folio-backend/internal/response"
	"github.com/stemsi/folio-backend/internal/service"
)

type ProjectHandler struct {
	projectService *service.ProjectService
}

func NewProjectHandler(projectService *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// List godoc
// GET /api/projects?category=&featured=&limit=
func (h *ProjectHandler) List(c *gin.Context) {
	filter := model.ParseProjectFilter(c.Query("category"), c.Query("featured"), c.Query("limit"))

	projects, err := h.projectService.List(c.Request.Context(), filter)
	if err != nil {
		response.FailUpstream(c, http.StatusInternalServerError, "Failed to fetch projects")
		return
	}
	response.Success(c, http.StatusOK, projects)
}
