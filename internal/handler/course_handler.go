package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/folio-backend/internal/response"
	"github.com/stemsi/folio-backend/internal/service"
)

type CourseHandler struct {
	courseService *service.CourseService
}

func NewCourseHandler(courseService *service.CourseService) *CourseHandler {
	return &CourseHandler{courseService: courseService}
}

// List godoc
// GET /api/courses
func (h *CourseHandler) List(c *gin.Context) {
	courses, err := h.courseService.ListFeatured(c.Request.Context())
	if err != nil {
		response.FailUpstream(c, http.StatusInternalServerError, "Failed to fetch courses")
		return
	}
	response.Success(c, http.StatusOK, courses)
}
