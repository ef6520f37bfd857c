package directory

import (
	"net/http"
	"strconv"

	"fieldops/internal/middleware"
	"fieldops/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resources", middleware.AdminOnly(), h.CreateResource)
	rg.GET("/resources", h.ListResources)
	rg.GET("/resources/assigned/my", middleware.TechnicianOnly(), h.MyAssigned)
	rg.GET("/resources/:id", h.GetResource)
	rg.PATCH("/resources/:id", middleware.AdminOnly(), h.UpdateResource)
	rg.DELETE("/resources/:id", middleware.AdminOnly(), h.DeleteResource)
}

func (h *Handler) CreateResource(c *gin.Context) {
	var req CreateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	adminID := c.GetInt64("user_id")
	res, err := h.service.CreateResource(c.Request.Context(), adminID, req)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Assignee not found")
		case ErrInvalidRole:
			response.Error(c, http.StatusBadRequest, "INVALID_ROLE", "Assignee must be a technician")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create resource")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"resource": res})
}

func (h *Handler) GetResource(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid resource ID")
		return
	}

	res, reservations, err := h.service.GetResource(c.Request.Context(), id)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Resource not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load resource")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"resource": res, "reservations": reservations})
}

func (h *Handler) UpdateResource(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid resource ID")
		return
	}

	var req UpdateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	res, err := h.service.UpdateResource(c.Request.Context(), id, req)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Resource not found")
		case ErrInvalidTransition:
			response.Error(c, http.StatusConflict, "CONFLICT", "State change not allowed")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update resource")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"resource": res})
}

func (h *Handler) DeleteResource(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid resource ID")
		return
	}

	if err := h.service.DeleteResource(c.Request.Context(), id); err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Resource not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete resource")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

func (h *Handler) ListResources(c *gin.Context) {
	list, err := h.service.ListResources(c.Request.Context(), c.Query("state"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list resources")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"resources": list})
}

func (h *Handler) MyAssigned(c *gin.Context) {
	userID := c.GetInt64("user_id")
	exclude := c.DefaultQuery("exclude", "Completed")

	list, err := h.service.ListAssignedTo(c.Request.Context(), userID, exclude)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list resources")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"resources": list})
}
