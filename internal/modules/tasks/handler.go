package tasks

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
	rg.POST("/tasks/assign", middleware.AdminOnly(), h.AssignTask)
	rg.POST("/tasks/repair", middleware.AdminOnly(), h.RepairIntake)
	rg.GET("/tasks", middleware.AdminOnly(), h.ListAll)
	rg.GET("/tasks/my", middleware.TechnicianOnly(), h.MyTasks)
	rg.POST("/tasks/resources/:id/complete", middleware.TechnicianOnly(), h.CompleteTask)
}

func (h *Handler) AssignTask(c *gin.Context) {
	var req AssignTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	adminID := c.GetInt64("user_id")
	task, resource, err := h.service.AssignTask(c.Request.Context(), adminID, req)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Resource or assignee not found")
		case ErrInvalidRole:
			response.Error(c, http.StatusBadRequest, "INVALID_ROLE", "Tasks can only be assigned to technicians")
		case ErrConflict:
			response.Error(c, http.StatusConflict, "CONFLICT", "Resource is already completed")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to assign task")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"task": task, "resource": resource})
}

func (h *Handler) CompleteTask(c *gin.Context) {
	resourceID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid resource ID")
		return
	}

	var req CompleteTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	assigneeID := c.GetInt64("user_id")
	resource, err := h.service.CompleteTask(c.Request.Context(), assigneeID, resourceID, req)
	if err != nil {
		switch err {
		case ErrInvalid:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "GPS coordinates and photo are required")
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "No such resource assigned to you")
		case ErrConflict:
			response.Error(c, http.StatusConflict, "CONFLICT", "Resource is not in an assignable state")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to complete task")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"resource": resource})
}

func (h *Handler) RepairIntake(c *gin.Context) {
	var req RepairIntakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	adminID := c.GetInt64("user_id")
	resource, err := h.service.RepairIntake(c.Request.Context(), adminID, req)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Assignee not found")
		case ErrInvalidRole:
			response.Error(c, http.StatusBadRequest, "INVALID_ROLE", "Tasks can only be assigned to technicians")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to open repair task")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"resource": resource})
}

func (h *Handler) MyTasks(c *gin.Context) {
	assigneeID := c.GetInt64("user_id")
	completedOnly := c.Query("completed") == "true"

	list, err := h.service.ListForAssignee(c.Request.Context(), assigneeID, completedOnly)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list tasks")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"tasks": list})
}

func (h *Handler) ListAll(c *gin.Context) {
	list, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list tasks")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"tasks": list})
}
