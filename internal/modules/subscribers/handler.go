package subscribers

import (
	"net/http"

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
	rg.GET("/admin/subscribers", middleware.AdminOnly(), h.Search)
}

func (h *Handler) Search(c *gin.Context) {
	subs := h.service.Search(c.Request.Context(), c.Query("q"))
	response.Success(c, http.StatusOK, gin.H{"subscribers": subs})
}
