package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cookie-sid/job-application-tracker/internal/auth"
	"github.com/cookie-sid/job-application-tracker/internal/service"
)

// DashboardHandler serves the aggregated dashboard stats.
type DashboardHandler struct {
	svc *service.DashboardService
	log *zap.Logger
}

// NewDashboardHandler returns a new DashboardHandler.
func NewDashboardHandler(svc *service.DashboardService, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{svc: svc, log: log}
}

// Stats godoc
// @Summary      Dashboard activity summary
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /dashboard/stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	user, _ := auth.CurrentUser(c)
	stats, err := h.svc.Stats(c.Request.Context(), user.ID)
	if err != nil {
		h.log.Error("dashboard stats failed", zap.Error(err))
		serverError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
}
