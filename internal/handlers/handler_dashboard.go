package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/doctrackph/doctrack-backend/internal/core/ports/services"
	"github.com/doctrackph/doctrack-backend/internal/middleware"
)

// dashboardHandler serves the dashboard aggregates.
type dashboardHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func registerDashboardRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := &dashboardHandler{reportingService: reportingService}
	rg.GET("/dashboard/counts", h.getCounts)
}

// getCounts godoc
// @Summary Record counts for the dashboard tiles
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DashboardCountsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard/counts [get]
func (h *dashboardHandler) getCounts(c *gin.Context) {
	counts, err := h.reportingService.DashboardCounts(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to compute dashboard counts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute dashboard counts"})
		return
	}
	c.JSON(http.StatusOK, counts)
}
