package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/doctrackph/doctrack-backend/internal/core/ports/services"
	"github.com/doctrackph/doctrack-backend/internal/dto"
	"github.com/doctrackph/doctrack-backend/internal/middleware"
)

// logHandler exposes the audit trail.
type logHandler struct {
	auditService portssvc.AuditLogSvcFacade
}

func newLogHandler(as portssvc.AuditLogSvcFacade) *logHandler {
	return &logHandler{auditService: as}
}

func registerLogRoutes(rg *gin.RouterGroup, auditService portssvc.AuditLogSvcFacade) {
	h := newLogHandler(auditService)

	logs := rg.Group("/logs")
	{
		logs.GET("", h.listLogs)
		logs.POST("", h.createLog)
	}
}

// listLogs godoc
// @Summary List audit log entries
// @Description Returns the full audit trail, most recent first.
// @Tags logs
// @Produce json
// @Success 200 {object} dto.ListLogsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /logs [get]
func (h *logHandler) listLogs(c *gin.Context) {
	entries, err := h.auditService.ListLogs(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list audit logs", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list audit logs"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListLogsResponse(entries))
}

// createLog godoc
// @Summary Append a general audit log entry
// @Description Records a caller-described action on the audit trail. Document
// @Description mutations are logged automatically; this endpoint is for
// @Description everything else.
// @Tags logs
// @Accept json
// @Produce json
// @Param entry body dto.CreateLogRequest true "Action details"
// @Success 201 "Created"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /logs [post]
func (h *logHandler) createLog(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	description := req.Description
	if description == "" && req.DocumentType != "" && req.ControlNo != "" {
		description = fmt.Sprintf("Performed %s on %s (%s)", req.Action, req.DocumentType, req.ControlNo)
	}

	if err := h.auditService.LogAction(c.Request.Context(), req.Action, description, actorUserID); err != nil {
		logger.Error("Failed to append audit log entry", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to append audit log entry"})
		return
	}

	c.Status(http.StatusCreated)
}
