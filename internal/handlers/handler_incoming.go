package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/doctrackph/doctrack-backend/internal/core/ports/services"
	"github.com/doctrackph/doctrack-backend/internal/dto"
	"github.com/doctrackph/doctrack-backend/internal/middleware"
)

// incomingHandler handles HTTP requests for the incoming ledger.
type incomingHandler struct {
	documentService portssvc.DocumentSvcFacade
}

func newIncomingHandler(ds portssvc.DocumentSvcFacade) *incomingHandler {
	return &incomingHandler{documentService: ds}
}

// registerIncomingRoutes registers the incoming ledger routes.
func registerIncomingRoutes(rg *gin.RouterGroup, documentService portssvc.DocumentSvcFacade) {
	h := newIncomingHandler(documentService)

	incoming := rg.Group("/incoming")
	{
		incoming.GET("", h.listIncoming)
		incoming.POST("", h.createIncoming)
		incoming.PUT("/:id", h.updateIncoming)
		incoming.DELETE("/:id", h.deleteIncoming)
	}
}

// createIncoming godoc
// @Summary Register an incoming document
// @Description Creates an incoming document, assigning the next control number for the current month.
// @Tags incoming
// @Accept json
// @Produce json
// @Param document body dto.CreateIncomingRequest true "Document details"
// @Success 201 {object} dto.DocumentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /incoming [post]
func (h *incomingHandler) createIncoming(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateIncomingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	created, err := h.documentService.CreateIncoming(c.Request.Context(), req, actorUserID)
	if err != nil {
		logger.Error("Failed to create incoming document", slog.String("error", err.Error()))
		respondServiceError(c, err, "Failed to create incoming document")
		return
	}

	logger.Info("Incoming document created", slog.String("control_no", created.ControlNo))
	c.JSON(http.StatusCreated, dto.ToDocumentResponse(created))
}

// listIncoming godoc
// @Summary List incoming documents
// @Tags incoming
// @Produce json
// @Success 200 {object} dto.ListDocumentsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /incoming [get]
func (h *incomingHandler) listIncoming(c *gin.Context) {
	docs, err := h.documentService.ListIncoming(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list incoming documents", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list incoming documents"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListDocumentsResponse(docs))
}

// updateIncoming godoc
// @Summary Update an incoming document
// @Description Full-field replacement; the control number and date received are immutable.
// @Tags incoming
// @Accept json
// @Produce json
// @Param id path int true "Document ID"
// @Param document body dto.UpdateIncomingRequest true "Document details"
// @Success 200 {object} dto.DocumentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /incoming/{id} [put]
func (h *incomingHandler) updateIncoming(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid document ID"})
		return
	}

	var req dto.UpdateIncomingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	updated, err := h.documentService.UpdateIncoming(c.Request.Context(), id, req, actorUserID)
	if err != nil {
		logger.Error("Failed to update incoming document", slog.Int64("id", id), slog.String("error", err.Error()))
		respondServiceError(c, err, "Failed to update incoming document")
		return
	}

	c.JSON(http.StatusOK, dto.ToDocumentResponse(updated))
}

// deleteIncoming godoc
// @Summary Delete an incoming document
// @Tags incoming
// @Produce json
// @Param id path int true "Document ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /incoming/{id} [delete]
func (h *incomingHandler) deleteIncoming(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid document ID"})
		return
	}

	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.documentService.DeleteIncoming(c.Request.Context(), id, actorUserID); err != nil {
		logger.Error("Failed to delete incoming document", slog.Int64("id", id), slog.String("error", err.Error()))
		respondServiceError(c, err, "Failed to delete incoming document")
		return
	}

	c.Status(http.StatusNoContent)
}
