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

// outgoingHandler handles HTTP requests for the outgoing ledger.
type outgoingHandler struct {
	documentService portssvc.DocumentSvcFacade
}

func newOutgoingHandler(ds portssvc.DocumentSvcFacade) *outgoingHandler {
	return &outgoingHandler{documentService: ds}
}

// registerOutgoingRoutes registers the outgoing ledger routes.
func registerOutgoingRoutes(rg *gin.RouterGroup, documentService portssvc.DocumentSvcFacade) {
	h := newOutgoingHandler(documentService)

	outgoing := rg.Group("/outgoing")
	{
		outgoing.GET("", h.listOutgoing)
		outgoing.POST("", h.createOutgoing)
		outgoing.PUT("/:id", h.updateOutgoing)
		outgoing.DELETE("/:id", h.deleteOutgoing)
	}
}

// createOutgoing godoc
// @Summary Register an outgoing document
// @Description Creates an outgoing document, assigning the next control number for the current month.
// @Tags outgoing
// @Accept json
// @Produce json
// @Param document body dto.CreateOutgoingRequest true "Document details"
// @Success 201 {object} dto.DocumentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /outgoing [post]
func (h *outgoingHandler) createOutgoing(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateOutgoingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	created, err := h.documentService.CreateOutgoing(c.Request.Context(), req, actorUserID)
	if err != nil {
		logger.Error("Failed to create outgoing document", slog.String("error", err.Error()))
		respondServiceError(c, err, "Failed to create outgoing document")
		return
	}

	logger.Info("Outgoing document created", slog.String("control_no", created.ControlNo))
	c.JSON(http.StatusCreated, dto.ToDocumentResponse(created))
}

// listOutgoing godoc
// @Summary List outgoing documents
// @Tags outgoing
// @Produce json
// @Success 200 {object} dto.ListDocumentsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /outgoing [get]
func (h *outgoingHandler) listOutgoing(c *gin.Context) {
	docs, err := h.documentService.ListOutgoing(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list outgoing documents", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list outgoing documents"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListDocumentsResponse(docs))
}

// updateOutgoing godoc
// @Summary Update an outgoing document
// @Description Partial update; only fields present in the payload are changed.
// @Tags outgoing
// @Accept json
// @Produce json
// @Param id path int true "Document ID"
// @Param document body dto.UpdateOutgoingRequest true "Fields to update"
// @Success 200 {object} dto.DocumentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /outgoing/{id} [put]
func (h *outgoingHandler) updateOutgoing(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid document ID"})
		return
	}

	var req dto.UpdateOutgoingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	updated, err := h.documentService.UpdateOutgoing(c.Request.Context(), id, req, actorUserID)
	if err != nil {
		logger.Error("Failed to update outgoing document", slog.Int64("id", id), slog.String("error", err.Error()))
		respondServiceError(c, err, "Failed to update outgoing document")
		return
	}

	c.JSON(http.StatusOK, dto.ToDocumentResponse(updated))
}

// deleteOutgoing godoc
// @Summary Delete an outgoing document
// @Tags outgoing
// @Produce json
// @Param id path int true "Document ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /outgoing/{id} [delete]
func (h *outgoingHandler) deleteOutgoing(c *gin.Context) {
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

	if err := h.documentService.DeleteOutgoing(c.Request.Context(), id, actorUserID); err != nil {
		logger.Error("Failed to delete outgoing document", slog.Int64("id", id), slog.String("error", err.Error()))
		respondServiceError(c, err, "Failed to delete outgoing document")
		return
	}

	c.Status(http.StatusNoContent)
}
