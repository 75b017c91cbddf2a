package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/doctrackph/doctrack-backend/internal/core/ports/services"
	"github.com/doctrackph/doctrack-backend/internal/dto"
	"github.com/doctrackph/doctrack-backend/internal/middleware"
)

// documentTypeHandler serves the document type reference list.
type documentTypeHandler struct {
	documentService portssvc.DocumentSvcFacade
}

func registerDocumentTypeRoutes(rg *gin.RouterGroup, documentService portssvc.DocumentSvcFacade) {
	h := &documentTypeHandler{documentService: documentService}
	rg.GET("/document-types", h.listDocumentTypes)
}

// listDocumentTypes godoc
// @Summary List the recognized document types
// @Tags document-types
// @Produce json
// @Success 200 {object} dto.ListDocumentTypesResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /document-types [get]
func (h *documentTypeHandler) listDocumentTypes(c *gin.Context) {
	types, err := h.documentService.ListDocumentTypes(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list document types", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list document types"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListDocumentTypesResponse(types))
}
