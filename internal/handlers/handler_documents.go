package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/securities_vault/internal/core/ports/services"
	"github.com/SscSPs/securities_vault/internal/dto"
	"github.com/SscSPs/securities_vault/internal/utils"
	"github.com/gin-gonic/gin"
)

type documentHandler struct {
	documents portssvc.DocumentSvcFacade
}

// RegisterDocumentRoutes registers routes of the document registry.
func RegisterDocumentRoutes(rg *gin.RouterGroup, documents portssvc.DocumentSvcFacade) {
	h := &documentHandler{documents: documents}

	docs := rg.Group("/documents")
	{
		docs.GET("", h.listDocuments)
		docs.GET("/:name", h.getDocument)
		docs.PUT("/:name", h.addDocument)
		docs.DELETE("/:name", h.removeDocument)
	}
}

// listDocuments godoc
// @Summary List documents
// @Tags documents
// @Produce json
// @Success 200 {array} domain.Document
// @Security BearerAuth
// @Router /documents [get]
func (h *documentHandler) listDocuments(c *gin.Context) {
	c.JSON(http.StatusOK, h.documents.ListDocuments(c.Request.Context()))
}

// getDocument godoc
// @Summary Get a document
// @Tags documents
// @Produce json
// @Param name path string true "Document name"
// @Success 200 {object} domain.Document
// @Failure 404 {object} map[string]string "Document not found"
// @Security BearerAuth
// @Router /documents/{name} [get]
func (h *documentHandler) getDocument(c *gin.Context) {
	doc, err := h.documents.GetDocument(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, err, "Failed to retrieve document")
		return
	}
	c.JSON(http.StatusOK, doc)
}

// addDocument godoc
// @Summary Add or replace a document
// @Description Records the URI and the 32-byte content hash under the name (admin only). Without a hash, the Keccak-256 of content is used.
// @Tags documents
// @Accept json
// @Produce json
// @Param name path string true "Document name"
// @Param request body dto.AddDocumentRequest true "URI and hash"
// @Success 200 {object} domain.Document
// @Security BearerAuth
// @Router /documents/{name} [put]
func (h *documentHandler) addDocument(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	var req dto.AddDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	hash := req.Hash
	if hash == "" {
		hash = utils.DocumentHash([]byte(req.Content))
	}
	doc, err := h.documents.AddDocument(c.Request.Context(), c.Param("name"), req.URI, hash, caller)
	if err != nil {
		respondError(c, err, "Failed to add document")
		return
	}
	c.JSON(http.StatusOK, doc)
}

// removeDocument godoc
// @Summary Remove a document
// @Tags documents
// @Param name path string true "Document name"
// @Success 204
// @Failure 404 {object} map[string]string "Document not found"
// @Security BearerAuth
// @Router /documents/{name} [delete]
func (h *documentHandler) removeDocument(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	if err := h.documents.RemoveDocument(c.Request.Context(), c.Param("name"), caller); err != nil {
		respondError(c, err, "Failed to remove document")
		return
	}
	c.Status(http.StatusNoContent)
}
