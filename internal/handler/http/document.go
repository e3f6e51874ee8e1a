package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tals012/agriculture-hrms-sub002/internal/domain/document"
	"github.com/tals012/agriculture-hrms-sub002/internal/handler/http/response"
)

type DocumentHandler interface {
	CreateSigningRequest(w http.ResponseWriter, r *http.Request)
	BulkSend(w http.ResponseWriter, r *http.Request)
	Sign(w http.ResponseWriter, r *http.Request)
	DownloadSignedPDF(w http.ResponseWriter, r *http.Request)
	BulkArchive(w http.ResponseWriter, r *http.Request)
}

type documentHandlerImpl struct {
	documentService document.DocumentService
}

func NewDocumentHandler(documentService document.DocumentService) DocumentHandler {
	return &documentHandlerImpl{documentService: documentService}
}

func (h *documentHandlerImpl) CreateSigningRequest(w http.ResponseWriter, r *http.Request) {
	var req document.CreateSigningRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	doc, err := h.documentService.CreateSigningRequest(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Signing request sent", doc)
}

func (h *documentHandlerImpl) BulkSend(w http.ResponseWriter, r *http.Request) {
	var req document.BulkSigningRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.documentService.BulkSend(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Signing requests processed", result)
}

// Sign is reachable without authentication. The signing token and code
// carried in the body are the worker's credentials.
func (h *documentHandlerImpl) Sign(w http.ResponseWriter, r *http.Request) {
	var req document.SignDocumentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	doc, err := h.documentService.Sign(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Document signed", doc)
}

func (h *documentHandlerImpl) DownloadSignedPDF(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	pdf, err := h.documentService.RenderSignedPDF(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", id+".pdf"))
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}

func (h *documentHandlerImpl) BulkArchive(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DocumentIDs []string `json:"document_ids"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if len(req.DocumentIDs) == 0 {
		response.BadRequest(w, "document_ids is required", nil)
		return
	}

	archive, err := h.documentService.BulkArchive(r.Context(), req.DocumentIDs)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename="signed-documents.zip"`)
	w.WriteHeader(http.StatusOK)
	w.Write(archive)
}
