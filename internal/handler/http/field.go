package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/field"
	"github.com/tals012/agriculture-hrms-sub002/internal/handler/http/response"
)

type FieldHandler interface {
	CreateField(w http.ResponseWriter, r *http.Request)
	GetField(w http.ResponseWriter, r *http.Request)
	ListFields(w http.ResponseWriter, r *http.Request)
	UpdateField(w http.ResponseWriter, r *http.Request)
	DeleteField(w http.ResponseWriter, r *http.Request)
}

type fieldHandlerImpl struct {
	fieldService field.FieldService
}

func NewFieldHandler(fieldService field.FieldService) FieldHandler {
	return &fieldHandlerImpl{fieldService: fieldService}
}

func (h *fieldHandlerImpl) CreateField(w http.ResponseWriter, r *http.Request) {
	var req field.CreateFieldRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.fieldService.CreateField(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Field created successfully", result)
}

func (h *fieldHandlerImpl) GetField(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.fieldService.GetField(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *fieldHandlerImpl) ListFields(w http.ResponseWriter, r *http.Request) {
	filter := field.FieldFilter{
		ClientID: r.URL.Query().Get("client_id"),
		Search:   r.URL.Query().Get("search"),
	}
	filter.Page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	filter.Limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))

	results, total, err := h.fieldService.ListFields(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, results, &response.Meta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: total,
	})
}

func (h *fieldHandlerImpl) UpdateField(w http.ResponseWriter, r *http.Request) {
	var req field.UpdateFieldRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.fieldService.UpdateField(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Field updated successfully", nil)
}

func (h *fieldHandlerImpl) DeleteField(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.fieldService.DeleteField(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Field deleted successfully", nil)
}
