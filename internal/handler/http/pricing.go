package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/pricing"
	"github.com/tals012/agriculture-hrms-sub002/internal/handler/http/response"
)

type PricingHandler interface {
	CreateCombination(w http.ResponseWriter, r *http.Request)
	GetCombination(w http.ResponseWriter, r *http.Request)
	ListCombinations(w http.ResponseWriter, r *http.Request)
	UpdateCombination(w http.ResponseWriter, r *http.Request)
	DeleteCombination(w http.ResponseWriter, r *http.Request)
}

type pricingHandlerImpl struct {
	pricingService pricing.PricingService
}

func NewPricingHandler(pricingService pricing.PricingService) PricingHandler {
	return &pricingHandlerImpl{pricingService: pricingService}
}

func (h *pricingHandlerImpl) CreateCombination(w http.ResponseWriter, r *http.Request) {
	var req pricing.CreateCombinationRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.pricingService.CreateCombination(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Pricing combination created successfully", result)
}

func (h *pricingHandlerImpl) GetCombination(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.pricingService.GetCombination(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *pricingHandlerImpl) ListCombinations(w http.ResponseWriter, r *http.Request) {
	clientID := r.URL.Query().Get("client_id")
	if clientID == "" {
		response.BadRequest(w, "client_id query parameter is required", nil)
		return
	}

	results, err := h.pricingService.ListCombinationsByClient(r.Context(), clientID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *pricingHandlerImpl) UpdateCombination(w http.ResponseWriter, r *http.Request) {
	var req pricing.UpdateCombinationRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.pricingService.UpdateCombination(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Pricing combination updated successfully", nil)
}

func (h *pricingHandlerImpl) DeleteCombination(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.pricingService.DeleteCombination(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Pricing combination deleted successfully", nil)
}
