package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/master/harvesttype"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/master/species"
	"github.com/tals012/agriculture-hrms-sub002/internal/handler/http/response"
)

type MasterHandler interface {
	// Species handlers
	CreateSpecies(w http.ResponseWriter, r *http.Request)
	ListSpecies(w http.ResponseWriter, r *http.Request)
	UpdateSpecies(w http.ResponseWriter, r *http.Request)
	DeleteSpecies(w http.ResponseWriter, r *http.Request)

	// Harvest type handlers
	CreateHarvestType(w http.ResponseWriter, r *http.Request)
	ListHarvestTypes(w http.ResponseWriter, r *http.Request)
	UpdateHarvestType(w http.ResponseWriter, r *http.Request)
	DeleteHarvestType(w http.ResponseWriter, r *http.Request)
}

type masterHandlerImpl struct {
	speciesService     species.SpeciesService
	harvestTypeService harvesttype.HarvestTypeService
}

func NewMasterHandler(speciesService species.SpeciesService, harvestTypeService harvesttype.HarvestTypeService) MasterHandler {
	return &masterHandlerImpl{
		speciesService:     speciesService,
		harvestTypeService: harvestTypeService,
	}
}

// ==================== SPECIES HANDLERS ====================

func (h *masterHandlerImpl) CreateSpecies(w http.ResponseWriter, r *http.Request) {
	var req species.CreateSpeciesRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.speciesService.CreateSpecies(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Species created successfully", result)
}

func (h *masterHandlerImpl) ListSpecies(w http.ResponseWriter, r *http.Request) {
	results, err := h.speciesService.ListSpecies(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *masterHandlerImpl) UpdateSpecies(w http.ResponseWriter, r *http.Request) {
	var req species.UpdateSpeciesRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.speciesService.UpdateSpecies(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Species updated successfully", nil)
}

func (h *masterHandlerImpl) DeleteSpecies(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.speciesService.DeleteSpecies(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Species deleted successfully", nil)
}

// ==================== HARVEST TYPE HANDLERS ====================

func (h *masterHandlerImpl) CreateHarvestType(w http.ResponseWriter, r *http.Request) {
	var req harvesttype.CreateHarvestTypeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.harvestTypeService.CreateHarvestType(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Harvest type created successfully", result)
}

func (h *masterHandlerImpl) ListHarvestTypes(w http.ResponseWriter, r *http.Request) {
	results, err := h.harvestTypeService.ListHarvestTypes(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *masterHandlerImpl) UpdateHarvestType(w http.ResponseWriter, r *http.Request) {
	var req harvesttype.UpdateHarvestTypeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.harvestTypeService.UpdateHarvestType(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Harvest type updated successfully", nil)
}

func (h *masterHandlerImpl) DeleteHarvestType(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.harvestTypeService.DeleteHarvestType(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Harvest type deleted successfully", nil)
}
