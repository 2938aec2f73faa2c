package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sdm-erp/erp-backend-go/internal/domain/unit"
	"github.com/sdm-erp/erp-backend-go/internal/handler/http/response"
)

type UnitHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type UnitHandlerImpl struct {
	unitService unit.UnitService
}

func NewUnitHandler(unitService unit.UnitService) UnitHandler {
	return &UnitHandlerImpl{unitService: unitService}
}

// Create implements UnitHandler.
func (h *UnitHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq unit.UpsertUnitRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create unit decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.unitService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create unit service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Unit created", result)
}

// GetByID implements UnitHandler.
func (h *UnitHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	result, err := h.unitService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements UnitHandler.
func (h *UnitHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.unitService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements UnitHandler.
func (h *UnitHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq unit.UpsertUnitRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update unit decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	result, err := h.unitService.Update(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update unit service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
