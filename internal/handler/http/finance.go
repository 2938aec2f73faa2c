package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sdm-erp/erp-backend-go/internal/domain/finance"
	"github.com/sdm-erp/erp-backend-go/internal/handler/http/response"
)

type FinanceHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	CreateSplit(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type FinanceHandlerImpl struct {
	financeService finance.FinanceService
}

func NewFinanceHandler(financeService finance.FinanceService) FinanceHandler {
	return &FinanceHandlerImpl{financeService: financeService}
}

// Create implements FinanceHandler.
func (h *FinanceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq finance.CreateTransactionRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create transaction decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.financeService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create transaction service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Transaction recorded", result)
}

// CreateSplit implements FinanceHandler.
func (h *FinanceHandlerImpl) CreateSplit(w http.ResponseWriter, r *http.Request) {
	var splitReq finance.CreateSplitRequest

	if err := json.NewDecoder(r.Body).Decode(&splitReq); err != nil {
		slog.Error("Create split decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.financeService.CreateSplit(r.Context(), splitReq)
	if err != nil {
		slog.Error("Create split service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Split transaction recorded", result)
}

// GetByID implements FinanceHandler.
func (h *FinanceHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	result, err := h.financeService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements FinanceHandler.
func (h *FinanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := finance.Filter{}

	query := r.URL.Query()
	if v := query.Get("unit_id"); v != "" {
		filter.UnitID = &v
	}
	if v := query.Get("type"); v != "" {
		filter.Type = &v
	}
	if v := query.Get("category"); v != "" {
		filter.Category = &v
	}
	if v := query.Get("date_from"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.BadRequest(w, "date_from must be in YYYY-MM-DD format", nil)
			return
		}
		filter.DateFrom = &t
	}
	if v := query.Get("date_to"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.BadRequest(w, "date_to must be in YYYY-MM-DD format", nil)
			return
		}
		filter.DateTo = &t
	}
	filter.Page, _ = strconv.Atoi(query.Get("page"))
	filter.Limit, _ = strconv.Atoi(query.Get("limit"))

	result, err := h.financeService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
