package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sdm-erp/erp-backend-go/internal/domain/payroll"
	"github.com/sdm-erp/erp-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	UpsertSalaryConfig(w http.ResponseWriter, r *http.Request)
	GetSalaryConfig(w http.ResponseWriter, r *http.Request)
	ListSalaryConfigs(w http.ResponseWriter, r *http.Request)
	IssueSlip(w http.ResponseWriter, r *http.Request)
	IssueBulk(w http.ResponseWriter, r *http.Request)
	GetRecord(w http.ResponseWriter, r *http.Request)
	ListRecords(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// UpsertSalaryConfig implements PayrollHandler.
func (h *PayrollHandlerImpl) UpsertSalaryConfig(w http.ResponseWriter, r *http.Request) {
	var upsertReq payroll.UpsertSalaryConfigRequest

	if err := json.NewDecoder(r.Body).Decode(&upsertReq); err != nil {
		slog.Error("Upsert salary config decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.payrollService.UpsertSalaryConfig(r.Context(), upsertReq)
	if err != nil {
		slog.Error("Upsert salary config service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetSalaryConfig implements PayrollHandler.
func (h *PayrollHandlerImpl) GetSalaryConfig(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.GetSalaryConfig(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListSalaryConfigs implements PayrollHandler.
func (h *PayrollHandlerImpl) ListSalaryConfigs(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.ListSalaryConfigs(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// IssueSlip implements PayrollHandler.
func (h *PayrollHandlerImpl) IssueSlip(w http.ResponseWriter, r *http.Request) {
	var issueReq payroll.IssueSlipRequest

	if err := json.NewDecoder(r.Body).Decode(&issueReq); err != nil {
		slog.Error("Issue slip decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.payrollService.IssueSlip(r.Context(), issueReq)
	if err != nil {
		slog.Error("Issue slip service error", "error", err, "user_id", issueReq.UserID, "month", issueReq.Month)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Slip issued", result)
}

// IssueBulk implements PayrollHandler. The run itself never fails on a
// per-user error; the counts in the result tell the story.
func (h *PayrollHandlerImpl) IssueBulk(w http.ResponseWriter, r *http.Request) {
	var bulkReq payroll.IssueBulkRequest

	if err := json.NewDecoder(r.Body).Decode(&bulkReq); err != nil {
		slog.Error("Issue bulk decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.payrollService.IssueBulk(r.Context(), bulkReq)
	if err != nil {
		slog.Error("Issue bulk service error", "error", err, "month", bulkReq.Month)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetRecord implements PayrollHandler.
func (h *PayrollHandlerImpl) GetRecord(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.GetRecord(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListRecords implements PayrollHandler.
func (h *PayrollHandlerImpl) ListRecords(w http.ResponseWriter, r *http.Request) {
	filter := payroll.RecordFilter{}

	query := r.URL.Query()
	if v := query.Get("user_id"); v != "" {
		filter.UserID = &v
	}
	if v := query.Get("month"); v != "" {
		filter.Month = &v
	}
	filter.Page, _ = strconv.Atoi(query.Get("page"))
	filter.Limit, _ = strconv.Atoi(query.Get("limit"))

	result, err := h.payrollService.ListRecords(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
