package http

import (
	"net/http"

	"github.com/sdm-erp/erp-backend-go/internal/domain/attendance"
	"github.com/sdm-erp/erp-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	MonthlyStats(w http.ResponseWriter, r *http.Request)
	ListByMonth(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// ClockIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.ClockIn(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Clocked in", result)
}

// ClockOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.ClockOut(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func monthQueryFromRequest(r *http.Request) attendance.MonthQuery {
	return attendance.MonthQuery{
		UserID: r.URL.Query().Get("user_id"),
		Month:  r.URL.Query().Get("month"),
	}
}

// MonthlyStats implements AttendanceHandler.
func (h *AttendanceHandlerImpl) MonthlyStats(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.MonthlyStats(r.Context(), monthQueryFromRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListByMonth implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListByMonth(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.ListByUserMonth(r.Context(), monthQueryFromRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
