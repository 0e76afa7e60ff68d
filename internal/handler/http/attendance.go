package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/staffhub-id/attendance-backend-go/internal/domain/attendance"
	"github.com/staffhub-id/attendance-backend-go/internal/handler/http/response"
	"github.com/staffhub-id/attendance-backend-go/internal/pkg/capability"
	"github.com/staffhub-id/attendance-backend-go/internal/pkg/geo"
)

type AttendanceHandler interface {
	GetMonthly(w http.ResponseWriter, r *http.Request)
	Punch(w http.ResponseWriter, r *http.Request)
	BulkMark(w http.ResponseWriter, r *http.Request)
	EditRecord(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// parseYearMonth reads the {year}/{month} URL params.
func parseYearMonth(r *http.Request) (int, time.Month, bool) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		return 0, 0, false
	}
	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil || month < 1 || month > 12 {
		return 0, 0, false
	}
	return year, time.Month(month), true
}

// GetMonthly implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetMonthly(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	year, month, ok := parseYearMonth(r)
	if !ok {
		response.BadRequest(w, "Invalid year or month", nil)
		return
	}

	set, err := h.attendanceService.GetMonthlyAttendance(r.Context(), employeeID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, set)
}

// Punch implements AttendanceHandler. The request carries the probe results
// the device already resolved; they are replayed into the pipeline as an
// acquirer.
func (h *attendanceHandlerImpl) Punch(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	var req attendance.PunchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	acquirer := capability.Reported{
		LocationRes: capability.Result(req.LocationResult),
		CameraRes:   capability.Result(req.CameraResult),
	}
	if req.Latitude != nil && req.Longitude != nil {
		acquirer.Position = &geo.Point{
			Latitude:  *req.Latitude,
			Longitude: *req.Longitude,
		}
	}

	result, err := h.attendanceService.Punch(r.Context(), employeeID, acquirer)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// BulkMark implements AttendanceHandler.
func (h *attendanceHandlerImpl) BulkMark(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	year, month, ok := parseYearMonth(r)
	if !ok {
		response.BadRequest(w, "Invalid year or month", nil)
		return
	}

	var req attendance.BulkMarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	set, err := h.attendanceService.BulkMark(r.Context(), employeeID, year, month, req.Status)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance marked successfully", set)
}

// EditRecord implements AttendanceHandler.
func (h *attendanceHandlerImpl) EditRecord(w http.ResponseWriter, r *http.Request) {
	var req attendance.EditRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = chi.URLParam(r, "employeeID")
	req.Date = chi.URLParam(r, "date")

	rec, err := h.attendanceService.EditRecord(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance record updated successfully", rec)
}

// Summary implements AttendanceHandler.
func (h *attendanceHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	year, month, ok := parseYearMonth(r)
	if !ok {
		response.BadRequest(w, "Invalid year or month", nil)
		return
	}

	set, err := h.attendanceService.GetMonthlyAttendance(r.Context(), employeeID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, h.attendanceService.AggregateIndividual(set))
}
