package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/staffhub-id/attendance-backend-go/internal/domain/attendance"
	"github.com/staffhub-id/attendance-backend-go/internal/handler/http/response"
	"github.com/staffhub-id/attendance-backend-go/internal/service/report"
)

type ReportHandler interface {
	MusterRoll(w http.ResponseWriter, r *http.Request)
	MusterRollExport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	attendanceService attendance.AttendanceService
	exporter          *report.MusterRollExporter
}

func NewReportHandler(attendanceService attendance.AttendanceService, exporter *report.MusterRollExporter) ReportHandler {
	return &reportHandlerImpl{
		attendanceService: attendanceService,
		exporter:          exporter,
	}
}

// employeeIDsParam splits the comma-separated employee_ids query parameter.
func employeeIDsParam(r *http.Request) []string {
	raw := r.URL.Query().Get("employee_ids")
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			ids = append(ids, p)
		}
	}
	return ids
}

// MusterRoll implements ReportHandler.
func (h *reportHandlerImpl) MusterRoll(w http.ResponseWriter, r *http.Request) {
	year, month, ok := parseYearMonth(r)
	if !ok {
		response.BadRequest(w, "Invalid year or month", nil)
		return
	}

	ids := employeeIDsParam(r)
	if len(ids) == 0 {
		response.BadRequest(w, "Query parameter 'employee_ids' is required", nil)
		return
	}

	roll, err := h.attendanceService.MusterRoll(r.Context(), ids, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, roll)
}

// MusterRollExport implements ReportHandler. Streams the roll as an XLSX
// workbook.
func (h *reportHandlerImpl) MusterRollExport(w http.ResponseWriter, r *http.Request) {
	year, month, ok := parseYearMonth(r)
	if !ok {
		response.BadRequest(w, "Invalid year or month", nil)
		return
	}

	ids := employeeIDsParam(r)
	if len(ids) == 0 {
		response.BadRequest(w, "Query parameter 'employee_ids' is required", nil)
		return
	}

	f, filename, err := h.exporter.Export(r.Context(), ids, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))

	if err := f.Write(w); err != nil {
		// Headers are already sent; nothing left to report to the client.
		return
	}
}
