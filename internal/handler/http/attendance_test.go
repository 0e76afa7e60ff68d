package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/staffhub-id/attendance-backend-go/internal/domain/attendance"
	"github.com/staffhub-id/attendance-backend-go/internal/handler/http/response"
	"github.com/staffhub-id/attendance-backend-go/internal/pkg/capability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAttendanceService returns canned values so handler behavior can be
// tested without a database.
type stubAttendanceService struct {
	set       attendance.MonthlySet
	punchResp attendance.PunchResponse
	rec       attendance.DailyRecord
	stats     attendance.MonthStats
	roll      attendance.MusterRoll
	err       error

	lastAcquirer capability.Acquirer
	lastEdit     attendance.EditRecordRequest
}

func (s *stubAttendanceService) GetMonthlyAttendance(ctx context.Context, employeeID string, year int, month time.Month) (attendance.MonthlySet, error) {
	return s.set, s.err
}

func (s *stubAttendanceService) Punch(ctx context.Context, employeeID string, acquirer capability.Acquirer) (attendance.PunchResponse, error) {
	s.lastAcquirer = acquirer
	return s.punchResp, s.err
}

func (s *stubAttendanceService) BulkMark(ctx context.Context, employeeID string, year int, month time.Month, status attendance.DayStatus) (attendance.MonthlySet, error) {
	return s.set, s.err
}

func (s *stubAttendanceService) EditRecord(ctx context.Context, req attendance.EditRecordRequest) (attendance.DailyRecord, error) {
	s.lastEdit = req
	return s.rec, s.err
}

func (s *stubAttendanceService) AggregateIndividual(set attendance.MonthlySet) attendance.MonthStats {
	return s.stats
}

func (s *stubAttendanceService) MusterRoll(ctx context.Context, employeeIDs []string, year int, month time.Month) (attendance.MusterRoll, error) {
	return s.roll, s.err
}

func newTestRequest(method, target string, body interface{}, params map[string]string) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	r := httptest.NewRequest(method, target, &buf)

	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

func TestGetMonthly_InvalidMonth(t *testing.T) {
	h := NewAttendanceHandler(&stubAttendanceService{})

	r := newTestRequest(http.MethodGet, "/api/v1/attendance/emp-1/2025/13", nil,
		map[string]string{"employeeID": "emp-1", "year": "2025", "month": "13"})
	w := httptest.NewRecorder()
	h.GetMonthly(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	assert.False(t, resp.Success)
}

func TestGetMonthly_OK(t *testing.T) {
	stub := &stubAttendanceService{
		set: attendance.MonthlySet{EmployeeID: "emp-1", Year: 2025, Month: time.June},
	}
	h := NewAttendanceHandler(stub)

	r := newTestRequest(http.MethodGet, "/api/v1/attendance/emp-1/2025/6", nil,
		map[string]string{"employeeID": "emp-1", "year": "2025", "month": "6"})
	w := httptest.NewRecorder()
	h.GetMonthly(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
}

func TestPunch_ForwardsReportedCapabilities(t *testing.T) {
	stub := &stubAttendanceService{
		punchResp: attendance.PunchResponse{Outcome: "success", Action: "punch_in"},
	}
	h := NewAttendanceHandler(stub)

	body := attendance.PunchRequest{
		Latitude:       ptrFloat(-6.2088),
		Longitude:      ptrFloat(106.8456),
		LocationResult: "granted",
		CameraResult:   "granted",
	}
	r := newTestRequest(http.MethodPost, "/api/v1/attendance/emp-1/punch", body,
		map[string]string{"employeeID": "emp-1"})
	w := httptest.NewRecorder()
	h.Punch(w, r)

	assert.Equal(t, http.StatusOK, w.Code)

	reported, ok := stub.lastAcquirer.(capability.Reported)
	require.True(t, ok)
	require.NotNil(t, reported.Position)
	assert.InDelta(t, -6.2088, reported.Position.Latitude, 1e-9)
	assert.Equal(t, capability.Granted, reported.LocationRes)
	assert.Equal(t, capability.Granted, reported.CameraRes)
}

func TestPunch_InvalidCapabilityResult(t *testing.T) {
	h := NewAttendanceHandler(&stubAttendanceService{})

	body := attendance.PunchRequest{LocationResult: "maybe"}
	r := newTestRequest(http.MethodPost, "/api/v1/attendance/emp-1/punch", body,
		map[string]string{"employeeID": "emp-1"})
	w := httptest.NewRecorder()
	h.Punch(w, r)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Contains(t, resp.Error.Details, "location_result")
}

func TestPunch_InFlightConflict(t *testing.T) {
	h := NewAttendanceHandler(&stubAttendanceService{err: attendance.ErrPunchInFlight})

	body := attendance.PunchRequest{LocationResult: "granted"}
	r := newTestRequest(http.MethodPost, "/api/v1/attendance/emp-1/punch", body,
		map[string]string{"employeeID": "emp-1"})
	w := httptest.NewRecorder()
	h.Punch(w, r)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestEditRecord_ParamsOverrideBody(t *testing.T) {
	stub := &stubAttendanceService{rec: attendance.DailyRecord{Date: "2025-06-10"}}
	h := NewAttendanceHandler(stub)

	status := attendance.StatusPresent
	body := attendance.EditRecordRequest{Status: &status}
	r := newTestRequest(http.MethodPatch, "/api/v1/attendance/emp-1/records/2025-06-10", body,
		map[string]string{"employeeID": "emp-1", "date": "2025-06-10"})
	w := httptest.NewRecorder()
	h.EditRecord(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "emp-1", stub.lastEdit.EmployeeID)
	assert.Equal(t, "2025-06-10", stub.lastEdit.Date)
}

func TestBulkMark_InvalidStatus(t *testing.T) {
	h := NewAttendanceHandler(&stubAttendanceService{})

	body := attendance.BulkMarkRequest{Status: "VACATION"}
	r := newTestRequest(http.MethodPost, "/api/v1/attendance/emp-1/2025/6/bulk-mark", body,
		map[string]string{"employeeID": "emp-1", "year": "2025", "month": "6"})
	w := httptest.NewRecorder()
	h.BulkMark(w, r)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func ptrFloat(f float64) *float64 {
	return &f
}
