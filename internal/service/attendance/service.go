package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/staffhub-id/attendance-backend-go/internal/domain/attendance"
	"github.com/staffhub-id/attendance-backend-go/internal/domain/branch"
	"github.com/staffhub-id/attendance-backend-go/internal/domain/employee"
	"github.com/staffhub-id/attendance-backend-go/internal/domain/notification"
	"github.com/staffhub-id/attendance-backend-go/internal/fixtures"
	"github.com/staffhub-id/attendance-backend-go/internal/pkg/capability"
	"github.com/staffhub-id/attendance-backend-go/internal/pkg/clock"
	"github.com/staffhub-id/attendance-backend-go/internal/pkg/geo"
)

// Policy holds the attendance rules that are configuration, not code.
type Policy struct {
	GraceMinutes      int           // lateness grace after shift start
	DefaultShiftStart string        // used when an employee has no working hours configured
	LocationTimeout   time.Duration // bound on a single location acquisition
}

// DefaultPolicy matches the standard office setup: 09:30 start, 15 minute
// grace window.
func DefaultPolicy() Policy {
	return Policy{
		GraceMinutes:      15,
		DefaultShiftStart: "09:30 AM",
		LocationTimeout:   capability.DefaultLocationTimeout,
	}
}

type AttendanceServiceImpl struct {
	attendance.RecordRepository
	employee.EmployeeRepository
	branch.BranchRepository
	dispatcher notification.Dispatcher
	policy     Policy

	now func() time.Time

	// busy-guard: at most one punch action in flight per employee
	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewAttendanceService(
	recordRepo attendance.RecordRepository,
	employeeRepo employee.EmployeeRepository,
	branchRepo branch.BranchRepository,
	dispatcher notification.Dispatcher,
	policy Policy,
) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		RecordRepository:   recordRepo,
		EmployeeRepository: employeeRepo,
		BranchRepository:   branchRepo,
		dispatcher:         dispatcher,
		policy:             policy,
		now:                time.Now,
		inFlight:           make(map[string]struct{}),
	}
}

// loadMonth is the single read path for monthly sets: load the persisted
// set, or synthesize the default pattern and persist it immediately. With
// applyReset, future days of the current month are forced back to
// NOT_MARKED so stale data never surfaces for days not yet reached.
func (s *AttendanceServiceImpl) loadMonth(ctx context.Context, employeeID string, year int, month time.Month, applyReset bool) (attendance.MonthlySet, error) {
	set, err := s.RecordRepository.Get(ctx, employeeID, year, month)
	if err != nil {
		if !errors.Is(err, attendance.ErrSetNotFound) {
			return attendance.MonthlySet{}, fmt.Errorf("failed to load attendance set: %w", err)
		}
		set = fixtures.GenerateDefaultMonth(employeeID, year, month)
		if err := s.RecordRepository.Set(ctx, set); err != nil {
			// The generated view is still served; only the save is unconfirmed.
			slog.Warn("failed to persist generated attendance set",
				"employee_id", employeeID, "year", year, "month", int(month), "error", err)
		}
	}

	if applyReset {
		s.resetFutureDays(&set)
	}

	return set, nil
}

// resetFutureDays clears every day of the current month that is still in
// the future. Past months are left untouched.
func (s *AttendanceServiceImpl) resetFutureDays(set *attendance.MonthlySet) {
	now := s.now()
	if set.Year != now.Year() || set.Month != now.Month() {
		return
	}
	for i := range set.Records {
		if set.Records[i].Day() > now.Day() {
			set.Records[i].Status = attendance.StatusNotMarked
			set.Records[i].CheckIn = nil
			set.Records[i].CheckOut = nil
			set.Records[i].IsLate = false
		}
	}
}

// GetMonthlyAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetMonthlyAttendance(ctx context.Context, employeeID string, year int, month time.Month) (attendance.MonthlySet, error) {
	return s.loadMonth(ctx, employeeID, year, month, true)
}

// acquirePunchSlot reserves the per-employee punch slot, failing when a
// punch for the same employee is already running.
func (s *AttendanceServiceImpl) acquirePunchSlot(employeeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[employeeID]; busy {
		return attendance.ErrPunchInFlight
	}
	s.inFlight[employeeID] = struct{}{}
	return nil
}

func (s *AttendanceServiceImpl) releasePunchSlot(employeeID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, employeeID)
}

// Punch implements attendance.AttendanceService. The pipeline runs its
// steps strictly in order and short-circuits on the first failure; a
// rejection leaves the stored record untouched and is reported as a
// normal outcome, never an error.
func (s *AttendanceServiceImpl) Punch(ctx context.Context, employeeID string, acquirer capability.Acquirer) (attendance.PunchResponse, error) {
	if err := s.acquirePunchSlot(employeeID); err != nil {
		return attendance.PunchResponse{}, err
	}
	defer s.releasePunchSlot(employeeID)

	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return attendance.PunchResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	now := s.now()
	set, err := s.loadMonth(ctx, employeeID, now.Year(), now.Month(), true)
	if err != nil {
		return attendance.PunchResponse{}, err
	}

	rec := set.RecordFor(now.Day())
	if rec == nil {
		return attendance.PunchResponse{}, attendance.ErrRecordNotFound
	}
	if rec.PunchState() == attendance.PunchedOut {
		// Terminal for the pipeline; only an admin edit may alter the day.
		return attendance.PunchResponse{}, attendance.ErrDayCompleted
	}

	var position geo.Point
	havePosition := false

	if emp.RequiresLocation() {
		locCtx := ctx
		if s.policy.LocationTimeout > 0 {
			var cancel context.CancelFunc
			locCtx, cancel = context.WithTimeout(ctx, s.policy.LocationTimeout)
			defer cancel()
		}
		point, res := acquirer.AcquireLocation(locCtx)
		if res != capability.Granted {
			return rejected(*rec, attendance.RejectLocationDenied,
				fmt.Sprintf("location permission %s", res)), nil
		}
		position = point
		havePosition = true
	}

	if emp.RequiresCamera() {
		if res := acquirer.ProbeCamera(ctx); res != capability.Granted {
			return rejected(*rec, attendance.RejectCameraDenied,
				fmt.Sprintf("camera permission %s", res)), nil
		}
	}

	if emp.AttendanceConfig.GPSGeofencing && havePosition {
		br, err := s.BranchRepository.GetByName(ctx, emp.BranchName)
		if err != nil && !errors.Is(err, branch.ErrBranchNotFound) {
			return attendance.PunchResponse{}, fmt.Errorf("failed to get branch geofence: %w", err)
		}
		// Without a configured geofence there is nothing to validate.
		if err == nil {
			if v := geo.Validate(position, br.Fence()); !v.Inside {
				return rejected(*rec, attendance.RejectGeofenceViolation,
					fmt.Sprintf("you are %.0f m outside the allowed %.0f m radius", v.OverBy, br.RadiusMeters)), nil
			}
		}
	}

	stamp := clock.FormatTime(now)
	action := notification.TypePunchIn
	if rec.PunchState() == attendance.NotPunched {
		rec.CheckIn = &stamp
		rec.Status = attendance.StatusPresent
		rec.IsLate = clock.MinutesOfDay(now) > s.shiftStartMinutes(emp)+s.policy.GraceMinutes
	} else {
		// Lateness is immutable after punch-in.
		rec.CheckOut = &stamp
		action = notification.TypePunchOut
	}

	resp := attendance.PunchResponse{
		Outcome: "success",
		Action:  action,
		Record:  *rec,
	}

	if err := s.RecordRepository.Set(ctx, set); err != nil {
		// The punch already happened from the user's point of view.
		slog.Warn("failed to persist punch", "employee_id", employeeID, "error", err)
		detail := "save not confirmed"
		resp.Detail = &detail
	}

	s.emitPunchEvent(ctx, emp, action, stamp)

	return resp, nil
}

// shiftStartMinutes parses the start of the employee's configured shift
// ("09:30 AM - 06:30 PM"), falling back to the policy default.
func (s *AttendanceServiceImpl) shiftStartMinutes(emp employee.EmployeeProfile) int {
	start := emp.WorkingHours
	if i := strings.Index(start, "-"); i >= 0 {
		start = start[:i]
	}
	if mins, ok := clock.ParseClockTime(strings.TrimSpace(start)); ok {
		return mins
	}
	mins, ok := clock.ParseClockTime(s.policy.DefaultShiftStart)
	if !ok {
		mins = 9*60 + 30
	}
	return mins
}

// emitPunchEvent hands the domain event to the dispatcher. Fire-and-forget:
// nothing here may block or fail the pipeline.
func (s *AttendanceServiceImpl) emitPunchEvent(ctx context.Context, emp employee.EmployeeProfile, action, stamp string) {
	if s.dispatcher == nil {
		return
	}

	verb := "punched in"
	if action == notification.TypePunchOut {
		verb = "punched out"
	}

	s.dispatcher.Dispatch(ctx, notification.Event{
		ID:          uuid.New().String(),
		Type:        action,
		Title:       "Attendance",
		Message:     fmt.Sprintf("%s %s at %s", emp.Name, verb, stamp),
		TargetRoles: []string{"admin"},
		EmployeeID:  emp.ID,
		Link:        "/attendance/" + emp.ID,
		CreatedAt:   s.now(),
	})
}

func rejected(rec attendance.DailyRecord, reason, detail string) attendance.PunchResponse {
	return attendance.PunchResponse{
		Outcome: "rejected",
		Reason:  &reason,
		Detail:  &detail,
		Record:  rec,
	}
}

// BulkMark implements attendance.AttendanceService. Only NOT_MARKED days
// up to today are touched; an explicit decision is never overridden.
func (s *AttendanceServiceImpl) BulkMark(ctx context.Context, employeeID string, year int, month time.Month, status attendance.DayStatus) (attendance.MonthlySet, error) {
	set, err := s.loadMonth(ctx, employeeID, year, month, true)
	if err != nil {
		return attendance.MonthlySet{}, err
	}

	// ISO dates compare lexicographically.
	today := s.now().Format("2006-01-02")
	changed := false
	for i := range set.Records {
		rec := &set.Records[i]
		if rec.Status != attendance.StatusNotMarked {
			continue
		}
		if rec.Date > today {
			continue
		}

		rec.Status = status
		if status == attendance.StatusPresent {
			checkIn, checkOut := fixtures.DefaultCheckIn, fixtures.DefaultCheckOut
			rec.CheckIn = &checkIn
			rec.CheckOut = &checkOut
		}
		changed = true
	}

	if changed {
		if err := s.RecordRepository.Set(ctx, set); err != nil {
			return attendance.MonthlySet{}, fmt.Errorf("failed to store bulk mark: %w", err)
		}
	}

	return set, nil
}

// EditRecord implements attendance.AttendanceService. Admin-only direct
// override; no geofence or capability checks apply on this path.
func (s *AttendanceServiceImpl) EditRecord(ctx context.Context, req attendance.EditRecordRequest) (attendance.DailyRecord, error) {
	if err := req.Validate(); err != nil {
		return attendance.DailyRecord{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	set, err := s.loadMonth(ctx, req.EmployeeID, date.Year(), date.Month(), false)
	if err != nil {
		return attendance.DailyRecord{}, err
	}

	rec := set.RecordFor(date.Day())
	if rec == nil {
		return attendance.DailyRecord{}, attendance.ErrRecordNotFound
	}

	if req.Status != nil {
		rec.Status = *req.Status
	}
	if req.CheckIn != nil {
		if *req.CheckIn == "" {
			rec.CheckIn = nil
		} else {
			rec.CheckIn = req.CheckIn
		}
	}
	if req.CheckOut != nil {
		if *req.CheckOut == "" {
			rec.CheckOut = nil
		} else {
			rec.CheckOut = req.CheckOut
		}
	}
	if req.IsLate != nil {
		rec.IsLate = *req.IsLate
	}

	if err := s.RecordRepository.Set(ctx, set); err != nil {
		return attendance.DailyRecord{}, fmt.Errorf("failed to store edited record: %w", err)
	}

	return *rec, nil
}
