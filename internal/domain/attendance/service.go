package attendance

import (
	"context"
	"time"

	"github.com/staffhub-id/attendance-backend-go/internal/pkg/capability"
)

// AttendanceService defines business logic for attendance operations.
// Identity is always an explicit parameter; nothing reads ambient session
// state.
type AttendanceService interface {
	// GetMonthlyAttendance loads the employee's month, generating and
	// persisting a default set on first access and resetting future days
	// of the current month to NOT_MARKED.
	GetMonthlyAttendance(ctx context.Context, employeeID string, year int, month time.Month) (MonthlySet, error)

	// Punch runs the punch pipeline for today: capability acquisition,
	// geofence validation, state transition, persistence, event emission.
	Punch(ctx context.Context, employeeID string, acquirer capability.Acquirer) (PunchResponse, error)

	// BulkMark sets every NOT_MARKED record with date <= today to status.
	BulkMark(ctx context.Context, employeeID string, year int, month time.Month, status DayStatus) (MonthlySet, error)

	// EditRecord merges an admin patch into one stored day, bypassing all
	// punch pipeline validation.
	EditRecord(ctx context.Context, req EditRecordRequest) (DailyRecord, error)

	// AggregateIndividual computes per-status counts and worked duration
	// for a set in a single pass.
	AggregateIndividual(set MonthlySet) MonthStats

	// MusterRoll builds the multi-employee day-by-day grid for a month,
	// reading the same persisted sets as the individual view.
	MusterRoll(ctx context.Context, employeeIDs []string, year int, month time.Month) (MusterRoll, error)
}
