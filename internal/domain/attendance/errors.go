package attendance

import "errors"

// Attendance domain errors
var (
	// Punch pipeline errors
	ErrPunchInFlight = errors.New("a punch action for this employee is already in progress")
	ErrDayCompleted  = errors.New("today has already been punched out")

	// General errors
	ErrSetNotFound    = errors.New("no attendance set stored for this month")
	ErrRecordNotFound = errors.New("attendance record not found for this date")
)

// Punch rejection reasons. Rejections are a normal pipeline outcome, not
// errors; the action may be retried immediately.
const (
	RejectLocationDenied    = "location_denied"
	RejectCameraDenied      = "camera_denied"
	RejectGeofenceViolation = "geofence_violation"
)
