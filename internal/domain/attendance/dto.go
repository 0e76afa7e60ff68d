package attendance

import (
	"github.com/staffhub-id/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

// PunchRequest carries what the punching device resolved before calling
// in: its capability probe outcomes and, when location was granted, the
// position fix.
type PunchRequest struct {
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
	LocationResult string   `json:"location_result"` // granted | denied | unsupported
	CameraResult   string   `json:"camera_result"`   // granted | denied | unsupported
}

var triState = []string{"granted", "denied", "unsupported", ""}

func (r *PunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.LocationResult, triState) {
		errs = append(errs, validator.ValidationError{
			Field:   "location_result",
			Message: "must be one of granted, denied, unsupported",
		})
	}

	if !validator.IsInSlice(r.CameraResult, triState) {
		errs = append(errs, validator.ValidationError{
			Field:   "camera_result",
			Message: "must be one of granted, denied, unsupported",
		})
	}

	if r.Latitude != nil && (*r.Latitude < -90 || *r.Latitude > 90) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude != nil && (*r.Longitude < -180 || *r.Longitude > 180) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// PunchResponse reports the pipeline outcome. Rejections carry a machine
// reason plus a human-readable detail; the stored record is returned in
// both cases so clients can render the day.
type PunchResponse struct {
	Outcome string      `json:"outcome"`          // success | rejected
	Action  string      `json:"action,omitempty"` // punch_in | punch_out
	Reason  *string     `json:"reason,omitempty"`
	Detail  *string     `json:"detail,omitempty"`
	Record  DailyRecord `json:"record"`
}

// EditRecordRequest is a field-level patch applied by an admin directly to
// a stored day, bypassing the punch pipeline. Nil fields are unchanged.
type EditRecordRequest struct {
	EmployeeID string     `json:"-"`
	Date       string     `json:"-"` // "2006-01-02"
	Status     *DayStatus `json:"status,omitempty"`
	CheckIn    *string    `json:"check_in,omitempty"`
	CheckOut   *string    `json:"check_out,omitempty"`
	IsLate     *bool      `json:"is_late,omitempty"`
}

func (r *EditRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if r.Status != nil && !r.Status.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "invalid attendance status",
		})
	}

	if r.CheckIn != nil && *r.CheckIn != "" && !validator.IsValidClockTime(*r.CheckIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_in",
			Message: "check_in must be a 12-hour time like 09:30 AM",
		})
	}

	if r.CheckOut != nil && *r.CheckOut != "" && !validator.IsValidClockTime(*r.CheckOut) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_out",
			Message: "check_out must be a 12-hour time like 06:30 PM",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// BulkMarkRequest marks every still-unmarked day up to today with one
// status.
type BulkMarkRequest struct {
	Status DayStatus `json:"status"`
}

func (r *BulkMarkRequest) Validate() error {
	var errs validator.ValidationErrors

	if !r.Status.Valid() || r.Status == StatusNotMarked {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be a markable attendance status",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
