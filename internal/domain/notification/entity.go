package notification

import "time"

// Event types emitted by the attendance core.
const (
	TypePunchIn  = "punch_in"
	TypePunchOut = "punch_out"
)

// Event is a domain notification. Dispatch is best-effort: the emitting
// pipeline never waits on it and never sees its failures.
type Event struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Message     string    `json:"message"`
	TargetRoles []string  `json:"target_roles"`
	CorporateID *string   `json:"corporate_id,omitempty"`
	EmployeeID  string    `json:"employee_id"`
	Link        string    `json:"link"`
	CreatedAt   time.Time `json:"created_at"`
}
