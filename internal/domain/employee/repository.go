package employee

import "context"

// EmployeeRepository resolves employee profiles for the attendance core.
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (EmployeeProfile, error)
}
