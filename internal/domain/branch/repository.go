package branch

import "context"

// BranchRepository is the branch directory: it resolves an employee's
// assigned branch name to its geofence.
type BranchRepository interface {
	GetByName(ctx context.Context, name string) (Branch, error)
}
