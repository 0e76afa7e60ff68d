package attendance

import (
	"context"
	"fmt"
	"time"
)

// RecordKey is the string key a MonthlySet is stored under. The store is
// a generic keyed JSON store; this is the only place the key format lives.
func RecordKey(employeeID string, year int, month time.Month) string {
	return fmt.Sprintf("attendance:%s:%04d-%02d", employeeID, year, int(month))
}

// RecordRepository is the keyed persistence boundary for monthly sets.
// Get returns ErrSetNotFound when nothing is stored under the key, which
// callers treat as a default-generation trigger rather than a failure.
type RecordRepository interface {
	Get(ctx context.Context, employeeID string, year int, month time.Month) (MonthlySet, error)

	// Set overwrites the stored set (read-modify-write, last writer wins).
	Set(ctx context.Context, set MonthlySet) error
}
