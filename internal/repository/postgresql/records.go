package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/staffhub-id/attendance-backend-go/internal/domain/attendance"
	"github.com/staffhub-id/attendance-backend-go/internal/pkg/database"
)

// recordRepositoryImpl stores monthly sets as opaque JSON payloads under a
// string key. The core never sees the table layout; only the key format
// (attendance.RecordKey) is shared.
type recordRepositoryImpl struct {
	db *database.DB
}

func NewRecordRepository(db *database.DB) attendance.RecordRepository {
	return &recordRepositoryImpl{db: db}
}

// Get implements attendance.RecordRepository.
func (r *recordRepositoryImpl) Get(ctx context.Context, employeeID string, year int, month time.Month) (attendance.MonthlySet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT payload
		FROM attendance_month_records
		WHERE record_key = $1
	`

	var payload []byte
	err := q.QueryRow(ctx, query, attendance.RecordKey(employeeID, year, month)).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.MonthlySet{}, attendance.ErrSetNotFound
		}
		return attendance.MonthlySet{}, fmt.Errorf("failed to get attendance set: %w", err)
	}

	var set attendance.MonthlySet
	if err := json.Unmarshal(payload, &set); err != nil {
		return attendance.MonthlySet{}, fmt.Errorf("failed to decode attendance set: %w", err)
	}

	return set, nil
}

// Set implements attendance.RecordRepository.
func (r *recordRepositoryImpl) Set(ctx context.Context, set attendance.MonthlySet) error {
	q := GetQuerier(ctx, r.db)

	payload, err := json.Marshal(set)
	if err != nil {
		return fmt.Errorf("failed to encode attendance set: %w", err)
	}

	query := `
		INSERT INTO attendance_month_records (record_key, payload, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (record_key)
		DO UPDATE SET payload = EXCLUDED.payload, updated_at = NOW()
	`

	key := attendance.RecordKey(set.EmployeeID, set.Year, set.Month)
	if _, err := q.Exec(ctx, query, key, payload); err != nil {
		return fmt.Errorf("failed to store attendance set: %w", err)
	}

	return nil
}
