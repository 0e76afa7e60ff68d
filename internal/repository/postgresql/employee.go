package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/staffhub-id/attendance-backend-go/internal/domain/employee"
	"github.com/staffhub-id/attendance-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.EmployeeProfile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, branch_name, gps_geofencing, qr_scan, live_tracking, working_hours
		FROM employees
		WHERE id = $1
	`

	var result employee.EmployeeProfile
	err := q.QueryRow(ctx, query, id).Scan(
		&result.ID,
		&result.Name,
		&result.BranchName,
		&result.AttendanceConfig.GPSGeofencing,
		&result.AttendanceConfig.QRScan,
		&result.LiveTracking,
		&result.WorkingHours,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.EmployeeProfile{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeProfile{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return result, nil
}
