package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/staffhub-id/attendance-backend-go/internal/domain/branch"
	"github.com/staffhub-id/attendance-backend-go/internal/pkg/database"
)

type branchRepositoryImpl struct {
	db *database.DB
}

func NewBranchRepository(db *database.DB) branch.BranchRepository {
	return &branchRepositoryImpl{db: db}
}

// GetByName implements branch.BranchRepository.
func (r *branchRepositoryImpl) GetByName(ctx context.Context, name string) (branch.Branch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT name, latitude, longitude, radius_meters
		FROM branches
		WHERE name = $1
	`

	var result branch.Branch
	err := q.QueryRow(ctx, query, name).Scan(
		&result.Name,
		&result.Latitude,
		&result.Longitude,
		&result.RadiusMeters,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return branch.Branch{}, branch.ErrBranchNotFound
		}
		return branch.Branch{}, fmt.Errorf("failed to get branch: %w", err)
	}

	return result, nil
}
