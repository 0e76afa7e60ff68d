package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/staffhub-id/attendance-backend-go/internal/pkg/jwt"
)

// MaintenanceJobs holds periodic housekeeping tasks.
type MaintenanceJobs struct {
	jwtService jwt.Service
}

func NewMaintenanceJobs(jwtService jwt.Service) *MaintenanceJobs {
	return &MaintenanceJobs{jwtService: jwtService}
}

func (j *MaintenanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("prune_revoked_tokens", 1*time.Hour, j.PruneRevokedTokens)
}

// PruneRevokedTokens drops revocation entries that outlived the longest
// possible token lifetime.
func (j *MaintenanceJobs) PruneRevokedTokens(ctx context.Context) error {
	pruned := j.jwtService.PruneRevokedTokens(24 * time.Hour)
	if pruned > 0 {
		slog.Info("Cron: pruned revoked tokens", "count", pruned)
	}
	return nil
}
