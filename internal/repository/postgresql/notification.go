package postgresql

import (
	"context"
	"fmt"

	"github.com/staffhub-id/attendance-backend-go/internal/domain/notification"
	"github.com/staffhub-id/attendance-backend-go/internal/pkg/database"
)

type notificationRepositoryImpl struct {
	db *database.DB
}

func NewNotificationRepository(db *database.DB) notification.Repository {
	return &notificationRepositoryImpl{db: db}
}

// Create implements notification.Repository.
func (r *notificationRepositoryImpl) Create(ctx context.Context, event *notification.Event) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO notifications (id, type, title, message, target_roles, corporate_id, employee_id, link, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := q.Exec(ctx, query,
		event.ID,
		event.Type,
		event.Title,
		event.Message,
		event.TargetRoles,
		event.CorporateID,
		event.EmployeeID,
		event.Link,
		event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	return nil
}
