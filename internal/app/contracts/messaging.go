package contracts

import (
	"bpa-panel-service/internal/app/models"
	"context"
)

type EventPublisher interface {
	PublishAuthEvent(ctx context.Context, event *models.AuthEvent) error
}
