package messaging

import (
	"bpa-panel-service/internal/app/models"
	"context"
)

type noopPublisher struct{}

// NewNoopPublisher drops every event. Used when RabbitMQ is not configured.
func NewNoopPublisher() *noopPublisher {
	return &noopPublisher{}
}

func (p *noopPublisher) PublishAuthEvent(ctx context.Context, event *models.AuthEvent) error {
	return nil
}
