package contracts

import (
	"bpa-panel-service/internal/app/models"
	"context"
)

type SessionService interface {
	ResolvePrincipal(ctx context.Context, credentials models.BackendCredentials) *models.Principal
}
