package contracts

import (
	"bpa-panel-service/internal/app/models"
	"context"
)

// BackendClient talks to the backend REST API. Every call unwraps the
// {success, data, message} envelope into out (which may be nil).
type BackendClient interface {
	Get(ctx context.Context, path string, credentials models.BackendCredentials, out interface{}) error
	Post(ctx context.Context, path string, credentials models.BackendCredentials, body, out interface{}) error
	Patch(ctx context.Context, path string, credentials models.BackendCredentials, body, out interface{}) error
	Delete(ctx context.Context, path string, credentials models.BackendCredentials, out interface{}) error
}
