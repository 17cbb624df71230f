package contracts

import (
	"bpa-panel-service/internal/app/models"
	"bpa-panel-service/internal/pkg/dto/requests"
	"context"
	"net/url"
)

type AuthUsecase interface {
	ResolveLoginPath(referer string) string
	BuildAuthRedirectURL(ctx context.Context, request *requests.AuthRedirect) (*url.URL, error)
	Logout(ctx context.Context, request *requests.Logout) models.BackendLogoutResult
}
