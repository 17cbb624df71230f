package session

import (
	"bpa-panel-service/internal/app/config"
	"bpa-panel-service/internal/app/contracts"
	"bpa-panel-service/internal/app/models"
	"bpa-panel-service/internal/pkg/utils"
	"context"

	"go.uber.org/zap"
)

type sessionService struct {
	BackendClient contracts.BackendClient
	JWTSecret     string
	MePath        string
	Log           *zap.Logger
}

func NewSessionService(backendClient contracts.BackendClient, internalConfig *config.InternalConfig, logger *zap.Logger) contracts.SessionService {
	return &sessionService{
		BackendClient: backendClient,
		JWTSecret:     internalConfig.JWT.Secret,
		MePath:        internalConfig.Backend.MePath,
		Log:           logger,
	}
}

// ResolvePrincipal verifies the access token locally when a secret is
// configured and otherwise asks the backend who the caller is. Any failure
// yields the anonymous principal.
func (svc *sessionService) ResolvePrincipal(ctx context.Context, credentials models.BackendCredentials) *models.Principal {
	if credentials.Token == "" && credentials.Cookie == "" {
		return models.AnonymousPrincipal()
	}

	if credentials.Token != "" && svc.JWTSecret != "" {
		claims, err := utils.ParseAccessToken(credentials.Token, svc.JWTSecret)
		if err == nil {
			return &models.Principal{
				Subject:     claims.Subject,
				Roles:       claims.Roles,
				Permissions: models.NewPermissionSet(claims.Permissions...),
				Token:       credentials.Token,
			}
		}
		svc.Log.Debug("sessionService.ResolvePrincipal local token verification failed, asking backend",
			zap.Error(err),
		)
	}

	if svc.MePath == "" {
		return models.AnonymousPrincipal()
	}

	var profile models.BackendProfile
	err := svc.BackendClient.Get(ctx, svc.MePath, credentials, &profile)
	if err != nil || profile.ID == "" {
		svc.Log.Debug("sessionService.ResolvePrincipal backend did not identify caller",
			zap.Error(err),
		)
		return models.AnonymousPrincipal()
	}

	return &models.Principal{
		Subject:     profile.ID,
		Roles:       profile.Roles,
		Permissions: models.NewPermissionSet(profile.Permissions...),
		Token:       credentials.Token,
	}
}
