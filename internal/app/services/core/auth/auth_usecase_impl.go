package auth

import (
	"bpa-panel-service/internal/app/config"
	"bpa-panel-service/internal/app/contracts"
	"bpa-panel-service/internal/app/models"
	"bpa-panel-service/internal/pkg/constvars"
	"bpa-panel-service/internal/pkg/dto/requests"
	"bpa-panel-service/internal/pkg/exceptions"
	"context"
	"net/url"
	"time"

	"go.uber.org/zap"
)

const publishTimeout = 2 * time.Second

type authUsecase struct {
	BackendClient  contracts.BackendClient
	EventPublisher contracts.EventPublisher
	InternalConfig *config.InternalConfig
	Policy         RedirectPolicy
	Log            *zap.Logger
}

func NewAuthUsecase(
	backendClient contracts.BackendClient,
	eventPublisher contracts.EventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		BackendClient:  backendClient,
		EventPublisher: eventPublisher,
		InternalConfig: internalConfig,
		Policy: RedirectPolicy{
			CentralAuthURL: internalConfig.Auth.CentralAuthURL,
			PublicOrigin:   internalConfig.App.PublicOrigin,
			DevOrigins:     internalConfig.Auth.DevOrigins,
		},
		Log: logger,
	}
}

func (uc *authUsecase) ResolveLoginPath(referer string) string {
	return ResolveLoginPath(referer)
}

func (uc *authUsecase) BuildAuthRedirectURL(ctx context.Context, request *requests.AuthRedirect) (*url.URL, error) {
	panel, ok := models.ParsePanelKey(request.Panel)
	if !ok {
		return nil, exceptions.ErrUnknownPanel(nil, request.Panel)
	}

	target, err := BuildAuthRedirectURL(uc.Policy, panel, models.AuthAction(request.Action), request.ReturnTo, request.Next)
	if err != nil {
		return nil, err
	}

	if request.ReturnTo != "" && target.Query().Get(constvars.URLQueryParamReturnTo) == "" {
		uc.Log.Warn("authUsecase.BuildAuthRedirectURL dropped untrusted returnTo",
			zap.String(constvars.LoggingPanelKey, panel.String()),
			zap.String(constvars.LoggingTargetKey, request.ReturnTo),
		)
	}
	return target, nil
}

// Logout asks the backend to invalidate the session. It never fails: the
// outcome is reported in the result and an auth event is published on a
// best-effort basis.
func (uc *authUsecase) Logout(ctx context.Context, request *requests.Logout) models.BackendLogoutResult {
	result := models.BackendLogoutResult{}

	hasCredentials := request.Token != "" || request.Cookie != ""
	if hasCredentials && uc.InternalConfig.Backend.BaseUrl != "" {
		credentials := models.BackendCredentials{
			Token:  request.Token,
			Cookie: request.Cookie,
		}
		result.Attempted = true
		result.Err = uc.BackendClient.Post(ctx, uc.InternalConfig.Backend.LogoutPath, credentials, nil, nil)
		if result.Err != nil {
			uc.Log.Warn("authUsecase.Logout backend logout failed, cookies cleared locally only",
				zap.String(constvars.LoggingSubjectKey, request.Subject),
				zap.Error(result.Err),
			)
		}
	}

	uc.publishLogout(ctx, request, result)
	return result
}

func (uc *authUsecase) publishLogout(ctx context.Context, request *requests.Logout, backend models.BackendLogoutResult) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	event := &models.AuthEvent{
		Type:       constvars.AuthEventLogout,
		Subject:    request.Subject,
		Panel:      request.Panel,
		Outcome:    string(models.LogoutResult{Backend: backend}.Outcome()),
		RequestID:  requestID,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}

	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	err := uc.EventPublisher.PublishAuthEvent(publishCtx, event)
	if err != nil {
		uc.Log.Warn("authUsecase.publishLogout failed to publish auth event",
			zap.String(constvars.LoggingOutcomeKey, event.Outcome),
			zap.Error(err),
		)
	}
}
