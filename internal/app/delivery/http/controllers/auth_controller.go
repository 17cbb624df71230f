package controllers

import (
	"bpa-panel-service/internal/app/config"
	"bpa-panel-service/internal/app/contracts"
	"bpa-panel-service/internal/app/models"
	"bpa-panel-service/internal/app/services/core/auth"
	"bpa-panel-service/internal/pkg/constvars"
	"bpa-panel-service/internal/pkg/dto/requests"
	"bpa-panel-service/internal/pkg/dto/responses"
	"bpa-panel-service/internal/pkg/exceptions"
	"bpa-panel-service/internal/pkg/utils"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AuthController struct {
	Log            *zap.Logger
	AuthUsecase    contracts.AuthUsecase
	InternalConfig *config.InternalConfig
}

func NewAuthController(logger *zap.Logger, authUsecase contracts.AuthUsecase, internalConfig *config.InternalConfig) *AuthController {
	return &AuthController{
		Log:            logger,
		AuthUsecase:    authUsecase,
		InternalConfig: internalConfig,
	}
}

func referer(r *http.Request) string {
	if value := r.Header.Get(constvars.HeaderReferer); value != "" {
		return value
	}
	return r.URL.Query().Get(constvars.URLQueryParamReferer)
}

func (ctrl *AuthController) GetLoginPath(w http.ResponseWriter, r *http.Request) {
	path := ctrl.AuthUsecase.ResolveLoginPath(referer(r))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginPathSuccessMessage, responses.LoginPath{Path: path})
}

// Logout clears the auth cookies and reports whether the backend session was
// invalidated too.
func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	result, redirectTo := ctrl.logout(w, r)

	response := responses.Logout{
		Outcome:        string(result.Outcome()),
		ClearedCookies: result.Local.ClearedCookies,
		RedirectTo:     redirectTo,
	}
	message := constvars.LogoutSuccessMessage
	if result.Outcome() == models.LogoutLocalOnly {
		message = constvars.LogoutLocalOnlySuccessMessage
		if result.Backend.Err != nil {
			response.BackendError = clientMessageOf(result.Backend.Err)
		}
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, message, response)
}

// LogoutRedirect clears the auth cookies and sends the browser to the login
// page of the panel it came from.
func (ctrl *AuthController) LogoutRedirect(w http.ResponseWriter, r *http.Request) {
	_, redirectTo := ctrl.logout(w, r)
	http.Redirect(w, r, redirectTo, http.StatusFound)
}

func (ctrl *AuthController) logout(w http.ResponseWriter, r *http.Request) (models.LogoutResult, string) {
	// Local clear first, cookies must be written before the status line
	local := auth.ClearAuthCookies(w, ctrl.InternalConfig.App.IsProduction())

	refererValue := referer(r)
	token := utils.ExtractBearerToken(r)
	request := &requests.Logout{
		Token: token,
	}
	// A device cookie alone is not a session to invalidate
	if utils.HasAuthCookie(r) {
		request.Cookie = r.Header.Get(constvars.HeaderCookie)
	}
	if panel, ok := auth.PanelFromReferer(refererValue); ok {
		request.Panel = panel.String()
	}
	if claims, err := utils.ParseAccessToken(token, ctrl.InternalConfig.JWT.Secret); err == nil {
		request.Subject = claims.Subject
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig.Backend.RequestTimeoutSeconds)
	defer cancel()

	backend := ctrl.AuthUsecase.Logout(ctx, request)

	return models.LogoutResult{Local: local, Backend: backend}, ctrl.AuthUsecase.ResolveLoginPath(refererValue)
}

// AuthRedirect sends the browser to the central auth surface. Clients asking
// for JSON get the URL in the envelope instead.
func (ctrl *AuthController) AuthRedirect(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	request := &requests.AuthRedirect{
		Panel:    query.Get(constvars.URLQueryParamPanel),
		Action:   query.Get(constvars.URLQueryParamAction),
		ReturnTo: query.Get(constvars.URLQueryParamReturnTo),
		Next:     query.Get(constvars.URLQueryParamNext),
	}
	ctrl.redirectToCentralAuth(w, r, request)
}

func (ctrl *AuthController) PanelLogin(w http.ResponseWriter, r *http.Request) {
	ctrl.panelAuth(w, r, models.AuthActionLogin)
}

func (ctrl *AuthController) PanelRegister(w http.ResponseWriter, r *http.Request) {
	ctrl.panelAuth(w, r, models.AuthActionRegister)
}

func (ctrl *AuthController) panelAuth(w http.ResponseWriter, r *http.Request, action models.AuthAction) {
	query := r.URL.Query()
	request := &requests.AuthRedirect{
		Panel:    chi.URLParam(r, constvars.URLParamPanel),
		Action:   string(action),
		ReturnTo: query.Get(constvars.URLQueryParamReturnTo),
		Next:     query.Get(constvars.URLQueryParamNext),
	}
	ctrl.redirectToCentralAuth(w, r, request)
}

func (ctrl *AuthController) redirectToCentralAuth(w http.ResponseWriter, r *http.Request, request *requests.AuthRedirect) {
	// Sanitize request
	utils.SanitizeAuthRedirectRequest(request)

	// Validate request
	err := utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	target, err := ctrl.AuthUsecase.BuildAuthRedirectURL(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if strings.Contains(r.Header.Get(constvars.HeaderAccept), constvars.MIMEApplicationJSON) {
		utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AuthRedirectSuccessMessage, responses.AuthRedirect{URL: target.String()})
		return
	}
	http.Redirect(w, r, target.String(), http.StatusFound)
}

func clientMessageOf(err error) string {
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		return customErr.ClientMessage
	}
	return constvars.ErrClientCannotProcessRequest
}
