package controllers

import (
	"bpa-panel-service/internal/app/config"
	"bpa-panel-service/internal/app/contracts"
	"bpa-panel-service/internal/app/models"
	"bpa-panel-service/internal/pkg/constvars"
	"bpa-panel-service/internal/pkg/dto/requests"
	"bpa-panel-service/internal/pkg/dto/responses"
	"bpa-panel-service/internal/pkg/exceptions"
	"bpa-panel-service/internal/pkg/utils"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type RecentLocationController struct {
	Log                   *zap.Logger
	RecentLocationUsecase contracts.RecentLocationUsecase
	InternalConfig        *config.InternalConfig
}

func NewRecentLocationController(logger *zap.Logger, recentLocationUsecase contracts.RecentLocationUsecase, internalConfig *config.InternalConfig) *RecentLocationController {
	return &RecentLocationController{
		Log:                   logger,
		RecentLocationUsecase: recentLocationUsecase,
		InternalConfig:        internalConfig,
	}
}

func (ctrl *RecentLocationController) List(w http.ResponseWriter, r *http.Request) {
	scope, err := ctrl.scopeFromQuery(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig.App.RequestTimeoutInSeconds)
	defer cancel()

	locations, err := ctrl.RecentLocationUsecase.List(ctx, scope)
	if err != nil {
		ctrl.Log.Error("RecentLocationController.List error from usecase",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(r.Context())),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetRecentLocationsSuccessMessage, ctrl.buildResponse(scope, locations))
}

func (ctrl *RecentLocationController) Save(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SaveRecentLocation)

	// Bind body to request
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	// Sanitize request
	utils.SanitizeSaveRecentLocationRequest(request)

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	scope := models.LocationScope{
		Owner:      utils.StorageOwnerFromContext(r.Context()),
		ContextKey: request.ContextKey,
	}
	location := models.RecentLocation{
		CountryCode:      request.CountryCode,
		AreaID:           request.AreaID,
		Lat:              request.Lat,
		Lng:              request.Lng,
		State:            request.State,
		City:             request.City,
		FormattedAddress: request.FormattedAddress,
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig.App.RequestTimeoutInSeconds)
	defer cancel()

	// Send it to be processed by usecase
	locations, err := ctrl.RecentLocationUsecase.Save(ctx, scope, location)
	if err != nil {
		ctrl.Log.Error("RecentLocationController.Save error from usecase",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(r.Context())),
			zap.String(constvars.LoggingContextKey, scope.ContextKey),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	// Send response
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SaveRecentLocationSuccessMessage, ctrl.buildResponse(scope, locations))
}

func (ctrl *RecentLocationController) Clear(w http.ResponseWriter, r *http.Request) {
	scope, err := ctrl.scopeFromQuery(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig.App.RequestTimeoutInSeconds)
	defer cancel()

	err = ctrl.RecentLocationUsecase.Clear(ctx, scope)
	if err != nil {
		ctrl.Log.Error("RecentLocationController.Clear error from usecase",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(r.Context())),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ClearRecentLocationsSuccessMessage, ctrl.buildResponse(scope, nil))
}

func (ctrl *RecentLocationController) scopeFromQuery(r *http.Request) (models.LocationScope, error) {
	request := &requests.RecentLocationScope{
		ContextKey: strings.TrimSpace(r.URL.Query().Get(constvars.URLQueryParamContext)),
	}
	if err := utils.ValidateStruct(request); err != nil {
		return models.LocationScope{}, exceptions.ErrInputValidation(err)
	}
	return models.LocationScope{
		Owner:      utils.StorageOwnerFromContext(r.Context()),
		ContextKey: request.ContextKey,
	}, nil
}

func (ctrl *RecentLocationController) buildResponse(scope models.LocationScope, locations []models.RecentLocation) responses.RecentLocations {
	if locations == nil {
		locations = []models.RecentLocation{}
	}
	contextKey := scope.ContextKey
	if contextKey == "" {
		contextKey = constvars.DefaultRecentLocationContext
	}
	return responses.RecentLocations{
		ContextKey: contextKey,
		Limit:      ctrl.RecentLocationUsecase.Limit(),
		Locations:  locations,
	}
}
