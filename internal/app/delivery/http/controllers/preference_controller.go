package controllers

import (
	"bpa-panel-service/internal/app/config"
	"bpa-panel-service/internal/app/contracts"
	"bpa-panel-service/internal/pkg/constvars"
	"bpa-panel-service/internal/pkg/dto/requests"
	"bpa-panel-service/internal/pkg/dto/responses"
	"bpa-panel-service/internal/pkg/exceptions"
	"bpa-panel-service/internal/pkg/utils"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type PreferenceController struct {
	Log               *zap.Logger
	PreferenceUsecase contracts.PreferenceUsecase
	InternalConfig    *config.InternalConfig
}

func NewPreferenceController(logger *zap.Logger, preferenceUsecase contracts.PreferenceUsecase, internalConfig *config.InternalConfig) *PreferenceController {
	return &PreferenceController{
		Log:               logger,
		PreferenceUsecase: preferenceUsecase,
		InternalConfig:    internalConfig,
	}
}

func (ctrl *PreferenceController) GetSelectedBranch(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.InternalConfig.App.RequestTimeoutInSeconds)
	defer cancel()

	branchID, err := ctrl.PreferenceUsecase.GetSelectedBranch(ctx, utils.StorageOwnerFromContext(r.Context()))
	if err != nil {
		ctrl.Log.Error("PreferenceController.GetSelectedBranch error from usecase",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(r.Context())),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetBranchPreferenceSuccessMessage, responses.BranchPreference{BranchID: branchID})
}

func (ctrl *PreferenceController) SaveSelectedBranch(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SaveBranchPreference)

	// Bind body to request
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	// Sanitize request
	utils.SanitizeSaveBranchPreferenceRequest(request)

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig.App.RequestTimeoutInSeconds)
	defer cancel()

	// Send it to be processed by usecase
	err = ctrl.PreferenceUsecase.SaveSelectedBranch(ctx, utils.StorageOwnerFromContext(r.Context()), request.BranchID)
	if err != nil {
		ctrl.Log.Error("PreferenceController.SaveSelectedBranch error from usecase",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(r.Context())),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	// Send response
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SaveBranchPreferenceSuccessMessage, responses.BranchPreference{BranchID: request.BranchID})
}

func (ctrl *PreferenceController) ClearSelectedBranch(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.InternalConfig.App.RequestTimeoutInSeconds)
	defer cancel()

	err := ctrl.PreferenceUsecase.ClearSelectedBranch(ctx, utils.StorageOwnerFromContext(r.Context()))
	if err != nil {
		ctrl.Log.Error("PreferenceController.ClearSelectedBranch error from usecase",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(r.Context())),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ClearBranchPreferenceSuccessMessage, responses.BranchPreference{})
}
