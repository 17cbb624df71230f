package controllers

import (
	"bpa-panel-service/internal/app/contracts"
	"bpa-panel-service/internal/app/models"
	"bpa-panel-service/internal/pkg/constvars"
	"bpa-panel-service/internal/pkg/dto/responses"
	"bpa-panel-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type MenuController struct {
	Log         *zap.Logger
	MenuUsecase contracts.MenuUsecase
}

func NewMenuController(logger *zap.Logger, menuUsecase contracts.MenuUsecase) *MenuController {
	return &MenuController{
		Log:         logger,
		MenuUsecase: menuUsecase,
	}
}

func (ctrl *MenuController) GetMenu(w http.ResponseWriter, r *http.Request) {
	panel := utils.PanelFromContext(r.Context())
	principal := utils.PrincipalFromContext(r.Context())

	resolution := ctrl.MenuUsecase.Resolve(panel.Key, principal.Permissions)

	home := models.PanelContext{Key: resolution.Panel, BasePath: resolution.BasePath}
	response := responses.Menu{
		Panel:    resolution.Panel.String(),
		BasePath: resolution.BasePath,
		HomeHref: home.HomeHref(),
		Fallback: resolution.Fallback,
		Entries:  resolution.Entries,
	}
	if response.Entries == nil {
		response.Entries = []models.MenuEntry{}
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetMenuSuccessMessage, response)
}
