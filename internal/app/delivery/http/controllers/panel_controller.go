package controllers

import (
	"bpa-panel-service/internal/app/config"
	"bpa-panel-service/internal/app/models"
	"bpa-panel-service/internal/pkg/constvars"
	"bpa-panel-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type PanelController struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
}

func NewPanelController(logger *zap.Logger, internalConfig *config.InternalConfig) *PanelController {
	return &PanelController{
		Log:            logger,
		InternalConfig: internalConfig,
	}
}

// Root sends the browser to the dashboard of the panel the deployment serves.
func (ctrl *PanelController) Root(w http.ResponseWriter, r *http.Request) {
	panel, ok := models.ParsePanelKey(ctrl.InternalConfig.App.SiteMode)
	if !ok {
		panel = models.PanelAdmin
	}
	home := models.PanelContext{Key: panel, BasePath: panel.BasePath()}
	http.Redirect(w, r, home.HomeHref(), http.StatusFound)
}

func (ctrl *PanelController) Healthz(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthySuccessMessage, map[string]string{
		"version": ctrl.InternalConfig.App.Version,
	})
}
