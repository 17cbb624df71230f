package routers

import (
	"bpa-panel-service/internal/app/delivery/http/controllers"
	"bpa-panel-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachPanelRoutes(router chi.Router, middlewares *middlewares.Middlewares, panelController *controllers.PanelController, authController *controllers.AuthController) {
	router.Get("/", panelController.Root)
	router.Get("/healthz", panelController.Healthz)
	router.Get("/{panel}/login", authController.PanelLogin)
	router.Get("/{panel}/register", authController.PanelRegister)
}
