package routers

import (
	"bpa-panel-service/internal/app/delivery/http/controllers"
	"bpa-panel-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachPreferenceRoutes(router chi.Router, middlewares *middlewares.Middlewares, preferenceController *controllers.PreferenceController) {
	router.Get("/branch", preferenceController.GetSelectedBranch)
	router.Put("/branch", preferenceController.SaveSelectedBranch)
	router.Delete("/branch", preferenceController.ClearSelectedBranch)
}
