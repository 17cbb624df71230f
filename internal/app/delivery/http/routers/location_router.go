package routers

import (
	"bpa-panel-service/internal/app/delivery/http/controllers"
	"bpa-panel-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachRecentLocationRoutes(router chi.Router, middlewares *middlewares.Middlewares, recentLocationController *controllers.RecentLocationController) {
	router.Get("/", recentLocationController.List)
	router.Post("/", recentLocationController.Save)
	router.Delete("/", recentLocationController.Clear)
}
