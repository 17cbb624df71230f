package routers

import (
	"bpa-panel-service/internal/app/delivery/http/controllers"
	"bpa-panel-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachMenuRoutes(router chi.Router, middlewares *middlewares.Middlewares, menuController *controllers.MenuController) {
	router.Get("/menu", menuController.GetMenu)
}
