package routers

import (
	"bpa-panel-service/internal/app/delivery/http/controllers"
	"bpa-panel-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *controllers.AuthController) {
	router.Get("/login-path", authController.GetLoginPath)
	router.Post("/logout", authController.Logout)
	router.Get("/logout", authController.LogoutRedirect)
	router.Get("/auth/redirect", authController.AuthRedirect)
}
