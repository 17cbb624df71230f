package routers

import (
	"bpa-panel-service/internal/app/config"
	"bpa-panel-service/internal/app/delivery/http/controllers"
	"bpa-panel-service/internal/app/delivery/http/middlewares"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/sirupsen/logrus"
)

func SetupRoutes(
	router *chi.Mux,
	logrusLogger *logrus.Logger,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	panelController *controllers.PanelController,
	menuController *controllers.MenuController,
	authController *controllers.AuthController,
	proxyController *controllers.ProxyController,
	recentLocationController *controllers.RecentLocationController,
	preferenceController *controllers.PreferenceController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   allowedOrigins(internalConfig),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, rateLimitWindow(internalConfig.App))
	router.Use(rateLimiter)

	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.RequestLogger(internalConfig.App, logrusLogger))
	router.Use(middlewares.PanelContext)

	attachPanelRoutes(router, middlewares, panelController, authController)

	router.Route("/api", func(r chi.Router) {
		r.Use(middlewares.DeviceID)
		r.Use(middlewares.Principal)

		attachMenuRoutes(r, middlewares, menuController)
		attachAuthRoutes(r, middlewares, authController)
		attachProxyRoutes(r, middlewares, internalConfig, proxyController)

		r.Route("/recent-locations", func(r chi.Router) {
			attachRecentLocationRoutes(r, middlewares, recentLocationController)
		})

		r.Route("/preferences", func(r chi.Router) {
			attachPreferenceRoutes(r, middlewares, preferenceController)
		})
	})

	router.Route("/{panel}/api", func(r chi.Router) {
		r.Use(middlewares.DeviceID)
		r.Use(middlewares.Principal)

		attachMenuRoutes(r, middlewares, menuController)
	})
}

func allowedOrigins(internalConfig *config.InternalConfig) []string {
	if internalConfig.App.PublicOrigin == "" {
		return []string{"*"}
	}
	origins := []string{internalConfig.App.PublicOrigin}
	if !internalConfig.App.IsProduction() {
		for _, pattern := range internalConfig.Auth.DevOrigins {
			origins = append(origins, "http://"+pattern)
		}
	}
	return origins
}

func rateLimitWindow(app config.App) time.Duration {
	if app.MaxTimeRequestsPerSeconds <= 0 {
		return time.Second
	}
	return time.Duration(app.MaxTimeRequestsPerSeconds) * time.Second
}
