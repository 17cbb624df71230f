package routers

import (
	"bpa-panel-service/internal/app/config"
	"bpa-panel-service/internal/app/delivery/http/controllers"
	"bpa-panel-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachProxyRoutes(router chi.Router, m *middlewares.Middlewares, internalConfig *config.InternalConfig, proxyController *controllers.ProxyController) {
	limiter := middlewares.NewRateLimiter(internalConfig.Proxy.RateLimitPerSecond, internalConfig.Proxy.RateLimitBurst, m.Log)
	router.With(limiter.Limit).Get("/proxy-image", proxyController.ProxyImage)
}
