package config

import (
	"bpa-panel-service/internal/pkg/utils"
	"net/url"
	"strings"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", ""),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		MongoDB: MongoDB{
			Host:     utils.GetEnvString("MONGODB_HOST", ""),
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Username: utils.GetEnvString("MONGODB_USERNAME", ""),
			Password: utils.GetEnvString("MONGODB_PASSWORD", ""),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "bpa"),
		},
		Minio: Minio{
			Host:       utils.GetEnvString("MINIO_HOST", ""),
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Username:   utils.GetEnvString("MINIO_USERNAME", ""),
			Password:   utils.GetEnvString("MINIO_PASSWORD", ""),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", ""),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		RabbitMQ: RabbitMQ{
			Host:     utils.GetEnvString("RABBITMQ_HOST", ""),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "info"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	env := utils.GetEnvString("APP_ENV", "development")
	apiBaseUrl := utils.GetEnvString("API_BASE_URL", utils.GetEnvString("NEXT_PUBLIC_API_BASE_URL", ""))

	// Local development origins are only trusted outside production unless
	// explicitly configured.
	defaultDevOrigins := "localhost:*,127.0.0.1:*"
	if env == "production" {
		defaultDevOrigins = ""
	}

	return &InternalConfig{
		App: App{
			Env:                       env,
			Port:                      utils.GetEnvString("APP_PORT", ":8080"),
			Version:                   utils.GetEnvString("APP_VERSION", "v1.0"),
			Timezone:                  utils.GetEnvString("APP_TIMEZONE", "UTC"),
			PublicOrigin:              utils.GetEnvString("APP_PUBLIC_ORIGIN", "http://localhost:3000"),
			SiteMode:                  utils.GetEnvString("SITE_MODE", "admin"),
			MaxRequests:               utils.GetEnvInt("APP_MAX_REQUEST", 50),
			ShutdownTimeoutInSeconds:  utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutInSeconds:   utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
			MaxTimeRequestsPerSeconds: utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 1),
		},
		Auth: AppAuth{
			CentralAuthURL: utils.GetEnvString("CENTRAL_AUTH_URL", ""),
			DevOrigins:     utils.GetEnvStringSlice("AUTH_DEV_ORIGINS", defaultDevOrigins),
		},
		JWT: AppJWT{
			Secret: utils.GetEnvString("JWT_SECRET", ""),
		},
		Menu: AppMenu{
			PermissiveMode: utils.GetEnvBool("MENU_PERMISSIVE_MODE", true),
		},
		Proxy: AppProxy{
			AllowedHosts:          utils.GetEnvStringSlice("PROXY_IMAGE_ALLOWED_HOSTS", hostOf(apiBaseUrl)),
			CacheableHosts:        utils.GetEnvStringSlice("PROXY_IMAGE_CACHEABLE_HOSTS", ""),
			RequestTimeoutSeconds: utils.GetEnvInt("PROXY_IMAGE_TIMEOUT_IN_SECONDS", 15),
			MaxImageSizeInMB:      utils.GetEnvInt64("PROXY_IMAGE_MAX_SIZE_IN_MB", 10),
			CacheMaxAgeSeconds:    utils.GetEnvInt("PROXY_IMAGE_CACHE_MAX_AGE_SECONDS", 300),
			RateLimitPerSecond:    utils.GetEnvInt("PROXY_IMAGE_RATE_LIMIT_PER_SECOND", 20),
			RateLimitBurst:        utils.GetEnvInt("PROXY_IMAGE_RATE_LIMIT_BURST", 40),
		},
		Backend: AppBackend{
			BaseUrl:               strings.TrimRight(apiBaseUrl, "/"),
			LogoutPath:            utils.GetEnvString("API_LOGOUT_PATH", "/auth/logout"),
			MePath:                utils.GetEnvString("API_ME_PATH", "/auth/me"),
			RequestTimeoutSeconds: utils.GetEnvInt("API_REQUEST_TIMEOUT_IN_SECONDS", 5),
			RetryMax:              utils.GetEnvInt("API_RETRY_MAX", 2),
		},
		Locations: AppLocations{
			Limit: utils.GetEnvInt("RECENT_LOCATIONS_LIMIT", 10),
		},
		RabbitMQ: AppRabbitMQ{
			AuthEventsQueue: utils.GetEnvString("APP_RABBITMQ_AUTH_EVENTS_QUEUE", "bpa.auth.events"),
		},
	}
}

func hostOf(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return parsed.Host
}
