package config

type (
	DriverConfig struct {
		Redis    Redis
		MongoDB  MongoDB
		Minio    Minio
		RabbitMQ RabbitMQ
		Logger   Logger
	}
	Redis struct {
		Host     string
		Port     string
		Password string
		DB       int
	}
	MongoDB struct {
		Host     string
		Port     string
		Username string
		Password string
		DbName   string
	}
	Minio struct {
		Host       string
		Port       string
		Username   string
		Password   string
		BucketName string
		UseSSL     bool
	}
	RabbitMQ struct {
		Host     string
		Port     string
		Username string
		Password string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)

// Enabled reports whether a Redis host was configured.
func (r Redis) Enabled() bool { return r.Host != "" }

func (m MongoDB) Enabled() bool { return m.Host != "" }

func (m Minio) Enabled() bool { return m.Host != "" && m.BucketName != "" }

func (r RabbitMQ) Enabled() bool { return r.Host != "" }

type InternalConfig struct {
	App       App
	Auth      AppAuth
	JWT       AppJWT
	Menu      AppMenu
	Proxy     AppProxy
	Backend   AppBackend
	Locations AppLocations
	RabbitMQ  AppRabbitMQ
}

type App struct {
	Env                       string
	Port                      string
	Version                   string
	Timezone                  string
	PublicOrigin              string
	SiteMode                  string
	MaxRequests               int
	ShutdownTimeoutInSeconds  int
	RequestTimeoutInSeconds   int
	// MaxTimeRequestsPerSeconds is the window, in seconds, MaxRequests
	// applies to per client IP.
	MaxTimeRequestsPerSeconds int
}

func (a App) IsProduction() bool {
	return a.Env == "production"
}

type AppAuth struct {
	// CentralAuthURL is the base URL of the central authentication surface
	// login and registration flows are redirected to.
	CentralAuthURL string
	// DevOrigins are host patterns ("localhost:*") accepted as returnTo
	// origins besides the public origin.
	DevOrigins []string
}

type AppJWT struct {
	Secret string
}

type AppMenu struct {
	// PermissiveMode shows every entry to callers without permissions.
	PermissiveMode bool
}

type AppProxy struct {
	AllowedHosts          []string
	CacheableHosts        []string
	RequestTimeoutSeconds int
	MaxImageSizeInMB      int64
	CacheMaxAgeSeconds    int
	RateLimitPerSecond    int
	RateLimitBurst        int
}

type AppBackend struct {
	BaseUrl               string
	LogoutPath            string
	MePath                string
	RequestTimeoutSeconds int
	RetryMax              int
}

type AppLocations struct {
	Limit int
}

type AppRabbitMQ struct {
	AuthEventsQueue string
}
