package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_PANEL_KEY                ContextKey = "panel"
	CONTEXT_PRINCIPAL_KEY            ContextKey = "principal"
	CONTEXT_DEVICE_ID_KEY            ContextKey = "device_id"
)

const (
	REQUEST_ID_PREFIX = "BPA_SVC_"
)

const (
	AppEnvProduction  = "production"
	AppEnvDevelopment = "development"
)

const (
	// Panel served when SITE_MODE is empty or unrecognised, and the base
	// path handed to descendants when no panel is in scope.
	DefaultSiteMode = "admin"
	DefaultBasePath = "/admin"
	GlobalLoginPath = "/login"
	PanelHomeSuffix = "/dashboard"
)

const (
	AuthActionLogin    = "login"
	AuthActionRegister = "register"
)

const (
	AuthEventLogout = "auth.logout"
)

const (
	MongoCollectionPanelMenus = "panel_menus"
)
