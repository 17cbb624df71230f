package constvars

const (
	URLParamPanel = "panel"
)

const (
	URLQueryParamPanel    = "panel"
	URLQueryParamURL      = "url"
	URLQueryParamContext  = "context"
	URLQueryParamAction   = "action"
	URLQueryParamReturnTo = "returnTo"
	URLQueryParamNext     = "next"
	URLQueryParamApp      = "app"
	URLQueryParamReferer  = "referer"
)
