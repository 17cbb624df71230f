package constvars

const (
	MIMETextPlain                  = "text/plain"
	MIMEApplicationJSON            = "application/json"
	MIMEApplicationJSONCharsetUTF8 = "application/json; charset=utf-8"
	MIMEOctetStream                = "application/octet-stream"
)

const (
	StatusOK                  = 200
	StatusCreated             = 201
	StatusNoContent           = 204
	StatusFound               = 302
	StatusSeeOther            = 303
	StatusBadRequest          = 400
	StatusUnauthorized        = 401
	StatusForbidden           = 403
	StatusNotFound            = 404
	StatusTooManyRequests     = 429
	StatusInternalServerError = 500
	StatusBadGateway          = 502
	StatusServiceUnavailable  = 503
	StatusGatewayTimeout      = 504
)

const (
	HeaderAuthorization            = "Authorization"
	HeaderCookie                   = "Cookie"
	HeaderSetCookie                = "Set-Cookie"
	HeaderReferer                  = "Referer"
	HeaderCacheControl             = "Cache-Control"
	HeaderContentType              = "Content-Type"
	HeaderContentLength            = "Content-Length"
	HeaderAccept                   = "Accept"
	HeaderAccessControlAllowOrigin = "Access-Control-Allow-Origin"
	HeaderOrigin                   = "Origin"
	HeaderXRequestID               = "X-Request-ID"
	HeaderXForwardedProto          = "X-Forwarded-Proto"
	HeaderXForwardedHost           = "X-Forwarded-Host"
	HeaderLocation                 = "Location"
)

const (
	AuthorizationBearerPrefix = "Bearer "
)
