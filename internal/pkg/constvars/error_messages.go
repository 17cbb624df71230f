package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":     "is required",
	"min":          "must be at least %s characters long",
	"max":          "maximum at %s characters long",
	"len":          "must be %s characters long",
	"oneof":        "must be one of [%s]",
	"gte":          "must be greater than or equal to %s",
	"lte":          "must be less than or equal to %s",
	"url":          "must be a valid URL",
	"latitude":     "must be a valid latitude",
	"longitude":    "must be a valid longitude",
	"country_code": "must be a two letter ISO country code",
	"context_key":  "must contain only letters, digits, '-', '_' or '.'",
	"panel_key":    "must be a known panel",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"len":   true,
	"oneof": true,
	"gte":   true,
	"lte":   true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientTooManyRequests               = "too many requests, please slow down"
	ErrClientImageNotAvailable             = "the image is not available"
	ErrClientInvalidImageURL               = "the image url is not allowed"
	ErrClientImageTooLarge                 = "the image is too large"
	ErrClientUnknownPanel                  = "unknown panel"
	ErrClientInvalidAuthAction             = "auth action must be login or register"
)

// Error messages for developers
const (
	ErrDevInvalidInput                = "invalid input"
	ErrDevValidationFailed            = "validation failed"
	ErrDevCannotParseJSON             = "cannot parse JSON"
	ErrDevCannotMarshalJSON           = "cannot marshal JSON"
	ErrDevServerDeadlineExceeded      = "server deadline exceeded"
	ErrDevServerProcess               = "server process failed"
	ErrDevCreateHTTPRequest           = "failed to create HTTP request"
	ErrDevSendHTTPRequest             = "failed to send HTTP request"
	ErrDevReadBody                    = "failed to read body"
	ErrDevUpstreamStatus              = "upstream responded with status %d"
	ErrDevBackendAPIStatus            = "backend API %s %s responded with status %d: %s"
	ErrDevBackendAPIUnsuccessful      = "backend API %s %s responded with success=false: %s"
	ErrDevBackendAPIDecode            = "failed to decode backend API response for %s %s"
	ErrDevBackendAPINotConfigured     = "backend API base url is not configured"
	ErrDevImageURLInvalid             = "image url %q is invalid"
	ErrDevImageURLSchemeNotAllowed    = "image url scheme %q is not allowed"
	ErrDevImageURLHostNotAllowed      = "image url host %q is not allowed"
	ErrDevImageTooLarge               = "image exceeds %d bytes"
	ErrDevUnknownPanel                = "unknown panel %q"
	ErrDevInvalidAuthAction           = "invalid auth action %q"
	ErrDevCentralAuthNotConfigured    = "central auth url is not configured"
	ErrDevMenuRegistryInvalid         = "menu registry is invalid: %s"
	ErrDevMenuDuplicateID             = "panel %s has duplicate menu id %q"
	ErrDevMenuHrefOutsidePanel        = "panel %s menu %q href %q does not start with %s"
	ErrDevMenuEmptyID                 = "panel %s has a menu entry with empty id"
	ErrDevPrincipalTokenInvalid       = "principal token is invalid"
	ErrDevRedisGetData                = "failed to get data from redis"
	ErrDevRedisSetData                = "failed to set data in redis"
	ErrDevRedisDeleteData             = "failed to delete data in redis"
	ErrDevMongoDBFindDocument         = "failed to find documents in mongodb"
	ErrDevMongoDBIterateDocuments     = "failed to iterate documents in mongodb"
	ErrDevMinioGetObject              = "failed to get object from minio bucket %s"
	ErrDevMinioCreateObject           = "failed to create object in minio bucket %s"
	ErrDevRabbitMQPublishMessage      = "failed to publish message to queue %s"
	ErrDevPreferenceBranchIDMalformed = "stored branch id is malformed"
)
