package constvars

const (
	LoggingRequestIDKey  = "request_id"
	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"
	LoggingPanelKey      = "panel"
	LoggingSubjectKey    = "subject"
	LoggingTargetKey     = "target"
	LoggingErrorTypeKey  = "error_type"
	LoggingOutcomeKey    = "outcome"
	LoggingContextKey    = "context_key"
	LoggingCountKey      = "count"
)
