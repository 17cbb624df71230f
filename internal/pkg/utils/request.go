package utils

import (
	"bpa-panel-service/internal/app/models"
	"bpa-panel-service/internal/pkg/constvars"
	"net"
	"net/http"
	"strings"
)

// ExtractBearerToken returns the caller's token from the Authorization
// header, falling back to the auth cookies in their declared order.
func ExtractBearerToken(r *http.Request) string {
	authHeader := r.Header.Get(constvars.HeaderAuthorization)
	if strings.HasPrefix(authHeader, constvars.AuthorizationBearerPrefix) {
		if token := strings.TrimSpace(strings.TrimPrefix(authHeader, constvars.AuthorizationBearerPrefix)); token != "" {
			return token
		}
	}

	for _, name := range models.AuthCookieNames {
		if name == "refresh_token" {
			continue
		}
		cookie, err := r.Cookie(name)
		if err == nil && cookie.Value != "" {
			return cookie.Value
		}
	}
	return ""
}

// HasAuthCookie reports whether any of the auth cookies is set.
func HasAuthCookie(r *http.Request) bool {
	for _, name := range models.AuthCookieNames {
		if cookie, err := r.Cookie(name); err == nil && cookie.Value != "" {
			return true
		}
	}
	return false
}

func GetClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first := strings.TrimSpace(strings.Split(xff, ",")[0])
		if first != "" {
			return first
		}
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// IsSecureRequest reports whether the request reached the gateway over TLS,
// directly or through a proxy that says so.
func IsSecureRequest(r *http.Request) bool {
	return r.TLS != nil || strings.EqualFold(r.Header.Get(constvars.HeaderXForwardedProto), "https")
}
