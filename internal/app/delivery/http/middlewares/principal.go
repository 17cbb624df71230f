package middlewares

import (
	"bpa-panel-service/internal/app/models"
	"bpa-panel-service/internal/pkg/constvars"
	"bpa-panel-service/internal/pkg/utils"
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Principal resolves the caller and stores it in the request context. It
// never rejects a request; unknown callers are anonymous.
func (m *Middlewares) Principal(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		credentials := models.BackendCredentials{
			Token: utils.ExtractBearerToken(r),
		}
		// A device cookie alone is not a session
		if utils.HasAuthCookie(r) {
			credentials.Cookie = r.Header.Get(constvars.HeaderCookie)
		}

		timeout := time.Duration(m.InternalConfig.Backend.RequestTimeoutSeconds) * time.Second
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		principal := m.SessionService.ResolvePrincipal(ctx, credentials)
		cancel()

		if principal.IsAuthenticated() {
			m.Log.Debug("Middlewares.Principal caller identified",
				zap.String(constvars.LoggingSubjectKey, principal.Subject),
			)
		}

		ctx = context.WithValue(r.Context(), constvars.CONTEXT_PRINCIPAL_KEY, principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// DeviceID makes sure every caller carries a stable anonymous device id,
// issuing a new cookie when the current one is missing or not a UUID.
func (m *Middlewares) DeviceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		deviceID := ""
		if cookie, err := r.Cookie(constvars.DeviceIDCookieName); err == nil && utils.IsValidDeviceID(cookie.Value) {
			deviceID = cookie.Value
		}

		if deviceID == "" {
			deviceID = utils.GenerateDeviceID()
			http.SetCookie(w, &http.Cookie{
				Name:     constvars.DeviceIDCookieName,
				Value:    deviceID,
				Path:     "/",
				MaxAge:   constvars.DeviceIDCookieMaxAge,
				HttpOnly: true,
				Secure:   m.InternalConfig.App.IsProduction() || utils.IsSecureRequest(r),
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_DEVICE_ID_KEY, deviceID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
