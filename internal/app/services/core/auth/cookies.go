package auth

import (
	"bpa-panel-service/internal/app/models"
	"net/http"
	"time"
)

// ClearAuthCookies expires every auth cookie on the response, present or
// not. Calling it twice is harmless.
func ClearAuthCookies(w http.ResponseWriter, secure bool) models.LocalClearResult {
	cleared := make([]string, 0, len(models.AuthCookieNames))
	for _, name := range models.AuthCookieNames {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			Expires:  time.Unix(0, 0),
			HttpOnly: true,
			Secure:   secure,
			SameSite: http.SameSiteLaxMode,
		})
		cleared = append(cleared, name)
	}
	return models.LocalClearResult{ClearedCookies: cleared}
}
