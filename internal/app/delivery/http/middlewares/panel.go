package middlewares

import (
	"bpa-panel-service/internal/app/models"
	"bpa-panel-service/internal/pkg/constvars"
	"context"
	"net/http"
)

// PanelContext scopes the request to a panel taken from the first path
// segment, else from the panel query parameter. Requests naming no known
// panel are scoped to the unknown panel under the default base path.
func (m *Middlewares) PanelContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panel, ok := models.PanelFromPath(r.URL.Path)
		if !ok {
			panel, ok = models.ParsePanelKey(r.URL.Query().Get(constvars.URLQueryParamPanel))
		}

		panelContext := models.PanelContext{Key: models.PanelUnknown, BasePath: constvars.DefaultBasePath}
		if ok {
			panelContext = models.PanelContext{Key: panel, BasePath: panel.BasePath()}
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_PANEL_KEY, panelContext)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
