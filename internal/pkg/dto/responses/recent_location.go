package responses

import "bpa-panel-service/internal/app/models"

type RecentLocations struct {
	ContextKey string                  `json:"context_key"`
	Limit      int                     `json:"limit"`
	Locations  []models.RecentLocation `json:"locations"`
}
