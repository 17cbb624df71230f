package responses

import "bpa-panel-service/internal/app/models"

type Menu struct {
	Panel    string             `json:"panel"`
	BasePath string             `json:"base_path"`
	HomeHref string             `json:"home_href"`
	Fallback bool               `json:"fallback"`
	Entries  []models.MenuEntry `json:"entries"`
}
