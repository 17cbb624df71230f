package contracts

import (
	"bpa-panel-service/internal/app/models"
	"context"
)

type MenuUsecase interface {
	Resolve(panel models.PanelKey, permissions models.PermissionSet) models.MenuResolution
	ResolveByName(panelName string, permissions models.PermissionSet) models.MenuResolution
}

type MenuRepository interface {
	FindAll(ctx context.Context) ([]models.PanelMenu, error)
}
