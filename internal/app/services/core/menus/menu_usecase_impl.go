package menus

import (
	"bpa-panel-service/internal/app/contracts"
	"bpa-panel-service/internal/app/models"
	"bpa-panel-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

type menuUsecase struct {
	Registry       *Registry
	PermissiveMode bool
	Log            *zap.Logger
}

// NewMenuUsecase returns the resolver over an already validated registry.
// In permissive mode a caller without any permission sees every entry.
func NewMenuUsecase(registry *Registry, permissiveMode bool, logger *zap.Logger) contracts.MenuUsecase {
	if permissiveMode {
		logger.Warn("Menu permissive mode is enabled: callers without permissions see every menu entry, review before production")
	}
	return &menuUsecase{
		Registry:       registry,
		PermissiveMode: permissiveMode,
		Log:            logger,
	}
}

func (uc *menuUsecase) Resolve(panel models.PanelKey, permissions models.PermissionSet) models.MenuResolution {
	entries, ok := uc.Registry.Lookup(panel)
	if !ok {
		uc.Log.Debug("menuUsecase.Resolve panel has no menu, serving fallback",
			zap.String(constvars.LoggingPanelKey, panel.String()),
		)
		return fallbackResolution()
	}

	return models.MenuResolution{
		Panel:    panel,
		BasePath: panel.BasePath(),
		Entries:  uc.filter(entries, permissions),
	}
}

func (uc *menuUsecase) ResolveByName(panelName string, permissions models.PermissionSet) models.MenuResolution {
	panel, ok := models.ParsePanelKey(panelName)
	if !ok {
		return fallbackResolution()
	}
	return uc.Resolve(panel, permissions)
}

// filter keeps a leaf when it has no requirement, when permissive mode
// applies to an empty set, or when any required permission is held. A group
// is kept only if at least one child is.
func (uc *menuUsecase) filter(entries []models.MenuEntry, permissions models.PermissionSet) []models.MenuEntry {
	visible := make([]models.MenuEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.IsGroup() {
			children := uc.filter(entry.Children, permissions)
			if len(children) == 0 {
				continue
			}
			entry.Children = children
			visible = append(visible, entry)
			continue
		}

		if uc.leafVisible(entry, permissions) {
			visible = append(visible, entry)
		}
	}
	return visible
}

func (uc *menuUsecase) leafVisible(entry models.MenuEntry, permissions models.PermissionSet) bool {
	if len(entry.RequiredPermissions) == 0 {
		return true
	}
	if permissions.IsEmpty() && uc.PermissiveMode {
		return true
	}
	return permissions.HasAny(entry.RequiredPermissions)
}

func fallbackResolution() models.MenuResolution {
	return models.MenuResolution{
		Panel:    models.PanelUnknown,
		BasePath: constvars.DefaultBasePath,
		Entries:  FallbackMenu(constvars.DefaultBasePath),
		Fallback: true,
	}
}
