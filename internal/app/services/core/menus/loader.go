package menus

import (
	"bpa-panel-service/internal/app/contracts"
	"bpa-panel-service/internal/app/models"
	"bpa-panel-service/internal/pkg/constvars"
	"context"

	"go.uber.org/zap"
)

// LoadRegistry builds the built-in registry and applies the stored
// per-panel overrides, if a repository is given. Documents naming an
// unknown panel are skipped. An invalid override fails the whole load.
func LoadRegistry(ctx context.Context, repository contracts.MenuRepository, logger *zap.Logger) (*Registry, error) {
	registry, err := NewDefaultRegistry()
	if err != nil {
		return nil, err
	}
	if repository == nil {
		return registry, nil
	}

	documents, err := repository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	overrides := make(map[models.PanelKey][]models.MenuEntry, len(documents))
	for _, document := range documents {
		panel, ok := models.ParsePanelKey(document.Panel)
		if !ok {
			logger.Warn("LoadRegistry skipping menu override for unknown panel",
				zap.String(constvars.LoggingPanelKey, document.Panel),
			)
			continue
		}
		overrides[panel] = document.Entries
	}

	if len(overrides) == 0 {
		return registry, nil
	}

	logger.Info("LoadRegistry applying menu overrides", zap.Int(constvars.LoggingCountKey, len(overrides)))
	return registry.WithOverrides(overrides)
}
