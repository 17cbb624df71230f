package menus

import (
	"bpa-panel-service/internal/app/models"
	"bpa-panel-service/internal/pkg/constvars"
	"bpa-panel-service/internal/pkg/exceptions"
	"fmt"
	"strings"
)

// Registry is the immutable per-panel navigation tree. It is built once at
// boot and only handed out as deep copies.
type Registry struct {
	menus map[models.PanelKey][]models.MenuEntry
}

// NewRegistry validates and stores the given trees. Every id must be unique
// within its panel tree and every href must live under the panel base path.
func NewRegistry(menus map[models.PanelKey][]models.MenuEntry) (*Registry, error) {
	stored := make(map[models.PanelKey][]models.MenuEntry, len(menus))
	for panel, entries := range menus {
		if !panel.IsKnown() {
			return nil, exceptions.ErrMenuRegistryInvalid(nil, fmt.Sprintf(constvars.ErrDevUnknownPanel, panel.String()))
		}

		seen := make(map[string]struct{})
		if err := validateEntries(panel, entries, seen); err != nil {
			return nil, err
		}
		stored[panel] = cloneEntries(entries)
	}
	return &Registry{menus: stored}, nil
}

func validateEntries(panel models.PanelKey, entries []models.MenuEntry, seen map[string]struct{}) error {
	basePath := panel.BasePath()
	for _, entry := range entries {
		if strings.TrimSpace(entry.ID) == "" {
			return exceptions.ErrMenuRegistryInvalid(nil, fmt.Sprintf(constvars.ErrDevMenuEmptyID, panel))
		}
		if _, exists := seen[entry.ID]; exists {
			return exceptions.ErrMenuRegistryInvalid(nil, fmt.Sprintf(constvars.ErrDevMenuDuplicateID, panel, entry.ID))
		}
		seen[entry.ID] = struct{}{}

		if entry.Href != "" && entry.Href != basePath && !strings.HasPrefix(entry.Href, basePath+"/") {
			return exceptions.ErrMenuRegistryInvalid(nil, fmt.Sprintf(constvars.ErrDevMenuHrefOutsidePanel, panel, entry.ID, entry.Href, basePath))
		}

		if err := validateEntries(panel, entry.Children, seen); err != nil {
			return err
		}
	}
	return nil
}

// Lookup returns a copy of the panel tree.
func (r *Registry) Lookup(panel models.PanelKey) ([]models.MenuEntry, bool) {
	entries, ok := r.menus[panel]
	if !ok {
		return nil, false
	}
	return cloneEntries(entries), true
}

// WithOverrides returns a new registry where each override replaces the
// whole tree of its panel.
func (r *Registry) WithOverrides(overrides map[models.PanelKey][]models.MenuEntry) (*Registry, error) {
	merged := make(map[models.PanelKey][]models.MenuEntry, len(r.menus))
	for panel, entries := range r.menus {
		merged[panel] = entries
	}
	for panel, entries := range overrides {
		merged[panel] = entries
	}
	return NewRegistry(merged)
}

func cloneEntries(entries []models.MenuEntry) []models.MenuEntry {
	if entries == nil {
		return nil
	}
	clones := make([]models.MenuEntry, len(entries))
	for i, entry := range entries {
		clones[i] = entry.Clone()
	}
	return clones
}
