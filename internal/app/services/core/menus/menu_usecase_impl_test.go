package menus

import (
	"bpa-panel-service/internal/app/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestUsecase(t *testing.T, permissive bool) *menuUsecase {
	t.Helper()
	registry, err := NewDefaultRegistry()
	require.NoError(t, err)
	return NewMenuUsecase(registry, permissive, zap.NewNop()).(*menuUsecase)
}

func entryIDs(entries []models.MenuEntry) []string {
	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		ids = append(ids, entry.ID)
	}
	return ids
}

func TestResolve(t *testing.T) {
	t.Run("Empty Permissions In Permissive Mode Returns Unfiltered Registry", func(t *testing.T) {
		uc := newTestUsecase(t, true)
		for _, panel := range models.AllPanels {
			expected, ok := uc.Registry.Lookup(panel)
			require.True(t, ok)

			resolution := uc.Resolve(panel, models.NewPermissionSet())
			assert.Equal(t, expected, resolution.Entries, "panel %s should be unfiltered", panel)
			assert.False(t, resolution.Fallback)
			assert.Equal(t, panel.BasePath(), resolution.BasePath)
		}
	})

	t.Run("Empty Permissions In Strict Mode Keeps Only Unrestricted Entries", func(t *testing.T) {
		uc := newTestUsecase(t, false)
		resolution := uc.Resolve(models.PanelOwner, models.NewPermissionSet())
		assert.Equal(t, []string{"owner-dashboard", "owner-account"}, entryIDs(resolution.Entries))
	})

	t.Run("Any Match Is Enough", func(t *testing.T) {
		uc := newTestUsecase(t, false)
		resolution := uc.Resolve(models.PanelOwner, models.NewPermissionSet("branch.manage"))

		require.Contains(t, entryIDs(resolution.Entries), "owner-business")
		for _, entry := range resolution.Entries {
			if entry.ID == "owner-business" {
				assert.Equal(t, []string{"owner-branches"}, entryIDs(entry.Children))
			}
		}
	})

	t.Run("Group Without Surviving Children Is Dropped", func(t *testing.T) {
		uc := newTestUsecase(t, false)
		resolution := uc.Resolve(models.PanelAdmin, models.NewPermissionSet("user.read"))
		assert.NotContains(t, entryIDs(resolution.Entries), "admin-finance")
		assert.Contains(t, entryIDs(resolution.Entries), "admin-users")
	})

	t.Run("Adding Permissions Never Removes Groups", func(t *testing.T) {
		sets := [][]string{
			{"order.read"},
			{"order.read", "product.read"},
			{"order.read", "product.read", "branch.read", "payout.read"},
			{"order.read", "product.read", "branch.read", "payout.read", "kyc.review", "report.read", "task.read"},
		}
		for _, permissive := range []bool{true, false} {
			uc := newTestUsecase(t, permissive)
			for _, panel := range models.AllPanels {
				previous := map[string]struct{}{}
				for _, set := range sets {
					resolution := uc.Resolve(panel, models.NewPermissionSet(set...))
					current := map[string]struct{}{}
					for _, id := range entryIDs(resolution.Entries) {
						current[id] = struct{}{}
					}
					for id := range previous {
						assert.Contains(t, current, id, "panel %s lost %s when permissions grew to %v", panel, id, set)
					}
					previous = current
				}
			}
		}
	})

	t.Run("Unknown Panel Returns Fallback", func(t *testing.T) {
		uc := newTestUsecase(t, false)
		resolution := uc.Resolve(models.PanelUnknown, models.NewPermissionSet("anything"))

		assert.True(t, resolution.Fallback)
		assert.Equal(t, "/admin", resolution.BasePath)
		assert.Equal(t, []string{"fallback-dashboard", "fallback-settings", "fallback-profile"}, entryIDs(resolution.Entries))
		assert.Equal(t, "/admin/dashboard", resolution.Entries[0].Href)
	})

	t.Run("Panel Missing From Registry Returns Fallback", func(t *testing.T) {
		registry, err := NewRegistry(map[models.PanelKey][]models.MenuEntry{
			models.PanelShop: DefaultMenus()[models.PanelShop],
		})
		require.NoError(t, err)
		uc := NewMenuUsecase(registry, true, zap.NewNop())

		assert.True(t, uc.Resolve(models.PanelClinic, nil).Fallback)
		assert.False(t, uc.Resolve(models.PanelShop, nil).Fallback)
	})

	t.Run("Resolved Entries Cannot Mutate Registry", func(t *testing.T) {
		uc := newTestUsecase(t, true)
		first := uc.Resolve(models.PanelOwner, nil)
		first.Entries[1].Children[0].Label = "changed"
		first.Entries[1].Children[0].RequiredPermissions[0] = "changed"

		second := uc.Resolve(models.PanelOwner, nil)
		assert.Equal(t, "Branches", second.Entries[1].Children[0].Label)
		assert.Equal(t, "branch.read", second.Entries[1].Children[0].RequiredPermissions[0])
	})
}

func TestResolveByName(t *testing.T) {
	uc := newTestUsecase(t, true)

	t.Run("Known Name Is Case Insensitive", func(t *testing.T) {
		resolution := uc.ResolveByName("Clinic", nil)
		assert.Equal(t, models.PanelClinic, resolution.Panel)
		assert.False(t, resolution.Fallback)
	})

	t.Run("Unknown Name Returns Fallback", func(t *testing.T) {
		resolution := uc.ResolveByName("warehouse", nil)
		assert.True(t, resolution.Fallback)
		assert.Len(t, resolution.Entries, 3)
	})
}
