package menus

import (
	"bpa-panel-service/internal/app/models"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewRegistry(t *testing.T) {
	t.Run("Default Registry Covers Every Panel", func(t *testing.T) {
		registry, err := NewDefaultRegistry()
		require.NoError(t, err)
		for _, panel := range models.AllPanels {
			entries, ok := registry.Lookup(panel)
			assert.True(t, ok, panel.String())
			assert.NotEmpty(t, entries, panel.String())
		}
	})

	t.Run("Duplicate Id Is Rejected", func(t *testing.T) {
		_, err := NewRegistry(map[models.PanelKey][]models.MenuEntry{
			models.PanelShop: {
				{ID: "a", Label: "A", Href: "/shop/a"},
				{ID: "g", Label: "G", Children: []models.MenuEntry{
					{ID: "a", Label: "Again", Href: "/shop/b"},
				}},
			},
		})
		assert.Error(t, err)
	})

	t.Run("Href Outside Panel Is Rejected", func(t *testing.T) {
		_, err := NewRegistry(map[models.PanelKey][]models.MenuEntry{
			models.PanelShop: {{ID: "a", Label: "A", Href: "/shopping/a"}},
		})
		assert.Error(t, err)
	})

	t.Run("Empty Id Is Rejected", func(t *testing.T) {
		_, err := NewRegistry(map[models.PanelKey][]models.MenuEntry{
			models.PanelShop: {{ID: " ", Label: "A", Href: "/shop/a"}},
		})
		assert.Error(t, err)
	})

	t.Run("Unknown Panel Is Rejected", func(t *testing.T) {
		_, err := NewRegistry(map[models.PanelKey][]models.MenuEntry{
			models.PanelUnknown: {{ID: "a", Label: "A"}},
		})
		assert.Error(t, err)
	})

	t.Run("Input Is Copied", func(t *testing.T) {
		entries := []models.MenuEntry{{ID: "a", Label: "A", Href: "/shop"}}
		registry, err := NewRegistry(map[models.PanelKey][]models.MenuEntry{models.PanelShop: entries})
		require.NoError(t, err)

		entries[0].Label = "changed"
		stored, _ := registry.Lookup(models.PanelShop)
		assert.Equal(t, "A", stored[0].Label)
	})
}

type MockMenuRepository struct {
	mock.Mock
}

func (m *MockMenuRepository) FindAll(ctx context.Context) ([]models.PanelMenu, error) {
	args := m.Called(ctx)
	menus, _ := args.Get(0).([]models.PanelMenu)
	return menus, args.Error(1)
}

func TestLoadRegistry(t *testing.T) {
	ctx := context.Background()

	t.Run("Nil Repository Uses Defaults", func(t *testing.T) {
		registry, err := LoadRegistry(ctx, nil, zap.NewNop())
		require.NoError(t, err)
		entries, ok := registry.Lookup(models.PanelStaff)
		require.True(t, ok)
		assert.Equal(t, "staff-dashboard", entries[0].ID)
	})

	t.Run("Override Replaces Panel Tree", func(t *testing.T) {
		repo := new(MockMenuRepository)
		repo.On("FindAll", ctx).Return([]models.PanelMenu{
			{Panel: "staff", Entries: []models.MenuEntry{{ID: "only", Label: "Only", Href: "/staff/only"}}},
			{Panel: "warehouse", Entries: []models.MenuEntry{{ID: "x", Label: "X"}}},
		}, nil)

		registry, err := LoadRegistry(ctx, repo, zap.NewNop())
		require.NoError(t, err)

		staff, _ := registry.Lookup(models.PanelStaff)
		assert.Equal(t, []string{"only"}, entryIDs(staff))
		owner, _ := registry.Lookup(models.PanelOwner)
		assert.Equal(t, "owner-dashboard", owner[0].ID, "panels without override keep defaults")
		repo.AssertExpectations(t)
	})

	t.Run("Invalid Override Fails", func(t *testing.T) {
		repo := new(MockMenuRepository)
		repo.On("FindAll", ctx).Return([]models.PanelMenu{
			{Panel: "staff", Entries: []models.MenuEntry{{ID: "x", Label: "X", Href: "/admin/x"}}},
		}, nil)

		_, err := LoadRegistry(ctx, repo, zap.NewNop())
		assert.Error(t, err)
	})

	t.Run("Repository Error Is Returned", func(t *testing.T) {
		repo := new(MockMenuRepository)
		repo.On("FindAll", ctx).Return(nil, errors.New("connection refused"))

		_, err := LoadRegistry(ctx, repo, zap.NewNop())
		assert.Error(t, err)
	})
}
