package locations

import (
	"bpa-panel-service/internal/app/models"
	"bpa-panel-service/internal/app/services/shared/redis"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func strPtr(value string) *string { return &value }

func floatPtr(value float64) *float64 { return &value }

func TestStorageKey(t *testing.T) {
	assert.Equal(t, "user-1:bpa_recent_locations_default", StorageKey(models.LocationScope{Owner: "user-1"}))
	assert.Equal(t, "device-9:bpa_recent_locations_checkout", StorageKey(models.LocationScope{Owner: "device-9", ContextKey: "checkout"}))
}

func TestRecentLocationUsecase(t *testing.T) {
	ctx := context.Background()
	scope := models.LocationScope{Owner: "user-1", ContextKey: "checkout"}

	t.Run("Saving Same Location Twice Keeps Length", func(t *testing.T) {
		uc := NewRecentLocationUsecase(redis.NewMemoryRepository(), 10, zap.NewNop())
		location := models.RecentLocation{CountryCode: "de", City: strPtr("Berlin"), Lat: floatPtr(52.52), Lng: floatPtr(13.405)}

		first, err := uc.Save(ctx, scope, location)
		require.NoError(t, err)
		second, err := uc.Save(ctx, scope, location)
		require.NoError(t, err)

		assert.Len(t, second, len(first))
		assert.Equal(t, "DE", second[0].CountryCode)
		assert.Equal(t, "Berlin", *second[0].City)
	})

	t.Run("Duplicate Moves To Front", func(t *testing.T) {
		uc := NewRecentLocationUsecase(redis.NewMemoryRepository(), 10, zap.NewNop())
		berlin := models.RecentLocation{CountryCode: "DE", City: strPtr("Berlin")}
		paris := models.RecentLocation{CountryCode: "FR", City: strPtr("Paris")}

		_, err := uc.Save(ctx, scope, berlin)
		require.NoError(t, err)
		_, err = uc.Save(ctx, scope, paris)
		require.NoError(t, err)
		list, err := uc.Save(ctx, scope, berlin)
		require.NoError(t, err)

		require.Len(t, list, 2)
		assert.Equal(t, "Berlin", *list[0].City)
		assert.Equal(t, "Paris", *list[1].City)
	})

	t.Run("Oldest Evicted Past Limit", func(t *testing.T) {
		limit := 10
		extra := 3
		uc := NewRecentLocationUsecase(redis.NewMemoryRepository(), limit, zap.NewNop())

		var list []models.RecentLocation
		for i := 0; i < limit+extra; i++ {
			var err error
			list, err = uc.Save(ctx, scope, models.RecentLocation{CountryCode: "ID", City: strPtr(fmt.Sprintf("city-%d", i))})
			require.NoError(t, err)
		}

		require.Len(t, list, limit)
		assert.Equal(t, fmt.Sprintf("city-%d", limit+extra-1), *list[0].City)
		assert.Equal(t, fmt.Sprintf("city-%d", extra), *list[limit-1].City, "the first saves are evicted")
	})

	t.Run("Normalization Treats Blank Fields As Absent", func(t *testing.T) {
		uc := NewRecentLocationUsecase(redis.NewMemoryRepository(), 10, zap.NewNop())
		_, err := uc.Save(ctx, scope, models.RecentLocation{CountryCode: " us ", City: strPtr("  "), State: strPtr(" CA ")})
		require.NoError(t, err)
		list, err := uc.Save(ctx, scope, models.RecentLocation{CountryCode: "US", State: strPtr("CA")})
		require.NoError(t, err)

		require.Len(t, list, 1)
		assert.Nil(t, list[0].City)
		assert.Equal(t, "CA", *list[0].State)
	})

	t.Run("Formatted Address Is Not Part Of Identity", func(t *testing.T) {
		uc := NewRecentLocationUsecase(redis.NewMemoryRepository(), 10, zap.NewNop())
		_, err := uc.Save(ctx, scope, models.RecentLocation{CountryCode: "GB", FormattedAddress: strPtr("10 Downing St")})
		require.NoError(t, err)
		list, err := uc.Save(ctx, scope, models.RecentLocation{CountryCode: "GB", FormattedAddress: strPtr("Downing Street 10")})
		require.NoError(t, err)

		require.Len(t, list, 1)
		assert.Equal(t, "Downing Street 10", *list[0].FormattedAddress)
	})

	t.Run("Malformed Storage Reads As Empty", func(t *testing.T) {
		store := redis.NewMemoryRepository()
		require.NoError(t, store.Set(ctx, StorageKey(scope), map[string]string{"not": "a list"}, time.Hour))
		uc := NewRecentLocationUsecase(store, 10, zap.NewNop())

		list, err := uc.List(ctx, scope)
		require.NoError(t, err)
		assert.Empty(t, list)

		saved, err := uc.Save(ctx, scope, models.RecentLocation{CountryCode: "JP"})
		require.NoError(t, err)
		assert.Len(t, saved, 1)
	})

	t.Run("Missing Storage Reads As Empty", func(t *testing.T) {
		uc := NewRecentLocationUsecase(redis.NewMemoryRepository(), 10, zap.NewNop())
		list, err := uc.List(ctx, scope)
		require.NoError(t, err)
		assert.NotNil(t, list)
		assert.Empty(t, list)
	})

	t.Run("Scopes Are Isolated", func(t *testing.T) {
		uc := NewRecentLocationUsecase(redis.NewMemoryRepository(), 10, zap.NewNop())
		_, err := uc.Save(ctx, scope, models.RecentLocation{CountryCode: "NL"})
		require.NoError(t, err)

		other, err := uc.List(ctx, models.LocationScope{Owner: "user-2", ContextKey: "checkout"})
		require.NoError(t, err)
		assert.Empty(t, other)

		otherContext, err := uc.List(ctx, models.LocationScope{Owner: "user-1"})
		require.NoError(t, err)
		assert.Empty(t, otherContext)
	})

	t.Run("Clear Removes List", func(t *testing.T) {
		uc := NewRecentLocationUsecase(redis.NewMemoryRepository(), 10, zap.NewNop())
		_, err := uc.Save(ctx, scope, models.RecentLocation{CountryCode: "NL"})
		require.NoError(t, err)
		require.NoError(t, uc.Clear(ctx, scope))

		list, err := uc.List(ctx, scope)
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("Limit Is Clamped", func(t *testing.T) {
		assert.Equal(t, 10, NewRecentLocationUsecase(redis.NewMemoryRepository(), 0, zap.NewNop()).Limit())
		assert.Equal(t, 50, NewRecentLocationUsecase(redis.NewMemoryRepository(), 500, zap.NewNop()).Limit())
	})
}
