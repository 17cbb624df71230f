package locations

import (
	"bpa-panel-service/internal/app/contracts"
	"bpa-panel-service/internal/app/models"
	"bpa-panel-service/internal/pkg/constvars"
	"context"
	"fmt"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type recentLocationUsecase struct {
	Store      contracts.RedisRepository
	LimitValue int
	Log        *zap.Logger
}

// NewRecentLocationUsecase keeps at most limit locations per scope,
// most recent first. Writes are read-modify-write and the last writer wins.
func NewRecentLocationUsecase(store contracts.RedisRepository, limit int, logger *zap.Logger) contracts.RecentLocationUsecase {
	if limit <= 0 {
		limit = constvars.DefaultRecentLocationLimit
	}
	if limit > constvars.MaxRecentLocationLimit {
		limit = constvars.MaxRecentLocationLimit
	}
	return &recentLocationUsecase{
		Store:      store,
		LimitValue: limit,
		Log:        logger,
	}
}

// StorageKey is <owner>:bpa_recent_locations_<contextKey>.
func StorageKey(scope models.LocationScope) string {
	contextKey := scope.ContextKey
	if contextKey == "" {
		contextKey = constvars.DefaultRecentLocationContext
	}
	return fmt.Sprintf(constvars.ScopedKeyFormat, scope.Owner, constvars.RecentLocationsKeyPrefix+contextKey)
}

func (uc *recentLocationUsecase) Limit() int {
	return uc.LimitValue
}

func (uc *recentLocationUsecase) List(ctx context.Context, scope models.LocationScope) ([]models.RecentLocation, error) {
	return uc.load(ctx, StorageKey(scope)), nil
}

func (uc *recentLocationUsecase) Save(ctx context.Context, scope models.LocationScope, location models.RecentLocation) ([]models.RecentLocation, error) {
	key := StorageKey(scope)
	existing := uc.load(ctx, key)

	merged := make([]models.RecentLocation, 0, len(existing)+1)
	merged = append(merged, location.Normalize())
	merged = append(merged, existing...)
	merged = dedupe(merged, uc.LimitValue)

	err := uc.Store.Set(ctx, key, merged, 0)
	if err != nil {
		return nil, err
	}
	return merged, nil
}

func (uc *recentLocationUsecase) Clear(ctx context.Context, scope models.LocationScope) error {
	return uc.Store.Delete(ctx, StorageKey(scope))
}

// load never fails: missing, unreadable or malformed storage reads as an
// empty list.
func (uc *recentLocationUsecase) load(ctx context.Context, key string) []models.RecentLocation {
	raw, err := uc.Store.Get(ctx, key)
	if err != nil {
		uc.Log.Warn("recentLocationUsecase.load failed to read recent locations",
			zap.String(constvars.LoggingContextKey, key),
			zap.Error(err),
		)
		return []models.RecentLocation{}
	}
	if raw == "" {
		return []models.RecentLocation{}
	}

	var stored []models.RecentLocation
	err = json.Unmarshal([]byte(raw), &stored)
	if err != nil {
		uc.Log.Warn("recentLocationUsecase.load discarding malformed recent locations",
			zap.String(constvars.LoggingContextKey, key),
			zap.Error(err),
		)
		return []models.RecentLocation{}
	}

	valid := make([]models.RecentLocation, 0, len(stored))
	for _, location := range stored {
		location = location.Normalize()
		if location.CountryCode == "" {
			continue
		}
		valid = append(valid, location)
	}
	return dedupe(valid, uc.LimitValue)
}

// dedupe keeps the first occurrence of each composite key and truncates to
// limit.
func dedupe(locations []models.RecentLocation, limit int) []models.RecentLocation {
	seen := make(map[string]struct{}, len(locations))
	unique := make([]models.RecentLocation, 0, len(locations))
	for _, location := range locations {
		key := location.Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, location)
		if len(unique) == limit {
			break
		}
	}
	return unique
}
