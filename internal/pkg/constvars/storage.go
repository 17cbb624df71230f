package constvars

const (
	RecentLocationsKeyPrefix     = "bpa_recent_locations_"
	DefaultRecentLocationContext = "default"
	DefaultRecentLocationLimit   = 10
	MaxRecentLocationLimit       = 50

	OwnerBranchIDKey = "bpa.owner.branchId"

	// Every persisted key is namespaced by the owning principal so that two
	// callers never share a cache.
	ScopedKeyFormat = "%s:%s"
)

const (
	DeviceIDCookieName   = "bpa_device_id"
	DeviceIDCookieMaxAge = 60 * 60 * 24 * 365
)

const (
	ImageCacheObjectPrefix = "proxy-image/"
)
