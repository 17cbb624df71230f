package models

import (
	"strconv"
	"strings"
)

// RecentLocation is an address picked by the user, kept most-recent-first.
type RecentLocation struct {
	CountryCode      string   `json:"countryCode"`
	AreaID           *string  `json:"areaId,omitempty"`
	Lat              *float64 `json:"lat,omitempty"`
	Lng              *float64 `json:"lng,omitempty"`
	State            *string  `json:"state,omitempty"`
	City             *string  `json:"city,omitempty"`
	FormattedAddress *string  `json:"formattedAddress,omitempty"`
}

// Normalize returns the canonical shape: trimmed strings, upper-case country
// code and nil for blank optional fields.
func (l RecentLocation) Normalize() RecentLocation {
	return RecentLocation{
		CountryCode:      strings.ToUpper(strings.TrimSpace(l.CountryCode)),
		AreaID:           normalizeOptionalString(l.AreaID),
		Lat:              l.Lat,
		Lng:              l.Lng,
		State:            normalizeOptionalString(l.State),
		City:             normalizeOptionalString(l.City),
		FormattedAddress: normalizeOptionalString(l.FormattedAddress),
	}
}

// locationKeySeparator is stripped from every field by Normalize, so
// distinct field splits never produce the same key.
const locationKeySeparator = "\x1f"

// Key is the composite deduplication key over countryCode, areaId, lat,
// lng, state and city. The formatted address is not part of the identity.
func (l RecentLocation) Key() string {
	parts := []string{
		l.CountryCode,
		optionalString(l.AreaID),
		optionalFloat(l.Lat),
		optionalFloat(l.Lng),
		optionalString(l.State),
		optionalString(l.City),
	}
	return strings.Join(parts, locationKeySeparator)
}

func normalizeOptionalString(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(strings.ReplaceAll(*value, locationKeySeparator, ""))
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func optionalString(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func optionalFloat(value *float64) string {
	if value == nil {
		return ""
	}
	return strconv.FormatFloat(*value, 'f', -1, 64)
}
