package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T {
	return &v
}

func TestRecentLocationKey(t *testing.T) {
	t.Run("Hyphenated Fields Do Not Collide", func(t *testing.T) {
		a := RecentLocation{CountryCode: "US", State: ptr("A-"), City: ptr("B")}.Normalize()
		b := RecentLocation{CountryCode: "US", State: ptr("A"), City: ptr("-B")}.Normalize()
		assert.NotEqual(t, a.Key(), b.Key())
	})

	t.Run("Negative Coordinates Do Not Collide", func(t *testing.T) {
		a := RecentLocation{CountryCode: "US", Lat: ptr(-1.5), Lng: ptr(2.0)}.Normalize()
		b := RecentLocation{CountryCode: "US", Lat: ptr(1.5), Lng: ptr(-2.0)}.Normalize()
		assert.NotEqual(t, a.Key(), b.Key())
	})

	t.Run("Separator Is Stripped From Input", func(t *testing.T) {
		a := RecentLocation{CountryCode: "US", State: ptr("A\x1f"), City: ptr("B")}.Normalize()
		b := RecentLocation{CountryCode: "US", State: ptr("A"), City: ptr("\x1fB")}.Normalize()
		assert.Equal(t, "A", *a.State)
		assert.Equal(t, "B", *b.City)
		assert.Equal(t, a.Key(), b.Key())
	})

	t.Run("Formatted Address Is Not Part Of Identity", func(t *testing.T) {
		a := RecentLocation{CountryCode: "ID", City: ptr("Jakarta"), FormattedAddress: ptr("Jl. A")}.Normalize()
		b := RecentLocation{CountryCode: "ID", City: ptr("Jakarta"), FormattedAddress: ptr("Jl. B")}.Normalize()
		assert.Equal(t, a.Key(), b.Key())
	})
}
