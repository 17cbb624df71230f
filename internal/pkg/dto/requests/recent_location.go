package requests

type SaveRecentLocation struct {
	ContextKey       string   `json:"context_key" validate:"omitempty,context_key"`
	CountryCode      string   `json:"countryCode" validate:"required,country_code"`
	AreaID           *string  `json:"areaId" validate:"omitempty,max=64"`
	Lat              *float64 `json:"lat" validate:"omitempty,latitude"`
	Lng              *float64 `json:"lng" validate:"omitempty,longitude"`
	State            *string  `json:"state" validate:"omitempty,max=128"`
	City             *string  `json:"city" validate:"omitempty,max=128"`
	FormattedAddress *string  `json:"formattedAddress" validate:"omitempty,max=512"`
}

type RecentLocationScope struct {
	ContextKey string `validate:"omitempty,context_key"`
}
