package models

// LocationScope addresses one recent-location list: the owning principal
// (subject or device id) and the usage site.
type LocationScope struct {
	Owner      string
	ContextKey string
}
