package requests

type AuthRedirect struct {
	Panel    string `validate:"required,panel_key"`
	Action   string `validate:"required,oneof=login register"`
	ReturnTo string `validate:"omitempty,max=2048"`
	Next     string `validate:"omitempty,max=2048"`
}

// Logout carries the caller credentials forwarded to the backend when the
// server-side session is invalidated.
type Logout struct {
	Token   string
	Cookie  string
	Subject string
	Panel   string
}
