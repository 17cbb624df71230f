package models

// BackendCredentials are forwarded verbatim to the backend API.
type BackendCredentials struct {
	Token  string
	Cookie string
}

// BackendProfile is the subset of /auth/me the gateway reads.
type BackendProfile struct {
	ID          string   `json:"id"`
	Roles       []string `json:"roles"`
	Permissions []string `json:"permissions"`
}
