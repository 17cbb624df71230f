package responses

type LoginPath struct {
	Path string `json:"path"`
}

type AuthRedirect struct {
	URL string `json:"url"`
}

type Logout struct {
	Outcome        string   `json:"outcome"`
	ClearedCookies []string `json:"cleared_cookies"`
	BackendError   string   `json:"backend_error,omitempty"`
	RedirectTo     string   `json:"redirect_to"`
}
