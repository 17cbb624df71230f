package models

// AuthCookieNames are the cookies the backend may set on login. The
// gateway clears all of them on logout whether or not they are present.
var AuthCookieNames = []string{
	"access_token",
	"token",
	"jwt",
	"refresh_token",
}

type AuthAction string

const (
	AuthActionLogin    AuthAction = "login"
	AuthActionRegister AuthAction = "register"
)

func (a AuthAction) IsValid() bool {
	return a == AuthActionLogin || a == AuthActionRegister
}

type LogoutOutcome string

const (
	// LogoutConfirmed means the backend invalidated the session and the
	// cookies were cleared locally.
	LogoutConfirmed LogoutOutcome = "confirmed"
	// LogoutLocalOnly means the cookies were cleared but the backend could
	// not be reached or refused the call.
	LogoutLocalOnly LogoutOutcome = "local_only"
)

// LocalClearResult is the outcome of clearing auth cookies on the response.
type LocalClearResult struct {
	ClearedCookies []string
}

// BackendLogoutResult is the outcome of asking the backend to invalidate the
// session.
type BackendLogoutResult struct {
	Attempted bool
	Err       error
}

func (r BackendLogoutResult) Confirmed() bool {
	return r.Attempted && r.Err == nil
}

// LogoutResult combines both independent paths of a logout.
type LogoutResult struct {
	Local   LocalClearResult
	Backend BackendLogoutResult
}

func (r LogoutResult) Outcome() LogoutOutcome {
	if r.Backend.Confirmed() {
		return LogoutConfirmed
	}
	return LogoutLocalOnly
}

// AuthEvent is published on the auth-events queue.
type AuthEvent struct {
	Type       string `json:"type"`
	Subject    string `json:"subject,omitempty"`
	Panel      string `json:"panel,omitempty"`
	Outcome    string `json:"outcome,omitempty"`
	RequestID  string `json:"request_id,omitempty"`
	OccurredAt string `json:"occurred_at"`
}
