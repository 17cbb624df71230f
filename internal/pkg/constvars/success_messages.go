package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Auth messages
	LogoutSuccessMessage          = "successfully logout"
	LogoutLocalOnlySuccessMessage = "logged out on this device, server session could not be confirmed"
	LoginPathSuccessMessage       = "login path resolved"
	AuthRedirectSuccessMessage    = "auth redirect built"

	// Menu messages
	GetMenuSuccessMessage = "get menu successfully"

	// Recent location messages
	GetRecentLocationsSuccessMessage   = "get recent locations successfully"
	SaveRecentLocationSuccessMessage   = "recent location saved"
	ClearRecentLocationsSuccessMessage = "recent locations cleared"

	// Preference messages
	GetBranchPreferenceSuccessMessage   = "get selected branch successfully"
	SaveBranchPreferenceSuccessMessage  = "selected branch saved"
	ClearBranchPreferenceSuccessMessage = "selected branch cleared"

	HealthySuccessMessage = "ok"
)
