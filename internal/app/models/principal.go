package models

// Principal is the caller as far as the gateway knows it.
type Principal struct {
	Subject     string
	Roles       []string
	Permissions PermissionSet
	Token       string
}

func (p *Principal) IsAuthenticated() bool {
	return p != nil && p.Subject != ""
}

// AnonymousPrincipal has no subject and no permissions.
func AnonymousPrincipal() *Principal {
	return &Principal{Permissions: NewPermissionSet()}
}
