package models

import "strings"

// PanelKey identifies one of the role-scoped site sections that share the
// gateway. The zero value is PanelUnknown.
type PanelKey int

const (
	PanelUnknown PanelKey = iota
	PanelOwner
	PanelAdmin
	PanelShop
	PanelClinic
	PanelMother
	PanelProducer
	PanelCountry
	PanelStaff
	PanelPartner
)

// AllPanels lists every known panel in a stable order.
var AllPanels = []PanelKey{
	PanelOwner,
	PanelAdmin,
	PanelShop,
	PanelClinic,
	PanelMother,
	PanelProducer,
	PanelCountry,
	PanelStaff,
	PanelPartner,
}

func (p PanelKey) String() string {
	switch p {
	case PanelOwner:
		return "owner"
	case PanelAdmin:
		return "admin"
	case PanelShop:
		return "shop"
	case PanelClinic:
		return "clinic"
	case PanelMother:
		return "mother"
	case PanelProducer:
		return "producer"
	case PanelCountry:
		return "country"
	case PanelStaff:
		return "staff"
	case PanelPartner:
		return "partner"
	default:
		return "unknown"
	}
}

func (p PanelKey) IsKnown() bool {
	return p != PanelUnknown && p.String() != "unknown"
}

// BasePath is the URL prefix of the panel, e.g. "/owner". Unknown panels
// have no base path.
func (p PanelKey) BasePath() string {
	if !p.IsKnown() {
		return ""
	}
	return "/" + p.String()
}

// HasLoginPage reports whether the panel serves its own login page. The
// mother panel signs in through the global login page.
func (p PanelKey) HasLoginPage() bool {
	switch p {
	case PanelOwner, PanelAdmin, PanelPartner, PanelCountry, PanelStaff, PanelShop, PanelClinic, PanelProducer:
		return true
	case PanelMother:
		return false
	default:
		return false
	}
}

func (p PanelKey) LoginPath() string {
	if !p.HasLoginPage() {
		return ""
	}
	return p.BasePath() + "/login"
}

func (p PanelKey) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *PanelKey) UnmarshalText(text []byte) error {
	key, _ := ParsePanelKey(string(text))
	*p = key
	return nil
}

// ParsePanelKey maps a panel name (case-insensitive, surrounding slashes
// ignored) to its key.
func ParsePanelKey(name string) (PanelKey, bool) {
	normalized := strings.ToLower(strings.Trim(strings.TrimSpace(name), "/"))
	for _, key := range AllPanels {
		if key.String() == normalized {
			return key, true
		}
	}
	return PanelUnknown, false
}

// PanelFromPath returns the panel owning the first segment of a URL path.
// "/clinic/dashboard" and "/clinic" resolve to PanelClinic, "/clinical" does
// not.
func PanelFromPath(path string) (PanelKey, bool) {
	trimmed := strings.TrimPrefix(path, "/")
	if trimmed == path && path != "" {
		return PanelUnknown, false
	}
	segment := trimmed
	if idx := strings.IndexAny(trimmed, "/?#"); idx >= 0 {
		segment = trimmed[:idx]
	}
	if segment == "" {
		return PanelUnknown, false
	}
	return ParsePanelKey(segment)
}
