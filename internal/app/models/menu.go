package models

// MenuEntry is a node of a panel navigation tree. Entries with children are
// groups; entries without children are leaves.
type MenuEntry struct {
	ID                  string      `json:"id" bson:"id"`
	Label               string      `json:"label" bson:"label"`
	Href                string      `json:"href,omitempty" bson:"href,omitempty"`
	Icon                string      `json:"icon,omitempty" bson:"icon,omitempty"`
	RequiredPermissions []string    `json:"required_permissions,omitempty" bson:"required_permissions,omitempty"`
	Children            []MenuEntry `json:"children,omitempty" bson:"children,omitempty"`
}

func (e MenuEntry) IsGroup() bool {
	return len(e.Children) > 0
}

// Clone returns a deep copy so callers can never reach registry storage.
func (e MenuEntry) Clone() MenuEntry {
	clone := e
	if e.RequiredPermissions != nil {
		clone.RequiredPermissions = append([]string(nil), e.RequiredPermissions...)
	}
	if e.Children != nil {
		clone.Children = make([]MenuEntry, len(e.Children))
		for i, child := range e.Children {
			clone.Children[i] = child.Clone()
		}
	}
	return clone
}

// PanelMenu is the persisted shape of a registry override, one document per
// panel.
type PanelMenu struct {
	Panel   string      `bson:"panel"`
	Entries []MenuEntry `bson:"entries"`
}

// PermissionSet is the set of permission tokens owned by a principal.
type PermissionSet map[string]struct{}

func NewPermissionSet(permissions ...string) PermissionSet {
	set := make(PermissionSet, len(permissions))
	for _, permission := range permissions {
		if permission == "" {
			continue
		}
		set[permission] = struct{}{}
	}
	return set
}

func (s PermissionSet) IsEmpty() bool {
	return len(s) == 0
}

func (s PermissionSet) Has(permission string) bool {
	_, ok := s[permission]
	return ok
}

// HasAny reports whether at least one of the given permissions is in the set.
func (s PermissionSet) HasAny(permissions []string) bool {
	for _, permission := range permissions {
		if s.Has(permission) {
			return true
		}
	}
	return false
}

// MenuResolution is the filtered tree handed to a panel.
type MenuResolution struct {
	Panel    PanelKey
	BasePath string
	Entries  []MenuEntry
	Fallback bool
}
