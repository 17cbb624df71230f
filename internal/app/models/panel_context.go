package models

// PanelContext is the panel a request is scoped to. It is set once per
// request and never changed afterwards.
type PanelContext struct {
	Key      PanelKey
	BasePath string
}

// HomeHref is the logo and home link target of the panel.
func (p PanelContext) HomeHref() string {
	return p.BasePath + "/dashboard"
}
