package auth

import (
	"bpa-panel-service/internal/app/models"
	"bpa-panel-service/internal/pkg/constvars"
	"bpa-panel-service/internal/pkg/exceptions"
	"net"
	"net/url"
	"strings"
)

// RedirectPolicy decides where login and registration flows are sent and
// which caller-supplied return targets are trusted.
type RedirectPolicy struct {
	CentralAuthURL string
	PublicOrigin   string
	DevOrigins     []string
}

// ResolveLoginPath maps the referring page to the login page of its panel.
// The referer may be an absolute URL or a bare path. Anything that does not
// start with a panel segment, or names a panel without its own login page,
// maps to the global login page.
func ResolveLoginPath(referer string) string {
	panel, ok := PanelFromReferer(referer)
	if !ok || !panel.HasLoginPage() {
		return constvars.GlobalLoginPath
	}
	return panel.LoginPath()
}

// PanelFromReferer returns the panel owning the first path segment of the
// referer.
func PanelFromReferer(referer string) (models.PanelKey, bool) {
	return models.PanelFromPath(refererPath(referer))
}

func refererPath(referer string) string {
	referer = strings.TrimSpace(referer)
	if referer == "" {
		return ""
	}
	parsed, err := url.Parse(referer)
	if err != nil {
		return ""
	}
	return parsed.Path
}

// DefaultLandingPath is where a panel lands after authentication when the
// caller gave no usable target.
func DefaultLandingPath(panel models.PanelKey) string {
	return panel.BasePath() + constvars.PanelHomeSuffix
}

// BuildAuthRedirectURL builds <central>/<action>?app=<panel>[&returnTo][&next].
// Untrusted returnTo and next values are dropped. When neither survives,
// next is set to the panel landing path.
func BuildAuthRedirectURL(policy RedirectPolicy, panel models.PanelKey, action models.AuthAction, returnTo, next string) (*url.URL, error) {
	if !panel.IsKnown() {
		return nil, exceptions.ErrUnknownPanel(nil, panel.String())
	}
	if !action.IsValid() {
		return nil, exceptions.ErrInvalidAuthAction(nil, string(action))
	}

	base, err := url.Parse(strings.TrimSpace(policy.CentralAuthURL))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, exceptions.ErrCentralAuthNotConfigured(err)
	}

	target := &url.URL{
		Scheme: base.Scheme,
		Host:   base.Host,
		Path:   strings.TrimRight(base.Path, "/") + "/" + string(action),
	}

	query := url.Values{}
	query.Set(constvars.URLQueryParamApp, panel.String())

	keptTarget := false
	if policy.IsAllowedReturnTo(returnTo) {
		query.Set(constvars.URLQueryParamReturnTo, returnTo)
		keptTarget = true
	}
	if IsSafeRelativePath(next) {
		query.Set(constvars.URLQueryParamNext, next)
		keptTarget = true
	}
	if !keptTarget {
		query.Set(constvars.URLQueryParamNext, DefaultLandingPath(panel))
	}

	target.RawQuery = query.Encode()
	return target, nil
}

// IsAllowedReturnTo accepts absolute http(s) URLs on the public origin or on
// one of the dev origins.
func (p RedirectPolicy) IsAllowedReturnTo(rawURL string) bool {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return false
	}
	candidate, err := url.Parse(rawURL)
	if err != nil || candidate.Host == "" || candidate.User != nil {
		return false
	}
	scheme := strings.ToLower(candidate.Scheme)
	if scheme != "http" && scheme != "https" {
		return false
	}

	if p.PublicOrigin != "" {
		origin, err := url.Parse(p.PublicOrigin)
		if err == nil && strings.EqualFold(origin.Scheme, scheme) && strings.EqualFold(origin.Host, candidate.Host) {
			return true
		}
	}

	for _, pattern := range p.DevOrigins {
		if matchOriginPattern(pattern, candidate.Host) {
			return true
		}
	}
	return false
}

// matchOriginPattern matches "host:*" against any port of host, and any
// other pattern against the exact host[:port].
func matchOriginPattern(pattern, host string) bool {
	pattern = strings.ToLower(strings.TrimSpace(pattern))
	host = strings.ToLower(host)
	if pattern == "" {
		return false
	}

	if name, ok := strings.CutSuffix(pattern, ":*"); ok {
		hostname := host
		if h, _, err := net.SplitHostPort(host); err == nil {
			hostname = h
		}
		return hostname == name
	}
	return host == pattern
}

// IsSafeRelativePath accepts same-site paths only: a single leading slash,
// no backslashes, no control characters.
func IsSafeRelativePath(path string) bool {
	if path == "" {
		return false
	}
	if !strings.HasPrefix(path, "/") || strings.HasPrefix(path, "//") || strings.HasPrefix(path, "/\\") {
		return false
	}
	if strings.ContainsAny(path, "\\") {
		return false
	}
	for _, c := range path {
		if c < 0x20 || c == 0x7f {
			return false
		}
	}
	return true
}
