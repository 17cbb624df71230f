package auth

import (
	"bpa-panel-service/internal/app/models"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveLoginPath(t *testing.T) {
	tests := []struct {
		name     string
		referer  string
		expected string
	}{
		{"Owner Path", "/owner/branches", "/owner/login"},
		{"Admin Root", "/admin", "/admin/login"},
		{"Partner Absolute Url", "https://app.example.com/partner/payouts?x=1", "/partner/login"},
		{"Country Path", "/country/reports/sales", "/country/login"},
		{"Staff Path", "/staff/tasks", "/staff/login"},
		{"Shop Path", "/shop/orders", "/shop/login"},
		{"Clinic Path", "/clinic/dashboard", "/clinic/login"},
		{"Producer Path", "/producer/batches", "/producer/login"},
		{"Mother Has No Login Page", "/mother/pets", "/login"},
		{"Prefix Is Not A Segment Match", "/clinical/notes", "/login"},
		{"Unknown Panel", "/warehouse/stock", "/login"},
		{"Empty Referer", "", "/login"},
		{"Root Path", "/", "/login"},
		{"Relative Without Slash", "clinic/dashboard", "/login"},
		{"Malformed Url", "http://[::1", "/login"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveLoginPath(tt.referer))
		})
	}

	t.Run("Every Panel With Login Page Round Trips", func(t *testing.T) {
		for _, panel := range models.AllPanels {
			if !panel.HasLoginPage() {
				continue
			}
			assert.Equal(t, panel.BasePath()+"/login", ResolveLoginPath(panel.BasePath()+"/anything"))
		}
	})
}

func testPolicy() RedirectPolicy {
	return RedirectPolicy{
		CentralAuthURL: "https://auth.example.com/central/",
		PublicOrigin:   "https://app.example.com",
		DevOrigins:     []string{"localhost:*", "127.0.0.1:*"},
	}
}

func TestBuildAuthRedirectURL(t *testing.T) {
	t.Run("Untrusted ReturnTo Falls Back To Landing Path", func(t *testing.T) {
		target, err := BuildAuthRedirectURL(testPolicy(), models.PanelOwner, models.AuthActionLogin, "https://evil.example.com/steal", "")
		require.NoError(t, err)

		query := target.Query()
		assert.Equal(t, "https://auth.example.com/central/login", target.Scheme+"://"+target.Host+target.Path)
		assert.Equal(t, "owner", query.Get("app"))
		assert.Empty(t, query.Get("returnTo"))
		assert.Equal(t, "/owner/dashboard", query.Get("next"))
	})

	t.Run("Same Origin ReturnTo Is Kept", func(t *testing.T) {
		target, err := BuildAuthRedirectURL(testPolicy(), models.PanelShop, models.AuthActionRegister, "https://app.example.com/shop/orders", "")
		require.NoError(t, err)

		assert.Equal(t, "/central/register", target.Path)
		assert.Equal(t, "https://app.example.com/shop/orders", target.Query().Get("returnTo"))
		assert.Empty(t, target.Query().Get("next"), "next is only defaulted when nothing was kept")
	})

	t.Run("Dev Origin ReturnTo Is Kept", func(t *testing.T) {
		target, err := BuildAuthRedirectURL(testPolicy(), models.PanelClinic, models.AuthActionLogin, "http://localhost:3000/clinic", "")
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:3000/clinic", target.Query().Get("returnTo"))
	})

	t.Run("Safe Next Is Kept", func(t *testing.T) {
		target, err := BuildAuthRedirectURL(testPolicy(), models.PanelStaff, models.AuthActionLogin, "", "/staff/tasks?id=3")
		require.NoError(t, err)
		assert.Equal(t, "/staff/tasks?id=3", target.Query().Get("next"))
	})

	t.Run("Unsafe Next Falls Back", func(t *testing.T) {
		for _, next := range []string{"//evil.example.com", "/\\evil.example.com", "https://evil.example.com", "staff/tasks", "/a\\b", "/a\nb"} {
			target, err := BuildAuthRedirectURL(testPolicy(), models.PanelStaff, models.AuthActionLogin, "", next)
			require.NoError(t, err)
			assert.Equal(t, "/staff/dashboard", target.Query().Get("next"), "next %q should be rejected", next)
		}
	})

	t.Run("Unknown Panel Is Rejected", func(t *testing.T) {
		_, err := BuildAuthRedirectURL(testPolicy(), models.PanelUnknown, models.AuthActionLogin, "", "")
		assert.Error(t, err)
	})

	t.Run("Unknown Action Is Rejected", func(t *testing.T) {
		_, err := BuildAuthRedirectURL(testPolicy(), models.PanelOwner, models.AuthAction("reset"), "", "")
		assert.Error(t, err)
	})

	t.Run("Missing Central Auth Url Is Rejected", func(t *testing.T) {
		policy := testPolicy()
		policy.CentralAuthURL = ""
		_, err := BuildAuthRedirectURL(policy, models.PanelOwner, models.AuthActionLogin, "", "")
		assert.Error(t, err)
	})
}

func TestIsAllowedReturnTo(t *testing.T) {
	policy := testPolicy()
	tests := []struct {
		name     string
		rawURL   string
		expected bool
	}{
		{"Public Origin", "https://app.example.com/owner", true},
		{"Public Origin Wrong Scheme", "http://app.example.com/owner", false},
		{"Localhost Any Port", "http://localhost:5173/", true},
		{"Loopback Ip", "http://127.0.0.1:8080/admin", true},
		{"Foreign Host", "https://evil.example.com", false},
		{"Lookalike Host", "https://app.example.com.evil.io", false},
		{"Userinfo Trick", "https://app.example.com@evil.io", false},
		{"Javascript Scheme", "javascript:alert(1)", false},
		{"Relative Path", "/owner", false},
		{"Empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, policy.IsAllowedReturnTo(tt.rawURL))
		})
	}

	t.Run("No Dev Origins In Production", func(t *testing.T) {
		production := RedirectPolicy{PublicOrigin: "https://app.example.com"}
		assert.False(t, production.IsAllowedReturnTo("http://localhost:3000"))
	})
}

func TestClearAuthCookies(t *testing.T) {
	t.Run("All Four Cookies Expire", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		result := ClearAuthCookies(recorder, false)

		assert.Equal(t, models.AuthCookieNames, result.ClearedCookies)

		cookies := recorder.Result().Cookies()
		require.Len(t, cookies, 4)
		for i, cookie := range cookies {
			assert.Equal(t, models.AuthCookieNames[i], cookie.Name)
			assert.Empty(t, cookie.Value)
			assert.Equal(t, -1, cookie.MaxAge, "Max-Age=0 is parsed back as -1")
			assert.Equal(t, "/", cookie.Path)
			assert.True(t, cookie.HttpOnly)
			assert.False(t, cookie.Secure)
			assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
		}
		for _, header := range recorder.Header().Values("Set-Cookie") {
			assert.Contains(t, header, "Max-Age=0")
		}
	})

	t.Run("Secure Flag In Production", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		ClearAuthCookies(recorder, true)
		for _, cookie := range recorder.Result().Cookies() {
			assert.True(t, cookie.Secure)
		}
	})

	t.Run("Idempotent", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		first := ClearAuthCookies(recorder, false)
		second := ClearAuthCookies(recorder, false)
		assert.Equal(t, first, second)
	})
}
