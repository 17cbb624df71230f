package backend

import (
	"bpa-panel-service/internal/app/config"
	"bpa-panel-service/internal/app/models"
	"bpa-panel-service/internal/pkg/exceptions"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(baseUrl string) *backendClient {
	internalConfig := &config.InternalConfig{
		Backend: config.AppBackend{
			BaseUrl:               baseUrl,
			RequestTimeoutSeconds: 5,
			RetryMax:              0,
		},
	}
	return NewBackendClient(internalConfig, zap.NewNop()).(*backendClient)
}

func TestBackendClient(t *testing.T) {
	ctx := context.Background()

	t.Run("Unwraps Data From Envelope", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/auth/me", r.URL.Path)
			assert.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))
			assert.Equal(t, "access_token=token-1", r.Header.Get("Cookie"))
			w.Header().Set("Content-Type", "application/json")
			io.WriteString(w, `{"success":true,"data":{"id":"u-1","roles":["owner"],"permissions":["branch.read"]}}`)
		}))
		defer server.Close()

		var profile models.BackendProfile
		err := newTestClient(server.URL).Get(ctx, "/auth/me", models.BackendCredentials{
			Token:  "token-1",
			Cookie: "access_token=token-1",
		}, &profile)

		require.NoError(t, err)
		assert.Equal(t, "u-1", profile.ID)
		assert.Equal(t, []string{"branch.read"}, profile.Permissions)
	})

	t.Run("Non 2xx Carries Server Message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			io.WriteString(w, `{"success":false,"message":"session expired"}`)
		}))
		defer server.Close()

		err := newTestClient(server.URL).Post(ctx, "/auth/logout", models.BackendCredentials{}, nil, nil)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr), "expected a CustomError")
		assert.Equal(t, http.StatusUnauthorized, customErr.StatusCode)
		assert.Equal(t, "session expired", customErr.ClientMessage)
	})

	t.Run("Server Error Maps To Bad Gateway", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			io.WriteString(w, `<html>oops</html>`)
		}))
		defer server.Close()

		err := newTestClient(server.URL).Get(ctx, "/anything", models.BackendCredentials{}, nil)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, http.StatusBadGateway, customErr.StatusCode)
	})

	t.Run("Success False With 200 Is An Error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, `{"success":false,"message":"branch not found"}`)
		}))
		defer server.Close()

		err := newTestClient(server.URL).Patch(ctx, "/branches/1", models.BackendCredentials{}, map[string]string{"name": "x"}, nil)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, "branch not found", customErr.ClientMessage)
	})

	t.Run("Empty Body Is Accepted", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		err := newTestClient(server.URL).Delete(ctx, "branches/1", models.BackendCredentials{}, nil)
		assert.NoError(t, err)
	})

	t.Run("Missing Base Url Fails Fast", func(t *testing.T) {
		err := newTestClient("").Get(ctx, "/auth/me", models.BackendCredentials{}, nil)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, http.StatusServiceUnavailable, customErr.StatusCode)
	})
}
